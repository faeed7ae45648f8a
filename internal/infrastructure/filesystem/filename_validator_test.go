package filesystem

import (
	"errors"
	"strings"
	"testing"
)

func TestFilenameValidator_Validate(t *testing.T) {
	v := NewFilenameValidator(32)
	v.platform = "linux"

	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{name: "普通文件名", filename: "a.txt", wantErr: false},
		{name: "中文文件名", filename: "报告.md", wantErr: false},
		{name: "带点的文件名", filename: "archive.tar.gz", wantErr: false},
		{name: "隐藏文件", filename: ".env", wantErr: false},
		{name: "空文件名", filename: "", wantErr: true},
		{name: "仅空白字符", filename: "   ", wantErr: true},
		{name: "首尾空格", filename: " a.txt", wantErr: false},
		{name: "当前目录", filename: ".", wantErr: true},
		{name: "上级目录", filename: "..", wantErr: true},
		{name: "目录遍历", filename: "../etc/passwd", wantErr: true},
		{name: "子目录", filename: "dir/a.txt", wantErr: true},
		{name: "反斜杠", filename: `dir\a.txt`, wantErr: true},
		{name: "控制字符", filename: "a\x00b", wantErr: true},
		{name: "换行符", filename: "a\nb", wantErr: true},
		{name: "零宽字符", filename: "a\u200Bb", wantErr: true},
		{name: "超长文件名", filename: strings.Repeat("a", 33), wantErr: true},
		{name: "非法UTF-8", filename: "a\xffb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
			if err != nil {
				var verr *FilenameValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected *FilenameValidationError, got %T", err)
				}
				if verr.Reason == "" {
					t.Error("validation error without reason")
				}
			}
		})
	}
}

func TestFilenameValidator_Windows(t *testing.T) {
	v := NewFilenameValidator(0)
	v.platform = "windows"

	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"a.txt", false},
		{"CON", true},
		{"nul.txt", true},
		{"a:b.txt", true},
		{"what?.txt", true},
		{"trailing.", true},
		{"trailing ", true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			err := v.Validate(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}

func TestNewFilenameValidator_DefaultLength(t *testing.T) {
	v := NewFilenameValidator(0)
	v.platform = "linux"

	if err := v.Validate(strings.Repeat("a", 255)); err != nil {
		t.Errorf("255-byte name should be accepted: %v", err)
	}
	if err := v.Validate(strings.Repeat("a", 256)); err == nil {
		t.Error("256-byte name should be rejected")
	}
}
