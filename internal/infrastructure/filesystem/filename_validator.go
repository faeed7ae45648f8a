package filesystem

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"
)

const defaultMaxNameLength = 255

// FilenameValidator 文件名校验 - 存储只接受根目录下的单层文件名
type FilenameValidator struct {
	maxNameLength int
	platform      string
	reservedNames map[string]bool
}

// FilenameValidationError 文件名校验错误,Reason 直接返回给客户端
type FilenameValidationError struct {
	Name   string
	Reason string
}

func (e *FilenameValidationError) Error() string {
	return fmt.Sprintf("invalid filename %q: %s", e.Name, e.Reason)
}

// NewFilenameValidator 创建文件名校验器,maxNameLength<=0 时使用 255
func NewFilenameValidator(maxNameLength int) *FilenameValidator {
	if maxNameLength <= 0 {
		maxNameLength = defaultMaxNameLength
	}
	return &FilenameValidator{
		maxNameLength: maxNameLength,
		platform:      runtime.GOOS,
		reservedNames: buildReservedNamesMap(),
	}
}

// Windows保留名称
func buildReservedNamesMap() map[string]bool {
	reserved := []string{
		"CON", "PRN", "AUX", "NUL",
		"COM1", "COM2", "COM3", "COM4", "COM5",
		"COM6", "COM7", "COM8", "COM9",
		"LPT1", "LPT2", "LPT3", "LPT4", "LPT5",
		"LPT6", "LPT7", "LPT8", "LPT9",
	}

	m := make(map[string]bool, len(reserved))
	for _, name := range reserved {
		m[name] = true
	}
	return m
}

// Validate 校验文件名
func (v *FilenameValidator) Validate(name string) error {
	if strings.TrimSpace(name) == "" {
		return &FilenameValidationError{Name: name, Reason: "el nombre del archivo está vacío"}
	}

	if err := v.validateLength(name); err != nil {
		return err
	}

	if err := v.validateSegment(name); err != nil {
		return err
	}

	if err := v.validateCharacters(name); err != nil {
		return err
	}

	if v.platform == "windows" {
		if err := v.validateWindowsName(name); err != nil {
			return err
		}
	}

	return nil
}

func (v *FilenameValidator) validateLength(name string) error {
	if len(name) > v.maxNameLength {
		return &FilenameValidationError{
			Name:   name,
			Reason: fmt.Sprintf("el nombre del archivo supera %d bytes", v.maxNameLength),
		}
	}
	return nil
}

// validateSegment 不允许目录层级与目录遍历
func (v *FilenameValidator) validateSegment(name string) error {
	if name == "." || name == ".." {
		return &FilenameValidationError{Name: name, Reason: "nombre de archivo reservado"}
	}
	if strings.ContainsAny(name, `/\`) {
		return &FilenameValidationError{Name: name, Reason: "el nombre del archivo no puede contener directorios"}
	}
	return nil
}

func (v *FilenameValidator) validateCharacters(name string) error {
	if !utf8.ValidString(name) {
		return &FilenameValidationError{Name: name, Reason: "el nombre del archivo no es UTF-8 válido"}
	}

	for _, r := range name {
		if unicode.Is(unicode.Cc, r) {
			return &FilenameValidationError{
				Name:   name,
				Reason: fmt.Sprintf("carácter de control no permitido: U+%04X", r),
			}
		}
		if isZeroWidthChar(r) {
			return &FilenameValidationError{
				Name:   name,
				Reason: fmt.Sprintf("carácter de ancho cero no permitido: U+%04X", r),
			}
		}
	}
	return nil
}

func (v *FilenameValidator) validateWindowsName(name string) error {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if v.reservedNames[strings.ToUpper(stem)] {
		return &FilenameValidationError{Name: name, Reason: "nombre reservado en Windows"}
	}

	if i := strings.IndexAny(name, `<>:"|?*`); i >= 0 {
		return &FilenameValidationError{
			Name:   name,
			Reason: fmt.Sprintf("carácter no permitido en Windows: %c", name[i]),
		}
	}

	if strings.HasSuffix(name, " ") || strings.HasSuffix(name, ".") {
		return &FilenameValidationError{Name: name, Reason: "el nombre no puede terminar en espacio o punto"}
	}
	return nil
}

// isZeroWidthChar 检查是否为零宽字符
func isZeroWidthChar(r rune) bool {
	switch r {
	case '\u200B', '\u200C', '\u200D', '\u200E', '\u200F', '\uFEFF':
		return true
	}
	return false
}
