package logger

import (
	"fmt"
	"strings"
)

// 需要脱敏的字段关键字
var sensitiveKeys = []string{
	"token", "password", "passwd", "pwd",
	"secret", "api_key", "apikey", "api-key",
	"authorization", "auth",
}

// 日志中只保留文件内容的前 maxPayloadLen 个字节
var payloadKeys = []string{"content", "body", "payload"}

const maxPayloadLen = 64

// MaskToken 脱敏token字符串
// 规则:
//   - 空字符串返回空
//   - 长度<8: 返回 "***"
//   - 长度>=8: 保留前4后4,中间用星号替换
func MaskToken(token string) string {
	if token == "" {
		return ""
	}

	length := len(token)
	if length < 8 {
		return "***"
	}

	return token[:4] + strings.Repeat("*", length-8) + token[length-4:]
}

// TruncatePayload 截断过长的文件内容,避免整份文件进入日志
func TruncatePayload(s string) string {
	if len(s) <= maxPayloadLen {
		return s
	}
	return fmt.Sprintf("%s...(%d bytes)", s[:maxPayloadLen], len(s))
}

// IsSensitiveKey 判断键名是否为敏感字段
func IsSensitiveKey(key string) bool {
	return containsAny(strings.ToLower(key), sensitiveKeys)
}

func isPayloadKey(key string) bool {
	return containsAny(strings.ToLower(key), payloadKeys)
}

func containsAny(s string, keys []string) bool {
	for _, k := range keys {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// SanitizeValue 根据键名对值做脱敏或截断
func SanitizeValue(key string, value interface{}) interface{} {
	if IsSensitiveKey(key) {
		if strVal, ok := value.(string); ok {
			return MaskToken(strVal)
		}
		return "***MASKED***"
	}

	if isPayloadKey(key) {
		switch v := value.(type) {
		case string:
			return TruncatePayload(v)
		case []byte:
			return TruncatePayload(string(v))
		}
	}

	return value
}

// SanitizeArgs 批量处理slog键值对参数: key1, value1, key2, value2, ...
func SanitizeArgs(args ...any) []any {
	if len(args) == 0 {
		return args
	}

	result := make([]any, len(args))
	for i := 0; i < len(args); i += 2 {
		result[i] = args[i]
		if i+1 >= len(args) {
			break
		}
		if key, ok := args[i].(string); ok {
			result[i+1] = SanitizeValue(key, args[i+1])
		} else {
			result[i+1] = args[i+1]
		}
	}

	return result
}
