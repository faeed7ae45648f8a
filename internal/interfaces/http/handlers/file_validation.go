package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/easayliu/local-files-api/internal/application/contracts"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators 注册请求绑定使用的校验规则,需在处理请求前调用一次
//   - 校验错误使用 json 字段名(filename)而不是结构体字段名(Filename)
//   - notblank: 仅含空白字符的字符串视为未填写
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("notblank", notBlank)
	})
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// bindingError 将请求绑定错误转换为字段级的校验错误
// 请求体无法解析时按空请求处理,与缺少字段的结果一致
func bindingError(obj interface{}, err error) *contracts.ServiceError {
	fields := []string{}
	details := map[string][]string{}
	add := func(field, msg string) {
		if _, ok := details[field]; !ok {
			fields = append(fields, field)
		}
		details[field] = append(details[field], msg)
	}

	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			add(fe.Field(), fieldMessage(fe.Field(), fe.Tag()))
		}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		add(field, fieldMessage(field, "string"))
		// 类型错误之外的字段仍需校验
		if verr := binding.Validator.ValidateStruct(obj); verr != nil && errors.As(verr, &verrs) {
			for _, fe := range verrs {
				if fe.Field() != field {
					add(fe.Field(), fieldMessage(fe.Field(), fe.Tag()))
				}
			}
		}
	default:
		if verr := binding.Validator.ValidateStruct(obj); verr != nil && errors.As(verr, &verrs) {
			for _, fe := range verrs {
				add(fe.Field(), fieldMessage(fe.Field(), fe.Tag()))
			}
		}
		if len(details) == 0 {
			add("body", "El cuerpo de la solicitud no es válido.")
		}
	}

	message := details[fields[0]][0]
	if extra := countMessages(details) - 1; extra == 1 {
		message += " (y 1 error más)"
	} else if extra > 1 {
		message += fmt.Sprintf(" (y %d errores más)", extra)
	}

	return contracts.NewServiceErrorWithDetails(contracts.ErrorCodeInvalidRequest, message, details)
}

func fieldMessage(field, tag string) string {
	switch tag {
	case "required", "notblank":
		return fmt.Sprintf("El campo %s es obligatorio.", field)
	case "string":
		return fmt.Sprintf("El campo %s debe ser una cadena de texto.", field)
	default:
		return fmt.Sprintf("El campo %s no es válido.", field)
	}
}

func countMessages(details map[string][]string) int {
	n := 0
	for _, msgs := range details {
		n += len(msgs)
	}
	return n
}
