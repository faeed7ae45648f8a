package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/easayliu/local-files-api/internal/application/contracts"
	"github.com/easayliu/local-files-api/pkg/logger"
	"github.com/easayliu/local-files-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware 统一错误处理中间件
// 捕获handler中通过 c.Error 设置的错误,转换为对应的HTTP响应
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var serviceErr *contracts.ServiceError
		if !errors.As(err, &serviceErr) {
			serviceErr = contracts.NewServiceErrorWithCause(contracts.ErrorCodeInternalError, contracts.MessageInternalError, err)
		}

		statusCode := mapErrorCodeToHTTPStatus(serviceErr.Code)
		if statusCode >= http.StatusInternalServerError {
			logger.Error("Request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", c.GetString(RequestIDKey),
				"error", err)
		}

		switch {
		case len(serviceErr.Details) > 0:
			utils.ValidationError(c, statusCode, serviceErr.Message, serviceErr.Details)
		case statusCode == http.StatusInternalServerError:
			// 内部错误不向客户端暴露细节
			utils.Abort(c, statusCode, contracts.MessageInternalError)
		default:
			utils.Abort(c, statusCode, serviceErr.Message)
		}
	}
}

// mapErrorCodeToHTTPStatus 将业务错误码映射到HTTP状态码
func mapErrorCodeToHTTPStatus(code contracts.ErrorCode) int {
	switch code {
	case contracts.ErrorCodeInvalidRequest:
		return http.StatusUnprocessableEntity
	case contracts.ErrorCodeNotFound:
		return http.StatusNotFound
	case contracts.ErrorCodeConflict:
		return http.StatusConflict
	case contracts.ErrorCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case contracts.ErrorCodeRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// RecoverMiddleware 恢复中间件 - 捕获panic并转换为500错误
func RecoverMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic recovered",
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", c.GetString(RequestIDKey),
					"panic", fmt.Sprint(r))
				utils.Abort(c, http.StatusInternalServerError, contracts.MessageInternalError)
			}
		}()
		c.Next()
	}
}
