package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/easayliu/local-files-api/internal/application/contracts"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, handler gin.HandlerFunc) (int, map[string]interface{}) {
	t.Helper()

	r := gin.New()
	r.Use(RecoverMiddleware(), RequestIDMiddleware(), ErrorHandlerMiddleware())
	r.GET("/", handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return w.Code, body
}

func TestMapErrorCodeToHTTPStatus(t *testing.T) {
	tests := []struct {
		code contracts.ErrorCode
		want int
	}{
		{contracts.ErrorCodeInvalidRequest, http.StatusUnprocessableEntity},
		{contracts.ErrorCodeNotFound, http.StatusNotFound},
		{contracts.ErrorCodeConflict, http.StatusConflict},
		{contracts.ErrorCodeRateLimit, http.StatusTooManyRequests},
		{contracts.ErrorCodeServiceUnavailable, http.StatusServiceUnavailable},
		{contracts.ErrorCodeInternalError, http.StatusInternalServerError},
		{contracts.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, mapErrorCodeToHTTPStatus(tt.code))
		})
	}
}

func TestErrorHandlerMiddleware_ServiceError(t *testing.T) {
	status, body := serve(t, func(c *gin.Context) {
		_ = c.Error(contracts.NewServiceError(contracts.ErrorCodeConflict, "El archivo ya existe"))
	})

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, map[string]interface{}{"message": "El archivo ya existe"}, body)
}

func TestErrorHandlerMiddleware_HidesInternalErrors(t *testing.T) {
	status, body := serve(t, func(c *gin.Context) {
		_ = c.Error(errors.New("open /srv/secret: permission denied"))
	})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Error interno del servidor", body["message"])
}

func TestErrorHandlerMiddleware_ValidationDetails(t *testing.T) {
	status, body := serve(t, func(c *gin.Context) {
		_ = c.Error(contracts.NewServiceErrorWithDetails(
			contracts.ErrorCodeInvalidRequest,
			"El campo content es obligatorio.",
			map[string][]string{"content": {"El campo content es obligatorio."}},
		))
	})

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "errors")
	assert.NotContains(t, body, "content")
}

func TestRecoverMiddleware(t *testing.T) {
	status, body := serve(t, func(c *gin.Context) {
		panic("boom")
	})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Error interno del servidor", body["message"])
}
