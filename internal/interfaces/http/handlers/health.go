package handlers

import (
	"net/http"
	"time"

	"github.com/easayliu/local-files-api/internal/application/contracts"
	"github.com/gin-gonic/gin"
)

// HealthCheck 健康检查
// @Summary 健康检查
// @Description 检查服务与存储目录状态
// @Tags 健康检查
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	container := GetContainer(c)

	if err := container.GetStorageInspector().Ping(c.Request.Context()); err != nil {
		_ = c.Error(contracts.NewServiceErrorWithCause(contracts.ErrorCodeServiceUnavailable, contracts.MessageUnavailable, err))
		return
	}

	scheduler := container.GetSchedulerService()
	body := gin.H{
		"status":  "ok",
		"message": "Local files service is running",
		"jobs":    scheduler.Jobs(),
	}
	if usage, at, ok := scheduler.LastInventory(); ok {
		body["inventory"] = gin.H{
			"files":   usage.Files,
			"bytes":   usage.Bytes,
			"updated": at.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, body)
}
