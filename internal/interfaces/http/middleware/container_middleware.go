package middleware

import (
	"github.com/easayliu/local-files-api/internal/application/services"
	"github.com/gin-gonic/gin"
)

// ContainerKey gin.Context 中服务容器的键
const ContainerKey = "container"

// ContainerMiddleware 服务容器中间件
// 将ServiceContainer注入到gin.Context中,供不持有容器的handler使用
func ContainerMiddleware(container *services.ServiceContainer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContainerKey, container)
		c.Next()
	}
}
