package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/modelstore/pkg/response"
)

// HealthCheck 依赖健康检查函数
type HealthCheck func(ctx context.Context) error

// HealthHandler 健康检查处理器
type HealthHandler struct {
	checks map[string]HealthCheck
}

// NewHealthHandler 创建健康检查处理器，checks的键为依赖名称（database、redis）
func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Ping 健康检查
// @Summary      健康检查
// @Description  检查数据库和Redis连接；任一依赖不可用返回503
// @Tags         系统
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{}
// @Router       /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	deps := make(map[string]string, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			zap.L().Warn("健康检查失败", zap.String("dependency", name), zap.Error(err))
			deps[name] = err.Error()
			healthy = false
			continue
		}
		deps[name] = "ok"
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"message":      "unhealthy",
			"status":       "unhealthy",
			"dependencies": deps,
		})
		return
	}

	response.Success(c, gin.H{
		"message":      "pong",
		"status":       "healthy",
		"dependencies": deps,
	})
}
