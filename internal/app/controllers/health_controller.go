package controllers

import (
	"github.com/gin-gonic/gin"

	"gongjia-price-service/internal/error/response"
)

// HealthCheckController 健康检查控制器
type HealthCheckController struct{}

// NewHealthCheckController 创建健康检查控制器实例
func NewHealthCheckController() *HealthCheckController {
	return &HealthCheckController{}
}

// Health 健康检查端点
func (h *HealthCheckController) Health(c *gin.Context) {
	response.Success(c, gin.H{
		"ok": true,
	})
}

// Index 根路径欢迎信息
func (h *HealthCheckController) Index(c *gin.Context) {
	response.Success(c, gin.H{
		"message": "共佳建材价格服务运行中",
	})
}
