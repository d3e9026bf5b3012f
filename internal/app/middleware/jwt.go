package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"gongjia-price-service/internal/domain/services"
	"gongjia-price-service/internal/error/code"
	"gongjia-price-service/internal/error/response"
	"gongjia-price-service/internal/infrastructure/config"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// AuthenticateAdmin 验证管理员权限。
// 缺失、无效或过期的令牌返回401，角色不是admin返回403。
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.FailWithMessage(c, code.ErrTokenInvalid, "缺少认证令牌")
			c.Abort()
			return
		}

		// 提取并校验token
		tokenString := extractToken(authHeader)
		claims, err := jwtService.ExtractClaims(tokenString)
		if err != nil {
			response.FailWithMessage(c, code.ErrTokenInvalid, "无效或已过期的令牌")
			c.Abort()
			return
		}

		// 检查是否是管理员
		if claims.Role != "admin" {
			response.Fail(c, code.ErrPermissionDenied)
			c.Abort()
			return
		}

		// 存储claims到上下文
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}
