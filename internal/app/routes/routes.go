package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "gongjia-price-service/docs"
	"gongjia-price-service/internal/app/controllers"
	"gongjia-price-service/internal/app/middleware"
	"gongjia-price-service/internal/domain/services/container"
	"gongjia-price-service/internal/infrastructure/config"
	"gongjia-price-service/internal/infrastructure/store"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(st *store.Store, cfg *config.Config) *gin.Engine {
	// 创建服务容器
	serviceContainer := container.NewServiceContainer(st, cfg)
	return SetupRouterWithContainer(serviceContainer)
}

// SetupRouterWithContainer 基于已有服务容器初始化路由，测试可先替换容器中的服务
func SetupRouterWithContainer(serviceContainer *container.ServiceContainer) *gin.Engine {
	cfg := serviceContainer.GetConfig()

	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件，仅放行官网前端来源
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.AllowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	// 初始化中间件
	middleware.InitAuthMiddleware(cfg)

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	healthController := controllers.NewHealthCheckController()
	r.GET("/", healthController.Index)
	r.GET("/health", healthController.Health)

	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加IP限流中间件 - 每秒允许20个请求，最多突发40个请求
	api.Use(middleware.IPRateLimiter(20, 40))

	// 认证路由
	api.POST("/login", controllers.HandleJWTFunc(container, "login"))

	// 价格表路由
	api.GET("/prices", controllers.HandlePriceFunc(container, "getPrices"))

	// 联系表单路由，按路径再限流一层
	api.POST("/contact", middleware.PathRateLimiter(5, 10), controllers.HandleContactFunc(container, "submit"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateAdmin())

	// 价格表更新路由
	auth.PUT("/prices", controllers.HandlePriceFunc(container, "updatePrices"))
}
