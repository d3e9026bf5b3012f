// @title           共佳建材价格服务 API
// @version         1.0
// @description     建材公司官网后端：价格表查询与维护、管理员登录、咨询转发

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"gongjia-price-service/internal/app/routes"
	"gongjia-price-service/internal/domain/services"
	"gongjia-price-service/internal/infrastructure/config"
	"gongjia-price-service/internal/infrastructure/store"
	Logger "gongjia-price-service/pkg/logger"
)

func main() {
	// 初始化日志配置
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		Logger.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		Logger.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 创建文档存储
	st, err := store.NewStore(cfg.DataDir)
	if err != nil {
		Logger.Error("创建文档存储失败: %v", err)
		os.Exit(1)
	}

	// 补齐缺失的存储文档：管理员凭证与默认价格表
	if err := services.EnsureInitialized(st, cfg); err != nil {
		Logger.Error("初始化存储文档失败: %v", err)
		os.Exit(1)
	}

	// 邮件中继能力在启动时检查一次
	if !cfg.MailConfigured() {
		Logger.Warning("SMTP未配置，联系表单转发功能停用")
	}

	// 初始化路由
	r := routes.SetupRouter(st, cfg)

	// 启动服务器 - 监听所有接口(0.0.0.0)而不是只监听localhost
	port := cfg.ServerPort
	Logger.Info("服务器启动在: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}
