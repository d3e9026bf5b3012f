package container

import (
	"sync"

	"gongjia-price-service/internal/domain/services"
	"gongjia-price-service/internal/infrastructure/config"
	"gongjia-price-service/internal/infrastructure/store"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	store  *store.Store
	config *config.Config

	// 基础服务
	jwtService services.InterfaceJWTService

	// 业务服务
	adminService services.InterfaceAdminService
	priceService services.InterfacePriceService
	mailService  services.InterfaceMailService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(st *store.Store, cfg *config.Config) *ServiceContainer {
	if st == nil {
		panic("文档存储为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		store:  st,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)

	// 初始化业务服务
	c.adminService = services.NewAdminService(c.store, c.config)
	c.priceService = services.NewPriceService(c.store, c.config)
	c.mailService = services.NewMailService(c.config)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "store":
		return c.store
	case "jwt":
		return c.jwtService
	case "admin":
		return c.adminService
	case "price":
		return c.priceService
	case "mail":
		return c.mailService
	default:
		return nil
	}
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// GetStore 获取文档存储
func (c *ServiceContainer) GetStore() *store.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store
}

// SetMailService 替换邮件中继服务，供测试注入捕获发送器
func (c *ServiceContainer) SetMailService(mail services.InterfaceMailService) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mailService = mail
}
