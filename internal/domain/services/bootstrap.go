package services

import (
	"gongjia-price-service/internal/infrastructure/config"
	"gongjia-price-service/internal/infrastructure/store"
)

// EnsureInitialized 启动时的显式初始化步骤：逐个检查并补齐缺失的存储文档。
// 幂等，已存在的文档不会被改写。
func EnsureInitialized(st *store.Store, cfg *config.Config) error {
	if err := NewAdminService(st, cfg).EnsureDefaultAdmin(); err != nil {
		return err
	}
	return NewPriceService(st, cfg).EnsureSeeded()
}
