package services

import (
	"errors"
	"time"

	"gongjia-price-service/internal/domain/models"
	"gongjia-price-service/internal/infrastructure/config"
	"gongjia-price-service/internal/infrastructure/store"
)

// PriceFileName 价格表文档名
const PriceFileName = "prices.json"

// ErrCatalogIncomplete 价格表更新缺少 basePrices 或 districts
var ErrCatalogIncomplete = errors.New("basePrices 与 districts 均不能为空")

// InterfacePriceService 价格表服务接口
type InterfacePriceService interface {
	Get() (*models.PriceCatalog, error)
	Replace(basePrices map[string]float64, districts []models.District) (*models.PriceCatalog, error)
	EnsureSeeded() error
}

// PriceService 提供价格表读写服务
type PriceService struct {
	Store  *store.Store
	Config *config.Config
}

// NewPriceService 创建一个新的价格表服务
func NewPriceService(st *store.Store, cfg *config.Config) InterfacePriceService {
	return &PriceService{
		Store:  st,
		Config: cfg,
	}
}

// DefaultCatalog 返回出厂默认价格表：三种管径的基础价与成都各区送货加价
func DefaultCatalog() *models.PriceCatalog {
	return &models.PriceCatalog{
		BasePrices: map[string]float64{
			"dn300": 980,
			"dn500": 1680,
			"dn800": 2880,
		},
		Districts: []models.District{
			{Name: "锦江区", Cost: 0},
			{Name: "青羊区", Cost: 0},
			{Name: "金牛区", Cost: 50},
			{Name: "武侯区", Cost: 50},
			{Name: "成华区", Cost: 50},
			{Name: "龙泉驿区", Cost: 120},
			{Name: "新都区", Cost: 120},
			{Name: "郫都区", Cost: 150},
			{Name: "温江区", Cost: 150},
			{Name: "双流区", Cost: 150},
			{Name: "青白江区", Cost: 200},
		},
		LastUpdated: time.Now().UTC(),
	}
}

// Get 读取当前价格表
func (s *PriceService) Get() (*models.PriceCatalog, error) {
	var catalog models.PriceCatalog
	if err := s.Store.Load(PriceFileName, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Replace 整体覆盖价格表并盖上更新时间。
// 两个字段必须同时提供，不支持部分更新；并发写入以最后一次为准。
func (s *PriceService) Replace(basePrices map[string]float64, districts []models.District) (*models.PriceCatalog, error) {
	if basePrices == nil || districts == nil {
		return nil, ErrCatalogIncomplete
	}

	catalog := &models.PriceCatalog{
		BasePrices:  basePrices,
		Districts:   districts,
		LastUpdated: time.Now().UTC(),
	}
	if err := s.Store.Save(PriceFileName, catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// EnsureSeeded 确保价格表文档存在，缺失时写入默认价格表
func (s *PriceService) EnsureSeeded() error {
	if s.Store.Exists(PriceFileName) {
		return nil
	}
	return s.Store.Save(PriceFileName, DefaultCatalog())
}
