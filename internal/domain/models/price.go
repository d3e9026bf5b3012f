package models

import "time"

// District 行政区送货加价
type District struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// PriceCatalog 价格表文档，整体读写，无字段级更新
type PriceCatalog struct {
	BasePrices  map[string]float64 `json:"basePrices"` // 管径编号 -> 单节基础价
	Districts   []District         `json:"districts"`
	LastUpdated time.Time          `json:"lastUpdated"`
}
