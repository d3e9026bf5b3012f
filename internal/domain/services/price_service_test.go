package services

import (
	"testing"

	"gongjia-price-service/internal/domain/models"
	"gongjia-price-service/internal/infrastructure/config"
	"gongjia-price-service/internal/infrastructure/store"
)

func newTestStore(t *testing.T) (*store.Store, *config.Config) {
	t.Helper()
	st, err := store.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("创建存储失败: %v", err)
	}
	cfg := &config.Config{
		JWTSecretKey:         "test-secret",
		DefaultAdminPassword: "admin123",
	}
	return st, cfg
}

func TestEnsureSeededAndGet(t *testing.T) {
	st, cfg := newTestStore(t)
	svc := NewPriceService(st, cfg)

	if err := svc.EnsureSeeded(); err != nil {
		t.Fatalf("播种默认价格表失败: %v", err)
	}

	catalog, err := svc.Get()
	if err != nil {
		t.Fatalf("读取价格表失败: %v", err)
	}
	if catalog.BasePrices["dn500"] != 1680 {
		t.Errorf("默认dn500基础价错误: got %v", catalog.BasePrices["dn500"])
	}
	if len(catalog.Districts) != 11 {
		t.Errorf("默认行政区数量错误: got %d, want 11", len(catalog.Districts))
	}

	// 各区名称必须唯一
	seen := make(map[string]bool)
	for _, d := range catalog.Districts {
		if seen[d.Name] {
			t.Errorf("行政区名称重复: %s", d.Name)
		}
		seen[d.Name] = true
	}
}

func TestEnsureSeededIdempotent(t *testing.T) {
	st, cfg := newTestStore(t)
	svc := NewPriceService(st, cfg)

	if err := svc.EnsureSeeded(); err != nil {
		t.Fatalf("播种默认价格表失败: %v", err)
	}

	// 先改写价格表，再次播种不应覆盖已有内容
	if _, err := svc.Replace(map[string]float64{"dn300": 888}, []models.District{{Name: "锦江区", Cost: 10}}); err != nil {
		t.Fatalf("更新价格表失败: %v", err)
	}
	if err := svc.EnsureSeeded(); err != nil {
		t.Fatalf("重复播种失败: %v", err)
	}

	catalog, err := svc.Get()
	if err != nil {
		t.Fatalf("读取价格表失败: %v", err)
	}
	if catalog.BasePrices["dn300"] != 888 {
		t.Errorf("重复播种覆盖了已有价格表: got %v", catalog.BasePrices["dn300"])
	}
}

func TestReplaceRoundTrip(t *testing.T) {
	st, cfg := newTestStore(t)
	svc := NewPriceService(st, cfg)

	if err := svc.EnsureSeeded(); err != nil {
		t.Fatalf("播种默认价格表失败: %v", err)
	}
	before, err := svc.Get()
	if err != nil {
		t.Fatalf("读取价格表失败: %v", err)
	}

	newPrices := map[string]float64{"dn300": 1000, "dn500": 1700, "dn800": 2900}
	newDistricts := []models.District{{Name: "锦江区", Cost: 0}, {Name: "双流区", Cost: 180}}
	updated, err := svc.Replace(newPrices, newDistricts)
	if err != nil {
		t.Fatalf("更新价格表失败: %v", err)
	}
	if updated.LastUpdated.Before(before.LastUpdated) {
		t.Errorf("更新时间倒退: before=%v after=%v", before.LastUpdated, updated.LastUpdated)
	}

	got, err := svc.Get()
	if err != nil {
		t.Fatalf("读取价格表失败: %v", err)
	}
	if got.BasePrices["dn500"] != 1700 {
		t.Errorf("更新后dn500基础价错误: got %v", got.BasePrices["dn500"])
	}
	if len(got.Districts) != 2 || got.Districts[1].Cost != 180 {
		t.Errorf("更新后行政区列表错误: %+v", got.Districts)
	}
}

func TestReplaceRejectsMissingField(t *testing.T) {
	st, cfg := newTestStore(t)
	svc := NewPriceService(st, cfg)

	if err := svc.EnsureSeeded(); err != nil {
		t.Fatalf("播种默认价格表失败: %v", err)
	}
	before, err := svc.Get()
	if err != nil {
		t.Fatalf("读取价格表失败: %v", err)
	}

	if _, err := svc.Replace(nil, []models.District{{Name: "锦江区"}}); err != ErrCatalogIncomplete {
		t.Errorf("缺少basePrices应被拒绝: got %v", err)
	}
	if _, err := svc.Replace(map[string]float64{"dn300": 1}, nil); err != ErrCatalogIncomplete {
		t.Errorf("缺少districts应被拒绝: got %v", err)
	}

	// 被拒绝的更新不得改动存储
	after, err := svc.Get()
	if err != nil {
		t.Fatalf("读取价格表失败: %v", err)
	}
	if !after.LastUpdated.Equal(before.LastUpdated) {
		t.Errorf("被拒绝的更新改动了存储: before=%v after=%v", before.LastUpdated, after.LastUpdated)
	}
}

func TestGetMissingFile(t *testing.T) {
	st, cfg := newTestStore(t)
	svc := NewPriceService(st, cfg)

	// 未播种时读取应报错，而不是悄悄重建
	if _, err := svc.Get(); err == nil {
		t.Error("价格表缺失时读取应返回错误")
	}
	if st.Exists(PriceFileName) {
		t.Error("读取失败不应重建价格表文档")
	}
}
