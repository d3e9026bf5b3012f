package services

import (
	"errors"
	"testing"
)

func TestEnsureDefaultAdminAndAuthenticate(t *testing.T) {
	st, cfg := newTestStore(t)
	svc := NewAdminService(st, cfg)

	if err := svc.EnsureDefaultAdmin(); err != nil {
		t.Fatalf("播种默认管理员失败: %v", err)
	}

	admin, err := svc.Authenticate("admin", cfg.DefaultAdminPassword)
	if err != nil {
		t.Fatalf("默认管理员登录失败: %v", err)
	}
	if admin.Username != "admin" || admin.Role != "admin" {
		t.Errorf("凭证记录错误: %+v", admin)
	}
	if admin.Password == cfg.DefaultAdminPassword {
		t.Error("密码必须以哈希形式存储")
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	st, cfg := newTestStore(t)
	svc := NewAdminService(st, cfg)

	if err := svc.EnsureDefaultAdmin(); err != nil {
		t.Fatalf("播种默认管理员失败: %v", err)
	}

	if _, err := svc.Authenticate("admin", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("错误密码应返回ErrInvalidCredentials: got %v", err)
	}
	if _, err := svc.Authenticate("nobody", cfg.DefaultAdminPassword); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("未知用户名应返回ErrInvalidCredentials: got %v", err)
	}
}

func TestEnsureDefaultAdminIdempotent(t *testing.T) {
	st, cfg := newTestStore(t)
	svc := NewAdminService(st, cfg)

	if err := svc.EnsureDefaultAdmin(); err != nil {
		t.Fatalf("播种默认管理员失败: %v", err)
	}
	first, err := svc.GetAdmin()
	if err != nil {
		t.Fatalf("读取凭证失败: %v", err)
	}

	if err := svc.EnsureDefaultAdmin(); err != nil {
		t.Fatalf("重复播种失败: %v", err)
	}
	second, err := svc.GetAdmin()
	if err != nil {
		t.Fatalf("读取凭证失败: %v", err)
	}
	if first.Password != second.Password {
		t.Error("重复播种不应改写已有凭证")
	}
}

func TestAuthenticateMissingStore(t *testing.T) {
	st, cfg := newTestStore(t)
	svc := NewAdminService(st, cfg)

	// 未播种时登录应报存储错误，而不是凭证错误
	_, err := svc.Authenticate("admin", cfg.DefaultAdminPassword)
	if err == nil {
		t.Fatal("凭证文档缺失时登录应返回错误")
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Error("存储错误不应伪装成凭证错误")
	}
}
