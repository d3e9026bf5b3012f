package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"gongjia-price-service/internal/domain/models"
	"gongjia-price-service/internal/infrastructure/config"
	"gongjia-price-service/internal/infrastructure/store"
)

// AdminFileName 管理员凭证文档名
const AdminFileName = "admin.json"

// ErrInvalidCredentials 用户名不存在或密码不匹配
var ErrInvalidCredentials = errors.New("用户名或密码错误")

// InterfaceAdminService Admin服务接口
type InterfaceAdminService interface {
	Authenticate(username, password string) (*models.Admin, error)
	GetAdmin() (*models.Admin, error)
	CheckPassword(password, hash string) bool
	EnsureDefaultAdmin() error
}

// AdminService 提供管理员凭证相关的服务
type AdminService struct {
	Store  *store.Store
	Config *config.Config
}

// NewAdminService 创建一个新的管理员服务
func NewAdminService(st *store.Store, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		Store:  st,
		Config: cfg,
	}
}

// CheckPassword 验证密码是否匹配
func (s *AdminService) CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GetAdmin 读取管理员凭证记录
func (s *AdminService) GetAdmin() (*models.Admin, error) {
	var admin models.Admin
	if err := s.Store.Load(AdminFileName, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// Authenticate 校验用户名与密码，成功时返回凭证记录
func (s *AdminService) Authenticate(username, password string) (*models.Admin, error) {
	admin, err := s.GetAdmin()
	if err != nil {
		return nil, err
	}
	if username != admin.Username {
		return nil, ErrInvalidCredentials
	}
	if !s.CheckPassword(password, admin.Password) {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// EnsureDefaultAdmin 确保凭证文档存在，缺失时写入默认管理员
func (s *AdminService) EnsureDefaultAdmin() error {
	if s.Store.Exists(AdminFileName) {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(s.Config.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Username: "admin",
		Password: string(hashedPassword),
		Role:     "admin",
	}
	return s.Store.Save(AdminFileName, &admin)
}
