package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store 以数据目录为根的JSON文档存取器。
// 每个文档整体读、整体写，不做加锁，单管理员场景下以最后写入为准。
type Store struct {
	dir string
}

// NewStore 创建文档存取器，数据目录不存在时自动创建
func NewStore(dataDir string) (*Store, error) {
	if strings.TrimSpace(dataDir) == "" {
		dataDir = "./data"
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("创建数据目录失败: %w", err)
	}
	return &Store{dir: dataDir}, nil
}

// Dir 返回数据目录
func (s *Store) Dir() string {
	return s.dir
}

// Path 返回文档的完整路径
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Exists 判断文档是否存在
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Load 读取并解析文档
func (s *Store) Load(name string, v interface{}) error {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return fmt.Errorf("读取文档 %s 失败: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("解析文档 %s 失败: %w", name, err)
	}
	return nil
}

// Save 整体覆盖写入文档
func (s *Store) Save(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化文档 %s 失败: %w", name, err)
	}
	if err := os.WriteFile(s.Path(name), data, 0644); err != nil {
		return fmt.Errorf("写入文档 %s 失败: %w", name, err)
	}
	return nil
}
