package store

import (
	"os"
	"path/filepath"
	"testing"
)

type doc struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func TestSaveAndLoad(t *testing.T) {
	st, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("创建存储失败: %v", err)
	}

	in := doc{Name: "dn500", Value: 1680}
	if err := st.Save("test.json", &in); err != nil {
		t.Fatalf("写入文档失败: %v", err)
	}

	var out doc
	if err := st.Load("test.json", &out); err != nil {
		t.Fatalf("读取文档失败: %v", err)
	}
	if out != in {
		t.Errorf("读取结果不一致: got %+v, want %+v", out, in)
	}
}

func TestExists(t *testing.T) {
	st, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("创建存储失败: %v", err)
	}

	if st.Exists("missing.json") {
		t.Error("不存在的文档不应报告存在")
	}
	if err := st.Save("present.json", doc{}); err != nil {
		t.Fatalf("写入文档失败: %v", err)
	}
	if !st.Exists("present.json") {
		t.Error("已写入的文档应报告存在")
	}
}

func TestLoadMissingFile(t *testing.T) {
	st, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("创建存储失败: %v", err)
	}

	var out doc
	if err := st.Load("missing.json", &out); err == nil {
		t.Error("读取不存在的文档应返回错误")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	st, err := NewStore(dir)
	if err != nil {
		t.Fatalf("创建存储失败: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("准备损坏文档失败: %v", err)
	}

	var out doc
	if err := st.Load("broken.json", &out); err == nil {
		t.Error("读取损坏的文档应返回错误")
	}
}

func TestNewStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	if _, err := NewStore(dir); err != nil {
		t.Fatalf("创建存储失败: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("数据目录未创建: %v", err)
	}
}
