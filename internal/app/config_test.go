package app

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadConfigDefaults(t *testing.T) {
	// 1. 创建只包含部分字段的临时配置文件
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")

	content := "database:\n  type: memory\n"
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write initial config file: %v", err)
	}

	// 2. 加载配置
	cfg, realpath, err := LoadConfig(tmpFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if realpath == "" {
		t.Error("expected resolved config path")
	}

	// 3. 显式设置的字段生效，其余字段回填默认值
	if cfg.Database.Type != "memory" {
		t.Errorf("Expected database type memory, got %s", cfg.Database.Type)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.Log.Level)
	}
	if cfg.Database.Charset != "utf8mb4" {
		t.Errorf("Expected default charset utf8mb4, got %s", cfg.Database.Charset)
	}
	if cfg.Database.MaxIdleConns != 10 || cfg.Database.MaxOpenConns != 100 {
		t.Errorf("Expected default pool sizes 10/100, got %d/%d",
			cfg.Database.MaxIdleConns, cfg.Database.MaxOpenConns)
	}
	if cfg.App.Language != "en" {
		t.Errorf("Expected default language en, got %s", cfg.App.Language)
	}
}

func TestConfigSave(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")

	initial := AppConfig{
		App: AppSettings{Language: "en"},
	}
	data, err := yaml.Marshal(initial)
	if err != nil {
		t.Fatalf("Failed to marshal initial config: %v", err)
	}
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		t.Fatalf("Failed to write initial config file: %v", err)
	}

	cfg, _, err := LoadConfig(tmpFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// 修改配置并保存
	cfg.App.Language = "zh_cn"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Config.Save error: %v, file: %s", err, cfg.File)
	}

	// 验证文件内容
	updatedData, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read updated config file: %v", err)
	}

	var updated AppConfig
	if err := yaml.Unmarshal(updatedData, &updated); err != nil {
		t.Fatalf("Failed to unmarshal updated config: %v", err)
	}
	if updated.App.Language != "zh_cn" {
		t.Errorf("Expected language zh_cn, got %s", updated.App.Language)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}
