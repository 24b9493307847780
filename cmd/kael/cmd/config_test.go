package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileYieldsZeroValue(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	os.Chdir(dir)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if len(cfg.Modules) != 0 || cfg.Trace {
		t.Fatalf("expected zero-value config, got %+v", cfg)
	}
}

func TestLoadConfigParsesYAML(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	os.Chdir(dir)

	content := "modules:\n  - fs\n  - json\ntrace: true\n"
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !cfg.Trace {
		t.Fatalf("expected trace: true")
	}
	if len(cfg.Modules) != 2 || cfg.Modules[0] != "fs" || cfg.Modules[1] != "json" {
		t.Fatalf("unexpected modules: %+v", cfg.Modules)
	}
}

func TestLoadConfigRejectsUnknownModule(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	os.Chdir(dir)

	content := "modules:\n  - not-a-real-module\n"
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := loadConfig(); err == nil {
		t.Fatalf("expected error for unknown module in config")
	}
}
