package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 480 {
		t.Errorf("expected height 480, got %d", cfg.Window.Height)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}
	if !cfg.Window.Resizable {
		t.Error("expected resizable to be true by default")
	}

	if cfg.Render.ShaderFile != "" {
		t.Errorf("expected empty shader file (embedded default), got %s", cfg.Render.ShaderFile)
	}
	if cfg.Render.ClearColor[3] != 1.0 {
		t.Errorf("expected opaque clear color, got alpha %f", cfg.Render.ClearColor[3])
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
window:
  title: Test Window
  width: 800
  height: 600
  vsync: false
render:
  shader_file: custom.shader
  clear_color: [0.0, 0.0, 0.0, 1.0]
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Window.Title != "Test Window" {
		t.Errorf("expected title 'Test Window', got %q", cfg.Window.Title)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.VSync {
		t.Error("expected vsync false after load")
	}
	// Values absent from the file keep their defaults.
	if !cfg.Window.Resizable {
		t.Error("expected resizable to keep its default true")
	}
	if cfg.Render.ShaderFile != "custom.shader" {
		t.Errorf("expected shader file 'custom.shader', got %q", cfg.Render.ShaderFile)
	}
	if cfg.Render.ClearColor != [4]float32{0, 0, 0, 1} {
		t.Errorf("unexpected clear color %v", cfg.Render.ClearColor)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.yaml")

	cfg := Default()
	cfg.Window.Title = "Saved"
	cfg.Window.Width = 1024
	cfg.Render.CaptureFile = "frame.png"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if loaded.Window.Title != "Saved" {
		t.Errorf("expected title 'Saved', got %q", loaded.Window.Title)
	}
	if loaded.Window.Width != 1024 {
		t.Errorf("expected width 1024, got %d", loaded.Window.Width)
	}
	if loaded.Render.CaptureFile != "frame.png" {
		t.Errorf("expected capture file 'frame.png', got %q", loaded.Render.CaptureFile)
	}
}
