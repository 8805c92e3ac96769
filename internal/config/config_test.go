package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Rollout.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.Rollout.FPS)
	}
	if cfg.Rollout.Path != "" {
		t.Errorf("expected empty rollout path, got %s", cfg.Rollout.Path)
	}

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Export.FramesDir != "frames" {
		t.Errorf("expected frames dir 'frames', got %s", cfg.Export.FramesDir)
	}
	if cfg.Export.Video != "" {
		t.Errorf("expected no video output by default, got %s", cfg.Export.Video)
	}
	if cfg.Export.WriteObjs {
		t.Error("expected write_objs to be false by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "rolloutview.yaml")

	yamlContent := `
rollout:
  path: "runs/rollout_042.roll"
  fps: 60

window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

render:
  width: 3840
  height: 2160

export:
  frames_dir: "out/frames"
  objs_dir: "out/objs"
  write_objs: true
  video: "out/rollout.mp4"

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Rollout.Path != "runs/rollout_042.roll" {
		t.Errorf("expected rollout path from file, got %s", cfg.Rollout.Path)
	}
	if cfg.Rollout.FPS != 60 {
		t.Errorf("expected fps 60, got %d", cfg.Rollout.FPS)
	}
	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Render.Width != 3840 {
		t.Errorf("expected render width 3840, got %d", cfg.Render.Width)
	}
	if cfg.Export.FramesDir != "out/frames" {
		t.Errorf("expected frames dir 'out/frames', got %s", cfg.Export.FramesDir)
	}
	if !cfg.Export.WriteObjs {
		t.Error("expected write_objs to be true")
	}
	if cfg.Export.Video != "out/rollout.mp4" {
		t.Errorf("expected video path, got %s", cfg.Export.Video)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
rollout:
  fps: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/rolloutview.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "rollout flag",
			setup: func() { *flagRollout = "run.roll" },
			verify: func(cfg *Config) {
				if cfg.Rollout.Path != "run.roll" {
					t.Errorf("expected rollout path 'run.roll', got %s", cfg.Rollout.Path)
				}
			},
			teardown: func() { *flagRollout = "" },
		},
		{
			name:  "fps flag",
			setup: func() { *flagFPS = 24 },
			verify: func(cfg *Config) {
				if cfg.Rollout.FPS != 24 {
					t.Errorf("expected fps 24, got %d", cfg.Rollout.FPS)
				}
			},
			teardown: func() { *flagFPS = 0 },
		},
		{
			name: "export flags",
			setup: func() {
				*flagOut = "render_out"
				*flagObjs = true
				*flagVideo = "clip.mp4"
			},
			verify: func(cfg *Config) {
				if cfg.Export.FramesDir != "render_out" {
					t.Errorf("expected frames dir 'render_out', got %s", cfg.Export.FramesDir)
				}
				if !cfg.Export.WriteObjs {
					t.Error("expected write_objs to be enabled")
				}
				if cfg.Export.Video != "clip.mp4" {
					t.Errorf("expected video 'clip.mp4', got %s", cfg.Export.Video)
				}
			},
			teardown: func() {
				*flagOut = ""
				*flagObjs = false
				*flagVideo = ""
			},
		},
		{
			name: "size flags apply to window and render",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Render.Width != 2560 {
					t.Errorf("width flag not applied: window %d, render %d", cfg.Window.Width, cfg.Render.Width)
				}
				if cfg.Window.Height != 1440 || cfg.Render.Height != 1440 {
					t.Errorf("height flag not applied: window %d, render %d", cfg.Window.Height, cfg.Render.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "rolloutview.yaml")

	yamlContent := `
rollout:
  fps: 24
window:
  width: 1600
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagFPS = 48
	defer func() {
		*flagConfig = ""
		*flagFPS = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// FPS should come from the flag (48), not the file (24)
	if cfg.Rollout.FPS != 48 {
		t.Errorf("expected fps 48 from flag, got %d", cfg.Rollout.FPS)
	}
	// Width should come from the file since no flag override
	if cfg.Window.Width != 1600 {
		t.Errorf("expected width 1600 from file, got %d", cfg.Window.Width)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "rolloutview.yaml")

	cfg := Default()
	cfg.Rollout.FPS = 12
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reloading saved config: %v", err)
	}
	if loaded.Rollout.FPS != 12 {
		t.Errorf("round-trip lost fps: got %d", loaded.Rollout.FPS)
	}
}
