// Package config handles viewer and exporter configuration.
package config

// Config holds all tool settings.
type Config struct {
	Rollout RolloutConfig `yaml:"rollout"`
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// RolloutConfig identifies the input sequence.
type RolloutConfig struct {
	Path string `yaml:"path"` // path to the .roll rollout file
	FPS  int    `yaml:"fps"`  // playback / encode frame rate
}

// WindowConfig holds interactive viewer display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// RenderConfig holds headless rendering settings.
type RenderConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ExportConfig holds output paths for the headless entry point.
type ExportConfig struct {
	FramesDir string `yaml:"frames_dir"` // rendered PNG frames
	ObjsDir   string `yaml:"objs_dir"`   // per-sequence OBJ exports
	WriteObjs bool   `yaml:"write_objs"`
	Video     string `yaml:"video"` // output video path, empty = no encode
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Rollout: RolloutConfig{
			FPS: 30,
		},
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Render: RenderConfig{
			Width:  1280,
			Height: 720,
		},
		Export: ExportConfig{
			FramesDir: "frames",
			ObjsDir:   "objs",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
