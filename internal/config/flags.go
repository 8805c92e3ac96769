package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagRollout = flag.String("rollout", "", "Path to the rollout file")
	flagFPS     = flag.Int("fps", 0, "Playback / encode frame rate")
	flagOut     = flag.String("out", "", "Output directory for rendered frames")
	flagObjs    = flag.Bool("objs", false, "Also export per-frame OBJ files")
	flagVideo   = flag.String("video", "", "Encode rendered frames into this video file")
	flagWidth   = flag.Int("width", 0, "Window / frame width")
	flagHeight  = flag.Int("height", 0, "Window / frame height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagRollout != "" {
		cfg.Rollout.Path = *flagRollout
	}
	if *flagFPS > 0 {
		cfg.Rollout.FPS = *flagFPS
	}
	if *flagOut != "" {
		cfg.Export.FramesDir = *flagOut
	}
	if *flagObjs {
		cfg.Export.WriteObjs = true
	}
	if *flagVideo != "" {
		cfg.Export.Video = *flagVideo
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
		cfg.Render.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
		cfg.Render.Height = *flagHeight
	}
}
