// Package main is the headless cloth rollout renderer: PNG frames, optional
// per-frame OBJ export, optional video encode.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/clothsim-tools/rolloutview/internal/config"
	"github.com/clothsim-tools/rolloutview/internal/logger"
	"github.com/clothsim-tools/rolloutview/internal/render"
	"github.com/clothsim-tools/rolloutview/internal/video"
	"github.com/clothsim-tools/rolloutview/pkg/objseq"
	"github.com/clothsim-tools/rolloutview/pkg/rollout"
	"github.com/clothsim-tools/rolloutview/pkg/sequence"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Rollout.Path == "" {
		fmt.Fprintln(os.Stderr, "Usage: rolloutrender -rollout <file.roll> [-fps N] [-out dir] [-objs] [-video out.mp4]")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	r, err := rollout.Load(cfg.Rollout.Path)
	if err != nil {
		return err
	}

	logger.Info("rollout loaded",
		zap.String("path", cfg.Rollout.Path),
		zap.Int("frames", r.Frames()),
		zap.Bool("obstacle", r.HasObstacle()),
	)

	name := strings.TrimSuffix(filepath.Base(cfg.Rollout.Path), filepath.Ext(cfg.Rollout.Path))
	seqs, err := sequence.Build(r, sequence.DefaultOptions(name))
	if err != nil {
		return err
	}

	if cfg.Export.WriteObjs {
		for i, seq := range seqs {
			dir := filepath.Join(cfg.Export.ObjsDir, strconv.Itoa(i))
			if err := objseq.WriteMeshSequence(dir, seq); err != nil {
				return err
			}
			logger.Info("OBJ sequence written",
				zap.String("sequence", seq.Name),
				zap.String("dir", dir),
			)
		}
	}

	cam := render.LockToNode(seqs[0], render.DefaultCameraOffset)
	backend := render.NewAenoBackend(cfg.Render.Width, cfg.Render.Height)
	if err := backend.RenderSequences(seqs, cam, cfg.Export.FramesDir); err != nil {
		return err
	}

	if cfg.Export.Video != "" {
		if err := video.Encode(cfg.Export.FramesDir, cfg.Export.Video, cfg.Rollout.FPS); err != nil {
			return err
		}
		logger.Info("video written", zap.String("path", cfg.Export.Video))
	}

	return nil
}
