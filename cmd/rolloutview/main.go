// Package main is the interactive cloth rollout viewer.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/clothsim-tools/rolloutview/internal/config"
	"github.com/clothsim-tools/rolloutview/internal/logger"
	"github.com/clothsim-tools/rolloutview/internal/viewer"
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
		fmt.Fprintln(os.Stderr, "Usage: rolloutview -rollout <file.roll> [-fps N]")
		os.Exit(1)
	}

	seqs, err := loadSequences(cfg.Rollout.Path)
	if err != nil {
		logger.Error("failed to load rollout", zap.Error(err))
		os.Exit(1)
	}

	if err := viewer.Run(cfg, seqs); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
}

// loadSequences loads a rollout and builds its display sequences, named
// after the rollout file.
func loadSequences(path string) ([]*sequence.MeshSequence, error) {
	r, err := rollout.Load(path)
	if err != nil {
		return nil, err
	}

	logger.Info("rollout loaded",
		zap.String("path", path),
		zap.Int("frames", r.Frames()),
		zap.Bool("obstacle", r.HasObstacle()),
	)

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return sequence.Build(r, sequence.DefaultOptions(name))
}
