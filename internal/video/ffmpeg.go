// Package video encodes rendered frame sequences into a video file by
// shelling out to ffmpeg. Encoding stays outside the core pipeline; this is
// a thin wrapper around the external binary.
package video

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/clothsim-tools/rolloutview/internal/logger"
)

// ErrFFmpegNotFound is returned when no ffmpeg binary is on PATH.
var ErrFFmpegNotFound = errors.New("ffmpeg not found in PATH")

// Encode turns framesDir/frame_NNNN.png into a video at outPath with the
// given frame rate. The pixel format is pinned to yuv420p so the result
// plays everywhere.
func Encode(framesDir, outPath string, fps int) error {
	ffmpeg, err := exec.LookPath("ffmpeg")
	if err != nil {
		return ErrFFmpegNotFound
	}

	args := []string{
		"-y",
		"-framerate", strconv.Itoa(fps),
		"-i", filepath.Join(framesDir, "frame_%04d.png"),
		"-pix_fmt", "yuv420p",
		outPath,
	}

	logger.Info("encoding video",
		zap.String("frames", framesDir),
		zap.String("output", outPath),
		zap.Int("fps", fps),
	)

	out, err := exec.Command(ffmpeg, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w\n%s", err, out)
	}
	return nil
}
