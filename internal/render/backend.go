// Package render defines the rendering boundary for headless output.
//
// The core pipeline (load, place, color, build) never touches a renderer
// directly; it hands built mesh sequences and a camera path to a Backend.
package render

import (
	"github.com/clothsim-tools/rolloutview/pkg/math"
	"github.com/clothsim-tools/rolloutview/pkg/sequence"
)

// CameraPath holds one eye position and look-at target per frame.
type CameraPath struct {
	Eyes    []math.Vec3
	Targets []math.Vec3
}

// Frames returns the number of camera key frames.
func (c CameraPath) Frames() int {
	return len(c.Eyes)
}

// Backend renders mesh sequences along a camera path into per-frame image
// files under outDir.
type Backend interface {
	RenderSequences(seqs []*sequence.MeshSequence, cam CameraPath, outDir string) error
}
