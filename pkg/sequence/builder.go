package sequence

import (
	"github.com/clothsim-tools/rolloutview/pkg/math"
	"github.com/clothsim-tools/rolloutview/pkg/rollout"
)

// Default display colors, pre-adjustment for the cloth.
var (
	defaultClothColor    = Color{R: 0, G: 0.3, B: 0.3}
	defaultObstacleColor = Color{R: 0.3, G: 0.3, B: 0.3}
)

// MeshSequence is an animated mesh ready for rendering or export. It is
// constructed once from a rollout and never mutated afterward.
type MeshSequence struct {
	Name      string
	Positions [][]math.Vec3
	Faces     rollout.Faces
	Color     Color

	// BackfaceCulling is disabled for cloth sequences so both sides of the
	// thin surface stay visible.
	BackfaceCulling bool
}

// Frames returns the number of animation frames.
func (s *MeshSequence) Frames() int {
	return len(s.Positions)
}

// Options controls how a rollout is turned into mesh sequences.
type Options struct {
	Name   string
	XShift float32
	YShift float32

	// ClothColor overrides the default teal; it is muted by AdjustColor
	// before use. Alpha is ignored in favor of ClothOpacity.
	ClothColor *Color

	ClothOpacity    float64
	ObstacleOpacity float64
}

// DefaultOptions returns fully opaque options with no shift.
func DefaultOptions(name string) Options {
	return Options{Name: name, ClothOpacity: 1, ObstacleOpacity: 1}
}

// Build places a rollout's geometry on the floor plane and wraps it into
// mesh sequences: cloth first, obstacle second when present. Per-frame
// topology resolves to frame 0.
func Build(r *rollout.Rollout, opts Options) ([]*MeshSequence, error) {
	clothPos, obstaclePos := Place(r.ClothPositions, r.ObstaclePositions, opts.XShift, opts.YShift)

	clothColor := defaultClothColor
	if opts.ClothColor != nil {
		clothColor = *opts.ClothColor
	}
	clothColor.A = opts.ClothOpacity
	clothColor, err := AdjustColor(clothColor)
	if err != nil {
		return nil, err
	}

	out := []*MeshSequence{{
		Name:            opts.Name + "_cloth",
		Positions:       clothPos,
		Faces:           r.ClothFaces.Frame0(),
		Color:           clothColor,
		BackfaceCulling: false,
	}}

	if r.HasObstacle() {
		obstacleColor := defaultObstacleColor
		obstacleColor.A = opts.ObstacleOpacity
		out = append(out, &MeshSequence{
			Name:            opts.Name + "_obstacle",
			Positions:       obstaclePos,
			Faces:           r.ObstacleFaces.Frame0(),
			Color:           obstacleColor,
			BackfaceCulling: false,
		})
	}

	return out, nil
}
