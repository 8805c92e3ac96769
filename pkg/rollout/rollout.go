// Package rollout loads recorded cloth-simulation trajectories.
//
// A rollout holds the per-frame vertex positions of a cloth mesh, its
// triangle topology, and optionally the same for an obstacle mesh. The
// simulation itself happens elsewhere; this package only consumes its output.
package rollout

import (
	"fmt"

	"github.com/clothsim-tools/rolloutview/pkg/math"
)

// Faces is a triangle list: three zero-based vertex indices per face.
type Faces [][3]uint32

// FaceSet holds mesh topology in one of two explicit variants: a single
// static face list shared by all frames, or one face list per frame.
// Exactly one of the two fields is set.
type FaceSet struct {
	Static   Faces
	PerFrame []Faces
}

// IsPerFrame reports whether the topology was recorded per frame.
func (fs FaceSet) IsPerFrame() bool {
	return fs.PerFrame != nil
}

// Frame0 returns the topology used for rendering and export. Per-frame
// topology always resolves to frame 0: topology changes over time are not
// supported downstream, only the initial face list is ever used.
func (fs FaceSet) Frame0() Faces {
	if fs.PerFrame != nil {
		return fs.PerFrame[0]
	}
	return fs.Static
}

// Rollout is a recorded simulation trajectory.
//
// ClothPositions is indexed [frame][vertex]. ObstaclePositions is nil when
// the rollout has no obstacle; when present it spans the same frames as the
// cloth. Face indices are always valid indices into the corresponding
// frame's vertex list (enforced by Parse).
type Rollout struct {
	ClothPositions [][]math.Vec3
	ClothFaces     FaceSet

	ObstaclePositions [][]math.Vec3
	ObstacleFaces     FaceSet
}

// HasObstacle reports whether the rollout includes an obstacle mesh.
func (r *Rollout) HasObstacle() bool {
	return r.ObstaclePositions != nil
}

// Frames returns the number of recorded time-steps.
func (r *Rollout) Frames() int {
	return len(r.ClothPositions)
}

// Validate checks that every face references an existing vertex.
func (r *Rollout) Validate() error {
	if err := validateFaces(r.ClothFaces, len(r.ClothPositions[0]), "cloth"); err != nil {
		return err
	}
	if r.HasObstacle() {
		if err := validateFaces(r.ObstacleFaces, len(r.ObstaclePositions[0]), "obstacle"); err != nil {
			return err
		}
	}
	return nil
}

func validateFaces(fs FaceSet, vertexCount int, which string) error {
	check := func(faces Faces, frame int) error {
		for i, f := range faces {
			for _, idx := range f {
				if int(idx) >= vertexCount {
					if frame >= 0 {
						return fmt.Errorf("%w: %s frame %d face %d references vertex %d of %d",
							ErrFaceOutOfRange, which, frame, i, idx, vertexCount)
					}
					return fmt.Errorf("%w: %s face %d references vertex %d of %d",
						ErrFaceOutOfRange, which, i, idx, vertexCount)
				}
			}
		}
		return nil
	}

	if fs.PerFrame != nil {
		for frame, faces := range fs.PerFrame {
			if err := check(faces, frame); err != nil {
				return err
			}
		}
		return nil
	}
	return check(fs.Static, -1)
}
