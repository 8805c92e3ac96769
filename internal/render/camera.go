package render

import (
	"github.com/clothsim-tools/rolloutview/pkg/math"
	"github.com/clothsim-tools/rolloutview/pkg/sequence"
)

// DefaultCameraOffset places the camera three units behind the tracked node,
// looking along -Z.
var DefaultCameraOffset = math.Vec3{X: 0, Y: 0, Z: 3}

// LockToNode builds a camera path that follows a mesh sequence: for every
// frame the target is the centroid of the frame's geometry and the eye sits
// at target + offset.
func LockToNode(seq *sequence.MeshSequence, offset math.Vec3) CameraPath {
	cam := CameraPath{
		Eyes:    make([]math.Vec3, seq.Frames()),
		Targets: make([]math.Vec3, seq.Frames()),
	}
	for f, frame := range seq.Positions {
		center := centroid(frame)
		cam.Targets[f] = center
		cam.Eyes[f] = center.Add(offset)
	}
	return cam
}

func centroid(frame []math.Vec3) math.Vec3 {
	var sum math.Vec3
	for _, p := range frame {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float32(len(frame)))
}
