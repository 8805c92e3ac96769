package render

import (
	"testing"

	"github.com/clothsim-tools/rolloutview/pkg/math"
	"github.com/clothsim-tools/rolloutview/pkg/sequence"
)

func TestLockToNode(t *testing.T) {
	seq := &sequence.MeshSequence{
		Positions: [][]math.Vec3{
			{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 1, Y: 3, Z: 0}},
			{{X: 10, Y: 0, Z: 0}, {X: 12, Y: 0, Z: 0}, {X: 11, Y: 3, Z: 0}},
		},
	}

	cam := LockToNode(seq, DefaultCameraOffset)

	if cam.Frames() != 2 {
		t.Fatalf("expected 2 camera frames, got %d", cam.Frames())
	}

	// Frame 0 centroid is (1, 1, 0)
	if cam.Targets[0] != (math.Vec3{X: 1, Y: 1, Z: 0}) {
		t.Errorf("frame 0 target = %v, want centroid (1,1,0)", cam.Targets[0])
	}
	if cam.Eyes[0] != (math.Vec3{X: 1, Y: 1, Z: 3}) {
		t.Errorf("frame 0 eye = %v, want centroid + offset", cam.Eyes[0])
	}

	// The camera follows the geometry as it moves.
	if cam.Targets[1] != (math.Vec3{X: 11, Y: 1, Z: 0}) {
		t.Errorf("frame 1 target = %v, want centroid (11,1,0)", cam.Targets[1])
	}
}

func TestLockToNode_CustomOffset(t *testing.T) {
	seq := &sequence.MeshSequence{
		Positions: [][]math.Vec3{{{X: 1, Y: 1, Z: 1}}},
	}

	cam := LockToNode(seq, math.Vec3{X: 0, Y: 2, Z: 5})

	want := math.Vec3{X: 1, Y: 3, Z: 6}
	if cam.Eyes[0] != want {
		t.Errorf("eye = %v, want %v", cam.Eyes[0], want)
	}
}
