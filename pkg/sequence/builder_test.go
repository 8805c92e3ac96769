package sequence

import (
	"testing"

	"github.com/clothsim-tools/rolloutview/pkg/math"
	"github.com/clothsim-tools/rolloutview/pkg/rollout"
)

func clothOnlyRollout() *rollout.Rollout {
	return &rollout.Rollout{
		ClothPositions: [][]math.Vec3{
			{{Y: 1}, {X: 1, Y: 5}, {Z: 1, Y: 3}},
			{{Y: 2}, {X: 1, Y: 4}, {Z: 1, Y: 3}},
		},
		ClothFaces: rollout.FaceSet{Static: rollout.Faces{{0, 1, 2}}},
	}
}

func TestBuild_ClothOnly(t *testing.T) {
	seqs, err := Build(clothOnlyRollout(), DefaultOptions("pred"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(seqs) != 1 {
		t.Fatalf("expected 1 sequence, got %d", len(seqs))
	}
	cloth := seqs[0]
	if cloth.Name != "pred_cloth" {
		t.Errorf("name = %q, want %q", cloth.Name, "pred_cloth")
	}
	if cloth.Frames() != 2 {
		t.Errorf("frames = %d, want 2", cloth.Frames())
	}
	if cloth.BackfaceCulling {
		t.Error("backface culling must be disabled for cloth")
	}

	// Default teal (0,0.3,0.3) adjusted: normalize by 0.3 -> (0,1,1),
	// x0.3 +0.3 -> (0.3,0.6,0.6).
	want := Color{R: 0.3, G: 0.6, B: 0.6, A: 1}
	if !colorNear(cloth.Color, want) {
		t.Errorf("cloth color = %+v, want %+v", cloth.Color, want)
	}

	// Geometry went through placement: frame-0 minimum hovers at 2.
	if got := cloth.Positions[0][0].Y; got != 2 {
		t.Errorf("placed frame-0 minimum = %v, want 2", got)
	}
}

func TestBuild_WithObstacle(t *testing.T) {
	r := clothOnlyRollout()
	r.ObstaclePositions = [][]math.Vec3{
		{{Y: 0}, {X: 1}, {Z: 1}},
		{{Y: 0}, {X: 1}, {Z: 1}},
	}
	r.ObstacleFaces = rollout.FaceSet{Static: rollout.Faces{{0, 1, 2}}}

	seqs, err := Build(r, DefaultOptions("pred"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(seqs) != 2 {
		t.Fatalf("expected cloth and obstacle, got %d sequences", len(seqs))
	}
	obstacle := seqs[1]
	if obstacle.Name != "pred_obstacle" {
		t.Errorf("name = %q, want %q", obstacle.Name, "pred_obstacle")
	}
	if obstacle.BackfaceCulling {
		t.Error("backface culling must be disabled for the obstacle")
	}

	// Obstacle color is fixed gray, not run through AdjustColor.
	want := Color{R: 0.3, G: 0.3, B: 0.3, A: 1}
	if !colorNear(obstacle.Color, want) {
		t.Errorf("obstacle color = %+v, want %+v", obstacle.Color, want)
	}

	// With the obstacle on the floor, its minimum sits at exactly 0.
	if got := obstacle.Positions[0][0].Y; got != 0 {
		t.Errorf("obstacle minimum = %v, want 0", got)
	}
}

func TestBuild_PerFrameTopologyUsesFrameZero(t *testing.T) {
	r := clothOnlyRollout()
	r.ClothFaces = rollout.FaceSet{PerFrame: []rollout.Faces{
		{{0, 1, 2}},
		{{2, 1, 0}},
	}}

	seqs, err := Build(r, DefaultOptions("pred"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if got := seqs[0].Faces[0]; got != [3]uint32{0, 1, 2} {
		t.Errorf("expected frame 0 topology, got %v", got)
	}
}

func TestBuild_CustomColorAndOpacity(t *testing.T) {
	opts := DefaultOptions("run3")
	opts.ClothColor = &Color{R: 2, G: 4, B: 4}
	opts.ClothOpacity = 0.5
	opts.ObstacleOpacity = 0.25

	r := clothOnlyRollout()
	r.ObstaclePositions = r.ClothPositions
	r.ObstacleFaces = r.ClothFaces

	seqs, err := Build(r, opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	wantCloth := Color{R: 0.45, G: 0.6, B: 0.6, A: 0.5}
	if !colorNear(seqs[0].Color, wantCloth) {
		t.Errorf("cloth color = %+v, want %+v", seqs[0].Color, wantCloth)
	}
	if seqs[1].Color.A != 0.25 {
		t.Errorf("obstacle alpha = %v, want 0.25", seqs[1].Color.A)
	}
}

func TestBuild_ZeroColorRejected(t *testing.T) {
	opts := DefaultOptions("bad")
	opts.ClothColor = &Color{}

	if _, err := Build(clothOnlyRollout(), opts); err == nil {
		t.Error("expected error for all-zero cloth color")
	}
}

func TestBuild_ShiftApplied(t *testing.T) {
	opts := DefaultOptions("pred")
	opts.XShift = 3
	opts.YShift = -2

	seqs, err := Build(clothOnlyRollout(), opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if got := seqs[0].Positions[0][1].X; got != 4 {
		t.Errorf("X shift not applied: got %v, want 4", got)
	}
	if got := seqs[0].Positions[0][2].Z; got != -1 {
		t.Errorf("Y shift not applied to Z axis: got %v, want -1", got)
	}
}
