// Package objseq exports animated meshes as per-frame Wavefront OBJ files.
//
// The format is deliberately minimal: `v x y z` lines with 6-decimal
// coordinates followed by `f i j k` lines with 1-based indices. No header,
// no normals, no texture coordinates, so identical input always produces
// byte-identical output.
package objseq

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/clothsim-tools/rolloutview/pkg/math"
	"github.com/clothsim-tools/rolloutview/pkg/rollout"
	"github.com/clothsim-tools/rolloutview/pkg/sequence"
)

// FramePattern is the file name pattern for exported frames, shared with the
// headless renderer's PNG output.
const FramePattern = "frame_%04d"

// WriteSequence writes one OBJ file per animation frame into dir, creating
// the directory first. Frame writes are independent: a failure aborts the
// export but leaves previously written frames in place.
func WriteSequence(dir string, positions [][]math.Vec3, faces rollout.Faces) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating export directory %s: %w", dir, err)
	}

	for i, frame := range positions {
		name := filepath.Join(dir, fmt.Sprintf(FramePattern+".obj", i))
		if err := writeFrame(name, frame, faces); err != nil {
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
	}
	return nil
}

// WriteMeshSequence exports a built mesh sequence.
func WriteMeshSequence(dir string, seq *sequence.MeshSequence) error {
	return WriteSequence(dir, seq.Positions, seq.Faces)
}

func writeFrame(path string, verts []math.Vec3, faces rollout.Faces) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range verts {
		fmt.Fprintf(w, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z)
	}
	for _, face := range faces {
		// OBJ indices are 1-based
		fmt.Fprintf(w, "f %d %d %d\n", face[0]+1, face[1]+1, face[2]+1)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
