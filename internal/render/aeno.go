package render

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/netisu/aeno"
	"go.uber.org/zap"

	"github.com/clothsim-tools/rolloutview/internal/logger"
	"github.com/clothsim-tools/rolloutview/pkg/math"
	"github.com/clothsim-tools/rolloutview/pkg/objseq"
	"github.com/clothsim-tools/rolloutview/pkg/sequence"
)

// AenoBackend renders frames with the aeno software rasterizer and writes
// them as PNG files named like the OBJ exporter's frames.
type AenoBackend struct {
	Width  int
	Height int

	// FOVDegrees is the vertical field of view.
	FOVDegrees float64

	LightDirection aeno.Vector
	Background     aeno.Color
	Ambient        aeno.Color
	Diffuse        aeno.Color
}

// NewAenoBackend returns a backend with a neutral studio setup.
func NewAenoBackend(width, height int) *AenoBackend {
	return &AenoBackend{
		Width:          width,
		Height:         height,
		FOVDegrees:     45,
		LightDirection: aeno.Vector{X: 0.5, Y: 1, Z: 0.75},
		Background:     aeno.Color{R: 1, G: 1, B: 1, A: 1},
		Ambient:        aeno.Color{R: 0.4, G: 0.4, B: 0.4, A: 1},
		Diffuse:        aeno.Color{R: 0.7, G: 0.7, B: 0.7, A: 1},
	}
}

// RenderSequences draws every camera frame to outDir/frame_NNNN.png.
// Sequences shorter than the camera path hold their last frame.
func (b *AenoBackend) RenderSequences(seqs []*sequence.MeshSequence, cam CameraPath, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating render directory %s: %w", outDir, err)
	}

	aspect := float64(b.Width) / float64(b.Height)
	up := aeno.Vector{Y: 1}
	light := b.LightDirection.Normalize()

	// Backface culling is a context-wide switch; any double-sided sequence
	// (cloth always is) disables it for the whole frame.
	cull := aeno.CullBack
	for _, s := range seqs {
		if !s.BackfaceCulling {
			cull = aeno.CullNone
		}
	}

	for f := 0; f < cam.Frames(); f++ {
		eye := toVector(cam.Eyes[f])
		target := toVector(cam.Targets[f])

		matrix := aeno.LookAt(eye, target, up).Perspective(b.FOVDegrees, aspect, 0.1, 100)
		shader := aeno.NewPhongShader(matrix, light, eye, b.Ambient, b.Diffuse)
		shader.EnableOutline = false

		ctx := aeno.NewContext(b.Width, b.Height, shader)
		ctx.Cull = cull
		ctx.ClearColorBufferWith(b.Background)

		for _, s := range seqs {
			ctx.DrawObject(frameObject(s, f))
		}

		path := filepath.Join(outDir, fmt.Sprintf(objseq.FramePattern+".png", f))
		if err := writePNG(path, ctx); err != nil {
			return fmt.Errorf("writing frame %d: %w", f, err)
		}
	}

	logger.Info("headless render finished",
		zap.Int("frames", cam.Frames()),
		zap.String("dir", outDir),
	)
	return nil
}

// frameObject converts one frame of a mesh sequence into an aeno object.
func frameObject(s *sequence.MeshSequence, frame int) *aeno.Object {
	if frame >= len(s.Positions) {
		frame = len(s.Positions) - 1
	}
	verts := s.Positions[frame]

	triangles := make([]*aeno.Triangle, 0, len(s.Faces))
	for _, face := range s.Faces {
		t := &aeno.Triangle{}
		t.V1.Position = toVector(verts[face[0]])
		t.V2.Position = toVector(verts[face[1]])
		t.V3.Position = toVector(verts[face[2]])
		t.FixNormals()
		triangles = append(triangles, t)
	}

	obj := aeno.NewObject(aeno.NewTriangleMesh(triangles))
	obj.Color = aeno.Color{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: s.Color.A}
	return obj
}

func toVector(v math.Vec3) aeno.Vector {
	return aeno.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func writePNG(path string, ctx *aeno.Context) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, ctx.Image()); err != nil {
		return err
	}
	return f.Close()
}
