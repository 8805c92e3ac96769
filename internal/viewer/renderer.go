package viewer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/clothsim-tools/rolloutview/internal/logger"
	"github.com/clothsim-tools/rolloutview/pkg/math"
	"github.com/clothsim-tools/rolloutview/pkg/sequence"
)

const vertexShaderSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uProj;
uniform mat4 uView;

out vec3 vNormal;

void main() {
	gl_Position = uProj * uView * vec4(aPos, 1.0);
	vNormal = aNormal;
}
`

const fragmentShaderSrc = `
#version 410 core

in vec3 vNormal;

uniform vec4 uColor;

out vec4 FragColor;

const vec3 lightDir = normalize(vec3(0.5, 1.0, 0.75));

void main() {
	// abs() lights both sides of the thin cloth surface
	float diffuse = abs(dot(normalize(vNormal), lightDir));
	vec3 shaded = uColor.rgb * (0.35 + 0.65 * diffuse);
	FragColor = vec4(shaded, uColor.a);
}
`

// renderer owns the OpenGL state for drawing mesh sequences.
type renderer struct {
	program uint32
	uProj   int32
	uView   int32
	uColor  int32

	width  int
	height int
}

// newRenderer initializes OpenGL. Must be called after the GL context
// exists.
func newRenderer(width, height int) (*renderer, error) {
	r := &renderer{
		width:  width,
		height: height,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	logger.Info("OpenGL initialized", zap.String("version", version))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Cloth is rendered double-sided
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.93, 0.93, 0.95, 1.0)

	var err error
	r.program, err = compileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.uProj = uniform(r.program, "uProj")
	r.uView = uniform(r.program, "uView")
	r.uColor = uniform(r.program, "uColor")

	return r, nil
}

// Close releases GL resources.
func (r *renderer) Close() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Begin clears the frame and sets the camera matrices.
func (r *renderer) Begin(view math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	proj := math.Perspective(0.8, float32(r.width)/float32(r.height), 0.05, 200)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uProj, 1, false, proj.Ptr())
	gl.UniformMatrix4fv(r.uView, 1, false, view.Ptr())
}

// DrawMesh draws one animated mesh with its sequence color.
func (r *renderer) DrawMesh(m *animatedMesh) {
	c := m.seq.Color
	gl.Uniform4f(r.uColor, float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	m.draw()
}

// boundsOf returns the axis-aligned bounds of frame 0 across all sequences,
// used to fit the camera on startup.
func boundsOf(seqs []*sequence.MeshSequence) (math.Vec3, math.Vec3) {
	bmin := seqs[0].Positions[0][0]
	bmax := bmin
	for _, s := range seqs {
		for _, p := range s.Positions[0] {
			bmin = bmin.Min(p)
			bmax = bmax.Max(p)
		}
	}
	return bmin, bmax
}
