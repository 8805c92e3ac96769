package viewer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/clothsim-tools/rolloutview/pkg/math"
	"github.com/clothsim-tools/rolloutview/pkg/sequence"
)

// animatedMesh keeps one mesh sequence on the GPU. Topology is static; the
// interleaved position/normal buffer is re-uploaded whenever the displayed
// frame changes.
type animatedMesh struct {
	seq *sequence.MeshSequence

	vao uint32
	vbo uint32
	ebo uint32

	indexCount int32
	frame      int

	// scratch holds interleaved [px py pz nx ny nz] per vertex, reused
	// across frame uploads.
	scratch []float32
	normals []math.Vec3
}

// newAnimatedMesh allocates GPU buffers and uploads frame 0.
func newAnimatedMesh(seq *sequence.MeshSequence) *animatedMesh {
	m := &animatedMesh{
		seq:        seq,
		indexCount: int32(len(seq.Faces) * 3),
		frame:      -1,
		scratch:    make([]float32, len(seq.Positions[0])*6),
		normals:    make([]math.Vec3, len(seq.Positions[0])),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.scratch)*4, nil, gl.DYNAMIC_DRAW)

	indices := make([]uint32, 0, m.indexCount)
	for _, f := range seq.Faces {
		indices = append(indices, f[0], f[1], f[2])
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, uintptr(3*4))

	gl.BindVertexArray(0)

	m.setFrame(0)
	return m
}

// setFrame uploads the given frame's vertex data. No-op when already shown.
func (m *animatedMesh) setFrame(frame int) {
	if frame >= len(m.seq.Positions) {
		frame = len(m.seq.Positions) - 1
	}
	if frame == m.frame {
		return
	}
	m.frame = frame

	verts := m.seq.Positions[frame]
	m.computeNormals(verts)
	for i, v := range verts {
		n := m.normals[i]
		m.scratch[i*6+0] = v.X
		m.scratch[i*6+1] = v.Y
		m.scratch[i*6+2] = v.Z
		m.scratch[i*6+3] = n.X
		m.scratch[i*6+4] = n.Y
		m.scratch[i*6+5] = n.Z
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(m.scratch)*4, gl.Ptr(m.scratch))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// computeNormals builds area-weighted smooth vertex normals for a frame.
func (m *animatedMesh) computeNormals(verts []math.Vec3) {
	for i := range m.normals {
		m.normals[i] = math.Vec3{}
	}
	for _, f := range m.seq.Faces {
		a, b, c := verts[f[0]], verts[f[1]], verts[f[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		m.normals[f[0]] = m.normals[f[0]].Add(n)
		m.normals[f[1]] = m.normals[f[1]].Add(n)
		m.normals[f[2]] = m.normals[f[2]].Add(n)
	}
	for i := range m.normals {
		m.normals[i] = m.normals[i].Normalize()
	}
}

// draw issues the indexed draw call. The caller binds the shader program
// and sets uniforms first.
func (m *animatedMesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// destroy releases GPU resources.
func (m *animatedMesh) destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}
