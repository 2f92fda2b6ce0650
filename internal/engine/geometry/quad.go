// Package geometry uploads static GPU geometry.
package geometry

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/quadview/internal/logger"
)

// quadVertices are 2D clip-space positions, one vec2 per vertex, tightly
// packed. The quad is centered at the origin and spans half the viewport.
var quadVertices = []float32{
	-0.5, -0.5,
	0.5, -0.5,
	0.5, 0.5,
	-0.5, 0.5,
}

// quadIndices split the quad into two triangles. Every value must stay in
// [0, 3]; an out-of-range index is undefined behavior at draw time.
var quadIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// Quad is a unit quad resident in GPU buffers.
type Quad struct {
	vao uint32
	vbo uint32
	ibo uint32
}

// NewQuad uploads the quad's vertex and index data with a static-draw
// usage hint and declares attribute 0 as two tightly packed floats at
// offset 0. Everything stays bound on return; subsequent draw calls rely
// on that ambient state. Requires a current GL context.
func NewQuad() *Quad {
	q := &Quad{}

	// The core profile requires a vertex array object to hold attribute
	// state; it is container state here, not part of the API surface.
	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, unsafe.Pointer(&quadVertices[0]), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)

	gl.GenBuffers(1, &q.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*4, unsafe.Pointer(&quadIndices[0]), gl.STATIC_DRAW)

	logger.Debug("quad uploaded",
		zap.Uint32("vao", q.vao),
		zap.Uint32("vbo", q.vbo),
		zap.Uint32("ibo", q.ibo),
	)
	return q
}

// Draw issues one indexed draw call over all six indices using the
// currently bound program and the state left bound by NewQuad.
func (q *Quad) Draw() {
	gl.DrawElements(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_INT, nil)
}

// Delete releases the buffer and vertex array handles.
func (q *Quad) Delete() {
	if q.ibo != 0 {
		gl.DeleteBuffers(1, &q.ibo)
	}
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
	}
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
	}
}
