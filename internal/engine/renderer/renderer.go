// Package renderer drives OpenGL state and the per-frame draw.
package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/quadview/internal/engine/geometry"
	"github.com/Faultbox/quadview/internal/engine/glerror"
	"github.com/Faultbox/quadview/internal/engine/shader"
	"github.com/Faultbox/quadview/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
}

// Renderer owns the pipeline program and the quad geometry.
type Renderer struct {
	config  Config
	program shader.Program
	quad    *geometry.Quad
}

// New initializes the OpenGL function loader and the fixed render state.
// Must be called after the GL context is current.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	// A loader failure is reported, not fatal: any call it broke will
	// show up through the error probe on the first frame.
	if err := gl.Init(); err != nil {
		logger.Warn("OpenGL loader init not OK", zap.Error(err))
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// SetupScene uploads the quad and links the pipeline program, leaving both
// bound for the rest of the process. A compile failure is returned to the
// caller; the quad is usable either way, so the loop can keep running
// without a program. A program that linked but failed link or validate
// status is logged and still used, its errors surface through the
// per-frame probe.
func (r *Renderer) SetupScene(src shader.Source) error {
	r.quad = geometry.NewQuad()

	program, err := shader.Link(src)
	if err != nil {
		return err
	}
	r.program = program

	if !program.Linked || !program.Validated {
		logger.Warn("shader program not fully valid",
			zap.Bool("linked", program.Linked),
			zap.Bool("validated", program.Validated),
			zap.String("log", program.Log),
		)
	}

	program.Use()
	return nil
}

// DrawFrame renders one frame: clear, then one probe-bracketed indexed
// draw call against the ambient program/buffer/layout state.
func (r *Renderer) DrawFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	glerror.Checkpoint()
	r.quad.Draw()
	glerror.Report("draw quad")
}

// Resize updates the viewport to a new drawable size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// CapturePixels reads the back buffer as tightly packed RGBA bytes,
// bottom row first as OpenGL delivers them.
func (r *Renderer) CapturePixels() ([]byte, int, int) {
	width, height := r.config.Width, r.config.Height
	pixels := make([]byte, width*height*4)

	gl.ReadBuffer(gl.BACK)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))

	return pixels, width, height
}

// Close releases the GL resources the renderer owns.
func (r *Renderer) Close() {
	if r.quad != nil {
		r.quad.Delete()
	}
	r.program.Delete()
}
