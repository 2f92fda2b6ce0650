// Package glerror brackets OpenGL's out-of-band error flag.
//
// OpenGL reports failures by setting a sticky global error flag instead of
// returning status codes. Wrap suspect calls between Checkpoint and Report
// so that Report only attributes errors to the bracketed operation:
//
//	glerror.Checkpoint()
//	gl.DrawElements(...)
//	glerror.Report("draw quad")
package glerror

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/quadview/internal/logger"
)

// Checkpoint drains and discards all pending error flags, establishing a
// clean baseline for a following Report. It cannot fail.
func Checkpoint() {
	for gl.GetError() != gl.NO_ERROR {
	}
}

// Report drains pending error flags, logging one line per code tagged with
// the bracketed operation. It is observational only and never aborts; the
// drained codes are returned for callers that want to react.
func Report(op string) []uint32 {
	var codes []uint32
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		codes = append(codes, code)
		logger.Error("OpenGL error",
			zap.String("op", op),
			zap.String("code", CodeString(code)),
		)
	}
	return codes
}

// CodeString formats a GL error code as hex plus its symbolic name when
// known.
func CodeString(code uint32) string {
	if name, ok := errorNames[code]; ok {
		return fmt.Sprintf("0x%04x (%s)", code, name)
	}
	return fmt.Sprintf("0x%04x", code)
}

var errorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "GL_INVALID_ENUM",
	gl.INVALID_VALUE:                 "GL_INVALID_VALUE",
	gl.INVALID_OPERATION:             "GL_INVALID_OPERATION",
	gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
	gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
}
