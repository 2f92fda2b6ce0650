// Package shader provides OpenGL shader parsing, compilation and linking.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/quadview/internal/logger"
)

// Stage identifies a programmable pipeline stage.
type Stage uint32

const (
	VertexStage   Stage = gl.VERTEX_SHADER
	FragmentStage Stage = gl.FRAGMENT_SHADER
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return fmt.Sprintf("stage(0x%04x)", uint32(s))
	}
}

// CompileError reports a failed stage compilation together with the
// driver's diagnostic log.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, e.Log)
}

// Program is a linked pipeline program. Link and validate status are
// reported rather than enforced; the caller decides whether a non-OK
// status is fatal.
type Program struct {
	Handle    uint32
	Linked    bool
	Validated bool
	Log       string
}

// Link compiles both stages and links them into a program. A compile
// failure aborts the link and is returned as a *CompileError; the failed
// stage is never attached. The intermediate stage objects are deleted
// unconditionally once the link completes, their code is owned by the
// program from then on.
func Link(src Source) (Program, error) {
	vert, err := CompileStage(VertexStage, src.Vertex)
	if err != nil {
		return Program{}, err
	}
	frag, err := CompileStage(FragmentStage, src.Fragment)
	if err != nil {
		gl.DeleteShader(vert)
		return Program{}, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)
	gl.ValidateProgram(program)

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	p := Program{Handle: program}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	p.Linked = status != gl.FALSE
	gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	p.Validated = status != gl.FALSE

	if !p.Linked || !p.Validated {
		p.Log = programLog(program)
	} else {
		logger.Debug("shader program linked", zap.Uint32("program", program))
	}

	return p, nil
}

// Use selects the program as the active pipeline program.
func (p Program) Use() {
	gl.UseProgram(p.Handle)
}

// Delete releases the program handle.
func (p Program) Delete() {
	if p.Handle != 0 {
		gl.DeleteProgram(p.Handle)
	}
}

// CompileStage compiles one source string into a shader object for the
// given stage. The caller owns the returned handle and must either attach
// it to a program or delete it.
func CompileStage(stage Stage, source string) (uint32, error) {
	shader := gl.CreateShader(uint32(stage))

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}

	return shader, nil
}

// programLog retrieves the program info log after a link or validate.
func programLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(program, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}
