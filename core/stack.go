package core

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// StackFrame is one frame of an error's stack trace
type StackFrame struct {
	// Function is the package-qualified function name
	Function string
	// File is the source file, empty when unknown
	File string
	// Line is the line number, negative when unknown
	Line int
	// Native marks frames without Go source (assembly or cgo)
	Native bool
}

// Location renders where the frame points to
func (f StackFrame) Location() string {
	switch {
	case f.Native:
		return "Native Method"
	case f.File == "":
		return "Unknown Source"
	case f.Line >= 0:
		return f.File + ":" + strconv.Itoa(f.Line)
	default:
		return f.File
	}
}

// FrameProvider is implemented by errors that report their own frames
type FrameProvider interface {
	StackFrames() []StackFrame
}

// stackTracer is the interface pkg/errors values satisfy
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// causer is the pkg/errors unwrapping convention
type causer interface {
	Cause() error
}

// StackTrace returns the frames recorded by err itself, without looking
// at its causes. It returns nil if err carries no trace.
func StackTrace(err error) []StackFrame {
	switch e := err.(type) {
	case nil:
		return nil
	case FrameProvider:
		return e.StackFrames()
	case stackTracer:
		st := e.StackTrace()
		frames := make([]StackFrame, 0, len(st))
		for _, f := range st {
			frames = append(frames, frameFromPC(uintptr(f)-1))
		}
		return frames
	default:
		return nil
	}
}

func frameFromPC(pc uintptr) StackFrame {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return StackFrame{Function: "unknown", Line: -1}
	}
	file, line := fn.FileLine(pc)
	return StackFrame{
		Function: fn.Name(),
		File:     shortFile(file),
		Line:     line,
		Native:   strings.HasSuffix(file, ".s"),
	}
}

// shortFile keeps the last directory and the file name
func shortFile(file string) string {
	if file == "" {
		return ""
	}
	i := strings.LastIndexByte(file, '/')
	if i < 0 {
		return file
	}
	if j := strings.LastIndexByte(file[:i], '/'); j >= 0 {
		return file[j+1:]
	}
	return file
}

// Cause returns the next error in err's causal chain, or nil
func Cause(err error) error {
	switch e := err.(type) {
	case nil:
		return nil
	case interface{ Unwrap() error }:
		return e.Unwrap()
	case interface{ Unwrap() []error }:
		if errs := e.Unwrap(); len(errs) > 0 {
			return errs[0]
		}
		return nil
	case causer:
		return e.Cause()
	default:
		return nil
	}
}

// TypeName returns the dynamic type name used when rendering err
func TypeName(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%T", err)
}
