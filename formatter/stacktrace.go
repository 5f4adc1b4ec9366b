package formatter

import (
	"bytes"

	"github.com/philipp01105/buildlog/core"
	"github.com/philipp01105/buildlog/style"
)

// maxCauseDepth bounds the walk over cyclic or runaway Unwrap chains
const maxCauseDepth = 64

// writeErrorChain renders err, its frames, and every cause after it:
//
//	*errors.fundamental: compile failed
//	    at main.compile (main/compile.go:42)
//	Caused by: *fs.PathError: open pom.xml: no such file or directory
func writeErrorChain(buf *bytes.Buffer, err error, p *style.Palette) {
	if err == nil {
		return
	}

	buf.WriteString(p.Render(core.TypeName(err), style.Failure))
	writeMessage(buf, err.Error(), p)

	for depth := 0; err != nil && depth < maxCauseDepth; depth++ {
		for _, frame := range core.StackTrace(err) {
			writeFrame(buf, frame, p)
		}

		err = nextCause(err)
		if err != nil {
			buf.WriteString(p.Render("Caused by", style.Strong))
			buf.WriteString(": ")
			buf.WriteString(core.TypeName(err))
			writeMessage(buf, err.Error(), p)
		}
	}
}

// nextCause skips wrappers that add neither frames nor text, which is
// how pkg/errors layers a message under a stack.
func nextCause(err error) error {
	msg := err.Error()
	next := core.Cause(err)
	for next != nil && next.Error() == msg && core.StackTrace(next) == nil {
		deeper := core.Cause(next)
		if deeper == nil {
			break
		}
		next = deeper
	}
	return next
}

func writeMessage(buf *bytes.Buffer, msg string, p *style.Palette) {
	if msg != "" {
		buf.WriteString(": ")
		buf.WriteString(p.Render(msg, style.Failure))
	}
	buf.WriteByte('\n')
}

func writeFrame(buf *bytes.Buffer, frame core.StackFrame, p *style.Palette) {
	buf.WriteString("    ")
	buf.WriteString(p.Render("at", style.Strong))
	buf.WriteByte(' ')
	buf.WriteString(frame.Function)
	buf.WriteString(" (")
	buf.WriteString(p.Render(frame.Location(), style.Strong))
	buf.WriteString(")\n")
}
