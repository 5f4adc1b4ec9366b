// Package relay re-emits build tool output through a logger, so lines
// tagged [WARNING] or [ERROR] count towards its break state.
package relay

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/philipp01105/buildlog/core"
	"github.com/philipp01105/buildlog/logger"
)

// maxLineSize bounds a single line of build output
const maxLineSize = 1 << 20

// ansiPattern matches SGR escape sequences of colored build output
var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// tags maps the level tags build tools print to levels
var tags = map[string]core.Level{
	"TRACE":   core.TraceLevel,
	"DEBUG":   core.DebugLevel,
	"INFO":    core.InfoLevel,
	"WARN":    core.WarnLevel,
	"WARNING": core.WarnLevel,
	"ERROR":   core.ErrorLevel,
}

// Classify splits a line such as "[WARNING] message" into its level and
// message. Color codes are removed first. Untagged lines are INFO and
// keep their full text.
func Classify(line string) (core.Level, string) {
	line = ansiPattern.ReplaceAllString(line, "")
	if !strings.HasPrefix(line, "[") {
		return core.InfoLevel, line
	}
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return core.InfoLevel, line
	}
	level, ok := tags[strings.ToUpper(line[1:end])]
	if !ok {
		return core.InfoLevel, line
	}
	return level, strings.TrimPrefix(line[end+1:], " ")
}

// Copy logs every line read from r through l until EOF and returns the
// number of lines logged. Lines longer than maxLineSize are cut at that
// size and the rest is discarded, so the reader is always drained.
func Copy(r io.Reader, l *logger.Logger) (int, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	line := make([]byte, 0, 1024)

	n := 0
	for {
		chunk, more, err := br.ReadLine()
		if err != nil {
			if err == io.EOF {
				return n, nil
			}
			return n, err
		}
		if room := maxLineSize - len(line); room > 0 {
			line = append(line, chunk[:min(room, len(chunk))]...)
		}
		if more {
			continue
		}
		level, msg := Classify(string(line))
		l.Log(level, msg)
		n++
		line = line[:0]
	}
}
