// Package formatter defines how log entries are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which fills a caller-owned buffer. Handlers check
// for the richer interfaces at construction time and prefer them.
//
// TextFormatter produces build console lines such as
//
//	[WARNING] org.example.Compiler - deprecated API key=value
//
// with the level label styled by a style.Palette. Labels are rendered
// once when the formatter is built, so the hot path stays a single
// WriteString. An error attached to the entry is printed after the line
// as its type and message, one "at" line per stack frame, and a
// "Caused by" block for each further link of the chain.
//
// JSONFormatter writes one object per line and nests the same error
// chain under "error" and "cause".
//
// Both use a pooled bytes.Buffer. Buffers larger than 64 KiB are not
// returned to the pool.
package formatter
