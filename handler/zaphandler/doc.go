// Package zaphandler forwards log entries to a *zap.Logger so build
// output can feed structured pipelines in addition to, or instead of,
// the console.
//
// Levels map one to one except TRACE, which zap has no equivalent for
// and is written at Debug. The logger name becomes the zap entry's
// LoggerName, fields keep their types, and an attached error is written
// with zap.Error.
package zaphandler
