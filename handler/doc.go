// Package handler provides the Handler interface that receives
// formatted log entries, plus the Stats counters shared by the
// built-in handlers.
//
// A Handler is the base logger of buildlog: loggers decide what to log
// and handlers decide where it goes. Handlers are synchronous. An entry
// passed to Handle is only valid for the duration of the call, which
// lets the caller return it to the entry pool right after.
//
// Built-in handlers live in sub-packages:
//
//   - consolehandler writes formatted entries to any io.Writer
//     (default: stdout), serializing writes with a mutex.
//   - multihandler fans one entry out to several handlers.
//   - zaphandler forwards entries to a *zap.Logger.
//
// Handlers that implement StatsProvider count processed entries per
// level and failed writes, which hosts use for end-of-run summaries.
package handler
