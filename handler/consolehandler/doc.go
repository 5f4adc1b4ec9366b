// Package consolehandler provides a synchronous handler that writes
// formatted log entries to any io.Writer (default: os.Stdout).
//
// When the formatter implements formatter.BufferFormatter the handler
// formats into its own buffer under TryLock, so an uncontended caller
// never touches a pool. Contended callers format into a pooled buffer
// outside the lock and only serialize the write. Writers known to be
// safe for concurrent use (io.Discard, *os.File, or anything flagged
// with ConcurrentWriter) skip the write lock entirely.
//
// Every handler counts processed entries per level and failed writes;
// Stats returns a snapshot.
package consolehandler
