// Package core defines the shared types used across buildlog.
//
// It provides the Level type for severity ordering, the Entry type that
// represents a single log event, the Field type for structured key-value
// pairs, and the StackFrame type used to render error cause chains.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once the handler has consumed it.
// The pool pre-allocates the Fields slice with capacity 8, which covers
// most log calls without triggering a slice growth.
//
// Severities are ordered TRACE < DEBUG < INFO < WARN < ERROR and are
// always compared by rank. ParseLevel accepts the five names in any case
// and reports an error wrapping ErrUnknownLevel for anything else.
//
// Errors attached to entries are walked with Cause, which follows
// Unwrap (single or joined) and the pkg/errors Cause convention. Frames
// come from StackTrace, which understands pkg/errors stack traces and any
// error that reports its own frames through StackFrames.
package core
