// Package multihandler provides a fan-out handler that dispatches log
// entries to multiple child handlers, for example the console and a zap
// backend at the same time. Errors from every child are combined with
// go.uber.org/multierr so one failing sink never hides another.
package multihandler
