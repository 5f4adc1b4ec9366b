// Package style renders text spans with the named ANSI styles used on
// the build console.
//
// A Palette maps style names (debug, info, warning, error, success,
// failure, strong, mojo, project) to fatih/color attribute sets. The
// defaults mirror the usual build tool look: bold cyan for debug, bold
// blue for info, bold yellow for warning, bold red for error and
// failure, bold for strong. Any style can be replaced at construction
// time with a spec such as "bold,brightred" or "underline,bgblue".
//
// A Palette is immutable once built and safe for concurrent use. A
// disabled Palette returns text unchanged, which is what non-terminal
// outputs and tests normally want. Detect decides between the two for
// a given writer and Mode, and Output wraps console files so escape
// sequences also work on Windows.
package style
