// Package logger is the public API of buildlog. Most users only need to
// import this package.
//
// A Registry hands out named loggers and owns one BreakState shared by
// all of them. Once a break level is configured, every log at or above
// it flips the state, and the first such log is followed by a single
// "Breaking log occurred" line at INFO. A build tool checks the state at
// the end of the run to fail the build:
//
//	registry := logger.NewRegistry()
//	if err := registry.BreakOnLogsOfLevel("WARN"); err != nil {
//	    return err
//	}
//	registry.GetLogger("org.example.Compiler").Warn("deprecated API")
//	if registry.ThrewLogsOfBreakingLevel() {
//	    os.Exit(1)
//	}
//
// The break level accepts only WARN or ERROR and can be set once;
// rejected calls return a *ConfigError wrapping ErrAlreadyConfigured,
// ErrInvalidLevel or ErrLevelTooLow. Logs filtered out by the logger's
// level still count towards the break state.
//
// A Logger is immutable after construction. Loggers outside a registry
// are created with the Builder and track nothing unless given a
// BreakState:
//
//	log := logger.NewBuilder().
//	    WithName("plugin").
//	    WithHandler(myHandler).
//	    WithLevel(logger.DebugLevel).
//	    Build()
//
// Errors attached with Err are rendered with their type, message, stack
// frames (for pkg/errors values) and every cause. The package also keeps
// a default registry behind GetLogger, BreakOnLogsOfLevel and
// ThrewLogsOfBreakingLevel, and NewSlogHandler routes log/slog records
// through a Logger.
package logger
