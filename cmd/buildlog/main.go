// Command buildlog relays build tool output through a logger registry
// and fails when a line at or above the configured severity was seen.
//
//	mvn -B verify | buildlog --fail-on-severity WARN
//	buildlog -f ERROR -- make all
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/philipp01105/buildlog/config"
	"github.com/philipp01105/buildlog/internal/relay"
	"github.com/philipp01105/buildlog/internal/setup"
	"github.com/philipp01105/buildlog/logger"
)

// Exit codes
const (
	exitOK       = 0
	exitBreached = 1
	exitConfig   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("buildlog", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: buildlog [flags] [-- command args...]")
		flags.PrintDefaults()
	}

	configFile := flags.String("config", "", "config file (default: buildlog.yaml in . or ./configs)")
	flags.String("level", "info", "minimum level printed: trace, debug, info, warn, error")
	flags.String("format", config.FormatText, "output format: text or json")
	flags.String("color", "auto", "colored output: auto, always or never")
	flags.String("backend", config.BackendConsole, "log backend: console, zap or both")
	flags.StringP("fail-on-severity", "f", "", "fail when a log at WARN or ERROR or above is seen")
	name := flags.String("name", "build", "logger name for relayed lines")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitConfig
	}

	v := viper.New()
	for key, flag := range map[string]string{
		"logger.level":     "level",
		"logger.format":    "format",
		"logger.color":     "color",
		"logger.backend":   "backend",
		"logger.failLevel": "fail-on-severity",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			fmt.Fprintln(stderr, "buildlog:", err)
			return exitConfig
		}
	}

	cfg, err := config.LoadFrom(v, *configFile)
	if err != nil {
		fmt.Fprintln(stderr, "buildlog:", err)
		return exitConfig
	}

	registry, err := setup.NewRegistry(cfg.Logger, cfg.StyleOverrides(), stdout)
	if err != nil {
		fmt.Fprintln(stderr, "buildlog:", err)
		return exitConfig
	}
	defer registry.Close()

	self := registry.GetLogger("buildlog")
	out := registry.GetLogger(*name)

	code := exitOK
	if cmdArgs := flags.Args(); len(cmdArgs) > 0 {
		code, err = runCommand(ctx, cmdArgs, stdin, out)
	} else {
		_, err = relay.Copy(stdin, out)
	}
	if err != nil {
		self.Error("Relaying build output failed", logger.Err(err))
		if code == exitOK {
			code = exitBreached
		}
	}

	if registry.ThrewLogsOfBreakingLevel() {
		threshold, _ := registry.BreakState().Threshold()
		self.Errorf("Build output contained logs of level %s or above", threshold)
		if code == exitOK {
			code = exitBreached
		}
	}
	return code
}

// runCommand runs args, relaying its stdout and stderr through l, and
// returns the command's exit code.
func runCommand(ctx context.Context, args []string, stdin io.Reader, l *logger.Logger) (int, error) {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = stdin

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return exitBreached, err
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return exitBreached, err
	}
	if err := cmd.Start(); err != nil {
		return exitBreached, err
	}

	var g errgroup.Group
	g.Go(func() error {
		_, err := relay.Copy(stdoutPipe, l)
		return err
	})
	g.Go(func() error {
		_, err := relay.Copy(stderrPipe, l)
		return err
	})
	copyErr := g.Wait()

	// Wait only after the pipes are drained
	err = cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code <= 0 {
			code = exitBreached // killed by a signal
		}
		return code, copyErr
	}
	if err != nil {
		return exitBreached, err
	}
	return exitOK, copyErr
}
