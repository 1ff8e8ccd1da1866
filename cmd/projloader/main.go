package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/urfave/cli/v3"

	"github.com/napmn/project-loader/internal/appdirs"
	"github.com/napmn/project-loader/internal/logging"
	"github.com/napmn/project-loader/internal/prompt"
	"github.com/napmn/project-loader/internal/selector"
	"github.com/napmn/project-loader/internal/toolcfg"
)

var version = "dev"

const (
	exitConfigError = 1
	exitCancelled   = 2
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	configDir, err := appdirs.ConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "projloader: %v\n", err)
		return exitConfigError
	}
	prefs, err := toolcfg.NewLoader(toolcfg.DefaultPath(configDir)).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "projloader: load preferences: %v\n", err)
		return exitConfigError
	}
	closeLogger, err := logging.Init(prefs.Logging, logging.InitOptions{
		App:     "projloader",
		Version: version,
	})
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
		slog.Error("init logging failed; using stderr fallback", "err", err)
	} else if closeLogger != nil {
		defer func() { _ = closeLogger() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := buildApp(configDir, prefs)
	if err := app.Run(ctx, args); err != nil {
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, prompt.ErrCancelled), errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "Cancelled by user")
		return exitCancelled
	case errors.Is(err, selector.ErrNoProjects):
		fmt.Fprintln(os.Stderr, "No projects found")
		return exitCancelled
	}
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "projloader: %s\n", msg)
		}
		return exitErr.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "projloader: %v\n", err)
	return exitConfigError
}
