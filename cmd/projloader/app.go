package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/napmn/project-loader/internal/appdirs"
	"github.com/napmn/project-loader/internal/config"
	"github.com/napmn/project-loader/internal/prompt"
	"github.com/napmn/project-loader/internal/selector"
	"github.com/napmn/project-loader/internal/term"
	"github.com/napmn/project-loader/internal/toolcfg"
)

func buildApp(configDir string, prefs toolcfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "projloader",
		Usage:     "open a project in a fresh terminal session",
		Version:   version,
		ArgsUsage: "[query]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "project",
				Aliases: []string{"p"},
				Usage:   "name of the project config to use (direct listing)",
			},
			&cli.BoolFlag{
				Name:    "find",
				Aliases: []string{"f"},
				Usage:   "find a project by name across the configured roots",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			mode, err := resolveMode(cmd.String("project"), cmd.Bool("find"))
			if err != nil {
				return cli.Exit(err.Error(), exitConfigError)
			}
			cfg, err := loadConfig(configDir, cmd.String("project"), mode)
			if err != nil {
				return cli.Exit(err.Error(), exitConfigError)
			}
			launcher := &term.Launcher{
				Command: prefs.Terminal.Command,
				Args:    prefs.Terminal.Args,
			}
			controller := &selector.Controller{
				Config: cfg,
				Prompt: &prompt.TUI{
					MaxVisible: prefs.Prompt.MaxVisible,
					ShowPaths:  prefs.Prompt.ShowPaths == nil || *prefs.Prompt.ShowPaths,
				},
				Spawn: launcher.Spawn,
			}
			return controller.Run(ctx, mode, cmd.Args().First())
		},
	}
}

// resolveMode enforces that exactly one discovery mode was requested.
func resolveMode(projectName string, find bool) (config.Mode, error) {
	switch {
	case find && projectName != "":
		return 0, fmt.Errorf("--project and --find are mutually exclusive")
	case find:
		return config.ModeFind, nil
	case projectName != "":
		return config.ModeDirect, nil
	default:
		return 0, fmt.Errorf("one of --project or --find is required")
	}
}

// loadConfig builds the merged, validated run configuration: the
// global config plus the named project overlay in direct mode.
func loadConfig(configDir, projectName string, mode config.Mode) (*config.Config, error) {
	globalPath := config.DefaultGlobalPath(configDir)
	if err := config.EnsureDefault(globalPath); err != nil {
		return nil, err
	}
	cfg, err := config.Load(globalPath)
	if err != nil {
		return nil, err
	}
	if mode == config.ModeDirect {
		projectsDir, err := appdirs.ProjectConfigDir()
		if err != nil {
			return nil, err
		}
		overlay, err := config.LoadProject(projectsDir, projectName)
		if err != nil {
			return nil, err
		}
		cfg = config.Merge(cfg, overlay)
	}
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}
	return cfg, nil
}
