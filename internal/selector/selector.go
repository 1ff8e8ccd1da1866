package selector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sahilm/fuzzy"

	"github.com/napmn/project-loader/internal/cmdplan"
	"github.com/napmn/project-loader/internal/config"
	"github.com/napmn/project-loader/internal/discover"
	"github.com/napmn/project-loader/internal/envmgr"
	"github.com/napmn/project-loader/internal/prompt"
	"github.com/napmn/project-loader/internal/runenv"
)

// ErrNoProjects means discovery produced nothing to choose from. It is
// reported to the user and exits like a cancellation, never a crash.
var ErrNoProjects = errors.New("selector: no projects found")

// Controller orchestrates discovery, selection, environment detection
// and command composition, then hands off to the spawn collaborator.
// The config is read-only once Run starts.
type Controller struct {
	Config *config.Config
	Prompt prompt.Prompter

	// Detect defaults to envmgr.Detect; tests inject their own.
	Detect func(projectPath string, signatures []envmgr.Signature) (*envmgr.Signature, error)
	// Spawn receives the resolved path, shell and command plan.
	Spawn func(ctx context.Context, dir, shell string, commands []string) error
	// Shell defaults to the user's login shell.
	Shell string

	Log *slog.Logger
}

// Run resolves a project and launches the terminal session. Any
// cancellation short-circuits everything downstream: no detection, no
// composition, no spawn.
func (c *Controller) Run(ctx context.Context, mode config.Mode, query string) error {
	path, err := c.Select(ctx, mode, query)
	if err != nil {
		return err
	}

	manager, err := c.detect(path)
	if err != nil {
		c.log().Warn("dependency manager detection failed", "path", path, "err", err)
		manager = nil
	}
	decision := cmdplan.Skip
	if manager != nil {
		decision, err = c.decide(ctx, manager)
		if err != nil {
			return err
		}
	}
	plan := cmdplan.Compose(c.Config.Commands, manager, decision, c.Config.Editor)

	shell := c.Shell
	if shell == "" {
		shell = runenv.DefaultShell()
	}
	if c.Spawn == nil {
		return fmt.Errorf("selector: no spawn collaborator configured")
	}
	c.log().Info("launching project session", "path", path, "shell", shell, "commands", len(plan))
	return c.Spawn(ctx, path, shell, plan)
}

// Select resolves the project path for the given discovery mode.
func (c *Controller) Select(ctx context.Context, mode config.Mode, query string) (string, error) {
	switch mode {
	case config.ModeDirect:
		return c.selectDirect(ctx)
	case config.ModeFind:
		return c.selectByName(ctx, query)
	default:
		return "", fmt.Errorf("selector: unknown mode %d", mode)
	}
}

// selectDirect lists immediate subdirectories of the configured
// project path. The path is trusted to be curated, so only direct
// children are filtered and there is no recursion.
func (c *Controller) selectDirect(ctx context.Context) (string, error) {
	base := c.Config.NormalizedProjectPath()
	info, err := os.Stat(base)
	if err != nil {
		return "", fmt.Errorf("selector: project path: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("selector: project path %q is not a directory", base)
	}
	if !c.Config.HasSubprojects() {
		return base, nil
	}

	filter, err := discover.NewFilter(c.Config.ExcludeDirs, c.Config.ExcludePrefixes)
	if err != nil {
		return "", err
	}
	entries, err := os.ReadDir(base)
	if err != nil {
		return "", fmt.Errorf("selector: list %q: %w", base, err)
	}
	var candidates []prompt.Candidate
	for _, entry := range entries {
		if !entry.IsDir() || filter.ShouldExclude(entry.Name()) {
			continue
		}
		candidates = append(candidates, prompt.Candidate{
			Name: entry.Name(),
			Path: filepath.Join(base, entry.Name()),
		})
	}
	if len(candidates) == 0 {
		return "", ErrNoProjects
	}
	chosen, err := c.Prompt.PickProject(ctx, "What project do you want to open?", candidates)
	if err != nil {
		return "", err
	}
	return chosen.Path, nil
}

// selectByName walks all roots, indexes every visited directory by
// leaf name and asks the user to pick one.
func (c *Controller) selectByName(ctx context.Context, query string) (string, error) {
	filter, err := discover.NewFilter(c.Config.ExcludeDirs, c.Config.ExcludePrefixes)
	if err != nil {
		return "", err
	}
	dirs, warnings, err := discover.Scan(ctx, c.Config.NormalizedRoots(), filter)
	if err != nil {
		return "", err
	}
	for _, warning := range warnings {
		c.log().Warn("skipped during discovery", "path", warning.Path, "err", warning.Err)
	}
	index := discover.BuildIndex(dirs)
	for _, shadowed := range index.Shadowed() {
		c.log().Warn("project name shadowed by earlier match", "path", shadowed)
	}

	names := index.Names()
	if query != "" {
		names = rankByQuery(names, query)
	}
	if len(names) == 0 {
		return "", ErrNoProjects
	}
	candidates := make([]prompt.Candidate, 0, len(names))
	for _, name := range names {
		path, ok := index.Resolve(name)
		if !ok {
			continue
		}
		candidates = append(candidates, prompt.Candidate{Name: name, Path: path})
	}
	chosen, err := c.Prompt.PickProject(ctx, "Select project by name", candidates)
	if err != nil {
		return "", err
	}
	path, ok := index.Resolve(chosen.Name)
	if !ok {
		return "", ErrNoProjects
	}
	return path, nil
}

// rankByQuery reorders names by fuzzy match quality against the query,
// dropping names that do not match at all.
func rankByQuery(names []string, query string) []string {
	matches := fuzzy.Find(query, names)
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, names[match.Index])
	}
	return out
}

// decide resolves the activation policy for a detected manager.
// Declining the ask-prompt behaves as skip; aborting it cancels the
// whole run.
func (c *Controller) decide(ctx context.Context, manager *envmgr.Signature) (cmdplan.Decision, error) {
	policy, err := c.Config.Policy()
	if err != nil {
		return cmdplan.Skip, err
	}
	switch policy {
	case config.PolicyAuto:
		return cmdplan.Activate, nil
	case config.PolicyAsk:
		question := fmt.Sprintf("Do you want to activate / run commands in %s?", manager.Name)
		yes, err := c.Prompt.Confirm(ctx, question)
		if err != nil {
			return cmdplan.Skip, err
		}
		if yes {
			return cmdplan.Activate, nil
		}
		return cmdplan.Skip, nil
	default:
		return cmdplan.Skip, nil
	}
}

func (c *Controller) detect(path string) (*envmgr.Signature, error) {
	if len(c.Config.Managers) == 0 {
		return nil, nil
	}
	if c.Detect != nil {
		return c.Detect(path, c.Config.Managers)
	}
	return envmgr.Detect(path, c.Config.Managers)
}

func (c *Controller) log() *slog.Logger {
	if c.Log != nil {
		return c.Log
	}
	return slog.Default()
}
