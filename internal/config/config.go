package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/napmn/project-loader/internal/envmgr"
	"github.com/napmn/project-loader/internal/pathutil"
)

// Mode selects where project candidates come from. Exactly one mode is
// chosen per invocation.
type Mode int

const (
	// ModeDirect lists immediate subdirectories of the configured
	// project path. The path is assumed to be curated; only direct
	// children are filtered, there is no recursion.
	ModeDirect Mode = iota
	// ModeFind walks all configured roots and offers every visited
	// directory for fuzzy selection.
	ModeFind
)

// Policy says how to handle a detected dependency manager.
type Policy string

const (
	PolicySkip Policy = "skip"
	PolicyAuto Policy = "auto"
	PolicyAsk  Policy = "ask"
)

// ParsePolicy maps a config value onto a Policy. Empty means skip.
func ParsePolicy(raw string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(PolicySkip):
		return PolicySkip, nil
	case string(PolicyAuto):
		return PolicyAuto, nil
	case string(PolicyAsk):
		return PolicyAsk, nil
	default:
		return PolicySkip, fmt.Errorf("config: invalid env_activation %q (want skip, auto or ask)", raw)
	}
}

// Config holds the discovery and launch settings. The global config is
// loaded once per run; a named project config may override individual
// fields. The merged value is never mutated after selection starts.
type Config struct {
	// ProjectPath is the directory listed in direct mode.
	ProjectPath string `yaml:"project_path"`
	// Subprojects controls whether direct mode prompts for a
	// subdirectory (default) or opens ProjectPath itself.
	Subprojects *bool `yaml:"subprojects"`
	// Roots are the search roots walked in find mode.
	Roots []string `yaml:"roots"`

	ExcludeDirs     []string `yaml:"exclude_dirs"`
	ExcludePrefixes []string `yaml:"exclude_prefixes"`

	Commands      []string           `yaml:"commands"`
	Editor        string             `yaml:"editor"`
	EnvActivation string             `yaml:"env_activation"`
	Managers      []envmgr.Signature `yaml:"dependency_managers"`
}

// HasSubprojects reports whether direct mode should list and prompt.
func (c *Config) HasSubprojects() bool {
	return c.Subprojects == nil || *c.Subprojects
}

// Policy returns the parsed activation policy.
func (c *Config) Policy() (Policy, error) {
	return ParsePolicy(c.EnvActivation)
}

// NormalizedRoots returns the expanded, deduplicated search roots.
func (c *Config) NormalizedRoots() []string {
	return pathutil.NormalizeAll(c.Roots)
}

// NormalizedProjectPath returns the expanded direct-mode path.
func (c *Config) NormalizedProjectPath() string {
	return pathutil.Normalize(c.ProjectPath)
}

// Load reads a YAML config file. Unknown fields are ignored.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return &cfg, nil
}

// LoadProject reads the named project config from dir. The name may
// omit the .yml extension.
func LoadProject(dir, name string) (*Config, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("config: project config name is empty")
	}
	if !strings.HasSuffix(name, ".yml") && !strings.HasSuffix(name, ".yaml") {
		name += ".yml"
	}
	return Load(filepath.Join(dir, name))
}

// Merge overlays a project config on top of the global one. Set fields
// replace their global counterpart wholesale; unset fields keep the
// global value. A fresh value is returned, neither input is changed.
func Merge(global, overlay *Config) *Config {
	if global == nil {
		global = &Config{}
	}
	out := *global
	if overlay == nil {
		return &out
	}
	if strings.TrimSpace(overlay.ProjectPath) != "" {
		out.ProjectPath = overlay.ProjectPath
	}
	if overlay.Subprojects != nil {
		out.Subprojects = overlay.Subprojects
	}
	if len(overlay.Roots) > 0 {
		out.Roots = overlay.Roots
	}
	if overlay.ExcludeDirs != nil {
		out.ExcludeDirs = overlay.ExcludeDirs
	}
	if overlay.ExcludePrefixes != nil {
		out.ExcludePrefixes = overlay.ExcludePrefixes
	}
	if overlay.Commands != nil {
		out.Commands = overlay.Commands
	}
	if strings.TrimSpace(overlay.Editor) != "" {
		out.Editor = overlay.Editor
	}
	if strings.TrimSpace(overlay.EnvActivation) != "" {
		out.EnvActivation = overlay.EnvActivation
	}
	if len(overlay.Managers) > 0 {
		out.Managers = overlay.Managers
	}
	return &out
}

// Validate checks the merged config for the given mode. All problems
// here are startup errors, reported before discovery begins.
func (c *Config) Validate(mode Mode) error {
	switch mode {
	case ModeDirect:
		if strings.TrimSpace(c.ProjectPath) == "" {
			return fmt.Errorf("config: project_path is required")
		}
	case ModeFind:
		if len(c.NormalizedRoots()) == 0 {
			return fmt.Errorf("config: at least one search root is required")
		}
	default:
		return fmt.Errorf("config: unknown mode %d", mode)
	}
	if strings.TrimSpace(c.Editor) == "" {
		return fmt.Errorf("config: editor is required")
	}
	for _, prefix := range c.ExcludePrefixes {
		if prefix == "" {
			return fmt.Errorf("config: empty exclude prefix would exclude everything")
		}
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	for _, sig := range c.Managers {
		if err := sig.Validate(); err != nil {
			return err
		}
	}
	return nil
}
