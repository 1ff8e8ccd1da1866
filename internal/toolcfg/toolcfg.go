package toolcfg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/napmn/project-loader/internal/logging"
	"github.com/napmn/project-loader/internal/runenv"
)

const (
	defaultTerminal  = "gnome-terminal"
	defaultPromptMax = 15
)

var defaultTerminalArgs = []string{"--"}

// Config represents the tool preferences file (config.toml in the
// config dir). Project and discovery settings live in the YAML configs;
// this file only tunes how the tool itself behaves.
type Config struct {
	Terminal TerminalConfig `toml:"terminal"`
	Prompt   PromptConfig   `toml:"prompt"`
	Logging  logging.Config `toml:"logging"`
}

// TerminalConfig configures the terminal emulator used for launching.
type TerminalConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// PromptConfig configures the interactive picker.
type PromptConfig struct {
	MaxVisible int   `toml:"max_visible"`
	ShowPaths  *bool `toml:"show_paths"`
}

// Defaults returns the default tool preferences.
func Defaults() Config {
	return Config{
		Terminal: TerminalConfig{
			Command: defaultTerminal,
			Args:    append([]string(nil), defaultTerminalArgs...),
		},
		Prompt: PromptConfig{
			MaxVisible: defaultPromptMax,
			ShowPaths:  nil,
		},
	}
}

// DefaultPath returns the tool preferences path inside the config dir.
func DefaultPath(configDir string) string {
	return filepath.Join(configDir, "config.toml")
}

// Loader caches preferences and reloads when the file changes.
type Loader struct {
	path     string
	lastRead fileState
	cached   Config
}

type fileState struct {
	modTime time.Time
	size    int64
}

// NewLoader creates a preferences loader for the provided path.
func NewLoader(path string) *Loader {
	return &Loader{
		path:   strings.TrimSpace(path),
		cached: Defaults(),
	}
}

// Load returns the cached preferences, reloading if the file changed.
func (l *Loader) Load() (Config, error) {
	if l == nil {
		return Defaults(), errors.New("toolcfg: nil loader")
	}
	path := strings.TrimSpace(l.path)
	if path == "" {
		return Defaults(), errors.New("toolcfg: empty config path")
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Defaults()
			applyDefaults(&cfg)
			l.cached = cfg
			l.lastRead = fileState{}
			return l.cached, nil
		}
		return Defaults(), err
	}
	state := fileState{modTime: info.ModTime(), size: info.Size()}
	if state == l.lastRead {
		return l.cached, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), err
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), err
	}
	applyDefaults(&cfg)
	l.cached = cfg
	l.lastRead = state
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if override := runenv.Terminal(); override != "" {
		cfg.Terminal.Command = override
		cfg.Terminal.Args = nil
	}
	if strings.TrimSpace(cfg.Terminal.Command) == "" {
		cfg.Terminal.Command = defaultTerminal
		cfg.Terminal.Args = append([]string(nil), defaultTerminalArgs...)
	}
	if cfg.Prompt.MaxVisible <= 0 {
		cfg.Prompt.MaxVisible = defaultPromptMax
	}
}
