package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultGlobalConfigContent = `# projloader - Global Configuration

# Search roots for --find mode. Every directory under these roots
# (at any depth) becomes a selectable project unless excluded below.
roots:
  - ~/projects

# Directory names never descended into during discovery.
exclude_dirs:
  - node_modules
  - vendor
  - __pycache__
  - target
  - build
  - dist

# Name prefixes never descended into. An entry must not be empty.
exclude_prefixes:
  - "."
  - "_"

# Commands run in the new terminal before the shell takes over.
commands: []

# Editor opened in the project root as the last command.
editor: vim

# What to do when a dependency manager is detected:
#   skip - ignore it
#   auto - run commands inside its environment
#   ask  - ask first
env_activation: ask

# Managers are checked in order; the first marker found wins.
dependency_managers:
  - name: poetry
    marker: poetry.lock
    activation: poetry shell
  - name: pipenv
    marker: Pipfile
    prefix: pipenv run
  - name: virtualenv
    marker: .venv
    activation: source .venv/bin/activate

# Per-project overrides live next to this file under projects/, e.g.
# projects/work.yml:
#   project_path: ~/work/clients
#   subprojects: true
#   commands: ["git fetch"]
`

// DefaultGlobalPath returns the global config path inside configDir.
func DefaultGlobalPath(configDir string) string {
	return filepath.Join(configDir, "config.yml")
}

// EnsureDefault creates the default global config if missing.
func EnsureDefault(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config: path is empty")
	}
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return fmt.Errorf("config: path %q is a directory", path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("config: stat %q: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultGlobalConfigContent), 0o644); err != nil {
		return fmt.Errorf("config: write %q: %w", path, err)
	}
	return nil
}
