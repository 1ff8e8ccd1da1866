package appdirs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/napmn/project-loader/internal/runenv"
)

const appDir = "project-loader"

// ConfigDir returns the directory holding the global config, project
// configs and tool preferences, creating it when missing.
func ConfigDir() (string, error) {
	if override := runenv.ConfigDir(); override != "" {
		return ensureDir(override)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("appdirs: resolve config dir: %w", err)
	}
	return ensureDir(filepath.Join(dir, appDir))
}

// ProjectConfigDir returns the directory holding named project configs.
func ProjectConfigDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return ensureDir(filepath.Join(dir, "projects"))
}

func ensureDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("appdirs: config dir is empty")
	}
	info, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("appdirs: stat %q: %w", dir, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("appdirs: create %q: %w", dir, err)
		}
		return dir, nil
	}
	if !info.IsDir() {
		return "", fmt.Errorf("appdirs: %q is not a directory", dir)
	}
	return dir, nil
}
