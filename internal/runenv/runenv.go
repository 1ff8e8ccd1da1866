package runenv

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	ConfigDirEnv = "PROJLOADER_CONFIG_DIR"
	TerminalEnv  = "PROJLOADER_TERMINAL"
	ShellEnv     = "SHELL"
)

const fallbackShell = "bash"

// ConfigDir returns the config directory override, if any.
func ConfigDir() string {
	return strings.TrimSpace(os.Getenv(ConfigDirEnv))
}

// Terminal returns the terminal emulator override, if any.
func Terminal() string {
	return strings.TrimSpace(os.Getenv(TerminalEnv))
}

// DefaultShell returns the basename of the user's login shell,
// falling back to bash when $SHELL is unset.
func DefaultShell() string {
	raw := strings.TrimSpace(os.Getenv(ShellEnv))
	if raw == "" {
		return fallbackShell
	}
	shell := filepath.Base(raw)
	if shell == "" || shell == "." || shell == "/" {
		return fallbackShell
	}
	return shell
}
