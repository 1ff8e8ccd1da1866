package runenv

import "testing"

func TestConfigDirOverride(t *testing.T) {
	t.Setenv(ConfigDirEnv, "  /tmp/cfg  ")
	if got := ConfigDir(); got != "/tmp/cfg" {
		t.Fatalf("ConfigDir() = %q, want /tmp/cfg", got)
	}
	t.Setenv(ConfigDirEnv, "")
	if got := ConfigDir(); got != "" {
		t.Fatalf("ConfigDir() = %q, want empty", got)
	}
}

func TestDefaultShell(t *testing.T) {
	t.Setenv(ShellEnv, "/usr/bin/zsh")
	if got := DefaultShell(); got != "zsh" {
		t.Fatalf("DefaultShell() = %q, want zsh", got)
	}
	t.Setenv(ShellEnv, "fish")
	if got := DefaultShell(); got != "fish" {
		t.Fatalf("DefaultShell() = %q, want fish", got)
	}
	t.Setenv(ShellEnv, "")
	if got := DefaultShell(); got != "bash" {
		t.Fatalf("DefaultShell() = %q, want bash fallback", got)
	}
	t.Setenv(ShellEnv, "/")
	if got := DefaultShell(); got != "bash" {
		t.Fatalf("DefaultShell(/) = %q, want bash fallback", got)
	}
}

func TestTerminalOverride(t *testing.T) {
	t.Setenv(TerminalEnv, "kitty")
	if got := Terminal(); got != "kitty" {
		t.Fatalf("Terminal() = %q, want kitty", got)
	}
}
