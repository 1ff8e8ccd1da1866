package term

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/muesli/termenv"
)

// Launcher spawns a terminal emulator running an interactive shell in
// a project directory. The core never depends on its return value;
// failure to start is reported and not retried.
type Launcher struct {
	// Command is the emulator binary (gnome-terminal by default).
	Command string
	// Args are inserted between the emulator and the shell invocation
	// (gnome-terminal needs "--").
	Args []string
}

var ansi = termenv.ANSI

// BuildScript renders the shell script handed to `<shell> -c`: change
// into the project, run each command behind a colored echo line, then
// exec the interactive shell so control ends up with the user.
func BuildScript(dir, shell string, commands []string) string {
	var b strings.Builder
	b.WriteString("cd ")
	b.WriteString(shellquote.Join(dir))
	b.WriteString("; ")
	for _, command := range commands {
		command = strings.TrimSpace(command)
		if command == "" {
			continue
		}
		b.WriteString(echoLine(command))
		b.WriteString(" ")
		b.WriteString(command)
		b.WriteString("; ")
	}
	b.WriteString("exec ")
	b.WriteString(shell)
	return b.String()
}

// echoLine prints what is about to run, cyan label and green command.
func echoLine(command string) string {
	label := termenv.String("Executing command:").
		Foreground(ansi.Color("14")).Bold().String()
	highlighted := termenv.String(command).
		Foreground(ansi.Color("10")).Bold().String()
	return "printf '%s\\n' " + shellquote.Join(label+" "+highlighted) + ";"
}

// Spawn starts the terminal emulator detached. The spawned process
// owns the session from here on.
func (l *Launcher) Spawn(ctx context.Context, dir, shell string, commands []string) error {
	if l == nil || strings.TrimSpace(l.Command) == "" {
		return fmt.Errorf("term: terminal command is empty")
	}
	script := BuildScript(dir, shell, commands)
	argv := append(append([]string(nil), l.Args...), shell, "-c", script)
	cmd := exec.CommandContext(ctx, l.Command, argv...)
	cmd.Dir = dir
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("term: start %s: %w", l.Command, err)
	}
	if cmd.Process != nil {
		_ = cmd.Process.Release()
	}
	return nil
}
