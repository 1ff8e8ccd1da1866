package cmdplan

import (
	"strings"

	"github.com/napmn/project-loader/internal/envmgr"
)

// Decision says whether commands should run inside a detected
// dependency-manager environment. Ask must be resolved to Skip or
// Activate by the caller before composing; Compose treats any
// unresolved value as Skip.
type Decision int

const (
	Skip Decision = iota
	Activate
	Ask
)

// EditorCommand builds the trailing editor invocation for a plan.
// The editor always opens the project root, never a wrapped variant.
func EditorCommand(editor string) string {
	editor = strings.TrimSpace(editor)
	if editor == "" {
		return ""
	}
	return editor + " ."
}

// Compose builds the ordered command list to run before the shell
// takes over. It never mutates its inputs and returns a fresh slice
// on every call.
//
// With an activatable manager the activation command is prepended and
// persists for the session. Without one, every base command is wrapped
// with the manager prefix; the editor command is never wrapped.
func Compose(base []string, manager *envmgr.Signature, decision Decision, editor string) []string {
	plan := make([]string, 0, len(base)+2)
	if manager == nil || decision != Activate {
		plan = append(plan, base...)
		return appendEditor(plan, editor)
	}
	if manager.HasActivation() {
		plan = append(plan, strings.TrimSpace(manager.Activation))
		plan = append(plan, base...)
		return appendEditor(plan, editor)
	}
	prefix := strings.TrimSpace(manager.Prefix)
	for _, command := range base {
		plan = append(plan, prefix+" "+command)
	}
	return appendEditor(plan, editor)
}

func appendEditor(plan []string, editor string) []string {
	if cmd := EditorCommand(editor); cmd != "" {
		plan = append(plan, cmd)
	}
	return plan
}
