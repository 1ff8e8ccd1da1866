package envmgr

import (
	"fmt"
	"os"
	"strings"
)

// Signature describes how to detect one dependency manager and how to
// run commands inside its environment. Managers are matched in the
// order they are configured; the first marker hit wins.
type Signature struct {
	// Name identifies the manager in prompts and logs.
	Name string `yaml:"name"`
	// Marker is the file or directory whose presence in a project's
	// top level identifies the manager (e.g. poetry.lock, Pipfile).
	Marker string `yaml:"marker"`
	// Activation is a command that activates the environment for the
	// rest of the shell session (e.g. "poetry shell"). Optional.
	Activation string `yaml:"activation"`
	// Prefix wraps a single command when the manager has no standalone
	// activation (e.g. "pipenv run"). Required if Activation is empty.
	Prefix string `yaml:"prefix"`
}

// Validate checks the signature invariant: a manager must either be
// activatable in place or able to wrap commands.
func (s Signature) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("envmgr: manager name is required")
	}
	if strings.TrimSpace(s.Marker) == "" {
		return fmt.Errorf("envmgr: manager %q: marker is required", s.Name)
	}
	if strings.TrimSpace(s.Activation) == "" && strings.TrimSpace(s.Prefix) == "" {
		return fmt.Errorf("envmgr: manager %q: activation or prefix is required", s.Name)
	}
	return nil
}

// HasActivation reports whether the manager supports standalone
// environment activation.
func (s Signature) HasActivation() bool {
	return strings.TrimSpace(s.Activation) != ""
}

// Detect inspects the immediate contents of projectPath against the
// ordered signature list. The first signature whose marker is present
// wins; nil means no manager applies, which is not an error.
func Detect(projectPath string, signatures []Signature) (*Signature, error) {
	if len(signatures) == 0 {
		return nil, nil
	}
	entries, err := os.ReadDir(projectPath)
	if err != nil {
		return nil, fmt.Errorf("envmgr: list %q: %w", projectPath, err)
	}
	present := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		present[entry.Name()] = struct{}{}
	}
	for i := range signatures {
		marker := strings.TrimSpace(signatures[i].Marker)
		if marker == "" {
			continue
		}
		if _, ok := present[marker]; ok {
			sig := signatures[i]
			return &sig, nil
		}
	}
	return nil, nil
}
