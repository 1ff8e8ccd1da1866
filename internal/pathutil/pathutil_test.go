package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	if got := ExpandUser("~"); got != home {
		t.Fatalf("ExpandUser(~) = %q, want %q", got, home)
	}
	want := filepath.Join(home, "projects")
	if got := ExpandUser("~/projects"); got != want {
		t.Fatalf("ExpandUser(~/projects) = %q, want %q", got, want)
	}
	if got := ExpandUser("/tmp/x"); got != "/tmp/x" {
		t.Fatalf("ExpandUser(abs) = %q, want unchanged", got)
	}
	if got := ExpandUser(""); got != "" {
		t.Fatalf("ExpandUser(empty) = %q, want empty", got)
	}
}

func TestShortenUser(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	path := filepath.Join(home, "work")
	if got := ShortenUser(path); got != "~"+string(os.PathSeparator)+"work" {
		t.Fatalf("ShortenUser(%q) = %q", path, got)
	}
	if got := ShortenUser("/opt/x"); got != "/opt/x" {
		t.Fatalf("ShortenUser(outside home) = %q, want unchanged", got)
	}
}

func TestNormalize(t *testing.T) {
	rel := "testdata"
	abs, err := filepath.Abs(rel)
	if err != nil {
		t.Fatalf("Abs() error: %v", err)
	}
	if got := Normalize(rel); got != abs {
		t.Fatalf("Normalize(%q) = %q, want %q", rel, got, abs)
	}
	if got := Normalize("  "); got != "" {
		t.Fatalf("Normalize(blank) = %q, want empty", got)
	}
	if got := Normalize("/tmp//x/"); got != "/tmp/x" {
		t.Fatalf("Normalize(messy) = %q, want /tmp/x", got)
	}
}

func TestNormalizeAll(t *testing.T) {
	root := t.TempDir()
	out := NormalizeAll([]string{root, root + string(os.PathSeparator), "", "   "})
	if len(out) != 1 {
		t.Fatalf("NormalizeAll() len = %d, want 1", len(out))
	}
	if out[0] != Normalize(root) {
		t.Fatalf("NormalizeAll()[0] = %q, want %q", out[0], Normalize(root))
	}
	if got := NormalizeAll(nil); got != nil {
		t.Fatalf("NormalizeAll(nil) = %v, want nil", got)
	}
}
