package discover

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func mkdirs(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := os.MkdirAll(filepath.Join(root, p), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", p, err)
		}
	}
}

func mustFilter(t *testing.T, names, prefixes []string) *Filter {
	t.Helper()
	f, err := NewFilter(names, prefixes)
	if err != nil {
		t.Fatalf("NewFilter() error: %v", err)
	}
	return f
}

func scanAll(t *testing.T, roots []string, filter *Filter) ([]Dir, []Warning) {
	t.Helper()
	dirs, warnings, err := Scan(context.Background(), roots, filter)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	return dirs, warnings
}

func pathSet(dirs []Dir) map[string]struct{} {
	out := make(map[string]struct{}, len(dirs))
	for _, d := range dirs {
		out[d.Path] = struct{}{}
	}
	return out
}

func TestFilterExactAndPrefix(t *testing.T) {
	f := mustFilter(t, []string{"node_modules"}, []string{".", "_"})
	if !f.ShouldExclude("node_modules") {
		t.Fatalf("exact name not excluded")
	}
	if !f.ShouldExclude(".git") || !f.ShouldExclude("_build") {
		t.Fatalf("prefix names not excluded")
	}
	if f.ShouldExclude("Node_modules") {
		t.Fatalf("matching must be case-sensitive")
	}
	if f.ShouldExclude("") {
		t.Fatalf("empty name must never be excluded")
	}
	if f.ShouldExclude("src") {
		t.Fatalf("unrelated name excluded")
	}
}

func TestNewFilterRejectsEmptyPrefix(t *testing.T) {
	if _, err := NewFilter(nil, []string{""}); err == nil {
		t.Fatalf("expected error for empty prefix")
	}
}

func TestScanIndexesEveryDepth(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "clients/acme/api", "tools")
	dirs, _ := scanAll(t, []string{root}, mustFilter(t, nil, nil))
	got := pathSet(dirs)
	for _, want := range []string{
		root,
		filepath.Join(root, "clients"),
		filepath.Join(root, "clients", "acme"),
		filepath.Join(root, "clients", "acme", "api"),
		filepath.Join(root, "tools"),
	} {
		if _, ok := got[want]; !ok {
			t.Fatalf("Scan() missing %q; got %v", want, dirs)
		}
	}
}

func TestScanPrunesExcludedSubtrees(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "app/node_modules/leftpad", "app/src", ".cache/deep")
	dirs, _ := scanAll(t, []string{root}, mustFilter(t, []string{"node_modules"}, []string{"."}))
	got := pathSet(dirs)
	if _, ok := got[filepath.Join(root, "app", "node_modules")]; ok {
		t.Fatalf("excluded dir was indexed")
	}
	// descendants of excluded dirs are absent even when not excluded
	// themselves
	if _, ok := got[filepath.Join(root, "app", "node_modules", "leftpad")]; ok {
		t.Fatalf("descended into excluded subtree")
	}
	if _, ok := got[filepath.Join(root, ".cache", "deep")]; ok {
		t.Fatalf("descended into prefix-excluded subtree")
	}
	if _, ok := got[filepath.Join(root, "app", "src")]; !ok {
		t.Fatalf("kept dir missing")
	}
}

func TestScanSymlinkCycleTerminates(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	mkdirs(t, root, "a/b")
	if err := os.Symlink(filepath.Join(root, "a"), filepath.Join(root, "a", "b", "loop")); err != nil {
		t.Skipf("symlink: %v", err)
	}
	dirs, _ := scanAll(t, []string{root}, mustFilter(t, nil, nil))
	seen := make(map[string]int)
	for _, d := range dirs {
		real, err := filepath.EvalSymlinks(d.Path)
		if err != nil {
			continue
		}
		seen[real]++
		if seen[real] > 1 {
			t.Fatalf("real directory %q visited twice", real)
		}
	}
}

func TestScanFollowsSymlinkedProjects(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	base := t.TempDir()
	root := filepath.Join(base, "root")
	outside := filepath.Join(base, "outside")
	mkdirs(t, base, "root", "outside/proj")
	if err := os.Symlink(outside, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlink: %v", err)
	}
	dirs, _ := scanAll(t, []string{root}, mustFilter(t, nil, nil))
	got := pathSet(dirs)
	if _, ok := got[filepath.Join(root, "linked", "proj")]; !ok {
		t.Fatalf("symlinked project tree not discovered: %v", dirs)
	}
}

func TestScanOverlappingRootsDeduplicated(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "x")
	dirs, _ := scanAll(t, []string{root, root}, mustFilter(t, nil, nil))
	count := 0
	for _, d := range dirs {
		if d.Path == filepath.Join(root, "x") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("overlapping roots produced %d entries for the same dir", count)
	}
}

func TestScanMissingRootWarns(t *testing.T) {
	root := filepath.Join(t.TempDir(), "gone")
	dirs, warnings := scanAll(t, []string{root}, mustFilter(t, nil, nil))
	if len(dirs) != 0 {
		t.Fatalf("Scan() dirs = %v, want none", dirs)
	}
	if len(warnings) != 1 || warnings[0].Path != root {
		t.Fatalf("Scan() warnings = %v, want one for root", warnings)
	}
}

func TestScanUnreadableDirWarnsAndContinues(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission checks not enforced here")
	}
	root := t.TempDir()
	mkdirs(t, root, "locked/inner", "open")
	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })
	dirs, warnings := scanAll(t, []string{root}, mustFilter(t, nil, nil))
	got := pathSet(dirs)
	if _, ok := got[filepath.Join(root, "open")]; !ok {
		t.Fatalf("traversal did not continue past unreadable dir")
	}
	found := false
	for _, w := range warnings {
		if w.Path == locked {
			found = true
		}
	}
	if !found {
		t.Fatalf("no warning recorded for unreadable dir: %v", warnings)
	}
}

func TestScanCancellation(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a", "b")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Scan(ctx, []string{root}, mustFilter(t, nil, nil)); err == nil {
		t.Fatalf("expected context error from cancelled scan")
	}
}

func TestBuildIndexFirstWinsAndReportsShadowed(t *testing.T) {
	dirs := []Dir{
		{Path: "/r/one/api", Parent: "/r/one", Name: "api"},
		{Path: "/r/web", Parent: "/r", Name: "web"},
		{Path: "/r/two/api", Parent: "/r/two", Name: "api"},
	}
	ix := BuildIndex(dirs)
	if ix.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ix.Len())
	}
	path, ok := ix.Resolve("api")
	if !ok || path != "/r/one/api" {
		t.Fatalf("Resolve(api) = %q, %v; want first traversal hit", path, ok)
	}
	shadowed := ix.Shadowed()
	if len(shadowed) != 1 || shadowed[0] != "/r/two/api" {
		t.Fatalf("Shadowed() = %v", shadowed)
	}
	names := ix.Names()
	if len(names) != 2 || names[0] != "api" || names[1] != "web" {
		t.Fatalf("Names() = %v, want traversal order", names)
	}
}

func TestResolveMissIsNotFound(t *testing.T) {
	ix := BuildIndex(nil)
	if _, ok := ix.Resolve("ghost"); ok {
		t.Fatalf("Resolve() on empty index must miss")
	}
}

func TestScanDeterministicAcrossRuns(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "one/api", "two/api")
	filter := mustFilter(t, nil, nil)
	first, _ := scanAll(t, []string{root}, filter)
	second, _ := scanAll(t, []string{root}, filter)
	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("traversal order differs at %d: %v vs %v", i, first[i], second[i])
		}
	}
	a, _ := BuildIndex(first).Resolve("api")
	b, _ := BuildIndex(second).Resolve("api")
	if a != b {
		t.Fatalf("tie-break not deterministic: %q vs %q", a, b)
	}
}
