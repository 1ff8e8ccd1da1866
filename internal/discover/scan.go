package discover

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
)

// Scan walks every root and returns all visited directories in
// traversal order, together with the warnings collected along the way.
// Excluded subtrees are pruned: descent never happens into them.
// Symlinked directories are followed, but a real directory is visited
// at most once, so link cycles terminate. Traversal stops early when
// ctx is cancelled.
func Scan(ctx context.Context, roots []string, filter *Filter) ([]Dir, []Warning, error) {
	visited := make(map[string]struct{})
	var dirs []Dir
	var warnings []Warning
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			warnings = append(warnings, Warning{Path: root, Err: err})
			continue
		}
		if !info.IsDir() {
			continue
		}
		if err := walk(ctx, root, filter, visited, &dirs, &warnings); err != nil {
			return dirs, warnings, err
		}
	}
	return dirs, warnings, nil
}

func walk(ctx context.Context, path string, filter *Filter, visited map[string]struct{}, dirs *[]Dir, warnings *[]Warning) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		*warnings = append(*warnings, Warning{Path: path, Err: err})
		return nil
	}
	if _, ok := visited[real]; ok {
		return nil
	}
	visited[real] = struct{}{}

	*dirs = append(*dirs, Dir{
		Path:   path,
		Parent: filepath.Dir(path),
		Name:   filepath.Base(path),
	})

	entries, err := os.ReadDir(path)
	if err != nil {
		*warnings = append(*warnings, Warning{Path: path, Err: err})
		return nil
	}
	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		isDir, err := entryIsDir(child, entry)
		if err != nil {
			*warnings = append(*warnings, Warning{Path: child, Err: err})
			continue
		}
		if !isDir {
			continue
		}
		if filter.ShouldExclude(entry.Name()) {
			continue
		}
		if err := walk(ctx, child, filter, visited, dirs, warnings); err != nil {
			return err
		}
	}
	return nil
}

// entryIsDir resolves symlinked entries so linked project trees are
// still discovered.
func entryIsDir(path string, entry fs.DirEntry) (bool, error) {
	if entry.IsDir() {
		return true, nil
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
