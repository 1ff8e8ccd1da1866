package discover

// Index maps leaf directory names to their full paths. When two
// discovered directories share a leaf name, the first one in traversal
// order wins and the loser is recorded as shadowed instead of being
// silently dropped.
type Index struct {
	paths    map[string]string
	names    []string
	shadowed []string
}

// BuildIndex builds the name index from discovered directories,
// preserving traversal order.
func BuildIndex(dirs []Dir) *Index {
	ix := &Index{paths: make(map[string]string, len(dirs))}
	for _, dir := range dirs {
		if dir.Name == "" {
			continue
		}
		if _, ok := ix.paths[dir.Name]; ok {
			ix.shadowed = append(ix.shadowed, dir.Path)
			continue
		}
		ix.paths[dir.Name] = dir.Path
		ix.names = append(ix.names, dir.Name)
	}
	return ix
}

// Resolve maps a leaf name back to its full path. A miss is a normal
// outcome, not an error.
func (ix *Index) Resolve(name string) (string, bool) {
	if ix == nil {
		return "", false
	}
	path, ok := ix.paths[name]
	return path, ok
}

// Names returns the indexed leaf names in traversal order.
func (ix *Index) Names() []string {
	if ix == nil {
		return nil
	}
	return append([]string(nil), ix.names...)
}

// Shadowed returns the full paths that lost the duplicate-name
// tie-break, in traversal order.
func (ix *Index) Shadowed() []string {
	if ix == nil {
		return nil
	}
	return append([]string(nil), ix.shadowed...)
}

// Len returns the number of indexed names.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.names)
}
