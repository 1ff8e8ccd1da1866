package discover

// Dir is a directory visited during discovery. Every directory at any
// depth under a root is a candidate project, not only leaves.
type Dir struct {
	Path   string
	Parent string
	Name   string
}

// Warning records a directory that was skipped during traversal
// without aborting discovery (permission errors, broken symlinks).
type Warning struct {
	Path string
	Err  error
}
