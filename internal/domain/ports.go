package domain

// GitClient answers read-only questions about the dotfiles working
// tree. Implementations must degrade to negative answers (false, nil)
// when the directory is not a git repository, so that filesystem and
// parser checks still run without version-control data.
type GitClient interface {
	// IsTracked reports whether the repo-relative path is recorded in
	// the git index. An unknown path is a plain false, not an error.
	IsTracked(path string) bool

	// IsIgnored reports whether the path matches the repository's
	// ignore rules. Independent of IsTracked: callers must not assume
	// the two are mutually exclusive.
	IsIgnored(path string) bool

	// TrackedFiles returns every tracked path relative to the
	// repository root, in the order git reports them. The order is not
	// stable and callers must not depend on it beyond display.
	TrackedFiles() []string
}
