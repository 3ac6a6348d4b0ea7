// Package dotter reads the declarative configuration of the dotter
// dotfile manager. It only inspects the config; deployment is dotter's
// business.
package dotter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dotcheck/dotcheck/internal/domain"
)

// Fixed locations inside the dotfiles root.
const (
	Dir        = ".dotter"
	GlobalFile = "global.toml"

	// filesKey marks the sub-table holding source -> target mappings.
	filesKey = "files"
)

// ErrParse marks genuinely malformed config syntax. Semantic gaps such
// as missing sections or keys are never loader errors; the rules
// decide what those mean.
var ErrParse = errors.New("invalid dotter config syntax")

// Document is a parsed dotter config: top-level sections mapping to
// their decoded tables.
type Document map[string]any

// Loader parses dotter TOML configs.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load parses the TOML file at path. A missing file yields an empty
// document and a nil error; malformed syntax wraps ErrParse.
func (l *Loader) Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Document{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, filepath.Base(path), err)
	}
	return doc, nil
}

// ExtractFileEntries yields one entry per mapping declared in a
// section's `files` sub-table, tagged with the enclosing section name.
// Sections without a files table yield nothing. Output order is sorted
// by group then source so repeated runs report identically.
func (l *Loader) ExtractFileEntries(doc Document) []domain.FileEntry {
	groups := make([]string, 0, len(doc))
	for name := range doc {
		groups = append(groups, name)
	}
	sort.Strings(groups)

	var entries []domain.FileEntry
	for _, group := range groups {
		section, ok := doc[group].(map[string]any)
		if !ok {
			continue
		}
		files, ok := section[filesKey].(map[string]any)
		if !ok {
			continue
		}

		sources := make([]string, 0, len(files))
		for source := range files {
			sources = append(sources, source)
		}
		sort.Strings(sources)

		for _, source := range sources {
			entries = append(entries, domain.FileEntry{
				Source: source,
				Target: targetOf(files[source]),
				Group:  group,
			})
		}
	}
	return entries
}

// targetOf extracts the deployment destination from a files-table
// value. Dotter allows either a plain string or a table with a target
// key; anything else leaves the target empty.
func targetOf(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		if t, ok := v["target"].(string); ok {
			return t
		}
	}
	return ""
}

// GlobalPath returns the location of the global config under root.
func GlobalPath(root string) string {
	return filepath.Join(root, Dir, GlobalFile)
}

// OverlayPath returns the location of the platform-specific overlay
// config under root.
func OverlayPath(root string) string {
	return filepath.Join(root, Dir, OverlayName())
}

// OverlayName is the platform overlay's file name: macos.toml on
// darwin (dotter's convention), "<GOOS>.toml" elsewhere.
func OverlayName() string {
	if runtime.GOOS == "darwin" {
		return "macos.toml"
	}
	return runtime.GOOS + ".toml"
}
