package dotter_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcheck/dotcheck/internal/adapters/outbound/dotter"
	"github.com/dotcheck/dotcheck/internal/domain"
)

func writeTOML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_MissingFileYieldsEmptyDocument(t *testing.T) {
	loader := dotter.New()

	doc, err := loader.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err, "a missing config is the rules' concern, not the loader's")
	assert.Empty(t, doc)
}

func TestLoader_MalformedSyntaxWrapsErrParse(t *testing.T) {
	dir := t.TempDir()
	path := writeTOML(t, dir, "global.toml", "this line has no equals sign\n")
	loader := dotter.New()

	_, err := loader.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, dotter.ErrParse)
}

func TestExtractFileEntries_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeTOML(t, dir, "global.toml", "[a.files]\n\"x\" = \"y\"\n")
	loader := dotter.New()

	doc, err := loader.Load(path)
	require.NoError(t, err)

	entries := loader.ExtractFileEntries(doc)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.FileEntry{Source: "x", Target: "y", Group: "a"}, entries[0])
}

func TestExtractFileEntries_MultipleGroupsSorted(t *testing.T) {
	dir := t.TempDir()
	path := writeTOML(t, dir, "global.toml", `
[shell.files]
".zshrc" = "~/.zshrc"
".zprofile" = "~/.zprofile"

[vim.files]
".vimrc" = "~/.vimrc"
`)
	loader := dotter.New()

	doc, err := loader.Load(path)
	require.NoError(t, err)

	entries := loader.ExtractFileEntries(doc)
	require.Len(t, entries, 3)
	assert.Equal(t, ".zprofile", entries[0].Source)
	assert.Equal(t, "shell", entries[0].Group)
	assert.Equal(t, ".zshrc", entries[1].Source)
	assert.Equal(t, ".vimrc", entries[2].Source)
	assert.Equal(t, "vim", entries[2].Group)
}

func TestExtractFileEntries_EmptySectionYieldsNothing(t *testing.T) {
	dir := t.TempDir()
	path := writeTOML(t, dir, "global.toml", "[shell.files]\n")
	loader := dotter.New()

	doc, err := loader.Load(path)
	require.NoError(t, err)
	assert.Empty(t, loader.ExtractFileEntries(doc))
}

func TestExtractFileEntries_SectionsWithoutFilesTableIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeTOML(t, dir, "global.toml", `
[shell]
depends = ["vim"]

[shell.files]
".zshrc" = "~/.zshrc"
`)
	loader := dotter.New()

	doc, err := loader.Load(path)
	require.NoError(t, err)

	entries := loader.ExtractFileEntries(doc)
	require.Len(t, entries, 1)
	assert.Equal(t, ".zshrc", entries[0].Source)
}

func TestExtractFileEntries_TableValuedTarget(t *testing.T) {
	dir := t.TempDir()
	path := writeTOML(t, dir, "global.toml", `
[editor.files]
".vimrc" = { target = "~/.vimrc", type = "symbolic" }
`)
	loader := dotter.New()

	doc, err := loader.Load(path)
	require.NoError(t, err)

	entries := loader.ExtractFileEntries(doc)
	require.Len(t, entries, 1)
	assert.Equal(t, "~/.vimrc", entries[0].Target)
}

func TestExtractFileEntries_TopLevelAssignmentsIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeTOML(t, dir, "global.toml", `
stray = "value"

[shell.files]
".zshrc" = "~/.zshrc"
`)
	loader := dotter.New()

	doc, err := loader.Load(path)
	require.NoError(t, err)

	entries := loader.ExtractFileEntries(doc)
	require.Len(t, entries, 1)
}

func TestOverlayName_MatchesPlatform(t *testing.T) {
	name := dotter.OverlayName()
	if runtime.GOOS == "darwin" {
		assert.Equal(t, "macos.toml", name)
	} else {
		assert.Equal(t, runtime.GOOS+".toml", name)
	}
}

func TestGlobalPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/repo", ".dotter", "global.toml"),
		dotter.GlobalPath("/repo"))
}
