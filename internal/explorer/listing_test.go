package explorer_test

import (
	"os"
	"path/filepath"
	"testing"

	"fexplorer/internal/errors"
	"fexplorer/internal/explorer"
	"fexplorer/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(listing []explorer.Entry) []string {
	out := make([]string, len(listing))
	for i, e := range listing {
		out[i] = e.BaseName()
	}
	return out
}

func TestBuildListingOrdering(t *testing.T) {
	fsys := testutils.NewMemFS("/Zebra", "/apple/", "/Banana/")

	listing, err := explorer.BuildListing(fsys, "/")
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "Banana", "Zebra"}, names(listing))

	assert.Equal(t, "/apple", listing[0].Name)
	assert.True(t, listing[0].IsDirectory)
	assert.Equal(t, explorer.IconDirectory, listing[0].Icon)
	assert.False(t, listing[2].IsDirectory)
	assert.Equal(t, explorer.IconFile, listing[2].Icon)
}

func TestBuildListingDirectoriesFirst(t *testing.T) {
	fsys := testutils.NewMemFS(
		"/sd/b.txt", "/sd/A.txt", "/sd/c/", "/sd/B/", "/sd/a/", "/sd/Z.bin",
	)

	listing, err := explorer.BuildListing(fsys, "/sd/")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "B", "c", "A.txt", "b.txt", "Z.bin"}, names(listing))

	seenFile := false
	for _, e := range listing {
		if !e.IsDirectory {
			seenFile = true
		}
		assert.False(t, seenFile && e.IsDirectory, "directory %s after a file", e.Name)
	}
}

func TestBuildListingCaseTiesKeepEnumerationOrder(t *testing.T) {
	fsys := testutils.NewMemFS("/x/README", "/x/readme", "/x/ReadMe")

	listing, err := explorer.BuildListing(fsys, "/x/")
	require.NoError(t, err)
	assert.Equal(t, []string{"README", "readme", "ReadMe"}, names(listing))
}

func TestBuildListingJoinsWithoutTrailingSeparator(t *testing.T) {
	fsys := testutils.NewMemFS("/games/save.dat")

	listing, err := explorer.BuildListing(fsys, "/games")
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Equal(t, "/games/save.dat", listing[0].Name)
}

func TestBuildListingEmptyDirectory(t *testing.T) {
	fsys := testutils.NewMemFS("/empty/")

	listing, err := explorer.BuildListing(fsys, "/empty/")
	require.NoError(t, err)
	assert.Empty(t, listing)
}

func TestBuildListingErrors(t *testing.T) {
	fsys := testutils.NewMemFS("/locked/secret", "/file.txt")
	fsys.Deny("/locked/")

	for _, p := range []string{"/missing/", "/locked/", "/file.txt"} {
		t.Run(p, func(t *testing.T) {
			listing, err := explorer.BuildListing(fsys, p)
			assert.Nil(t, listing)
			require.Error(t, err)
			assert.True(t, errors.IsDirectoryUnreadable(err))

			var fe *errors.FileError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, p, fe.Path())
		})
	}
}

func TestListingBuilderHidden(t *testing.T) {
	fsys := testutils.NewMemFS("/home/.cache/", "/home/docs/", "/home/notes.txt", "/home/core.tmp")

	b, err := explorer.NewListingBuilder(fsys, ".*", "*.tmp")
	require.NoError(t, err)

	listing, err := b.Build("/home/")
	require.NoError(t, err)
	assert.Equal(t, []string{"docs", "notes.txt"}, names(listing))
}

func TestListingBuilderBadPattern(t *testing.T) {
	_, err := explorer.NewListingBuilder(testutils.NewMemFS(), "[")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestBuildListingOSFileSystem(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTree(t, dir, "beta/", "Alpha.txt", "alpha/", "gamma.txt")

	root := filepath.ToSlash(dir) + "/"
	listing, err := explorer.BuildListing(explorer.OSFileSystem{}, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "Alpha.txt", "gamma.txt"}, names(listing))
	assert.Equal(t, root+"alpha", listing[0].Name)

	_, err = explorer.BuildListing(explorer.OSFileSystem{}, root+"nope/")
	assert.True(t, errors.IsDirectoryUnreadable(err))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
