package kbuildminer

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/KernelHaven/KbuildMinerExtractor/internal/testutil"
)

// fakeTree builds a minimal kernel-tree shape under a temp dir.
func fakeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	mkdir := func(parts ...string) string {
		dir := filepath.Join(append([]string{root}, parts...)...)
		testutil.NoError(t, os.MkdirAll(dir, 0o755))
		return dir
	}
	touch := func(path string) {
		testutil.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	touch(filepath.Join(mkdir("drivers"), "Makefile"))
	touch(filepath.Join(mkdir("sound"), "Kbuild"))
	touch(filepath.Join(mkdir("arch"), "Makefile"))
	mkdir("Documentation") // no build file
	touch(filepath.Join(root, "Makefile"))
	touch(filepath.Join(root, "README")) // plain file at top level

	return root
}

func TestTopFolders(t *testing.T) {
	folders, err := TopFolders(fakeTree(t))
	testutil.NoError(t, err)
	testutil.True(t, slices.Equal(folders, []string{"arch", "drivers", "sound"}),
		"got %v", folders)
}

func TestTopFoldersList(t *testing.T) {
	list, err := TopFoldersList(fakeTree(t))
	testutil.NoError(t, err)
	testutil.Equal(t, "arch,drivers,sound", list)
}

func TestTopFoldersMissingRoot(t *testing.T) {
	_, err := TopFolders(filepath.Join(t.TempDir(), "nope"))
	testutil.Error(t, err)
}

func TestTopFoldersEmptyTree(t *testing.T) {
	folders, err := TopFolders(t.TempDir())
	testutil.NoError(t, err)
	testutil.Len(t, folders, 0)
}
