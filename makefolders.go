package kbuildminer

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// makefileNames are the build files that mark a directory as a Kbuild
// entry point.
var makefileNames = []string{"Makefile", "Kbuild"}

// TopFolders lists the top-level directories of a kernel source tree
// that contain a Makefile or Kbuild file. KbuildMiner takes this list as
// its analysis entry points. The result is sorted.
func TopFolders(treeRoot string) ([]string, error) {
	entries, err := os.ReadDir(treeRoot)
	if err != nil {
		return nil, err
	}

	var folders []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		for _, name := range makefileNames {
			info, err := os.Stat(filepath.Join(treeRoot, entry.Name(), name))
			if err == nil && info.Mode().IsRegular() {
				folders = append(folders, entry.Name())
				break
			}
		}
	}

	slices.SortFunc(folders, cmp.Compare)
	return folders, nil
}

// TopFoldersList returns the comma-separated makefolder list in the form
// the external miner expects on its command line.
func TopFoldersList(treeRoot string) (string, error) {
	folders, err := TopFolders(treeRoot)
	if err != nil {
		return "", err
	}
	return strings.Join(folders, ","), nil
}
