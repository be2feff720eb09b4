// Package validate checks a directory of product image filenames against the
// filename grammar and the canonical category paths.
package validate

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rewindfinds/shopflow/cmd/root"
	"rewindfinds/shopflow/internal/categorytree"
	"rewindfinds/shopflow/internal/filenamecodec"
	"rewindfinds/shopflow/internal/store"
)

var (
	dir       string
	pathsFile string
)

// Cmd represents the validate command.
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate product filenames against the canonical category paths",
	Long: `Decode every file in a directory and verify its category path exists in
the canonical path list. Each file gets its own verdict; a bad filename
never aborts the batch.`,
	Run: validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) {
	paths, err := store.LoadPaths(root.PathsFile(pathsFile))
	if err != nil {
		root.Log.Fatalf("Error loading paths file: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		root.Log.Fatalf("Error reading directory: %v", err)
	}

	valid, invalid := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()

		d, err := filenamecodec.Decode(name)
		if err != nil {
			root.Log.Warnf("INVALID %s: %v", name, err)
			invalid++
			continue
		}
		if !categorytree.IsCanonical(paths, d.CategoryPath) {
			root.Log.Warnf("INVALID %s: category path '%s' is not canonical", name, d.CategoryPath)
			invalid++
			continue
		}

		root.Log.Infof("OK %s -> %s | %s | %s", name, d.CategoryPath, d.Title, d.Price)
		valid++
	}

	root.Log.Infof("Validation finished: %d valid, %d invalid", valid, invalid)
	if invalid > 0 {
		os.Exit(1)
	}
}

func init() {
	Cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory of product image files (required)")
	Cmd.Flags().StringVar(&pathsFile, "paths", "", "Canonical paths file (default from config)")
	if err := Cmd.MarkFlagRequired("dir"); err != nil {
		panic(err)
	}
}
