// Package extract bootstraps the canonical category path list from existing
// nav markup.
package extract

import (
	"os"

	"github.com/spf13/cobra"

	"rewindfinds/shopflow/cmd/root"
	"rewindfinds/shopflow/internal/navmenu"
	"rewindfinds/shopflow/internal/store"
)

var (
	navFile   string
	pathsFile string
)

// Cmd represents the extract command.
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract category paths from nav markup",
	Long: `Parse the site's nav markup and regenerate the canonical category path
list. Paths keep nav document order, so the validator and the menu editor
work in site order rather than alphabetical order.`,
	Run: extractFunc,
}

func extractFunc(cmd *cobra.Command, args []string) {
	in := navFile
	if in == "" {
		in = root.Cfg.Data.NavFile
	}

	f, err := os.Open(in)
	if err != nil {
		root.Log.Fatalf("Error opening nav file: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			root.Log.Warnf("Failed to close nav file: %v", err)
		}
	}()

	paths, err := navmenu.Extract(f)
	if err != nil {
		root.Log.Fatalf("Error extracting category paths: %v", err)
	}

	out := root.PathsFile(pathsFile)
	if err := store.WritePaths(paths, out); err != nil {
		root.Log.Fatalf("Error writing paths file: %v", err)
	}

	root.Log.Infof("Wrote %d unique category paths to %s (source: %s)", len(paths), out, in)
}

func init() {
	Cmd.Flags().StringVarP(&navFile, "nav", "i", "", "Input nav markup file (default from config)")
	Cmd.Flags().StringVarP(&pathsFile, "paths", "o", "", "Output canonical paths file (default from config)")
}
