// Package menu edits the category hierarchy and exports it as both the nav
// markup and the canonical path list, keeping the two in sync.
package menu

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"rewindfinds/shopflow/cmd/root"
	"rewindfinds/shopflow/internal/categorytree"
	"rewindfinds/shopflow/internal/models"
	"rewindfinds/shopflow/internal/navmenu"
	"rewindfinds/shopflow/internal/store"
)

var (
	pathsFile string
	navFile   string
	parentArg string
	keyArg    string
	aliasArg  string
	pathArg   string
)

// Cmd represents the menu command.
var Cmd = &cobra.Command{
	Use:   "menu",
	Short: "Edit the category hierarchy and export nav markup",
	Long: `Manage the site's category menu. Edits operate on the canonical path
list; export regenerates both the nav markup and the path list so every
downstream tool sees the same structure.`,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a category under a parent path",
	Run:   addFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a category and all its descendants",
	Run:   removeFunc,
}

var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "Change the display alias of a category",
	Run:   aliasFunc,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export nav markup and the canonical path list",
	Run:   exportFunc,
}

// parsePath turns a/b/c into a CategoryPath; "(blank)" names the catch-all key.
func parsePath(s string) models.CategoryPath {
	if s == "" {
		return nil
	}
	segments := strings.Split(s, "/")
	path := make(models.CategoryPath, 0, len(segments))
	for _, seg := range segments {
		if seg == models.BlankKeyLabel {
			seg = ""
		}
		path = append(path, seg)
	}
	return path
}

func loadTree() *categorytree.Tree {
	file := root.PathsFile(pathsFile)
	paths, err := store.LoadPaths(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			root.Log.Infof("No paths file at %s, starting with an empty tree", file)
			return categorytree.New()
		}
		root.Log.Fatalf("Error loading paths file: %v", err)
	}
	return categorytree.FromPathList(paths)
}

func saveTree(tree *categorytree.Tree) {
	file := root.PathsFile(pathsFile)
	if err := store.WritePaths(tree.Flatten(), file); err != nil {
		root.Log.Fatalf("Error writing paths file: %v", err)
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	tree := loadTree()
	key := keyArg
	if key == models.BlankKeyLabel {
		key = ""
	}
	if err := tree.AddNode(parsePath(parentArg), key, aliasArg); err != nil {
		root.Log.Fatalf("Error adding category: %v", err)
	}
	saveTree(tree)
	root.Log.Infof("Added category '%s' under '%s'", keyArg, parentArg)
}

func removeFunc(cmd *cobra.Command, args []string) {
	tree := loadTree()
	path := parsePath(pathArg)
	if err := tree.RemoveNode(path); err != nil {
		root.Log.Fatalf("Error removing category: %v", err)
	}
	saveTree(tree)
	root.Log.Infof("Removed category path '%s'", path)
}

func aliasFunc(cmd *cobra.Command, args []string) {
	tree := loadTree()
	path := parsePath(pathArg)
	if aliasArg == "" {
		root.Log.Fatal("Alias (display name) is required")
	}
	if err := tree.SetAlias(path, aliasArg); err != nil {
		root.Log.Fatalf("Error setting alias: %v", err)
	}
	saveTree(tree)
	root.Log.Infof("Set alias of '%s' to '%s'", path, aliasArg)
}

func exportFunc(cmd *cobra.Command, args []string) {
	tree := loadTree()

	paths := tree.Flatten()
	if err := store.WritePaths(paths, root.PathsFile(pathsFile)); err != nil {
		root.Log.Fatalf("Error writing paths file: %v", err)
	}

	out := navFile
	if out == "" {
		out = root.Cfg.Data.NavFile
	}
	if err := os.MkdirAll(filepath.Dir(out), 0750); err != nil {
		root.Log.Fatalf("Error creating nav directory: %v", err)
	}
	if err := os.WriteFile(out, []byte(navmenu.Render(tree)+"\n"), 0644); err != nil {
		root.Log.Fatalf("Error writing nav markup: %v", err)
	}

	root.Log.Infof("Exported %d paths and nav markup to %s", len(paths), out)
}

func init() {
	Cmd.PersistentFlags().StringVar(&pathsFile, "paths", "", "Canonical paths file (default from config)")

	addCmd.Flags().StringVar(&parentArg, "parent", "", "Parent path, segments joined by '/' (empty for top level)")
	addCmd.Flags().StringVar(&keyArg, "key", "", "URL-safe key; use '(blank)' for a catch-all node")
	addCmd.Flags().StringVar(&aliasArg, "alias", "", "Display alias (defaults to a title-cased key)")

	removeCmd.Flags().StringVar(&pathArg, "path", "", "Category path to remove (required)")
	if err := removeCmd.MarkFlagRequired("path"); err != nil {
		panic(err)
	}

	aliasCmd.Flags().StringVar(&pathArg, "path", "", "Category path to edit (required)")
	aliasCmd.Flags().StringVar(&aliasArg, "alias", "", "New display alias (required)")
	if err := aliasCmd.MarkFlagRequired("path"); err != nil {
		panic(err)
	}

	exportCmd.Flags().StringVar(&navFile, "nav", "", "Output nav markup file (default from config)")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(aliasCmd)
	Cmd.AddCommand(exportCmd)
}
