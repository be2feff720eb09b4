// Package suggest drives the cascading category selection and previews the
// filename a product would be given.
package suggest

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rewindfinds/shopflow/cmd/root"
	"rewindfinds/shopflow/internal/categorytree"
	"rewindfinds/shopflow/internal/filenamecodec"
	"rewindfinds/shopflow/internal/models"
	"rewindfinds/shopflow/internal/store"
	"rewindfinds/shopflow/internal/textutils"
)

var (
	pathsFile string
	selectArg string
	titleArg  string
	priceArg  string
	notesArg  string
)

// Cmd represents the suggest command.
var Cmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a product filename from the canonical category paths",
	Long: `Walk the category hierarchy one level at a time: every run prints the
valid next-level keys for the current selection, so an invalid category
combination is unreachable by construction. Once the selection is a complete
path and a title and price are given, the suggested filename is printed.`,
	Run: suggestFunc,
}

func suggestFunc(cmd *cobra.Command, args []string) {
	paths, err := store.LoadPaths(root.PathsFile(pathsFile))
	if err != nil {
		root.Log.Fatalf("Error loading paths file: %v", err)
	}

	var selection models.CategoryPath
	if selectArg != "" {
		for _, seg := range strings.Split(selectArg, "/") {
			if seg == models.BlankKeyLabel {
				seg = ""
			}
			selection = append(selection, seg)
		}
	}

	options := categorytree.NextOptions(paths, selection)
	if len(options) > 0 {
		fmt.Printf("Selected: %s\n", selection)
		fmt.Println("Next options:")
		for _, opt := range options {
			if opt == "" {
				opt = models.BlankKeyLabel
			}
			fmt.Printf("  %s\n", opt)
		}
		return
	}

	if len(selection) == 0 || !categorytree.IsCanonical(paths, selection) {
		root.Log.Fatalf("Selection '%s' is not a canonical category path", selection)
	}

	fmt.Printf("Selected: %s (complete path)\n", selection)
	if titleArg == "" || priceArg == "" {
		fmt.Println("Provide --title and --price to preview the filename.")
		return
	}

	price, err := models.ParsePrice(priceArg)
	if err != nil {
		root.Log.Fatalf("Error parsing price: %v", err)
	}

	d := models.ProductDescriptor{
		CategoryPath: selection,
		TitleSegment: textutils.SpacesToHyphens(titleArg),
		Price:        price,
		Notes:        notesArg,
	}
	fmt.Printf("Suggested filename: %s\n", filenamecodec.Encode(d, root.Cfg.Data.Extension))
}

func init() {
	Cmd.Flags().StringVar(&pathsFile, "paths", "", "Canonical paths file (default from config)")
	Cmd.Flags().StringVarP(&selectArg, "select", "s", "", "Current selection, segments joined by '/'")
	Cmd.Flags().StringVarP(&titleArg, "title", "t", "", "Product title (e.g. 'Super Mario Bros')")
	Cmd.Flags().StringVarP(&priceArg, "price", "c", "", "Price (e.g. 49.99)")
	Cmd.Flags().StringVarP(&notesArg, "notes", "n", "", "Extra notes (optional, e.g. 'sealed in box')")
}
