// Package generate implements stage one of the workflow: fetch the image
// file listing and produce products.js plus the import CSV for manual review.
package generate

import (
	"context"

	"github.com/spf13/cobra"

	"rewindfinds/shopflow/cmd/root"
	"rewindfinds/shopflow/internal/describer"
	"rewindfinds/shopflow/internal/generator"
	"rewindfinds/shopflow/internal/shopify"
	"rewindfinds/shopflow/internal/store"
)

var (
	csvFile      string
	productsFile string
	skipAI       bool
)

// Cmd represents the generate command.
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate products.js and the product import CSV from image filenames",
	Long: `Fetch the shop's image file listing, decode each filename into a product
record and write both the import CSV (for manual review and upload) and the
products.js file consumed by the static frontend.`,
	Run: generateFunc,
}

func generateFunc(cmd *cobra.Command, args []string) {
	cfg := root.Cfg
	if cfg.Shopify.Shop == "" || cfg.Shopify.Token == "" {
		root.Log.Fatal("Shopify shop and token must be configured (SHOPIFY_SHOP, SHOPIFY_TOKEN)")
	}

	ctx := context.Background()
	client := shopify.NewClient(cfg)

	root.Log.Info("Fetching image file listing...")
	images, err := client.FetchImageFiles(ctx)
	if err != nil {
		root.Log.Fatalf("Error fetching image files: %v", err)
	}

	var desc describer.Describer = describer.Static{}
	if cfg.AI.Enabled && !skipAI {
		gemini, err := describer.NewGemini(ctx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			root.Log.Warnf("AI describer unavailable, using fallback: %v", err)
		} else {
			defer func() {
				if err := gemini.Close(); err != nil {
					root.Log.Warnf("Failed to close AI client: %v", err)
				}
			}()
			desc = gemini
		}
	}

	result := generator.Build(ctx, images, desc, cfg.Data.Vendor)

	out := csvFile
	if out == "" {
		out = cfg.Data.CSVFile
	}
	if err := store.WriteShopifyCSV(result.CSVRows, out); err != nil {
		root.Log.Fatalf("Error writing import CSV: %v", err)
	}
	if err := store.WriteProducts(result.Products, root.ProductsFile(productsFile)); err != nil {
		root.Log.Fatalf("Error writing products file: %v", err)
	}

	root.Log.Infof("Wrote %d products (%d filenames skipped)", len(result.Products), len(result.Skipped))
	for _, name := range result.Skipped {
		root.Log.Warnf("Skipped: %s", name)
	}
}

func init() {
	Cmd.Flags().StringVarP(&csvFile, "csv", "o", "", "Output import CSV file (default from config)")
	Cmd.Flags().StringVarP(&productsFile, "products", "p", "", "Output products.js file (default from config)")
	Cmd.Flags().BoolVar(&skipAI, "skip-ai", false, "Skip AI descriptions even if enabled in config")
}
