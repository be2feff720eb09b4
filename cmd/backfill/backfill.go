// Package backfill implements stage two of the workflow: reconcile the local
// product collection against the shop's catalog snapshot and fill in the
// externally issued variant ids.
package backfill

import (
	"context"

	"github.com/spf13/cobra"

	"rewindfinds/shopflow/cmd/root"
	"rewindfinds/shopflow/internal/matcher"
	"rewindfinds/shopflow/internal/models"
	"rewindfinds/shopflow/internal/shopify"
	"rewindfinds/shopflow/internal/store"
)

var productsFile string

// Cmd represents the backfill command.
var Cmd = &cobra.Command{
	Use:   "backfill",
	Short: "Backfill Shopify variant ids into products.js",
	Long: `Load products.js, fetch the shop's product snapshot, match records by
(title, price) and write the variant ids back. Unmatched products are
reported for human follow-up; they are never dropped.`,
	Run: backfillFunc,
}

type fetchResult struct {
	catalog []models.CatalogProduct
	err     error
}

func backfillFunc(cmd *cobra.Command, args []string) {
	cfg := root.Cfg
	if cfg.Shopify.Shop == "" || cfg.Shopify.Token == "" {
		root.Log.Fatal("Shopify shop and token must be configured (SHOPIFY_SHOP, SHOPIFY_TOKEN)")
	}

	path := root.ProductsFile(productsFile)
	products, err := store.LoadProducts(path)
	if err != nil {
		root.Log.Fatalf("Error loading products file: %v", err)
	}
	root.Log.Infof("Loaded %d products from %s", len(products), path)

	// The paginated fetch runs on its own goroutine so a caller wrapping
	// this command stays responsive; matching itself is synchronous.
	client := shopify.NewClient(cfg)
	results := make(chan fetchResult, 1)
	go func() {
		catalog, err := client.FetchProducts(context.Background())
		results <- fetchResult{catalog: catalog, err: err}
	}()
	res := <-results
	if res.err != nil {
		root.Log.Fatalf("Error fetching catalog products: %v", res.err)
	}
	root.Log.Infof("Fetched %d catalog products", len(res.catalog))

	report := matcher.Match(products, res.catalog)

	if err := store.WriteProducts(products, path); err != nil {
		root.Log.Fatalf("Error writing products file: %v", err)
	}

	root.Log.Infof("Updated %d products with variant ids", report.Updated)
	if report.Collisions > 0 {
		root.Log.Warnf("%d duplicate match keys in the catalog snapshot (first variant kept)", report.Collisions)
	}
	if len(report.Unmatched) > 0 {
		root.Log.Warnf("%d products could not be matched:", len(report.Unmatched))
		for _, id := range report.Unmatched {
			root.Log.Warnf("  - %s", id)
		}
	} else {
		root.Log.Info("All products matched successfully!")
	}
}

func init() {
	Cmd.Flags().StringVarP(&productsFile, "products", "p", "", "products.js file to update (default from config)")
}
