// Package upload pushes the generated products.js to the site host.
package upload

import (
	"github.com/spf13/cobra"

	"rewindfinds/shopflow/cmd/root"
	"rewindfinds/shopflow/internal/uploader"
)

var productsFile string

// Cmd represents the upload command.
var Cmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload products.js to the site host over SFTP",
	Long: `Upload the products.js interchange file to the configured remote path.
Only the one file is transferred; nothing on the remote side is removed or
overwritten besides it.`,
	Run: uploadFunc,
}

func uploadFunc(cmd *cobra.Command, args []string) {
	if err := uploader.Upload(root.Cfg, root.ProductsFile(productsFile)); err != nil {
		root.Log.Fatalf("Error uploading products file: %v", err)
	}
	root.Log.Info("Upload complete. You may now verify the live site.")
}

func init() {
	Cmd.Flags().StringVarP(&productsFile, "products", "p", "", "products.js file to upload (default from config)")
}
