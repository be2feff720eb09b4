// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rewindfinds/shopflow/internal/config"
	"rewindfinds/shopflow/internal/describer"
	"rewindfinds/shopflow/internal/filenamecodec"
	"rewindfinds/shopflow/internal/generator"
	"rewindfinds/shopflow/internal/matcher"
	"rewindfinds/shopflow/internal/navmenu"
	"rewindfinds/shopflow/internal/shopify"
	"rewindfinds/shopflow/internal/store"
	"rewindfinds/shopflow/internal/uploader"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the application configuration, loaded before any command runs.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "shopflow",
		Short: "Human-in-the-loop product catalog pipeline for a Shopify-backed static shop.",
		Long: `shopflow automates the tedious parts of a curated product workflow:
it decodes product image filenames into catalog records, keeps the category
menu and the canonical category path list in sync, and backfills externally
issued variant ids - while the operator stays in control of every upload.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to shopflow!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg

			if len(cfg.CSV.Delimiter) == 1 {
				store.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}

			// Fan the configured logger out to the operational packages.
			filenamecodec.SetLogger(Log)
			navmenu.SetLogger(Log)
			matcher.SetLogger(Log)
			store.SetLogger(Log)
			shopify.SetLogger(Log)
			describer.SetLogger(Log)
			generator.SetLogger(Log)
			uploader.SetLogger(Log)
		},
	}
)

// PathsFile returns the canonical paths file, honoring a flag override.
func PathsFile(override string) string {
	if override != "" {
		return override
	}
	return Cfg.Data.PathsFile
}

// ProductsFile returns the products.js file, honoring a flag override.
func ProductsFile(override string) string {
	if override != "" {
		return override
	}
	return Cfg.Data.ProductsFile
}
