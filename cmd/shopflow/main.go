// Package main provides the entry point for the shopflow CLI application.
package main

import (
	"rewindfinds/shopflow/cmd/backfill"
	"rewindfinds/shopflow/cmd/extract"
	"rewindfinds/shopflow/cmd/generate"
	"rewindfinds/shopflow/cmd/menu"
	"rewindfinds/shopflow/cmd/root"
	"rewindfinds/shopflow/cmd/suggest"
	"rewindfinds/shopflow/cmd/upload"
	"rewindfinds/shopflow/cmd/validate"
)

func init() {
	root.Cmd.AddCommand(generate.Cmd)
	root.Cmd.AddCommand(backfill.Cmd)
	root.Cmd.AddCommand(menu.Cmd)
	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(suggest.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(upload.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.Log.Fatal(err)
	}
}
