package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import series from a JSON or YAML file",
	Long: `Import every series in file, or in the configured import file when
no file is given. The file holds an array of series; records are inserted
as given, without deduplication. Nothing is inserted when any record is invalid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		}

		application, err := newApp()
		if err != nil {
			return err
		}

		if err := application.Import(cmd.Context(), path); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
