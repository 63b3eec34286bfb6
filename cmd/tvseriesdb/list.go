package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all series",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}

		if err := application.List(cmd.Context()); err != nil {
			return fmt.Errorf("list failed: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
