package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <title...>",
	Short: "Search series by title",
	Long:  `Print every series whose title contains the given text, ignoring case.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}

		if err := application.Search(cmd.Context(), strings.Join(args, " ")); err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
