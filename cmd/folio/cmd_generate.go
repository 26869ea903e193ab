package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio.dev/internal/content"
)

var generateCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Write the built-in content as editable data files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := content.Default()
		if err := content.Write(args[0], c); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d projects and %d skill categories to %s\n",
			len(c.Projects), len(c.Skills), args[0])
		return nil
	},
}
