package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the check catalog",
		Long:  "List the fixed catalog of improvement checks the grader runs, with their scope.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return resolveWorkflow().Catalog(cmd.Context(), m.Catalog)
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
