package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tge-sherbrooke/bonif-grader/internal/domain"
	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "view",
		Short:        "View a previously generated grading report",
		Long:         "View a previously generated grading report from a reports directory.",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return resolveWorkflow().View(cmd.Context(), domain.ViewArgs{Reports: reportsPath})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
