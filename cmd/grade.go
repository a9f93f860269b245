package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tge-sherbrooke/bonif-grader/internal/domain"
	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// gradeCmd represents the grade command.
var gradeCmd = newGradeCmd()

func newGradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "grade [path]",
		Short:        "Run all checks against a student repository",
		Long:         gradeLongDescription,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogger("", viper.GetBool(logVerboseKey))

			return resolveWorkflow().Grade(cmd.Context(), domain.GradeArgs{
				Root:       repoRootArg(args),
				Reports:    m.Path(viper.GetString(outputFlagName)),
				MainFile:   viper.GetString(mainConfigKey),
				SensorsDir: viper.GetString(sensorsConfigKey),
				TestsDir:   viper.GetString(testsConfigKey),
				Threads:    viper.GetInt(parallelConfigKey),
			})
		},
	}

	configureGradeFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(gradeCmd)
}

var gradeParallelFlag int

func configureGradeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&gradeParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel workers for check execution")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}
