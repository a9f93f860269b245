// Package cmd provides the root command and CLI setup for bonif.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tge-sherbrooke/bonif-grader/internal/adapter"
	"github.com/tge-sherbrooke/bonif-grader/internal/controller"
	"github.com/tge-sherbrooke/bonif-grader/internal/domain"
	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var pyAdapter adapter.PythonFileAdapter
var reportStore adapter.ReportStore
var grader domain.Grader
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// tuiFlag selects the interactive results view when attached to a terminal.
var tuiFlag bool

// Target layout overrides for repositories that deviate from the template.
var mainFileFlag string
var sensorsDirFlag string
var testsDirFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, viper.GetBool(tuiFlagName) && controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	pyAdapter = adapter.NewLocalPythonFileAdapter()
	reportStore = adapter.NewReportStore()
	grader = domain.NewGrader(fsAdapter, pyAdapter)
	workflow = domain.NewWorkflow(reportStore, ui, grader)
}

const rootLongDescription = `Bonif grades improvements to the weather-station starter code by statically
inspecting a student repository. It parses the Python sources (without ever
importing or executing them) and reports, per improvement category, whether
structural evidence of that improvement is present.

The repository is expected to follow the template layout:
  main.py          the station entry point
  sensors/         sensor modules
  tests/           student-written tests`

const gradeLongDescription = `Run all checks against the repository rooted at the given path (default:
current directory). Prints one pass/fail line per check plus a summary and
exits nonzero when at least one check fails. Checks that cannot reach their
target (missing or unparsable main.py) are reported as skipped.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bonif",
		Short: "Structural grading for weather-station improvements",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for grading reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&tuiFlag, tuiFlagName, viper.GetBool(tuiFlagName), "interactive results view (requires a terminal)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(tuiFlagName), tuiFlagName)

	cmd.PersistentFlags().StringVar(&mainFileFlag, mainFlagName, viper.GetString(mainConfigKey), "relative path of the entry-point file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(mainFlagName), mainConfigKey)

	cmd.PersistentFlags().StringVar(&sensorsDirFlag, sensorsFlagName, viper.GetString(sensorsConfigKey), "relative path of the sensors directory")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(sensorsFlagName), sensorsConfigKey)

	cmd.PersistentFlags().StringVar(&testsDirFlag, testsFlagName, viper.GetString(testsConfigKey), "relative path of the tests directory")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(testsFlagName), testsConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func repoRootArg(args []string) m.Path {
	if len(args) == 0 {
		return m.Path(".")
	}

	return m.Path(args[0])
}

// resolveWorkflow rebuilds the UI and workflow after flag parsing so the
// --tui flag is honored.
func resolveWorkflow() domain.Workflow {
	ui = controller.NewUI(rootCmd, viper.GetBool(tuiFlagName) && controller.IsTTY(os.Stdout))
	workflow = domain.NewWorkflow(reportStore, ui, grader)

	return workflow
}
