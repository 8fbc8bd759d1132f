package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ocelot-cloud/shared/utils"
	tr "github.com/ocelot-cloud/task-runner"
	"github.com/spf13/cobra"
)

var logger = utils.ProvideLogger("info")

var baseURLFlag string

const (
	diagnoseProbeTimeout = 5 * time.Second
	smokeProbeTimeout    = 10 * time.Second
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&baseURLFlag, "base-url", "u", "", "base URL of the lottery analysis server (overrides harness.yml)")
}

func main() {
	tr.HandleSignals()

	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.CompletionOptions = cobra.CompletionOptions{DisableDefaultCmd: true}

	if err := rootCmd.Execute(); err != nil {
		tr.ColoredPrintln("error: %v", err)
		tr.CleanupAndExitWithError()
	}
}

var rootCmd = &cobra.Command{
	Use:   "harness",
	Short: "diagnostics and local setup for the lottery analysis server",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func loadConfig() (Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}
	cfg, err := LoadConfig(dir)
	if err != nil {
		return Config{}, err
	}
	if baseURLFlag != "" {
		cfg.BaseURL = baseURLFlag
	}
	return cfg, nil
}

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "run a detailed diagnostic against the running server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		deps := Initialize(cfg.ProbeTimeout(diagnoseProbeTimeout))
		if !NewDiagnostic(cfg, deps.Prober, os.Stdout).Run() {
			return fmt.Errorf("diagnostic detected issues")
		}
		return nil
	},
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "run the API smoke test suite",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tr.PrintTaskDescription("running API smoke tests")
		deps := Initialize(cfg.ProbeTimeout(smokeProbeTimeout))
		outcomes, summary := deps.CheckRunner.RunChecks(defaultChecks(cfg.BaseURL))
		fmt.Println(reportRun(outcomes, summary))
		if summary.Failed > 0 {
			return fmt.Errorf("%d of %d checks failed", summary.Failed, summary.Failed+summary.Passed)
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "set up the environment and start the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		return NewBootstrapper(dir, cfg.BaseURL, CmdRunner{}, SetupOperatorImpl{}).Run()
	},
}
