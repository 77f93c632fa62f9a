package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifeplan/capital-planner/internal/calculation"
	"github.com/lifeplan/capital-planner/internal/config"
	"github.com/lifeplan/capital-planner/internal/output"
)

var (
	flagInput  string
	flagFormat string
	flagOutput string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Household capital requirement planner",
	Long: "Computes the capital required today to fund future cash-flow needs:\n" +
		"retirement income stages, vehicle replacement cycles, discretionary\n" +
		"assets, recurring travel and a medical buffer.",
}

// Execute is the main entry point called from main.go.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging of per-item calculations")

	calculateCmd.Flags().StringVarP(&flagInput, "input", "i", "", "Plan YAML file (required)")
	calculateCmd.Flags().StringVarP(&flagFormat, "format", "f", "console", "Output format: console, json, csv, csv-detailed")
	calculateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write output to file instead of stdout")
	_ = calculateCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(exampleCmd)
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Compute required capital for a plan document",
	RunE:  runCalculate,
}

func runCalculate(_ *cobra.Command, _ []string) error {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(flagInput)
	if err != nil {
		return err
	}

	engine := calculation.NewPlanEngine()
	if flagDebug {
		engine.Debug = true
		engine.SetLogger(stdLogger{})
	}

	result, err := engine.ProcessPlan(plan)
	if err != nil {
		return fmt.Errorf("plan processing failed: %w", err)
	}

	formatter := output.GetFormatterByName(flagFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %v)", flagFormat, output.AvailableFormatterNames())
	}

	data, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}

	if flagOutput != "" {
		if err := os.WriteFile(flagOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", flagOutput, err)
		}
		fmt.Printf("Wrote %s report to %s\n", formatter.Name(), flagOutput)
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}

// stdLogger adapts the standard library logger to the engine's interface.
type stdLogger struct{}

func (stdLogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (stdLogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (stdLogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (stdLogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }
