package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lifeplan/capital-planner/internal/config"
)

var flagExampleOut string

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example plan document",
	RunE:  runExample,
}

func init() {
	exampleCmd.Flags().StringVarP(&flagExampleOut, "output", "o", "example_plan.yaml", "Destination file")
}

func runExample(_ *cobra.Command, _ []string) error {
	plan := config.NewInputParser().CreateExamplePlan()

	data, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal example plan: %w", err)
	}

	if err := os.WriteFile(flagExampleOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", flagExampleOut, err)
	}

	fmt.Printf("Example plan written to %s\n", flagExampleOut)
	return nil
}
