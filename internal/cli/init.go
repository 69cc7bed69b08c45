// init.go implements the "nichekit init" command.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nichekit-dev/nichekit/internal/config"
	"github.com/nichekit-dev/nichekit/internal/projection"
)

var initCurrency string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .nichekit/config.yaml",
	Long: `Initialize the .nichekit/ directory with a default configuration:
model settings for the AI collaborator and the currency used by the
income calculator.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initCurrency, "currency", "USD", "Currency code (USD, EUR, GBP, INR)")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	if _, readErr := config.ReadConfig(dir); readErr == nil {
		fmt.Println("Warning: .nichekit/config.yaml already exists, leaving it untouched.")
		return nil
	}

	cfg := config.DefaultConfig()
	c := projection.LookupCurrency(initCurrency)
	cfg.Currency = c.Code
	cfg.Goals = config.GoalsConfig{
		Minimum: c.MinGoal,
		Side:    c.SideGoal,
		Full:    c.FullGoal,
	}

	if err := config.WriteConfig(dir, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Println("Configuration written to .nichekit/config.yaml")
	if config.APIKey() == "" {
		fmt.Println()
		fmt.Println("No ANTHROPIC_API_KEY found. Set it in the environment or a")
		fmt.Println(".env file to enable the AI guidance features.")
	}
	return nil
}
