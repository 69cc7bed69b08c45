// Package cli defines Cobra command definitions for the nichekit CLI.
// This file contains the root command, version flag, and help output.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nichekit-dev/nichekit/internal/config"
	"github.com/nichekit-dev/nichekit/internal/gateway"
	"github.com/nichekit-dev/nichekit/internal/log"
	"github.com/nichekit-dev/nichekit/internal/tui"
	"github.com/nichekit-dev/nichekit/internal/tui/app"
	"github.com/nichekit-dev/nichekit/internal/wizard"
)

var version = "dev" // set via ldflags at build time

var rootCmd = &cobra.Command{
	Use:   "nichekit",
	Short: "Find and price your meditation teaching niche",
	Long: `Nichekit guides meditation teachers from their own story to a
specific teaching niche: the groups they know, the struggle they can
address, and concrete offerings. An income calculator projects
whether the niche can sustain them.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is provided, launch TUI if TTY, show
		// help otherwise.
		if !tui.IsTTY() {
			return cmd.Help()
		}

		dir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		cfg := config.LoadOrDefault(dir)
		session := newSession(cfg)

		if events, logErr := log.NewLogger(dir); logErr == nil {
			session.SetEvents(events)
		}

		return tui.Run(app.New(cfg, session))
	},
}

// newSession wires a wizard session over the configured Anthropic
// client. A missing API key still produces a working session; every
// gateway call then surfaces the configuration error as display text.
func newSession(cfg *config.Config) *wizard.Session {
	client := gateway.NewAnthropicClientWithConfig(gateway.AnthropicConfig{
		APIKey:    config.APIKey(),
		BaseURL:   "https://api.anthropic.com/v1",
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
		Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	return wizard.NewSession(client)
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(calcCmd)
}
