// Package cmd holds the apparel-admin command line: the HTTP server and the staff maintenance commands.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/config"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/repository"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "apparel-admin",
	Short:         "Export apparel admin console",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config/config.yml)")
	rootCmd.AddCommand(serveCmd, userCmd, seedCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore loads the configuration and opens the store it selects. The caller closes the store.
func openStore(ctx context.Context) (*config.Config, repository.DocumentStore, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	store, err := repository.OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}
	return cfg, store, nil
}
