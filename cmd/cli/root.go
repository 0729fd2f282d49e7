package cli

import (
	"fmt"
	"os"

	"github.com/idahoesports/site/internal/config"
	"github.com/idahoesports/site/internal/initialization"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "idahoesports",
		Short: "Idaho Esports site services",
		Long: `Backend services for the Idaho Esports site: the contact form that turns
visitor messages into triaged tasks, and the championship results API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewSubmitCommand())
	rootCmd.AddCommand(NewClassifyCommand())
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// loadContainer reads configuration and returns a container for it.
func loadContainer() (*initialization.SiteContainer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return initialization.NewSiteContainer(cfg), nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
