package cli

import (
	"fmt"

	"github.com/idahoesports/site/internal/version"

	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Version:    %s\n", info.Version)
			if info.GitCommit != "" {
				fmt.Fprintf(out, "Git commit: %s\n", info.GitCommit)
			}
			if info.BuildDate != "" {
				fmt.Fprintf(out, "Built:      %s\n", info.BuildDate)
			}
			fmt.Fprintf(out, "Go:         %s\n", info.GoVersion)
			fmt.Fprintf(out, "Platform:   %s\n", info.Platform)

			return nil
		},
	}
}
