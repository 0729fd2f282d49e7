package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which integrations are configured",
		Long:  `Display the configuration state of every integration. No network calls are made.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd)
		},
	}

	return cmd
}

func runStatus(cmd *cobra.Command) error {
	container, err := loadContainer()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	for _, integration := range container.Integrations() {
		if integration.Configured {
			fmt.Fprintf(out, "✅ %s (%s)\n", integration.Name, integration.Detail)
		} else {
			fmt.Fprintf(out, "❌ %s\n", integration.Name)
		}
	}

	if _, ok := container.GetConfig().TaskService(); !ok {
		fmt.Fprintln(out, "Set CLICKUP_API_TOKEN and CLICKUP_LIST_ID to accept contact submissions")
	}

	return nil
}
