package cli

import (
	"fmt"

	"github.com/idahoesports/site/internal/domain"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewSubmitCommand() *cobra.Command {
	var input domain.SubmissionInput

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send one contact submission through the live pipeline",
		Long: `Validate, classify and deliver a submission exactly like the contact endpoint
does. Useful as a smoke test after changing credentials.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd, input)
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "Sender name")
	cmd.Flags().StringVar(&input.Email, "email", "", "Sender email")
	cmd.Flags().StringVar(&input.Subject, "subject", "", "Message subject")
	cmd.Flags().StringVar(&input.Message, "message", "", "Message body")

	return cmd
}

func runSubmit(cmd *cobra.Command, input domain.SubmissionInput) error {
	ctx := cmd.Context()

	container, err := loadContainer()
	if err != nil {
		return err
	}

	deps, err := container.BuildSiteDependencies(ctx)
	if err != nil {
		return err
	}
	defer deps.Close(ctx)

	delivery, err := deps.Dispatcher.Submit(ctx, input)
	if err != nil {
		if domainErr, ok := domain.AsError(err); ok && domainErr.Details != "" {
			log.Debug().Str("details", domainErr.Details).Msg("Submission failed")
		}
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Task:         %s %s\n", delivery.Result.ID, delivery.Result.URL)
	fmt.Fprintf(out, "Priority:     %s\n", delivery.Task.Priority)
	fmt.Fprintf(out, "Archive:      %s %s\n", delivery.Archive.Status, delivery.Archive.Store)
	fmt.Fprintf(out, "Notification: %s\n", delivery.Notification.Status)

	return nil
}
