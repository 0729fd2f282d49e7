package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/idahoesports/site/internal/classifier"
	"github.com/idahoesports/site/internal/domain"

	"github.com/spf13/cobra"
)

func NewClassifyCommand() *cobra.Command {
	var input domain.SubmissionInput
	var describe bool

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Dry-run the classifier on a message",
		Long:  `Print the title, priority and tags a submission would get. Nothing is sent anywhere.`,
		Example: `  idahoesports classify --subject "URGENT: bracket is broken" --message "Round 2 is missing"
  idahoesports classify --subject "Sponsor question" --message "..." --describe`,
		RunE: func(cmd *cobra.Command, args []string) error {
			task := classifier.Default().Classify(input, time.Now())
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Title:    %s\n", task.Title)
			fmt.Fprintf(out, "Priority: %s (%d)\n", task.Priority, int(task.Priority))
			fmt.Fprintf(out, "Tags:     %s\n", strings.Join(task.Tags, ", "))
			fmt.Fprintf(out, "Status:   %s\n", task.Status)

			if describe {
				fmt.Fprintf(out, "\n%s\n", task.Description)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&input.Subject, "subject", "", "Message subject")
	cmd.Flags().StringVar(&input.Message, "message", "", "Message body")
	cmd.Flags().StringVar(&input.Name, "name", "", "Sender name (only used in the description)")
	cmd.Flags().StringVar(&input.Email, "email", "", "Sender email (only used in the description)")
	cmd.Flags().BoolVar(&describe, "describe", false, "Also print the task description")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
