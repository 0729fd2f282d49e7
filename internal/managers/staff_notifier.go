package managers

import (
	"context"
	"fmt"
	"strings"

	"github.com/idahoesports/site/internal/domain"

	"github.com/resend/resend-go/v2"
)

// EmailSender is the part of the Resend SDK the notifier needs.
type EmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type resendStaffNotifier struct {
	emails EmailSender
	from   string
	to     []string
}

type ResendStaffNotifierDependencies struct {
	Emails EmailSender
	From   string
	To     []string
}

// NewResendStaffNotifier emails staff whenever a contact task was created.
func NewResendStaffNotifier(deps ResendStaffNotifierDependencies) domain.Notifier {
	return &resendStaffNotifier{
		emails: deps.Emails,
		from:   deps.From,
		to:     deps.To,
	}
}

func (n *resendStaffNotifier) NotifyStaff(ctx context.Context, notification domain.StaffNotification) error {
	if len(n.to) == 0 {
		return fmt.Errorf("no notification recipients configured")
	}

	tags := make([]resend.Tag, 0, len(notification.Task.Tags))
	for _, tag := range notification.Task.Tags {
		tags = append(tags, resend.Tag{Name: tag, Value: tag})
	}

	req := &resend.SendEmailRequest{
		From:    n.from,
		To:      n.to,
		ReplyTo: notification.Input.Email,
		Subject: fmt.Sprintf("[%s] %s", strings.ToUpper(notification.Task.Priority.String()), notification.Task.Title),
		Text:    staffNotificationText(notification),
		Tags:    tags,
	}

	if _, err := n.emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("failed to send staff notification: %w", err)
	}

	return nil
}

func staffNotificationText(n domain.StaffNotification) string {
	var b strings.Builder

	b.WriteString(n.Task.Description)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Priority: %s\n", n.Task.Priority)
	fmt.Fprintf(&b, "Tags: %s\n", strings.Join(n.Task.Tags, ", "))

	if n.Result.URL != "" {
		fmt.Fprintf(&b, "Task: %s\n", n.Result.URL)
	}

	return b.String()
}
