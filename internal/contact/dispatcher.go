// Package contact handles contact form submissions end to end: validation,
// classification, delivery to the task service and best-effort archival.
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/idahoesports/site/internal/classifier"
	"github.com/idahoesports/site/internal/domain"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

// ArchiveStatus is the outcome of the secondary archive write.
type ArchiveStatus string

const (
	ArchiveStatusArchived ArchiveStatus = "archived"
	ArchiveStatusSkipped  ArchiveStatus = "skipped"
	ArchiveStatusFailed   ArchiveStatus = "failed"
)

type ArchiveOutcome struct {
	Status   ArchiveStatus
	Store    string
	RecordID string
	Err      error
}

type NotificationStatus string

const (
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusSkipped NotificationStatus = "skipped"
	NotificationStatusFailed  NotificationStatus = "failed"
)

type NotificationOutcome struct {
	Status NotificationStatus
	Err    error
}

// Delivery is the result of a successful submission. The primary outcome is
// Result; Archive and Notification never turn a delivery into a failure.
type Delivery struct {
	SubmissionID string
	SubmittedAt  time.Time
	Task         domain.ClassifiedTask
	Result       domain.DeliveryResult
	Archive      ArchiveOutcome
	Notification NotificationOutcome
}

// Dispatcher processes one contact submission per call and keeps no state
// between calls.
type Dispatcher struct {
	classifier    *classifier.Classifier
	tasks         domain.TaskCreator
	archive       domain.ArchiveStore
	notifier      domain.Notifier
	validate      *validator.Validate
	fallbackEmail string
	now           func() time.Time
	logger        zerolog.Logger
}

type DispatcherDependencies struct {
	Classifier *classifier.Classifier

	// Tasks is required to accept submissions; nil means the task service is
	// not configured and every valid submission fails with a configuration error.
	Tasks domain.TaskCreator

	// Archive and Notifier are optional.
	Archive  domain.ArchiveStore
	Notifier domain.Notifier

	FallbackEmail string
	Now           func() time.Time
	Logger        zerolog.Logger
}

func NewDispatcher(deps DispatcherDependencies) *Dispatcher {
	c := deps.Classifier
	if c == nil {
		c = classifier.Default()
	}

	fallbackEmail := deps.FallbackEmail
	if fallbackEmail == "" {
		fallbackEmail = DefaultFallbackEmail
	}

	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &Dispatcher{
		classifier:    c,
		tasks:         deps.Tasks,
		archive:       deps.Archive,
		notifier:      deps.Notifier,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		fallbackEmail: fallbackEmail,
		now:           now,
		logger:        deps.Logger,
	}
}

// Handle runs one inbound request through the pipeline and always returns a
// response; failures are reported in the response, never as a Go error.
func (d *Dispatcher) Handle(ctx context.Context, req Request) (resp Response) {
	d.logger.Info().Str("method", req.Method).Msg("Contact form handler called")

	defer func() {
		if r := recover(); r != nil {
			err := domain.NewMalformedRequestError(failureMessage(d.fallbackEmail), fmt.Errorf("%v", r))
			d.logger.Error().Interface("panic", r).Msg("Contact form handler panicked")
			resp = errorResponse(err)
		}
	}()

	switch req.Method {
	case http.MethodOptions:
		return preflightResponse()
	case http.MethodPost:
	default:
		return errorResponse(domain.NewTransportError(MessageMethodNotAllowed))
	}

	input, err := decodeSubmission(req.Body)
	if err != nil {
		d.logger.Error().Err(err).Msg("Contact form error")
		return errorResponse(domain.NewMalformedRequestError(failureMessage(d.fallbackEmail), err))
	}

	delivery, err := d.Submit(ctx, input)
	if err != nil {
		domainErr, ok := domain.AsError(err)
		if !ok {
			domainErr = domain.NewMalformedRequestError(failureMessage(d.fallbackEmail), err)
		}
		return errorResponse(domainErr)
	}

	return successResponse(delivery.Result)
}

// Submit validates, classifies and delivers input, then archives and notifies
// on a best-effort basis. Returned errors are *domain.Error.
func (d *Dispatcher) Submit(ctx context.Context, input domain.SubmissionInput) (Delivery, error) {
	if err := d.Validate(input); err != nil {
		return Delivery{}, err
	}

	if d.tasks == nil {
		d.logger.Error().Msg("Task service not configured, check CLICKUP_API_TOKEN and CLICKUP_LIST_ID")
		return Delivery{}, domain.NewConfigurationError(configurationMessage(d.fallbackEmail))
	}

	delivery := Delivery{
		SubmissionID: uuid.NewString(),
		SubmittedAt:  d.now(),
	}

	logger := d.logger.With().Str("submission_id", delivery.SubmissionID).Logger()

	delivery.Task = d.classifier.Classify(input, delivery.SubmittedAt)

	logger.Info().
		Str("priority", delivery.Task.Priority.String()).
		Strs("tags", delivery.Task.Tags).
		Msg("Creating task")

	result, err := d.tasks.CreateTask(ctx, delivery.Task)
	if err != nil {
		logger.Error().Err(err).Msg("Task service rejected the submission")
		return delivery, domain.NewUpstreamDeliveryError(failureMessage(d.fallbackEmail), err)
	}

	delivery.Result = result
	logger.Info().Str("task_id", result.ID).Msg("Task created")

	delivery.Archive = d.archiveSubmission(ctx, logger, input, delivery)
	delivery.Notification = d.notifyStaff(ctx, logger, input, delivery)

	return delivery, nil
}

// Validate checks the submission fields. Missing fields are reported before a
// malformed email.
func (d *Dispatcher) Validate(input domain.SubmissionInput) error {
	err := d.validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return domain.NewValidationError(MessageFieldsRequired)
	}

	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "required" {
			return domain.NewValidationError(MessageFieldsRequired)
		}
	}

	return domain.NewValidationError(MessageInvalidEmail)
}

func (d *Dispatcher) archiveSubmission(ctx context.Context, logger zerolog.Logger, input domain.SubmissionInput, delivery Delivery) ArchiveOutcome {
	if d.archive == nil {
		logger.Info().Msg("Archive not configured, skipping storage")
		return ArchiveOutcome{Status: ArchiveStatusSkipped}
	}

	record := domain.NewArchiveRecord(
		"contact-submission-"+xid.New().String(),
		delivery.SubmissionID,
		input,
		delivery.Result,
		delivery.SubmittedAt,
	)

	outcome := ArchiveOutcome{Store: d.archive.Name(), RecordID: record.ID}

	if err := d.archive.StoreSubmission(ctx, record); err != nil {
		outcome.Status = ArchiveStatusFailed
		outcome.Err = domain.NewArchivalError("failed to archive submission", err)

		logger.Warn().Err(err).Str("store", outcome.Store).Msg("Failed to archive submission (non-critical)")
		return outcome
	}

	outcome.Status = ArchiveStatusArchived
	logger.Info().Str("store", outcome.Store).Str("record_id", record.ID).Msg("Submission archived")

	return outcome
}

func (d *Dispatcher) notifyStaff(ctx context.Context, logger zerolog.Logger, input domain.SubmissionInput, delivery Delivery) NotificationOutcome {
	if d.notifier == nil {
		return NotificationOutcome{Status: NotificationStatusSkipped}
	}

	err := d.notifier.NotifyStaff(ctx, domain.StaffNotification{
		Input:  input,
		Task:   delivery.Task,
		Result: delivery.Result,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to notify staff (non-critical)")
		return NotificationOutcome{Status: NotificationStatusFailed, Err: err}
	}

	return NotificationOutcome{Status: NotificationStatusSent}
}

// decodeSubmission matches field names exactly. encoding/json would also
// accept "NAME" or "Email", which the site front end never sends.
func decodeSubmission(body []byte) (domain.SubmissionInput, error) {
	var fields map[string]json.RawMessage

	if err := json.Unmarshal(body, &fields); err != nil {
		return domain.SubmissionInput{}, fmt.Errorf("invalid request body: %w", err)
	}

	if fields == nil {
		return domain.SubmissionInput{}, fmt.Errorf("invalid request body: expected a JSON object")
	}

	var input domain.SubmissionInput
	for key, dst := range map[string]*string{
		"name":    &input.Name,
		"email":   &input.Email,
		"subject": &input.Subject,
		"message": &input.Message,
	} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return domain.SubmissionInput{}, fmt.Errorf("invalid request body: field %q: %w", key, err)
		}
	}

	return input, nil
}
