package domain

import (
	"context"
	"time"
)

// SubmissionInput is the raw contact form payload. It only lives for the
// duration of one request.
type SubmissionInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,contains=@"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// TaskStatusNew is the status every contact task is opened with.
const TaskStatusNew = "NEW"

// ClassifiedTask is the task record derived from a submission.
type ClassifiedTask struct {
	Title       string
	Description string
	Priority    Priority
	Tags        []string
	Status      string
}

// DeliveryResult is what the task service returns for a created task.
type DeliveryResult struct {
	ID     string
	URL    string
	Name   string
	Status string
}

// TaskCreator delivers a classified task to the task-tracking service.
type TaskCreator interface {
	CreateTask(ctx context.Context, task ClassifiedTask) (DeliveryResult, error)
}

// ArchiveStatusPending is the workflow state of a freshly archived submission.
const ArchiveStatusPending = "pending"

// ArchiveDocumentType is the content store document type of archived submissions.
const ArchiveDocumentType = "contactSubmission"

// ArchiveRecord is the secondary copy of a submission kept in the content store.
type ArchiveRecord struct {
	ID           string    `json:"_id" bson:"_id"`
	Type         string    `json:"_type" bson:"_type"`
	SubmissionID string    `json:"submissionId" bson:"submissionId"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Subject      string    `json:"subject" bson:"subject"`
	Message      string    `json:"message" bson:"message"`
	SubmittedAt  time.Time `json:"submittedAt" bson:"submittedAt"`
	TaskID       *string   `json:"clickupTaskId" bson:"clickupTaskId"`
	TaskURL      *string   `json:"clickupTaskUrl" bson:"clickupTaskUrl"`
	Status       string    `json:"status" bson:"status"`
}

// NewArchiveRecord copies the submission and the delivery metadata into a
// pending archive record. Empty task fields are stored as null.
func NewArchiveRecord(id, submissionID string, input SubmissionInput, result DeliveryResult, submittedAt time.Time) ArchiveRecord {
	return ArchiveRecord{
		ID:           id,
		Type:         ArchiveDocumentType,
		SubmissionID: submissionID,
		Name:         input.Name,
		Email:        input.Email,
		Subject:      input.Subject,
		Message:      input.Message,
		SubmittedAt:  submittedAt.UTC(),
		TaskID:       nullableString(result.ID),
		TaskURL:      nullableString(result.URL),
		Status:       ArchiveStatusPending,
	}
}

// ArchiveStore persists archive records. Implementations are optional; a nil
// store means archival is skipped.
type ArchiveStore interface {
	Name() string
	StoreSubmission(ctx context.Context, record ArchiveRecord) error
}

// StaffNotification is sent to the organisation after a task was created.
type StaffNotification struct {
	Input  SubmissionInput
	Task   ClassifiedTask
	Result DeliveryResult
}

// Notifier tells staff about a new submission.
type Notifier interface {
	NotifyStaff(ctx context.Context, n StaffNotification) error
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
