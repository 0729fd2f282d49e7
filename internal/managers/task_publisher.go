package managers

import (
	"context"
	"fmt"

	"github.com/idahoesports/site/internal/domain"
	"github.com/idahoesports/site/pkg/clients/clickup"
)

type clickUpTaskPublisher struct {
	client clickup.ClientInterface
	listID string
}

type ClickUpTaskPublisherDependencies struct {
	Client clickup.ClientInterface
	ListID string
}

// NewClickUpTaskPublisher delivers classified tasks to a ClickUp list.
func NewClickUpTaskPublisher(deps ClickUpTaskPublisherDependencies) domain.TaskCreator {
	return &clickUpTaskPublisher{
		client: deps.Client,
		listID: deps.ListID,
	}
}

func (p *clickUpTaskPublisher) CreateTask(ctx context.Context, task domain.ClassifiedTask) (domain.DeliveryResult, error) {
	req := &clickup.CreateTaskRequest{
		Name:        task.Title,
		Description: task.Description,
		Priority:    int(task.Priority),
		Tags:        task.Tags,
		Status:      task.Status,
	}

	created, err := p.client.CreateTask(ctx, p.listID, req)
	if err != nil {
		return domain.DeliveryResult{}, err
	}

	if created.ID == "" {
		return domain.DeliveryResult{}, fmt.Errorf("clickup returned a task without an id")
	}

	return domain.DeliveryResult{
		ID:     created.ID,
		URL:    created.URL,
		Name:   created.Name,
		Status: created.Status.Status,
	}, nil
}
