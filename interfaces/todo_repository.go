package interfaces

import (
	"context"

	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/models"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *models.Todo) error
	List(ctx context.Context, includeDone bool) ([]*models.Todo, error)
	UpdateStatus(ctx context.Context, id string, status enum.TodoStatus) error
	// Delete marks the todo deleted and soft-deletes the row, so the
	// suppression counter keeps seeing it.
	Delete(ctx context.Context, id string) error
	CountDeletedBySender(ctx context.Context, senderEmail string) (int64, error)
}
