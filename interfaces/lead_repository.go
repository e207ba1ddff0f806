package interfaces

import (
	"context"

	"github.com/foundershield/foundershield/internal/models"
)

type LeadRepository interface {
	Save(ctx context.Context, lead *models.Lead) error
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	GetBySenderEmail(ctx context.Context, senderEmail string) (*models.Lead, error)
	List(ctx context.Context) ([]*models.Lead, error)
	Delete(ctx context.Context, id string) error
}

type DeletedLeadRepository interface {
	Create(ctx context.Context, record *models.DeletedLead) error
	CountSimilar(ctx context.Context, senderEmail, company string) (int64, error)
	List(ctx context.Context, limit int) ([]*models.DeletedLead, error)
}
