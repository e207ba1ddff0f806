package interfaces

import (
	"context"

	"github.com/foundershield/foundershield/internal/models"
)

type ProviderConfigRepository interface {
	Upsert(ctx context.Context, config *models.ProviderConfig) error
	GetByProvider(ctx context.Context, provider string) (*models.ProviderConfig, error)
	List(ctx context.Context) ([]*models.ProviderConfig, error)
}
