package interfaces

import (
	"context"
	"time"

	"github.com/foundershield/foundershield/internal/models"
)

type VanityAlertRepository interface {
	Create(ctx context.Context, alert *models.VanityAlert) error
	List(ctx context.Context, limit int) ([]*models.VanityAlert, error)
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}
