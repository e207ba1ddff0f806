package interfaces

import (
	"context"

	"github.com/foundershield/foundershield/internal/models"
)

type VanityService interface {
	// ScanText records one alert per configured watch term found in text.
	ScanText(ctx context.Context, text, source string) ([]*models.VanityAlert, error)
	RecentAlerts(ctx context.Context, limit int) ([]*models.VanityAlert, error)
}
