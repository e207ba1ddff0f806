package interfaces

import (
	"context"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/internal/models"
)

type FeedbackRepository interface {
	Create(ctx context.Context, record *models.EmailRiskFeedback) error
	GetBySender(ctx context.Context, senderEmail string) ([]*models.EmailRiskFeedback, error)
	CountBySenderAssessment(ctx context.Context, senderEmail string) (safe int64, risky int64, err error)
	Stats(ctx context.Context) (*dto.FeedbackStats, error)
}
