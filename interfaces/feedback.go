package interfaces

import (
	"context"

	"github.com/foundershield/foundershield/dto"
)

type FeedbackService interface {
	RecordUserFeedback(ctx context.Context, request dto.FeedbackRequest) error
	GetFeedbackStats(ctx context.Context) (*dto.FeedbackStats, error)
	SenderHistory(ctx context.Context, senderEmail string) (*dto.SenderHistory, error)
}
