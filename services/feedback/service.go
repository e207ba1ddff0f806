package feedback

import (
	"context"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/models"
	"github.com/foundershield/foundershield/internal/tracing"
	"github.com/foundershield/foundershield/internal/utils"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
)

type feedbackService struct {
	log          logger.Logger
	feedbackRepo interfaces.FeedbackRepository
}

func NewFeedbackService(log logger.Logger, feedbackRepo interfaces.FeedbackRepository) interfaces.FeedbackService {
	return &feedbackService{
		log:          log,
		feedbackRepo: feedbackRepo,
	}
}

// RecordUserFeedback stores one user correction. Records are append-only;
// repeated feedback about the same report simply accumulates.
func (s *feedbackService) RecordUserFeedback(ctx context.Context, request dto.FeedbackRequest) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "FeedbackService.RecordUserFeedback")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	if request.SenderEmail == "" {
		return errors.New("sender_email is required")
	}
	assessment := enum.Assessment(request.UserAssessment)
	if assessment != enum.AssessmentSafe && assessment != enum.AssessmentRisky {
		return errors.Errorf("user_assessment must be %s or %s", enum.AssessmentSafe, enum.AssessmentRisky)
	}

	record := &models.EmailRiskFeedback{
		EmailID:        request.EmailID,
		SenderEmail:    utils.NormalizeEmail(request.SenderEmail),
		OriginalScore:  request.OriginalScore,
		OriginalLevel:  enum.RiskLevel(request.OriginalLevel),
		UserAssessment: assessment,
		Reason:         request.Reason,
		Signals:        models.StringList(request.Signals),
	}
	if err := s.feedbackRepo.Create(ctx, record); err != nil {
		tracing.TraceErr(span, err)
		return errors.Wrap(err, "failed to store feedback")
	}

	s.log.Infof("recorded %s feedback for sender %s", assessment, record.SenderEmail)
	return nil
}

func (s *feedbackService) GetFeedbackStats(ctx context.Context) (*dto.FeedbackStats, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "FeedbackService.GetFeedbackStats")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	stats, err := s.feedbackRepo.Stats(ctx)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "failed to load feedback stats")
	}
	return stats, nil
}

// SenderHistory aggregates how often the user marked this sender safe or
// risky. Unknown senders return zero counts, not an error.
func (s *feedbackService) SenderHistory(ctx context.Context, senderEmail string) (*dto.SenderHistory, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "FeedbackService.SenderHistory")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	normalized := utils.NormalizeEmail(senderEmail)
	safe, risky, err := s.feedbackRepo.CountBySenderAssessment(ctx, normalized)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "failed to load sender history")
	}
	return &dto.SenderHistory{
		SenderEmail: normalized,
		SafeCount:   safe,
		RiskyCount:  risky,
	}, nil
}
