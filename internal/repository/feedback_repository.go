package repository

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/models"
	"github.com/foundershield/foundershield/internal/tracing"
)

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) interfaces.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, record *models.EmailRiskFeedback) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "FeedbackRepository.Create")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)
	tracing.TagEntity(span, record.ID)

	err := r.db.Create(record).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return nil
}

func (r *feedbackRepository) GetBySender(ctx context.Context, senderEmail string) ([]*models.EmailRiskFeedback, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "FeedbackRepository.GetBySender")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	var records []*models.EmailRiskFeedback
	err := r.db.Where("sender_email = ?", senderEmail).Order("created_at desc").Find(&records).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	return records, nil
}

func (r *feedbackRepository) CountBySenderAssessment(ctx context.Context, senderEmail string) (int64, int64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "FeedbackRepository.CountBySenderAssessment")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	var safe, risky int64
	err := r.db.Model(&models.EmailRiskFeedback{}).
		Where("sender_email = ? AND user_assessment = ?", senderEmail, enum.AssessmentSafe).
		Count(&safe).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return 0, 0, err
	}

	err = r.db.Model(&models.EmailRiskFeedback{}).
		Where("sender_email = ? AND user_assessment = ?", senderEmail, enum.AssessmentRisky).
		Count(&risky).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return 0, 0, err
	}

	return safe, risky, nil
}

func (r *feedbackRepository) Stats(ctx context.Context) (*dto.FeedbackStats, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "FeedbackRepository.Stats")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	stats := &dto.FeedbackStats{
		ByOriginalLevel: map[string]int64{},
	}

	err := r.db.Model(&models.EmailRiskFeedback{}).Count(&stats.Total).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	err = r.db.Model(&models.EmailRiskFeedback{}).
		Where("user_assessment = ?", enum.AssessmentSafe).
		Count(&stats.SafeCount).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	err = r.db.Model(&models.EmailRiskFeedback{}).
		Where("user_assessment = ?", enum.AssessmentRisky).
		Count(&stats.RiskyCount).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	err = r.db.Model(&models.EmailRiskFeedback{}).
		Where("(user_assessment = ? AND original_level = ?) OR (user_assessment = ? AND original_level = ?)",
			enum.AssessmentSafe, enum.RiskLevelHighRisk, enum.AssessmentRisky, enum.RiskLevelLikelyOk).
		Count(&stats.Disagreements).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	type levelCount struct {
		OriginalLevel string
		Total         int64
	}
	var rows []levelCount
	err = r.db.Model(&models.EmailRiskFeedback{}).
		Select("original_level, count(*) as total").
		Group("original_level").
		Scan(&rows).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	for _, row := range rows {
		stats.ByOriginalLevel[row.OriginalLevel] = row.Total
	}

	return stats, nil
}
