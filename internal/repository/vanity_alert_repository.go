package repository

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/models"
	"github.com/foundershield/foundershield/internal/tracing"
)

type vanityAlertRepository struct {
	db *gorm.DB
}

func NewVanityAlertRepository(db *gorm.DB) interfaces.VanityAlertRepository {
	return &vanityAlertRepository{db: db}
}

func (r *vanityAlertRepository) Create(ctx context.Context, alert *models.VanityAlert) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "VanityAlertRepository.Create")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	err := r.db.Create(alert).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return nil
}

func (r *vanityAlertRepository) List(ctx context.Context, limit int) ([]*models.VanityAlert, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "VanityAlertRepository.List")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	var alerts []*models.VanityAlert
	err := r.db.Order("created_at desc").Limit(limit).Find(&alerts).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	return alerts, nil
}

func (r *vanityAlertRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "VanityAlertRepository.DeleteOlderThan")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	result := r.db.Where("created_at < ?", before).Delete(&models.VanityAlert{})
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
