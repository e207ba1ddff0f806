package repository

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/models"
	"github.com/foundershield/foundershield/internal/tracing"
	"github.com/foundershield/foundershield/internal/utils"
)

type providerConfigRepository struct {
	db *gorm.DB
}

func NewProviderConfigRepository(db *gorm.DB) interfaces.ProviderConfigRepository {
	return &providerConfigRepository{db: db}
}

func (r *providerConfigRepository) Upsert(ctx context.Context, config *models.ProviderConfig) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ProviderConfigRepository.Upsert")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	config.UpdatedAt = utils.Now()
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider"}},
		DoUpdates: clause.AssignmentColumns([]string{"api_key", "extra", "enabled", "updated_at"}),
	}).Create(config).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return nil
}

func (r *providerConfigRepository) GetByProvider(ctx context.Context, provider string) (*models.ProviderConfig, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ProviderConfigRepository.GetByProvider")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	var config models.ProviderConfig
	err := r.db.First(&config, "provider = ?", provider).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		tracing.TraceErr(span, err)
		return nil, err
	}
	return &config, nil
}

func (r *providerConfigRepository) List(ctx context.Context) ([]*models.ProviderConfig, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ProviderConfigRepository.List")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	var configs []*models.ProviderConfig
	err := r.db.Order("provider asc").Find(&configs).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	return configs, nil
}
