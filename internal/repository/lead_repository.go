package repository

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/models"
	"github.com/foundershield/foundershield/internal/tracing"
)

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) interfaces.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Save(ctx context.Context, lead *models.Lead) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "LeadRepository.Save")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)
	tracing.TagEntity(span, lead.ID)

	err := r.db.Save(lead).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return nil
}

func (r *leadRepository) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "LeadRepository.GetByID")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)
	tracing.TagEntity(span, id)

	var lead models.Lead
	err := r.db.First(&lead, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		tracing.TraceErr(span, err)
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) GetBySenderEmail(ctx context.Context, senderEmail string) (*models.Lead, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "LeadRepository.GetBySenderEmail")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	var lead models.Lead
	err := r.db.First(&lead, "sender_email = ?", senderEmail).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		tracing.TraceErr(span, err)
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) List(ctx context.Context) ([]*models.Lead, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "LeadRepository.List")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	var leads []*models.Lead
	err := r.db.Order("created_at desc").Find(&leads).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	return leads, nil
}

func (r *leadRepository) Delete(ctx context.Context, id string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "LeadRepository.Delete")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)
	tracing.TagEntity(span, id)

	err := r.db.Delete(&models.Lead{}, "id = ?", id).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return nil
}

type deletedLeadRepository struct {
	db *gorm.DB
}

func NewDeletedLeadRepository(db *gorm.DB) interfaces.DeletedLeadRepository {
	return &deletedLeadRepository{db: db}
}

func (r *deletedLeadRepository) Create(ctx context.Context, record *models.DeletedLead) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "DeletedLeadRepository.Create")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	err := r.db.Create(record).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return nil
}

func (r *deletedLeadRepository) CountSimilar(ctx context.Context, senderEmail, company string) (int64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "DeletedLeadRepository.CountSimilar")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	query := r.db.Model(&models.DeletedLead{}).Where("sender_email = ?", senderEmail)
	if company != "" {
		query = query.Or("company = ?", company)
	}

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return 0, err
	}
	return count, nil
}

func (r *deletedLeadRepository) List(ctx context.Context, limit int) ([]*models.DeletedLead, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "DeletedLeadRepository.List")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	var records []*models.DeletedLead
	err := r.db.Order("created_at desc").Limit(limit).Find(&records).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	return records, nil
}
