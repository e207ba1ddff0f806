package repository

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/enum"
	er "github.com/foundershield/foundershield/internal/errors"
	"github.com/foundershield/foundershield/internal/models"
	"github.com/foundershield/foundershield/internal/tracing"
	"github.com/foundershield/foundershield/internal/utils"
)

type todoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) interfaces.TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(ctx context.Context, todo *models.Todo) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "TodoRepository.Create")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	err := r.db.Create(todo).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return nil
}

func (r *todoRepository) List(ctx context.Context, includeDone bool) ([]*models.Todo, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "TodoRepository.List")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	query := r.db.Order("created_at desc")
	if !includeDone {
		query = query.Where("status = ?", enum.TodoStatusOpen)
	}

	var todos []*models.Todo
	err := query.Find(&todos).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	return todos, nil
}

func (r *todoRepository) UpdateStatus(ctx context.Context, id string, status enum.TodoStatus) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "TodoRepository.UpdateStatus")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)
	tracing.TagEntity(span, id)

	result := r.db.Model(&models.Todo{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": utils.Now()})
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return er.ErrTodoNotFound
	}
	return nil
}

func (r *todoRepository) Delete(ctx context.Context, id string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "TodoRepository.Delete")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)
	tracing.TagEntity(span, id)

	err := r.UpdateStatus(ctx, id, enum.TodoStatusDeleted)
	if err != nil {
		return err
	}

	err = r.db.Delete(&models.Todo{}, "id = ?", id).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return nil
}

func (r *todoRepository) CountDeletedBySender(ctx context.Context, senderEmail string) (int64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "TodoRepository.CountDeletedBySender")
	defer span.Finish()
	tracing.TagComponentSqliteRepository(span)

	var count int64
	err := r.db.Unscoped().Model(&models.Todo{}).
		Where("sender_email = ? AND status = ?", senderEmail, enum.TodoStatusDeleted).
		Count(&count).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return 0, err
	}
	return count, nil
}
