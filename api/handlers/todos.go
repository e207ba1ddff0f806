package handlers

import (
	"errors"
	"net/http"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/enum"
	er "github.com/foundershield/foundershield/internal/errors"
	"github.com/foundershield/foundershield/internal/models"
	"github.com/foundershield/foundershield/internal/tracing"
	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
)

// TodosHandler talks to the repository directly; todos carry no business
// logic beyond their status transitions.
type TodosHandler struct {
	todoRepo interfaces.TodoRepository
}

func NewTodosHandler(todoRepo interfaces.TodoRepository) *TodosHandler {
	return &TodosHandler{
		todoRepo: todoRepo,
	}
}

func (h *TodosHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "TodosHandler.List")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		includeDone := c.Query("include_done") == "true"
		todos, err := h.todoRepo.List(ctx, includeDone)
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"todos": todos})
	}
}

func (h *TodosHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "TodosHandler.Create")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		var req dto.TodoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
			return
		}

		todo := &models.Todo{
			Title:       req.Title,
			Description: req.Description,
			Status:      enum.TodoStatusOpen,
		}
		if err := h.todoRepo.Create(ctx, todo); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, todo)
	}
}

func (h *TodosHandler) MarkDone() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "TodosHandler.MarkDone")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		id := c.Param("id")
		tracing.TagEntity(span, id)

		if err := h.todoRepo.UpdateStatus(ctx, id, enum.TodoStatusDone); err != nil {
			if errors.Is(err, er.ErrTodoNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
				return
			}
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "todo completed"})
	}
}

func (h *TodosHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "TodosHandler.Delete")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		id := c.Param("id")
		tracing.TagEntity(span, id)

		if err := h.todoRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, er.ErrTodoNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
				return
			}
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "todo deleted"})
	}
}
