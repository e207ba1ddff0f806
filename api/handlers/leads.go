package handlers

import (
	"net/http"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	er "github.com/foundershield/foundershield/internal/errors"
	"github.com/foundershield/foundershield/internal/tracing"
	"github.com/foundershield/foundershield/services"
	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
)

type LeadsHandler struct {
	leadService interfaces.LeadService
}

func NewLeadsHandler(s *services.Services) *LeadsHandler {
	return &LeadsHandler{
		leadService: s.LeadService,
	}
}

func (h *LeadsHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "LeadsHandler.List")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		leads, err := h.leadService.ListLeads(ctx)
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"leads": leads})
	}
}

func (h *LeadsHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "LeadsHandler.Create")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		var req dto.LeadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		lead, err := h.leadService.CreateLead(ctx, req)
		if err != nil {
			if errors.Is(err, er.ErrInvalidEmail) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, lead)
	}
}

func (h *LeadsHandler) RecordDeleted() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "LeadsHandler.RecordDeleted")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		var req dto.DeletedLeadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := h.leadService.RecordDeletedLead(ctx, req); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "deletion recorded"})
	}
}

// CreateTask turns a lead into a follow-up todo. A sender with too many
// prior deletions answers 200 with Success=false instead of a new task.
func (h *LeadsHandler) CreateTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "LeadsHandler.CreateTask")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		leadID := c.Param("id")
		tracing.TagEntity(span, leadID)

		todo, err := h.leadService.CreateTaskFromLead(ctx, leadID)
		if err != nil {
			if errors.Is(err, er.ErrLeadNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if todo == nil {
			c.JSON(http.StatusOK, dto.StatusResponse{Success: false, Message: "task suppressed for this sender"})
			return
		}

		c.JSON(http.StatusOK, todo)
	}
}
