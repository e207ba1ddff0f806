package handlers

import (
	"net/http"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/tracing"
	"github.com/foundershield/foundershield/services"
	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
)

type FeedbackHandler struct {
	feedbackService interfaces.FeedbackService
}

func NewFeedbackHandler(s *services.Services) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: s.FeedbackService,
	}
}

func (h *FeedbackHandler) Record() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "FeedbackHandler.Record")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		var req dto.FeedbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := h.feedbackService.RecordUserFeedback(ctx, req); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "feedback recorded"})
	}
}

func (h *FeedbackHandler) Stats() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "FeedbackHandler.Stats")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		stats, err := h.feedbackService.GetFeedbackStats(ctx)
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
