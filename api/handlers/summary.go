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

type SummaryHandler struct {
	summaryService interfaces.SummaryService
}

func NewSummaryHandler(s *services.Services) *SummaryHandler {
	return &SummaryHandler{
		summaryService: s.SummaryService,
	}
}

// Summarize answers 503 while no OpenAI key is configured so the dashboard
// can grey the feature out instead of erroring.
func (h *SummaryHandler) Summarize() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "SummaryHandler.Summarize")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		var req dto.SummarizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}

		summary, err := h.summaryService.Summarize(ctx, req.Text)
		if err != nil {
			if errors.Is(err, er.ErrNotConfigured) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "summarizer not configured"})
				return
			}
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, dto.SummarizeResponse{Summary: summary})
	}
}
