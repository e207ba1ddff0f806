package handlers

import (
	"net/http"
	"strconv"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/tracing"
	"github.com/foundershield/foundershield/services"
	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
)

const defaultAlertLimit = 50

type VanityHandler struct {
	vanityService interfaces.VanityService
}

func NewVanityHandler(s *services.Services) *VanityHandler {
	return &VanityHandler{
		vanityService: s.VanityService,
	}
}

func (h *VanityHandler) Scan() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "VanityHandler.Scan")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		var req dto.VanityScanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}

		alerts, err := h.vanityService.ScanText(ctx, req.Text, req.Source)
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"alerts": alerts})
	}
}

func (h *VanityHandler) Recent() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "VanityHandler.Recent")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		limit := defaultAlertLimit
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
				return
			}
			limit = parsed
		}

		alerts, err := h.vanityService.RecentAlerts(ctx, limit)
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"alerts": alerts})
	}
}
