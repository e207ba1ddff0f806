package handlers

import (
	"net/http"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/tracing"
	"github.com/foundershield/foundershield/services"
	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
)

type ReportHandler struct {
	riskService   interfaces.RiskService
	leadService   interfaces.LeadService
	vanityService interfaces.VanityService
}

func NewReportHandler(s *services.Services) *ReportHandler {
	return &ReportHandler{
		riskService:   s.RiskService,
		leadService:   s.LeadService,
		vanityService: s.VanityService,
	}
}

// Generate runs a risk analysis. Unparseable email input still answers 200
// with an error-level report; only a missing body is a client error.
func (h *ReportHandler) Generate() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "ReportHandler.Generate")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		var req dto.ReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		report := h.riskService.GenerateReport(ctx, req.Email, req.RawHeaders, req.RawBody)

		if report.RiskLevel != enum.RiskLevelError {
			if err := h.leadService.AttachAssessment(ctx, report.Email, report.Score, report.RiskLevel.String()); err != nil {
				// Lead annotation is best-effort; the report already stands.
				tracing.TraceErr(span, err)
			}
			if req.RawBody != "" {
				if _, err := h.vanityService.ScanText(ctx, req.RawBody, "email:"+report.Email); err != nil {
					tracing.TraceErr(span, err)
				}
			}
		}

		c.JSON(http.StatusOK, report)
	}
}
