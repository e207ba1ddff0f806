package handlers

import (
	"net/http"
	"strings"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/models"
	"github.com/foundershield/foundershield/internal/tracing"
	"github.com/foundershield/foundershield/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
)

type ProvidersHandler struct {
	providerRepo interfaces.ProviderConfigRepository
}

func NewProvidersHandler(providerRepo interfaces.ProviderConfigRepository) *ProvidersHandler {
	return &ProvidersHandler{
		providerRepo: providerRepo,
	}
}

// ProviderConfigResponse is the read shape: the key itself never leaves the
// server, only a masked tail.
type ProviderConfigResponse struct {
	Provider     string `json:"provider"`
	APIKeyMasked string `json:"api_key_masked"`
	Extra        string `json:"extra,omitempty"`
	Enabled      bool   `json:"enabled"`
}

func (h *ProvidersHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "ProvidersHandler.List")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		configs, err := h.providerRepo.List(ctx)
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		response := make([]ProviderConfigResponse, 0, len(configs))
		for _, cfg := range configs {
			response = append(response, toProviderResponse(cfg))
		}
		c.JSON(http.StatusOK, gin.H{"providers": response})
	}
}

func (h *ProvidersHandler) Upsert() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "ProvidersHandler.Upsert")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		var req dto.ProviderConfigRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Provider == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "provider is required"})
			return
		}

		config := &models.ProviderConfig{
			Provider: strings.ToLower(strings.TrimSpace(req.Provider)),
			APIKey:   req.APIKey,
			Extra:    req.Extra,
			Enabled:  utils.GetOrDefault(req.Enabled, true),
			// Existing key survives an update that omits it.
		}
		if config.APIKey == "" {
			existing, err := h.providerRepo.GetByProvider(ctx, config.Provider)
			if err != nil {
				tracing.TraceErr(span, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if existing != nil {
				config.APIKey = existing.APIKey
			}
		}

		if err := h.providerRepo.Upsert(ctx, config); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, toProviderResponse(config))
	}
}

func toProviderResponse(cfg *models.ProviderConfig) ProviderConfigResponse {
	return ProviderConfigResponse{
		Provider:     cfg.Provider,
		APIKeyMasked: maskSecret(cfg.APIKey),
		Extra:        cfg.Extra,
		Enabled:      cfg.Enabled,
	}
}

func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
