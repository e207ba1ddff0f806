package services

import (
	"context"

	"github.com/foundershield/foundershield/config"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/repository"
	"github.com/foundershield/foundershield/services/content"
	"github.com/foundershield/foundershield/services/dnscheck"
	"github.com/foundershield/foundershield/services/feedback"
	"github.com/foundershield/foundershield/services/headers"
	"github.com/foundershield/foundershield/services/leads"
	"github.com/foundershield/foundershield/services/risk"
	"github.com/foundershield/foundershield/services/summary"
	"github.com/foundershield/foundershield/services/vanity"
	"github.com/foundershield/foundershield/services/whois"
)

type Services struct {
	DNSChecker      interfaces.DNSChecker
	WhoisChecker    interfaces.WhoisChecker
	AuthParser      interfaces.AuthHeaderParser
	ContentScanner  interfaces.ContentScanner
	RiskService     interfaces.RiskService
	FeedbackService interfaces.FeedbackService
	LeadService     interfaces.LeadService
	VanityService   interfaces.VanityService
	SummaryService  interfaces.SummaryService
}

func InitServices(cfg *config.Config, log logger.Logger, repos *repository.Repositories) *Services {
	ApplyStoredProviderKeys(log, cfg, repos.ProviderConfigRepository)

	dnsChecker := dnscheck.NewDNSCheckService(log, cfg.DNSConfig)
	whoisChecker := whois.NewWhoisService(log, cfg.WhoisConfig)
	authParser := headers.NewAuthHeaderParser(log)
	contentScanner := content.NewContentScanner(log)
	feedbackService := feedback.NewFeedbackService(log, repos.FeedbackRepository)

	return &Services{
		DNSChecker:      dnsChecker,
		WhoisChecker:    whoisChecker,
		AuthParser:      authParser,
		ContentScanner:  contentScanner,
		RiskService:     risk.NewRiskService(log, cfg, dnsChecker, whoisChecker, authParser, contentScanner, feedbackService),
		FeedbackService: feedbackService,
		LeadService:     leads.NewLeadService(log, repos.LeadRepository, repos.DeletedLeadRepository, repos.TodoRepository),
		VanityService:   vanity.NewVanityService(log, cfg.VanityConfig, repos.VanityAlertRepository),
		SummaryService:  summary.NewSummaryService(log, cfg.OpenAIConfig),
	}
}

// ApplyStoredProviderKeys backfills API keys from the provider_configs table
// when the environment leaves them empty. Environment always wins; stored
// keys are read once at startup, so a key entered through the dashboard
// takes effect on the next start.
func ApplyStoredProviderKeys(log logger.Logger, cfg *config.Config, providerRepo interfaces.ProviderConfigRepository) {
	stored, err := providerRepo.List(context.Background())
	if err != nil {
		log.Warnf("Stored provider configs unavailable: %v", err)
		return
	}

	for _, pc := range stored {
		if !pc.Enabled || pc.APIKey == "" {
			continue
		}
		switch pc.Provider {
		case "openai":
			if cfg.OpenAIConfig.APIKey == "" {
				cfg.OpenAIConfig.APIKey = pc.APIKey
			}
		case "virustotal":
			if cfg.IntelConfig.VTAPIKey == "" {
				cfg.IntelConfig.VTAPIKey = pc.APIKey
			}
		case "safebrowsing":
			if cfg.IntelConfig.GSBAPIKey == "" {
				cfg.IntelConfig.GSBAPIKey = pc.APIKey
			}
		case "hibp":
			if cfg.IntelConfig.HIBPAPIKey == "" {
				cfg.IntelConfig.HIBPAPIKey = pc.APIKey
			}
		}
	}
}
