package risk

import (
	"context"

	"github.com/customeros/mailsherpa/mailvalidate"
	"github.com/foundershield/foundershield/config"
	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/tracing"
	"github.com/foundershield/foundershield/internal/utils"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

type riskService struct {
	log    logger.Logger
	cfg    *config.Config
	engine *Engine
}

// NewRiskService assembles the report engine from the lookup services. The
// sender-history provider joins the chain only when enabled in config.
func NewRiskService(
	log logger.Logger,
	cfg *config.Config,
	dnsChecker interfaces.DNSChecker,
	whoisChecker interfaces.WhoisChecker,
	authParser interfaces.AuthHeaderParser,
	contentScanner interfaces.ContentScanner,
	feedbackService interfaces.FeedbackService,
) interfaces.RiskService {
	providers := []interfaces.SignalProvider{
		NewDNSProvider(dnsChecker),
		NewWhoisProvider(whoisChecker),
		NewAuthProvider(authParser),
		NewContentProvider(contentScanner),
	}
	if cfg.ScoringConfig != nil && cfg.ScoringConfig.EnableSenderHistory && feedbackService != nil {
		providers = append(providers, NewSenderHistoryProvider(feedbackService))
	}
	return &riskService{
		log:    log,
		cfg:    cfg,
		engine: NewEngine(ReportProfile(), providers...),
	}
}

func (s *riskService) GenerateReport(ctx context.Context, email, rawHeaders, rawBody string) *dto.RiskReport {
	span, ctx := opentracing.StartSpanFromContext(ctx, "RiskService.GenerateReport")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	syntax := mailvalidate.ValidateEmailSyntax(email)
	domain := utils.ExtractDomainFromEmail(email)
	if !syntax.IsValid || domain == "" {
		s.log.Debugf("rejecting unparseable email input: %s", email)
		return errorReport(email)
	}
	tracing.TagDomain(span, domain)

	score, results := s.engine.Run(ctx, dto.AnalysisInput{
		Email:      email,
		Domain:     domain,
		RawHeaders: rawHeaders,
		RawBody:    rawBody,
	})

	report := &dto.RiskReport{
		ReportID:  uuid.New().String(),
		Email:     email,
		Domain:    domain,
		Score:     score,
		RiskLevel: enum.RiskLevel(s.engine.Profile().LevelFor(score)),
		Findings:  []dto.RiskFinding{},
		Timestamp: utils.Now(),
	}
	for _, result := range results {
		report.Findings = append(report.Findings, result.Findings...)
		switch data := result.Data.(type) {
		case *dto.DNSRecords:
			report.Signals.DNS = data
		case *dto.WhoisInfo:
			report.Signals.Whois = data
		case *dto.AuthResults:
			report.Signals.Auth = data
		case *dto.ContentScanResult:
			report.Signals.Content = data
		case *dto.SenderHistory:
			report.Signals.Sender = data
		}
	}

	s.log.Infof("risk report %s for %s: score %d level %s", report.ReportID, domain, report.Score, report.RiskLevel)
	return report
}

// errorReport is the fixed shape returned for input that cannot be analyzed:
// score zero, level error, a single ERROR finding.
func errorReport(email string) *dto.RiskReport {
	return &dto.RiskReport{
		ReportID:  uuid.New().String(),
		Email:     email,
		Score:     0,
		RiskLevel: enum.RiskLevelError,
		Findings: []dto.RiskFinding{
			{
				ID:       dto.FindingError,
				Severity: enum.SeverityCritical,
				Detail:   "Input is not a parseable email address",
			},
		},
		Timestamp: utils.Now(),
	}
}
