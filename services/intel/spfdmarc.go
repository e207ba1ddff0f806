package intel

import (
	"context"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/utils"
)

const missingRecordScore = 2

type spfDmarcProvider struct {
	log     logger.Logger
	checker interfaces.DNSChecker
}

// NewSPFDMARCProvider adds threat points for domains publishing no SPF or no
// DMARC record. It reuses the report DNS checker, so it needs no API key.
func NewSPFDMARCProvider(log logger.Logger, checker interfaces.DNSChecker) interfaces.SignalProvider {
	return &spfDmarcProvider{
		log:     log,
		checker: checker,
	}
}

func (p *spfDmarcProvider) Name() string {
	return "spfdmarc"
}

func (p *spfDmarcProvider) Evaluate(ctx context.Context, input dto.AnalysisInput) dto.SignalResult {
	domain := input.Domain
	if domain == "" && input.Email != "" {
		domain = utils.ExtractDomainFromEmail(input.Email)
	}
	if domain == "" {
		return dto.SignalResult{Available: false, Detail: "no domain to check"}
	}

	records, err := p.checker.CheckDomain(ctx, domain)
	if err != nil || records == nil {
		p.log.Debugf("dns check failed for %s: %v", domain, err)
		return dto.SignalResult{Available: false, Detail: "dns lookup failed"}
	}

	result := dto.SignalResult{Available: true, Data: records}
	if records.SPFRecord == "" {
		result.Score += missingRecordScore
		result.Findings = append(result.Findings, dto.RiskFinding{
			ID:       dto.FindingNoSPF,
			Severity: enum.SeverityMedium,
			Detail:   "Domain publishes no SPF record",
		})
	}
	if records.DMARCRecord == "" {
		result.Score += missingRecordScore
		result.Findings = append(result.Findings, dto.RiskFinding{
			ID:       dto.FindingNoDMARC,
			Severity: enum.SeverityMedium,
			Detail:   "Domain publishes no DMARC policy",
		})
	}
	return result
}
