package risk

import (
	"context"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/utils"
)

const authFailVerdict = "fail"

// Sender-history thresholds for the advisory findings. They gate findings
// only; the provider never contributes points.
const (
	senderFlaggedMinRisky = 2
	senderTrustedMinSafe  = 3
)

type dnsProvider struct {
	checker interfaces.DNSChecker
}

// NewDNSProvider scores the absence of MX, SPF and DMARC records.
func NewDNSProvider(checker interfaces.DNSChecker) interfaces.SignalProvider {
	return &dnsProvider{checker: checker}
}

func (p *dnsProvider) Name() string {
	return "dns"
}

func (p *dnsProvider) Evaluate(ctx context.Context, input dto.AnalysisInput) dto.SignalResult {
	records, err := p.checker.CheckDomain(ctx, input.Domain)
	if err != nil || records == nil {
		// An unreachable resolver is indistinguishable from a bare domain
		// here, so the absence deductions apply either way.
		records = &dto.DNSRecords{}
	}

	result := dto.SignalResult{Available: true, Data: records}
	if len(records.MXRecords) == 0 {
		result.Score += deductNoMX
		result.Findings = append(result.Findings, dto.RiskFinding{
			ID:       dto.FindingNoMX,
			Severity: enum.SeverityHigh,
			Detail:   "Domain has no MX records and cannot receive mail",
		})
	}
	if records.SPFRecord == "" {
		result.Score += deductNoSPF
		result.Findings = append(result.Findings, dto.RiskFinding{
			ID:       dto.FindingNoSPF,
			Severity: enum.SeverityMedium,
			Detail:   "Domain publishes no SPF record",
		})
	}
	if records.DMARCRecord == "" {
		result.Score += deductNoDMARC
		result.Findings = append(result.Findings, dto.RiskFinding{
			ID:       dto.FindingNoDMARC,
			Severity: enum.SeverityHigh,
			Detail:   "Domain publishes no DMARC policy",
		})
	}
	return result
}

type whoisProvider struct {
	checker interfaces.WhoisChecker
}

// NewWhoisProvider scores recently registered domains. A lookup without a
// creation date carries no penalty.
func NewWhoisProvider(checker interfaces.WhoisChecker) interfaces.SignalProvider {
	return &whoisProvider{checker: checker}
}

func (p *whoisProvider) Name() string {
	return "whois"
}

func (p *whoisProvider) Evaluate(ctx context.Context, input dto.AnalysisInput) dto.SignalResult {
	info := p.checker.Lookup(ctx, input.Domain)
	if info == nil {
		info = &dto.WhoisInfo{}
	}

	result := dto.SignalResult{Available: true, Data: info}
	if info.CreatedDate != nil && utils.AgeInDays(*info.CreatedDate) < youngDomainAgeDays {
		result.Score += deductYoungDomain
		result.Findings = append(result.Findings, dto.RiskFinding{
			ID:       dto.FindingYoungDomain,
			Severity: enum.SeverityHigh,
			Detail:   "Domain was registered less than eighteen months ago",
		})
	}
	return result
}

type authProvider struct {
	parser interfaces.AuthHeaderParser
}

// NewAuthProvider scores explicit SPF/DKIM/DMARC failures in the message's
// Authentication-Results header. Each failing mechanism counts on its own;
// "none" and every other verdict carry no penalty.
func NewAuthProvider(parser interfaces.AuthHeaderParser) interfaces.SignalProvider {
	return &authProvider{parser: parser}
}

func (p *authProvider) Name() string {
	return "auth"
}

func (p *authProvider) Evaluate(_ context.Context, input dto.AnalysisInput) dto.SignalResult {
	verdicts := p.parser.Parse(input.RawHeaders)
	if verdicts == nil {
		verdicts = &dto.AuthResults{}
	}

	result := dto.SignalResult{Available: true, Data: verdicts}
	checks := []struct {
		verdict   string
		findingID string
		detail    string
	}{
		{verdicts.SPF, dto.FindingSPFFail, "Message failed SPF verification"},
		{verdicts.DKIM, dto.FindingDKIMFail, "Message failed DKIM verification"},
		{verdicts.DMARC, dto.FindingDMARCFail, "Message failed DMARC verification"},
	}
	for _, check := range checks {
		if check.verdict != authFailVerdict {
			continue
		}
		result.Score += deductAuthFail
		result.Findings = append(result.Findings, dto.RiskFinding{
			ID:       check.findingID,
			Severity: enum.SeverityCritical,
			Detail:   check.detail,
		})
	}
	return result
}

type contentProvider struct {
	scanner interfaces.ContentScanner
}

// NewContentProvider forwards the body to the content scanner and adopts its
// deduction as-is.
func NewContentProvider(scanner interfaces.ContentScanner) interfaces.SignalProvider {
	return &contentProvider{scanner: scanner}
}

func (p *contentProvider) Name() string {
	return "content"
}

func (p *contentProvider) Evaluate(_ context.Context, input dto.AnalysisInput) dto.SignalResult {
	scan := p.scanner.Scan(input.RawBody)
	if scan == nil {
		scan = &dto.ContentScanResult{}
	}
	return dto.SignalResult{
		Available: true,
		Score:     scan.ScoreDeduction,
		Findings:  scan.Findings,
		Data:      scan,
	}
}

type senderHistoryProvider struct {
	feedback interfaces.FeedbackService
}

// NewSenderHistoryProvider surfaces accumulated user feedback about the
// sender as zero-point advisory findings. It is only wired in when sender
// history is enabled in config.
func NewSenderHistoryProvider(feedback interfaces.FeedbackService) interfaces.SignalProvider {
	return &senderHistoryProvider{feedback: feedback}
}

func (p *senderHistoryProvider) Name() string {
	return "sender_history"
}

func (p *senderHistoryProvider) Evaluate(ctx context.Context, input dto.AnalysisInput) dto.SignalResult {
	history, err := p.feedback.SenderHistory(ctx, input.Email)
	if err != nil || history == nil {
		return dto.SignalResult{Available: false}
	}

	result := dto.SignalResult{Available: true, Data: history}
	switch {
	case history.RiskyCount >= senderFlaggedMinRisky && history.RiskyCount > history.SafeCount:
		result.Findings = append(result.Findings, dto.RiskFinding{
			ID:       dto.FindingSenderFlagged,
			Severity: enum.SeverityMedium,
			Detail:   "You have previously flagged messages from this sender as risky",
		})
	case history.SafeCount >= senderTrustedMinSafe && history.SafeCount > history.RiskyCount:
		result.Findings = append(result.Findings, dto.RiskFinding{
			ID:       dto.FindingSenderTrusted,
			Severity: enum.SeverityLow,
			Detail:   "You have previously confirmed messages from this sender as safe",
		})
	}
	return result
}
