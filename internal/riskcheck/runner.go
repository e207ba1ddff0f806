// Package riskcheck drives the standalone analyzer: it feeds url/domain/email
// inputs through the additive threat engine and renders the results as JSON
// or CSV. The scoring scheme here is deliberately separate from the email
// report profile.
package riskcheck

import (
	"context"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/utils"
	"github.com/foundershield/foundershield/services/risk"
	"golang.org/x/net/publicsuffix"
)

// Result is one scored input row.
type Result struct {
	Input   dto.AnalysisInput  `json:"input"`
	Signals []dto.SignalResult `json:"signals"`
	Score   int                `json:"score"`
	Level   enum.ThreatLevel   `json:"level"`
}

// Report is the full output document.
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	Results     []Result  `json:"results"`
}

type Runner struct {
	log    logger.Logger
	engine *risk.Engine
}

func NewRunner(log logger.Logger, providers []interfaces.SignalProvider) *Runner {
	return &Runner{
		log:    log,
		engine: risk.NewEngine(risk.ThreatProfile(), providers...),
	}
}

// Run scores every input in order. Inputs are normalized first so providers
// that want a domain get one even when the row only carried a URL or email.
func (r *Runner) Run(ctx context.Context, inputs []dto.AnalysisInput) *Report {
	report := &Report{
		GeneratedAt: utils.Now(),
		Results:     make([]Result, 0, len(inputs)),
	}
	for _, input := range inputs {
		normalized := NormalizeInput(input)
		score, signals := r.engine.Run(ctx, normalized)
		report.Results = append(report.Results, Result{
			Input:   normalized,
			Signals: signals,
			Score:   score,
			Level:   enum.ThreatLevel(r.engine.Profile().LevelFor(score)),
		})
		r.log.Infof("scored %s: %d (%s)", InputLabel(normalized), score, r.engine.Profile().LevelFor(score))
	}
	return report
}

// NormalizeInput lower-cases the row and fills the domain from the URL's
// registrable domain or the email's right-hand side when none was given.
func NormalizeInput(input dto.AnalysisInput) dto.AnalysisInput {
	input.URL = strings.TrimSpace(input.URL)
	input.Domain = strings.ToLower(strings.TrimSpace(input.Domain))
	input.Email = utils.NormalizeEmail(input.Email)

	if input.Domain == "" && input.URL != "" {
		input.Domain = RegistrableDomain(input.URL)
	}
	if input.Domain == "" && input.Email != "" {
		input.Domain = utils.ExtractDomainFromEmail(input.Email)
	}
	return input
}

// RegistrableDomain extracts the eTLD+1 from a URL. IP literals and
// unparseable URLs return an empty string.
func RegistrableDomain(rawURL string) string {
	if !strings.Contains(rawURL, "://") {
		rawURL = "http://" + rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" || net.ParseIP(host) != nil {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// Unknown suffix, fall back to the raw host.
		return host
	}
	return domain
}

// InputLabel is the row identity used in logs and the CSV output: the first
// non-empty of url, email, domain.
func InputLabel(input dto.AnalysisInput) string {
	switch {
	case input.URL != "":
		return input.URL
	case input.Email != "":
		return input.Email
	default:
		return input.Domain
	}
}
