package intel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/utils"
)

const hibpBaseURL = "https://haveibeenpwned.com/api/v3"

// Threat points for breach exposure.
const (
	hibpManyBreachesScore = 4
	hibpFewBreachesScore  = 2
	hibpManyBreachesMin   = 10
)

type hibpBreach struct {
	Name       string `json:"Name"`
	Domain     string `json:"Domain"`
	BreachDate string `json:"BreachDate"`
	PwnCount   int64  `json:"PwnCount"`
}

type hibpProvider struct {
	log          logger.Logger
	apiKey       string
	trustedQuery string
	baseURL      string
	client       *http.Client
}

// NewHIBPProvider counts known breaches for the input email. When
// trustedQuery is set, only that address may be queried; every other email
// degrades to unavailable. This keeps the CLI from probing third-party
// addresses with a key that is only licensed for the operator's own.
func NewHIBPProvider(log logger.Logger, apiKey, trustedQuery string) interfaces.SignalProvider {
	return &hibpProvider{
		log:          log,
		apiKey:       apiKey,
		trustedQuery: utils.NormalizeEmail(trustedQuery),
		baseURL:      hibpBaseURL,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *hibpProvider) Name() string {
	return "hibp"
}

func (p *hibpProvider) Evaluate(ctx context.Context, input dto.AnalysisInput) dto.SignalResult {
	if p.apiKey == "" {
		return dto.SignalResult{Available: false, Detail: "HIBP_API_KEY not set"}
	}
	if input.Email == "" {
		return dto.SignalResult{Available: false, Detail: "no email to check"}
	}
	account := utils.NormalizeEmail(input.Email)
	if p.trustedQuery != "" && account != p.trustedQuery {
		return dto.SignalResult{Available: false, Detail: "email outside HIBP_TRUSTED_QUERY"}
	}

	endpoint := p.baseURL + "/breachedaccount/" + url.PathEscape(account) + "?truncateResponse=false"
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return dto.SignalResult{Available: false, Detail: err.Error()}
	}
	req.Header.Set("hibp-api-key", p.apiKey)
	req.Header.Set("user-agent", "foundershield-riskcheck")

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Debugf("hibp request failed: %v", err)
		return dto.SignalResult{Available: false, Detail: "request failed"}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return dto.SignalResult{Available: false, Detail: "unable to read response body"}
	}
	// 404 is the documented "not in any breach" answer.
	if resp.StatusCode == http.StatusNotFound {
		return dto.SignalResult{Available: true, Detail: "no known breaches"}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.log.Debugf("hibp returned status %d: %s", resp.StatusCode, string(body))
		return dto.SignalResult{Available: false, Detail: fmt.Sprintf("status %d", resp.StatusCode)}
	}

	var breaches []hibpBreach
	if err := json.Unmarshal(body, &breaches); err != nil {
		return dto.SignalResult{Available: false, Detail: "failed to unmarshal response"}
	}

	result := dto.SignalResult{
		Available: true,
		Score:     hibpScore(len(breaches)),
		Detail:    fmt.Sprintf("%d known breach(es)", len(breaches)),
		Data:      breaches,
	}
	if result.Score > 0 {
		names := make([]string, 0, len(breaches))
		for _, breach := range breaches {
			names = append(names, breach.Name)
		}
		result.Findings = append(result.Findings, dto.RiskFinding{
			ID:       dto.FindingHIBPBreached,
			Severity: enum.SeverityMedium,
			Detail:   fmt.Sprintf("Email appears in %d breach(es): %s", len(breaches), strings.Join(names, ", ")),
		})
	}
	return result
}

func hibpScore(breaches int) int {
	switch {
	case breaches >= hibpManyBreachesMin:
		return hibpManyBreachesScore
	case breaches >= 1:
		return hibpFewBreachesScore
	default:
		return 0
	}
}
