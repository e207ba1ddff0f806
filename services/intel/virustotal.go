package intel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/logger"
)

const virusTotalBaseURL = "https://www.virustotal.com/api/v3"

// Threat points for VirusTotal detections.
const (
	vtManyDetectionsScore = 8
	vtFewDetectionsScore  = 5
	vtManyDetectionsMin   = 3
)

type vtDomainResponse struct {
	Data struct {
		Attributes struct {
			LastAnalysisStats struct {
				Malicious  int `json:"malicious"`
				Suspicious int `json:"suspicious"`
				Harmless   int `json:"harmless"`
				Undetected int `json:"undetected"`
			} `json:"last_analysis_stats"`
			Reputation int `json:"reputation"`
		} `json:"attributes"`
	} `json:"data"`
}

type virusTotalProvider struct {
	log     logger.Logger
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewVirusTotalProvider checks the domain's VirusTotal analysis stats. With
// no API key configured the provider reports itself unavailable.
func NewVirusTotalProvider(log logger.Logger, apiKey string) interfaces.SignalProvider {
	return &virusTotalProvider{
		log:     log,
		apiKey:  apiKey,
		baseURL: virusTotalBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *virusTotalProvider) Name() string {
	return "virustotal"
}

func (p *virusTotalProvider) Evaluate(ctx context.Context, input dto.AnalysisInput) dto.SignalResult {
	if p.apiKey == "" {
		return dto.SignalResult{Available: false, Detail: "VT_API_KEY not set"}
	}
	if input.Domain == "" {
		return dto.SignalResult{Available: false, Detail: "no domain to check"}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", p.baseURL+"/domains/"+input.Domain, nil)
	if err != nil {
		return dto.SignalResult{Available: false, Detail: err.Error()}
	}
	req.Header.Set("x-apikey", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Debugf("virustotal request failed: %v", err)
		return dto.SignalResult{Available: false, Detail: "request failed"}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return dto.SignalResult{Available: false, Detail: "unable to read response body"}
	}
	if resp.StatusCode == http.StatusNotFound {
		return dto.SignalResult{Available: true, Detail: "domain unknown to VirusTotal"}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.log.Debugf("virustotal returned status %d: %s", resp.StatusCode, string(body))
		return dto.SignalResult{Available: false, Detail: fmt.Sprintf("status %d", resp.StatusCode)}
	}

	var report vtDomainResponse
	if err := json.Unmarshal(body, &report); err != nil {
		return dto.SignalResult{Available: false, Detail: "failed to unmarshal response"}
	}

	stats := report.Data.Attributes.LastAnalysisStats
	positives := stats.Malicious + stats.Suspicious
	result := dto.SignalResult{
		Available: true,
		Score:     vtScore(positives),
		Detail:    fmt.Sprintf("%d engines flagged the domain", positives),
		Data:      report.Data.Attributes,
	}
	if result.Score > 0 {
		result.Findings = append(result.Findings, dto.RiskFinding{
			ID:       dto.FindingVTFlagged,
			Severity: enum.SeverityHigh,
			Detail:   fmt.Sprintf("VirusTotal engines flagged %s (%d detections)", input.Domain, positives),
		})
	}
	return result
}

func vtScore(positives int) int {
	switch {
	case positives >= vtManyDetectionsMin:
		return vtManyDetectionsScore
	case positives >= 1:
		return vtFewDetectionsScore
	default:
		return 0
	}
}
