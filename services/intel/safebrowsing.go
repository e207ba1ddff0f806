package intel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/foundershield/foundershield/config"
	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/logger"
)

const safeBrowsingBaseURL = "https://safebrowsing.googleapis.com/v4"

const gsbMatchScore = 6

type gsbRequest struct {
	Client     gsbClient     `json:"client"`
	ThreatInfo gsbThreatInfo `json:"threatInfo"`
}

type gsbClient struct {
	ClientID      string `json:"clientId"`
	ClientVersion string `json:"clientVersion"`
}

type gsbThreatInfo struct {
	ThreatTypes      []string         `json:"threatTypes"`
	PlatformTypes    []string         `json:"platformTypes"`
	ThreatEntryTypes []string         `json:"threatEntryTypes"`
	ThreatEntries    []gsbThreatEntry `json:"threatEntries"`
}

type gsbThreatEntry struct {
	URL string `json:"url"`
}

type gsbResponse struct {
	Matches []struct {
		ThreatType string `json:"threatType"`
		Threat     struct {
			URL string `json:"url"`
		} `json:"threat"`
	} `json:"matches"`
}

type safeBrowsingProvider struct {
	log     logger.Logger
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewSafeBrowsingProvider checks the URL against the Google Safe Browsing v4
// threat lists. Domain-only inputs are checked as http://domain.
func NewSafeBrowsingProvider(log logger.Logger, apiKey string) interfaces.SignalProvider {
	return &safeBrowsingProvider{
		log:     log,
		apiKey:  apiKey,
		baseURL: safeBrowsingBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *safeBrowsingProvider) Name() string {
	return "safebrowsing"
}

func (p *safeBrowsingProvider) Evaluate(ctx context.Context, input dto.AnalysisInput) dto.SignalResult {
	if p.apiKey == "" {
		return dto.SignalResult{Available: false, Detail: "GSB_API_KEY not set"}
	}
	target := input.URL
	if target == "" && input.Domain != "" {
		target = "http://" + input.Domain
	}
	if target == "" {
		return dto.SignalResult{Available: false, Detail: "no url to check"}
	}

	payload, err := json.Marshal(gsbRequest{
		Client: gsbClient{ClientID: config.ServiceName, ClientVersion: config.ServiceVersion},
		ThreatInfo: gsbThreatInfo{
			ThreatTypes:      []string{"MALWARE", "SOCIAL_ENGINEERING", "UNWANTED_SOFTWARE", "POTENTIALLY_HARMFUL_APPLICATION"},
			PlatformTypes:    []string{"ANY_PLATFORM"},
			ThreatEntryTypes: []string{"URL"},
			ThreatEntries:    []gsbThreatEntry{{URL: target}},
		},
	})
	if err != nil {
		return dto.SignalResult{Available: false, Detail: "failed to marshal payload"}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/threatMatches:find?key="+p.apiKey, bytes.NewBuffer(payload))
	if err != nil {
		return dto.SignalResult{Available: false, Detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Debugf("safebrowsing request failed: %v", err)
		return dto.SignalResult{Available: false, Detail: "request failed"}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return dto.SignalResult{Available: false, Detail: "unable to read response body"}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.log.Debugf("safebrowsing returned status %d: %s", resp.StatusCode, string(body))
		return dto.SignalResult{Available: false, Detail: fmt.Sprintf("status %d", resp.StatusCode)}
	}

	var matches gsbResponse
	if err := json.Unmarshal(body, &matches); err != nil {
		return dto.SignalResult{Available: false, Detail: "failed to unmarshal response"}
	}

	result := dto.SignalResult{Available: true, Data: matches}
	if len(matches.Matches) > 0 {
		result.Score = gsbMatchScore
		result.Detail = fmt.Sprintf("%d threat list match(es)", len(matches.Matches))
		result.Findings = append(result.Findings, dto.RiskFinding{
			ID:       dto.FindingGSBMatch,
			Severity: enum.SeverityHigh,
			Detail:   fmt.Sprintf("Safe Browsing lists %s as %s", target, matches.Matches[0].ThreatType),
		})
	} else {
		result.Detail = "no threat list matches"
	}
	return result
}
