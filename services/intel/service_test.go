package intel

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/foundershield/foundershield/config"
	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDNSChecker struct {
	records *dto.DNSRecords
	err     error
	domain  string
}

func (f *fakeDNSChecker) CheckDomain(_ context.Context, domain string) (*dto.DNSRecords, error) {
	f.domain = domain
	return f.records, f.err
}

func getLogger() logger.Logger {
	appLogger := logger.NewAppLogger(&logger.Config{
		DevMode: true,
	})
	appLogger.InitLogger()
	return appLogger
}

func newVTProvider(baseURL string) *virusTotalProvider {
	return &virusTotalProvider{
		log:     getLogger(),
		apiKey:  "test-key",
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func vtStatsBody(malicious, suspicious int) string {
	payload, _ := json.Marshal(map[string]interface{}{
		"data": map[string]interface{}{
			"attributes": map[string]interface{}{
				"last_analysis_stats": map[string]int{
					"malicious":  malicious,
					"suspicious": suspicious,
					"harmless":   60,
					"undetected": 10,
				},
				"reputation": -20,
			},
		},
	})
	return string(payload)
}

func TestVirusTotal_NoAPIKey(t *testing.T) {
	// Arrange
	provider := NewVirusTotalProvider(getLogger(), "")

	// Act
	result := provider.Evaluate(context.Background(), dto.AnalysisInput{Domain: "example.com"})

	// Assert
	assert.False(t, result.Available)
	assert.Equal(t, "VT_API_KEY not set", result.Detail)
}

func TestVirusTotal_ManyDetections(t *testing.T) {
	// Arrange
	var gotPath, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-apikey")
		io.WriteString(w, vtStatsBody(4, 1))
	}))
	defer server.Close()
	provider := newVTProvider(server.URL)

	// Act
	result := provider.Evaluate(context.Background(), dto.AnalysisInput{Domain: "evil.test"})

	// Assert
	assert.Equal(t, "/domains/evil.test", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.True(t, result.Available)
	assert.Equal(t, 8, result.Score)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, dto.FindingVTFlagged, result.Findings[0].ID)
}

func TestVirusTotal_FewDetections(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, vtStatsBody(1, 0))
	}))
	defer server.Close()
	provider := newVTProvider(server.URL)

	// Act
	result := provider.Evaluate(context.Background(), dto.AnalysisInput{Domain: "shady.test"})

	// Assert
	assert.Equal(t, 5, result.Score)
}

func TestVirusTotal_CleanDomain(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, vtStatsBody(0, 0))
	}))
	defer server.Close()
	provider := newVTProvider(server.URL)

	// Act
	result := provider.Evaluate(context.Background(), dto.AnalysisInput{Domain: "example.com"})

	// Assert
	assert.True(t, result.Available)
	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Findings)
}

func TestVirusTotal_UnknownDomain(t *testing.T) {
	// Arrange: 404 means VirusTotal has never seen the domain, which is an
	// answer, not an outage.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()
	provider := newVTProvider(server.URL)

	// Act
	result := provider.Evaluate(context.Background(), dto.AnalysisInput{Domain: "brand-new.test"})

	// Assert
	assert.True(t, result.Available)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, "domain unknown to VirusTotal", result.Detail)
}

func TestVirusTotal_ServerError(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()
	provider := newVTProvider(server.URL)

	// Act
	result := provider.Evaluate(context.Background(), dto.AnalysisInput{Domain: "example.com"})

	// Assert
	assert.False(t, result.Available)
}

func TestVTScore_Boundaries(t *testing.T) {
	assert.Equal(t, 0, vtScore(0))
	assert.Equal(t, 5, vtScore(1))
	assert.Equal(t, 5, vtScore(2))
	assert.Equal(t, 8, vtScore(3))
	assert.Equal(t, 8, vtScore(40))
}

func newGSBProvider(baseURL string) *safeBrowsingProvider {
	return &safeBrowsingProvider{
		log:     getLogger(),
		apiKey:  "gsb-key",
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestSafeBrowsing_Match(t *testing.T) {
	// Arrange
	var gotRequest gsbRequest
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotRequest)
		io.WriteString(w, `{"matches":[{"threatType":"SOCIAL_ENGINEERING","threat":{"url":"https://phish.test/login"}}]}`)
	}))
	defer server.Close()
	provider := newGSBProvider(server.URL)

	// Act
	result := provider.Evaluate(context.Background(), dto.AnalysisInput{URL: "https://phish.test/login"})

	// Assert
	assert.Equal(t, "gsb-key", gotKey)
	require.Len(t, gotRequest.ThreatInfo.ThreatEntries, 1)
	assert.Equal(t, "https://phish.test/login", gotRequest.ThreatInfo.ThreatEntries[0].URL)
	assert.Equal(t, config.ServiceName, gotRequest.Client.ClientID)
	assert.True(t, result.Available)
	assert.Equal(t, 6, result.Score)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, dto.FindingGSBMatch, result.Findings[0].ID)
	assert.Contains(t, result.Findings[0].Detail, "SOCIAL_ENGINEERING")
}

func TestSafeBrowsing_NoMatch(t *testing.T) {
	// Arrange: an empty object is the documented all-clear response.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	}))
	defer server.Close()
	provider := newGSBProvider(server.URL)

	// Act
	result := provider.Evaluate(context.Background(), dto.AnalysisInput{URL: "https://example.com"})

	// Assert
	assert.True(t, result.Available)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, "no threat list matches", result.Detail)
}

func TestSafeBrowsing_DomainOnlyFallsBackToHTTP(t *testing.T) {
	// Arrange
	var gotRequest gsbRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotRequest)
		io.WriteString(w, `{}`)
	}))
	defer server.Close()
	provider := newGSBProvider(server.URL)

	// Act
	provider.Evaluate(context.Background(), dto.AnalysisInput{Domain: "evil.test"})

	// Assert
	require.Len(t, gotRequest.ThreatInfo.ThreatEntries, 1)
	assert.Equal(t, "http://evil.test", gotRequest.ThreatInfo.ThreatEntries[0].URL)
}

func TestSafeBrowsing_NoKeyOrTarget(t *testing.T) {
	// Assert
	assert.False(t, NewSafeBrowsingProvider(getLogger(), "").Evaluate(context.Background(), dto.AnalysisInput{URL: "https://x.test"}).Available)
	assert.False(t, newGSBProvider("http://unused.test").Evaluate(context.Background(), dto.AnalysisInput{}).Available)
}

func newHIBPProvider(baseURL, trustedQuery string) *hibpProvider {
	return &hibpProvider{
		log:          getLogger(),
		apiKey:       "hibp-key",
		trustedQuery: trustedQuery,
		baseURL:      baseURL,
		client:       &http.Client{Timeout: 5 * time.Second},
	}
}

func TestHIBP_TrustedQueryGuard(t *testing.T) {
	// Arrange: the key is licensed for one address, everything else must not
	// even reach the API.
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()
	provider := newHIBPProvider(server.URL, "me@example.com")

	// Act
	blocked := provider.Evaluate(context.Background(), dto.AnalysisInput{Email: "other@example.com"})
	allowed := provider.Evaluate(context.Background(), dto.AnalysisInput{Email: "ME@example.com"})

	// Assert
	assert.False(t, blocked.Available)
	assert.Equal(t, "email outside HIBP_TRUSTED_QUERY", blocked.Detail)
	assert.True(t, allowed.Available)
	assert.Equal(t, 1, requests)
}

func TestHIBP_CleanAccount(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "hibp-key", r.Header.Get("hibp-api-key"))
		assert.NotEmpty(t, r.Header.Get("user-agent"))
		assert.Equal(t, "false", r.URL.Query().Get("truncateResponse"))
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()
	provider := newHIBPProvider(server.URL, "")

	// Act
	result := provider.Evaluate(context.Background(), dto.AnalysisInput{Email: "clean@example.com"})

	// Assert
	assert.True(t, result.Available)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, "no known breaches", result.Detail)
}

func TestHIBP_BreachedAccount(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"Name":"Adobe","Domain":"adobe.com","BreachDate":"2013-10-04","PwnCount":152445165},{"Name":"LinkedIn","Domain":"linkedin.com","BreachDate":"2012-05-05","PwnCount":164611595}]`)
	}))
	defer server.Close()
	provider := newHIBPProvider(server.URL, "")

	// Act
	result := provider.Evaluate(context.Background(), dto.AnalysisInput{Email: "breached@example.com"})

	// Assert
	assert.Equal(t, 2, result.Score)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, dto.FindingHIBPBreached, result.Findings[0].ID)
	assert.Contains(t, result.Findings[0].Detail, "Adobe")
	assert.Contains(t, result.Findings[0].Detail, "LinkedIn")
}

func TestHIBPScore_Boundaries(t *testing.T) {
	assert.Equal(t, 0, hibpScore(0))
	assert.Equal(t, 2, hibpScore(1))
	assert.Equal(t, 2, hibpScore(9))
	assert.Equal(t, 4, hibpScore(10))
}

func TestSPFDMARC_MissingBoth(t *testing.T) {
	// Arrange
	provider := NewSPFDMARCProvider(getLogger(), &fakeDNSChecker{records: &dto.DNSRecords{}})

	// Act
	result := provider.Evaluate(context.Background(), dto.AnalysisInput{Domain: "bare.test"})

	// Assert
	assert.True(t, result.Available)
	assert.Equal(t, 4, result.Score)
	assert.Len(t, result.Findings, 2)
}

func TestSPFDMARC_DomainDerivedFromEmail(t *testing.T) {
	// Arrange
	checker := &fakeDNSChecker{records: &dto.DNSRecords{
		SPFRecord:   "v=spf1 -all",
		DMARCRecord: "v=DMARC1; p=none",
	}}
	provider := NewSPFDMARCProvider(getLogger(), checker)

	// Act
	result := provider.Evaluate(context.Background(), dto.AnalysisInput{Email: "ceo@example.org"})

	// Assert
	assert.Equal(t, "example.org", checker.domain)
	assert.Equal(t, 0, result.Score)
}

func TestSPFDMARC_LookupFailureIsUnavailable(t *testing.T) {
	// Arrange: unlike the report profile, the CLI must not punish a domain it
	// could not resolve.
	provider := NewSPFDMARCProvider(getLogger(), &fakeDNSChecker{err: errors.New("resolver down")})

	// Act
	result := provider.Evaluate(context.Background(), dto.AnalysisInput{Domain: "example.com"})

	// Assert
	assert.False(t, result.Available)
	assert.Equal(t, 0, result.Score)
}

func TestProviders_ChainOrder(t *testing.T) {
	// Act
	providers := Providers(getLogger(), &config.IntelConfig{}, &fakeDNSChecker{})

	// Assert
	require.Len(t, providers, 4)
	assert.Equal(t, "virustotal", providers[0].Name())
	assert.Equal(t, "safebrowsing", providers[1].Name())
	assert.Equal(t, "hibp", providers[2].Name())
	assert.Equal(t, "spfdmarc", providers[3].Name())
}
