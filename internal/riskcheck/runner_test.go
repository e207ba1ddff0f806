package riskcheck

import (
	"context"
	"testing"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	name  string
	score int
}

func (p stubProvider) Name() string {
	return p.name
}

func (p stubProvider) Evaluate(_ context.Context, _ dto.AnalysisInput) dto.SignalResult {
	return dto.SignalResult{Available: true, Score: p.score}
}

func getLogger() logger.Logger {
	appLogger := logger.NewAppLogger(&logger.Config{
		DevMode: true,
	})
	appLogger.InitLogger()
	return appLogger
}

func TestNormalizeInput_DomainFromURL(t *testing.T) {
	// Act
	input := NormalizeInput(dto.AnalysisInput{URL: "https://Sub.Example.co.uk/path?x=1"})

	// Assert
	assert.Equal(t, "example.co.uk", input.Domain)
}

func TestNormalizeInput_DomainFromEmail(t *testing.T) {
	// Act
	input := NormalizeInput(dto.AnalysisInput{Email: "  Founder@Example.COM "})

	// Assert
	assert.Equal(t, "founder@example.com", input.Email)
	assert.Equal(t, "example.com", input.Domain)
}

func TestNormalizeInput_ExplicitDomainWins(t *testing.T) {
	// Act
	input := NormalizeInput(dto.AnalysisInput{URL: "https://other.org", Domain: "Example.com"})

	// Assert
	assert.Equal(t, "example.com", input.Domain)
}

func TestRegistrableDomain(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{"plain url", "https://www.example.com/path", "example.com"},
		{"multi-label suffix", "https://deep.sub.example.co.uk", "example.co.uk"},
		{"no scheme", "example.com/path", "example.com"},
		{"ip literal", "http://203.0.113.9/login", ""},
		{"bare suffix falls back to host", "http://localhost", "localhost"},
		{"unparseable", "http://%zz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RegistrableDomain(tt.url))
		})
	}
}

func TestInputLabel_Precedence(t *testing.T) {
	assert.Equal(t, "https://x.test", InputLabel(dto.AnalysisInput{URL: "https://x.test", Email: "a@x.test", Domain: "x.test"}))
	assert.Equal(t, "a@x.test", InputLabel(dto.AnalysisInput{Email: "a@x.test", Domain: "x.test"}))
	assert.Equal(t, "x.test", InputLabel(dto.AnalysisInput{Domain: "x.test"}))
}

func TestRunner_Run(t *testing.T) {
	// Arrange
	runner := NewRunner(getLogger(), []interfaces.SignalProvider{
		stubProvider{name: "virustotal", score: 5},
	})
	inputs := []dto.AnalysisInput{
		{URL: "https://example.com/offer"},
		{Email: "ceo@example.org"},
	}

	// Act
	report := runner.Run(context.Background(), inputs)

	// Assert
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Len(t, report.Results, 2)
	assert.Equal(t, "example.com", report.Results[0].Input.Domain)
	assert.Equal(t, "example.org", report.Results[1].Input.Domain)
	for _, result := range report.Results {
		assert.Equal(t, 5, result.Score)
		assert.Equal(t, enum.ThreatLevelMedium, result.Level)
		assert.Len(t, result.Signals, 1)
		assert.Equal(t, "virustotal", result.Signals[0].Provider)
	}
}
