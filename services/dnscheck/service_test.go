package dnscheck

import (
	"context"
	"testing"

	"github.com/foundershield/foundershield/config"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestFirstSPFRecord(t *testing.T) {
	tests := []struct {
		name     string
		records  []string
		expected string
	}{
		{
			name:     "picks the spf declaration among other txt records",
			records:  []string{"google-site-verification=abc123", "v=spf1 include:_spf.example.com ~all"},
			expected: "v=spf1 include:_spf.example.com ~all",
		},
		{
			name:     "case insensitive prefix",
			records:  []string{"V=SPF1 -all"},
			expected: "V=SPF1 -all",
		},
		{
			name:     "no spf record",
			records:  []string{"google-site-verification=abc123"},
			expected: "",
		},
		{
			name:     "empty input",
			records:  nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, firstSPFRecord(tt.records))
		})
	}
}

func TestFirstDMARCRecord(t *testing.T) {
	tests := []struct {
		name     string
		records  []string
		expected string
	}{
		{
			name:     "picks the dmarc declaration",
			records:  []string{"v=DMARC1; p=reject; rua=mailto:dmarc@example.com"},
			expected: "v=DMARC1; p=reject; rua=mailto:dmarc@example.com",
		},
		{
			name:     "ignores unrelated txt",
			records:  []string{"verification=xyz"},
			expected: "",
		},
		{
			name:     "empty input",
			records:  nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, firstDMARCRecord(tt.records))
		})
	}
}

func TestCheckDomain_EmptyDomain(t *testing.T) {
	// Arrange
	appLogger := logger.NewAppLogger(&logger.Config{DevMode: true})
	appLogger.InitLogger()
	svc := NewDNSCheckService(appLogger, &config.DNSConfig{
		Resolver:         "127.0.0.1:1",
		FallbackResolver: "127.0.0.1:1",
		TimeoutSeconds:   1,
	})

	// Act: whitespace and a trailing dot normalize to nothing, so no lookup runs.
	records, err := svc.CheckDomain(context.Background(), "  .  ")

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records.MXRecords)
	assert.Empty(t, records.SPFRecord)
	assert.Empty(t, records.DMARCRecord)
}
