package content

import (
	"testing"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/stretchr/testify/assert"
)

func getScanner() *contentScanner {
	appLogger := logger.NewAppLogger(&logger.Config{
		DevMode: true,
	})
	appLogger.InitLogger()
	return NewContentScanner(appLogger).(*contentScanner)
}

func findingIDs(findings []dto.RiskFinding) []string {
	ids := make([]string, 0, len(findings))
	for _, f := range findings {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestScan_EmptyBody(t *testing.T) {
	// Arrange
	scanner := getScanner()

	// Act
	result := scanner.Scan("   ")

	// Assert
	assert.Equal(t, 0, result.ScoreDeduction)
	assert.NotNil(t, result.Findings)
	assert.Empty(t, result.Findings)
	assert.NotNil(t, result.Details.SuspiciousURLs)
	assert.NotNil(t, result.Details.ScamPatterns)
}

func TestScan_CleanBody(t *testing.T) {
	// Arrange
	scanner := getScanner()

	// Act
	result := scanner.Scan("Hi, thanks for the intro. Does Tuesday at 3pm work for a call? Agenda attached.")

	// Assert
	assert.Equal(t, 0, result.ScoreDeduction)
	assert.Empty(t, result.Findings)
}

func TestScan_DueDiligenceFeeWithBudgetProbe(t *testing.T) {
	// Arrange
	scanner := getScanner()
	body := "Before we connect you with investors, please pay a small fee for our due diligence report. What is your budget for fundraising support?"

	// Act
	result := scanner.Scan(body)

	// Assert
	assert.Equal(t, 45, result.ScoreDeduction)
	assert.Equal(t, []string{dto.FindingPayForService, dto.FindingBudgetProbe}, findingIDs(result.Findings))
	assert.Len(t, result.Details.ScamPatterns, 2)
	assert.Equal(t, 35, result.Details.ScamPatterns[0].Points)
	assert.Equal(t, 10, result.Details.ScamPatterns[1].Points)
}

func TestScan_RepeatedPhraseCountsOnce(t *testing.T) {
	// Arrange
	scanner := getScanner()
	body := "What is your budget? Seriously, what is your budget?"

	// Act
	result := scanner.Scan(body)

	// Assert
	assert.Equal(t, 10, result.ScoreDeduction)
	assert.Len(t, result.Findings, 1)
}

func TestScan_CaseInsensitivePatterns(t *testing.T) {
	// Arrange
	scanner := getScanner()

	// Act
	result := scanner.Scan("ACT NOW! This offer EXPIRES TODAY.")

	// Assert
	assert.Equal(t, 15, result.ScoreDeduction)
	assert.Equal(t, []string{dto.FindingUrgencyPressure}, findingIDs(result.Findings))
}

func TestScan_ShortenerLink(t *testing.T) {
	// Arrange
	scanner := getScanner()

	// Act
	result := scanner.Scan("Full details here: https://bit.ly/3xYzAbc")

	// Assert
	assert.Equal(t, 15, result.ScoreDeduction)
	assert.Equal(t, []string{dto.FindingURLShortener}, findingIDs(result.Findings))
	assert.Equal(t, enum.SeverityHigh, result.Findings[0].Severity)
	assert.Len(t, result.Details.SuspiciousURLs, 1)
	assert.Equal(t, "https://bit.ly/3xYzAbc", result.Details.SuspiciousURLs[0].URL)
}

func TestScan_ShortenerInsideHTMLAnchor(t *testing.T) {
	// Arrange
	scanner := getScanner()
	body := `<html><body><p>Click <a href="https://bit.ly/claim">here</a> to continue.</p></body></html>`

	// Act
	result := scanner.Scan(body)

	// Assert
	assert.Equal(t, []string{dto.FindingURLShortener}, findingIDs(result.Findings))
	assert.Equal(t, 15, result.ScoreDeduction)
}

func TestScan_DuplicateLinkScoredOnce(t *testing.T) {
	// Arrange: the same link in the text and in an anchor collapses to one hit.
	scanner := getScanner()
	body := `See https://bit.ly/abc or <a href="https://bit.ly/abc">click here</a>`

	// Act
	result := scanner.Scan(body)

	// Assert
	assert.Equal(t, 15, result.ScoreDeduction)
	assert.Len(t, result.Details.SuspiciousURLs, 1)
}

func TestScan_IPLiteralLink(t *testing.T) {
	// Arrange
	scanner := getScanner()

	// Act
	result := scanner.Scan("Login at http://203.0.113.9/login to verify.")

	// Assert
	assert.Equal(t, 15, result.ScoreDeduction)
	assert.Equal(t, []string{dto.FindingIPLiteralURL}, findingIDs(result.Findings))
}

func TestScan_PunycodeLink(t *testing.T) {
	// Arrange
	scanner := getScanner()

	// Act
	result := scanner.Scan("Visit https://xn--pple-43d.com for your account.")

	// Assert
	assert.Equal(t, 8, result.ScoreDeduction)
	assert.Equal(t, []string{dto.FindingPunycodeURL}, findingIDs(result.Findings))
	assert.Equal(t, enum.SeverityMedium, result.Findings[0].Severity)
}

func TestScan_SuspiciousTLDLink(t *testing.T) {
	// Arrange
	scanner := getScanner()

	// Act
	result := scanner.Scan("Claim at https://free-money.tk/claim today.")

	// Assert
	assert.Equal(t, 8, result.ScoreDeduction)
	assert.Equal(t, []string{dto.FindingSuspiciousTLD}, findingIDs(result.Findings))
}

func TestScan_OneLinkAccumulatesMultipleRules(t *testing.T) {
	// Arrange: a raw IP serving an executable trips two rules on one URL.
	scanner := getScanner()

	// Act
	result := scanner.Scan("Download: http://198.51.100.7/update.exe")

	// Assert
	assert.Equal(t, 30, result.ScoreDeduction)
	ids := findingIDs(result.Findings)
	assert.Contains(t, ids, dto.FindingIPLiteralURL)
	assert.Contains(t, ids, dto.FindingExecutableDownload)
	assert.Len(t, result.Details.SuspiciousURLs, 2)
}

func TestScan_PhrasesAndLinksCompound(t *testing.T) {
	// Arrange
	scanner := getScanner()
	body := "Act now and wire transfer the deposit. Tracking link: https://bit.ly/pay-here"

	// Act
	result := scanner.Scan(body)

	// Assert
	assert.Equal(t, 15+25+15, result.ScoreDeduction)
	ids := findingIDs(result.Findings)
	assert.Contains(t, ids, dto.FindingUrgencyPressure)
	assert.Contains(t, ids, dto.FindingWireTransfer)
	assert.Contains(t, ids, dto.FindingURLShortener)
}
