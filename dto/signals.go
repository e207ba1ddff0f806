package dto

import (
	"time"

	"github.com/foundershield/foundershield/internal/enum"
)

type MXRecord struct {
	Priority uint16 `json:"priority"`
	Host     string `json:"host"`
}

// DNSRecords is the outcome of the record checks for one domain. Missing
// records are zero values, never errors.
type DNSRecords struct {
	MXRecords   []MXRecord `json:"mx_records"`
	SPFRecord   string     `json:"spf_record,omitempty"`
	DMARCRecord string     `json:"dmarc_record,omitempty"`
	MTASTS      bool       `json:"mta_sts"`
	TLSRPT      bool       `json:"tlsrpt"`
}

// WhoisInfo is the registration data for a domain. Available means no
// registration data could be found, which is a weak signal only.
type WhoisInfo struct {
	CreatedDate *time.Time `json:"created_date,omitempty"`
	Registrar   string     `json:"registrar,omitempty"`
	Available   bool       `json:"available"`
}

// AuthResults carries the verdicts extracted from an Authentication-Results
// header. Values are whatever followed the token, lower-cased; "none" when
// the token was not found.
type AuthResults struct {
	SPF   string `json:"spf"`
	DKIM  string `json:"dkim"`
	DMARC string `json:"dmarc"`
}

type ScamPatternMatch struct {
	FindingID string `json:"finding_id"`
	Matched   string `json:"matched"`
	Points    int    `json:"points"`
}

type SuspiciousURL struct {
	URL       string        `json:"url"`
	FindingID string        `json:"finding_id"`
	Severity  enum.Severity `json:"severity"`
}

type ContentDetails struct {
	SuspiciousURLs []SuspiciousURL    `json:"suspicious_urls"`
	ScamPatterns   []ScamPatternMatch `json:"scam_patterns"`
}

// ContentScanResult is the outcome of the content heuristics run over a body.
type ContentScanResult struct {
	Findings       []RiskFinding  `json:"findings"`
	ScoreDeduction int            `json:"score_deduction"`
	Details        ContentDetails `json:"details"`
}

// SenderHistory summarizes prior feedback for a sender. Populated only when
// the sender-history provider is enabled.
type SenderHistory struct {
	SenderEmail string `json:"sender_email"`
	SafeCount   int64  `json:"safe_count"`
	RiskyCount  int64  `json:"risky_count"`
}
