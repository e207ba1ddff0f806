package dto

import (
	"time"

	"github.com/foundershield/foundershield/internal/enum"
)

// RiskFinding is one detected issue contributing to a report score.
type RiskFinding struct {
	ID       string        `json:"id"`
	Severity enum.Severity `json:"severity"`
	Detail   string        `json:"detail"`
}

// ReportSignals keeps the raw intermediate lookup data for audit and debug.
type ReportSignals struct {
	DNS     *DNSRecords        `json:"dns,omitempty"`
	Whois   *WhoisInfo         `json:"whois,omitempty"`
	Auth    *AuthResults       `json:"auth,omitempty"`
	Content *ContentScanResult `json:"content,omitempty"`
	Sender  *SenderHistory     `json:"sender,omitempty"`
}

// RiskReport is the outcome of one analysis run. It is built once, never
// mutated, and not persisted; only feedback about it is stored.
type RiskReport struct {
	ReportID  string         `json:"report_id"`
	Email     string         `json:"email"`
	Domain    string         `json:"domain,omitempty"`
	Score     int            `json:"score"`
	RiskLevel enum.RiskLevel `json:"risk_level"`
	Findings  []RiskFinding  `json:"findings"`
	Signals   ReportSignals  `json:"signals"`
	Timestamp time.Time      `json:"timestamp"`
}
