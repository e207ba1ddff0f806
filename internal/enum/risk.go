package enum

type RiskLevel string

const (
	RiskLevelLikelyOk RiskLevel = "likely_ok"
	RiskLevelCaution  RiskLevel = "caution"
	RiskLevelHighRisk RiskLevel = "high_risk"
	RiskLevelError    RiskLevel = "error"
)

func (t RiskLevel) String() string {
	return string(t)
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (t Severity) String() string {
	return string(t)
}

// ThreatLevel is the band scheme used by the riskcheck CLI, separate from
// the report RiskLevel bands.
type ThreatLevel string

const (
	ThreatLevelLow    ThreatLevel = "low"
	ThreatLevelMedium ThreatLevel = "medium"
	ThreatLevelHigh   ThreatLevel = "high"
)

func (t ThreatLevel) String() string {
	return string(t)
}
