package risk

import (
	"github.com/foundershield/foundershield/internal/enum"
)

// Deduction weights for the report profile. The young-domain cutoff of 548
// days is eighteen months.
const (
	deductNoMX        = 30
	deductNoSPF       = 5
	deductNoDMARC     = 10
	deductYoungDomain = 25
	deductAuthFail    = 20

	youngDomainAgeDays = 548
)

// ReportProfile is the deduct-from-100 scheme behind email risk reports.
func ReportProfile() Profile {
	return Profile{
		Name:      "report",
		BaseScore: 100,
		MaxScore:  100,
		Bands: []Band{
			{Min: 70, Level: enum.RiskLevelLikelyOk.String()},
			{Min: 40, Level: enum.RiskLevelCaution.String()},
			{Min: 0, Level: enum.RiskLevelHighRisk.String()},
		},
	}
}

// ThreatProfile is the additive scheme behind the riskcheck CLI: providers
// add threat points up to a cap of 20.
func ThreatProfile() Profile {
	return Profile{
		Name:      "threat",
		BaseScore: 0,
		MaxScore:  20,
		Additive:  true,
		Bands: []Band{
			{Min: 8, Level: enum.ThreatLevelHigh.String()},
			{Min: 4, Level: enum.ThreatLevelMedium.String()},
			{Min: 0, Level: enum.ThreatLevelLow.String()},
		},
	}
}
