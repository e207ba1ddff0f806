// Package intel wraps the external threat-intelligence APIs the riskcheck
// CLI consults. Every provider degrades to Available=false instead of
// failing, so a missing key or a dead API never aborts a run.
package intel

import (
	"github.com/foundershield/foundershield/config"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/logger"
)

// Providers returns the riskcheck signal chain in evaluation order.
func Providers(log logger.Logger, cfg *config.IntelConfig, dnsChecker interfaces.DNSChecker) []interfaces.SignalProvider {
	return []interfaces.SignalProvider{
		NewVirusTotalProvider(log, cfg.VTAPIKey),
		NewSafeBrowsingProvider(log, cfg.GSBAPIKey),
		NewHIBPProvider(log, cfg.HIBPAPIKey, cfg.HIBPTrustedQuery),
		NewSPFDMARCProvider(log, dnsChecker),
	}
}
