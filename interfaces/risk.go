package interfaces

import (
	"context"

	"github.com/foundershield/foundershield/dto"
)

// RiskService produces a risk report for an email address. It never returns
// an error: unparseable input yields an error-level report and every external
// lookup failure is absorbed into the signals.
type RiskService interface {
	GenerateReport(ctx context.Context, email, rawHeaders, rawBody string) *dto.RiskReport
}

// SignalProvider is one pluggable risk signal. Providers report points in
// the direction of their profile: deductions for the report engine, additive
// threat points for the riskcheck engine. A provider that cannot run (missing
// input, missing API key, lookup failure) returns Available=false with zero
// points, never an error.
type SignalProvider interface {
	Name() string
	Evaluate(ctx context.Context, input dto.AnalysisInput) dto.SignalResult
}
