package dto

// AnalysisInput identifies the item a signal provider inspects. The riskcheck
// CLI fills any of url/domain/email per row; the report service fills email
// and domain plus the raw message parts.
type AnalysisInput struct {
	URL    string `json:"url,omitempty"`
	Domain string `json:"domain,omitempty"`
	Email  string `json:"email,omitempty"`

	RawHeaders string `json:"-"`
	RawBody    string `json:"-"`
}

// SignalResult is the uniform outcome of one provider evaluation. Score is
// the point weight the engine applies in its profile direction.
type SignalResult struct {
	Provider  string        `json:"provider"`
	Available bool          `json:"available"`
	Score     int           `json:"score"`
	Findings  []RiskFinding `json:"findings,omitempty"`
	Detail    string        `json:"detail,omitempty"`
	Data      interface{}   `json:"data,omitempty"`
}
