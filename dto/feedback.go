package dto

// FeedbackStats aggregates recorded corrections. Disagreements counts rows
// where the user verdict contradicts the original level in either direction.
type FeedbackStats struct {
	Total           int64            `json:"total"`
	SafeCount       int64            `json:"safe_count"`
	RiskyCount      int64            `json:"risky_count"`
	Disagreements   int64            `json:"disagreements"`
	ByOriginalLevel map[string]int64 `json:"by_original_level"`
}
