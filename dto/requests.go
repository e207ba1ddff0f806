package dto

// ReportRequest is the body of POST /v1/report.
type ReportRequest struct {
	Email      string `json:"email"`
	RawHeaders string `json:"raw_headers,omitempty"`
	RawBody    string `json:"raw_body,omitempty"`
}

// FeedbackRequest is the body of POST /api/leads/feedback.
type FeedbackRequest struct {
	EmailID        string   `json:"email_id"`
	SenderEmail    string   `json:"sender_email"`
	OriginalScore  int      `json:"original_score"`
	OriginalLevel  string   `json:"original_level"`
	UserAssessment string   `json:"user_assessment"`
	Reason         string   `json:"reason,omitempty"`
	Signals        []string `json:"signals,omitempty"`
}

// DeletedLeadRequest is the body of POST /api/leads/deleted.
type DeletedLeadRequest struct {
	SenderEmail string `json:"sender_email"`
	Company     string `json:"company,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

type LeadRequest struct {
	SenderEmail string `json:"sender_email"`
	SenderName  string `json:"sender_name,omitempty"`
	Company     string `json:"company,omitempty"`
}

type TodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type VanityScanRequest struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

type SummarizeRequest struct {
	Text string `json:"text"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type ProviderConfigRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
	Extra    string `json:"extra,omitempty"`
	Enabled  *bool  `json:"enabled,omitempty"`
}

// StatusResponse is the success/message envelope the feedback and lead
// endpoints return.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
