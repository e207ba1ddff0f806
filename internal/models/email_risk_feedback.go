package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/utils"
)

// EmailRiskFeedback is a user correction about a prior risk assessment.
// Append-only; rows are never updated after creation.
type EmailRiskFeedback struct {
	ID             string          `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	EmailID        string          `gorm:"column:email_id;type:varchar(255);index" json:"emailId"`
	SenderEmail    string          `gorm:"column:sender_email;type:varchar(255);index;not null" json:"senderEmail"`
	OriginalScore  int             `gorm:"column:original_score;not null" json:"originalScore"`
	OriginalLevel  enum.RiskLevel  `gorm:"column:original_level;type:varchar(50);not null" json:"originalLevel"`
	UserAssessment enum.Assessment `gorm:"column:user_assessment;type:varchar(50);index;not null" json:"userAssessment"`
	Reason         string          `gorm:"column:reason;type:text" json:"reason"`
	Signals        StringList      `gorm:"column:signals;type:text" json:"signals"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"createdAt"`
}

func (EmailRiskFeedback) TableName() string {
	return "email_risk_feedback"
}

func (f *EmailRiskFeedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = utils.GenerateNanoIdWithPrefix("fdbk", 16)
	}
	f.CreatedAt = utils.Now()
	return nil
}
