package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/utils"
)

// Lead is a suggested contact extracted from an analyzed sender.
type Lead struct {
	ID          string          `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	SenderEmail string          `gorm:"column:sender_email;type:varchar(255);uniqueIndex;not null" json:"senderEmail"`
	SenderName  string          `gorm:"column:sender_name;type:varchar(255)" json:"senderName"`
	Company     string          `gorm:"column:company;type:varchar(255);index" json:"company"`
	Domain      string          `gorm:"column:domain;type:varchar(255);index" json:"domain"`
	Status      enum.LeadStatus `gorm:"column:status;type:varchar(50);index;not null" json:"status"`
	// Qualification annotations
	FreeProvider   bool `gorm:"column:free_provider;default:false" json:"freeProvider"`
	RoleAccount    bool `gorm:"column:role_account;default:false" json:"roleAccount"`
	BlacklistCount int  `gorm:"column:blacklist_count;default:0" json:"blacklistCount"`
	// Last risk assessment, if any
	LastScore *int           `gorm:"column:last_score" json:"lastScore"`
	LastLevel enum.RiskLevel `gorm:"column:last_level;type:varchar(50)" json:"lastLevel"`

	CreatedAt time.Time      `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"column:updated_at;type:timestamp;default:current_timestamp" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Lead) TableName() string {
	return "leads"
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = utils.GenerateNanoIdWithPrefix("lead", 16)
	}
	l.CreatedAt = utils.Now()
	return nil
}

// DeletedLead logs why a suggested lead was rejected, keyed by sender and
// company so similar future suggestions can be suppressed.
type DeletedLead struct {
	ID          string `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	SenderEmail string `gorm:"column:sender_email;type:varchar(255);index" json:"senderEmail"`
	Company     string `gorm:"column:company;type:varchar(255);index" json:"company"`
	Reason      string `gorm:"column:reason;type:text" json:"reason"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"createdAt"`
}

func (DeletedLead) TableName() string {
	return "deleted_leads"
}

func (d *DeletedLead) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = utils.GenerateNanoIdWithPrefix("dlead", 16)
	}
	d.CreatedAt = utils.Now()
	return nil
}
