package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/utils"
)

// Todo is a dashboard task, optionally created from a lead.
type Todo struct {
	ID          string          `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	Title       string          `gorm:"column:title;type:varchar(500);not null" json:"title"`
	Description string          `gorm:"column:description;type:text" json:"description"`
	Status      enum.TodoStatus `gorm:"column:status;type:varchar(50);index;not null" json:"status"`
	// Provenance when created from a lead
	LeadID      string `gorm:"column:lead_id;type:varchar(50);index" json:"leadId"`
	SenderEmail string `gorm:"column:sender_email;type:varchar(255);index" json:"senderEmail"`

	CreatedAt time.Time      `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"column:updated_at;type:timestamp;default:current_timestamp" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Todo) TableName() string {
	return "todos"
}

func (t *Todo) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = utils.GenerateNanoIdWithPrefix("todo", 16)
	}
	t.CreatedAt = utils.Now()
	return nil
}
