package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/foundershield/foundershield/internal/utils"
)

// VanityAlert records one watch-term mention found in scanned text.
type VanityAlert struct {
	ID      string `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	Term    string `gorm:"column:term;type:varchar(255);index;not null" json:"term"`
	Source  string `gorm:"column:source;type:varchar(255);index" json:"source"`
	Snippet string `gorm:"column:snippet;type:text" json:"snippet"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"createdAt"`
}

func (VanityAlert) TableName() string {
	return "vanity_alerts"
}

func (v *VanityAlert) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = utils.GenerateNanoIdWithPrefix("alert", 16)
	}
	v.CreatedAt = utils.Now()
	return nil
}
