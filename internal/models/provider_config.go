package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/foundershield/foundershield/internal/utils"
)

// ProviderConfig stores an API key for a third-party intel provider.
// Environment variables take precedence; these rows are the fallback the
// dashboard settings page writes to.
type ProviderConfig struct {
	ID       string `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	Provider string `gorm:"column:provider;type:varchar(100);uniqueIndex;not null" json:"provider"`
	APIKey   string `gorm:"column:api_key;type:varchar(500)" json:"-"`
	Extra    string `gorm:"column:extra;type:text" json:"extra"`
	Enabled  bool   `gorm:"column:enabled;default:true" json:"enabled"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;default:current_timestamp" json:"updatedAt"`
}

func (ProviderConfig) TableName() string {
	return "provider_configs"
}

func (p *ProviderConfig) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = utils.GenerateNanoIdWithPrefix("prov", 16)
	}
	p.CreatedAt = utils.Now()
	return nil
}
