package repository

import (
	"gorm.io/gorm"

	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/models"
)

type Repositories struct {
	FeedbackRepository       interfaces.FeedbackRepository
	LeadRepository           interfaces.LeadRepository
	DeletedLeadRepository    interfaces.DeletedLeadRepository
	TodoRepository           interfaces.TodoRepository
	VanityAlertRepository    interfaces.VanityAlertRepository
	ProviderConfigRepository interfaces.ProviderConfigRepository
}

func InitRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		FeedbackRepository:       NewFeedbackRepository(db),
		LeadRepository:           NewLeadRepository(db),
		DeletedLeadRepository:    NewDeletedLeadRepository(db),
		TodoRepository:           NewTodoRepository(db),
		VanityAlertRepository:    NewVanityAlertRepository(db),
		ProviderConfigRepository: NewProviderConfigRepository(db),
	}
}

// MigrateDB creates all tables at startup. There is no migrations framework;
// AutoMigrate is the create-if-not-exists step.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.EmailRiskFeedback{},
		&models.Lead{},
		&models.DeletedLead{},
		&models.Todo{},
		&models.VanityAlert{},
		&models.ProviderConfig{},
	)
}
