package interfaces

import (
	"context"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/internal/models"
)

type LeadService interface {
	ListLeads(ctx context.Context) ([]*models.Lead, error)
	CreateLead(ctx context.Context, request dto.LeadRequest) (*models.Lead, error)
	RecordDeletedLead(ctx context.Context, request dto.DeletedLeadRequest) error
	// CreateTaskFromLead returns the created todo, or nil when task creation
	// was suppressed because the sender accumulated too many deleted tasks.
	CreateTaskFromLead(ctx context.Context, leadID string) (*models.Todo, error)
	AttachAssessment(ctx context.Context, senderEmail string, score int, level string) error
}
