package handlers

import (
	"github.com/foundershield/foundershield/internal/repository"
	"github.com/foundershield/foundershield/services"
)

type APIHandlers struct {
	Report    *ReportHandler
	Feedback  *FeedbackHandler
	Leads     *LeadsHandler
	Todos     *TodosHandler
	Vanity    *VanityHandler
	Providers *ProvidersHandler
	Summary   *SummaryHandler
}

func InitHandlers(s *services.Services, repos *repository.Repositories) *APIHandlers {
	return &APIHandlers{
		Report:    NewReportHandler(s),
		Feedback:  NewFeedbackHandler(s),
		Leads:     NewLeadsHandler(s),
		Todos:     NewTodosHandler(repos.TodoRepository),
		Vanity:    NewVanityHandler(s),
		Providers: NewProvidersHandler(repos.ProviderConfigRepository),
		Summary:   NewSummaryHandler(s),
	}
}
