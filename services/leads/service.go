package leads

import (
	"context"
	"fmt"

	"github.com/customeros/mailsherpa/mailvalidate"
	"github.com/customeros/mailwatcher/blscan"
	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/enum"
	er "github.com/foundershield/foundershield/internal/errors"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/models"
	"github.com/foundershield/foundershield/internal/tracing"
	"github.com/foundershield/foundershield/internal/utils"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
)

// A sender whose tasks or similar leads were deleted this many times stops
// generating new tasks.
const taskSuppressionThreshold = 3

type leadService struct {
	log             logger.Logger
	leadRepo        interfaces.LeadRepository
	deletedLeadRepo interfaces.DeletedLeadRepository
	todoRepo        interfaces.TodoRepository
}

func NewLeadService(
	log logger.Logger,
	leadRepo interfaces.LeadRepository,
	deletedLeadRepo interfaces.DeletedLeadRepository,
	todoRepo interfaces.TodoRepository,
) interfaces.LeadService {
	return &leadService{
		log:             log,
		leadRepo:        leadRepo,
		deletedLeadRepo: deletedLeadRepo,
		todoRepo:        todoRepo,
	}
}

func (s *leadService) ListLeads(ctx context.Context) ([]*models.Lead, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "LeadService.ListLeads")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "failed to list leads")
	}
	return leads, nil
}

// CreateLead registers a sender as a lead and annotates it with syntax and
// blacklist qualification. Re-creating an existing sender updates the name
// and company instead of duplicating the row.
func (s *leadService) CreateLead(ctx context.Context, request dto.LeadRequest) (*models.Lead, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "LeadService.CreateLead")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	syntax := mailvalidate.ValidateEmailSyntax(request.SenderEmail)
	if !syntax.IsValid || syntax.Domain == "" {
		return nil, er.ErrInvalidEmail
	}
	normalized := utils.NormalizeEmail(request.SenderEmail)
	tracing.TagDomain(span, syntax.Domain)

	existing, err := s.leadRepo.GetBySenderEmail(ctx, normalized)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "failed to look up lead")
	}
	if existing != nil {
		if request.SenderName != "" {
			existing.SenderName = request.SenderName
		}
		if request.Company != "" {
			existing.Company = request.Company
		}
		existing.UpdatedAt = utils.Now()
		if err := s.leadRepo.Save(ctx, existing); err != nil {
			tracing.TraceErr(span, err)
			return nil, errors.Wrap(err, "failed to update lead")
		}
		return existing, nil
	}

	blacklistCount := blacklistListings(syntax.Domain)
	lead := &models.Lead{
		SenderEmail:    normalized,
		SenderName:     request.SenderName,
		Company:        request.Company,
		Domain:         syntax.Domain,
		Status:         enum.LeadStatusNew,
		FreeProvider:   syntax.IsFreeAccount,
		RoleAccount:    syntax.IsRoleAccount,
		BlacklistCount: blacklistCount,
	}
	if !syntax.IsFreeAccount && !syntax.IsRoleAccount && blacklistCount == 0 {
		lead.Status = enum.LeadStatusQualified
	}
	if err := s.leadRepo.Save(ctx, lead); err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "failed to create lead")
	}

	s.log.Infof("created %s lead %s for %s", lead.Status, lead.ID, normalized)
	return lead, nil
}

// RecordDeletedLead logs a rejection for analytics and marks any matching
// lead rejected. It never suppresses anything by itself; the counters are
// consulted at task-creation time.
func (s *leadService) RecordDeletedLead(ctx context.Context, request dto.DeletedLeadRequest) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "LeadService.RecordDeletedLead")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	if request.SenderEmail == "" {
		return errors.New("sender_email is required")
	}
	normalized := utils.NormalizeEmail(request.SenderEmail)

	record := &models.DeletedLead{
		SenderEmail: normalized,
		Company:     request.Company,
		Reason:      request.Reason,
	}
	if err := s.deletedLeadRepo.Create(ctx, record); err != nil {
		tracing.TraceErr(span, err)
		return errors.Wrap(err, "failed to record deleted lead")
	}

	lead, err := s.leadRepo.GetBySenderEmail(ctx, normalized)
	if err != nil {
		tracing.TraceErr(span, err)
		return errors.Wrap(err, "failed to look up lead")
	}
	if lead != nil && lead.Status != enum.LeadStatusRejected {
		lead.Status = enum.LeadStatusRejected
		lead.UpdatedAt = utils.Now()
		if err := s.leadRepo.Save(ctx, lead); err != nil {
			tracing.TraceErr(span, err)
			return errors.Wrap(err, "failed to mark lead rejected")
		}
	}
	return nil
}

func (s *leadService) CreateTaskFromLead(ctx context.Context, leadID string) (*models.Todo, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "LeadService.CreateTaskFromLead")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagEntity(span, leadID)

	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "failed to load lead")
	}
	if lead == nil {
		return nil, er.ErrLeadNotFound
	}

	suppressed, err := s.taskSuppressed(ctx, lead)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	if suppressed {
		s.log.Infof("suppressing task for sender %s: too many prior deletions", lead.SenderEmail)
		return nil, nil
	}

	contact := lead.SenderName
	if contact == "" {
		contact = lead.SenderEmail
	}
	todo := &models.Todo{
		Title:       fmt.Sprintf("Follow up with %s", contact),
		Description: s.taskDescription(lead),
		Status:      enum.TodoStatusOpen,
		LeadID:      lead.ID,
		SenderEmail: lead.SenderEmail,
	}
	if err := s.todoRepo.Create(ctx, todo); err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "failed to create task")
	}
	return todo, nil
}

// AttachAssessment stores the latest report outcome on the matching lead.
// Senders without a lead are ignored.
func (s *leadService) AttachAssessment(ctx context.Context, senderEmail string, score int, level string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "LeadService.AttachAssessment")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	lead, err := s.leadRepo.GetBySenderEmail(ctx, utils.NormalizeEmail(senderEmail))
	if err != nil {
		tracing.TraceErr(span, err)
		return errors.Wrap(err, "failed to look up lead")
	}
	if lead == nil {
		return nil
	}

	lead.LastScore = &score
	lead.LastLevel = enum.RiskLevel(level)
	lead.UpdatedAt = utils.Now()
	if err := s.leadRepo.Save(ctx, lead); err != nil {
		tracing.TraceErr(span, err)
		return errors.Wrap(err, "failed to store assessment on lead")
	}
	return nil
}

func (s *leadService) taskSuppressed(ctx context.Context, lead *models.Lead) (bool, error) {
	deletedTasks, err := s.todoRepo.CountDeletedBySender(ctx, lead.SenderEmail)
	if err != nil {
		return false, errors.Wrap(err, "failed to count deleted tasks")
	}
	if deletedTasks >= taskSuppressionThreshold {
		return true, nil
	}
	similarDeleted, err := s.deletedLeadRepo.CountSimilar(ctx, lead.SenderEmail, lead.Company)
	if err != nil {
		return false, errors.Wrap(err, "failed to count deleted leads")
	}
	return similarDeleted >= taskSuppressionThreshold, nil
}

func (s *leadService) taskDescription(lead *models.Lead) string {
	if lead.Company != "" {
		return fmt.Sprintf("Suggested from analyzed sender %s at %s", lead.SenderEmail, lead.Company)
	}
	return fmt.Sprintf("Suggested from analyzed sender %s", lead.SenderEmail)
}

// blacklistListings totals listings across the major, minor and spam-trap
// blacklists. The scan is best-effort; an unreachable list counts as clean.
var blacklistListings = func(domain string) int {
	blacklists := blscan.ScanBlacklists(domain, "domain")
	return blacklists.MajorLists + blacklists.MinorLists + blacklists.SpamTrapLists
}
