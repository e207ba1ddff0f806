package leads

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/internal/database"
	"github.com/foundershield/foundershield/internal/enum"
	er "github.com/foundershield/foundershield/internal/errors"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getLogger() logger.Logger {
	appLogger := logger.NewAppLogger(&logger.Config{
		DevMode: true,
	})
	appLogger.InitLogger()
	return appLogger
}

func setupService(t *testing.T) (*leadService, *repository.Repositories) {
	t.Helper()

	db, err := database.NewConnection(&database.DatabaseConfig{
		DBPath:   filepath.Join(t.TempDir(), "test.db"),
		LogLevel: "SILENT",
	})
	require.NoError(t, err)
	require.NoError(t, repository.MigrateDB(db))

	repos := repository.InitRepositories(db)
	svc := NewLeadService(getLogger(), repos.LeadRepository, repos.DeletedLeadRepository, repos.TodoRepository)
	return svc.(*leadService), repos
}

func stubBlacklist(t *testing.T, listings int) {
	t.Helper()
	original := blacklistListings
	blacklistListings = func(string) int { return listings }
	t.Cleanup(func() { blacklistListings = original })
}

func TestCreateLead_InvalidEmail(t *testing.T) {
	// Arrange
	svc, _ := setupService(t)

	// Act
	lead, err := svc.CreateLead(context.Background(), dto.LeadRequest{SenderEmail: "not-an-email"})

	// Assert
	assert.ErrorIs(t, err, er.ErrInvalidEmail)
	assert.Nil(t, lead)
}

func TestCreateLead_QualifiesCleanWorkAddress(t *testing.T) {
	// Arrange
	svc, _ := setupService(t)
	stubBlacklist(t, 0)

	// Act
	lead, err := svc.CreateLead(context.Background(), dto.LeadRequest{
		SenderEmail: "Jane@Acme-Ventures.com",
		SenderName:  "Jane Doe",
		Company:     "Acme Ventures",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, enum.LeadStatusQualified, lead.Status)
	assert.Equal(t, "jane@acme-ventures.com", lead.SenderEmail)
	assert.Equal(t, "acme-ventures.com", lead.Domain)
	assert.False(t, lead.FreeProvider)
	assert.False(t, lead.RoleAccount)
	assert.Equal(t, 0, lead.BlacklistCount)
}

func TestCreateLead_FreeProviderStaysNew(t *testing.T) {
	// Arrange
	svc, _ := setupService(t)
	stubBlacklist(t, 0)

	// Act
	lead, err := svc.CreateLead(context.Background(), dto.LeadRequest{SenderEmail: "jane.doe@gmail.com"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, enum.LeadStatusNew, lead.Status)
	assert.True(t, lead.FreeProvider)
}

func TestCreateLead_BlacklistedDomainStaysNew(t *testing.T) {
	// Arrange
	svc, _ := setupService(t)
	stubBlacklist(t, 2)

	// Act
	lead, err := svc.CreateLead(context.Background(), dto.LeadRequest{SenderEmail: "jane@acme-ventures.com"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, enum.LeadStatusNew, lead.Status)
	assert.Equal(t, 2, lead.BlacklistCount)
}

func TestCreateLead_ExistingSenderIsUpdatedNotDuplicated(t *testing.T) {
	// Arrange
	svc, _ := setupService(t)
	stubBlacklist(t, 0)
	ctx := context.Background()
	first, err := svc.CreateLead(ctx, dto.LeadRequest{SenderEmail: "jane@acme-ventures.com"})
	require.NoError(t, err)

	// Act
	second, err := svc.CreateLead(ctx, dto.LeadRequest{
		SenderEmail: "jane@acme-ventures.com",
		SenderName:  "Jane Doe",
		Company:     "Acme Ventures",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Jane Doe", second.SenderName)
	assert.Equal(t, "Acme Ventures", second.Company)

	leads, err := svc.ListLeads(ctx)
	require.NoError(t, err)
	assert.Len(t, leads, 1)
}

func TestRecordDeletedLead_MarksLeadRejected(t *testing.T) {
	// Arrange
	svc, _ := setupService(t)
	stubBlacklist(t, 0)
	ctx := context.Background()
	lead, err := svc.CreateLead(ctx, dto.LeadRequest{SenderEmail: "jane@acme-ventures.com"})
	require.NoError(t, err)

	// Act
	err = svc.RecordDeletedLead(ctx, dto.DeletedLeadRequest{
		SenderEmail: "jane@acme-ventures.com",
		Reason:      "not a fit",
	})

	// Assert
	require.NoError(t, err)
	updated, err := svc.leadRepo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.LeadStatusRejected, updated.Status)
}

func TestRecordDeletedLead_RequiresSender(t *testing.T) {
	// Arrange
	svc, _ := setupService(t)

	// Act
	err := svc.RecordDeletedLead(context.Background(), dto.DeletedLeadRequest{Reason: "spam"})

	// Assert
	assert.Error(t, err)
}

func TestCreateTaskFromLead(t *testing.T) {
	// Arrange
	svc, _ := setupService(t)
	stubBlacklist(t, 0)
	ctx := context.Background()
	lead, err := svc.CreateLead(ctx, dto.LeadRequest{
		SenderEmail: "jane@acme-ventures.com",
		SenderName:  "Jane Doe",
		Company:     "Acme Ventures",
	})
	require.NoError(t, err)

	// Act
	todo, err := svc.CreateTaskFromLead(ctx, lead.ID)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, todo)
	assert.Equal(t, "Follow up with Jane Doe", todo.Title)
	assert.Contains(t, todo.Description, "jane@acme-ventures.com")
	assert.Contains(t, todo.Description, "Acme Ventures")
	assert.Equal(t, enum.TodoStatusOpen, todo.Status)
	assert.Equal(t, lead.ID, todo.LeadID)
}

func TestCreateTaskFromLead_UnknownLead(t *testing.T) {
	// Arrange
	svc, _ := setupService(t)

	// Act
	todo, err := svc.CreateTaskFromLead(context.Background(), "lead_missing")

	// Assert
	assert.ErrorIs(t, err, er.ErrLeadNotFound)
	assert.Nil(t, todo)
}

func TestCreateTaskFromLead_SuppressedAfterRepeatedTaskDeletions(t *testing.T) {
	// Arrange: delete three tasks from the same sender, the fourth is refused.
	svc, repos := setupService(t)
	stubBlacklist(t, 0)
	ctx := context.Background()
	lead, err := svc.CreateLead(ctx, dto.LeadRequest{SenderEmail: "pushy@broker.biz"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		todo, err := svc.CreateTaskFromLead(ctx, lead.ID)
		require.NoError(t, err)
		require.NotNil(t, todo)
		require.NoError(t, repos.TodoRepository.Delete(ctx, todo.ID))
	}

	// Act
	todo, err := svc.CreateTaskFromLead(ctx, lead.ID)

	// Assert: suppression is silent, not an error.
	require.NoError(t, err)
	assert.Nil(t, todo)
}

func TestCreateTaskFromLead_SuppressedAfterSimilarLeadDeletions(t *testing.T) {
	// Arrange: rejections of the same company also count toward suppression.
	svc, _ := setupService(t)
	stubBlacklist(t, 0)
	ctx := context.Background()
	lead, err := svc.CreateLead(ctx, dto.LeadRequest{
		SenderEmail: "new-face@broker.biz",
		Company:     "Broker LLC",
	})
	require.NoError(t, err)

	for _, sender := range []string{"a@broker.biz", "b@broker.biz", "c@broker.biz"} {
		require.NoError(t, svc.RecordDeletedLead(ctx, dto.DeletedLeadRequest{
			SenderEmail: sender,
			Company:     "Broker LLC",
		}))
	}

	// Act
	todo, err := svc.CreateTaskFromLead(ctx, lead.ID)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, todo)
}

func TestAttachAssessment(t *testing.T) {
	// Arrange
	svc, _ := setupService(t)
	stubBlacklist(t, 0)
	ctx := context.Background()
	lead, err := svc.CreateLead(ctx, dto.LeadRequest{SenderEmail: "jane@acme-ventures.com"})
	require.NoError(t, err)

	// Act
	err = svc.AttachAssessment(ctx, "Jane@Acme-Ventures.com", 42, "caution")

	// Assert
	require.NoError(t, err)
	updated, err := svc.leadRepo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastScore)
	assert.Equal(t, 42, *updated.LastScore)
	assert.Equal(t, enum.RiskLevelCaution, updated.LastLevel)
}

func TestAttachAssessment_UnknownSenderIsIgnored(t *testing.T) {
	// Arrange
	svc, _ := setupService(t)

	// Act
	err := svc.AttachAssessment(context.Background(), "stranger@example.com", 10, "high_risk")

	// Assert
	assert.NoError(t, err)
}
