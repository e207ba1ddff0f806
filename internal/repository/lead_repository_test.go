package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/foundershield/foundershield/internal/enum"
	"github.com/foundershield/foundershield/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadRepository_SaveAndGet(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := NewLeadRepository(setupTestDB(t))
	lead := &models.Lead{
		SenderEmail: "jane@startup.io",
		SenderName:  "Jane Doe",
		Company:     "Startup Inc",
		Domain:      "startup.io",
		Status:      enum.LeadStatusQualified,
	}

	// Act
	err := repo.Save(ctx, lead)

	// Assert
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(lead.ID, "lead"))

	byID, err := repo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "jane@startup.io", byID.SenderEmail)

	bySender, err := repo.GetBySenderEmail(ctx, "jane@startup.io")
	require.NoError(t, err)
	require.NotNil(t, bySender)
	assert.Equal(t, lead.ID, bySender.ID)
}

func TestLeadRepository_GetMissingReturnsNil(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := NewLeadRepository(setupTestDB(t))

	// Act
	byID, errID := repo.GetByID(ctx, "lead_missing")
	bySender, errSender := repo.GetBySenderEmail(ctx, "nobody@example.com")

	// Assert: absence is not an error.
	assert.NoError(t, errID)
	assert.Nil(t, byID)
	assert.NoError(t, errSender)
	assert.Nil(t, bySender)
}

func TestLeadRepository_SaveUpdatesExisting(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := NewLeadRepository(setupTestDB(t))
	lead := &models.Lead{SenderEmail: "jane@startup.io", Status: enum.LeadStatusNew}
	require.NoError(t, repo.Save(ctx, lead))

	// Act
	lead.Status = enum.LeadStatusRejected
	score := 35
	lead.LastScore = &score
	lead.LastLevel = enum.RiskLevelHighRisk
	require.NoError(t, repo.Save(ctx, lead))

	// Assert
	leads, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, enum.LeadStatusRejected, leads[0].Status)
	require.NotNil(t, leads[0].LastScore)
	assert.Equal(t, 35, *leads[0].LastScore)
}

func TestDeletedLeadRepository_CountSimilar(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := NewDeletedLeadRepository(setupTestDB(t))
	require.NoError(t, repo.Create(ctx, &models.DeletedLead{SenderEmail: "spam@broker.biz", Company: "Broker LLC", Reason: "fee request"}))
	require.NoError(t, repo.Create(ctx, &models.DeletedLead{SenderEmail: "spam@broker.biz", Company: "Broker LLC", Reason: "again"}))
	require.NoError(t, repo.Create(ctx, &models.DeletedLead{SenderEmail: "other@broker.biz", Company: "Broker LLC", Reason: "same outfit"}))

	// Act
	bySenderOrCompany, err := repo.CountSimilar(ctx, "spam@broker.biz", "Broker LLC")
	require.NoError(t, err)
	senderOnly, err := repo.CountSimilar(ctx, "other@broker.biz", "")
	require.NoError(t, err)
	unknown, err := repo.CountSimilar(ctx, "nobody@example.com", "")
	require.NoError(t, err)

	// Assert
	assert.Equal(t, int64(3), bySenderOrCompany)
	assert.Equal(t, int64(1), senderOnly)
	assert.Equal(t, int64(0), unknown)
}

func TestDeletedLeadRepository_List(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := NewDeletedLeadRepository(setupTestDB(t))
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &models.DeletedLead{SenderEmail: "spam@broker.biz"}))
	}

	// Act
	records, err := repo.List(ctx, 2)

	// Assert
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
