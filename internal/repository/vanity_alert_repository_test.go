package repository

import (
	"context"
	"testing"
	"time"

	"github.com/foundershield/foundershield/internal/models"
	"github.com/foundershield/foundershield/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVanityAlertRepository_CreateAndList(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := NewVanityAlertRepository(setupTestDB(t))
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &models.VanityAlert{
			Term:    "FounderShield",
			Source:  "newsletter",
			Snippet: "...praised FounderShield for...",
		}))
	}

	// Act
	limited, err := repo.List(ctx, 2)

	// Assert
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestVanityAlertRepository_DeleteOlderThan(t *testing.T) {
	// Arrange: creation always stamps now, so age the row directly.
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewVanityAlertRepository(db)

	old := &models.VanityAlert{Term: "FounderShield", Source: "old-post"}
	fresh := &models.VanityAlert{Term: "FounderShield", Source: "fresh-post"}
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, fresh))
	require.NoError(t, db.Model(&models.VanityAlert{}).
		Where("id = ?", old.ID).
		Update("created_at", utils.Now().Add(-120*24*time.Hour)).Error)

	// Act
	deleted, err := repo.DeleteOlderThan(ctx, utils.Now().Add(-90*24*time.Hour))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "fresh-post", remaining[0].Source)
}
