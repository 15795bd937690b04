package repository

import (
	"testing"
	"time"

	"absence-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newDispatchLogRepo(t *testing.T) DispatchLogRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	repo, err := NewGormDispatchLogRepository(db)
	require.NoError(t, err)
	return repo
}

func entry(runID, recipient, status string) *models.DispatchEntry {
	return &models.DispatchEntry{
		RunID:        runID,
		Recipient:    recipient,
		ManagerEmail: "manager@example.com",
		AbsenceDates: "2024-05-01",
		Status:       status,
		SentAt:       time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC),
	}
}

func TestDispatchLogCreateAndGetByRunID(t *testing.T) {
	repo := newDispatchLogRepo(t)

	require.NoError(t, repo.Create(entry("run-1", "alice@example.com", models.DispatchStatusSent)))
	require.NoError(t, repo.Create(entry("run-1", "bob@example.com", models.DispatchStatusFailed)))
	require.NoError(t, repo.Create(entry("run-2", "carol@example.com", models.DispatchStatusSent)))

	entries, err := repo.GetByRunID("run-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "alice@example.com", entries[0].Recipient)
	assert.Equal(t, models.DispatchStatusFailed, entries[1].Status)
}

func TestDispatchLogListRecent(t *testing.T) {
	repo := newDispatchLogRepo(t)

	require.NoError(t, repo.Create(entry("run-1", "alice@example.com", models.DispatchStatusSent)))
	require.NoError(t, repo.Create(entry("run-2", "bob@example.com", models.DispatchStatusSent)))
	require.NoError(t, repo.Create(entry("run-3", "carol@example.com", models.DispatchStatusSent)))

	entries, err := repo.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "carol@example.com", entries[0].Recipient)
	assert.Equal(t, "bob@example.com", entries[1].Recipient)
}
