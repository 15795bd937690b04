package service

import (
	"os"
	"path/filepath"
	"testing"

	"absence-tracker/internal/models"
	"absence-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIngestion(store repository.RecordStore) *IngestionService {
	return NewIngestionService(store, NewMergeService(store))
}

func TestIngestPublishesProjection(t *testing.T) {
	svc := newIngestion(repository.NewMemoryRecordStore())
	incoming := models.RecordSet{
		Columns: batchColumns(),
		Records: []models.AbsenceRecord{record("alice", "2024-05-01", ptr("planned leave"))},
	}

	merged, err := svc.Ingest(incoming)
	require.NoError(t, err)
	assert.Equal(t, merged, *svc.Projection())
}

func TestEditIsMemoryOnlyUntilSave(t *testing.T) {
	store := repository.NewMemoryRecordStore()
	svc := newIngestion(store)
	editor := NewEditorService()

	_, err := svc.Ingest(models.RecordSet{
		Columns: batchColumns(),
		Records: []models.AbsenceRecord{record("alice", "2024-05-01", nil)},
	})
	require.NoError(t, err)

	_, err = editor.ApplyEdit(svc.Projection(), "2024-05-01", "2024-05-10", "planned leave")
	require.NoError(t, err)

	// The store still holds the pre-edit row.
	stored, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, stored.Records[0].Justification)

	require.NoError(t, svc.Save())

	stored, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, stored.Records[0].Justification)
	assert.Equal(t, "planned leave", *stored.Records[0].Justification)
	require.NotNil(t, stored.Records[0].DateOfResponse)
	assert.Equal(t, "2024-05-10", *stored.Records[0].DateOfResponse)
}

func TestReloadRebuildsProjectionFromDisk(t *testing.T) {
	store := repository.NewCSVRecordStore(filepath.Join(t.TempDir(), "data.csv"), false)
	svc := newIngestion(store)

	_, err := svc.Ingest(models.RecordSet{
		Columns: batchColumns(),
		Records: []models.AbsenceRecord{record("alice", "2024-05-01", ptr("planned leave"))},
	})
	require.NoError(t, err)

	fresh := newIngestion(store)
	set, err := fresh.Reload()
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	assert.Equal(t, "alice", set.Records[0].Name)
}

func TestIngestSurfacesUnreadableStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("Name\n\"unterminated\n"), 0o644))

	svc := newIngestion(repository.NewCSVRecordStore(path, false))
	_, err := svc.Ingest(models.RecordSet{
		Columns: batchColumns(),
		Records: []models.AbsenceRecord{record("alice", "2024-05-01", nil)},
	})
	assert.ErrorIs(t, err, repository.ErrStoreUnreadable)
}
