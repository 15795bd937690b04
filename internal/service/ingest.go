// internal/service/ingest.go
package service

import (
	"fmt"

	"absence-tracker/internal/models"
	"absence-tracker/internal/repository"

	"github.com/sirupsen/logrus"
)

// IngestionService is the orchestration entry point for new batches. It owns
// the in-memory projection of the canonical set; the projection is a derived
// view and can be rebuilt from the store at any time.
type IngestionService struct {
	store   repository.RecordStore
	merge   *MergeService
	logger  *logrus.Logger
	current models.RecordSet
}

func NewIngestionService(store repository.RecordStore, merge *MergeService) *IngestionService {
	return &IngestionService{
		store:  store,
		merge:  merge,
		logger: logrus.New(),
	}
}

// Ingest merges one incoming batch with the stored set and republishes the
// projection.
func (s *IngestionService) Ingest(incoming models.RecordSet) (models.RecordSet, error) {
	existing, err := s.store.Load()
	if err != nil {
		return models.RecordSet{}, fmt.Errorf("load canonical store: %w", err)
	}

	merged, err := s.merge.Merge(incoming, existing)
	if err != nil {
		return models.RecordSet{}, err
	}

	s.current = merged
	return merged, nil
}

// Reload rebuilds the projection from disk without merging anything new.
func (s *IngestionService) Reload() (models.RecordSet, error) {
	set, err := s.store.Load()
	if err != nil {
		return models.RecordSet{}, fmt.Errorf("load canonical store: %w", err)
	}
	s.current = set
	return set, nil
}

// Projection exposes the owned current set. Row edits mutate it in place
// and stay memory-only until Save.
func (s *IngestionService) Projection() *models.RecordSet {
	return &s.current
}

// Save persists the projection, completing an edit-then-save sequence.
func (s *IngestionService) Save() error {
	if err := s.store.Replace(s.current); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	s.logger.Infof("Saved %d records", s.current.Len())
	return nil
}
