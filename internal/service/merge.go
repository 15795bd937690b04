// internal/service/merge.go
package service

import (
	"fmt"

	"absence-tracker/internal/models"
	"absence-tracker/internal/repository"
	"absence-tracker/pkg/classify"

	"github.com/sirupsen/logrus"
)

// MergeService reconciles an incoming batch with the canonical record set.
type MergeService struct {
	store  repository.RecordStore
	logger *logrus.Logger
}

func NewMergeService(store repository.RecordStore) *MergeService {
	return &MergeService{
		store:  store,
		logger: logrus.New(),
	}
}

// Merge concatenates incoming before existing, recomputes every category,
// collapses rows that are identical across all active columns (first
// occurrence wins, so incoming rows take priority) and persists the result
// as the new canonical set.
func (s *MergeService) Merge(incoming, existing models.RecordSet) (models.RecordSet, error) {
	var working models.RecordSet
	if existing.IsEmpty() {
		working = incoming.Clone()
	} else {
		working.Columns = models.UnionColumns(incoming.Columns, existing.Columns)
		working.Records = make([]models.AbsenceRecord, 0, incoming.Len()+existing.Len())
		working.Records = append(working.Records, incoming.Records...)
		working.Records = append(working.Records, existing.Records...)
	}

	// Category rides immediately before Justificative in the column order.
	working.EnsureColumns(models.ColCategory, models.ColJustification)

	for i := range working.Records {
		working.Records[i].Category = classify.Classify(working.Records[i].Justification)
	}

	working = dropDuplicates(working)

	if err := s.store.Replace(working); err != nil {
		return models.RecordSet{}, fmt.Errorf("persist merged set: %w", err)
	}

	s.logger.Infof("Merged %d incoming and %d existing records into %d", incoming.Len(), existing.Len(), working.Len())
	return working, nil
}

// dropDuplicates removes rows whose cells match an earlier row across every
// active column.
func dropDuplicates(set models.RecordSet) models.RecordSet {
	seen := make(map[string]bool, len(set.Records))
	kept := make([]models.AbsenceRecord, 0, len(set.Records))
	for _, rec := range set.Records {
		key := rec.RowKey(set.Columns)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, rec)
	}
	set.Records = kept
	return set
}
