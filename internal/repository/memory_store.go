// internal/repository/memory_store.go
package repository

import "absence-tracker/internal/models"

// MemoryRecordStore keeps the canonical set in memory. Useful for tests and
// for running without a durable data file.
type MemoryRecordStore struct {
	set models.RecordSet
}

func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{}
}

func (s *MemoryRecordStore) Load() (models.RecordSet, error) {
	return s.set.Clone(), nil
}

func (s *MemoryRecordStore) Replace(set models.RecordSet) error {
	s.set = set.Clone()
	return nil
}
