// internal/repository/record_store.go
package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"absence-tracker/internal/models"

	"github.com/sirupsen/logrus"
)

// ErrStoreUnreadable - the data file exists but cannot be parsed.
var ErrStoreUnreadable = errors.New("record store unreadable")

// RecordStore owns the canonical on-disk record set. A missing file is an
// explicit empty result, not an error.
type RecordStore interface {
	Load() (models.RecordSet, error)
	Replace(set models.RecordSet) error
}

// CSVRecordStore persists the canonical set as a flat CSV file. With
// allowReset enabled a corrupt file degrades to "no prior data" instead of
// failing the ingestion call.
type CSVRecordStore struct {
	path       string
	allowReset bool
	logger     *logrus.Logger
}

func NewCSVRecordStore(path string, allowReset bool) *CSVRecordStore {
	return &CSVRecordStore{
		path:       path,
		allowReset: allowReset,
		logger:     logrus.New(),
	}
}

func (s *CSVRecordStore) Load() (models.RecordSet, error) {
	file, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.RecordSet{}, nil
	}
	if err != nil {
		return models.RecordSet{}, fmt.Errorf("open data file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // allow variable column count

	rows, err := reader.ReadAll()
	if err != nil {
		if s.allowReset {
			s.logger.Warnf("Data file %s is unreadable, starting from an empty set: %v", s.path, err)
			return models.RecordSet{}, nil
		}
		return models.RecordSet{}, fmt.Errorf("parse %s: %v: %w", s.path, err, ErrStoreUnreadable)
	}
	if len(rows) == 0 {
		return models.RecordSet{}, nil
	}

	// Header cells map onto canonical columns; anything else is ignored.
	columnByIndex := make(map[int]string, len(rows[0]))
	var set models.RecordSet
	for i, header := range rows[0] {
		for _, col := range models.CanonicalColumns {
			if header == col {
				columnByIndex[i] = col
				set.EnsureColumns(col)
				break
			}
		}
	}

	for _, row := range rows[1:] {
		var rec models.AbsenceRecord
		for i, cell := range row {
			if col, ok := columnByIndex[i]; ok {
				rec.SetCell(col, cell)
			}
		}
		set.Records = append(set.Records, rec)
	}
	return set, nil
}

// Replace atomically rewrites the data file with the given set.
func (s *CSVRecordStore) Replace(set models.RecordSet) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".absences-*.csv")
	if err != nil {
		return fmt.Errorf("create temp data file: %w", err)
	}

	writer := csv.NewWriter(tmp)
	writeErr := writer.Write(set.Columns)
	if writeErr == nil {
		for _, row := range set.Rows() {
			if writeErr = writer.Write(row); writeErr != nil {
				break
			}
		}
	}
	if writeErr == nil {
		writer.Flush()
		writeErr = writer.Error()
	}

	if closeErr := tmp.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write data file: %w", writeErr)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
