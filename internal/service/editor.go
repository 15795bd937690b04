// internal/service/editor.go
package service

import (
	"errors"

	"absence-tracker/internal/models"
	"absence-tracker/pkg/classify"

	"github.com/sirupsen/logrus"
)

var (
	// ErrRowNotFound - no record matches the requested absence date.
	ErrRowNotFound = errors.New("row not found")
	// ErrMissingField - date of response and justification are both required.
	ErrMissingField = errors.New("date of response and justification are required")
)

// EditorService applies a single targeted annotation to an already-merged
// record. It never persists; saving is the caller's explicit next step.
type EditorService struct {
	logger *logrus.Logger
}

func NewEditorService() *EditorService {
	return &EditorService{logger: logrus.New()}
}

// ApplyEdit annotates the first record whose absence-date cell equals
// absenceDate with the given response date and justification, then
// re-derives its category. On any failure the set is left untouched.
func (s *EditorService) ApplyEdit(set *models.RecordSet, absenceDate, dateOfResponse, justification string) (*models.AbsenceRecord, error) {
	if dateOfResponse == "" || justification == "" {
		return nil, ErrMissingField
	}

	idx := -1
	for i := range set.Records {
		if set.Records[i].AbsenceDates == absenceDate {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrRowNotFound
	}

	set.EnsureColumns(models.ColDateOfResponse, models.ColCategory, models.ColJustification)

	rec := &set.Records[idx]
	rec.DateOfResponse = &dateOfResponse
	rec.Justification = &justification
	rec.Category = classify.Classify(rec.Justification)

	s.logger.Infof("Updated row %d with date of response %s and justification %s", idx, dateOfResponse, justification)
	return rec, nil
}
