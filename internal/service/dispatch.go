// internal/service/dispatch.go
package service

import (
	"fmt"
	"strings"
	"time"

	"absence-tracker/internal/models"
	"absence-tracker/internal/repository"
	"absence-tracker/pkg/mailer"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// requiredRosterColumns must all be present before a dispatch run starts.
var requiredRosterColumns = []string{
	models.ColName,
	models.ColEmail,
	models.ColAbsenceDates,
	models.ColManagerEmail,
}

// DispatchService notifies each person on a roster by email, annotates the
// rows that went out with their send date and ISO week, and hands the
// surviving rows to the ingestion pipeline. Rows whose send failed never
// reach the canonical set.
type DispatchService struct {
	mailer      mailer.Sender
	dispatchLog repository.DispatchLogRepository
	ingest      *IngestionService
	logger      *logrus.Logger
	now         func() time.Time
}

type DispatchResult struct {
	RunID  string           `json:"run_id"`
	Sent   int              `json:"sent"`
	Failed int              `json:"failed"`
	Set    models.RecordSet `json:"set"`
}

func NewDispatchService(
	sender mailer.Sender,
	dispatchLog repository.DispatchLogRepository,
	ingest *IngestionService,
) *DispatchService {
	return &DispatchService{
		mailer:      sender,
		dispatchLog: dispatchLog,
		ingest:      ingest,
		logger:      logrus.New(),
		now:         time.Now,
	}
}

// Run sends one notification per roster row and ingests the annotated rows.
func (s *DispatchService) Run(roster models.RecordSet, subject, bodyTemplate string) (*DispatchResult, error) {
	var missing []string
	for _, col := range requiredRosterColumns {
		if !roster.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("roster is missing columns: %s", strings.Join(missing, ", "))
	}

	result := &DispatchResult{RunID: uuid.NewString()}
	sendDate := s.now().Format("2006-01-02")
	sent := models.RecordSet{
		Columns: models.UnionColumns(roster.Columns, []string{models.ColWeek, models.ColDateOfSend}),
	}

	for _, rec := range roster.Records {
		rec.Week = isoWeek(rec.AbsenceDates)

		entry := &models.DispatchEntry{
			RunID:        result.RunID,
			Recipient:    rec.Email,
			ManagerEmail: rec.ManagerEmail,
			AbsenceDates: rec.AbsenceDates,
			SentAt:       s.now(),
		}

		msg := mailer.Message{
			To:      rec.Email,
			Cc:      rec.ManagerEmail,
			Subject: subject,
			Body:    renderBody(bodyTemplate, &rec),
		}

		if err := s.mailer.Send(msg); err != nil {
			s.logger.Warnf("Failed to send notification to %s: %v", rec.Email, err)
			entry.Status = models.DispatchStatusFailed
			entry.Error = err.Error()
			result.Failed++
		} else {
			date := sendDate
			rec.DateOfSend = &date
			sent.Records = append(sent.Records, rec)
			entry.Status = models.DispatchStatusSent
			result.Sent++
		}

		if err := s.dispatchLog.Create(entry); err != nil {
			s.logger.Warnf("Failed to record dispatch entry for %s: %v", rec.Email, err)
		}
	}

	merged, err := s.ingest.Ingest(sent)
	if err != nil {
		return nil, fmt.Errorf("ingest dispatched batch: %w", err)
	}
	result.Set = merged

	s.logger.Infof("Dispatch run %s finished: %d sent, %d failed", result.RunID, result.Sent, result.Failed)
	return result, nil
}

// isoWeek derives the ISO week number from an absence date, or null when
// the date cannot be parsed.
func isoWeek(absenceDate string) *int {
	t, err := time.Parse("2006-01-02", absenceDate)
	if err != nil {
		return nil
	}
	_, week := t.ISOWeek()
	return &week
}

func renderBody(template string, rec *models.AbsenceRecord) string {
	return strings.NewReplacer(
		"{name}", rec.Name,
		"{dates}", rec.AbsenceDates,
	).Replace(template)
}
