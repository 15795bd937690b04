// internal/models/dispatch_entry.go
package models

import "time"

// DispatchEntry records one outbound notification attempt of a dispatch run.
type DispatchEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RunID        string    `gorm:"type:varchar(36);not null;index" json:"run_id"`
	Recipient    string    `gorm:"type:varchar(255);not null" json:"recipient"`
	ManagerEmail string    `gorm:"type:varchar(255)" json:"manager_email"`
	AbsenceDates string    `gorm:"type:varchar(64)" json:"absence_dates"`
	Status       string    `gorm:"type:varchar(10);not null" json:"status"` // sent, failed
	Error        string    `gorm:"type:text" json:"error,omitempty"`
	SentAt       time.Time `json:"sent_at"`
	CreatedAt    time.Time `json:"created_at"`
}

func (DispatchEntry) TableName() string {
	return "dispatch_entries"
}

const (
	DispatchStatusSent   = "sent"
	DispatchStatusFailed = "failed"
)
