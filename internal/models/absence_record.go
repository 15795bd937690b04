// internal/models/absence_record.go
package models

import (
	"strconv"
	"strings"
)

// Canonical wire column names, as persisted in the flat data file.
const (
	ColName           = "Name"
	ColEmail          = "Email Name"
	ColAbsenceDates   = "Dates of Absences"
	ColManagerEmail   = "Email Manager"
	ColWeek           = "Week"
	ColDateOfSend     = "Date of Send"
	ColDateOfResponse = "Date of Response"
	ColCategory       = "Category"
	ColJustification  = "Justificative"
)

// CanonicalColumns fixes the persisted column order. Category always sits
// immediately before Justificative.
var CanonicalColumns = []string{
	ColName,
	ColEmail,
	ColAbsenceDates,
	ColManagerEmail,
	ColWeek,
	ColDateOfSend,
	ColDateOfResponse,
	ColCategory,
	ColJustification,
}

// AbsenceRecord is one tracked absence. Week and Date of Send are filled
// only on the email-dispatch route; the annotation fields stay nil until a
// user edits the row. Category is always derived from Justification.
type AbsenceRecord struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	ManagerEmail   string  `json:"manager_email"`
	AbsenceDates   string  `json:"absence_dates"`
	Week           *int    `json:"week,omitempty"`
	DateOfSend     *string `json:"date_of_send,omitempty"`
	DateOfResponse *string `json:"date_of_response,omitempty"`
	Category       *string `json:"category,omitempty"`
	Justification  *string `json:"justificative,omitempty"`
}

// Cell returns the record's value for a canonical column as it appears on
// the wire. Nil fields render as the empty cell.
func (r *AbsenceRecord) Cell(column string) string {
	switch column {
	case ColName:
		return r.Name
	case ColEmail:
		return r.Email
	case ColAbsenceDates:
		return r.AbsenceDates
	case ColManagerEmail:
		return r.ManagerEmail
	case ColWeek:
		if r.Week == nil {
			return ""
		}
		return strconv.Itoa(*r.Week)
	case ColDateOfSend:
		return deref(r.DateOfSend)
	case ColDateOfResponse:
		return deref(r.DateOfResponse)
	case ColCategory:
		return deref(r.Category)
	case ColJustification:
		return deref(r.Justification)
	}
	return ""
}

// SetCell assigns a wire value to a canonical column. Empty cells leave
// nullable fields nil; an unparseable week is left null.
func (r *AbsenceRecord) SetCell(column, value string) {
	switch column {
	case ColName:
		r.Name = value
	case ColEmail:
		r.Email = value
	case ColAbsenceDates:
		r.AbsenceDates = value
	case ColManagerEmail:
		r.ManagerEmail = value
	case ColWeek:
		if n, err := strconv.Atoi(value); err == nil {
			r.Week = &n
		}
	case ColDateOfSend:
		r.DateOfSend = optional(value)
	case ColDateOfResponse:
		r.DateOfResponse = optional(value)
	case ColCategory:
		r.Category = optional(value)
	case ColJustification:
		r.Justification = optional(value)
	}
}

// RowKey flattens the record's cells over the given columns into a single
// comparable key. Two records are duplicates when their keys match.
func (r *AbsenceRecord) RowKey(columns []string) string {
	cells := make([]string, 0, len(columns))
	for _, col := range columns {
		cells = append(cells, r.Cell(col))
	}
	return strings.Join(cells, "\x1f")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
