package classify

import (
	"errors"
	"sort"
)

// Category buckets.
const (
	CategoryAbsence      = "Absence"
	CategorySchedule     = "Schedule update"
	CategoryToVerify     = "To verify"
	CategoryAwaitingInfo = "Awaiting information"
	CategoryUnknown      = "Unknown"
)

// ErrUnknownJustification - justification phrase outside the lookup table.
var ErrUnknownJustification = errors.New("unknown justification")

// categoryByJustification - fixed lookup table from justification phrase to
// category bucket.
var categoryByJustification = map[string]string{
	"health absence":                CategoryAbsence,
	"exceptional unplanned absence": CategoryAbsence,
	"missing schedule update":       CategorySchedule,
	"manager authorization":         CategorySchedule,
	"planned leave":                 CategorySchedule,
	"client intervention":           CategorySchedule,
	"resignation":                   CategorySchedule,
	"schedule shift":                CategoryToVerify,
	"badge access issue":            CategoryToVerify,
	"awaiting information":          CategoryAwaitingInfo,
}

// Classify maps a justification to its category bucket. A nil or empty
// justification stays unclassified; a phrase outside the table maps to
// CategoryUnknown.
func Classify(justification *string) *string {
	if justification == nil || *justification == "" {
		return nil
	}
	category, ok := categoryByJustification[*justification]
	if !ok {
		category = CategoryUnknown
	}
	return &category
}

// Lookup resolves a single phrase, reporting ErrUnknownJustification when
// it is not in the table.
func Lookup(justification string) (string, error) {
	category, ok := categoryByJustification[justification]
	if !ok {
		return CategoryUnknown, ErrUnknownJustification
	}
	return category, nil
}

// Known returns the closed set of accepted justification phrases, sorted.
func Known() []string {
	phrases := make([]string, 0, len(categoryByJustification))
	for phrase := range categoryByJustification {
		phrases = append(phrases, phrase)
	}
	sort.Strings(phrases)
	return phrases
}
