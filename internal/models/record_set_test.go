package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellAndSetCellRoundTrip(t *testing.T) {
	var rec AbsenceRecord
	rec.SetCell(ColName, "alice")
	rec.SetCell(ColWeek, "18")
	rec.SetCell(ColJustification, "planned leave")
	rec.SetCell(ColDateOfSend, "")

	assert.Equal(t, "alice", rec.Cell(ColName))
	assert.Equal(t, "18", rec.Cell(ColWeek))
	assert.Equal(t, "planned leave", rec.Cell(ColJustification))
	assert.Equal(t, "", rec.Cell(ColDateOfSend))
	assert.Nil(t, rec.DateOfSend)
}

func TestSetCellUnparseableWeekStaysNull(t *testing.T) {
	var rec AbsenceRecord
	rec.SetCell(ColWeek, "S18")
	assert.Nil(t, rec.Week)
}

func TestRowKeyDistinguishesAnnotations(t *testing.T) {
	a := AbsenceRecord{Name: "alice", AbsenceDates: "2024-05-01"}
	b := a
	columns := []string{ColName, ColAbsenceDates, ColJustification}

	assert.Equal(t, a.RowKey(columns), b.RowKey(columns))

	justification := "health absence"
	b.Justification = &justification
	assert.NotEqual(t, a.RowKey(columns), b.RowKey(columns))
}

func TestEnsureColumnsKeepsCanonicalOrder(t *testing.T) {
	set := RecordSet{Columns: []string{ColName, ColJustification}}
	set.EnsureColumns(ColCategory)

	assert.Equal(t, []string{ColName, ColCategory, ColJustification}, set.Columns)

	// Re-ensuring never duplicates.
	set.EnsureColumns(ColCategory)
	assert.Equal(t, []string{ColName, ColCategory, ColJustification}, set.Columns)
}

func TestUnionColumns(t *testing.T) {
	union := UnionColumns(
		[]string{ColName, ColJustification},
		[]string{ColWeek, ColName},
	)
	assert.Equal(t, []string{ColName, ColWeek, ColJustification}, union)
}

func TestRowsRendersActiveColumnsOnly(t *testing.T) {
	week := 18
	set := RecordSet{
		Columns: []string{ColName, ColWeek},
		Records: []AbsenceRecord{{Name: "alice", Week: &week, AbsenceDates: "2024-05-01"}},
	}

	rows := set.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"alice", "18"}, rows[0])
}

func TestCloneIsIndependent(t *testing.T) {
	set := RecordSet{
		Columns: []string{ColName},
		Records: []AbsenceRecord{{Name: "alice"}},
	}

	clone := set.Clone()
	clone.Records[0].Name = "bob"
	clone.Columns[0] = ColEmail

	assert.Equal(t, "alice", set.Records[0].Name)
	assert.Equal(t, ColName, set.Columns[0])
}
