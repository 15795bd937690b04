// internal/models/record_set.go
package models

// RecordSet is an ordered batch of absence records together with its active
// column set. Columns always follow the canonical order; merges take the
// union of both sides and absent values stay null.
type RecordSet struct {
	Columns []string        `json:"columns"`
	Records []AbsenceRecord `json:"records"`
}

func (s *RecordSet) Len() int {
	return len(s.Records)
}

func (s *RecordSet) IsEmpty() bool {
	return len(s.Records) == 0
}

func (s *RecordSet) HasColumn(column string) bool {
	for _, col := range s.Columns {
		if col == column {
			return true
		}
	}
	return false
}

// EnsureColumns activates the given canonical columns, keeping the
// canonical order intact.
func (s *RecordSet) EnsureColumns(columns ...string) {
	active := make(map[string]bool, len(s.Columns)+len(columns))
	for _, col := range s.Columns {
		active[col] = true
	}
	for _, col := range columns {
		active[col] = true
	}
	s.Columns = orderedColumns(active)
}

// Clone returns a deep copy; record structs copy by value.
func (s *RecordSet) Clone() RecordSet {
	out := RecordSet{
		Columns: append([]string(nil), s.Columns...),
		Records: append([]AbsenceRecord(nil), s.Records...),
	}
	return out
}

// Rows renders every record over the active columns, ready for tabular
// display or the flat file.
func (s *RecordSet) Rows() [][]string {
	rows := make([][]string, 0, len(s.Records))
	for i := range s.Records {
		row := make([]string, 0, len(s.Columns))
		for _, col := range s.Columns {
			row = append(row, s.Records[i].Cell(col))
		}
		rows = append(rows, row)
	}
	return rows
}

// UnionColumns merges two active column sets in canonical order.
func UnionColumns(a, b []string) []string {
	active := make(map[string]bool, len(a)+len(b))
	for _, col := range a {
		active[col] = true
	}
	for _, col := range b {
		active[col] = true
	}
	return orderedColumns(active)
}

func orderedColumns(active map[string]bool) []string {
	out := make([]string, 0, len(active))
	for _, col := range CanonicalColumns {
		if active[col] {
			out = append(out, col)
		}
	}
	return out
}
