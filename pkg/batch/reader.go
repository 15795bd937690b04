package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"absence-tracker/internal/models"

	"github.com/xuri/excelize/v2"
)

// Read parses an uploaded batch file into a record set, picking the format
// from the file extension. Excel uploads come from the email workflow;
// everything else is treated as CSV.
func Read(filename string, r io.Reader) (models.RecordSet, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return ReadXLSX(r)
	default:
		return ReadCSV(r)
	}
}

// ReadCSV parses a CSV batch. The first row is the header; header cells
// that are not canonical columns are ignored.
func ReadCSV(r io.Reader) (models.RecordSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count

	rows, err := reader.ReadAll()
	if err != nil {
		return models.RecordSet{}, fmt.Errorf("parse CSV batch: %w", err)
	}
	return fromRows(rows)
}

// ReadXLSX parses the first sheet of an Excel batch.
func ReadXLSX(r io.Reader) (models.RecordSet, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return models.RecordSet{}, fmt.Errorf("open Excel batch: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return models.RecordSet{}, fmt.Errorf("Excel batch has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return models.RecordSet{}, fmt.Errorf("read Excel sheet %s: %w", sheets[0], err)
	}
	return fromRows(rows)
}

func fromRows(rows [][]string) (models.RecordSet, error) {
	if len(rows) == 0 {
		return models.RecordSet{}, fmt.Errorf("batch has no header row")
	}

	columnByIndex := make(map[int]string, len(rows[0]))
	var set models.RecordSet
	for i, header := range rows[0] {
		header = strings.TrimSpace(header)
		for _, col := range models.CanonicalColumns {
			if header == col {
				columnByIndex[i] = col
				set.EnsureColumns(col)
				break
			}
		}
	}
	if len(set.Columns) == 0 {
		return models.RecordSet{}, fmt.Errorf("batch header has no recognized columns")
	}

	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		var rec models.AbsenceRecord
		for i, cell := range row {
			if col, ok := columnByIndex[i]; ok {
				rec.SetCell(col, strings.TrimSpace(cell))
			}
		}
		set.Records = append(set.Records, rec)
	}
	return set, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
