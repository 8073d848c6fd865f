package parser

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/manning-go/pkg/manning/models"
)

// csvWorkbook exposes a CSV export as a single-sheet workbook named after the file.
type csvWorkbook struct {
	name string
	grid models.Grid
}

func openCSV(path string) (*csvWorkbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, len(records))
	for i, rec := range records {
		cells := make([]models.Cell, len(rec))
		for j, v := range rec {
			if i == 0 && j == 0 {
				v = strings.TrimPrefix(v, "\ufeff")
			}
			cells[j] = parseValue(v)
		}
		grid[i] = cells
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &csvWorkbook{name: name, grid: grid}, nil
}

func (wb *csvWorkbook) SheetNames() []string { return []string{wb.name} }

func (wb *csvWorkbook) Grid(string) (models.Grid, error) { return wb.grid, nil }

func (wb *csvWorkbook) Close() error { return nil }
