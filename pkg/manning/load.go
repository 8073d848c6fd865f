package manning

import (
	"path/filepath"

	"github.com/ukaji3/manning-go/pkg/manning/models"
	"github.com/ukaji3/manning-go/pkg/manning/parser"
)

// Load opens a schedule workbook and extracts today's roster from its first sheet.
func Load(path string, opts Options) (*models.LoadResult, error) {
	wb, err := parser.OpenWorkbook(path)
	if err != nil {
		return nil, NewFileOpenError(path, err)
	}
	defer wb.Close()

	res, err := LoadWorkbook(wb, opts)
	if err != nil {
		return nil, err
	}
	res.BookName = filepath.Base(path)
	return res, nil
}

// LoadWorkbook extracts today's roster from the first sheet of an opened workbook.
func LoadWorkbook(wb parser.Workbook, opts Options) (*models.LoadResult, error) {
	sheets := wb.SheetNames()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}
	sheetName := sheets[0]

	grid, err := wb.Grid(sheetName)
	if err != nil {
		return nil, NewSheetReadError(sheetName, err)
	}

	today := opts.today()
	month, day := int(today.Month()), today.Day()
	pos, ok := parser.LocateDate(grid, month, day)
	if !ok {
		return nil, &DateNotFoundError{SheetName: sheetName, Month: month, Day: day}
	}

	return &models.LoadResult{
		Sheet:       sheetName,
		Today:       today,
		Position:    pos,
		Assignments: parser.ExtractAssignments(grid, pos, opts.shifts()),
	}, nil
}
