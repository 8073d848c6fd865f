package parser

import (
	"strconv"
	"time"

	"github.com/ukaji3/manning-go/pkg/manning/models"
	"github.com/xuri/excelize/v2"
)

// xlsxWorkbook reads Office Open XML workbooks.
type xlsxWorkbook struct {
	f        *excelize.File
	date1904 bool
	dateFmts map[int]bool
}

func openXLSX(path string) (*xlsxWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return newXLSXWorkbook(f), nil
}

func newXLSXWorkbook(f *excelize.File) *xlsxWorkbook {
	wb := &xlsxWorkbook{f: f, dateFmts: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb
}

func (wb *xlsxWorkbook) SheetNames() []string {
	return wb.f.GetSheetList()
}

func (wb *xlsxWorkbook) Close() error {
	return wb.f.Close()
}

// Grid extracts typed cells from a sheet. Raw values decide the type;
// formatted values are kept as the display text of dates and booleans.
func (wb *xlsxWorkbook) Grid(sheet string) (models.Grid, error) {
	raw, err := wb.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	shown, err := wb.f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, len(raw))
	for rowIdx, row := range raw {
		cells := make([]models.Cell, len(row))
		for colIdx, value := range row {
			if value == "" {
				cells[colIdx] = models.EmptyCell()
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = wb.cellValue(sheet, cellName, value, displayAt(shown, rowIdx, colIdx))
		}
		grid[rowIdx] = cells
	}

	return grid, nil
}

// cellValue types one non-empty cell.
func (wb *xlsxWorkbook) cellValue(sheet, cellName, raw, display string) models.Cell {
	typ, err := wb.f.GetCellType(sheet, cellName)
	if err != nil {
		return models.TextCell(raw)
	}

	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeError:
		return models.TextCell(raw)
	case excelize.CellTypeBool:
		return models.TextCell(display)
	}

	if typ == excelize.CellTypeDate {
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			return models.DateCell(t, display)
		}
	}

	// Numbers and untyped formula results
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.TextCell(raw)
	}
	if typ == excelize.CellTypeDate || wb.isDateStyled(sheet, cellName) {
		if t, err := excelize.ExcelDateToTime(n, wb.date1904); err == nil {
			return models.DateCell(t, display)
		}
	}
	return models.NumberCell(n)
}

func (wb *xlsxWorkbook) isDateStyled(sheet, cellName string) bool {
	styleID, err := wb.f.GetCellStyle(sheet, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := wb.dateFmts[styleID]; ok {
		return isDate
	}
	isDate := false
	if style, err := wb.f.GetStyle(styleID); err == nil {
		isDate = isDateFormat(style.NumFmt, style.CustomNumFmt)
	}
	wb.dateFmts[styleID] = isDate
	return isDate
}

func displayAt(rows [][]string, r, c int) string {
	if r >= len(rows) || c >= len(rows[r]) {
		return ""
	}
	return rows[r][c]
}
