package parser

import (
	"fmt"
	"os"
	"time"

	"github.com/extrame/xls"
	"github.com/ukaji3/manning-go/pkg/manning/models"
)

const (
	// xlsCharset is used to decode legacy BIFF strings.
	xlsCharset = "utf-8"
	// xlsFormula is what the reader returns for every formula cell.
	xlsFormula = "FormulaCol"
)

var (
	// xlsEpoch is serial day zero in the 1900 date system.
	xlsEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	// xlsSmallSerials ends the range of serials 0 to 60.
	xlsSmallSerials = time.Date(1900, 3, 1, 0, 0, 0, 0, time.UTC)
)

// xlsWorkbook reads legacy Excel 97-2003 workbooks.
// Sheets are parsed lazily from the open file, so it stays open until Close.
type xlsWorkbook struct {
	file *os.File
	book *xls.WorkBook
}

func openXLS(path string) (wb *xlsWorkbook, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			f.Close()
			wb, err = nil, fmt.Errorf("invalid xls file: %v", r)
		}
	}()

	book, err := xls.OpenReader(f, xlsCharset)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &xlsWorkbook{file: f, book: book}, nil
}

func (wb *xlsWorkbook) SheetNames() []string {
	var names []string
	for i := 0; i < wb.book.NumSheets(); i++ {
		if sheet := wb.book.GetSheet(i); sheet != nil {
			names = append(names, sheet.Name)
		}
	}
	return names
}

func (wb *xlsWorkbook) Close() error {
	return wb.file.Close()
}

// Grid reads a sheet. BIFF values arrive as text, so cells are typed by xlsValue.
func (wb *xlsWorkbook) Grid(sheet string) (grid models.Grid, err error) {
	defer func() {
		if r := recover(); r != nil {
			grid, err = nil, fmt.Errorf("read xls sheet %q: %v", sheet, r)
		}
	}()

	ws := wb.sheet(sheet)
	if ws == nil {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}

	grid = make(models.Grid, int(ws.MaxRow)+1)
	for r := 0; r <= int(ws.MaxRow); r++ {
		row := xlsRow(ws, r)
		if row == nil {
			continue
		}
		cells := make([]models.Cell, row.LastCol())
		for c := range cells {
			cells[c] = xlsValue(row.Col(c))
		}
		grid[r] = cells
	}
	return grid, nil
}

func (wb *xlsWorkbook) sheet(name string) *xls.WorkSheet {
	for i := 0; i < wb.book.NumSheets(); i++ {
		if ws := wb.book.GetSheet(i); ws != nil && ws.Name == name {
			return ws
		}
	}
	return nil
}

// xlsRow returns row r, or nil when the sheet has no record for it.
func xlsRow(ws *xls.WorkSheet, r int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(r)
}

// xlsValue types a cell string from the xls reader.
//
// Numbers with a custom format arrive as RFC 3339 times. Those before
// 1900-03-01 are small numbers such as a day styled 0"日", so they are turned
// back into their serial. Numbers with a built-in date format arrive as
// "2006.01" and keep only the year and month.
func xlsValue(s string) models.Cell {
	if s == xlsFormula {
		return models.EmptyCell()
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		if t.Before(xlsSmallSerials) {
			return models.NumberCell(t.Sub(xlsEpoch).Hours() / 24)
		}
		return models.DateCell(t, t.Format("2006/1/2"))
	}
	return parseValue(s)
}
