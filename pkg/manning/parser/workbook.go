// Package parser reads schedule workbooks into grids and finds today's roster in them.
package parser

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ukaji3/manning-go/pkg/manning/models"
)

// ErrUnsupportedFormat indicates the file extension has no reader.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Workbook is an opened spreadsheet file.
type Workbook interface {
	// SheetNames lists the sheets in workbook order.
	SheetNames() []string
	// Grid reads every row of the named sheet.
	Grid(sheet string) (models.Grid, error)
	// Close releases the underlying file.
	Close() error
}

// Extensions lists the file extensions OpenWorkbook can read.
var Extensions = []string{".xlsx", ".xlsm", ".xltx", ".xltm", ".xls", ".csv"}

// OpenWorkbook opens path with the reader matching its extension.
func OpenWorkbook(path string) (Workbook, error) {
	var (
		wb  Workbook
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		wb, err = openXLSX(path)
	case ".xls":
		wb, err = openXLS(path)
	case ".csv":
		wb, err = openCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	return wb, nil
}

// parseValue types a cell from formats that only carry text.
// Numeric text becomes a number cell; anything else stays text.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.EmptyCell()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return models.NumberCell(f)
	}
	return models.TextCell(s)
}
