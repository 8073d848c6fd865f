// Package models defines data structures for roster extraction.
package models

import (
	"math"
	"strconv"
	"time"
)

// CellKind identifies which variant a Cell holds.
type CellKind int

const (
	// CellEmpty is a blank cell.
	CellEmpty CellKind = iota
	// CellNumber is a numeric cell without date formatting.
	CellNumber
	// CellDate is a cell carrying a date/time value.
	CellDate
	// CellText is a string (or boolean) cell.
	CellText
)

// Cell is a single spreadsheet value. Only the fields matching Kind are meaningful.
type Cell struct {
	Kind CellKind
	// Number holds the value of a CellNumber.
	Number float64
	// Time holds the value of a CellDate.
	Time time.Time
	// Text holds a CellText value, or the display text of a CellDate.
	Text string
}

// EmptyCell returns a blank cell.
func EmptyCell() Cell { return Cell{Kind: CellEmpty} }

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell { return Cell{Kind: CellNumber, Number: v} }

// DateCell returns a date cell. display is how the workbook shows the value.
func DateCell(t time.Time, display string) Cell {
	return Cell{Kind: CellDate, Time: t, Text: display}
}

// TextCell returns a text cell, or an empty cell for "".
func TextCell(s string) Cell {
	if s == "" {
		return EmptyCell()
	}
	return Cell{Kind: CellText, Text: s}
}

// String renders the cell as text.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellDate:
		if c.Text != "" {
			return c.Text
		}
		return c.Time.Format("2006-01-02 15:04:05")
	case CellText:
		return c.Text
	default:
		return ""
	}
}

// Int returns the cell's integer value. Numbers must have no fractional part;
// text must parse as a base-10 integer without surrounding whitespace.
func (c Cell) Int() (int64, bool) {
	switch c.Kind {
	case CellNumber:
		if math.IsInf(c.Number, 0) || math.IsNaN(c.Number) || c.Number != math.Trunc(c.Number) {
			return 0, false
		}
		return int64(c.Number), true
	case CellText:
		i, err := strconv.ParseInt(c.Text, 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// IsEmpty reports whether the cell is blank.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// Grid is an ordered list of rows. Rows may differ in length.
type Grid [][]Cell

// Position is a zero-based cell coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the position one-based, the way a spreadsheet user counts.
func (p Position) String() string {
	return "行:" + strconv.Itoa(p.Row+1) + ", 列:" + strconv.Itoa(p.Col+1)
}
