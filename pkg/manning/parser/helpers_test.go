package parser

import (
	"fmt"
	"time"

	"github.com/ukaji3/manning-go/pkg/manning/models"
)

// row builds a grid row from plain Go values: nil is empty, strings are text,
// ints and floats are numbers, time.Time is a date.
func row(values ...any) []models.Cell {
	cells := make([]models.Cell, len(values))
	for i, v := range values {
		switch v := v.(type) {
		case nil:
			cells[i] = models.EmptyCell()
		case string:
			cells[i] = models.TextCell(v)
		case int:
			cells[i] = models.NumberCell(float64(v))
		case float64:
			cells[i] = models.NumberCell(v)
		case time.Time:
			cells[i] = models.DateCell(v, v.Format("2006/1/2"))
		default:
			panic(fmt.Sprintf("row: unsupported value %T", v))
		}
	}
	return cells
}
