package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/manning-go/pkg/manning/models"
)

// cellMatcher reports whether a cell stands for the given month and day.
type cellMatcher func(c models.Cell, month, day int) bool

// dateMatchers are tried in order; the first that accepts a cell wins.
var dateMatchers = []cellMatcher{
	matchTypedDate,
	matchIntegerDay,
	matchNormalizedDay,
	matchSlashDate,
	matchContainsDate,
}

// LocateDate scans the grid row by row, left to right, and returns the
// first cell that represents month/day. The bool is false when no cell matches.
func LocateDate(g models.Grid, month, day int) (models.Position, bool) {
	for r, row := range g {
		for c, cell := range row {
			if matchesDate(cell, month, day) {
				return models.Position{Row: r, Col: c}, true
			}
		}
	}
	return models.Position{}, false
}

func matchesDate(c models.Cell, month, day int) bool {
	for _, m := range dateMatchers {
		if m(c, month, day) {
			return true
		}
	}
	return false
}

// matchTypedDate compares month and day of a date-typed cell. The year is ignored
// so templates reused across years still match.
func matchTypedDate(c models.Cell, month, day int) bool {
	if c.Kind != models.CellDate {
		return false
	}
	return int(c.Time.Month()) == month && c.Time.Day() == day
}

// matchIntegerDay treats an integer value as a day of the month.
func matchIntegerDay(c models.Cell, _ int, day int) bool {
	v, ok := c.Int()
	return ok && v == int64(day)
}

func matchNormalizedDay(c models.Cell, _ int, day int) bool {
	v, err := strconv.Atoi(strings.TrimSpace(Normalize(c.String())))
	return err == nil && v == day
}

// matchSlashDate accepts "m/d" and "y/m/d" text.
func matchSlashDate(c models.Cell, month, day int) bool {
	parts := strings.Split(strings.TrimSpace(Normalize(c.String())), "/")
	if len(parts) < 2 {
		return false
	}
	mi, di := 1, 2
	if len(parts) == 2 {
		mi, di = 0, 1
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[mi]))
	if err != nil {
		return false
	}
	d, err := strconv.Atoi(strings.TrimSpace(parts[di]))
	if err != nil {
		return false
	}
	return m == month && d == day
}

func matchContainsDate(c models.Cell, month, day int) bool {
	s := Normalize(c.String())
	return strings.Contains(s, strconv.Itoa(month)+"/"+strconv.Itoa(day)) ||
		strings.Contains(s, strconv.Itoa(month)+"月"+strconv.Itoa(day)+"日")
}
