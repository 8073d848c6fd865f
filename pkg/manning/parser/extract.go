package parser

import (
	"strings"

	"github.com/ukaji3/manning-go/pkg/manning/models"
)

// weekdayRows is the number of rows between the date row and the first staff row.
const weekdayRows = 1

// ExtractAssignments reads staff rows below the date cell at pos and collects
// each row's name under the first shift whose keyword appears in the row's
// cell in the date column. rules must be in models.Shifts order; extra
// entries are ignored.
func ExtractAssignments(g models.Grid, pos models.Position, rules []models.ShiftRule) models.Assignments {
	var out models.Assignments
	shiftCol := pos.Col

	for r := pos.Row + 1 + weekdayRows; r < len(g); r++ {
		row := g[r]
		if len(row) <= shiftCol {
			continue
		}

		marker := strings.TrimSpace(row[shiftCol].String())
		if marker == "" {
			continue
		}

		name := staffName(row, shiftCol)
		if name == "" {
			continue
		}

		if i, ok := classifyShift(marker, rules); ok {
			out[i] = append(out[i], name)
		}
	}

	return out
}

// staffName returns the leftmost non-blank cell before col.
func staffName(row []models.Cell, col int) string {
	for c := 0; c < col; c++ {
		if v := strings.TrimSpace(row[c].String()); v != "" {
			return v
		}
	}
	return ""
}

func classifyShift(marker string, rules []models.ShiftRule) (int, bool) {
	for i, rule := range rules {
		if i >= models.ShiftCount {
			break
		}
		if rule.Keyword != "" && strings.Contains(marker, rule.Keyword) {
			return i, true
		}
	}
	return 0, false
}
