package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/manning-go/pkg/manning/models"
)

func TestLocateDateFirstMatchRowMajor(t *testing.T) {
	g := models.Grid{
		row("勤務表"),
		row(),
		row(nil, nil, nil, "3/14"),
		row(),
		row(),
		row(nil, "3/14"),
	}

	pos, ok := LocateDate(g, 3, 14)
	require.True(t, ok)
	assert.Equal(t, models.Position{Row: 2, Col: 3}, pos)
}

func TestLocateDateLeftmostInRow(t *testing.T) {
	g := models.Grid{
		row("名前", 13, 14, 14),
	}

	pos, ok := LocateDate(g, 7, 14)
	require.True(t, ok)
	assert.Equal(t, models.Position{Row: 0, Col: 2}, pos)
}

func TestLocateDateRules(t *testing.T) {
	tests := []struct {
		name  string
		cell  []models.Cell
		month int
		day   int
		want  bool
	}{
		{"typed date", row(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)), 3, 14, true},
		{"typed date ignores year", row(time.Date(1999, 3, 14, 0, 0, 0, 0, time.UTC)), 3, 14, true},
		{"typed date other day", row(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)), 3, 14, false},
		{"integer day any month", row(14), 11, 14, true},
		{"fractional number", row(14.5), 3, 14, false},
		{"integer text", row("14"), 3, 14, true},
		{"padded text", row(" 14 "), 3, 14, true},
		{"fullwidth digits", row("１４"), 3, 14, true},
		{"month/day", row("3/14"), 3, 14, true},
		{"year/month/day", row("2024/3/14"), 3, 14, true},
		{"fullwidth month/day", row("３/１４"), 3, 14, true},
		{"spaced slashes", row("2024 / 3 / 14"), 3, 14, true},
		{"month/day wrong month", row("4/14"), 3, 14, false},
		{"contains month/day", row("3/14(木)"), 3, 14, true},
		{"contains kanji date", row("3月14日"), 3, 14, true},
		{"contains fullwidth kanji date", row("令和６年３月１４日"), 3, 14, true},
		{"kanji date other day", row("3月15日"), 3, 14, false},
		{"name", row("Sato"), 3, 14, false},
		{"empty", row(nil), 3, 14, false},
		{"malformed slashes", row("a/b/c"), 3, 14, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := LocateDate(models.Grid{tt.cell}, tt.month, tt.day)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestLocateDateIntegerBeforeText(t *testing.T) {
	g := models.Grid{
		row("Sato", 14),
		row("3/14"),
	}

	pos, ok := LocateDate(g, 3, 14)
	require.True(t, ok)
	assert.Equal(t, models.Position{Row: 0, Col: 1}, pos)
}

func TestLocateDateNoMatch(t *testing.T) {
	_, ok := LocateDate(nil, 3, 14)
	assert.False(t, ok)

	_, ok = LocateDate(models.Grid{row("a", "b"), row(1, 2, 3)}, 3, 14)
	assert.False(t, ok)
}
