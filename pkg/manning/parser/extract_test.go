package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/manning-go/pkg/manning/models"
)

func TestExtractAssignments(t *testing.T) {
	g := models.Grid{
		row("勤務表"),
		row(),
		row("名前", nil, nil, "3/14"),
		row(nil, nil, nil, "木"),
		row("Tanaka", "", "", "早番"),
		row("", "", "", "日勤"),
		row("Suzuki", "", "", "日勤"),
		row("Sato"),
		row(nil, "Ito", nil, " 遅番 "),
		row("Kato", nil, nil, "夜勤"),
		row("Abe", nil, nil, "休"),
		row("Mori", nil, nil, ""),
		row("Ueda", nil, nil, "早日"),
	}
	pos := models.Position{Row: 2, Col: 3}

	got := ExtractAssignments(g, pos, models.DefaultShiftRules())

	want := models.Assignments{
		{"Tanaka", "Ueda"},
		{"Suzuki"},
		{"Ito"},
		{"Kato"},
	}
	assert.Equal(t, want, got)
}

func TestExtractAssignmentsSkipsWeekdayRow(t *testing.T) {
	g := models.Grid{
		row("名前", "3/14"),
		row("Yamada", "早"),
		row("Tanaka", "早"),
	}

	got := ExtractAssignments(g, models.Position{Row: 0, Col: 1}, models.DefaultShiftRules())
	assert.Equal(t, []string{"Tanaka"}, got[models.ShiftEarly])
	assert.Equal(t, 1, got.Count())
}

func TestExtractAssignmentsNothingBelow(t *testing.T) {
	g := models.Grid{
		row("Name", "", "", "Date"),
		row("Tanaka", "", "", "3/14 早番"),
	}

	got := ExtractAssignments(g, models.Position{Row: 1, Col: 3}, models.DefaultShiftRules())
	assert.Zero(t, got.Count())
}

func TestExtractAssignmentsCustomKeywords(t *testing.T) {
	rules := []models.ShiftRule{
		{Label: "Early", Keyword: "E"},
		{Label: "Day", Keyword: "D"},
		{Label: "Late", Keyword: "L"},
		{Label: "Night", Keyword: "N"},
	}
	g := models.Grid{
		row("", "14"),
		row("", "Thu"),
		row("Ann", "N"),
		row("Bob", "D"),
	}

	got := ExtractAssignments(g, models.Position{Row: 0, Col: 1}, rules)
	assert.Equal(t, []string{"Bob"}, got[models.ShiftDay])
	assert.Equal(t, []string{"Ann"}, got[models.ShiftNight])
}
