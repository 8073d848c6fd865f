package output

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/manning-go/pkg/manning/models"
)

func sampleResult() *models.LoadResult {
	res := &models.LoadResult{
		BookName: "schedule.xlsx",
		Sheet:    "3月",
		Today:    time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		Position: models.Position{Row: 1, Col: 3},
	}
	res.Assignments[models.ShiftEarly] = []string{"Tanaka", "Sato"}
	res.Assignments[models.ShiftNight] = []string{"Kato"}
	return res
}

func TestNewRosterView(t *testing.T) {
	view := NewRosterView(sampleResult(), models.DefaultShiftRules())

	assert.Equal(t, "2024-03-14", view.Date)
	assert.Equal(t, 2, view.Row)
	assert.Equal(t, 4, view.Col)
	require.Len(t, view.Shifts, models.ShiftCount)
	assert.Equal(t, ShiftEntry{Label: "早番", Staff: []string{"Tanaka", "Sato"}}, view.Shifts[0])
	assert.Equal(t, ShiftEntry{Label: "日勤", Staff: []string{}}, view.Shifts[1])
}

func TestToText(t *testing.T) {
	view := NewRosterView(sampleResult(), nil)

	want := "2024-03-14 3月 (行:2, 列:4)\n" +
		"早番: Tanaka、Sato\n" +
		"日勤: ―\n" +
		"遅番: ―\n" +
		"夜勤: Kato\n"
	assert.Equal(t, want, ToText(view, models.DefaultSeparator))
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(NewRosterView(sampleResult(), models.DefaultShiftRules()), false)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "schedule.xlsx", decoded["book_name"])
	assert.EqualValues(t, 2, decoded["row"])

	shifts, ok := decoded["shifts"].([]any)
	require.True(t, ok)
	require.Len(t, shifts, 4)
	late := shifts[2].(map[string]any)
	assert.Equal(t, "遅番", late["label"])
	assert.Equal(t, []any{}, late["staff"])

	pretty, err := ToJSON(NewRosterView(sampleResult(), nil), true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"book_name\"")
}
