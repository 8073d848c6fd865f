package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/manning-go/pkg/manning/models"
)

// testdata/roster.xls holds one sheet, 3月:
//
//	row 0: 名前 | 13 as 0"日" | 45365 as m/d | 45366 as built-in format 14
//	row 1:      | 水 | 木 | 金
//	row 2: Tanaka |    | 早番 | 夜
//	row 3: 佐藤   | 日 | 夜勤
//	row 4: =5     | 鈴木 | 遅番
//	row 5: (no record)
//	row 6: 7
func openRosterXLS(t *testing.T) Workbook {
	t.Helper()
	wb, err := OpenWorkbook(filepath.Join("testdata", "roster.xls"))
	require.NoError(t, err)
	t.Cleanup(func() { wb.Close() })
	return wb
}

func TestXLSGrid(t *testing.T) {
	wb := openRosterXLS(t)
	require.Equal(t, []string{"3月"}, wb.SheetNames())

	grid, err := wb.Grid("3月")
	require.NoError(t, err)
	require.Len(t, grid, 7)

	assert.Equal(t, models.TextCell("名前"), grid[0][0])
	assert.Equal(t, models.NumberCell(13), grid[0][1])
	require.Equal(t, models.CellDate, grid[0][2].Kind)
	assert.True(t, grid[0][2].Time.Equal(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)))
	// built-in date formats lose the day
	assert.Equal(t, models.NumberCell(2024.03), grid[0][3])

	assert.Equal(t, models.EmptyCell(), grid[1][0])
	assert.Equal(t, models.EmptyCell(), grid[4][0], "formula cells carry no value")
	assert.Empty(t, grid[5])
	assert.Equal(t, []models.Cell{models.NumberCell(7)}, grid[6])
}

func TestXLSRoster(t *testing.T) {
	wb := openRosterXLS(t)
	grid, err := wb.Grid("3月")
	require.NoError(t, err)

	pos, ok := LocateDate(grid, 3, 14)
	require.True(t, ok)
	assert.Equal(t, models.Position{Row: 0, Col: 2}, pos)

	got := ExtractAssignments(grid, pos, models.DefaultShiftRules())
	assert.Equal(t, []string{"Tanaka"}, got[models.ShiftEarly])
	assert.Empty(t, got[models.ShiftDay])
	assert.Equal(t, []string{"鈴木"}, got[models.ShiftLate])
	assert.Equal(t, []string{"佐藤"}, got[models.ShiftNight])

	pos, ok = LocateDate(grid, 3, 13)
	require.True(t, ok)
	assert.Equal(t, models.Position{Row: 0, Col: 1}, pos)

	_, ok = LocateDate(grid, 3, 15)
	assert.False(t, ok)
}

func TestXLSValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected models.Cell
	}{
		{"formula", "FormulaCol", models.EmptyCell()},
		{"day styled as a custom number", "1900-01-13T00:00:00Z", models.NumberCell(14)},
		{"serial zero", "1899-12-30T00:00:00Z", models.NumberCell(0)},
		{"last small serial", "1900-02-28T00:00:00Z", models.NumberCell(60)},
		{"built-in date", "2024.03", models.NumberCell(2024.03)},
		{"text", "早番", models.TextCell("早番")},
		{"empty", "", models.EmptyCell()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, xlsValue(tt.input))
		})
	}
}

func TestXLSValueCustomDate(t *testing.T) {
	cell := xlsValue("2024-03-14T00:00:00Z")
	require.Equal(t, models.CellDate, cell.Kind)
	assert.Equal(t, "2024/3/14", cell.String())

	pos, ok := LocateDate(models.Grid{{cell}}, 3, 14)
	require.True(t, ok)
	assert.Equal(t, models.Position{}, pos)
}
