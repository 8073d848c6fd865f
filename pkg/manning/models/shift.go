package models

import "strings"

// Shift identifies one of the four daily work periods.
type Shift int

const (
	// ShiftEarly is the early shift (早番).
	ShiftEarly Shift = iota
	// ShiftDay is the day shift (日勤).
	ShiftDay
	// ShiftLate is the late shift (遅番).
	ShiftLate
	// ShiftNight is the night shift (夜勤).
	ShiftNight
)

// ShiftCount is the number of shift categories.
const ShiftCount = 4

// Shifts lists the categories in classification order.
var Shifts = [ShiftCount]Shift{ShiftEarly, ShiftDay, ShiftLate, ShiftNight}

// ShiftRule pairs a display label with the keyword looked for in shift-marker cells.
type ShiftRule struct {
	Label   string `json:"label" yaml:"label"`
	Keyword string `json:"keyword" yaml:"keyword"`
}

// DefaultShiftRules returns the labels and keywords of the reference locale.
func DefaultShiftRules() []ShiftRule {
	return []ShiftRule{
		{Label: "早番", Keyword: "早"},
		{Label: "日勤", Keyword: "日"},
		{Label: "遅番", Keyword: "遅"},
		{Label: "夜勤", Keyword: "夜"},
	}
}

// String returns the default label of the shift.
func (s Shift) String() string {
	if s < 0 || int(s) >= ShiftCount {
		return "unknown"
	}
	return DefaultShiftRules()[s].Label
}

// Assignments holds the names collected for each shift, in sheet order.
type Assignments [ShiftCount][]string

// Count returns the total number of collected names.
func (a Assignments) Count() int {
	n := 0
	for _, names := range a {
		n += len(names)
	}
	return n
}

// DefaultSeparator joins several names in one roster slot.
const DefaultSeparator = "、"

// Roster is the editable staff text for each shift.
type Roster [ShiftCount]string

// Apply returns r with every shift that has collected names replaced by those
// names joined with sep. Shifts with no names keep their current value.
func (r Roster) Apply(a Assignments, sep string) Roster {
	for i, names := range a {
		if len(names) == 0 {
			continue
		}
		r[i] = strings.Join(names, sep)
	}
	return r
}

// Vacancies counts the shifts with no staff entered.
func (r Roster) Vacancies() int {
	n := 0
	for _, v := range r {
		if v == "" {
			n++
		}
	}
	return n
}
