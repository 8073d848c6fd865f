// Package output renders roster load results for the command line.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ukaji3/manning-go/pkg/manning/models"
)

// Vacant is shown for a shift with nobody assigned.
const Vacant = "―"

// RosterView is the serialized form of a loaded roster.
type RosterView struct {
	BookName string `json:"book_name"`
	Sheet    string `json:"sheet"`
	Date     string `json:"date"`
	// Row and Col are one-based, as shown in spreadsheet applications.
	Row    int          `json:"row"`
	Col    int          `json:"col"`
	Shifts []ShiftEntry `json:"shifts"`
}

// ShiftEntry lists the staff of one shift.
type ShiftEntry struct {
	Label string   `json:"label"`
	Staff []string `json:"staff"`
}

// NewRosterView builds the serialized form of res using the given shift labels.
func NewRosterView(res *models.LoadResult, rules []models.ShiftRule) RosterView {
	view := RosterView{
		BookName: res.BookName,
		Sheet:    res.Sheet,
		Date:     res.Today.Format("2006-01-02"),
		Row:      res.Position.Row + 1,
		Col:      res.Position.Col + 1,
	}
	for _, s := range models.Shifts {
		staff := res.Assignments[s]
		if staff == nil {
			staff = []string{}
		}
		view.Shifts = append(view.Shifts, ShiftEntry{Label: label(rules, s), Staff: staff})
	}
	return view
}

// ToJSON serializes a RosterView.
func ToJSON(view RosterView, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}

// ToText renders one "label: names" line per shift, joining names with sep.
func ToText(view RosterView, sep string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (行:%d, 列:%d)\n", view.Date, view.Sheet, view.Row, view.Col)
	for _, e := range view.Shifts {
		names := strings.Join(e.Staff, sep)
		if names == "" {
			names = Vacant
		}
		fmt.Fprintf(&b, "%s: %s\n", e.Label, names)
	}
	return b.String()
}

func label(rules []models.ShiftRule, s models.Shift) string {
	if int(s) < len(rules) && rules[s].Label != "" {
		return rules[s].Label
	}
	return s.String()
}
