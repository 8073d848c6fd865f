package models

import "time"

// LoadResult describes a successful roster load from a workbook.
type LoadResult struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheet is the name of the sheet that was scanned.
	Sheet string `json:"sheet"`
	// Today is the date that was searched for.
	Today time.Time `json:"today"`
	// Position is the zero-based location of today's date cell.
	Position Position `json:"position"`
	// Assignments maps each shift to the names found for it.
	Assignments Assignments `json:"assignments"`
}
