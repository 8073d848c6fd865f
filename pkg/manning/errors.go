package manning

import (
	"errors"
	"fmt"
)

// ErrNoSheet indicates the workbook has no sheets.
var ErrNoSheet = errors.New("no sheet found in workbook")

// FileOpenError indicates the input could not be opened as a workbook.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("open workbook %q: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// NewFileOpenError creates a new FileOpenError.
func NewFileOpenError(path string, err error) *FileOpenError {
	return &FileOpenError{Path: path, Err: err}
}

// SheetReadError indicates a sheet could not be read into a grid.
type SheetReadError struct {
	SheetName string
	Err       error
}

func (e *SheetReadError) Error() string {
	return fmt.Sprintf("read sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetReadError) Unwrap() error {
	return e.Err
}

// NewSheetReadError creates a new SheetReadError.
func NewSheetReadError(sheetName string, err error) *SheetReadError {
	return &SheetReadError{SheetName: sheetName, Err: err}
}

// DateNotFoundError indicates no cell in the sheet matched the searched date.
type DateNotFoundError struct {
	SheetName string
	Month     int
	Day       int
}

func (e *DateNotFoundError) Error() string {
	return fmt.Sprintf("no cell for %d/%d in sheet %q", e.Month, e.Day, e.SheetName)
}
