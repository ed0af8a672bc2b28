package repositories

import (
	"context"

	"github.com/jyoo0515/docuflow/internal/core/domain"
)

// CellRef addresses a single cell by 0-based row and column offsets.
type CellRef struct {
	Row int
	Col int
}

// GridCell carries the metadata variants of a cell value returned by a grid
// read. Any of the fields may be empty.
type GridCell struct {
	Effective string
	Entered   string
	Hyperlink string
	LinkURIs  []string
}

// TabularStore is the narrow contract the engine requires from the remote
// spreadsheet-like service: rectangular range reads/writes, row appends and a
// handful of schema mutations. Calls are synchronous remote calls with no
// transaction support and are NOT retried here; retry policy belongs to
// callers.
type TabularStore interface {
	// Read returns the values of a rectangular range. Missing trailing cells
	// are absent from the returned rows.
	Read(ctx context.Context, storeRef, readRange string) ([][]string, error)

	// Write overwrites a rectangular range.
	Write(ctx context.Context, storeRef, writeRange string, rows [][]string) error

	// Append adds rows after the last non-empty row of the range's table.
	Append(ctx context.Context, storeRef, appendRange string, rows [][]string) error

	// AddWorksheet creates a worksheet with the given title. A concurrent or
	// prior creation of the same title is treated as success.
	AddWorksheet(ctx context.Context, storeRef, title string) error

	// ListWorksheets returns all worksheets of the spreadsheet in tab order.
	ListWorksheets(ctx context.Context, storeRef string) ([]domain.WorksheetInfo, error)

	// DeleteWorksheet removes a worksheet by its sheet id.
	DeleteWorksheet(ctx context.Context, storeRef string, sheetID int64) error

	// DuplicateWorksheet copies an existing worksheet under a new title.
	DuplicateWorksheet(ctx context.Context, storeRef string, sourceSheetID int64, newTitle string) error

	// InsertCheckboxes applies a boolean-checkbox data validation rule to a
	// single cell.
	InsertCheckboxes(ctx context.Context, storeRef string, sheetID int64, cell CellRef) error

	// ReadGridCells fetches cell metadata (effective value, entered value,
	// hyperlink, embedded link runs) for the given cells in one round trip.
	// Keys of the returned map are "<row>_<col>" with 0-based offsets.
	ReadGridCells(ctx context.Context, storeRef string, cells []CellRef) (map[string]GridCell, error)
}
