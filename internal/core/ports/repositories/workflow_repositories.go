package repositories

import (
	"context"

	"github.com/jyoo0515/docuflow/internal/core/domain"
)

// WorkflowRepository exposes the cells of one data spreadsheet that the
// signature workflow reads and mutates. Implementations are bound to a single
// spreadsheet; StoreRef identifies it for lock scoping.
type WorkflowRepository interface {
	StoreRef() string

	// SignerName reads the display name recorded in the role's name column.
	SignerName(ctx context.Context, row int, role domain.SignatureRole) (string, error)

	// WriteSignature writes the resolved signature value (or the no-signature
	// sentinel) into the role's signature column.
	WriteSignature(ctx context.Context, row int, role domain.SignatureRole, value string) error

	// SignatureValue reads back the role's signature cell.
	SignatureValue(ctx context.Context, row int, role domain.SignatureRole) (string, error)

	// UniqueSheetName reads the stored working-worksheet name for a row;
	// "" when none is recorded.
	UniqueSheetName(ctx context.Context, row int) (string, error)

	// SetUniqueSheetName records (or clears, with "") the working-worksheet
	// name for a row.
	SetUniqueSheetName(ctx context.Context, row int, name string) error

	// RowTimestamp reads the submission timestamp cell of a row.
	RowTimestamp(ctx context.Context, row int) (string, error)

	// BaseSheetName derives the deterministic base worksheet name from the
	// row's order fields.
	BaseSheetName(ctx context.Context, row int) (string, error)

	// BoardSourceValues reads the source cells copied by value into a board
	// entry.
	BoardSourceValues(ctx context.Context, row int) ([]string, error)

	// ListWorksheets returns the spreadsheet's worksheets in tab order.
	ListWorksheets(ctx context.Context) ([]domain.WorksheetInfo, error)

	// DeleteWorksheet removes a working worksheet.
	DeleteWorksheet(ctx context.Context, sheetID int64) error

	// DuplicateWorksheet copies the source worksheet under a new title.
	DuplicateWorksheet(ctx context.Context, sourceSheetID int64, newTitle string) error

	// AppendWorkLogTimestamp writes a timestamp into the next free slot of a
	// working worksheet's progress log column.
	AppendWorkLogTimestamp(ctx context.Context, sheetName, value string) error
}
