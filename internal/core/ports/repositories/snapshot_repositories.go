package repositories

import (
	"context"

	"github.com/jyoo0515/docuflow/internal/core/domain"
)

// SnapshotStore generates and manages exported PDF artifacts.
type SnapshotStore interface {
	// ExportWorksheetPDF renders one worksheet of a spreadsheet to PDF with
	// the engine's fixed page and print parameters.
	ExportWorksheetPDF(ctx context.Context, storeRef string, sheetID int64) ([]byte, error)

	// ListBySheetName returns the non-trashed snapshots in the destination
	// folder whose names carry the given resolved worksheet name suffix.
	ListBySheetName(ctx context.Context, folderID, sheetName string) ([]domain.Snapshot, error)

	// Trash moves a snapshot to the trashed state.
	Trash(ctx context.Context, fileID string) error

	// Save stores a new snapshot under the given name and returns its file id.
	Save(ctx context.Context, folderID, name string, pdf []byte) (string, error)
}
