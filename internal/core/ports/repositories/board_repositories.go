package repositories

import (
	"context"

	"github.com/jyoo0515/docuflow/internal/core/domain"
)

// BoardRepository appends cross-reference entries to a downstream board
// spreadsheet.
type BoardRepository interface {
	AppendCompletionEntry(ctx context.Context, boardID string, entry domain.BoardEntry) error
}
