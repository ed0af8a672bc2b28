package sheets

import (
	"context"
	"fmt"

	"github.com/jyoo0515/docuflow/internal/core/domain"
	portsrepo "github.com/jyoo0515/docuflow/internal/core/ports/repositories"
	"github.com/jyoo0515/docuflow/internal/models"
)

// SheetBoardRepository appends completion cross-references to a downstream
// board spreadsheet. Entries always land on the board's first worksheet.
type SheetBoardRepository struct {
	store portsrepo.TabularStore
}

var _ portsrepo.BoardRepository = (*SheetBoardRepository)(nil)

func NewBoardRepository(store portsrepo.TabularStore) *SheetBoardRepository {
	return &SheetBoardRepository{store: store}
}

func (r *SheetBoardRepository) AppendCompletionEntry(ctx context.Context, boardID string, entry domain.BoardEntry) error {
	worksheets, err := r.store.ListWorksheets(ctx, boardID)
	if err != nil {
		return fmt.Errorf("failed to inspect board %s: %w", boardID, err)
	}
	if len(worksheets) == 0 {
		return fmt.Errorf("board %s has no worksheets", boardID)
	}
	sheetID := worksheets[0].ID

	existing, err := r.store.Read(ctx, boardID, "A:A")
	if err != nil {
		return fmt.Errorf("failed to read board rows: %w", err)
	}
	dstRow := len(existing) + 1

	head := []string{entry.Timestamp.Format("2006/01/02 15:04:05"), entry.DocumentLabel}
	head = append(head, entry.SourceValues...)
	headRange := fmt.Sprintf("A%d:%s%d", dstRow, columnLetter(len(head)), dstRow)
	if err := r.store.Write(ctx, boardID, headRange, [][]string{head}); err != nil {
		return fmt.Errorf("failed to write board entry: %w", err)
	}

	// Signer value is copied by value at append time: a pull-on-read derived
	// field rather than a live cross-store formula.
	cellWrites := []struct {
		col1  int
		value string
	}{
		{models.BoardColSigner1, entry.SignerValue},
		{models.BoardColSourceRow1, fmt.Sprintf("%d", entry.SourceRow)},
		{models.BoardColSnapshot1, entry.SnapshotFileID},
		{models.BoardColAction1, fmt.Sprintf(`=HYPERLINK("%s","")`, entry.ActionURL)},
	}
	for _, w := range cellWrites {
		cellRange := fmt.Sprintf("%s%d", columnLetter(w.col1), dstRow)
		if err := r.store.Write(ctx, boardID, cellRange, [][]string{{w.value}}); err != nil {
			return fmt.Errorf("failed to write board cell %s: %w", cellRange, err)
		}
	}

	checkbox := portsrepo.CellRef{Row: dstRow - 1, Col: models.BoardColCheckbox1 - 1}
	if err := r.store.InsertCheckboxes(ctx, boardID, sheetID, checkbox); err != nil {
		return fmt.Errorf("failed to insert board checkbox: %w", err)
	}
	return nil
}

// columnLetter converts a 1-based column number to its A1-notation letters.
func columnLetter(col int) string {
	letters := ""
	for col > 0 {
		col--
		letters = string(rune('A'+col%26)) + letters
		col /= 26
	}
	return letters
}
