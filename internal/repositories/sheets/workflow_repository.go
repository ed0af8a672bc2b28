package sheets

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jyoo0515/docuflow/internal/core/domain"
	portsrepo "github.com/jyoo0515/docuflow/internal/core/ports/repositories"
	"github.com/jyoo0515/docuflow/internal/models"
)

// roleColumns binds each signature role to its name and signature columns on
// the data worksheet.
var roleColumns = map[domain.SignatureRole]models.RoleColumns{
	domain.RoleLeader:   {Name: 17, Signature: 18},
	domain.RoleReviewer: {Name: 19, Signature: 20},
	domain.RoleApprover: {Name: 21, Signature: 22},
}

// sheetNameSanitizer strips the characters the store rejects in worksheet
// titles.
var sheetNameSanitizer = regexp.MustCompile(`[/\\?%*:|"<>]`)

// SheetWorkflowRepository exposes the workflow's cells on a single data
// spreadsheet.
type SheetWorkflowRepository struct {
	store     portsrepo.TabularStore
	storeRef  string
	dataSheet string
}

var _ portsrepo.WorkflowRepository = (*SheetWorkflowRepository)(nil)

func NewWorkflowRepository(store portsrepo.TabularStore, storeRef string) *SheetWorkflowRepository {
	return &SheetWorkflowRepository{store: store, storeRef: storeRef, dataSheet: models.DataSheetTitle}
}

func (r *SheetWorkflowRepository) StoreRef() string {
	return r.storeRef
}

func (r *SheetWorkflowRepository) SignerName(ctx context.Context, row int, role domain.SignatureRole) (string, error) {
	return r.readCell(ctx, row, roleColumns[role].Name)
}

func (r *SheetWorkflowRepository) WriteSignature(ctx context.Context, row int, role domain.SignatureRole, value string) error {
	return r.writeCell(ctx, row, roleColumns[role].Signature, value)
}

func (r *SheetWorkflowRepository) SignatureValue(ctx context.Context, row int, role domain.SignatureRole) (string, error) {
	return r.readCell(ctx, row, roleColumns[role].Signature)
}

func (r *SheetWorkflowRepository) UniqueSheetName(ctx context.Context, row int) (string, error) {
	name, err := r.readCell(ctx, row, models.DataColUniqueName1)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

func (r *SheetWorkflowRepository) SetUniqueSheetName(ctx context.Context, row int, name string) error {
	return r.writeCell(ctx, row, models.DataColUniqueName1, name)
}

func (r *SheetWorkflowRepository) RowTimestamp(ctx context.Context, row int) (string, error) {
	return r.readCell(ctx, row, models.DataColTimestamp1)
}

// BaseSheetName derives the deterministic working-worksheet base name from
// the row's order fields: line_product_expiry_lot_<weight>g, with characters
// the store rejects replaced by hyphens.
func (r *SheetWorkflowRepository) BaseSheetName(ctx context.Context, row int) (string, error) {
	read := func(col1 int) (string, error) {
		v, err := r.readCell(ctx, row, col1)
		return strings.TrimSpace(v), err
	}
	line, err := read(models.DataColLine1)
	if err != nil {
		return "", err
	}
	product, err := read(models.DataColProduct1)
	if err != nil {
		return "", err
	}
	weight, err := read(models.DataColWeight1)
	if err != nil {
		return "", err
	}
	expiry, err := read(models.DataColExpiry1)
	if err != nil {
		return "", err
	}
	lot, err := read(models.DataColLot1)
	if err != nil {
		return "", err
	}
	base := fmt.Sprintf("%s_%s_%s_%s_%sg", line, product, expiry, lot, weight)
	return sheetNameSanitizer.ReplaceAllString(base, "-"), nil
}

func (r *SheetWorkflowRepository) BoardSourceValues(ctx context.Context, row int) ([]string, error) {
	copied, err := r.readCell(ctx, row, models.DataColBoardCopy1)
	if err != nil {
		return nil, err
	}
	uniqueName, err := r.readCell(ctx, row, models.DataColUniqueName1)
	if err != nil {
		return nil, err
	}
	return []string{copied, uniqueName}, nil
}

func (r *SheetWorkflowRepository) ListWorksheets(ctx context.Context) ([]domain.WorksheetInfo, error) {
	return r.store.ListWorksheets(ctx, r.storeRef)
}

func (r *SheetWorkflowRepository) DeleteWorksheet(ctx context.Context, sheetID int64) error {
	return r.store.DeleteWorksheet(ctx, r.storeRef, sheetID)
}

func (r *SheetWorkflowRepository) DuplicateWorksheet(ctx context.Context, sourceSheetID int64, newTitle string) error {
	return r.store.DuplicateWorksheet(ctx, r.storeRef, sourceSheetID, newTitle)
}

func (r *SheetWorkflowRepository) AppendWorkLogTimestamp(ctx context.Context, sheetName, value string) error {
	logRange := fmt.Sprintf("%s!%s%d:%s", sheetName, models.WorkLogColumn, models.WorkLogFirstRow, models.WorkLogColumn)
	rows, err := r.store.Read(ctx, r.storeRef, logRange)
	if err != nil {
		return fmt.Errorf("failed to read work log of %s: %w", sheetName, err)
	}
	filled := 0
	for _, row := range rows {
		if len(row) > 0 && row[0] != "" {
			filled++
		}
	}
	nextRow := models.WorkLogFirstRow + filled
	cellRange := fmt.Sprintf("%s!%s%d", sheetName, models.WorkLogColumn, nextRow)
	if err := r.store.Write(ctx, r.storeRef, cellRange, [][]string{{value}}); err != nil {
		return fmt.Errorf("failed to append work log timestamp: %w", err)
	}
	return nil
}

func (r *SheetWorkflowRepository) readCell(ctx context.Context, row, col1 int) (string, error) {
	cellRange := fmt.Sprintf("%s!%s%d", r.dataSheet, columnLetter(col1), row)
	rows, err := r.store.Read(ctx, r.storeRef, cellRange)
	if err != nil {
		return "", fmt.Errorf("failed to read cell %s: %w", cellRange, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return "", nil
	}
	return rows[0][0], nil
}

func (r *SheetWorkflowRepository) writeCell(ctx context.Context, row, col1 int, value string) error {
	cellRange := fmt.Sprintf("%s!%s%d", r.dataSheet, columnLetter(col1), row)
	if err := r.store.Write(ctx, r.storeRef, cellRange, [][]string{{value}}); err != nil {
		return fmt.Errorf("failed to write cell %s: %w", cellRange, err)
	}
	return nil
}
