package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jyoo0515/docuflow/internal/apperrors"
	"github.com/jyoo0515/docuflow/internal/core/domain"
	portsrepo "github.com/jyoo0515/docuflow/internal/core/ports/repositories"
	"github.com/jyoo0515/docuflow/internal/imageref"
	"github.com/jyoo0515/docuflow/internal/models"
)

// SheetDocumentRepository maps document rows of a member's personal
// spreadsheet.
type SheetDocumentRepository struct {
	store     portsrepo.TabularStore
	extractor *imageref.Extractor
}

var _ portsrepo.DocumentRepositoryFacade = (*SheetDocumentRepository)(nil)

func NewDocumentRepository(store portsrepo.TabularStore, extractor *imageref.Extractor) *SheetDocumentRepository {
	return &SheetDocumentRepository{store: store, extractor: extractor}
}

func (r *SheetDocumentRepository) FindUnsignedDocuments(ctx context.Context, storeRef string, extractImages bool) ([]domain.Document, error) {
	rows, err := r.store.Read(ctx, storeRef, models.DocumentsReadRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read document rows: %w", err)
	}

	type pending struct {
		index int
		row   []string
	}
	var incomplete []pending
	for i := 1; i < len(rows); i++ {
		if !isTruthy(cellAt(rows[i], models.DocColCompleted)) {
			incomplete = append(incomplete, pending{index: i, row: rows[i]})
		}
	}

	// One grid round trip for all signature cells of all filtered rows,
	// instead of one call per cell.
	var batchImages map[string]string
	if extractImages && len(incomplete) > 0 {
		cells := make([]portsrepo.CellRef, 0, len(incomplete)*3)
		for _, p := range incomplete {
			cells = append(cells,
				portsrepo.CellRef{Row: p.index, Col: models.DocColLeaderSig},
				portsrepo.CellRef{Row: p.index, Col: models.DocColReviewerSig},
				portsrepo.CellRef{Row: p.index, Col: models.DocColApproverSig},
			)
		}
		batchImages = r.extractor.BatchExtract(ctx, r.store, storeRef, cells)
	}

	documents := make([]domain.Document, 0, len(incomplete))
	for _, p := range incomplete {
		documents = append(documents, r.documentFromRow(storeRef, p.index, p.row, batchImages))
	}
	return documents, nil
}

func (r *SheetDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	storeRef, rowIndex, err := domain.ParseDocumentID(documentID)
	if err != nil {
		return nil, err
	}
	rowRange := fmt.Sprintf("A%d:P%d", rowIndex+1, rowIndex+1)
	rows, err := r.store.Read(ctx, storeRef, rowRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read document row: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrNotFound
	}
	doc := r.documentFromRow(storeRef, rowIndex, rows[0], nil)
	return &doc, nil
}

func (r *SheetDocumentRepository) MarkCompleted(ctx context.Context, documentID string) error {
	storeRef, rowIndex, err := domain.ParseDocumentID(documentID)
	if err != nil {
		return err
	}
	cellRange := fmt.Sprintf("%s%d", models.DocCompletedCol1, rowIndex+1)
	if err := r.store.Write(ctx, storeRef, cellRange, [][]string{{"TRUE"}}); err != nil {
		return fmt.Errorf("failed to mark document %s completed: %w", documentID, err)
	}
	return nil
}

func (r *SheetDocumentRepository) AppendDocument(ctx context.Context, storeRef string, doc domain.Document) (*domain.Document, error) {
	existing, err := r.store.Read(ctx, storeRef, models.DocumentsReadRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read document rows: %w", err)
	}

	doc.StoreRef = storeRef
	doc.RowIndex = len(existing)
	doc.ID = domain.DocumentID(storeRef, doc.RowIndex)
	if doc.Key == "" {
		doc.Key = uuid.NewString()
	}

	row := make([]string, models.DocColKey+1)
	row[models.DocColDate] = doc.Date
	row[models.DocColTitle] = doc.Title
	row[models.DocColAuthor] = doc.Author
	row[models.DocColContent] = doc.Content
	row[models.DocColLeaderSig] = doc.TeamLeader.Raw
	row[models.DocColReviewerSig] = doc.Reviewer.Raw
	row[models.DocColApproverSig] = doc.Approver.Raw
	row[models.DocColLink] = doc.DocumentLink
	row[models.DocColKey] = doc.Key

	if err := r.store.Append(ctx, storeRef, models.DocumentsReadRange, [][]string{row}); err != nil {
		return nil, fmt.Errorf("failed to append document row: %w", err)
	}
	return &doc, nil
}

func (r *SheetDocumentRepository) ResolveRowByKey(ctx context.Context, storeRef, key string) (int, error) {
	keyRange := fmt.Sprintf("%s:%s", models.DocKeyCol1, models.DocKeyCol1)
	rows, err := r.store.Read(ctx, storeRef, keyRange)
	if err != nil {
		return 0, fmt.Errorf("failed to read document keys: %w", err)
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) > 0 && rows[i][0] == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("document key %s: %w", key, apperrors.ErrNotFound)
}

func (r *SheetDocumentRepository) documentFromRow(storeRef string, rowIndex int, row []string, batchImages map[string]string) domain.Document {
	sig := func(col int) domain.SignatureField {
		raw := cellAt(row, col)
		url := batchImages[fmt.Sprintf("%d_%d", rowIndex, col)]
		if url == "" {
			url = r.extractor.ExtractURL(raw)
		}
		return domain.SignatureField{Raw: raw, ImageURL: url}
	}
	return domain.Document{
		ID:           domain.DocumentID(storeRef, rowIndex),
		StoreRef:     storeRef,
		RowIndex:     rowIndex,
		Key:          cellAt(row, models.DocColKey),
		Date:         cellAt(row, models.DocColDate),
		Title:        cellAt(row, models.DocColTitle),
		Author:       cellAt(row, models.DocColAuthor),
		Content:      cellAt(row, models.DocColContent),
		TeamLeader:   sig(models.DocColLeaderSig),
		Reviewer:     sig(models.DocColReviewerSig),
		Approver:     sig(models.DocColApproverSig),
		Completed:    isTruthy(cellAt(row, models.DocColCompleted)),
		DocumentLink: cellAt(row, models.DocColLink),
	}
}

func isTruthy(v string) bool {
	return strings.EqualFold(v, "true")
}
