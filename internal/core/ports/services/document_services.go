package services

import (
	"context"

	"github.com/jyoo0515/docuflow/internal/core/domain"
)

// DocumentSvcFacade exposes the document-ledger operations backed by a
// member's personal spreadsheet.
type DocumentSvcFacade interface {
	// ListUnsigned returns the pending documents of a spreadsheet in original
	// row order.
	ListUnsigned(ctx context.Context, storeRef string, extractImages bool) ([]domain.Document, error)

	// GetDocument reads a single document by composite id.
	GetDocument(ctx context.Context, documentID string) (*domain.Document, error)

	// CreateDocument appends a new document row with a generated surrogate
	// key.
	CreateDocument(ctx context.Context, storeRef string, doc domain.Document) (*domain.Document, error)

	// SignDocument marks the document's completion flag and fires the board
	// webhook. Webhook delivery failure never fails the call.
	SignDocument(ctx context.Context, documentID string) error

	// DocumentPdfLink derives a PDF export link from the document's source
	// artifact link, or "" when none can be derived.
	DocumentPdfLink(ctx context.Context, documentID string) (string, error)
}
