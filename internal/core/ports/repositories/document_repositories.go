package repositories

import (
	"context"

	"github.com/jyoo0515/docuflow/internal/core/domain"
)

// DocumentReader defines read operations for document rows.
type DocumentReader interface {
	// FindUnsignedDocuments returns all rows whose completion flag is not
	// truthy, preserving original row order. When extractImages is set, the
	// three signature cells of every filtered row are resolved in one batched
	// grid read before falling back to per-cell text matching.
	FindUnsignedDocuments(ctx context.Context, storeRef string, extractImages bool) ([]domain.Document, error)

	// FindDocumentByID reads the single row addressed by a composite id.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// ResolveRowByKey scans the surrogate-key column for the given key and
	// returns the current 0-based row offset, decoupling document identity
	// from physical row position.
	ResolveRowByKey(ctx context.Context, storeRef, key string) (int, error)
}

// DocumentWriter defines write operations for document rows.
type DocumentWriter interface {
	// MarkCompleted writes TRUE into the completion cell of the identified
	// row. Writing TRUE twice is a state-wise no-op.
	MarkCompleted(ctx context.Context, documentID string) error

	// AppendDocument appends a new document row with a generated surrogate
	// key and returns the stored document.
	AppendDocument(ctx context.Context, storeRef string, doc domain.Document) (*domain.Document, error)
}

// DocumentRepositoryFacade combines all document repository interfaces.
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
