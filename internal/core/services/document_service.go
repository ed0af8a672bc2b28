package services

import (
	"context"
	"fmt"
	"regexp"

	portsrepo "github.com/jyoo0515/docuflow/internal/core/ports/repositories"
	portssvc "github.com/jyoo0515/docuflow/internal/core/ports/services"

	"github.com/jyoo0515/docuflow/internal/core/domain"
	"github.com/jyoo0515/docuflow/internal/middleware"
	"github.com/jyoo0515/docuflow/internal/utils"
)

// storeRefFromLinkPattern pulls the spreadsheet id out of a document link.
var storeRefFromLinkPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// DocumentService exposes the document ledger of members' personal
// spreadsheets.
type DocumentService struct {
	docRepo      portsrepo.DocumentRepositoryFacade
	notification portssvc.NotificationSvc
	posthog      *utils.PosthogClientWrapper
}

var _ portssvc.DocumentSvcFacade = (*DocumentService)(nil)

func NewDocumentService(docRepo portsrepo.DocumentRepositoryFacade, notification portssvc.NotificationSvc, posthog *utils.PosthogClientWrapper) *DocumentService {
	return &DocumentService{
		docRepo:      docRepo,
		notification: notification,
		posthog:      posthog,
	}
}

func (s *DocumentService) ListUnsigned(ctx context.Context, storeRef string, extractImages bool) ([]domain.Document, error) {
	docs, err := s.docRepo.FindUnsignedDocuments(ctx, storeRef, extractImages)
	if err != nil {
		return nil, fmt.Errorf("failed to list unsigned documents: %w", err)
	}
	return docs, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := s.docRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", documentID, err)
	}
	return doc, nil
}

func (s *DocumentService) CreateDocument(ctx context.Context, storeRef string, doc domain.Document) (*domain.Document, error) {
	created, err := s.docRepo.AppendDocument(ctx, storeRef, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return created, nil
}

func (s *DocumentService) SignDocument(ctx context.Context, documentID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	storeRef, rowIndex, err := domain.ParseDocumentID(documentID)
	if err != nil {
		return err
	}

	if err := s.docRepo.MarkCompleted(ctx, documentID); err != nil {
		return fmt.Errorf("failed to mark document completed: %w", err)
	}

	// Row numbers on the wire are 1-based.
	if err := s.notification.NotifyCompletion(ctx, storeRef, rowIndex+1); err != nil {
		logger.Warn("Completion notification failed", "document_id", documentID, "error", err)
	}

	if userID, ok := middleware.GetUserIDFromCtx(ctx); ok && s.posthog != nil {
		s.posthog.Enqueue(userID, "document_signed", map[string]any{"document_id": documentID})
	}

	logger.Info("Document signed", "document_id", documentID)
	return nil
}

func (s *DocumentService) DocumentPdfLink(ctx context.Context, documentID string) (string, error) {
	doc, err := s.docRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return "", fmt.Errorf("failed to get document %s: %w", documentID, err)
	}
	if doc.DocumentLink == "" {
		return "", nil
	}
	m := storeRefFromLinkPattern.FindStringSubmatch(doc.DocumentLink)
	if m == nil {
		return "", nil
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=pdf", m[1]), nil
}
