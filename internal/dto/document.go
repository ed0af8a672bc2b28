package dto

import (
	"github.com/jyoo0515/docuflow/internal/core/domain"
)

// SignatureFieldResponse exposes one signature slot: the raw cell text plus
// the image URL derived from it, when one could be extracted.
type SignatureFieldResponse struct {
	Raw      string `json:"raw"`
	ImageURL string `json:"imageURL,omitempty"`
}

type DocumentResponse struct {
	ID           string                 `json:"id"`
	Key          string                 `json:"key,omitempty"`
	Date         string                 `json:"date"`
	Title        string                 `json:"title"`
	Author       string                 `json:"author"`
	Content      string                 `json:"content"`
	TeamLeader   SignatureFieldResponse `json:"teamLeader"`
	Reviewer     SignatureFieldResponse `json:"reviewer"`
	Approver     SignatureFieldResponse `json:"approver"`
	Completed    bool                   `json:"completed"`
	DocumentLink string                 `json:"documentLink,omitempty"`
}

// ListDocumentsResponse wraps the list of pending documents.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

// CreateDocumentRequest defines the data required to append a document row.
type CreateDocumentRequest struct {
	Date    string `json:"date" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Author  string `json:"author" binding:"required"`
	Content string `json:"content"`
}

// DocumentPdfLinkResponse carries the derived export link for a document.
type DocumentPdfLinkResponse struct {
	PdfURL string `json:"pdfURL"`
}

func toSignatureFieldResponse(f domain.SignatureField) SignatureFieldResponse {
	return SignatureFieldResponse{Raw: f.Raw, ImageURL: f.ImageURL}
}

// ToDocumentResponse converts a domain.Document to its response DTO.
func ToDocumentResponse(doc *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:           doc.ID,
		Key:          doc.Key,
		Date:         doc.Date,
		Title:        doc.Title,
		Author:       doc.Author,
		Content:      doc.Content,
		TeamLeader:   toSignatureFieldResponse(doc.TeamLeader),
		Reviewer:     toSignatureFieldResponse(doc.Reviewer),
		Approver:     toSignatureFieldResponse(doc.Approver),
		Completed:    doc.Completed,
		DocumentLink: doc.DocumentLink,
	}
}

// ToListDocumentsResponse converts a slice of domain.Document to its list DTO.
func ToListDocumentsResponse(docs []domain.Document) ListDocumentsResponse {
	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = ToDocumentResponse(&docs[i])
	}
	return ListDocumentsResponse{Documents: responses}
}
