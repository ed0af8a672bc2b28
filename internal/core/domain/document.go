package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jyoo0515/docuflow/internal/apperrors"
)

// SignatureRole identifies one of the three signature slots on a document row.
type SignatureRole string

const (
	RoleLeader   SignatureRole = "leader"
	RoleReviewer SignatureRole = "reviewer"
	RoleApprover SignatureRole = "approver"
)

// ParseSignatureRole validates a raw role parameter.
func ParseSignatureRole(raw string) (SignatureRole, error) {
	switch SignatureRole(raw) {
	case RoleLeader, RoleReviewer, RoleApprover:
		return SignatureRole(raw), nil
	}
	return "", apperrors.ErrInvalidRole
}

// SignatureField holds the raw cell text of a signature slot plus the image
// URL derived from it. ImageURL is empty when no image reference could be
// extracted.
type SignatureField struct {
	Raw      string
	ImageURL string
}

// Document is a pending approval stored as a row of a document worksheet.
//
// ID is the (store reference, row offset) pair joined by an underscore. The
// row offset is 0-based and only stable while rows above it are never deleted
// or reordered; Key is the surrogate UUID written into a dedicated column at
// creation time so callers can re-resolve the physical row when needed.
type Document struct {
	ID           string
	StoreRef     string
	RowIndex     int
	Key          string
	Date         string
	Title        string
	Author       string
	Content      string
	TeamLeader   SignatureField
	Reviewer     SignatureField
	Approver     SignatureField
	Completed    bool
	DocumentLink string
}

// DocumentID builds the composite row identity for a document.
func DocumentID(storeRef string, rowIndex int) string {
	return fmt.Sprintf("%s_%d", storeRef, rowIndex)
}

// ParseDocumentID splits a composite document id back into its store
// reference and row offset. The store reference itself may contain
// underscores, so the split happens at the last one.
func ParseDocumentID(id string) (string, int, error) {
	idx := strings.LastIndex(id, "_")
	if idx <= 0 || idx == len(id)-1 {
		return "", 0, fmt.Errorf("malformed document id %q: %w", id, apperrors.ErrValidation)
	}
	rowIndex, err := strconv.Atoi(id[idx+1:])
	if err != nil || rowIndex < 0 {
		return "", 0, fmt.Errorf("malformed document id %q: %w", id, apperrors.ErrValidation)
	}
	return id[:idx], rowIndex, nil
}
