package repositories

import (
	"context"

	"github.com/jyoo0515/docuflow/internal/core/domain"
)

// UserReader defines read operations for member data.
type UserReader interface {
	// FindUserByLoginID scans the member table for a row whose login id OR
	// email equals the given value. Returns apperrors.ErrNotFound on a miss.
	FindUserByLoginID(ctx context.Context, loginID string) (*domain.User, error)

	// LastEmployeeCode returns the last non-empty employee code in the member
	// table, or "" when the table holds no members yet.
	LastEmployeeCode(ctx context.Context) (string, error)

	// FindUserNameByStoreRef resolves a member name from their personal
	// spreadsheet reference.
	FindUserNameByStoreRef(ctx context.Context, storeRef string) (string, error)
}

// UserWriter defines write operations for member data.
type UserWriter interface {
	// SaveUser appends a new member row. Uniqueness of login id and email is
	// not enforced by the store; callers must scan first.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdatePersonalStoreRef links a member to their personal spreadsheet.
	UpdatePersonalStoreRef(ctx context.Context, loginID, storeRef string) error
}

// UserRepositoryFacade combines all member repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
