package services

import (
	"context"

	"github.com/jyoo0515/docuflow/internal/core/domain"
	"github.com/jyoo0515/docuflow/internal/dto"
)

// UserReaderSvc defines read operations for member data.
type UserReaderSvc interface {
	// GetUserByLoginID retrieves a member by login id or email.
	GetUserByLoginID(ctx context.Context, loginID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for member data.
type UserWriterSvc interface {
	// Register creates a new member with a generated employee code. Returns
	// apperrors.ErrDuplicate when the login id or email is already taken.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
}

// UserAuthSvc defines authentication operations.
type UserAuthSvc interface {
	// Authenticate verifies credentials and lazily links the member's
	// personal spreadsheet on first login.
	Authenticate(ctx context.Context, loginID, password string) (*domain.User, error)
}

// UserSvcFacade combines all member service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
