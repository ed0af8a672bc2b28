package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	portsrepo "github.com/jyoo0515/docuflow/internal/core/ports/repositories"
	portssvc "github.com/jyoo0515/docuflow/internal/core/ports/services"

	"github.com/jyoo0515/docuflow/internal/apperrors"
	"github.com/jyoo0515/docuflow/internal/core/domain"
	"github.com/jyoo0515/docuflow/internal/dto"
	"github.com/jyoo0515/docuflow/internal/middleware"
	"github.com/jyoo0515/docuflow/internal/utils"
)

// UserService manages member registration and authentication on top of the
// members worksheet.
type UserService struct {
	userRepo   portsrepo.UserRepositoryFacade
	lookupRepo portsrepo.LookupRepository
	now        func() time.Time
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

func NewUserService(userRepo portsrepo.UserRepositoryFacade, lookupRepo portsrepo.LookupRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		lookupRepo: lookupRepo,
		now:        time.Now,
	}
}

func (s *UserService) GetUserByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByLoginID(ctx, loginID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by login id: %w", err)
	}
	return user, nil
}

func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByLoginID(ctx, req.LoginID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing member: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("login id %s: %w", req.LoginID, apperrors.ErrDuplicate)
	}
	if existing, err = s.userRepo.FindUserByLoginID(ctx, req.Email); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing member: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s: %w", req.Email, apperrors.ErrDuplicate)
	}

	last, err := s.userRepo.LastEmployeeCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read last employee code: %w", err)
	}
	code := utils.NextEmployeeCode(last, s.now())

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		EmployeeCode:   code,
		Name:           req.Name,
		LoginID:        req.LoginID,
		Email:          req.Email,
		JoinDate:       s.now().Format("2006-01-02"),
		CredentialHash: hash,
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save member: %w", err)
	}

	logger.Info("Registered member", "employee_code", code)
	return &user, nil
}

func (s *UserService) Authenticate(ctx context.Context, loginID, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to look up member: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.CredentialHash) {
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrValidation)
	}

	// The personal spreadsheet is linked lazily: the directory row often
	// appears only after the member first registers, so resolve on login
	// until a link is recorded.
	if user.PersonalStoreRef == "" {
		storeRef, err := s.lookupRepo.PersonalStoreRefByName(ctx, user.Name)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Failed to resolve personal spreadsheet", "error", err)
			}
			return user, nil
		}
		if err := s.userRepo.UpdatePersonalStoreRef(ctx, user.LoginID, storeRef); err != nil {
			logger.Warn("Failed to link personal spreadsheet", "error", err)
			return user, nil
		}
		user.PersonalStoreRef = storeRef
		logger.Info("Linked personal spreadsheet", "employee_code", user.EmployeeCode)
	}

	return user, nil
}
