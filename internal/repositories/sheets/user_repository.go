package sheets

import (
	"context"
	"fmt"

	"github.com/jyoo0515/docuflow/internal/apperrors"
	"github.com/jyoo0515/docuflow/internal/core/domain"
	portsrepo "github.com/jyoo0515/docuflow/internal/core/ports/repositories"
	"github.com/jyoo0515/docuflow/internal/models"
)

// SheetUserRepository maps member rows of the main spreadsheet's Members
// worksheet.
type SheetUserRepository struct {
	store        portsrepo.TabularStore
	mainStoreRef string
}

var _ portsrepo.UserRepositoryFacade = (*SheetUserRepository)(nil)

func NewUserRepository(store portsrepo.TabularStore, mainStoreRef string) *SheetUserRepository {
	return &SheetUserRepository{store: store, mainStoreRef: mainStoreRef}
}

// ensureMembersSheet lazily provisions the Members worksheet with its header.
// Two callers racing here both end up writing the same header row, which is
// idempotent; "sheet already exists" is success, not an error.
func (r *SheetUserRepository) ensureMembersSheet(ctx context.Context) error {
	worksheets, err := r.store.ListWorksheets(ctx, r.mainStoreRef)
	if err != nil {
		return fmt.Errorf("failed to inspect member store: %w", err)
	}
	for _, ws := range worksheets {
		if ws.Title == models.MembersSheetTitle {
			return nil
		}
	}
	if err := r.store.AddWorksheet(ctx, r.mainStoreRef, models.MembersSheetTitle); err != nil {
		return fmt.Errorf("failed to provision members worksheet: %w", err)
	}
	headerRange := fmt.Sprintf("%s!A1:G1", models.MembersSheetTitle)
	if err := r.store.Write(ctx, r.mainStoreRef, headerRange, [][]string{models.MembersHeader}); err != nil {
		return fmt.Errorf("failed to write members header: %w", err)
	}
	return nil
}

func (r *SheetUserRepository) FindUserByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	if err := r.ensureMembersSheet(ctx); err != nil {
		return nil, err
	}
	rows, err := r.store.Read(ctx, r.mainStoreRef, models.MembersReadRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read member rows: %w", err)
	}
	for i := 1; i < len(rows); i++ {
		user := userFromRow(rows[i])
		if user.LoginID == loginID || user.Email == loginID {
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *SheetUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if err := r.ensureMembersSheet(ctx); err != nil {
		return err
	}
	row := []string{
		user.EmployeeCode,
		user.Name,
		user.PersonalStoreRef,
		user.LoginID,
		user.Email,
		user.JoinDate,
		user.CredentialHash,
	}
	if err := r.store.Append(ctx, r.mainStoreRef, models.MembersReadRange, [][]string{row}); err != nil {
		return fmt.Errorf("failed to append member row: %w", err)
	}
	return nil
}

func (r *SheetUserRepository) LastEmployeeCode(ctx context.Context) (string, error) {
	if err := r.ensureMembersSheet(ctx); err != nil {
		return "", err
	}
	codeRange := fmt.Sprintf("%s!A:A", models.MembersSheetTitle)
	rows, err := r.store.Read(ctx, r.mainStoreRef, codeRange)
	if err != nil {
		return "", fmt.Errorf("failed to read employee codes: %w", err)
	}
	last := ""
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) > 0 && rows[i][0] != "" {
			last = rows[i][0]
		}
	}
	return last, nil
}

func (r *SheetUserRepository) UpdatePersonalStoreRef(ctx context.Context, loginID, storeRef string) error {
	rows, err := r.store.Read(ctx, r.mainStoreRef, models.MembersReadRange)
	if err != nil {
		return fmt.Errorf("failed to read member rows: %w", err)
	}
	for i := 1; i < len(rows); i++ {
		if cellAt(rows[i], models.MemberColLoginID) == loginID {
			cellRange := fmt.Sprintf("%s!C%d", models.MembersSheetTitle, i+1)
			if err := r.store.Write(ctx, r.mainStoreRef, cellRange, [][]string{{storeRef}}); err != nil {
				return fmt.Errorf("failed to update personal store ref: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("member %s: %w", loginID, apperrors.ErrNotFound)
}

func (r *SheetUserRepository) FindUserNameByStoreRef(ctx context.Context, storeRef string) (string, error) {
	rows, err := r.store.Read(ctx, r.mainStoreRef, models.MembersReadRange)
	if err != nil {
		return "", fmt.Errorf("failed to read member rows: %w", err)
	}
	for i := 1; i < len(rows); i++ {
		if cellAt(rows[i], models.MemberColStoreRef) == storeRef {
			return cellAt(rows[i], models.MemberColName), nil
		}
	}
	return "", apperrors.ErrNotFound
}

func userFromRow(row []string) domain.User {
	return domain.User{
		EmployeeCode:     cellAt(row, models.MemberColEmployeeCode),
		Name:             cellAt(row, models.MemberColName),
		PersonalStoreRef: cellAt(row, models.MemberColStoreRef),
		LoginID:          cellAt(row, models.MemberColLoginID),
		Email:            cellAt(row, models.MemberColEmail),
		JoinDate:         cellAt(row, models.MemberColJoinDate),
		CredentialHash:   cellAt(row, models.MemberColCredHash),
	}
}

// cellAt reads a cell from a row slice, tolerating short rows: the store
// omits trailing empty cells.
func cellAt(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
