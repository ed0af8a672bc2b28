package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jyoo0515/docuflow/internal/core/domain"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	args := m.Called(ctx, loginID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) LastEmployeeCode(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindUserNameByStoreRef(ctx context.Context, storeRef string) (string, error) {
	args := m.Called(ctx, storeRef)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePersonalStoreRef(ctx context.Context, loginID, storeRef string) error {
	args := m.Called(ctx, loginID, storeRef)
	return args.Error(0)
}

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindUnsignedDocuments(ctx context.Context, storeRef string, extractImages bool) ([]domain.Document, error) {
	args := m.Called(ctx, storeRef, extractImages)
	var docs []domain.Document
	if args.Get(0) != nil {
		docs = args.Get(0).([]domain.Document)
	}
	return docs, args.Error(1)
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	var doc *domain.Document
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.Document)
	}
	return doc, args.Error(1)
}

func (m *MockDocumentRepository) ResolveRowByKey(ctx context.Context, storeRef, key string) (int, error) {
	args := m.Called(ctx, storeRef, key)
	return args.Int(0), args.Error(1)
}

func (m *MockDocumentRepository) MarkCompleted(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

func (m *MockDocumentRepository) AppendDocument(ctx context.Context, storeRef string, doc domain.Document) (*domain.Document, error) {
	args := m.Called(ctx, storeRef, doc)
	var created *domain.Document
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Document)
	}
	return created, args.Error(1)
}

// --- Mock LookupRepository ---
type MockLookupRepository struct {
	mock.Mock
}

func (m *MockLookupRepository) SignatureAssetByName(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockLookupRepository) BoardIDByName(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockLookupRepository) ExecURLByScriptID(ctx context.Context, scriptID string) (string, error) {
	args := m.Called(ctx, scriptID)
	return args.String(0), args.Error(1)
}

func (m *MockLookupRepository) WebhookURLByName(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockLookupRepository) PersonalStoreRefByName(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

// --- Mock BoardRepository ---
type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) AppendCompletionEntry(ctx context.Context, boardID string, entry domain.BoardEntry) error {
	args := m.Called(ctx, boardID, entry)
	return args.Error(0)
}

// --- Mock SnapshotStore ---
type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) ExportWorksheetPDF(ctx context.Context, storeRef string, sheetID int64) ([]byte, error) {
	args := m.Called(ctx, storeRef, sheetID)
	var pdf []byte
	if args.Get(0) != nil {
		pdf = args.Get(0).([]byte)
	}
	return pdf, args.Error(1)
}

func (m *MockSnapshotStore) ListBySheetName(ctx context.Context, folderID, sheetName string) ([]domain.Snapshot, error) {
	args := m.Called(ctx, folderID, sheetName)
	var snaps []domain.Snapshot
	if args.Get(0) != nil {
		snaps = args.Get(0).([]domain.Snapshot)
	}
	return snaps, args.Error(1)
}

func (m *MockSnapshotStore) Trash(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

func (m *MockSnapshotStore) Save(ctx context.Context, folderID, name string, pdf []byte) (string, error) {
	args := m.Called(ctx, folderID, name, pdf)
	return args.String(0), args.Error(1)
}

// --- Mock WorkflowRepository ---
type MockWorkflowRepository struct {
	mock.Mock
	storeRef string
}

func (m *MockWorkflowRepository) StoreRef() string {
	return m.storeRef
}

func (m *MockWorkflowRepository) SignerName(ctx context.Context, row int, role domain.SignatureRole) (string, error) {
	args := m.Called(ctx, row, role)
	return args.String(0), args.Error(1)
}

func (m *MockWorkflowRepository) WriteSignature(ctx context.Context, row int, role domain.SignatureRole, value string) error {
	args := m.Called(ctx, row, role, value)
	return args.Error(0)
}

func (m *MockWorkflowRepository) SignatureValue(ctx context.Context, row int, role domain.SignatureRole) (string, error) {
	args := m.Called(ctx, row, role)
	return args.String(0), args.Error(1)
}

func (m *MockWorkflowRepository) UniqueSheetName(ctx context.Context, row int) (string, error) {
	args := m.Called(ctx, row)
	return args.String(0), args.Error(1)
}

func (m *MockWorkflowRepository) SetUniqueSheetName(ctx context.Context, row int, name string) error {
	args := m.Called(ctx, row, name)
	return args.Error(0)
}

func (m *MockWorkflowRepository) RowTimestamp(ctx context.Context, row int) (string, error) {
	args := m.Called(ctx, row)
	return args.String(0), args.Error(1)
}

func (m *MockWorkflowRepository) BaseSheetName(ctx context.Context, row int) (string, error) {
	args := m.Called(ctx, row)
	return args.String(0), args.Error(1)
}

func (m *MockWorkflowRepository) BoardSourceValues(ctx context.Context, row int) ([]string, error) {
	args := m.Called(ctx, row)
	var values []string
	if args.Get(0) != nil {
		values = args.Get(0).([]string)
	}
	return values, args.Error(1)
}

func (m *MockWorkflowRepository) ListWorksheets(ctx context.Context) ([]domain.WorksheetInfo, error) {
	args := m.Called(ctx)
	var worksheets []domain.WorksheetInfo
	if args.Get(0) != nil {
		worksheets = args.Get(0).([]domain.WorksheetInfo)
	}
	return worksheets, args.Error(1)
}

func (m *MockWorkflowRepository) DeleteWorksheet(ctx context.Context, sheetID int64) error {
	args := m.Called(ctx, sheetID)
	return args.Error(0)
}

func (m *MockWorkflowRepository) DuplicateWorksheet(ctx context.Context, sourceSheetID int64, newTitle string) error {
	args := m.Called(ctx, sourceSheetID, newTitle)
	return args.Error(0)
}

func (m *MockWorkflowRepository) AppendWorkLogTimestamp(ctx context.Context, sheetName, value string) error {
	args := m.Called(ctx, sheetName, value)
	return args.Error(0)
}

// --- Mock NotificationSvc ---
type MockNotificationSvc struct {
	mock.Mock
}

func (m *MockNotificationSvc) NotifyCompletion(ctx context.Context, storeRef string, rowNumber int) error {
	args := m.Called(ctx, storeRef, rowNumber)
	return args.Error(0)
}
