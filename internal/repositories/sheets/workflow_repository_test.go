package sheets_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/jyoo0515/docuflow/internal/core/domain"
	"github.com/jyoo0515/docuflow/internal/models"
	"github.com/jyoo0515/docuflow/internal/repositories/sheets"
)

type WorkflowRepositoryTestSuite struct {
	suite.Suite
	store *fakeStore
	repo  *sheets.SheetWorkflowRepository
}

func (suite *WorkflowRepositoryTestSuite) SetupTest() {
	suite.store = newFakeStore()
	suite.repo = sheets.NewWorkflowRepository(suite.store, dataRef)
}

// writeLedgerCell writes one cell of the data worksheet by 1-based row and
// column.
func (suite *WorkflowRepositoryTestSuite) writeLedgerCell(row, col1 int, v string) {
	cellRange := fmt.Sprintf("%s!%c%d", models.DataSheetTitle, rune('A'+col1-1), row)
	suite.Require().NoError(suite.store.Write(context.Background(), dataRef, cellRange, [][]string{{v}}))
}

func (suite *WorkflowRepositoryTestSuite) TestStoreRef() {
	suite.Equal(dataRef, suite.repo.StoreRef())
}

func (suite *WorkflowRepositoryTestSuite) TestBaseSheetName_SanitizesTitle() {
	suite.writeLedgerCell(5, models.DataColLine1, "Line-2")
	suite.writeLedgerCell(5, models.DataColProduct1, "Choco/Pie")
	suite.writeLedgerCell(5, models.DataColWeight1, "450")
	suite.writeLedgerCell(5, models.DataColExpiry1, "2026*12")
	suite.writeLedgerCell(5, models.DataColLot1, "LOT:9")

	base, err := suite.repo.BaseSheetName(context.Background(), 5)
	suite.Require().NoError(err)
	suite.Equal("Line-2_Choco-Pie_2026-12_LOT-9_450g", base)
}

func (suite *WorkflowRepositoryTestSuite) TestSignatureRoundTrip() {
	ctx := context.Background()

	suite.Require().NoError(suite.repo.WriteSignature(ctx, 3, domain.RoleLeader, driveFileID))

	got, err := suite.repo.SignatureValue(ctx, 3, domain.RoleLeader)
	suite.Require().NoError(err)
	suite.Equal(driveFileID, got)

	// Other roles stay untouched.
	other, err := suite.repo.SignatureValue(ctx, 3, domain.RoleApprover)
	suite.Require().NoError(err)
	suite.Equal("", other)
}

func (suite *WorkflowRepositoryTestSuite) TestSignerName_PerRoleColumns() {
	ctx := context.Background()
	suite.writeLedgerCell(2, 17, "Kim")
	suite.writeLedgerCell(2, 19, "Lee")

	leader, err := suite.repo.SignerName(ctx, 2, domain.RoleLeader)
	suite.Require().NoError(err)
	suite.Equal("Kim", leader)

	reviewer, err := suite.repo.SignerName(ctx, 2, domain.RoleReviewer)
	suite.Require().NoError(err)
	suite.Equal("Lee", reviewer)

	approver, err := suite.repo.SignerName(ctx, 2, domain.RoleApprover)
	suite.Require().NoError(err)
	suite.Equal("", approver)
}

func (suite *WorkflowRepositoryTestSuite) TestUniqueSheetName_TrimsWhitespace() {
	ctx := context.Background()

	suite.Require().NoError(suite.repo.SetUniqueSheetName(ctx, 4, "Line-1_A_B_C_100g"))

	name, err := suite.repo.UniqueSheetName(ctx, 4)
	suite.Require().NoError(err)
	suite.Equal("Line-1_A_B_C_100g", name)
}

func (suite *WorkflowRepositoryTestSuite) TestBoardSourceValues() {
	ctx := context.Background()
	suite.writeLedgerCell(6, models.DataColBoardCopy1, "copied-value")
	suite.writeLedgerCell(6, models.DataColUniqueName1, "Line-1_A_B_C_100g")

	values, err := suite.repo.BoardSourceValues(ctx, 6)
	suite.Require().NoError(err)
	suite.Equal([]string{"copied-value", "Line-1_A_B_C_100g"}, values)
}

func (suite *WorkflowRepositoryTestSuite) TestAppendWorkLogTimestamp_FindsNextSlot() {
	ctx := context.Background()
	sheet := "Line-1_A_B_C_100g"

	suite.Require().NoError(suite.repo.AppendWorkLogTimestamp(ctx, sheet, "2026/03/01 09:00:00"))
	suite.Require().NoError(suite.repo.AppendWorkLogTimestamp(ctx, sheet, "2026/03/01 12:00:00"))

	col := 12 // column M, 0-based
	suite.Equal("2026/03/01 09:00:00", suite.store.cell(dataRef, sheet, models.WorkLogFirstRow-1, col))
	suite.Equal("2026/03/01 12:00:00", suite.store.cell(dataRef, sheet, models.WorkLogFirstRow, col))
}

func TestWorkflowRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowRepositoryTestSuite))
}
