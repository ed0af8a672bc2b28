package sheets_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jyoo0515/docuflow/internal/core/domain"
	"github.com/jyoo0515/docuflow/internal/models"
	"github.com/jyoo0515/docuflow/internal/repositories/sheets"
)

const boardRef = "board-spreadsheet"

type BoardRepositoryTestSuite struct {
	suite.Suite
	store *fakeStore
	repo  *sheets.SheetBoardRepository
}

func (suite *BoardRepositoryTestSuite) SetupTest() {
	suite.store = newFakeStore()
	suite.repo = sheets.NewBoardRepository(suite.store)
	suite.store.seed(boardRef, "", [][]string{
		{"Timestamp", "Label"},
		{"2026/02/01 10:00:00", "docuflow"},
	})
}

func (suite *BoardRepositoryTestSuite) TestAppendCompletionEntry() {
	ctx := context.Background()
	entry := domain.BoardEntry{
		Timestamp:      time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		DocumentLabel:  "docuflow",
		SourceValues:   []string{"copied-value", "Line-1_A_B_C_100g"},
		SourceRow:      7,
		SnapshotFileID: "snapshot-file-id",
		SignerValue:    driveFileID,
		ActionURL:      "https://script.example.com/exec?role=leader&row=7",
	}

	suite.Require().NoError(suite.repo.AppendCompletionEntry(ctx, boardRef, entry))

	// Entry lands on the row after the existing ones.
	row := 2
	suite.Equal("2026/03/01 09:30:00", suite.store.cell(boardRef, "", row, 0))
	suite.Equal("docuflow", suite.store.cell(boardRef, "", row, 1))
	suite.Equal("copied-value", suite.store.cell(boardRef, "", row, 2))
	suite.Equal("Line-1_A_B_C_100g", suite.store.cell(boardRef, "", row, 3))
	suite.Equal(driveFileID, suite.store.cell(boardRef, "", row, models.BoardColSigner1-1))
	suite.Equal("7", suite.store.cell(boardRef, "", row, models.BoardColSourceRow1-1))
	suite.Equal("snapshot-file-id", suite.store.cell(boardRef, "", row, models.BoardColSnapshot1-1))
	suite.Equal(`=HYPERLINK("https://script.example.com/exec?role=leader&row=7","")`,
		suite.store.cell(boardRef, "", row, models.BoardColAction1-1))

	// Checkbox validation applied to the new row's checkbox column.
	suite.Require().Len(suite.store.checkboxes[boardRef], 1)
	suite.Equal(row, suite.store.checkboxes[boardRef][0].Row)
	suite.Equal(models.BoardColCheckbox1-1, suite.store.checkboxes[boardRef][0].Col)
}

func (suite *BoardRepositoryTestSuite) TestAppendCompletionEntry_NoWorksheets() {
	ctx := context.Background()

	err := suite.repo.AppendCompletionEntry(ctx, "empty-board", domain.BoardEntry{Timestamp: time.Now()})
	suite.Error(err)
}

func TestBoardRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BoardRepositoryTestSuite))
}
