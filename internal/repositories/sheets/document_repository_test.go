package sheets_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/jyoo0515/docuflow/internal/apperrors"
	"github.com/jyoo0515/docuflow/internal/core/domain"
	portsrepo "github.com/jyoo0515/docuflow/internal/core/ports/repositories"
	"github.com/jyoo0515/docuflow/internal/imageref"
	"github.com/jyoo0515/docuflow/internal/models"
	"github.com/jyoo0515/docuflow/internal/repositories/sheets"
)

const personalRef = "personal-spreadsheet"

const driveFileID = "1a2b3c4d5e6f7g8h9i0j1k2l3m4n5o"

// docRow builds a document row with the completion flag and signature cells
// in their physical columns.
func docRow(title, leaderSig, completed string) []string {
	row := make([]string, models.DocColKey+1)
	row[models.DocColDate] = "2026-01-05"
	row[models.DocColTitle] = title
	row[models.DocColAuthor] = "Kim"
	row[models.DocColContent] = "body"
	row[models.DocColLeaderSig] = leaderSig
	row[models.DocColCompleted] = completed
	return row
}

type DocumentRepositoryTestSuite struct {
	suite.Suite
	store *fakeStore
	repo  *sheets.SheetDocumentRepository
}

func (suite *DocumentRepositoryTestSuite) SetupTest() {
	suite.store = newFakeStore()
	extractor := imageref.NewExtractor(slog.Default())
	suite.repo = sheets.NewDocumentRepository(suite.store, extractor)
}

func (suite *DocumentRepositoryTestSuite) TestFindUnsignedDocuments_FiltersAndPreservesOrder() {
	header := make([]string, 1)
	suite.store.seed(personalRef, "", [][]string{
		header,
		docRow("first", "", ""),
		docRow("signed", "", "TRUE"),
		docRow("second", "", "FALSE"),
		docRow("also signed", "", "true"),
		docRow("third", "", ""),
	})
	ctx := context.Background()

	docs, err := suite.repo.FindUnsignedDocuments(ctx, personalRef, false)
	suite.Require().NoError(err)
	suite.Require().Len(docs, 3)
	suite.Equal("first", docs[0].Title)
	suite.Equal("second", docs[1].Title)
	suite.Equal("third", docs[2].Title)
	suite.Equal(domain.DocumentID(personalRef, 1), docs[0].ID)
	suite.Equal(domain.DocumentID(personalRef, 5), docs[2].ID)
	suite.False(docs[0].Completed)
}

func (suite *DocumentRepositoryTestSuite) TestFindUnsignedDocuments_BatchImageExtraction() {
	suite.store.seed(personalRef, "", [][]string{
		make([]string, 1),
		docRow("pending", "Kim", ""),
	})
	// The raw cell holds a bare name; only the grid metadata carries the
	// image reference.
	suite.store.seedGridCell(personalRef, 1, models.DocColLeaderSig, portsrepo.GridCell{
		Hyperlink: "https://drive.google.com/file/d/" + driveFileID + "/view",
	})
	ctx := context.Background()

	docs, err := suite.repo.FindUnsignedDocuments(ctx, personalRef, true)
	suite.Require().NoError(err)
	suite.Require().Len(docs, 1)
	suite.Equal("Kim", docs[0].TeamLeader.Raw)
	suite.Equal("https://drive.google.com/thumbnail?id="+driveFileID+"&sz=w200-h100", docs[0].TeamLeader.ImageURL)
	suite.Empty(docs[0].Reviewer.ImageURL)
}

func (suite *DocumentRepositoryTestSuite) TestFindUnsignedDocuments_FallsBackToRawText() {
	suite.store.seed(personalRef, "", [][]string{
		make([]string, 1),
		docRow("pending", "https://cdn.example.com/sig.png", ""),
	})
	ctx := context.Background()

	// No grid metadata seeded; the raw-text matcher must still resolve.
	docs, err := suite.repo.FindUnsignedDocuments(ctx, personalRef, true)
	suite.Require().NoError(err)
	suite.Require().Len(docs, 1)
	suite.Equal("https://cdn.example.com/sig.png", docs[0].TeamLeader.ImageURL)
}

func (suite *DocumentRepositoryTestSuite) TestFindDocumentByID() {
	suite.store.seed(personalRef, "", [][]string{
		make([]string, 1),
		docRow("target", "", ""),
	})
	ctx := context.Background()

	doc, err := suite.repo.FindDocumentByID(ctx, domain.DocumentID(personalRef, 1))
	suite.Require().NoError(err)
	suite.Equal("target", doc.Title)
	suite.Equal(1, doc.RowIndex)

	_, err = suite.repo.FindDocumentByID(ctx, domain.DocumentID(personalRef, 99))
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.repo.FindDocumentByID(ctx, "garbage")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DocumentRepositoryTestSuite) TestMarkCompleted_IsIdempotent() {
	suite.store.seed(personalRef, "", [][]string{
		make([]string, 1),
		docRow("target", "", ""),
	})
	ctx := context.Background()
	id := domain.DocumentID(personalRef, 1)

	suite.Require().NoError(suite.repo.MarkCompleted(ctx, id))
	suite.Equal("TRUE", suite.store.cell(personalRef, "", 1, models.DocColCompleted))

	suite.Require().NoError(suite.repo.MarkCompleted(ctx, id))
	suite.Equal("TRUE", suite.store.cell(personalRef, "", 1, models.DocColCompleted))
}

func (suite *DocumentRepositoryTestSuite) TestAppendDocument_GeneratesKey() {
	suite.store.seed(personalRef, "", [][]string{
		make([]string, 1),
		docRow("existing", "", ""),
	})
	ctx := context.Background()

	created, err := suite.repo.AppendDocument(ctx, personalRef, domain.Document{
		Date:   "2026-03-01",
		Title:  "new doc",
		Author: "Lee",
	})
	suite.Require().NoError(err)
	suite.Equal(2, created.RowIndex)
	suite.Equal(domain.DocumentID(personalRef, 2), created.ID)
	suite.NotEmpty(created.Key)
	suite.Equal(created.Key, suite.store.cell(personalRef, "", 2, models.DocColKey))

	// The key column re-resolves the physical row.
	row, err := suite.repo.ResolveRowByKey(ctx, personalRef, created.Key)
	suite.Require().NoError(err)
	suite.Equal(2, row)
}

func (suite *DocumentRepositoryTestSuite) TestResolveRowByKey_Miss() {
	suite.store.seed(personalRef, "", [][]string{make([]string, 1)})
	ctx := context.Background()

	_, err := suite.repo.ResolveRowByKey(ctx, personalRef, "no-such-key")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestDocumentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentRepositoryTestSuite))
}
