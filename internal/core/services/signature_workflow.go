package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	portsrepo "github.com/jyoo0515/docuflow/internal/core/ports/repositories"
	portssvc "github.com/jyoo0515/docuflow/internal/core/ports/services"

	"github.com/jyoo0515/docuflow/internal/apperrors"
	"github.com/jyoo0515/docuflow/internal/core/domain"
	"github.com/jyoo0515/docuflow/internal/locking"
	"github.com/jyoo0515/docuflow/internal/middleware"
	"github.com/jyoo0515/docuflow/internal/models"
)

// noSignatureValue is written into the signature cell when the signer has no
// registered signature asset. The cell must still flip to a non-empty value
// so the row reads as signed.
const noSignatureValue = "no signature"

// SignatureWorkflowService runs signature-completion jobs against the single
// data spreadsheet it is bound to. All mutations happen under the
// spreadsheet's keyed lock: the remote store has no transactions, so the lock
// is the only thing keeping snapshot generation and worksheet cleanup from
// interleaving.
type SignatureWorkflowService struct {
	repo          portsrepo.WorkflowRepository
	lookupRepo    portsrepo.LookupRepository
	boardRepo     portsrepo.BoardRepository
	snapshots     portsrepo.SnapshotStore
	lock          *locking.KeyedLock
	lockWait      time.Duration
	pdfFolderID   string
	scriptID      string
	documentLabel string
	now           func() time.Time
}

var _ portssvc.SignatureWorkflowSvc = (*SignatureWorkflowService)(nil)

func NewSignatureWorkflowService(
	repo portsrepo.WorkflowRepository,
	lookupRepo portsrepo.LookupRepository,
	boardRepo portsrepo.BoardRepository,
	snapshots portsrepo.SnapshotStore,
	lock *locking.KeyedLock,
	lockWait time.Duration,
	pdfFolderID string,
	scriptID string,
	documentLabel string,
) *SignatureWorkflowService {
	return &SignatureWorkflowService{
		repo:          repo,
		lookupRepo:    lookupRepo,
		boardRepo:     boardRepo,
		snapshots:     snapshots,
		lock:          lock,
		lockWait:      lockWait,
		pdfFolderID:   pdfFolderID,
		scriptID:      scriptID,
		documentLabel: documentLabel,
		now:           time.Now,
	}
}

// Complete runs one signature-completion job and maps every outcome to a
// short status string. Parameter and role validation happen before the lock
// is touched; a bad request must not burn anyone's lock wait.
func (s *SignatureWorkflowService) Complete(ctx context.Context, role string, row int) string {
	logger := middleware.GetLoggerFromCtx(ctx)

	if row <= 0 {
		return portssvc.StatusParamErr
	}
	parsedRole, err := domain.ParseSignatureRole(role)
	if err != nil {
		return portssvc.StatusInvalidRole
	}

	job := domain.WorkflowJob{
		StoreRef:  s.repo.StoreRef(),
		Row:       row,
		Role:      parsedRole,
		State:     domain.StatePending,
		StartedAt: s.now(),
	}

	release, err := s.lock.Acquire(ctx, job.StoreRef, s.lockWait)
	if err != nil {
		if errors.Is(err, apperrors.ErrLockTimeout) {
			logger.Warn("Workflow lock busy", "store_ref", job.StoreRef, "row", row)
			return portssvc.StatusBusy
		}
		return errorStatus(err)
	}
	defer release()
	job.State = domain.StateLockAcquired

	if err := s.insertSignature(ctx, &job); err != nil {
		logger.Error("Signature insertion failed", "row", row, "role", role, "error", err)
		return errorStatus(err)
	}

	sheetName, sheetID, err := s.resolveWorksheet(ctx, row)
	if err != nil {
		logger.Error("Worksheet resolution failed", "row", row, "error", err)
		return errorStatus(err)
	}

	snapshotFileID, err := s.generateSnapshot(ctx, &job, sheetName, sheetID)
	if err != nil {
		logger.Error("Snapshot generation failed", "row", row, "sheet", sheetName, "error", err)
		return errorStatus(err)
	}

	// Everything after the snapshot is best effort: the signature is in and
	// the artifact exists, so cleanup or notification trouble is logged but
	// never surfaced as a failure.
	s.cleanupWorksheet(ctx, &job, sheetName, sheetID)
	s.pushBoardEntry(ctx, &job, snapshotFileID)

	logger.Info("Signature completion finished",
		"store_ref", job.StoreRef, "row", row, "role", role,
		"state", string(job.State), "elapsed", s.now().Sub(job.StartedAt))
	return portssvc.StatusSuccess
}

// insertSignature resolves the signer's asset and writes it into the role's
// signature cell. A missing asset is not an error: the cell gets the
// no-signature sentinel instead.
func (s *SignatureWorkflowService) insertSignature(ctx context.Context, job *domain.WorkflowJob) error {
	signerName, err := s.repo.SignerName(ctx, job.Row, job.Role)
	if err != nil {
		return fmt.Errorf("failed to read signer name: %w", err)
	}

	value := noSignatureValue
	if signerName != "" {
		asset, err := s.lookupRepo.SignatureAssetByName(ctx, signerName)
		switch {
		case err == nil:
			value = asset
		case errors.Is(err, apperrors.ErrNotFound):
			// fall through with the sentinel
		default:
			return fmt.Errorf("failed to resolve signature asset: %w", err)
		}
	}

	if err := s.repo.WriteSignature(ctx, job.Row, job.Role, value); err != nil {
		return fmt.Errorf("failed to write signature: %w", err)
	}
	job.State = domain.StateSignatureInserted
	return nil
}

// resolveWorksheet returns the working worksheet for a row. The recorded
// unique name wins while the worksheet still exists; otherwise the base name
// is matched against the live worksheet list, taking the highest duplication
// suffix, and the winner is written back so later steps stop guessing.
func (s *SignatureWorkflowService) resolveWorksheet(ctx context.Context, row int) (string, int64, error) {
	worksheets, err := s.repo.ListWorksheets(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("failed to list worksheets: %w", err)
	}

	recorded, err := s.repo.UniqueSheetName(ctx, row)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read unique sheet name: %w", err)
	}
	if recorded != "" {
		for _, ws := range worksheets {
			if ws.Title == recorded {
				return recorded, ws.ID, nil
			}
		}
		// Stale recorded name (worksheet deleted out of band): fall through
		// to the base-name scan so the row self-heals instead of failing
		// every retry until someone clears the cell.
	}

	base, err := s.repo.BaseSheetName(ctx, row)
	if err != nil {
		return "", 0, fmt.Errorf("failed to derive base sheet name: %w", err)
	}

	// Duplicated worksheets get a (n) suffix; the highest one is the live
	// copy.
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `(?:\((\d+)\))?$`)
	bestSuffix := -1
	var bestName string
	var bestID int64
	for _, ws := range worksheets {
		m := pattern.FindStringSubmatch(ws.Title)
		if m == nil {
			continue
		}
		suffix := 0
		if m[1] != "" {
			suffix, _ = strconv.Atoi(m[1])
		}
		if suffix > bestSuffix {
			bestSuffix = suffix
			bestName = ws.Title
			bestID = ws.ID
		}
	}
	if bestSuffix < 0 {
		return "", 0, fmt.Errorf("no worksheet matches %q: %w", base, apperrors.ErrSheetResolution)
	}

	if err := s.repo.SetUniqueSheetName(ctx, row, bestName); err != nil {
		return "", 0, fmt.Errorf("failed to record worksheet name: %w", err)
	}
	return bestName, bestID, nil
}

// generateSnapshot exports the worksheet to PDF and replaces any previous
// snapshots carrying the same worksheet name. Eviction is scan-and-trash and
// best effort; a leftover old snapshot is a cosmetic problem, a missing new
// one is not.
func (s *SignatureWorkflowService) generateSnapshot(ctx context.Context, job *domain.WorkflowJob, sheetName string, sheetID int64) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	pdf, err := s.snapshots.ExportWorksheetPDF(ctx, job.StoreRef, sheetID)
	if err != nil {
		return "", fmt.Errorf("failed to export worksheet: %w", err)
	}

	stale, err := s.snapshots.ListBySheetName(ctx, s.pdfFolderID, sheetName)
	if err != nil {
		logger.Warn("Failed to list stale snapshots", "sheet", sheetName, "error", err)
	}
	for _, snap := range stale {
		if err := s.snapshots.Trash(ctx, snap.FileID); err != nil {
			logger.Warn("Failed to trash stale snapshot", "file_id", snap.FileID, "error", err)
		}
	}

	name := fmt.Sprintf("%s_%s_%s.pdf", s.documentLabel, s.now().Format("2006-01-02_15:04:05"), sheetName)
	fileID, err := s.snapshots.Save(ctx, s.pdfFolderID, name, pdf)
	if err != nil {
		return "", fmt.Errorf("failed to save snapshot: %w", err)
	}
	job.State = domain.StateSnapshotGenerated
	return fileID, nil
}

// cleanupWorksheet deletes the working worksheet once its snapshot exists and
// clears the recorded name. The last remaining worksheet is never deleted;
// the store rejects an empty spreadsheet.
func (s *SignatureWorkflowService) cleanupWorksheet(ctx context.Context, job *domain.WorkflowJob, sheetName string, sheetID int64) {
	logger := middleware.GetLoggerFromCtx(ctx)

	worksheets, err := s.repo.ListWorksheets(ctx)
	if err != nil {
		logger.Warn("Failed to list worksheets for cleanup", "error", err)
		return
	}
	exists := false
	for _, ws := range worksheets {
		if ws.ID == sheetID {
			exists = true
			break
		}
	}
	if exists && len(worksheets) > 1 {
		if err := s.repo.DeleteWorksheet(ctx, sheetID); err != nil {
			logger.Warn("Failed to delete worksheet", "sheet", sheetName, "error", err)
			return
		}
	}
	if err := s.repo.SetUniqueSheetName(ctx, job.Row, ""); err != nil {
		logger.Warn("Failed to clear worksheet name", "row", job.Row, "error", err)
		return
	}
	job.State = domain.StateCleaned
}

// pushBoardEntry copies the completed row's key values onto the signer's
// board. All values cross by value; the board never holds a live reference
// back into the data spreadsheet.
func (s *SignatureWorkflowService) pushBoardEntry(ctx context.Context, job *domain.WorkflowJob, snapshotFileID string) {
	logger := middleware.GetLoggerFromCtx(ctx)

	signerName, err := s.repo.SignerName(ctx, job.Row, job.Role)
	if err != nil || signerName == "" {
		logger.Warn("No signer name for board entry", "row", job.Row, "error", err)
		return
	}
	boardID, err := s.lookupRepo.BoardIDByName(ctx, signerName)
	if err != nil {
		logger.Info("No board registered for signer", "signer", signerName)
		return
	}

	execURL, err := s.lookupRepo.ExecURLByScriptID(ctx, s.scriptID)
	if err != nil {
		logger.Warn("Failed to resolve entry point URL", "error", err)
		execURL = ""
	}
	signatureValue, err := s.repo.SignatureValue(ctx, job.Row, job.Role)
	if err != nil {
		logger.Warn("Failed to read back signature value", "error", err)
	}
	sourceValues, err := s.repo.BoardSourceValues(ctx, job.Row)
	if err != nil {
		logger.Warn("Failed to read board source values", "error", err)
	}

	// Prefer the row's own submission timestamp; entries stay ordered even
	// when signing happens days later.
	entryTime := s.now()
	if raw, err := s.repo.RowTimestamp(ctx, job.Row); err == nil && raw != "" {
		if parsed, perr := time.ParseInLocation("2006/01/02 15:04:05", raw, time.Local); perr == nil {
			entryTime = parsed
		}
	}

	entry := domain.BoardEntry{
		Timestamp:      entryTime,
		DocumentLabel:  s.documentLabel,
		SourceValues:   sourceValues,
		SourceRow:      job.Row,
		SnapshotFileID: snapshotFileID,
		SignerValue:    signatureValue,
		ActionURL:      fmt.Sprintf("%s?role=%s&row=%d", execURL, job.Role, job.Row),
	}
	if err := s.boardRepo.AppendCompletionEntry(ctx, boardID, entry); err != nil {
		logger.Warn("Failed to append board entry", "board_id", boardID, "error", err)
		return
	}
	job.State = domain.StateNotified
}

// RegisterSubmission reacts to a form submission for the given row.
func (s *SignatureWorkflowService) RegisterSubmission(ctx context.Context, row int, status portssvc.SubmissionStatus) error {
	if row <= 0 {
		return fmt.Errorf("row %d: %w", row, apperrors.ErrValidation)
	}

	release, err := s.lock.Acquire(ctx, s.repo.StoreRef(), s.lockWait)
	if err != nil {
		return err
	}
	defer release()

	switch status {
	case portssvc.SubmissionWorkStarted:
		return s.provisionWorksheet(ctx, row)
	case portssvc.SubmissionInProgress, portssvc.SubmissionCompleted:
		return s.logProgress(ctx, row)
	default:
		return fmt.Errorf("submission status %q: %w", status, apperrors.ErrValidation)
	}
}

// provisionWorksheet duplicates the template under a collision-free name and
// records it on the row.
func (s *SignatureWorkflowService) provisionWorksheet(ctx context.Context, row int) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	base, err := s.repo.BaseSheetName(ctx, row)
	if err != nil {
		return fmt.Errorf("failed to derive base sheet name: %w", err)
	}

	worksheets, err := s.repo.ListWorksheets(ctx)
	if err != nil {
		return fmt.Errorf("failed to list worksheets: %w", err)
	}

	var templateID int64 = -1
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `(?:\((\d+)\))?$`)
	maxSuffix := -1
	for _, ws := range worksheets {
		if ws.Title == models.TemplateSheetTitle {
			templateID = ws.ID
		}
		if m := pattern.FindStringSubmatch(ws.Title); m != nil {
			suffix := 0
			if m[1] != "" {
				suffix, _ = strconv.Atoi(m[1])
			}
			if suffix > maxSuffix {
				maxSuffix = suffix
			}
		}
	}
	if templateID < 0 {
		return fmt.Errorf("template worksheet %q: %w", models.TemplateSheetTitle, apperrors.ErrSheetResolution)
	}

	title := base
	if maxSuffix >= 0 {
		title = fmt.Sprintf("%s(%d)", base, maxSuffix+1)
	}

	if err := s.repo.DuplicateWorksheet(ctx, templateID, title); err != nil {
		return fmt.Errorf("failed to duplicate template: %w", err)
	}
	if err := s.repo.SetUniqueSheetName(ctx, row, title); err != nil {
		return fmt.Errorf("failed to record worksheet name: %w", err)
	}

	logger.Info("Provisioned working worksheet", "row", row, "sheet", title)
	return nil
}

// logProgress stamps the next free slot of the working worksheet's progress
// column.
func (s *SignatureWorkflowService) logProgress(ctx context.Context, row int) error {
	name, err := s.repo.UniqueSheetName(ctx, row)
	if err != nil {
		return fmt.Errorf("failed to read unique sheet name: %w", err)
	}
	if name == "" {
		return fmt.Errorf("row %d has no working worksheet: %w", row, apperrors.ErrSheetResolution)
	}
	stamp := s.now().Format("2006/01/02 15:04:05")
	return s.repo.AppendWorkLogTimestamp(ctx, name, stamp)
}

// errorStatus collapses an internal error to the workflow's wire format.
func errorStatus(err error) string {
	return "error: " + err.Error()
}
