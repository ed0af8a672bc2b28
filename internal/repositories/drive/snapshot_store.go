// Package drive implements the snapshot store on the Google Drive v3 API
// plus the spreadsheet PDF export endpoint.
package drive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	driveapi "google.golang.org/api/drive/v3"

	"github.com/jyoo0515/docuflow/internal/core/domain"
	portsrepo "github.com/jyoo0515/docuflow/internal/core/ports/repositories"
)

// exportParams are the fixed page/print parameters applied to every snapshot:
// A4 portrait, tight margins, no gridlines, a bounded print range.
const exportParams = "format=pdf&size=A4&portrait=true&scale=4" +
	"&top_margin=0.2&bottom_margin=0.2&left_margin=0.2&right_margin=0.2" +
	"&gridlines=false&sheetnames=false&printtitle=false" +
	"&horizontal_alignment=CENTER&vertical_alignment=MIDDLE" +
	"&r1=0&r2=15&c1=0&c2=9"

// SnapshotStore exports worksheets to PDF and manages the artifacts in a
// Drive folder. The HTTP client must carry the service account's OAuth
// credentials; the export endpoint is not part of the Drive API surface.
type SnapshotStore struct {
	svc        *driveapi.Service
	httpClient *http.Client
	label      string
}

var _ portsrepo.SnapshotStore = (*SnapshotStore)(nil)

func NewSnapshotStore(svc *driveapi.Service, httpClient *http.Client, label string) *SnapshotStore {
	return &SnapshotStore{svc: svc, httpClient: httpClient, label: label}
}

func (s *SnapshotStore) ExportWorksheetPDF(ctx context.Context, storeRef string, sheetID int64) ([]byte, error) {
	url := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?%s&gid=%d", storeRef, exportParams, sheetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build export request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to export worksheet %d: %w", sheetID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("export of worksheet %d returned status %d", sheetID, resp.StatusCode)
	}
	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read exported PDF: %w", err)
	}
	return pdf, nil
}

func (s *SnapshotStore) ListBySheetName(ctx context.Context, folderID, sheetName string) ([]domain.Snapshot, error) {
	query := fmt.Sprintf("'%s' in parents and trashed = false and name contains '_%s.pdf'",
		folderID, strings.ReplaceAll(sheetName, "'", `\'`))
	resp, err := s.svc.Files.List().
		Q(query).
		Fields("files(id,name,createdTime)").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	suffix := fmt.Sprintf("_%s.pdf", sheetName)
	prefix := s.label + "_"
	var snapshots []domain.Snapshot
	for _, f := range resp.Files {
		if !strings.HasPrefix(f.Name, prefix) || !strings.HasSuffix(f.Name, suffix) {
			continue
		}
		created, _ := time.Parse(time.RFC3339, f.CreatedTime)
		snapshots = append(snapshots, domain.Snapshot{FileID: f.Id, Name: f.Name, CreatedAt: created})
	}
	return snapshots, nil
}

func (s *SnapshotStore) Trash(ctx context.Context, fileID string) error {
	_, err := s.svc.Files.Update(fileID, &driveapi.File{Trashed: true}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to trash snapshot %s: %w", fileID, err)
	}
	return nil
}

func (s *SnapshotStore) Save(ctx context.Context, folderID, name string, pdf []byte) (string, error) {
	file := &driveapi.File{
		Name:     name,
		Parents:  []string{folderID},
		MimeType: "application/pdf",
	}
	created, err := s.svc.Files.Create(file).
		Media(bytes.NewReader(pdf)).
		Fields("id").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to save snapshot %s: %w", name, err)
	}
	return created.Id, nil
}
