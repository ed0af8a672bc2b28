// Package sheets implements the tabular-store contract and the row-mapping
// repositories on top of the Google Sheets v4 API.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/jyoo0515/docuflow/internal/core/domain"
	portsrepo "github.com/jyoo0515/docuflow/internal/core/ports/repositories"
)

// Client adapts *sheets.Service to the TabularStore port. It performs no
// retries and no validation of cell contents.
type Client struct {
	svc *sheetsapi.Service
}

var _ portsrepo.TabularStore = (*Client)(nil)

func NewClient(svc *sheetsapi.Service) *Client {
	return &Client{svc: svc}
}

func (c *Client) Read(ctx context.Context, storeRef, readRange string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(storeRef, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}
	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			row[j] = cellString(cell)
		}
		rows[i] = row
	}
	return rows, nil
}

func (c *Client) Write(ctx context.Context, storeRef, writeRange string, rows [][]string) error {
	_, err := c.svc.Spreadsheets.Values.Update(storeRef, writeRange, valueRange(rows)).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write range %s: %w", writeRange, err)
	}
	return nil
}

func (c *Client) Append(ctx context.Context, storeRef, appendRange string, rows [][]string) error {
	_, err := c.svc.Spreadsheets.Values.Append(storeRef, appendRange, valueRange(rows)).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append to range %s: %w", appendRange, err)
	}
	return nil
}

func (c *Client) AddWorksheet(ctx context.Context, storeRef, title string) error {
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: title},
			},
		}},
	}
	_, err := c.svc.Spreadsheets.BatchUpdate(storeRef, req).Context(ctx).Do()
	if err != nil {
		// Two callers may provision concurrently; the loser sees the sheet
		// already present, which is success for our purposes.
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == 400 && strings.Contains(gerr.Message, "already exists") {
			return nil
		}
		return fmt.Errorf("failed to add worksheet %q: %w", title, err)
	}
	return nil
}

func (c *Client) ListWorksheets(ctx context.Context, storeRef string) ([]domain.WorksheetInfo, error) {
	resp, err := c.svc.Spreadsheets.Get(storeRef).Fields("sheets(properties(sheetId,title,index))").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list worksheets: %w", err)
	}
	infos := make([]domain.WorksheetInfo, 0, len(resp.Sheets))
	for _, sh := range resp.Sheets {
		if sh.Properties == nil {
			continue
		}
		infos = append(infos, domain.WorksheetInfo{
			ID:    sh.Properties.SheetId,
			Title: sh.Properties.Title,
			Index: sh.Properties.Index,
		})
	}
	return infos, nil
}

func (c *Client) DeleteWorksheet(ctx context.Context, storeRef string, sheetID int64) error {
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			DeleteSheet: &sheetsapi.DeleteSheetRequest{SheetId: sheetID},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(storeRef, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete worksheet %d: %w", sheetID, err)
	}
	return nil
}

func (c *Client) DuplicateWorksheet(ctx context.Context, storeRef string, sourceSheetID int64, newTitle string) error {
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			DuplicateSheet: &sheetsapi.DuplicateSheetRequest{
				SourceSheetId: sourceSheetID,
				NewSheetName:  newTitle,
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(storeRef, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to duplicate worksheet %d as %q: %w", sourceSheetID, newTitle, err)
	}
	return nil
}

func (c *Client) InsertCheckboxes(ctx context.Context, storeRef string, sheetID int64, cell portsrepo.CellRef) error {
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			SetDataValidation: &sheetsapi.SetDataValidationRequest{
				Range: &sheetsapi.GridRange{
					SheetId:          sheetID,
					StartRowIndex:    int64(cell.Row),
					EndRowIndex:      int64(cell.Row) + 1,
					StartColumnIndex: int64(cell.Col),
					EndColumnIndex:   int64(cell.Col) + 1,
				},
				Rule: &sheetsapi.DataValidationRule{
					Condition: &sheetsapi.BooleanCondition{Type: "BOOLEAN"},
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(storeRef, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to insert checkbox at (%d,%d): %w", cell.Row, cell.Col, err)
	}
	return nil
}

func (c *Client) ReadGridCells(ctx context.Context, storeRef string, cells []portsrepo.CellRef) (map[string]portsrepo.GridCell, error) {
	if len(cells) == 0 {
		return map[string]portsrepo.GridCell{}, nil
	}

	ranges := make([]string, len(cells))
	for i, cell := range cells {
		ranges[i] = fmt.Sprintf("R%dC%d", cell.Row+1, cell.Col+1)
	}

	resp, err := c.svc.Spreadsheets.Get(storeRef).
		Ranges(ranges...).
		IncludeGridData(true).
		Fields("sheets(data(rowData(values(effectiveValue,userEnteredValue,hyperlink,textFormatRuns))))").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read grid cells: %w", err)
	}

	results := make(map[string]portsrepo.GridCell, len(cells))
	if len(resp.Sheets) == 0 {
		return results, nil
	}

	gridData := resp.Sheets[0].Data
	for i := 0; i < len(cells) && i < len(gridData); i++ {
		data := gridData[i]
		if data == nil || len(data.RowData) == 0 || len(data.RowData[0].Values) == 0 {
			continue
		}
		cd := data.RowData[0].Values[0]
		gc := portsrepo.GridCell{Hyperlink: cd.Hyperlink}
		if cd.EffectiveValue != nil {
			gc.Effective = extendedValueString(cd.EffectiveValue)
		}
		if cd.UserEnteredValue != nil {
			gc.Entered = extendedValueString(cd.UserEnteredValue)
		}
		for _, run := range cd.TextFormatRuns {
			if run.Format != nil && run.Format.Link != nil && run.Format.Link.Uri != "" {
				gc.LinkURIs = append(gc.LinkURIs, run.Format.Link.Uri)
			}
		}
		results[fmt.Sprintf("%d_%d", cells[i].Row, cells[i].Col)] = gc
	}
	return results, nil
}

func valueRange(rows [][]string) *sheetsapi.ValueRange {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return &sheetsapi.ValueRange{Values: values}
}

func cellString(cell interface{}) string {
	if cell == nil {
		return ""
	}
	if s, ok := cell.(string); ok {
		return s
	}
	return fmt.Sprint(cell)
}

func extendedValueString(v *sheetsapi.ExtendedValue) string {
	switch {
	case v.StringValue != nil:
		return *v.StringValue
	case v.FormulaValue != nil:
		return *v.FormulaValue
	case v.NumberValue != nil:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", *v.NumberValue), "0"), ".")
	case v.BoolValue != nil:
		return fmt.Sprintf("%t", *v.BoolValue)
	}
	return ""
}
