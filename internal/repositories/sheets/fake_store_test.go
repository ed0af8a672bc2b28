package sheets_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jyoo0515/docuflow/internal/core/domain"
	portsrepo "github.com/jyoo0515/docuflow/internal/core/ports/repositories"
)

// fakeStore is an in-memory TabularStore holding dense row grids per
// (spreadsheet, worksheet). Ranges without a worksheet prefix address the
// unnamed default grid, matching how personal and board spreadsheets are
// accessed.
type fakeStore struct {
	mu          sync.Mutex
	grids       map[string]map[string][][]string
	worksheets  map[string][]domain.WorksheetInfo
	gridCells   map[string]map[string]portsrepo.GridCell
	checkboxes  map[string][]portsrepo.CellRef
	nextSheetID int64

	readGridErr error
}

var _ portsrepo.TabularStore = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		grids:       make(map[string]map[string][][]string),
		worksheets:  make(map[string][]domain.WorksheetInfo),
		gridCells:   make(map[string]map[string]portsrepo.GridCell),
		checkboxes:  make(map[string][]portsrepo.CellRef),
		nextSheetID: 100,
	}
}

// seed replaces a worksheet's grid wholesale.
func (s *fakeStore) seed(storeRef, sheet string, rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grids[storeRef] == nil {
		s.grids[storeRef] = make(map[string][][]string)
	}
	s.grids[storeRef][sheet] = rows
	s.ensureWorksheetLocked(storeRef, sheet)
}

func (s *fakeStore) seedGridCell(storeRef string, row, col int, cell portsrepo.GridCell) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gridCells[storeRef] == nil {
		s.gridCells[storeRef] = make(map[string]portsrepo.GridCell)
	}
	s.gridCells[storeRef][fmt.Sprintf("%d_%d", row, col)] = cell
}

func (s *fakeStore) cell(storeRef, sheet string, row, col int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	grid := s.grids[storeRef][sheet]
	if row < len(grid) && col < len(grid[row]) {
		return grid[row][col]
	}
	return ""
}

func (s *fakeStore) ensureWorksheetLocked(storeRef, sheet string) {
	for _, ws := range s.worksheets[storeRef] {
		if ws.Title == sheet {
			return
		}
	}
	s.nextSheetID++
	s.worksheets[storeRef] = append(s.worksheets[storeRef], domain.WorksheetInfo{
		ID:    s.nextSheetID,
		Title: sheet,
		Index: int64(len(s.worksheets[storeRef])),
	})
}

func (s *fakeStore) Read(ctx context.Context, storeRef, readRange string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sheet, r1, c1, r2, c2 := parseA1(readRange)
	if r1 < 0 {
		r1 = 0
	}
	grid := s.grids[storeRef][sheet]
	if r2 < 0 || r2 >= len(grid) {
		r2 = len(grid) - 1
	}

	var out [][]string
	for r := r1; r <= r2; r++ {
		src := grid[r]
		hi := c2
		if hi < 0 || hi >= len(src) {
			hi = len(src) - 1
		}
		var row []string
		for c := c1; c <= hi; c++ {
			row = append(row, src[c])
		}
		// the store omits trailing empty cells
		for len(row) > 0 && row[len(row)-1] == "" {
			row = row[:len(row)-1]
		}
		out = append(out, row)
	}
	// and trailing empty rows
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (s *fakeStore) Write(ctx context.Context, storeRef, writeRange string, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sheet, r1, c1, _, _ := parseA1(writeRange)
	if r1 < 0 {
		r1 = 0
	}
	if s.grids[storeRef] == nil {
		s.grids[storeRef] = make(map[string][][]string)
	}
	grid := s.grids[storeRef][sheet]
	for i, row := range rows {
		r := r1 + i
		for len(grid) <= r {
			grid = append(grid, nil)
		}
		for j, v := range row {
			c := c1 + j
			for len(grid[r]) <= c {
				grid[r] = append(grid[r], "")
			}
			grid[r][c] = v
		}
	}
	s.grids[storeRef][sheet] = grid
	s.ensureWorksheetLocked(storeRef, sheet)
	return nil
}

func (s *fakeStore) Append(ctx context.Context, storeRef, appendRange string, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sheet, _, _, _, _ := parseA1(appendRange)
	if s.grids[storeRef] == nil {
		s.grids[storeRef] = make(map[string][][]string)
	}
	s.grids[storeRef][sheet] = append(s.grids[storeRef][sheet], rows...)
	s.ensureWorksheetLocked(storeRef, sheet)
	return nil
}

func (s *fakeStore) AddWorksheet(ctx context.Context, storeRef, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureWorksheetLocked(storeRef, title)
	if s.grids[storeRef] == nil {
		s.grids[storeRef] = make(map[string][][]string)
	}
	if s.grids[storeRef][title] == nil {
		s.grids[storeRef][title] = [][]string{}
	}
	return nil
}

func (s *fakeStore) ListWorksheets(ctx context.Context, storeRef string) ([]domain.WorksheetInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.WorksheetInfo, len(s.worksheets[storeRef]))
	copy(out, s.worksheets[storeRef])
	return out, nil
}

func (s *fakeStore) DeleteWorksheet(ctx context.Context, storeRef string, sheetID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.worksheets[storeRef]
	for i, ws := range list {
		if ws.ID == sheetID {
			delete(s.grids[storeRef], ws.Title)
			s.worksheets[storeRef] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("worksheet %d not found", sheetID)
}

func (s *fakeStore) DuplicateWorksheet(ctx context.Context, storeRef string, sourceSheetID int64, newTitle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ws := range s.worksheets[storeRef] {
		if ws.ID == sourceSheetID {
			src := s.grids[storeRef][ws.Title]
			cloned := make([][]string, len(src))
			for i, row := range src {
				cloned[i] = append([]string(nil), row...)
			}
			if s.grids[storeRef] == nil {
				s.grids[storeRef] = make(map[string][][]string)
			}
			s.grids[storeRef][newTitle] = cloned
			s.ensureWorksheetLocked(storeRef, newTitle)
			return nil
		}
	}
	return fmt.Errorf("worksheet %d not found", sourceSheetID)
}

func (s *fakeStore) InsertCheckboxes(ctx context.Context, storeRef string, sheetID int64, cell portsrepo.CellRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkboxes[storeRef] = append(s.checkboxes[storeRef], cell)
	return nil
}

func (s *fakeStore) ReadGridCells(ctx context.Context, storeRef string, cells []portsrepo.CellRef) (map[string]portsrepo.GridCell, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readGridErr != nil {
		return nil, s.readGridErr
	}
	out := make(map[string]portsrepo.GridCell)
	for _, c := range cells {
		key := fmt.Sprintf("%d_%d", c.Row, c.Col)
		if cell, ok := s.gridCells[storeRef][key]; ok {
			out[key] = cell
		}
	}
	return out, nil
}

// parseA1 decodes the subset of A1 notation the repositories use. Returned
// offsets are 0-based; r2/c2 of -1 mean open-ended.
func parseA1(ref string) (sheet string, r1, c1, r2, c2 int) {
	if i := strings.LastIndex(ref, "!"); i >= 0 {
		sheet = ref[:i]
		ref = ref[i+1:]
	}
	parts := strings.SplitN(ref, ":", 2)
	r1, c1 = parseCell(parts[0])
	if len(parts) == 2 {
		r2, c2 = parseCell(parts[1])
	} else {
		r2, c2 = r1, c1
	}
	return sheet, r1, c1, r2, c2
}

// parseCell splits "M10" into (9, 12); a missing row yields -1.
func parseCell(ref string) (row, col int) {
	letters := ref
	digits := ""
	for i, ch := range ref {
		if ch >= '0' && ch <= '9' {
			letters, digits = ref[:i], ref[i:]
			break
		}
	}
	col = 0
	for _, ch := range letters {
		col = col*26 + int(ch-'A') + 1
	}
	col--
	row = -1
	if digits != "" {
		n, _ := strconv.Atoi(digits)
		row = n - 1
	}
	return row, col
}
