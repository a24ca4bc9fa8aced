package mocks

import (
	"context"
	"fmt"
	"sync"
)

// MockRegister is an in-memory implementation of the RegisterGateway port for
// testing. It records every write so tests can assert on side effects.
type MockRegister struct {
	mu   sync.RWMutex
	Rows [][]string

	// Recorded writes
	Updates []CellUpdate
	Inserts []RowInsert

	// Failure injection
	ReadErr   error
	UpdateErr error
	InsertErr error
}

// CellUpdate is one recorded UpdateCell call (1-based indices).
type CellUpdate struct {
	Row, Col int
	Value    string
}

// RowInsert is one recorded InsertRow call (1-based position).
type RowInsert struct {
	Values []any
	At     int
}

// NewMockRegister creates a mock register pre-loaded with rows. Row 0 is the
// header.
func NewMockRegister(rows [][]string) *MockRegister {
	return &MockRegister{Rows: rows}
}

// ReadAllRows returns the current rows.
func (m *MockRegister) ReadAllRows(ctx context.Context) ([][]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	out := make([][]string, len(m.Rows))
	for i, r := range m.Rows {
		out[i] = append([]string(nil), r...)
	}
	return out, nil
}

// UpdateCell records and applies a single-cell write.
func (m *MockRegister) UpdateCell(ctx context.Context, row, col int, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if row < 1 || row > len(m.Rows) {
		return fmt.Errorf("row %d out of range", row)
	}
	cells := m.Rows[row-1]
	for len(cells) < col {
		cells = append(cells, "")
	}
	cells[col-1] = value
	m.Rows[row-1] = cells
	m.Updates = append(m.Updates, CellUpdate{Row: row, Col: col, Value: value})
	return nil
}

// InsertRow records and applies a row insertion.
func (m *MockRegister) InsertRow(ctx context.Context, values []any, at int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.InsertErr != nil {
		return m.InsertErr
	}
	if at < 1 || at > len(m.Rows)+1 {
		return fmt.Errorf("insert position %d out of range", at)
	}
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = fmt.Sprint(v)
	}
	m.Rows = append(m.Rows, nil)
	copy(m.Rows[at:], m.Rows[at-1:])
	m.Rows[at-1] = row
	m.Inserts = append(m.Inserts, RowInsert{Values: values, At: at})
	return nil
}

// MockStore is an in-memory DocumentStore that records folder creations and
// uploads.
type MockStore struct {
	mu sync.Mutex

	Folders []FolderCreate
	Uploads []FileUpload

	CreateErr error
	UploadErr error

	nextID int
}

// FolderCreate is one recorded CreateFolder call.
type FolderCreate struct {
	Name     string
	ParentID string
	ID       string
}

// FileUpload is one recorded UploadFile call.
type FileUpload struct {
	LocalPath string
	FolderID  string
	ID        string
}

// NewMockStore creates an empty mock document store.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// CreateFolder records a folder creation and returns a generated id.
func (m *MockStore) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	m.nextID++
	id := fmt.Sprintf("folder-%d", m.nextID)
	m.Folders = append(m.Folders, FolderCreate{Name: name, ParentID: parentID, ID: id})
	return id, nil
}

// UploadFile records an upload and returns a generated id.
func (m *MockStore) UploadFile(ctx context.Context, localPath, folderID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UploadErr != nil {
		return "", m.UploadErr
	}
	m.nextID++
	id := fmt.Sprintf("file-%d", m.nextID)
	m.Uploads = append(m.Uploads, FileUpload{LocalPath: localPath, FolderID: folderID, ID: id})
	return id, nil
}

// FolderLink returns a stable fake URL for assertions.
func (m *MockStore) FolderLink(folderID string) string {
	return "https://drive.google.com/drive/folders/" + folderID
}
