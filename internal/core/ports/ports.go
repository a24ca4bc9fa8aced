package ports

import (
	"context"

	"github.com/assetra/assetra-cli/internal/core/domain"
)

// RegisterGateway defines the port to the remote register spreadsheet. Row
// and column indices are 1-based and include the header row, matching the
// remote service's addressing.
type RegisterGateway interface {
	// ReadAllRows returns every row of the sheet; row 0 is the header.
	ReadAllRows(ctx context.Context) ([][]string, error)

	// UpdateCell writes a single cell.
	UpdateCell(ctx context.Context, row, col int, value string) error

	// InsertRow inserts a row at the given position. Values may be strings,
	// int64 or float64 so the destination types cells correctly.
	InsertRow(ctx context.Context, values []any, at int) error
}

// DocumentStore defines the port to the remote file storage holding asset
// document folders.
type DocumentStore interface {
	// CreateFolder creates a folder under parentID, or under the configured
	// root when parentID is empty, and returns its id.
	CreateFolder(ctx context.Context, name, parentID string) (string, error)

	// UploadFile uploads a local file into a folder and returns the file id.
	UploadFile(ctx context.Context, localPath, folderID string) (string, error)

	// FolderLink returns the shareable URL for a folder id.
	FolderLink(folderID string) string
}

// ReadSnapshot reads the register and parses it into header plus positioned
// data records. Every view and write path starts from a fresh snapshot.
func ReadSnapshot(ctx context.Context, gw RegisterGateway) (*domain.Snapshot, error) {
	rows, err := gw.ReadAllRows(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewSnapshot(rows)
}
