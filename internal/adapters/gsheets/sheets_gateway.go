package gsheets

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/internal/core/ports"
)

// dateCellFormat is applied to date-tagged cells after a row write so the
// =DATE formulas render in the register's entry format.
const dateCellFormat = "mm-dd-yyyy"

// SheetsGateway implements the RegisterGateway port against one worksheet of
// a Google Sheets spreadsheet.
type SheetsGateway struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	logger        *zap.Logger

	mu      sync.Mutex
	sheetID int64 // resolved from sheetName on first structural write
	haveID  bool
}

// NewSheetsGateway creates a gateway authenticated with a service-account
// credentials file.
func NewSheetsGateway(ctx context.Context, credentialsFile, spreadsheetID, sheetName string, logger *zap.Logger) (*SheetsGateway, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}
	return &SheetsGateway{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		logger:        logger,
	}, nil
}

// Ensure it implements the interface
var _ ports.RegisterGateway = (*SheetsGateway)(nil)

// ReadAllRows fetches the whole worksheet, header row included. Cells come
// back as display strings; trailing empty cells are absent, so rows may be
// shorter than the register layout.
func (g *SheetsGateway) ReadAllRows(ctx context.Context) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, g.sheetName).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", g.sheetName, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			row[j] = fmt.Sprint(cell)
		}
		rows[i] = row
	}
	g.logger.Debug("read register", zap.Int("rows", len(rows)))
	return rows, nil
}

// UpdateCell writes a single cell. Row and column are 1-based.
func (g *SheetsGateway) UpdateCell(ctx context.Context, row, col int, value string) error {
	a1 := fmt.Sprintf("%s!%s%d", g.sheetName, columnLetter(col), row)
	vr := &sheets.ValueRange{Values: [][]any{{value}}}

	_, err := g.svc.Spreadsheets.Values.Update(g.spreadsheetID, a1, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update cell %s: %w", a1, err)
	}
	g.logger.Debug("updated cell", zap.String("range", a1))
	return nil
}

// InsertRow inserts a new row at the 1-based position and fills it. Values
// go in as USER_ENTERED so =DATE formulas evaluate server-side; date cells
// then get the register's display format.
func (g *SheetsGateway) InsertRow(ctx context.Context, values []any, at int) error {
	sheetID, err := g.resolveSheetID(ctx)
	if err != nil {
		return err
	}

	insert := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			InsertDimension: &sheets.InsertDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(at - 1),
					EndIndex:   int64(at),
				},
				InheritFromBefore: at > 1,
			},
		}},
	}
	if _, err := g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, insert).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to insert row at %d: %w", at, err)
	}

	a1 := fmt.Sprintf("%s!A%d", g.sheetName, at)
	vr := &sheets.ValueRange{Values: [][]any{values}}
	if _, err := g.svc.Spreadsheets.Values.Update(g.spreadsheetID, a1, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to write row at %d: %w", at, err)
	}

	if err := g.formatDateCells(ctx, sheetID, at); err != nil {
		// The row is already in place; a formatting miss is not fatal.
		g.logger.Warn("date formatting failed", zap.Int("row", at), zap.Error(err))
	}

	g.logger.Info("inserted row", zap.Int("row", at), zap.Int("cells", len(values)))
	return nil
}

// formatDateCells applies the entry date format to the date-tagged columns
// of one row.
func (g *SheetsGateway) formatDateCells(ctx context.Context, sheetID int64, row int) error {
	reqs := make([]*sheets.Request, 0, len(domain.DateColumns))
	for _, col := range domain.DateColumns {
		reqs = append(reqs, &sheets.Request{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					SheetId:          sheetID,
					StartRowIndex:    int64(row - 1),
					EndRowIndex:      int64(row),
					StartColumnIndex: int64(col),
					EndColumnIndex:   int64(col + 1),
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						NumberFormat: &sheets.NumberFormat{
							Type:    "DATE",
							Pattern: dateCellFormat,
						},
					},
				},
				Fields: "userEnteredFormat.numberFormat",
			},
		})
	}

	_, err := g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID,
		&sheets.BatchUpdateSpreadsheetRequest{Requests: reqs}).Context(ctx).Do()
	return err
}

// Verify checks that the spreadsheet is reachable and the worksheet exists.
func (g *SheetsGateway) Verify(ctx context.Context) error {
	_, err := g.resolveSheetID(ctx)
	return err
}

// resolveSheetID looks up the numeric sheet id for the configured worksheet
// title. The id is needed for structural requests and cached after the first
// lookup.
func (g *SheetsGateway) resolveSheetID(ctx context.Context) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.haveID {
		return g.sheetID, nil
	}

	meta, err := g.svc.Spreadsheets.Get(g.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == g.sheetName {
			g.sheetID = sh.Properties.SheetId
			g.haveID = true
			return g.sheetID, nil
		}
	}
	return 0, fmt.Errorf("worksheet %q not found in spreadsheet", g.sheetName)
}

// RegisterURL returns the browser URL of the spreadsheet.
func (g *SheetsGateway) RegisterURL() string {
	return "https://docs.google.com/spreadsheets/d/" + g.spreadsheetID
}

// columnLetter converts a 1-based column number to its A1 letter form.
func columnLetter(col int) string {
	var out []byte
	for col > 0 {
		col--
		out = append([]byte{byte('A' + col%26)}, out...)
		col /= 26
	}
	return string(out)
}
