package domain

import (
	"fmt"
	"strings"
	"time"
)

// Column offsets into a register row, 0-based. The register sheet owns this
// layout; every view reads through these names instead of raw indices.
const (
	ColSerial       = 0
	ColRecordDate   = 1
	ColName         = 2
	ColLocation     = 3
	ColProject      = 4
	ColSegment      = 5
	ColCategory     = 6
	ColTower        = 10
	ColFloor        = 11
	ColUnit         = 12
	ColCommencement = 13
	ColLeaseExpiry  = 14
	ColLockInExpiry = 15
	ColOwner        = 19
	ColTenant       = 20
	ColTenantType   = 21
	ColBrokerage    = 22
	ColDocFirst     = 23
	ColDocLast      = 27
	ColManager      = 28
	ColFolderLink   = 29
)

// RecordWidth is the number of cells a fully written row carries.
const RecordWidth = 30

// CoreFieldCount is how many leading columns the submission form fills before
// the tenant-type/brokerage/document tail is appended.
const CoreFieldCount = 21

// DateColumns are the columns validated and written as calendar dates.
var DateColumns = []int{ColRecordDate, ColCommencement, ColLeaseExpiry, ColLockInExpiry}

// BrokerageStatus is the canonical brokerage workflow state.
type BrokerageStatus string

const (
	StatusPending  BrokerageStatus = "Pending"
	StatusReceived BrokerageStatus = "Received"
)

// ParseBrokerageStatus normalizes a raw status cell. Empty and unrecognized
// values count as pending.
func ParseBrokerageStatus(raw string) BrokerageStatus {
	if strings.EqualFold(strings.TrimSpace(raw), string(StatusReceived)) {
		return StatusReceived
	}
	return StatusPending
}

// ValidBrokerageStatus reports whether raw names one of the two canonical
// states, ignoring case.
func ValidBrokerageStatus(raw string) bool {
	s := strings.TrimSpace(raw)
	return strings.EqualFold(s, string(StatusPending)) || strings.EqualFold(s, string(StatusReceived))
}

// Record is one data row of the register plus its 1-based sheet position
// (header included), so a write path can address it again.
type Record struct {
	SheetRow int
	Cells    []string
}

// Cell returns the value at a column offset, or "" when the row is shorter
// than the register layout. Short rows are a data-shape problem of the remote
// sheet and must never crash a view.
func (r Record) Cell(col int) string {
	if col < 0 || col >= len(r.Cells) {
		return ""
	}
	return r.Cells[col]
}

func (r Record) ID() string       { return r.Cell(ColSerial) }
func (r Record) Name() string     { return r.Cell(ColName) }
func (r Record) Location() string { return r.Cell(ColLocation) }
func (r Record) Project() string  { return r.Cell(ColProject) }
func (r Record) Tower() string    { return r.Cell(ColTower) }
func (r Record) Floor() string    { return r.Cell(ColFloor) }
func (r Record) Unit() string     { return r.Cell(ColUnit) }
func (r Record) Owner() string    { return r.Cell(ColOwner) }
func (r Record) Tenant() string   { return r.Cell(ColTenant) }
func (r Record) Manager() string  { return r.Cell(ColManager) }

// DisplayID renders the id the way the reminders view shows it.
func (r Record) DisplayID() string {
	return "AST-" + r.ID()
}

// Brokerage returns the normalized brokerage status of the row.
func (r Record) Brokerage() BrokerageStatus {
	return ParseBrokerageStatus(r.Cell(ColBrokerage))
}

// FolderLink returns the document folder URL, or "" when no documents were
// ever uploaded for this asset.
func (r Record) FolderLink() string {
	return strings.TrimSpace(r.Cell(ColFolderLink))
}

// LeaseExpiry parses the lease-expiry cell. ok is false for empty or
// unparsable cells; callers skip those rows rather than fail.
func (r Record) LeaseExpiry() (time.Time, bool) {
	return ParseCellDate(r.Cell(ColLeaseExpiry))
}

// NeedsAttention reports whether any document slot is neither UPLOADED nor
// NA. An empty slot counts as missing. Recomputed on every read, never stored.
func (r Record) NeedsAttention() bool {
	for col := ColDocFirst; col <= ColDocLast; col++ {
		v := strings.ToUpper(strings.TrimSpace(r.Cell(col)))
		if v != "UPLOADED" && v != "NA" {
			return true
		}
	}
	return false
}

// DocumentCells returns the five document-status cells in slot order.
func (r Record) DocumentCells() []string {
	cells := make([]string, 0, ColDocLast-ColDocFirst+1)
	for col := ColDocFirst; col <= ColDocLast; col++ {
		cells = append(cells, r.Cell(col))
	}
	return cells
}

// MatchesSearch reports whether term occurs, case-insensitively, in any cell
// of the row. An empty term matches everything.
func (r Record) MatchesSearch(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, cell := range r.Cells {
		if strings.Contains(strings.ToLower(cell), term) {
			return true
		}
	}
	return false
}

// RecordKey is the canonical row identity: the pair of cells every write path
// uses to relocate a record in a freshly read snapshot.
type RecordKey struct {
	ID   string
	Name string
}

// Key returns the record's canonical identity.
func (r Record) Key() RecordKey {
	return RecordKey{ID: r.ID(), Name: r.Name()}
}

// Matches reports whether this record carries the given identity.
func (r Record) Matches(key RecordKey) bool {
	return r.ID() == key.ID && r.Name() == key.Name
}

// Snapshot is one full read of the register: the header row plus every data
// row, each tagged with its sheet position.
type Snapshot struct {
	Headers []string
	Records []Record
}

// NewSnapshot splits raw sheet rows into header and positioned records.
// Row 0 is the header; data rows start at sheet row 2.
func NewSnapshot(rows [][]string) (*Snapshot, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("no headers found in the register sheet")
	}
	snap := &Snapshot{Headers: rows[0]}
	for i, cells := range rows[1:] {
		snap.Records = append(snap.Records, Record{SheetRow: i + 2, Cells: cells})
	}
	return snap, nil
}

// Find relocates a record by its canonical key. ok is false when no row in
// the snapshot carries the identity.
func (s *Snapshot) Find(key RecordKey) (Record, bool) {
	for _, rec := range s.Records {
		if rec.Matches(key) {
			return rec, true
		}
	}
	return Record{}, false
}

// Header returns the header label for a column offset, or a positional
// placeholder when the header row is shorter.
func (s *Snapshot) Header(col int) string {
	if col >= 0 && col < len(s.Headers) {
		if h := strings.TrimSpace(s.Headers[col]); h != "" {
			return h
		}
	}
	return fmt.Sprintf("Column %d", col+1)
}
