package domain

import (
	"fmt"
	"strings"
)

// DocumentSlots are the five fixed document categories tracked per asset, in
// the order their status cells appear in the register.
var DocumentSlots = []string{
	"KYC",
	"Tenant Verification",
	"Property Tax",
	"Lease Deed",
	"Cheque PDC",
}

// AttachmentNA marks a document slot as not applicable.
const AttachmentNA = "NA"

// AttachmentSet is the transient per-submission selection: document slot to
// local file path, the NA sentinel, or absent. It lives only between begin
// submission and submit or discard.
type AttachmentSet map[string]string

// Choose records a local file selection for a slot.
func (a AttachmentSet) Choose(slot, path string) error {
	if !validSlot(slot) {
		return fmt.Errorf("unknown document slot: %q", slot)
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("no file selected for %s", slot)
	}
	a[slot] = path
	return nil
}

// MarkNA records a slot as not applicable.
func (a AttachmentSet) MarkNA(slot string) error {
	if !validSlot(slot) {
		return fmt.Errorf("unknown document slot: %q", slot)
	}
	a[slot] = AttachmentNA
	return nil
}

// Path returns the chosen local path for a slot, or "" when the slot is
// absent or marked NA.
func (a AttachmentSet) Path(slot string) string {
	v := a[slot]
	if v == AttachmentNA {
		return ""
	}
	return v
}

// IsNA reports whether the slot was explicitly marked not applicable.
func (a AttachmentSet) IsNA(slot string) bool {
	return a[slot] == AttachmentNA
}

// HasFiles reports whether any slot holds a real file selection, which is
// what decides if remote storage must be provisioned at all.
func (a AttachmentSet) HasFiles() bool {
	for _, slot := range DocumentSlots {
		if a.Path(slot) != "" {
			return true
		}
	}
	return false
}

func validSlot(slot string) bool {
	for _, s := range DocumentSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Draft is a pending asset submission: the 21 core column values in register
// order, the workflow tail fields, and the document selection.
type Draft struct {
	Core       []string // len CoreFieldCount, indexed by column offset
	TenantType string
	Brokerage  string
	Manager    string
	Documents  AttachmentSet
}

// NewDraft returns an empty draft ready for data entry.
func NewDraft() *Draft {
	return &Draft{
		Core:      make([]string, CoreFieldCount),
		Documents: make(AttachmentSet),
	}
}

// SetCore fills one of the leading columns.
func (d *Draft) SetCore(col int, value string) error {
	if col < 0 || col >= CoreFieldCount {
		return fmt.Errorf("column %d is outside the data-entry range", col+1)
	}
	d.Core[col] = value
	return nil
}

// FolderName derives the Drive folder name for this asset from the tower,
// floor, unit and project fields.
func (d *Draft) FolderName() string {
	name := fmt.Sprintf("%s-%s%s %s",
		d.Core[ColTower], d.Core[ColFloor], d.Core[ColUnit], d.Core[ColProject])
	return strings.TrimSpace(name)
}

// Reset clears every field and the document selection after a successful
// submission.
func (d *Draft) Reset() {
	d.Core = make([]string, CoreFieldCount)
	d.TenantType = ""
	d.Brokerage = ""
	d.Manager = ""
	d.Documents = make(AttachmentSet)
}
