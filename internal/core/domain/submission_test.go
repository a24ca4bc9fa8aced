package domain

import "testing"

func TestDraftFolderName(t *testing.T) {
	d := NewDraft()
	d.Core[ColTower] = "T4"
	d.Core[ColFloor] = "12"
	d.Core[ColUnit] = "B"
	d.Core[ColProject] = "Skyline"

	if got := d.FolderName(); got != "T4-12B Skyline" {
		t.Errorf("FolderName() = %q, want %q", got, "T4-12B Skyline")
	}
}

func TestDraftFolderNameTrimmed(t *testing.T) {
	// All components empty collapses to the bare separator shape, trimmed.
	d := NewDraft()
	if got := d.FolderName(); got != "-" {
		t.Errorf("FolderName() = %q, want %q", got, "-")
	}
}

func TestAttachmentSet(t *testing.T) {
	a := make(AttachmentSet)

	if err := a.Choose("KYC", "/tmp/kyc.pdf"); err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if err := a.MarkNA("Property Tax"); err != nil {
		t.Fatalf("MarkNA: %v", err)
	}

	if got := a.Path("KYC"); got != "/tmp/kyc.pdf" {
		t.Errorf("Path(KYC) = %q", got)
	}
	if a.Path("Property Tax") != "" {
		t.Error("NA slot should have no path")
	}
	if !a.IsNA("Property Tax") {
		t.Error("Property Tax should be NA")
	}
	if a.IsNA("KYC") {
		t.Error("KYC should not be NA")
	}
	if a.Path("Lease Deed") != "" || a.IsNA("Lease Deed") {
		t.Error("untouched slot should be absent")
	}
	if !a.HasFiles() {
		t.Error("HasFiles should be true with one real selection")
	}
}

func TestAttachmentSetAllNA(t *testing.T) {
	a := make(AttachmentSet)
	for _, slot := range DocumentSlots {
		if err := a.MarkNA(slot); err != nil {
			t.Fatalf("MarkNA(%s): %v", slot, err)
		}
	}
	if a.HasFiles() {
		t.Error("all-NA selection should not report files")
	}
}

func TestAttachmentSetUnknownSlot(t *testing.T) {
	a := make(AttachmentSet)
	if err := a.Choose("Passport", "/tmp/x.pdf"); err == nil {
		t.Error("expected error for unknown slot")
	}
	if err := a.MarkNA("Passport"); err == nil {
		t.Error("expected error for unknown slot")
	}
}

func TestDraftSetCoreAndReset(t *testing.T) {
	d := NewDraft()
	if err := d.SetCore(ColName, "Skyline Plaza"); err != nil {
		t.Fatalf("SetCore: %v", err)
	}
	if err := d.SetCore(CoreFieldCount, "x"); err == nil {
		t.Error("expected range error past the core fields")
	}

	d.TenantType = "Corporate"
	d.Brokerage = "Pending"
	_ = d.Documents.MarkNA("KYC")

	d.Reset()
	if d.Core[ColName] != "" || d.TenantType != "" || len(d.Documents) != 0 {
		t.Error("Reset should clear all fields and selections")
	}
}
