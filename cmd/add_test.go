package cmd

import (
	"testing"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/pkg/config"
)

func resetAddFlags() {
	addID, addRecordDate, addName = "", "", ""
	addLocation, addProject = "", ""
	addTower, addFloor, addUnit = "", "", ""
	addCommencement, addExpiry = "", ""
	addOwner, addTenant, addTenantType = "", "", ""
	addBrokerage, addManager = "", ""
	addSet, addDocs = nil, nil
}

func TestBuildDraft(t *testing.T) {
	resetAddFlags()
	defer resetAddFlags()
	appConfig = config.DefaultConfig()

	addID = "7"
	addName = "Skyline Plaza"
	addProject = "Skyline"
	addTower = "T4"
	addFloor = "12"
	addUnit = "B"
	addExpiry = "06-30-2027"
	addTenantType = "Corporate"
	addBrokerage = "Pending"
	addSet = []string{"6=Retail"}
	addDocs = []string{"KYC=NA", "Lease Deed=/tmp/deed.pdf"}

	draft, err := buildDraft()
	if err != nil {
		t.Fatalf("buildDraft: %v", err)
	}

	if draft.Core[domain.ColSerial] != "7" {
		t.Errorf("serial = %q", draft.Core[domain.ColSerial])
	}
	if draft.Core[domain.ColLeaseExpiry] != "06-30-2027" {
		t.Errorf("expiry = %q", draft.Core[domain.ColLeaseExpiry])
	}
	if draft.Core[5] != "Retail" {
		t.Errorf("column 6 = %q, want Retail", draft.Core[5])
	}
	if draft.FolderName() != "T4-12B Skyline" {
		t.Errorf("FolderName = %q", draft.FolderName())
	}
	if !draft.Documents.IsNA("KYC") {
		t.Error("KYC not marked NA")
	}
	if draft.Documents.Path("Lease Deed") != "/tmp/deed.pdf" {
		t.Errorf("Lease Deed path = %q", draft.Documents.Path("Lease Deed"))
	}
}

func TestBuildDraftManagerDefaultsFromConfig(t *testing.T) {
	resetAddFlags()
	defer resetAddFlags()

	appConfig = config.DefaultConfig()
	appConfig.LeaseManager = "R. Mehta"

	draft, err := buildDraft()
	if err != nil {
		t.Fatalf("buildDraft: %v", err)
	}
	if draft.Manager != "R. Mehta" {
		t.Errorf("Manager = %q, want config default", draft.Manager)
	}

	addManager = "A. Shah"
	draft, err = buildDraft()
	if err != nil {
		t.Fatalf("buildDraft: %v", err)
	}
	if draft.Manager != "A. Shah" {
		t.Errorf("Manager = %q, want flag to win", draft.Manager)
	}
}

func TestBuildDraftRejectsBadInput(t *testing.T) {
	appConfig = config.DefaultConfig()

	tests := []struct {
		name  string
		setup func()
	}{
		{"unknown doc slot", func() { addDocs = []string{"Passport=/tmp/x.pdf"} }},
		{"malformed doc", func() { addDocs = []string{"KYC"} }},
		{"malformed set", func() { addSet = []string{"novalue"} }},
		{"set column zero", func() { addSet = []string{"0=x"} }},
		{"set column out of range", func() { addSet = []string{"22=x"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetAddFlags()
			defer resetAddFlags()
			tt.setup()

			if _, err := buildDraft(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSplitSetEntry(t *testing.T) {
	pos, value, err := splitSetEntry("6=Retail")
	if err != nil {
		t.Fatalf("splitSetEntry: %v", err)
	}
	if pos != 6 || value != "Retail" {
		t.Errorf("got %d/%q", pos, value)
	}

	// Values may themselves contain '='
	_, value, err = splitSetEntry("9=a=b")
	if err != nil {
		t.Fatalf("splitSetEntry: %v", err)
	}
	if value != "a=b" {
		t.Errorf("value = %q, want a=b", value)
	}
}
