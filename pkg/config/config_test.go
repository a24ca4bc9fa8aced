package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SheetName != "Register" {
		t.Errorf("SheetName = %q, want Register", cfg.SheetName)
	}
	if cfg.DefaultWindow != "30" {
		t.Errorf("DefaultWindow = %q, want 30", cfg.DefaultWindow)
	}
	if cfg.RefreshIntervalMinutes != 60 {
		t.Errorf("RefreshIntervalMinutes = %d, want 60", cfg.RefreshIntervalMinutes)
	}
	if cfg.ColorTheme != "auto" {
		t.Errorf("ColorTheme = %q, want auto", cfg.ColorTheme)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SheetName != "Register" {
		t.Errorf("SheetName = %q, want default", cfg.SheetName)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "spreadsheet_id: abc123\nlease_manager: R. Mehta\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SpreadsheetID != "abc123" {
		t.Errorf("SpreadsheetID = %q", cfg.SpreadsheetID)
	}
	if cfg.LeaseManager != "R. Mehta" {
		t.Errorf("LeaseManager = %q", cfg.LeaseManager)
	}
	// Unset fields keep their defaults
	if cfg.SheetName != "Register" {
		t.Errorf("SheetName = %q, want Register", cfg.SheetName)
	}
	if cfg.RefreshIntervalMinutes != 60 {
		t.Errorf("RefreshIntervalMinutes = %d, want 60", cfg.RefreshIntervalMinutes)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("spreadsheet_id: [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.SpreadsheetID = "sheet-1"
	cfg.DriveFolderID = "folder-1"
	cfg.DefaultWindow = "expired"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.SpreadsheetID != "sheet-1" || loaded.DriveFolderID != "folder-1" {
		t.Errorf("roundtrip lost fields: %+v", loaded)
	}
	if loaded.DefaultWindow != "expired" {
		t.Errorf("DefaultWindow = %q, want expired", loaded.DefaultWindow)
	}
}

func TestValidateRemote(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ValidateRemote(); err == nil {
		t.Error("empty config should fail remote validation")
	}

	cfg.CredentialsFile = "/tmp/creds.json"
	cfg.SpreadsheetID = "abc"
	cfg.DriveFolderID = "def"
	if err := cfg.ValidateRemote(); err != nil {
		t.Errorf("ValidateRemote: %v", err)
	}
}
