package cmd

import (
	"testing"

	"github.com/assetra/assetra-cli/internal/core/ports/mocks"
	"github.com/assetra/assetra-cli/internal/core/services"
)

// TestCommandStructure verifies that all commands are properly registered
func TestCommandStructure(t *testing.T) {
	commands := []string{
		"list", "add", "reminders", "brokerage", "status", "browse",
		"inspect", "open", "watch", "doctor", "config", "version",
	}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{cmdName})
			if err != nil {
				t.Errorf("Command '%s' not found: %v", cmdName, err)
			}
			if cmd == nil {
				t.Errorf("Command '%s' is nil", cmdName)
			}
			if cmd.Use == "" {
				t.Errorf("Command '%s' has no Use field", cmdName)
			}
		})
	}
}

// TestRootCommandExists verifies the root command is properly configured
func TestRootCommandExists(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("Root command is nil")
	}

	if rootCmd.Use != "assetra" {
		t.Errorf("Expected root command Use to be 'assetra', got '%s'", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Root command Short description is empty")
	}
}

// TestCommandsHaveHelp verifies all commands have help text
func TestCommandsHaveHelp(t *testing.T) {
	commands := rootCmd.Commands()

	if len(commands) == 0 {
		t.Fatal("No commands registered")
	}

	for _, cmd := range commands {
		t.Run(cmd.Name(), func(t *testing.T) {
			if cmd.Short == "" {
				t.Errorf("Command '%s' has no Short description", cmd.Name())
			}
		})
	}
}

// TestServiceInitialization verifies services can be initialized with mocks
func TestServiceInitialization(t *testing.T) {
	register := mocks.NewMockRegister(nil)
	store := mocks.NewMockStore()

	if services.NewListService(register) == nil {
		t.Error("ListService is nil")
	}
	if services.NewRemindersService(register) == nil {
		t.Error("RemindersService is nil")
	}
	if services.NewBrokerageService(register) == nil {
		t.Error("BrokerageService is nil")
	}
	if services.NewSubmissionService(register, store) == nil {
		t.Error("SubmissionService is nil")
	}
	if services.NewStatusService(register) == nil {
		t.Error("StatusService is nil")
	}
}
