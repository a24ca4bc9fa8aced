package cmd

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// openBrowser opens a URL with the OS default browser.
func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	// Start() detaches so assetra can exit while the browser stays open
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open '%s': %w", url, err)
	}
	return nil
}

// blankIfEmpty substitutes a placeholder for empty cell values in detail views.
func blankIfEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
