package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/internal/core/services"
	"github.com/assetra/assetra-cli/pkg/config"
	"github.com/assetra/assetra-cli/pkg/ui"
)

var watchQuiet bool

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Periodically re-check lease expiries",
	Long: `Run in the foreground and re-read the register on an interval, printing
any leases inside the reminder window. Edits to the config file are
picked up live, so the interval and window can be changed without a
restart.

Use --quiet to print only when something needs attention.`,
	RunE: runWatchLoop,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Print only non-empty reminder sets")
}

func runWatchLoop(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(getContext(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interval := time.Duration(appConfig.RefreshIntervalMinutes) * time.Minute

	fmt.Println(ui.FormatInfo(fmt.Sprintf("Watching the register every %s", interval)))
	fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
	fmt.Println()

	// Config reload on save. The watcher covers the directory because
	// editors typically replace the file rather than write in place.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(configPath)); err != nil {
		appLogger.Warn("config watch unavailable", zap.Error(err))
	}

	check := func() {
		window, err := services.ParseWindow(appConfig.DefaultWindow)
		if err != nil {
			window = services.WindowDays(30)
		}
		resp, err := remindersService.Execute(ctx, window)
		if err != nil {
			fmt.Println(ui.FormatError("Register check failed: " + err.Error()))
			return
		}
		if resp.Total == 0 {
			if !watchQuiet {
				fmt.Printf("%s %s\n",
					ui.FormatMuted(time.Now().Format("15:04")),
					ui.FormatSuccess("No leases in the window"))
			}
			return
		}
		fmt.Printf("%s %s\n",
			ui.FormatMuted(time.Now().Format("15:04")),
			ui.FormatWarning(fmt.Sprintf("%d lease(s) in the window", resp.Total)))
		for _, rem := range resp.Reminders {
			fmt.Printf("  %s %s %s\n",
				ui.FormatBand(string(rem.Band), domain.FormatDays(rem.DaysLeft)+"d"),
				rem.Record.DisplayID(),
				rem.Record.Name())
		}
	}

	check()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			check()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != configPath {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				cfg, err := config.Load(configPath)
				if err != nil {
					fmt.Println(ui.FormatWarning("Config reload failed: " + err.Error()))
					continue
				}
				appConfig = cfg
				newInterval := time.Duration(appConfig.RefreshIntervalMinutes) * time.Minute
				if newInterval != interval {
					interval = newInterval
					ticker.Reset(interval)
				}
				fmt.Println(ui.FormatInfo(fmt.Sprintf("Config reloaded (window %s, every %s)",
					appConfig.DefaultWindow, interval)))
				check()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			appLogger.Warn("watcher error", zap.Error(err))

		case <-ctx.Done():
			fmt.Println()
			fmt.Println(ui.FormatMuted("Watch stopped"))
			return nil
		}
	}
}
