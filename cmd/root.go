package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/assetra/assetra-cli/internal/adapters/gdrive"
	"github.com/assetra/assetra-cli/internal/adapters/gsheets"
	"github.com/assetra/assetra-cli/internal/core/services"
	"github.com/assetra/assetra-cli/pkg/config"
	"github.com/assetra/assetra-cli/pkg/logger"
	"github.com/assetra/assetra-cli/pkg/ui"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Loaded configuration and logger
	appConfig *config.Config
	appLogger *zap.Logger

	// Adapters
	registerGateway *gsheets.SheetsGateway
	documentStore   *gdrive.DriveStore

	// Services
	listService       *services.ListService
	remindersService  *services.RemindersService
	brokerageService  *services.BrokerageService
	submissionService *services.SubmissionService
	statusService     *services.StatusService
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "assetra",
	Short: "Assetra - property register at your fingertips",
	Long: ui.StyleTitle.Render("Assetra") + " - Property Register CLI\n\n" +
		"Browse, enter and track leased assets against a shared Google Sheets\n" +
		"register, with lease-expiry reminders, brokerage tracking and document\n" +
		"uploads to Drive.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(remindersCmd)
	rootCmd.AddCommand(brokerageCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads configuration and wires the remote gateways and
// services. Commands that never touch the register skip the remote setup.
func initializeApp(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg
	appLogger = logger.New(verbose)
	ui.SetTheme(appConfig.ColorTheme)

	// config and version run without remote access
	switch cmd.Name() {
	case "config", "version", "help":
		return nil
	}

	if err := appConfig.ValidateRemote(); err != nil {
		fmt.Println(ui.FormatError("Register not configured: " + err.Error()))
		fmt.Println(ui.FormatInfo("Run 'assetra config' to set up access"))
		os.Exit(1)
	}

	ctx := getContext()

	registerGateway, err = gsheets.NewSheetsGateway(ctx,
		appConfig.CredentialsFile, appConfig.SpreadsheetID, appConfig.SheetName, appLogger)
	if err != nil {
		return fmt.Errorf("failed to connect to the register: %w", err)
	}

	documentStore, err = gdrive.NewDriveStore(ctx,
		appConfig.CredentialsFile, appConfig.DriveFolderID, appLogger)
	if err != nil {
		return fmt.Errorf("failed to connect to document storage: %w", err)
	}

	// Initialize services
	listService = services.NewListService(registerGateway)
	remindersService = services.NewRemindersService(registerGateway)
	brokerageService = services.NewBrokerageService(registerGateway)
	submissionService = services.NewSubmissionService(registerGateway, documentStore)
	statusService = services.NewStatusService(registerGateway)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
