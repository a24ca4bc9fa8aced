package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/pkg/ui"
)

var (
	addID           string
	addRecordDate   string
	addName         string
	addLocation     string
	addProject      string
	addTower        string
	addFloor        string
	addUnit         string
	addCommencement string
	addExpiry       string
	addOwner        string
	addTenant       string
	addTenantType   string
	addBrokerage    string
	addManager      string
	addSet          []string
	addDocs         []string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an asset to the register",
	Long: `Enter a new asset row and optionally upload its documents.

Dates use MM-DD-YYYY. Document slots are KYC, Tenant Verification,
Property Tax, Lease Deed and Cheque PDC; give each a file path or NA.
Columns without a dedicated flag can be set by 1-based position with --set.

Examples:
  assetra add --id 42 --name "Skyline Plaza" --project Skyline \
    --tower T4 --floor 12 --unit B --expiry 06-30-2027

  assetra add --id 43 --name "Harbor View" \
    --doc "KYC=/tmp/kyc.pdf" --doc "Lease Deed=NA"

  assetra add --id 44 --name "Annex" --set "6=Retail" --set "8=Ground"`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addID, "id", "", "Serial number of the asset")
	addCmd.Flags().StringVar(&addRecordDate, "record-date", "", "Entry date (MM-DD-YYYY)")
	addCmd.Flags().StringVar(&addName, "name", "", "Asset name / micro market")
	addCmd.Flags().StringVar(&addLocation, "location", "", "Location")
	addCmd.Flags().StringVar(&addProject, "project", "", "Project")
	addCmd.Flags().StringVar(&addTower, "tower", "", "Tower")
	addCmd.Flags().StringVar(&addFloor, "floor", "", "Floor")
	addCmd.Flags().StringVar(&addUnit, "unit", "", "Unit number")
	addCmd.Flags().StringVar(&addCommencement, "commencement", "", "Lease commencement (MM-DD-YYYY)")
	addCmd.Flags().StringVar(&addExpiry, "expiry", "", "Lease expiry (MM-DD-YYYY)")
	addCmd.Flags().StringVar(&addOwner, "owner", "", "Owner")
	addCmd.Flags().StringVar(&addTenant, "tenant", "", "Tenant")
	addCmd.Flags().StringVar(&addTenantType, "tenant-type", "", "Tenant type")
	addCmd.Flags().StringVar(&addBrokerage, "brokerage", "", "Brokerage status (Pending or Received)")
	addCmd.Flags().StringVar(&addManager, "manager", "", "Lease manager (defaults from config)")
	addCmd.Flags().StringArrayVar(&addSet, "set", nil, "Set a core column by position: \"N=value\"")
	addCmd.Flags().StringArrayVar(&addDocs, "doc", nil, "Attach a document: \"SLOT=path\" or \"SLOT=NA\"")
}

func runAdd(cmd *cobra.Command, args []string) error {
	draft, err := buildDraft()
	if err != nil {
		fmt.Println(ui.FormatError(err.Error()))
		return err
	}

	fmt.Println(ui.FormatInfo("Submitting asset to the register..."))

	ctx := getContext()
	result, err := submissionService.Submit(ctx, draft)
	if err != nil {
		fmt.Println(ui.FormatError("Submission failed: " + err.Error()))
		fmt.Println(ui.FormatInfo("Your entries are kept; fix the problem and retry"))
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Asset added at row %d", result.SheetRow)))
	if result.Uploaded > 0 {
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("Uploaded %d document(s)", result.Uploaded)))
		fmt.Println(ui.RenderKeyValue("Folder", result.FolderLink))
	}
	return nil
}

// buildDraft assembles a submission draft from the command flags.
func buildDraft() (*domain.Draft, error) {
	draft := domain.NewDraft()

	named := map[int]string{
		domain.ColSerial:       addID,
		domain.ColRecordDate:   addRecordDate,
		domain.ColName:         addName,
		domain.ColLocation:     addLocation,
		domain.ColProject:      addProject,
		domain.ColTower:        addTower,
		domain.ColFloor:        addFloor,
		domain.ColUnit:         addUnit,
		domain.ColCommencement: addCommencement,
		domain.ColLeaseExpiry:  addExpiry,
		domain.ColOwner:        addOwner,
		domain.ColTenant:       addTenant,
	}
	for col, value := range named {
		if value == "" {
			continue
		}
		if err := draft.SetCore(col, value); err != nil {
			return nil, err
		}
	}

	// Positional overrides for columns without a flag
	for _, entry := range addSet {
		pos, value, err := splitSetEntry(entry)
		if err != nil {
			return nil, err
		}
		if err := draft.SetCore(pos-1, value); err != nil {
			return nil, err
		}
	}

	draft.TenantType = addTenantType
	draft.Brokerage = addBrokerage
	draft.Manager = addManager
	if draft.Manager == "" {
		draft.Manager = appConfig.LeaseManager
	}

	for _, entry := range addDocs {
		slot, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --doc %q: want \"SLOT=path\" or \"SLOT=NA\"", entry)
		}
		slot = strings.TrimSpace(slot)
		value = strings.TrimSpace(value)
		if strings.EqualFold(value, domain.AttachmentNA) {
			if err := draft.Documents.MarkNA(slot); err != nil {
				return nil, err
			}
			continue
		}
		if err := draft.Documents.Choose(slot, value); err != nil {
			return nil, err
		}
	}

	return draft, nil
}

// splitSetEntry parses one "N=value" override; N is a 1-based column.
func splitSetEntry(entry string) (int, string, error) {
	posStr, value, ok := strings.Cut(entry, "=")
	if !ok {
		return 0, "", fmt.Errorf("invalid --set %q: want \"N=value\"", entry)
	}
	pos, err := strconv.Atoi(strings.TrimSpace(posStr))
	if err != nil || pos < 1 || pos > domain.CoreFieldCount {
		return 0, "", fmt.Errorf("invalid --set column %q: want 1-%d", posStr, domain.CoreFieldCount)
	}
	return pos, value, nil
}
