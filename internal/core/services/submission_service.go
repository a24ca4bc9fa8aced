package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/internal/core/ports"
)

// SubmissionService runs the asset submission workflow: validate the draft,
// provision document storage when files were attached, upload them, then
// append one row to the register. Nothing is written to the register until
// every upload has succeeded, so an abort at any step leaves it unmodified.
type SubmissionService struct {
	register ports.RegisterGateway
	store    ports.DocumentStore
}

// NewSubmissionService creates a new submission service.
func NewSubmissionService(register ports.RegisterGateway, store ports.DocumentStore) *SubmissionService {
	return &SubmissionService{register: register, store: store}
}

// SubmitResult reports what a successful submission did.
type SubmitResult struct {
	SheetRow      int    // 1-based position the row was inserted at
	Uploaded      int    // number of documents uploaded
	FolderLink    string // document folder URL, "" when nothing was uploaded
	AssetFolderID string
}

// Submit runs the workflow for a draft. On any failure the draft is left
// intact for correction and no row has been written.
func (s *SubmissionService) Submit(ctx context.Context, draft *domain.Draft) (*SubmitResult, error) {
	if err := s.validate(draft); err != nil {
		return nil, err
	}

	core, err := s.assembleCore(draft)
	if err != nil {
		return nil, err
	}

	docCells, result, err := s.provisionDocuments(ctx, draft)
	if err != nil {
		return nil, err
	}

	row := make([]any, 0, domain.RecordWidth)
	row = append(row, core...)
	row = append(row, draft.TenantType, draft.Brokerage)
	for _, cell := range docCells {
		row = append(row, cell)
	}
	row = append(row, draft.Manager, result.FolderLink)

	// Position is computed from a fresh row count immediately before the
	// write. A race with an external edit between read and write remains
	// possible; the register's last write wins.
	rows, err := s.register.ReadAllRows(ctx)
	if err != nil {
		return nil, &StepError{Step: StepSheetRead, Err: err}
	}
	at := len(rows) + 1
	if err := s.register.InsertRow(ctx, row, at); err != nil {
		return nil, &StepError{Step: StepRowInsert, Err: err}
	}
	result.SheetRow = at

	draft.Reset()
	return result, nil
}

// validate checks every date-tagged field before any remote call.
func (s *SubmissionService) validate(draft *domain.Draft) error {
	for _, col := range domain.DateColumns {
		if col >= domain.CoreFieldCount {
			continue
		}
		if err := domain.ValidateInputDate(draft.Core[col]); err != nil {
			return &FieldError{Field: fmt.Sprintf("column %d", col+1), Err: err}
		}
	}
	if draft.Brokerage != "" && !domain.ValidBrokerageStatus(draft.Brokerage) {
		return &FieldError{Field: "brokerage", Err: fmt.Errorf("must be Pending or Received, got %q", draft.Brokerage)}
	}
	return nil
}

// assembleCore converts the 21 leading draft values into typed cells: valid
// dates become sheet formulas, numeric-looking strings become numbers.
func (s *SubmissionService) assembleCore(draft *domain.Draft) ([]any, error) {
	dateCols := make(map[int]bool, len(domain.DateColumns))
	for _, col := range domain.DateColumns {
		dateCols[col] = true
	}

	core := make([]any, domain.CoreFieldCount)
	for col, value := range draft.Core {
		switch {
		case dateCols[col] && value != "":
			t, err := time.Parse(domain.InputDateLayout, value)
			if err != nil {
				return nil, &FieldError{Field: fmt.Sprintf("column %d", col+1), Err: err}
			}
			core[col] = domain.DateFormula(t)
		default:
			core[col] = domain.CoerceNumeric(value)
		}
	}
	return core, nil
}

// provisionDocuments walks the five document slots in order. The asset
// folder is created lazily on the first real file and reused for the rest of
// the submission.
func (s *SubmissionService) provisionDocuments(ctx context.Context, draft *domain.Draft) ([]string, *SubmitResult, error) {
	result := &SubmitResult{}
	cells := make([]string, 0, len(domain.DocumentSlots))

	for _, slot := range domain.DocumentSlots {
		switch {
		case draft.Documents.IsNA(slot):
			cells = append(cells, domain.AttachmentNA)

		case draft.Documents.Path(slot) != "":
			path := draft.Documents.Path(slot)

			if result.AssetFolderID == "" {
				id, err := s.store.CreateFolder(ctx, draft.FolderName(), "")
				if err != nil {
					return nil, nil, &StepError{Step: StepFolderCreate, Detail: slot, Err: err}
				}
				result.AssetFolderID = id
			}

			subID, err := s.store.CreateFolder(ctx, slot, result.AssetFolderID)
			if err != nil {
				return nil, nil, &StepError{Step: StepFolderCreate, Detail: slot, Err: err}
			}

			// The file may have vanished between selection and submit.
			if _, err := os.Stat(path); err != nil {
				return nil, nil, &StepError{Step: StepUpload, Detail: slot,
					Err: fmt.Errorf("file not found: %s", path)}
			}

			if _, err := s.store.UploadFile(ctx, path, subID); err != nil {
				return nil, nil, &StepError{Step: StepUpload, Detail: slot, Err: err}
			}
			cells = append(cells, "UPLOADED")
			result.Uploaded++

		default:
			cells = append(cells, "")
		}
	}

	if result.AssetFolderID != "" {
		result.FolderLink = s.store.FolderLink(result.AssetFolderID)
	}
	return cells, result, nil
}
