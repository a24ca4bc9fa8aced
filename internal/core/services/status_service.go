package services

import (
	"context"
	"fmt"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/internal/core/ports"
)

// StatusService updates the brokerage status cell of a single asset.
type StatusService struct {
	register ports.RegisterGateway
}

// NewStatusService creates a new status service.
func NewStatusService(register ports.RegisterGateway) *StatusService {
	return &StatusService{register: register}
}

// Update relocates the record by its canonical key in a freshly read
// snapshot and writes the brokerage column of that row. When the key matches
// no row, nothing is written and ErrRecordNotFound is returned. Callers
// refresh their view from another full read afterwards; there is no
// optimistic local update.
func (s *StatusService) Update(ctx context.Context, key domain.RecordKey, status domain.BrokerageStatus) error {
	snap, err := ports.ReadSnapshot(ctx, s.register)
	if err != nil {
		return &StepError{Step: StepSheetRead, Err: err}
	}

	rec, ok := snap.Find(key)
	if !ok {
		return fmt.Errorf("asset %s (%s): %w", key.ID, key.Name, ErrRecordNotFound)
	}

	col := domain.ColBrokerage + 1 // sheet columns are 1-based
	if err := s.register.UpdateCell(ctx, rec.SheetRow, col, string(status)); err != nil {
		return &StepError{Step: StepCellUpdate,
			Detail: fmt.Sprintf("row %d", rec.SheetRow), Err: err}
	}
	return nil
}
