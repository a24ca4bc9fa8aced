package services

import (
	"context"
	"errors"
	"testing"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/internal/core/ports/mocks"
)

func TestStatusService_Update(t *testing.T) {
	rows := [][]string{
		headerRow(),
		dataRow("1", "Skyline Plaza", map[int]string{domain.ColBrokerage: "Pending"}),
		dataRow("2", "Harbor View", nil),
	}
	reg := mocks.NewMockRegister(rows)
	svc := NewStatusService(reg)

	key := domain.RecordKey{ID: "2", Name: "Harbor View"}
	if err := svc.Update(context.Background(), key, domain.StatusReceived); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(reg.Updates) != 1 {
		t.Fatalf("updates = %d, want 1", len(reg.Updates))
	}
	got := reg.Updates[0]
	if got.Row != 3 {
		t.Errorf("row = %d, want 3", got.Row)
	}
	if got.Col != domain.ColBrokerage+1 {
		t.Errorf("col = %d, want %d", got.Col, domain.ColBrokerage+1)
	}
	if got.Value != "Received" {
		t.Errorf("value = %q, want Received", got.Value)
	}
}

func TestStatusService_NotFoundWritesNothing(t *testing.T) {
	rows := [][]string{
		headerRow(),
		dataRow("1", "Skyline Plaza", nil),
	}
	reg := mocks.NewMockRegister(rows)
	svc := NewStatusService(reg)

	// Same id, wrong name: both halves of the key must match.
	key := domain.RecordKey{ID: "1", Name: "Harbor View"}
	err := svc.Update(context.Background(), key, domain.StatusReceived)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
	if len(reg.Updates) != 0 {
		t.Errorf("updates = %d, want 0", len(reg.Updates))
	}
}

func TestStatusService_WriteFailure(t *testing.T) {
	rows := [][]string{
		headerRow(),
		dataRow("1", "Skyline Plaza", nil),
	}
	reg := mocks.NewMockRegister(rows)
	reg.UpdateErr = errors.New("permission denied")
	svc := NewStatusService(reg)

	err := svc.Update(context.Background(),
		domain.RecordKey{ID: "1", Name: "Skyline Plaza"}, domain.StatusReceived)

	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != StepCellUpdate {
		t.Fatalf("want cell-update StepError, got %v", err)
	}
}
