package services

import (
	"context"
	"testing"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/internal/core/ports/mocks"
)

func brokerageFixture(statuses []string) [][]string {
	rows := [][]string{headerRow()}
	for i, status := range statuses {
		rows = append(rows, dataRow(
			string(rune('1'+i)), "Asset",
			map[int]string{domain.ColBrokerage: status},
		))
	}
	return rows
}

func TestBrokerageService_Stats(t *testing.T) {
	// Unrecognized and empty status cells count as pending.
	rows := brokerageFixture([]string{"Received", "received", "", "Pending", "Foo"})
	svc := NewBrokerageService(mocks.NewMockRegister(rows))

	resp, err := svc.Execute(context.Background(), FilterAll)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if resp.Stats.Total != 5 {
		t.Errorf("Total = %d, want 5", resp.Stats.Total)
	}
	if resp.Stats.Received != 2 {
		t.Errorf("Received = %d, want 2", resp.Stats.Received)
	}
	if resp.Stats.Pending != 3 {
		t.Errorf("Pending = %d, want 3", resp.Stats.Pending)
	}
	if resp.Stats.ReceivedPercentage != 40.0 {
		t.Errorf("ReceivedPercentage = %v, want 40", resp.Stats.ReceivedPercentage)
	}
	if resp.Stats.Received+resp.Stats.Pending != resp.Stats.Total {
		t.Error("received and pending do not partition the total")
	}
}

func TestBrokerageService_Filter(t *testing.T) {
	rows := brokerageFixture([]string{"Received", "", "Pending"})

	tests := []struct {
		name    string
		filter  StatusFilter
		wantIDs []string
	}{
		{"all", FilterAll, []string{"1", "2", "3"}},
		{"received", FilterStatus(domain.StatusReceived), []string{"1"}},
		{"pending includes blanks", FilterStatus(domain.StatusPending), []string{"2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewBrokerageService(mocks.NewMockRegister(rows))

			resp, err := svc.Execute(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if len(resp.Rows) != len(tt.wantIDs) {
				t.Fatalf("rows = %d, want %d", len(resp.Rows), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got := resp.Rows[i].Record.ID(); got != want {
					t.Errorf("row %d id = %q, want %q", i, got, want)
				}
			}
			// The summary is computed over the whole register regardless of
			// the filter.
			if resp.Stats.Total != 3 {
				t.Errorf("Stats.Total = %d, want 3", resp.Stats.Total)
			}
		})
	}
}

func TestBrokerageService_EmptyRegister(t *testing.T) {
	svc := NewBrokerageService(mocks.NewMockRegister([][]string{headerRow()}))

	resp, err := svc.Execute(context.Background(), FilterAll)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.Stats.Total != 0 || resp.Stats.ReceivedPercentage != 0 {
		t.Errorf("empty register stats = %+v", resp.Stats)
	}
}

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		input   string
		want    StatusFilter
		wantErr bool
	}{
		{input: "all", want: FilterAll},
		{input: "", want: FilterAll},
		{input: "Pending", want: FilterStatus(domain.StatusPending)},
		{input: "RECEIVED", want: FilterStatus(domain.StatusReceived)},
		{input: "done", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseStatusFilter(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseStatusFilter(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatusFilter(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatusFilter(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
