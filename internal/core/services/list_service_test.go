package services

import (
	"context"
	"errors"
	"testing"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/internal/core/ports/mocks"
)

func uploadedDocs() map[int]string {
	m := make(map[int]string)
	for col := domain.ColDocFirst; col <= domain.ColDocLast; col++ {
		m[col] = "UPLOADED"
	}
	return m
}

func TestListService_Execute(t *testing.T) {
	rows := [][]string{
		headerRow(),
		dataRow("1", "Skyline Plaza", uploadedDocs()),
		dataRow("2", "Harbor View", map[int]string{domain.ColLocation: "Marine Drive"}),
		dataRow("3", "Skyline Annex", uploadedDocs()),
	}

	tests := []struct {
		name        string
		request     ListRequest
		expectedIDs []string
	}{
		{
			name:        "no search matches all",
			request:     ListRequest{},
			expectedIDs: []string{"1", "2", "3"},
		},
		{
			name:        "substring match is case insensitive",
			request:     ListRequest{Search: "SKYLINE"},
			expectedIDs: []string{"1", "3"},
		},
		{
			name:        "search matches any cell",
			request:     ListRequest{Search: "marine"},
			expectedIDs: []string{"2"},
		},
		{
			name:        "no matches",
			request:     ListRequest{Search: "zzz"},
			expectedIDs: nil,
		},
		{
			name:        "attention only",
			request:     ListRequest{AttentionOnly: true},
			expectedIDs: []string{"2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewListService(mocks.NewMockRegister(rows))

			resp, err := svc.Execute(context.Background(), tt.request)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}

			if resp.Total != len(tt.expectedIDs) {
				t.Fatalf("Total = %d, want %d", resp.Total, len(tt.expectedIDs))
			}
			for i, want := range tt.expectedIDs {
				if got := resp.Items[i].Record.ID(); got != want {
					t.Errorf("item %d id = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestListService_AttentionFlag(t *testing.T) {
	rows := [][]string{
		headerRow(),
		dataRow("1", "Complete", uploadedDocs()),
		dataRow("2", "Incomplete", nil), // all document cells empty
	}
	svc := NewListService(mocks.NewMockRegister(rows))

	resp, err := svc.Execute(context.Background(), ListRequest{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.Items[0].NeedsAttention {
		t.Error("complete row flagged")
	}
	if !resp.Items[1].NeedsAttention {
		t.Error("incomplete row not flagged")
	}
}

func TestListService_ShortRowsAreNotErrors(t *testing.T) {
	rows := [][]string{
		headerRow(),
		{"1", "", "Stub Row"}, // far shorter than the register layout
	}
	svc := NewListService(mocks.NewMockRegister(rows))

	resp, err := svc.Execute(context.Background(), ListRequest{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("Total = %d, want 1", resp.Total)
	}
	if !resp.Items[0].NeedsAttention {
		t.Error("short row should need attention")
	}
}

func TestListService_ReadError(t *testing.T) {
	reg := mocks.NewMockRegister([][]string{headerRow()})
	reg.ReadErr = errors.New("network down")

	if _, err := NewListService(reg).Execute(context.Background(), ListRequest{}); err == nil {
		t.Error("expected error from failed read")
	}
}

func TestListService_Get(t *testing.T) {
	rows := [][]string{
		headerRow(),
		dataRow("1", "Skyline Plaza", nil),
	}
	svc := NewListService(mocks.NewMockRegister(rows))

	rec, headers, err := svc.Get(context.Background(), domain.RecordKey{ID: "1", Name: "Skyline Plaza"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.SheetRow != 2 {
		t.Errorf("SheetRow = %d, want 2", rec.SheetRow)
	}
	if len(headers) != domain.RecordWidth {
		t.Errorf("headers len = %d", len(headers))
	}

	_, _, err = svc.Get(context.Background(), domain.RecordKey{ID: "9", Name: "Missing"})
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("want ErrRecordNotFound, got %v", err)
	}
}
