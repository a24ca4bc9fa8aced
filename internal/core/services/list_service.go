package services

import (
	"context"
	"fmt"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/internal/core/ports"
)

// ListService handles the asset list view: full-register reads, free-text
// search and the document-completeness flag.
type ListService struct {
	register ports.RegisterGateway
}

// NewListService creates a new list service.
func NewListService(register ports.RegisterGateway) *ListService {
	return &ListService{register: register}
}

// ListRequest represents a request to list assets.
type ListRequest struct {
	Search        string // whole-row substring match; empty matches all
	AttentionOnly bool   // keep only rows with incomplete documents
}

// ListItem is one asset row projected for the list view.
type ListItem struct {
	Record         domain.Record
	NeedsAttention bool
}

// ListResponse represents the response from listing assets.
type ListResponse struct {
	Headers []string
	Items   []ListItem
	Total   int
}

// Execute re-reads the register and applies the search predicate. The result
// is rebuilt from source on every call; nothing is cached between refreshes.
func (s *ListService) Execute(ctx context.Context, req ListRequest) (*ListResponse, error) {
	snap, err := ports.ReadSnapshot(ctx, s.register)
	if err != nil {
		return nil, fmt.Errorf("failed to read register: %w", err)
	}

	resp := &ListResponse{Headers: snap.Headers}
	for _, rec := range snap.Records {
		if !rec.MatchesSearch(req.Search) {
			continue
		}
		attention := rec.NeedsAttention()
		if req.AttentionOnly && !attention {
			continue
		}
		resp.Items = append(resp.Items, ListItem{Record: rec, NeedsAttention: attention})
	}
	resp.Total = len(resp.Items)
	return resp, nil
}

// Get relocates a single asset by its canonical key in a fresh snapshot.
func (s *ListService) Get(ctx context.Context, key domain.RecordKey) (*domain.Record, []string, error) {
	snap, err := ports.ReadSnapshot(ctx, s.register)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read register: %w", err)
	}
	rec, ok := snap.Find(key)
	if !ok {
		return nil, nil, ErrRecordNotFound
	}
	return &rec, snap.Headers, nil
}
