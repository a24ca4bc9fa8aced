package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/internal/core/ports"
)

// StatusFilter selects which brokerage rows the view shows.
type StatusFilter struct {
	all    bool
	status domain.BrokerageStatus
}

// FilterAll shows every row.
var FilterAll = StatusFilter{all: true}

// FilterStatus shows rows with the given normalized status.
func FilterStatus(s domain.BrokerageStatus) StatusFilter {
	return StatusFilter{status: s}
}

// ParseStatusFilter parses the view's filter value: "all", "pending" or
// "received".
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return FilterAll, nil
	case "pending":
		return FilterStatus(domain.StatusPending), nil
	case "received":
		return FilterStatus(domain.StatusReceived), nil
	}
	return StatusFilter{}, fmt.Errorf("invalid status filter %q: want all, pending or received", s)
}

func (f StatusFilter) matches(s domain.BrokerageStatus) bool {
	return f.all || f.status == s
}

// BrokerageStats are the aggregate counts over the whole register, not just
// the filtered rows. Rows with empty or unrecognized status cells count as
// pending.
type BrokerageStats struct {
	Total              int
	Received           int
	Pending            int
	ReceivedPercentage float64
}

// BrokerageRow is one row of the brokerage view.
type BrokerageRow struct {
	Record domain.Record
	Status domain.BrokerageStatus
}

// BrokerageResponse is the brokerage view: summary stats plus filtered rows.
type BrokerageResponse struct {
	Stats BrokerageStats
	Rows  []BrokerageRow
}

// BrokerageService produces the brokerage workflow view.
type BrokerageService struct {
	register ports.RegisterGateway
}

// NewBrokerageService creates a new brokerage service.
func NewBrokerageService(register ports.RegisterGateway) *BrokerageService {
	return &BrokerageService{register: register}
}

// Execute re-reads the register, computes the aggregate counts and returns
// the rows matching the filter.
func (s *BrokerageService) Execute(ctx context.Context, filter StatusFilter) (*BrokerageResponse, error) {
	snap, err := ports.ReadSnapshot(ctx, s.register)
	if err != nil {
		return nil, fmt.Errorf("failed to read register: %w", err)
	}

	resp := &BrokerageResponse{}
	for _, rec := range snap.Records {
		status := rec.Brokerage()

		resp.Stats.Total++
		if status == domain.StatusReceived {
			resp.Stats.Received++
		} else {
			resp.Stats.Pending++
		}

		if filter.matches(status) {
			resp.Rows = append(resp.Rows, BrokerageRow{Record: rec, Status: status})
		}
	}

	if resp.Stats.Total > 0 {
		resp.Stats.ReceivedPercentage = float64(resp.Stats.Received) / float64(resp.Stats.Total) * 100
	}
	return resp, nil
}
