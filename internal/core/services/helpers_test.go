package services

import (
	"github.com/assetra/assetra-cli/internal/core/domain"
)

// headerRow builds a register header with generic labels.
func headerRow() []string {
	h := make([]string, domain.RecordWidth)
	h[domain.ColSerial] = "S.No"
	h[domain.ColName] = "Micro Market"
	h[domain.ColLocation] = "Location"
	h[domain.ColProject] = "Project"
	h[domain.ColTower] = "Tower"
	h[domain.ColFloor] = "Floor"
	h[domain.ColUnit] = "Unit Number"
	h[domain.ColLeaseExpiry] = "Lease Expiry"
	h[domain.ColBrokerage] = "Brokerage"
	h[domain.ColManager] = "Lease Manager"
	return h
}

// dataRow builds a full-width register row with an id, a name and arbitrary
// cell overrides keyed by column offset.
func dataRow(id, name string, overrides map[int]string) []string {
	cells := make([]string, domain.RecordWidth)
	cells[domain.ColSerial] = id
	cells[domain.ColName] = name
	for col, v := range overrides {
		cells[col] = v
	}
	return cells
}
