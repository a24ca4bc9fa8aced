package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/internal/core/ports"
)

// Band is the severity bucket a reminder falls into based on days remaining.
type Band string

const (
	BandCritical  Band = "critical"  // 15 days or fewer
	BandUpcoming  Band = "upcoming"  // 16 to 31 days
	BandScheduled Band = "scheduled" // more than 31 days
	BandExpired   Band = "expired"
)

// Window selects which lease expiries the reminders view shows.
type Window struct {
	all     bool
	expired bool
	days    int
}

// WindowAll keeps every lease that has not expired yet.
var WindowAll = Window{all: true}

// WindowExpired keeps only leases already expired (today included).
var WindowExpired = Window{expired: true}

// WindowDays keeps leases expiring within n days from now.
func WindowDays(n int) Window {
	return Window{days: n}
}

// ParseWindow parses the view's filter value: "all", "expired", or a number
// of days.
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return WindowAll, nil
	case "expired":
		return WindowExpired, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return Window{}, fmt.Errorf("invalid window %q: want a day count, \"all\" or \"expired\"", s)
	}
	return WindowDays(n), nil
}

// Includes reports whether a lease with the given days remaining belongs in
// this window.
func (w Window) Includes(daysLeft int) bool {
	switch {
	case w.expired:
		return daysLeft <= 0
	case w.all:
		return daysLeft > 0
	default:
		return daysLeft > 0 && daysLeft <= w.days
	}
}

// Expired reports whether this is the expired-only window.
func (w Window) Expired() bool { return w.expired }

func (w Window) String() string {
	switch {
	case w.all:
		return "all"
	case w.expired:
		return "expired"
	default:
		return strconv.Itoa(w.days)
	}
}

// Band returns the severity bucket for a days-remaining value under this
// window. Everything in the expired window bands as expired regardless of how
// long ago the lease ended.
func (w Window) Band(daysLeft int) Band {
	if w.expired {
		return BandExpired
	}
	switch {
	case daysLeft <= 15:
		return BandCritical
	case daysLeft <= 31:
		return BandUpcoming
	default:
		return BandScheduled
	}
}

// Reminder is one lease-expiry row with its computed day count and band.
type Reminder struct {
	Record   domain.Record
	Expiry   time.Time
	DaysLeft int
	Band     Band
}

// RemindersService produces the lease-expiry view.
type RemindersService struct {
	register ports.RegisterGateway
	now      func() time.Time
}

// NewRemindersService creates a new reminders service.
func NewRemindersService(register ports.RegisterGateway) *RemindersService {
	return &RemindersService{register: register, now: time.Now}
}

// WithClock overrides the time source; tests pin today with it.
func (s *RemindersService) WithClock(now func() time.Time) *RemindersService {
	s.now = now
	return s
}

// RemindersResponse is the filtered, sorted reminders view.
type RemindersResponse struct {
	Reminders []Reminder
	Total     int
}

// Execute re-reads the register, computes days remaining per row and applies
// the window. Rows with an empty or unparsable expiry cell are skipped, not
// errors. Output is sorted ascending by days remaining; ties keep register
// order.
func (s *RemindersService) Execute(ctx context.Context, w Window) (*RemindersResponse, error) {
	snap, err := ports.ReadSnapshot(ctx, s.register)
	if err != nil {
		return nil, fmt.Errorf("failed to read register: %w", err)
	}

	today := s.now()
	var out []Reminder
	for _, rec := range snap.Records {
		expiry, ok := rec.LeaseExpiry()
		if !ok {
			continue
		}
		daysLeft := domain.DaysUntil(expiry, today)
		if !w.Includes(daysLeft) {
			continue
		}
		out = append(out, Reminder{
			Record:   rec,
			Expiry:   expiry,
			DaysLeft: daysLeft,
			Band:     w.Band(daysLeft),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysLeft < out[j].DaysLeft
	})

	return &RemindersResponse{Reminders: out, Total: len(out)}, nil
}
