package services

import (
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/accounting"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/google/uuid"
)

// ledgerSettings is shared by every service built from one container.
type ledgerSettings struct {
	roles      domain.ChartRoles
	strictRefs bool
	now        func() time.Time
	newID      func() string
}

func defaultLedgerSettings() ledgerSettings {
	return ledgerSettings{
		roles: domain.DefaultChartRoles(),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s ledgerSettings) replayOptions() accounting.ReplayOptions {
	return accounting.ReplayOptions{Strict: s.strictRefs}
}

// ServiceOption is a functional option for configuring the ledger services
type ServiceOption func(*ledgerSettings)

// WithChartRoles replaces the default code-to-role table.
func WithChartRoles(roles domain.ChartRoles) ServiceOption {
	return func(s *ledgerSettings) {
		s.roles = roles
	}
}

// WithStrictAccountRefs makes journal scans fail on entries pointing at unknown accounts.
func WithStrictAccountRefs(strict bool) ServiceOption {
	return func(s *ledgerSettings) {
		s.strictRefs = strict
	}
}

// WithClock overrides the wall clock used for audit fields and references.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *ledgerSettings) {
		s.now = now
	}
}

// WithIDGenerator overrides the generator used for entity IDs.
func WithIDGenerator(newID func() string) ServiceOption {
	return func(s *ledgerSettings) {
		s.newID = newID
	}
}

func applyOptions(options []ServiceOption) ledgerSettings {
	settings := defaultLedgerSettings()
	for _, option := range options {
		option(&settings)
	}
	return settings
}
