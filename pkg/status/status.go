// Package status checks the registry status of a company against an
// external provider. The mock provider stands in for the commercial API
// during development and in tests.
package status

import (
	"context"
	"strings"
	"time"

	"github.com/corporate-radar/backend/internal/util"
)

// Status is the registry status of a company as reported by a provider.
type Status string

const (
	StatusActive      Status = "ACTIVE"
	StatusInsolvent   Status = "INSOLVENT"
	StatusLiquidation Status = "LIQUIDATION"
	StatusDeleted     Status = "DELETED"
	StatusWarning     Status = "WARNING"
	StatusUnknown     Status = "UNKNOWN"
)

// Provider answers live status checks for a single company.
type Provider interface {
	CheckStatus(ctx context.Context, companyID string, companyName string) (Status, error)
}

// MockProvider derives a deterministic status from the company name and
// identifier, with an artificial delay to mimic an upstream round trip.
type MockProvider struct {
	// Delay per check; zero disables the artificial latency.
	Delay time.Duration
}

func NewMockProvider() *MockProvider {
	return &MockProvider{Delay: 500 * time.Millisecond}
}

func (p *MockProvider) CheckStatus(ctx context.Context, companyID string, companyName string) (Status, error) {
	if p.Delay > 0 {
		select {
		case <-time.After(p.Delay):
		case <-ctx.Done():
			return StatusUnknown, ctx.Err()
		}
	}

	name := strings.ToLower(companyName)
	switch {
	case strings.Contains(name, "insolvenz"):
		return StatusInsolvent, nil
	case strings.Contains(name, "liquidation"), strings.Contains(name, "abwicklung"):
		return StatusLiquidation, nil
	case strings.Contains(name, "löschung"), strings.Contains(name, "loeschung"):
		return StatusDeleted, nil
	case strings.HasSuffix(companyID, "9"):
		return StatusWarning, nil
	default:
		return StatusActive, nil
	}
}

// NorthDataProvider is the placeholder for the commercial registry API.
// Until credentials and the client are wired in it reports every company
// as unknown.
type NorthDataProvider struct{}

func NewNorthDataProvider() *NorthDataProvider {
	return &NorthDataProvider{}
}

func (p *NorthDataProvider) CheckStatus(ctx context.Context, companyID string, companyName string) (Status, error) {
	return StatusUnknown, nil
}

// FromEnv selects the provider via USE_MOCK_DATA, defaulting to the mock.
func FromEnv() Provider {
	if util.GetEnvBool("USE_MOCK_DATA", true) {
		return NewMockProvider()
	}
	return NewNorthDataProvider()
}
