package status

import (
	"context"
	"testing"
)

func TestMockProviderCheckStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		companyID   string
		companyName string
		want        Status
	}{
		{name: "insolvency marker", companyID: "c1", companyName: "Muster Insolvenzverwaltung GmbH", want: StatusInsolvent},
		{name: "liquidation marker", companyID: "c1", companyName: "Beta AG in Liquidation", want: StatusLiquidation},
		{name: "winding-up marker", companyID: "c1", companyName: "Gamma KG in Abwicklung", want: StatusLiquidation},
		{name: "deletion marker", companyID: "c1", companyName: "Delta GmbH Löschung", want: StatusDeleted},
		{name: "deletion marker ascii spelling", companyID: "c1", companyName: "Delta GmbH Loeschung", want: StatusDeleted},
		{name: "id suffix heuristic", companyID: "de-hrb-12349", companyName: "Acme GmbH", want: StatusWarning},
		{name: "default active", companyID: "de-hrb-12345", companyName: "Acme GmbH", want: StatusActive},
		{name: "name marker wins over id suffix", companyID: "de-hrb-12349", companyName: "Acme Insolvenz GmbH", want: StatusInsolvent},
		{name: "marker match is case-insensitive", companyID: "c1", companyName: "acme INSOLVENZ gmbh", want: StatusInsolvent},
	}

	provider := &MockProvider{}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := provider.CheckStatus(context.Background(), tt.companyID, tt.companyName)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestMockProviderHonorsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := NewMockProvider()
	_, err := provider.CheckStatus(ctx, "c1", "Acme GmbH")
	if err == nil {
		t.Error("expected context error from canceled check")
	}
}

func TestNorthDataProviderReportsUnknown(t *testing.T) {
	t.Parallel()

	provider := NewNorthDataProvider()
	got, err := provider.CheckStatus(context.Background(), "c1", "Acme GmbH")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != StatusUnknown {
		t.Errorf("expected UNKNOWN, got %s", got)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("USE_MOCK_DATA", "false")
	if _, ok := FromEnv().(*NorthDataProvider); !ok {
		t.Error("expected NorthData provider when mocking is disabled")
	}

	t.Setenv("USE_MOCK_DATA", "true")
	if _, ok := FromEnv().(*MockProvider); !ok {
		t.Error("expected mock provider when mocking is enabled")
	}
}
