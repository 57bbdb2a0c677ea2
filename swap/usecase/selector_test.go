package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/swap/usecase"
)

func TestSelectVenue(t *testing.T) {
	var (
		directAndPool = []domain.Venue{domain.VenueDirect, domain.VenuePool}
		directOnly    = []domain.Venue{domain.VenueDirect}
		routedOnly    = []domain.Venue{domain.VenueRouted}
	)

	quotes := func(direct, pool string) map[domain.Venue]domain.Quote {
		result := map[domain.Venue]domain.Quote{}
		if direct != "" {
			result[domain.VenueDirect] = domain.Quote{Venue: domain.VenueDirect, OutputAmount: direct}
		}
		if pool != "" {
			result[domain.VenuePool] = domain.Quote{Venue: domain.VenuePool, OutputAmount: pool}
		}
		return result
	}

	tests := []struct {
		name      string
		available []domain.Venue
		quotes    map[domain.Venue]domain.Quote

		expectedVenue domain.Venue
		expectedOk    bool
	}{
		{"direct is larger", directAndPool, quotes("100", "95"), domain.VenueDirect, true},
		{"pool is larger", directAndPool, quotes("95", "100"), domain.VenuePool, true},
		{"tie goes to direct", directAndPool, quotes("100", "100"), domain.VenueDirect, true},
		{"direct missing", directAndPool, quotes("", "95"), domain.VenueNone, false},
		{"pool is zero", directAndPool, quotes("100", "0"), domain.VenueNone, false},
		{"no quotes", directAndPool, nil, domain.VenueNone, false},
		{"single venue without quote", directOnly, nil, domain.VenueDirect, true},
		{"single routed venue", routedOnly, map[domain.Venue]domain.Quote{}, domain.VenueRouted, true},
		{"nothing available", nil, quotes("100", "95"), domain.VenueNone, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			venue, ok := usecase.SelectVenue(tc.available, tc.quotes)

			require.Equal(t, tc.expectedOk, ok)
			require.Equal(t, tc.expectedVenue, venue)
		})
	}
}
