package usecase

import (
	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
)

// venueResolver decides which venues can execute a pair.
// It only reads the registries so it is safe for concurrent use.
type venueResolver struct {
	assets mvc.AssetRegistry
	pairs  mvc.PairRegistry

	nativeDenom string
	bridgeDenom string
}

func newVenueResolver(assets mvc.AssetRegistry, pairs mvc.PairRegistry, nativeDenom, bridgeDenom string) *venueResolver {
	return &venueResolver{
		assets:      assets,
		pairs:       pairs,
		nativeDenom: nativeDenom,
		bridgeDenom: bridgeDenom,
	}
}

// ResolveVenues returns the venues able to execute from -> to.
// Direct and Pool are returned in that order. Routed is only returned alone,
// when neither Direct nor Pool applies.
func (r *venueResolver) ResolveVenues(from, to string) []domain.Venue {
	if from == "" || to == "" || from == to {
		return nil
	}

	venues := make([]domain.Venue, 0, 2)

	if r.isOracleEligible(from) && r.isOracleEligible(to) {
		venues = append(venues, domain.VenueDirect)
	}

	if _, ok := r.pairs.FindPair(from, to); ok {
		venues = append(venues, domain.VenuePool)
	}

	if len(venues) > 0 {
		return venues
	}

	if r.hasBridgePath(from, to) {
		return []domain.Venue{domain.VenueRouted}
	}

	return nil
}

// DestinationOptions returns every asset other than from with at least one venue.
func (r *venueResolver) DestinationOptions(from string) []domain.Asset {
	if from == "" {
		return nil
	}

	options := make([]domain.Asset, 0)
	for _, asset := range r.assets.GetAssets() {
		if asset.ID == from {
			continue
		}

		if len(r.ResolveVenues(from, asset.ID)) > 0 {
			options = append(options, asset)
		}
	}

	return options
}

// isOracleEligible returns true for the native settlement asset and for
// native assets listed by the exchange rate oracle.
func (r *venueResolver) isOracleEligible(assetID string) bool {
	if assetID == r.nativeDenom {
		return true
	}

	asset, err := r.assets.GetAsset(assetID)
	if err != nil {
		return false
	}

	return asset.IsNative && asset.OracleListed
}

// hasBridgePath returns true if both from -> bridge and bridge -> to are covered.
// The bridge asset never routes through itself.
func (r *venueResolver) hasBridgePath(from, to string) bool {
	if r.bridgeDenom == "" || from == r.bridgeDenom || to == r.bridgeDenom {
		return false
	}

	return r.isLegCovered(from, r.bridgeDenom) && r.isLegCovered(r.bridgeDenom, to)
}

// isLegCovered returns true if a single hop from a to b is executable
// on either the oracle or a pool.
func (r *venueResolver) isLegCovered(a, b string) bool {
	if r.isOracleEligible(a) && r.isOracleEligible(b) {
		return true
	}

	_, ok := r.pairs.FindPair(a, b)
	return ok
}
