package repository

import (
	"sort"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
)

type pairRegistry struct {
	pairsByAssets map[pairAssetsKey]domain.Pair
	pairs         []domain.Pair
}

// pairAssetsKey is order independent, asset0 <= asset1.
type pairAssetsKey struct {
	asset0 string
	asset1 string
}

var _ mvc.PairRegistry = &pairRegistry{}

func newPairAssetsKey(a, b string) pairAssetsKey {
	if a > b {
		a, b = b, a
	}
	return pairAssetsKey{asset0: a, asset1: b}
}

// NewPairRegistry creates a read-only registry over pairs.
// If two pools trade the same assets, the first one wins.
func NewPairRegistry(pairs []domain.Pair) mvc.PairRegistry {
	pairsByAssets := make(map[pairAssetsKey]domain.Pair, len(pairs))
	ordered := make([]domain.Pair, 0, len(pairs))

	for _, pair := range pairs {
		if pair.Asset0 == "" || pair.Asset1 == "" || pair.Asset0 == pair.Asset1 {
			continue
		}

		key := newPairAssetsKey(pair.Asset0, pair.Asset1)
		if _, ok := pairsByAssets[key]; ok {
			continue
		}

		pairsByAssets[key] = pair
		ordered = append(ordered, pair)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PoolID < ordered[j].PoolID
	})

	return &pairRegistry{
		pairsByAssets: pairsByAssets,
		pairs:         ordered,
	}
}

// FindPair implements mvc.PairRegistry.
func (r *pairRegistry) FindPair(from, to string) (domain.Pair, bool) {
	pair, ok := r.pairsByAssets[newPairAssetsKey(from, to)]
	return pair, ok
}

// GetPairs implements mvc.PairRegistry.
func (r *pairRegistry) GetPairs() []domain.Pair {
	result := make([]domain.Pair, len(r.pairs))
	copy(result, r.pairs)
	return result
}
