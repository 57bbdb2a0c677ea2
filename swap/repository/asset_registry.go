package repository

import (
	"sort"
	"strings"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
)

type assetRegistry struct {
	assetsByID map[string]domain.Asset
	// ordered holds native assets first, each group sorted by id.
	ordered []domain.Asset
}

var _ mvc.AssetRegistry = &assetRegistry{}

// NewAssetRegistry creates a read-only registry over assets.
// Later duplicates of an id are ignored.
func NewAssetRegistry(assets []domain.Asset) mvc.AssetRegistry {
	assetsByID := make(map[string]domain.Asset, len(assets))
	ordered := make([]domain.Asset, 0, len(assets))

	for _, asset := range assets {
		if _, ok := assetsByID[asset.ID]; ok {
			continue
		}
		assetsByID[asset.ID] = asset
		ordered = append(ordered, asset)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].IsNative != ordered[j].IsNative {
			return ordered[i].IsNative
		}
		return ordered[i].ID < ordered[j].ID
	})

	return &assetRegistry{
		assetsByID: assetsByID,
		ordered:    ordered,
	}
}

// GetAsset implements mvc.AssetRegistry.
func (r *assetRegistry) GetAsset(assetID string) (domain.Asset, error) {
	asset, ok := r.assetsByID[assetID]
	if !ok {
		return domain.Asset{}, domain.AssetNotFoundError{AssetID: assetID}
	}
	return asset, nil
}

// GetAssets implements mvc.AssetRegistry.
func (r *assetRegistry) GetAssets() []domain.Asset {
	result := make([]domain.Asset, len(r.ordered))
	copy(result, r.ordered)
	return result
}

// GetDecimals implements mvc.AssetRegistry.
func (r *assetRegistry) GetDecimals(assetID string) int {
	asset, ok := r.assetsByID[assetID]
	if !ok {
		return domain.DefaultAssetDecimals
	}
	return asset.Decimals
}

// GetSymbol implements mvc.AssetRegistry.
func (r *assetRegistry) GetSymbol(assetID string) string {
	asset, ok := r.assetsByID[assetID]
	if !ok || asset.Symbol == "" {
		return assetID
	}
	return asset.Symbol
}

// NativeSymbol returns the display symbol of a native micro denom.
// "uluna" is "Luna", other denoms take the first two letters of the unit plus "T",
// for example "uusd" is "UST" and "ukrw" is "KRT".
func NativeSymbol(denom string) string {
	unit := strings.TrimPrefix(denom, "u")
	if unit == "luna" {
		return "Luna"
	}
	if len(unit) < 2 {
		return strings.ToUpper(denom)
	}
	return strings.ToUpper(unit[:2]) + "T"
}

// NewNativeAssets builds the native assets for the given bank denoms.
// All of them are listed by the exchange rate oracle.
func NewNativeAssets(denoms []string) []domain.Asset {
	assets := make([]domain.Asset, 0, len(denoms))
	for _, denom := range denoms {
		assets = append(assets, domain.Asset{
			ID:           denom,
			Symbol:       NativeSymbol(denom),
			Decimals:     domain.DefaultAssetDecimals,
			IsNative:     true,
			OracleListed: true,
		})
	}
	return assets
}
