package domain

// Asset is a tradable asset as loaded from the asset registry.
type Asset struct {
	// ID is the native denom or the token contract address.
	ID string `json:"id"`
	// Symbol is the display symbol.
	Symbol string `json:"symbol"`
	// Decimals is the precision of the raw amount.
	Decimals int `json:"decimals"`
	// Icon is an optional icon URL.
	Icon string `json:"icon,omitempty"`
	// IsNative is true for bank denoms and false for token contracts.
	IsNative bool `json:"native"`
	// OracleListed is true if the exchange rate oracle quotes this asset.
	OracleListed bool `json:"oracle_listed"`
}

// DefaultAssetDecimals is used for assets missing from the registry.
const DefaultAssetDecimals = 6

// Pair is a pool that trades two assets.
type Pair struct {
	Asset0 string `json:"asset0"`
	Asset1 string `json:"asset1"`
	// PoolID is the pool contract address.
	PoolID string `json:"pool_id"`
}

// Contains returns true if the pair trades the given asset.
func (p Pair) Contains(assetID string) bool {
	return p.Asset0 == assetID || p.Asset1 == assetID
}

// Matches returns true if the pair trades from and to in either order.
func (p Pair) Matches(from, to string) bool {
	return (p.Asset0 == from && p.Asset1 == to) || (p.Asset0 == to && p.Asset1 == from)
}
