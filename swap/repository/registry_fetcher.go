package repository

import (
	"context"
	"fmt"
	"sort"

	deliveryhttp "github.com/osmosis-labs/swapquery/delivery/http"
	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/json"
)

// TokenList is the token registry file, keyed by network and then by token contract address.
type TokenList map[string]map[string]struct {
	Protocol string `json:"protocol"`
	Symbol   string `json:"symbol"`
	Token    string `json:"token"`
	Icon     string `json:"icon"`
	Decimals *int   `json:"decimals"`
}

// PairList is the pair registry file, keyed by network and then by pair contract address.
// Each pair lists its two asset ids.
type PairList map[string]map[string][]string

// GetAssetsFromRegistry fetches the token assets of network from the registry file at url.
func GetAssetsFromRegistry(ctx context.Context, url, network string) ([]domain.Asset, error) {
	body, err := deliveryhttp.GetOK(ctx, url)
	if err != nil {
		return nil, err
	}

	return ParseTokenList(body, network)
}

// ParseTokenList decodes the token registry file for network.
func ParseTokenList(data []byte, network string) ([]domain.Asset, error) {
	var tokenList TokenList
	if err := json.Unmarshal(data, &tokenList); err != nil {
		return nil, fmt.Errorf("failed to decode token list: %w", err)
	}

	tokens, ok := tokenList[network]
	if !ok {
		return nil, fmt.Errorf("token list has no entry for network (%s)", network)
	}

	assets := make([]domain.Asset, 0, len(tokens))
	for address, token := range tokens {
		decimals := domain.DefaultAssetDecimals
		if token.Decimals != nil {
			decimals = *token.Decimals
		}

		id := token.Token
		if id == "" {
			id = address
		}

		assets = append(assets, domain.Asset{
			ID:       id,
			Symbol:   token.Symbol,
			Decimals: decimals,
			Icon:     token.Icon,
		})
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].ID < assets[j].ID })

	return assets, nil
}

// GetPairsFromRegistry fetches the pairs of network from the registry file at url.
func GetPairsFromRegistry(ctx context.Context, url, network string) ([]domain.Pair, error) {
	body, err := deliveryhttp.GetOK(ctx, url)
	if err != nil {
		return nil, err
	}

	return ParsePairList(body, network)
}

// ParsePairList decodes the pair registry file for network.
// Entries that do not list exactly two assets are skipped.
func ParsePairList(data []byte, network string) ([]domain.Pair, error) {
	var pairList PairList
	if err := json.Unmarshal(data, &pairList); err != nil {
		return nil, fmt.Errorf("failed to decode pair list: %w", err)
	}

	networkPairs, ok := pairList[network]
	if !ok {
		return nil, fmt.Errorf("pair list has no entry for network (%s)", network)
	}

	pairs := make([]domain.Pair, 0, len(networkPairs))
	for poolID, assets := range networkPairs {
		if len(assets) != 2 {
			continue
		}

		pairs = append(pairs, domain.Pair{
			Asset0: assets[0],
			Asset1: assets[1],
			PoolID: poolID,
		})
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].PoolID < pairs[j].PoolID })

	return pairs, nil
}
