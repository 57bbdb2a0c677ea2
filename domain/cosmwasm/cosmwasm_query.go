package cosmwasmdomain

import (
	"context"
	"fmt"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"

	"github.com/osmosis-labs/swapquery/domain/json"
)

// QuerySmartContract runs query against the contract's smart query entry point
// and decodes the contract's answer into a Response.
func QuerySmartContract[Query any, Response any](ctx context.Context, wasmClient wasmtypes.QueryClient, contract string, query Query) (Response, error) {
	var response Response

	queryData, err := json.Marshal(query)
	if err != nil {
		return response, fmt.Errorf("failed to marshal query for contract (%s): %w", contract, err)
	}

	result, err := wasmClient.SmartContractState(ctx, &wasmtypes.QuerySmartContractStateRequest{
		Address:   contract,
		QueryData: queryData,
	})
	if err != nil {
		return response, err
	}

	if err := json.Unmarshal(result.Data, &response); err != nil {
		return response, fmt.Errorf("failed to decode answer of contract (%s): %w", contract, err)
	}

	return response, nil
}
