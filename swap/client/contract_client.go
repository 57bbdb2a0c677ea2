package client

import (
	"context"
	"fmt"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"google.golang.org/grpc"

	cosmwasmdomain "github.com/osmosis-labs/swapquery/domain/cosmwasm"
)

// ContractClient queries the pool, router and token contracts.
type ContractClient interface {
	SimulatePool(ctx context.Context, poolID string, offerAsset cosmwasmdomain.ContractAsset) (cosmwasmdomain.PoolSimulationResponse, error)
	SimulateSwapOperations(ctx context.Context, router string, offerAmount string, operations []cosmwasmdomain.SwapOperation) (string, error)
	GetTokenBalance(ctx context.Context, token string, address string) (string, error)
}

type contractClient struct {
	wasmClient wasmtypes.QueryClient
}

var _ ContractClient = &contractClient{}

// NewContractClient creates a contract client over the gRPC connection.
func NewContractClient(grpcConn grpc.ClientConnInterface) ContractClient {
	return &contractClient{
		wasmClient: wasmtypes.NewQueryClient(grpcConn),
	}
}

// SimulatePool implements ContractClient.
func (c *contractClient) SimulatePool(ctx context.Context, poolID string, offerAsset cosmwasmdomain.ContractAsset) (cosmwasmdomain.PoolSimulationResponse, error) {
	var query cosmwasmdomain.PoolSimulationQuery
	query.Simulation.OfferAsset = offerAsset

	response, err := cosmwasmdomain.QuerySmartContract[cosmwasmdomain.PoolSimulationQuery, cosmwasmdomain.PoolSimulationResponse](ctx, c.wasmClient, poolID, query)
	if err != nil {
		return cosmwasmdomain.PoolSimulationResponse{}, fmt.Errorf("failed to simulate pool (%s): %w", poolID, err)
	}

	return response, nil
}

// SimulateSwapOperations implements ContractClient.
func (c *contractClient) SimulateSwapOperations(ctx context.Context, router string, offerAmount string, operations []cosmwasmdomain.SwapOperation) (string, error) {
	var query cosmwasmdomain.SimulateSwapOperationsQuery
	query.SimulateSwapOperations.OfferAmount = offerAmount
	query.SimulateSwapOperations.Operations = operations

	response, err := cosmwasmdomain.QuerySmartContract[cosmwasmdomain.SimulateSwapOperationsQuery, cosmwasmdomain.SimulateSwapOperationsResponse](ctx, c.wasmClient, router, query)
	if err != nil {
		return "", fmt.Errorf("failed to simulate swap operations on router (%s): %w", router, err)
	}

	return response.Amount, nil
}

// GetTokenBalance implements ContractClient.
func (c *contractClient) GetTokenBalance(ctx context.Context, token string, address string) (string, error) {
	query := cosmwasmdomain.TokenBalanceQuery{
		Balance: cosmwasmdomain.TokenBalanceRequest{Address: address},
	}

	response, err := cosmwasmdomain.QuerySmartContract[cosmwasmdomain.TokenBalanceQuery, cosmwasmdomain.TokenBalanceResponse](ctx, c.wasmClient, token, query)
	if err != nil {
		return "", fmt.Errorf("failed to query balance of (%s) on token (%s): %w", address, token, err)
	}

	return response.Balance, nil
}
