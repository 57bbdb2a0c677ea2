package cosmwasmdomain_test

import (
	"context"
	"errors"
	"testing"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	cosmwasmdomain "github.com/osmosis-labs/swapquery/domain/cosmwasm"
)

type wasmQueryClientMock struct {
	wasmtypes.QueryClient

	smartContractState func(req *wasmtypes.QuerySmartContractStateRequest) (*wasmtypes.QuerySmartContractStateResponse, error)
}

func (m *wasmQueryClientMock) SmartContractState(_ context.Context, req *wasmtypes.QuerySmartContractStateRequest, _ ...grpc.CallOption) (*wasmtypes.QuerySmartContractStateResponse, error) {
	return m.smartContractState(req)
}

func TestQuerySmartContract(t *testing.T) {
	const token = "terra15gwkyepfc6xgca5t5zefzwy42uts8l2m4g40k6"

	t.Run("query is encoded and answer decoded", func(t *testing.T) {
		client := &wasmQueryClientMock{
			smartContractState: func(req *wasmtypes.QuerySmartContractStateRequest) (*wasmtypes.QuerySmartContractStateResponse, error) {
				require.Equal(t, token, req.Address)
				require.JSONEq(t, `{"balance":{"address":"terra1trader"}}`, string(req.QueryData))
				return &wasmtypes.QuerySmartContractStateResponse{Data: []byte(`{"balance":"1500"}`)}, nil
			},
		}

		response, err := cosmwasmdomain.QuerySmartContract[cosmwasmdomain.TokenBalanceQuery, cosmwasmdomain.TokenBalanceResponse](
			context.Background(), client, token, cosmwasmdomain.TokenBalanceQuery{Balance: cosmwasmdomain.TokenBalanceRequest{Address: "terra1trader"}})
		require.NoError(t, err)
		require.Equal(t, "1500", response.Balance)
	})

	t.Run("query error is returned", func(t *testing.T) {
		queryErr := errors.New("contract not found")
		client := &wasmQueryClientMock{
			smartContractState: func(*wasmtypes.QuerySmartContractStateRequest) (*wasmtypes.QuerySmartContractStateResponse, error) {
				return nil, queryErr
			},
		}

		_, err := cosmwasmdomain.QuerySmartContract[cosmwasmdomain.TokenBalanceQuery, cosmwasmdomain.TokenBalanceResponse](
			context.Background(), client, token, cosmwasmdomain.TokenBalanceQuery{})
		require.ErrorIs(t, err, queryErr)
	})

	t.Run("malformed answer", func(t *testing.T) {
		client := &wasmQueryClientMock{
			smartContractState: func(*wasmtypes.QuerySmartContractStateRequest) (*wasmtypes.QuerySmartContractStateResponse, error) {
				return &wasmtypes.QuerySmartContractStateResponse{Data: []byte(`not json`)}, nil
			},
		}

		_, err := cosmwasmdomain.QuerySmartContract[cosmwasmdomain.TokenBalanceQuery, cosmwasmdomain.TokenBalanceResponse](
			context.Background(), client, token, cosmwasmdomain.TokenBalanceQuery{})
		require.ErrorContains(t, err, "failed to decode answer of contract")
	})
}
