package client

import (
	"context"

	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"google.golang.org/grpc"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
)

// ChainClient reads the node status and bank balances.
type ChainClient interface {
	mvc.ChainStatusClient
	GetLatestHeight(ctx context.Context) (uint64, error)
	GetBalance(ctx context.Context, address string) (sdk.Coins, error)
}

type chainClient struct {
	rpcClient  *rpchttp.HTTP
	bankClient banktypes.QueryClient
}

var _ ChainClient = &chainClient{}

// NewChainClient creates a chain client over the RPC node and the gRPC connection.
func NewChainClient(nodeURI string, grpcConn grpc.ClientConnInterface) (ChainClient, error) {
	rpcClient, err := client.NewClientFromNode(nodeURI)
	if err != nil {
		return nil, err
	}

	return &chainClient{
		rpcClient:  rpcClient,
		bankClient: banktypes.NewQueryClient(grpcConn),
	}, nil
}

// GetStatus implements mvc.ChainStatusClient.
func (c *chainClient) GetStatus(ctx context.Context) (domain.ChainStatus, error) {
	statusResult, err := c.rpcClient.Status(ctx)
	if err != nil {
		return domain.ChainStatus{}, err
	}

	return domain.ChainStatus{
		LatestHeight: uint64(statusResult.SyncInfo.LatestBlockHeight),
		CatchingUp:   statusResult.SyncInfo.CatchingUp,
	}, nil
}

// GetLatestHeight returns the latest block height known to the node.
func (c *chainClient) GetLatestHeight(ctx context.Context) (uint64, error) {
	status, err := c.GetStatus(ctx)
	if err != nil {
		return 0, err
	}

	return status.LatestHeight, nil
}

// GetBalance fetches the bank balance of a given address
func (c *chainClient) GetBalance(ctx context.Context, address string) (sdk.Coins, error) {
	res, err := c.bankClient.AllBalances(
		ctx,
		&banktypes.QueryAllBalancesRequest{
			Address: address,
		},
	)
	if err != nil {
		return nil, err
	}

	if len(res.Balances) == 0 {
		return sdk.Coins{}, nil
	}

	return res.Balances, nil
}
