package mvc

import (
	"context"

	"github.com/osmosis-labs/swapquery/domain"
)

// ChainStatusClient reads the sync status of the node.
type ChainStatusClient interface {
	GetStatus(ctx context.Context) (domain.ChainStatus, error)
}

type ChainInfoUsecase interface {
	// GetChainStatus returns the node status.
	// Returns StaleHeightError if the height has not advanced for too long.
	GetChainStatus(ctx context.Context) (domain.ChainStatus, error)
}
