package usecase

import (
	"time"

	"github.com/osmosis-labs/swapquery/domain/mvc"
)

// NewChainInfoUsecaseWithClock returns a chain info usecase reading the time from now.
func NewChainInfoUsecaseWithClock(client mvc.ChainStatusClient, now func() time.Time) mvc.ChainInfoUsecase {
	return &chainInfoUseCase{
		client: client,
		now:    now,
	}
}
