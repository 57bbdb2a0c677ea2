package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
)

type chainInfoUseCase struct {
	client mvc.ChainStatusClient

	// N.B. sometimes the node gets stuck and does not make progress.
	// However, it returns 200 OK for the status endpoint and claims to be not catching up.
	// We keep track of the last seen height and time to ensure that the height is
	// updated within a reasonable time frame.
	lastSeenMx          sync.Mutex
	lastSeenHeight      uint64
	lastSeenUpdatedTime time.Time

	now func() time.Time
}

// MaxAllowedHeightUpdateTimeDeltaSecs is the max number of seconds allowed for there to be no new block.
const MaxAllowedHeightUpdateTimeDeltaSecs = 30

var _ mvc.ChainInfoUsecase = &chainInfoUseCase{}

func NewChainInfoUsecase(client mvc.ChainStatusClient) mvc.ChainInfoUsecase {
	return &chainInfoUseCase{
		client: client,
		now:    time.Now,
	}
}

// GetChainStatus implements mvc.ChainInfoUsecase.
func (p *chainInfoUseCase) GetChainStatus(ctx context.Context) (domain.ChainStatus, error) {
	status, err := p.client.GetStatus(ctx)
	if err != nil {
		return domain.ChainStatus{}, fmt.Errorf("failed to get node status: %w", err)
	}

	p.lastSeenMx.Lock()
	defer p.lastSeenMx.Unlock()

	currentTimeUTC := p.now().UTC()

	isHeightUpdated := status.LatestHeight > p.lastSeenHeight
	if !isHeightUpdated {
		timeDeltaSecs := int(currentTimeUTC.Sub(p.lastSeenUpdatedTime).Seconds())
		if timeDeltaSecs > MaxAllowedHeightUpdateTimeDeltaSecs {
			return domain.ChainStatus{}, domain.StaleHeightError{
				StoredHeight:            status.LatestHeight,
				TimeSinceLastUpdate:     timeDeltaSecs,
				MaxAllowedTimeDeltaSecs: MaxAllowedHeightUpdateTimeDeltaSecs,
			}
		}

		return status, nil
	}

	p.lastSeenHeight = status.LatestHeight
	p.lastSeenUpdatedTime = currentTimeUTC

	return status, nil
}
