package http

import (
	"github.com/osmosis-labs/swapquery/domain/mvc"
	"github.com/osmosis-labs/swapquery/log"
)

func NewSwapHandlerForTesting(us mvc.SwapUsecase, assets mvc.AssetRegistry) (*SwapHandler, error) {
	return newSwapHandler(us, assets, &log.NoOpLogger{})
}

func (h *SwapHandler) SessionCount() int {
	return h.sessions.Len()
}
