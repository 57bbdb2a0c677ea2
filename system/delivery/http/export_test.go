package http

import (
	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/log"
)

func ExtractVersion(ldFlagsValueStr string) (string, error) {
	return extractVersion(ldFlagsValueStr)
}

func RedactConfig(config domain.Config) domain.Config {
	return redactConfig(config)
}

func SetLogger(h *SystemHandler, logger log.Logger) {
	h.logger = logger
}
