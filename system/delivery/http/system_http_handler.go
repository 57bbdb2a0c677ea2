package http

import (
	"fmt"
	"net/http"
	"net/http/pprof"
	"runtime"
	"runtime/debug"
	"strings"

	"go.uber.org/zap"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
	"github.com/osmosis-labs/swapquery/log"

	"github.com/labstack/echo/v4"
)

type SystemHandler struct {
	logger    log.Logger
	CIUsecase mvc.ChainInfoUsecase
	Assets    mvc.AssetRegistry
	config    domain.Config
}

const (
	versionPlaceholder    = "version="
	whiteSpacePlaceholder = " "
	develVersion          = "(devel)"
	redacted              = "<redacted>"
)

// NewSystemHandler registers the health, config, version, metrics, swagger and pprof routes.
func NewSystemHandler(e *echo.Echo, config domain.Config, logger log.Logger, us mvc.ChainInfoUsecase, assets mvc.AssetRegistry) {
	handler := &SystemHandler{
		logger:    logger,
		CIUsecase: us,
		Assets:    assets,
		config:    config,
	}

	// mutex and block profiles are too costly for production
	if !config.LoggerIsProduction {
		runtime.SetMutexProfileFraction(2)
		runtime.SetBlockProfileRate(2)
	}

	e.GET("/debug/pprof/*", echo.WrapHandler(http.DefaultServeMux))
	e.GET("/debug/pprof/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	e.GET("/debug/pprof/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	e.GET("/debug/pprof/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	e.GET("/debug/pprof/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))

	e.GET("/healthcheck", handler.GetHealthStatus)
	e.GET("/config", handler.GetConfig)
	e.GET("/version", handler.GetVersion)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("docs/swagger.json"), echoSwagger.URL("swagger.yaml")))
}

// GetConfig returns the running config with the sentry DSN redacted.
func (h *SystemHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, redactConfig(h.config))
}

func redactConfig(config domain.Config) domain.Config {
	if config.OTEL != nil && config.OTEL.DSN != "" {
		otelConfig := *config.OTEL
		otelConfig.DSN = redacted
		config.OTEL = &otelConfig
	}
	return config
}

// GetVersion returns the version set through ldflags, falling back to the main module version.
func (h *SystemHandler) GetVersion(c echo.Context) error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read build info")
	}

	for _, setting := range buildInfo.Settings {
		if setting.Key == "-ldflags" {
			version, err := extractVersion(setting.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("failed to extract version information: %v", err))
			}

			return c.JSON(http.StatusOK, version)
		}
	}

	if buildInfo.Main.Version != "" && buildInfo.Main.Version != develVersion {
		return c.JSON(http.StatusOK, buildInfo.Main.Version)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "failed to find version information")
}

// extractVersion extracts the version string from the ldflags
func extractVersion(ldFlagsValueStr string) (string, error) {
	index := strings.Index(ldFlagsValueStr, versionPlaceholder)
	if index == -1 {
		return "", fmt.Errorf("no version string found")
	}

	substring := ldFlagsValueStr[index+len(versionPlaceholder):]

	index = strings.Index(substring, whiteSpacePlaceholder)
	if index == -1 {
		// version is the last flag
		return substring, nil
	}

	return substring[:index], nil
}

// GetHealthStatus checks that the node is synced and making progress,
// and that the asset registry was loaded.
func (h *SystemHandler) GetHealthStatus(c echo.Context) error {
	ctx := c.Request().Context()

	status, err := h.CIUsecase.GetChainStatus(ctx)
	if err != nil {
		h.logger.Error("Error checking node status", zap.Error(err))
		return echo.NewHTTPError(http.StatusServiceUnavailable, fmt.Sprintf("Failed to get node status: %s", err))
	}

	if status.CatchingUp {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Node is still catching up")
	}

	assetCount := len(h.Assets.GetAssets())
	if assetCount == 0 {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Asset registry is empty")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"node_status":         "running",
		"chain_latest_height": fmt.Sprint(status.LatestHeight),
		"assets":              fmt.Sprint(assetCount),
	})
}
