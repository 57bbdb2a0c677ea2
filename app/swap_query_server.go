package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	chaininfousecase "github.com/osmosis-labs/swapquery/chaininfo/usecase"
	"github.com/osmosis-labs/swapquery/delivery/grpc"
	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
	"github.com/osmosis-labs/swapquery/log"
	"github.com/osmosis-labs/swapquery/middleware"
	swapclient "github.com/osmosis-labs/swapquery/swap/client"
	swaphttpdelivery "github.com/osmosis-labs/swapquery/swap/delivery/http"
	swaprepository "github.com/osmosis-labs/swapquery/swap/repository"
	swapusecase "github.com/osmosis-labs/swapquery/swap/usecase"

	systemhttpdelivery "github.com/osmosis-labs/swapquery/system/delivery/http"
)

// SwapQueryServer defines an interface for the swap query server.
// It wires the registries, the chain clients and the swap engine
// and exposes the swap session endpoints for the frontend.
type SwapQueryServer interface {
	GetSwapUsecase() mvc.SwapUsecase
	GetLogger() log.Logger
	Shutdown(context.Context) error
	Start(context.Context) error
}

type swapQueryServer struct {
	swapUsecase mvc.SwapUsecase
	e           *echo.Echo
	grpcClient  *grpc.Client
	address     string
	logger      log.Logger
}

const tracerName = "swapquery"

// GetSwapUsecase implements SwapQueryServer.
func (s *swapQueryServer) GetSwapUsecase() mvc.SwapUsecase {
	return s.swapUsecase
}

// GetLogger implements SwapQueryServer.
func (s *swapQueryServer) GetLogger() log.Logger {
	return s.logger
}

// Shutdown implements SwapQueryServer.
func (s *swapQueryServer) Shutdown(ctx context.Context) error {
	if err := s.e.Shutdown(ctx); err != nil {
		return err
	}
	return s.grpcClient.Close()
}

// Start implements SwapQueryServer.
func (s *swapQueryServer) Start(context.Context) error {
	s.logger.Info("Starting swap query server", zap.String("address", s.address))
	err := s.e.Start(s.address)
	if err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// NewSwapQueryServer creates a new swap query server.
// The asset and pair registries are loaded once, failing startup if unreachable.
func NewSwapQueryServer(ctx context.Context, config domain.Config, logger log.Logger) (SwapQueryServer, error) {
	// Setup echo server
	e := echo.New()
	e.HideBanner = true

	timeout := time.Duration(config.ServerTimeoutDurationSecs) * time.Second
	e.Server.ReadTimeout = timeout
	e.Server.WriteTimeout = 3 * timeout

	middleware := middleware.InitMiddleware(config.CORS)
	e.Use(middleware.CORS)
	e.Use(middleware.InstrumentMiddleware)
	e.Use(middleware.TraceWithParamsMiddleware(tracerName))

	swapConfig := *config.Swap

	grpcClient, err := grpc.NewClient(config.ChainGRPCGatewayEndpoint)
	if err != nil {
		return nil, err
	}

	chainClient, err := swapclient.NewChainClient(config.ChainRPCGatewayEndpoint, grpcClient)
	if err != nil {
		return nil, err
	}

	// If fails, it means that the node is not reachable
	if _, err := chainClient.GetLatestHeight(ctx); err != nil {
		return nil, err
	}

	marketClient := swapclient.NewMarketClient(config.ChainLCDEndpoint)

	// Every denom with an oracle price is tradable on the direct venue.
	activeDenoms, err := marketClient.GetActiveDenoms(ctx)
	if err != nil {
		return nil, err
	}

	tokens, err := swaprepository.GetAssetsFromRegistry(ctx, config.AssetListURL, config.Network)
	if err != nil {
		return nil, err
	}

	pairs, err := swaprepository.GetPairsFromRegistry(ctx, config.PairListURL, config.Network)
	if err != nil {
		return nil, err
	}

	natives := swaprepository.NewNativeAssets(append([]string{swapConfig.NativeDenom}, activeDenoms...))
	assets := swaprepository.NewAssetRegistry(append(natives, tokens...))
	pairRegistry := swaprepository.NewPairRegistry(pairs)

	logger.Info("Loaded registries",
		zap.Int("native_assets", len(natives)),
		zap.Int("tokens", len(tokens)),
		zap.Int("pairs", len(pairs)),
	)

	contractClient := swapclient.NewContractClient(grpcClient)

	feeEstimator, err := swapclient.NewFeeEstimator(swapConfig, grpcClient)
	if err != nil {
		return nil, err
	}

	quoteTransport := swapclient.NewQuoteTransport(marketClient, contractClient, assets, swapConfig)
	balanceProvider := swapclient.NewBalanceProvider(chainClient, contractClient, assets, swapConfig, logger)

	swapUsecase := swapusecase.NewSwapUsecase(swapConfig, config.Network, quoteTransport, balanceProvider, feeEstimator, assets, pairRegistry, logger)

	chainInfoUseCase := chaininfousecase.NewChainInfoUsecase(chainClient)

	// HTTP handlers
	systemhttpdelivery.NewSystemHandler(e, config, logger, chainInfoUseCase, assets)
	if err := swaphttpdelivery.NewSwapHandler(e, swapUsecase, assets, logger); err != nil {
		return nil, err
	}

	return &swapQueryServer{
		swapUsecase: swapUsecase,
		e:           e,
		grpcClient:  grpcClient,
		address:     config.ServerAddress,
		logger:      logger,
	}, nil
}
