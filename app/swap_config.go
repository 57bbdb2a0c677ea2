package main

import (
	"github.com/osmosis-labs/swapquery/domain"
)

// DefaultConfig defines the default config for the swap query server.
var DefaultConfig = domain.Config{
	ServerAddress:             ":9092",
	ServerTimeoutDurationSecs: 2,

	LoggerFilename:     "swapquery.log",
	LoggerIsProduction: true,
	LoggerLevel:        "info",

	ChainID:                  "columbus-5",
	ChainGRPCGatewayEndpoint: "localhost:9090",
	ChainRPCGatewayEndpoint:  "http://localhost:26657",
	ChainLCDEndpoint:         "http://localhost:1317",
	Network:                  "mainnet",

	AssetListURL: "https://assets.terra.money/cw20/tokens.json",
	PairListURL:  "https://assets.terra.money/cw20/pairs.dex.json",

	Swap: &domain.DefaultSwapConfig,

	CORS: &domain.CORSConfig{
		AllowedHeaders: "Origin, Accept, Content-Type, X-Requested-With, X-Server-Time, Accept-Encoding, sentry-trace, baggage",
		AllowedMethods: "HEAD, GET, POST, PUT, DELETE, OPTIONS",
		AllowedOrigin:  "*",
	},

	OTEL: &domain.OTELConfig{
		DSN:                "",
		SampleRate:         1.0,
		EnableTracing:      false,
		ProfilesSampleRate: 1.0,
		Environment:        "development",
	},
}

// applyDefaults fills the sections missing from the loaded config.
func applyDefaults(config domain.Config) domain.Config {
	if config.ServerAddress == "" {
		config.ServerAddress = DefaultConfig.ServerAddress
	}
	if config.ServerTimeoutDurationSecs == 0 {
		config.ServerTimeoutDurationSecs = DefaultConfig.ServerTimeoutDurationSecs
	}
	if config.Network == "" {
		config.Network = DefaultConfig.Network
	}

	swapConfig := domain.DefaultSwapConfig
	if config.Swap != nil {
		swapConfig = config.Swap.WithDefaults()
	}
	config.Swap = &swapConfig

	if config.CORS == nil {
		config.CORS = DefaultConfig.CORS
	}
	if config.OTEL == nil {
		config.OTEL = DefaultConfig.OTEL
	}

	return config
}
