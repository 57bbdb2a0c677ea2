package domain

// Config defines the config for the swap query server.
type Config struct {
	// Defines the web server configuration.
	ServerAddress             string `mapstructure:"server-address"`
	ServerTimeoutDurationSecs int    `mapstructure:"timeout-duration-secs"`

	// Defines the logger configuration.
	LoggerFilename     string `mapstructure:"logger-filename"`
	LoggerIsProduction bool   `mapstructure:"logger-is-production"`
	LoggerLevel        string `mapstructure:"logger-level"`

	ChainID                  string `mapstructure:"chain-id"`
	ChainGRPCGatewayEndpoint string `mapstructure:"grpc-gateway-endpoint"`
	ChainRPCGatewayEndpoint  string `mapstructure:"rpc-gateway-endpoint"`
	// ChainLCDEndpoint serves the market module queries.
	ChainLCDEndpoint string `mapstructure:"lcd-endpoint"`
	// Network selects per network contract addresses ("mainnet", "testnet").
	Network string `mapstructure:"network"`

	// Asset list file URL.
	AssetListURL string `mapstructure:"asset-list-url"`
	// Pool pair list file URL.
	PairListURL string `mapstructure:"pair-list-url"`

	// Swap encapsulates the swap engine config.
	Swap *SwapConfig `mapstructure:"swap"`

	CORS *CORSConfig `mapstructure:"cors"`

	OTEL *OTELConfig `mapstructure:"otel"`
}

// SwapConfig encapsulates the swap engine config.
type SwapConfig struct {
	// NativeDenom is the native settlement asset, always quoted by the oracle.
	NativeDenom string `mapstructure:"native-denom"`
	// BridgeDenom is the intermediate asset of routed swaps.
	BridgeDenom string `mapstructure:"bridge-denom"`
	// ReferenceGas is the gas reserved when computing the spendable maximum.
	ReferenceGas uint64 `mapstructure:"reference-gas"`
	// DefaultSlippage is in percent.
	DefaultSlippage string `mapstructure:"default-slippage"`
	// MaxSessions bounds the number of live swap sessions.
	MaxSessions int `mapstructure:"max-sessions"`
	// RouterContracts maps a network to the router contract executing routed swaps.
	RouterContracts map[string]string `mapstructure:"router-contracts"`
	// AssertLimitOrderContracts maps a network to its limit order guard contract.
	AssertLimitOrderContracts map[string]string `mapstructure:"assert-limit-order-contracts"`
	// GasPrices maps a fee denom to its gas price.
	GasPrices map[string]string `mapstructure:"gas-prices"`
	// FeeSource is either "static" (GasPrices) or "txfees" (chain queried).
	FeeSource string `mapstructure:"fee-source"`
	// SwapRateCacheSeconds is how long oracle swap rates are reused.
	SwapRateCacheSeconds int `mapstructure:"swap-rate-cache-seconds"`
	// BalanceWorkers bounds the concurrent token balance queries of one account.
	BalanceWorkers int `mapstructure:"balance-workers"`
	// BalanceCacheSeconds is how long account balances are reused before being queried again.
	BalanceCacheSeconds int `mapstructure:"balance-cache-seconds"`
}

const (
	FeeSourceStatic = "static"
	FeeSourceTxFees = "txfees"
)

// DefaultSwapConfig is the configuration used for missing swap settings.
var DefaultSwapConfig = SwapConfig{
	NativeDenom:     "uluna",
	BridgeDenom:     "uusd",
	ReferenceGas:    800000,
	DefaultSlippage: DefaultSlippageTolerancePercent,
	MaxSessions:     10000,
	RouterContracts: map[string]string{
		"mainnet": "terra19qx5xe6q9ll4w0890ux7lv2p4mf3csd4qvt3ex",
		"testnet": "terra14z80rwpd0alzj4xdtgqdmcqt9wd9xj5ffd60wp",
	},
	AssertLimitOrderContracts: map[string]string{
		"mainnet": "terra1vs9jr7pxuqwct3j29lez3pfetuu8xmq7tk3lzk",
		"testnet": "terra1z3sf42ywpuhxdh78rr5vyqxpaxa0dx657x5trs",
	},
	GasPrices: map[string]string{
		"uluna": "0.15",
		"uusd":  "0.15",
	},
	FeeSource:            FeeSourceStatic,
	SwapRateCacheSeconds: 10,
	BalanceWorkers:       8,
	BalanceCacheSeconds:  30,
}

// WithDefaults returns a copy of c with zero fields taken from DefaultSwapConfig.
func (c SwapConfig) WithDefaults() SwapConfig {
	if c.NativeDenom == "" {
		c.NativeDenom = DefaultSwapConfig.NativeDenom
	}
	if c.BridgeDenom == "" {
		c.BridgeDenom = DefaultSwapConfig.BridgeDenom
	}
	if c.ReferenceGas == 0 {
		c.ReferenceGas = DefaultSwapConfig.ReferenceGas
	}
	if c.DefaultSlippage == "" {
		c.DefaultSlippage = DefaultSwapConfig.DefaultSlippage
	}
	if c.MaxSessions == 0 {
		c.MaxSessions = DefaultSwapConfig.MaxSessions
	}
	if c.RouterContracts == nil {
		c.RouterContracts = DefaultSwapConfig.RouterContracts
	}
	if c.AssertLimitOrderContracts == nil {
		c.AssertLimitOrderContracts = DefaultSwapConfig.AssertLimitOrderContracts
	}
	if c.GasPrices == nil {
		c.GasPrices = DefaultSwapConfig.GasPrices
	}
	if c.FeeSource == "" {
		c.FeeSource = DefaultSwapConfig.FeeSource
	}
	if c.SwapRateCacheSeconds == 0 {
		c.SwapRateCacheSeconds = DefaultSwapConfig.SwapRateCacheSeconds
	}
	if c.BalanceWorkers == 0 {
		c.BalanceWorkers = DefaultSwapConfig.BalanceWorkers
	}
	if c.BalanceCacheSeconds == 0 {
		c.BalanceCacheSeconds = DefaultSwapConfig.BalanceCacheSeconds
	}
	return c
}

// CORSConfig encapsulates the CORS config.
type CORSConfig struct {
	AllowedHeaders string `mapstructure:"allowed-headers"`
	AllowedMethods string `mapstructure:"allowed-methods"`
	AllowedOrigin  string `mapstructure:"allowed-origin"`
}

// OTELConfig encapsulates the tracing config.
type OTELConfig struct {
	DSN                string  `mapstructure:"dsn"`
	SampleRate         float64 `mapstructure:"sample-rate"`
	EnableTracing      bool    `mapstructure:"enable-tracing"`
	ProfilesSampleRate float64 `mapstructure:"profiles-sample-rate"`
	Environment        string  `mapstructure:"environment"`
	CustomSampleRate   struct {
		Simulate float64 `mapstructure:"simulate"`
		Other    float64 `mapstructure:"other"`
	} `mapstructure:"custom-sample-rate"`
}
