package cosmwasmdomain

// AssetInfo identifies either a bank denom or a token contract.
// Exactly one of the fields is set.
type AssetInfo struct {
	NativeToken *NativeToken `json:"native_token,omitempty"`
	Token       *Token       `json:"token,omitempty"`
}

type NativeToken struct {
	Denom string `json:"denom"`
}

type Token struct {
	ContractAddr string `json:"contract_addr"`
}

// NewAssetInfo builds the asset info for an asset id.
func NewAssetInfo(assetID string, isNative bool) AssetInfo {
	if isNative {
		return AssetInfo{NativeToken: &NativeToken{Denom: assetID}}
	}
	return AssetInfo{Token: &Token{ContractAddr: assetID}}
}

// ContractAsset is an amount of an asset as the pool contracts expect it.
type ContractAsset struct {
	Info   AssetInfo `json:"info"`
	Amount string    `json:"amount"`
}

// ContractCoin is a bank coin as the limit order contract expects it.
type ContractCoin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// SwapOperation is one hop of a routed swap.
// Exactly one of the fields is set.
type SwapOperation struct {
	NativeSwap *NativeSwapOperation `json:"native_swap,omitempty"`
	PoolSwap   *PoolSwapOperation   `json:"terra_swap,omitempty"`
}

// NativeSwapOperation is a hop settled by the exchange rate oracle.
type NativeSwapOperation struct {
	OfferDenom string `json:"offer_denom"`
	AskDenom   string `json:"ask_denom"`
}

// PoolSwapOperation is a hop settled by a pool.
type PoolSwapOperation struct {
	OfferAssetInfo AssetInfo `json:"offer_asset_info"`
	AskAssetInfo   AssetInfo `json:"ask_asset_info"`
}

// PoolSimulationQuery asks a pool to simulate a swap.
type PoolSimulationQuery struct {
	Simulation struct {
		OfferAsset ContractAsset `json:"offer_asset"`
	} `json:"simulation"`
}

// PoolSimulationResponse is the pool reply to PoolSimulationQuery.
type PoolSimulationResponse struct {
	ReturnAmount     string `json:"return_amount"`
	SpreadAmount     string `json:"spread_amount"`
	CommissionAmount string `json:"commission_amount"`
}

// SimulateSwapOperationsQuery asks the router to simulate a route.
type SimulateSwapOperationsQuery struct {
	SimulateSwapOperations struct {
		OfferAmount string          `json:"offer_amount"`
		Operations  []SwapOperation `json:"operations"`
	} `json:"simulate_swap_operations"`
}

// SimulateSwapOperationsResponse is the router reply to SimulateSwapOperationsQuery.
type SimulateSwapOperationsResponse struct {
	Amount string `json:"amount"`
}

// PoolSwapMsg executes a swap on a pool with native funds attached.
type PoolSwapMsg struct {
	Swap PoolSwap `json:"swap"`
}

type PoolSwap struct {
	OfferAsset  *ContractAsset `json:"offer_asset,omitempty"`
	BeliefPrice string         `json:"belief_price,omitempty"`
	MaxSpread   string         `json:"max_spread,omitempty"`
}

// ExecuteSwapOperationsMsg executes a route on the router.
type ExecuteSwapOperationsMsg struct {
	ExecuteSwapOperations ExecuteSwapOperations `json:"execute_swap_operations"`
}

type ExecuteSwapOperations struct {
	Operations     []SwapOperation `json:"operations"`
	MinimumReceive string          `json:"minimum_receive,omitempty"`
}

// AssertLimitOrderMsg aborts the transaction if the swap returns less than MinimumReceive.
type AssertLimitOrderMsg struct {
	AssertLimitOrder AssertLimitOrder `json:"assert_limit_order"`
}

type AssertLimitOrder struct {
	OfferCoin      ContractCoin `json:"offer_coin"`
	AskDenom       string       `json:"ask_denom"`
	MinimumReceive string       `json:"minimum_receive"`
}

// TokenSendMsg transfers tokens to a contract together with a hook message.
// Msg is base64 encoded by the JSON encoder.
type TokenSendMsg struct {
	Send TokenSend `json:"send"`
}

type TokenSend struct {
	Contract string `json:"contract"`
	Amount   string `json:"amount"`
	Msg      []byte `json:"msg"`
}

// TokenBalanceQuery asks a token contract for the balance of Address.
type TokenBalanceQuery struct {
	Balance TokenBalanceRequest `json:"balance"`
}

type TokenBalanceRequest struct {
	Address string `json:"address"`
}

// TokenBalanceResponse is the token contract reply to TokenBalanceQuery.
type TokenBalanceResponse struct {
	Balance string `json:"balance"`
}
