package usecase

import (
	"fmt"

	"cosmossdk.io/math"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/swapquery/domain"
	cosmwasmdomain "github.com/osmosis-labs/swapquery/domain/cosmwasm"
	"github.com/osmosis-labs/swapquery/domain/json"
	"github.com/osmosis-labs/swapquery/sqsutil"
	swaptypes "github.com/osmosis-labs/swapquery/swap/types"
)

// settlementBuilder turns a selected venue into unsigned instructions.
type settlementBuilder struct {
	network string
	// routerContracts maps a network to its router contract.
	routerContracts map[string]string
	// assertLimitOrderContracts maps a network to its limit order guard contract.
	assertLimitOrderContracts map[string]string
}

// settlementParams are the inputs of a single settlement.
type settlementParams struct {
	venue  domain.Venue
	trader string

	from domain.Asset
	to   domain.Asset

	amount          string
	output          string
	minimumReceive  string
	slippagePercent string

	// pair is set for the pool venue.
	pair domain.Pair
	// operations are set for the routed venue.
	operations []cosmwasmdomain.SwapOperation
}

func newSettlementBuilder(network string, routerContracts, assertLimitOrderContracts map[string]string) *settlementBuilder {
	return &settlementBuilder{
		network:                   network,
		routerContracts:           routerContracts,
		assertLimitOrderContracts: assertLimitOrderContracts,
	}
}

// Build returns the settlement for the given params.
func (b *settlementBuilder) Build(p settlementParams) (domain.Settlement, error) {
	instructions, err := b.buildInstructions(p)
	if err != nil {
		return domain.Settlement{}, err
	}

	return domain.Settlement{
		Venue:          p.venue,
		Instructions:   instructions,
		MinimumReceive: p.minimumReceive,
		Contents:       confirmContents(p),
		Warning:        fmt.Sprintf("Final amount you receive in %s may vary due to the swap rate changes", p.to.Symbol),
	}, nil
}

func (b *settlementBuilder) buildInstructions(p settlementParams) ([]sdk.Msg, error) {
	offerAmount, ok := math.NewIntFromString(p.amount)
	if !ok || !offerAmount.IsPositive() {
		return nil, domain.ValidationError{Field: "input", Reason: fmt.Sprintf("invalid amount (%s)", p.amount)}
	}

	switch p.venue {
	case domain.VenueDirect:
		return b.buildDirect(p, offerAmount)
	case domain.VenuePool:
		return b.buildPool(p, offerAmount)
	case domain.VenueRouted:
		return b.buildRouted(p, offerAmount)
	default:
		return nil, domain.ErrSettlementDisabled
	}
}

// buildDirect emits the market swap, preceded by a limit order assertion
// on networks with a guard contract.
func (b *settlementBuilder) buildDirect(p settlementParams, offerAmount math.Int) ([]sdk.Msg, error) {
	offerCoin := sdk.Coin{Denom: p.from.ID, Amount: offerAmount}
	swap := swaptypes.NewMsgSwap(p.trader, offerCoin, p.to.ID)

	guardContract, ok := b.assertLimitOrderContracts[b.network]
	if !ok || guardContract == "" {
		return []sdk.Msg{swap}, nil
	}

	assertLimitOrder, err := executeContractMsg(p.trader, guardContract, cosmwasmdomain.AssertLimitOrderMsg{
		AssertLimitOrder: cosmwasmdomain.AssertLimitOrder{
			OfferCoin:      cosmwasmdomain.ContractCoin{Denom: p.from.ID, Amount: p.amount},
			AskDenom:       p.to.ID,
			MinimumReceive: p.minimumReceive,
		},
	}, nil)
	if err != nil {
		return nil, err
	}

	return []sdk.Msg{assertLimitOrder, swap}, nil
}

// buildPool calls the pair swap entry point. Token offers go through the token send hook.
func (b *settlementBuilder) buildPool(p settlementParams, offerAmount math.Int) ([]sdk.Msg, error) {
	if p.pair.PoolID == "" {
		return nil, domain.PairNotFoundError{From: p.from.ID, To: p.to.ID}
	}

	swap := cosmwasmdomain.PoolSwap{
		BeliefPrice: BeliefPrice(p.amount, p.output),
		MaxSpread:   SlippageFraction(p.slippagePercent),
	}

	if !p.from.IsNative {
		msg, err := tokenSendMsg(p.trader, p.from.ID, p.pair.PoolID, p.amount, cosmwasmdomain.PoolSwapMsg{Swap: swap})
		if err != nil {
			return nil, err
		}
		return []sdk.Msg{msg}, nil
	}

	swap.OfferAsset = &cosmwasmdomain.ContractAsset{
		Info:   cosmwasmdomain.NewAssetInfo(p.from.ID, true),
		Amount: p.amount,
	}

	msg, err := executeContractMsg(p.trader, p.pair.PoolID, cosmwasmdomain.PoolSwapMsg{Swap: swap}, sdk.NewCoins(sdk.Coin{Denom: p.from.ID, Amount: offerAmount}))
	if err != nil {
		return nil, err
	}
	return []sdk.Msg{msg}, nil
}

// buildRouted executes the simulated operations on the router with the route's own floor.
func (b *settlementBuilder) buildRouted(p settlementParams, offerAmount math.Int) ([]sdk.Msg, error) {
	if len(p.operations) == 0 {
		return nil, fmt.Errorf("routed settlement from (%s) to (%s) has no operations", p.from.ID, p.to.ID)
	}

	routerContract, ok := b.routerContracts[b.network]
	if !ok || routerContract == "" {
		return nil, fmt.Errorf("no router contract configured for network (%s)", b.network)
	}

	execute := cosmwasmdomain.ExecuteSwapOperationsMsg{
		ExecuteSwapOperations: cosmwasmdomain.ExecuteSwapOperations{
			Operations:     p.operations,
			MinimumReceive: p.minimumReceive,
		},
	}

	if !p.from.IsNative {
		msg, err := tokenSendMsg(p.trader, p.from.ID, routerContract, p.amount, execute)
		if err != nil {
			return nil, err
		}
		return []sdk.Msg{msg}, nil
	}

	msg, err := executeContractMsg(p.trader, routerContract, execute, sdk.NewCoins(sdk.Coin{Denom: p.from.ID, Amount: offerAmount}))
	if err != nil {
		return nil, err
	}
	return []sdk.Msg{msg}, nil
}

// executeContractMsg builds a contract call carrying msg as JSON.
func executeContractMsg(sender, contract string, msg any, funds sdk.Coins) (*wasmtypes.MsgExecuteContract, error) {
	msgBytes, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contract message: %w", err)
	}

	return &wasmtypes.MsgExecuteContract{
		Sender:   sender,
		Contract: contract,
		Msg:      msgBytes,
		Funds:    funds,
	}, nil
}

// tokenSendMsg transfers amount of token to recipient with hook as the attached message.
func tokenSendMsg(sender, token, recipient, amount string, hook any) (*wasmtypes.MsgExecuteContract, error) {
	hookBytes, err := json.Marshal(hook)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hook message: %w", err)
	}

	return executeContractMsg(sender, token, cosmwasmdomain.TokenSendMsg{
		Send: cosmwasmdomain.TokenSend{
			Contract: recipient,
			Amount:   amount,
			Msg:      hookBytes,
		},
	}, nil)
}

func confirmContents(p settlementParams) []domain.ConfirmContent {
	return []domain.ConfirmContent{
		{Name: "Mode", Text: p.venue.String()},
		{Name: "Amount", Text: sqsutil.FormatAmount(p.amount, p.from.Decimals) + " " + p.from.Symbol},
		{Name: "Slippage Tolerance", Text: p.slippagePercent + "%"},
		{Name: "Receive", Text: sqsutil.FormatAmount(p.output, p.to.Decimals) + " " + p.to.Symbol},
	}
}
