package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgSwapTypeURL is the type URL of the market module swap message.
const MsgSwapTypeURL = "/terra.market.v1beta1.MsgSwap"

// MsgSwap swaps OfferCoin into AskDenom at the exchange rate oracle price.
type MsgSwap struct {
	Trader    string   `json:"trader"`
	OfferCoin sdk.Coin `json:"offer_coin"`
	AskDenom  string   `json:"ask_denom"`
}

var _ sdk.Msg = &MsgSwap{}

// NewMsgSwap creates a market swap message.
func NewMsgSwap(trader string, offerCoin sdk.Coin, askDenom string) *MsgSwap {
	return &MsgSwap{
		Trader:    trader,
		OfferCoin: offerCoin,
		AskDenom:  askDenom,
	}
}

// Reset implements proto.Message.
func (m *MsgSwap) Reset() { *m = MsgSwap{} }

// String implements proto.Message.
func (m *MsgSwap) String() string {
	return fmt.Sprintf("MsgSwap{trader: %s, offer_coin: %s, ask_denom: %s}", m.Trader, m.OfferCoin, m.AskDenom)
}

// ProtoMessage implements proto.Message.
func (*MsgSwap) ProtoMessage() {}

// XXX_MessageName returns the fully qualified proto name.
func (*MsgSwap) XXX_MessageName() string {
	return "terra.market.v1beta1.MsgSwap"
}

// ValidateBasic performs stateless checks.
func (m *MsgSwap) ValidateBasic() error {
	if m.Trader == "" {
		return fmt.Errorf("trader must not be empty")
	}

	if !m.OfferCoin.IsValid() || !m.OfferCoin.IsPositive() {
		return fmt.Errorf("invalid offer coin (%s)", m.OfferCoin)
	}

	if m.AskDenom == "" || m.AskDenom == m.OfferCoin.Denom {
		return fmt.Errorf("invalid ask denom (%s)", m.AskDenom)
	}

	return nil
}
