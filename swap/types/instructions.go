package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/json"
)

// typeKey is the JSON key holding the type URL of a rendered instruction.
const typeKey = "@type"

// TypeURL returns the type URL of msg.
func TypeURL(msg sdk.Msg) string {
	if _, ok := msg.(*MsgSwap); ok {
		return MsgSwapTypeURL
	}
	return sdk.MsgTypeURL(msg)
}

// Instruction is an unsigned message rendered as JSON with its type URL under "@type".
type Instruction map[string]any

// NewInstruction renders msg.
func NewInstruction(msg sdk.Msg) (Instruction, error) {
	bz, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal instruction (%s): %w", TypeURL(msg), err)
	}

	instruction := Instruction{}
	if err := json.Unmarshal(bz, &instruction); err != nil {
		return nil, err
	}

	instruction[typeKey] = TypeURL(msg)

	return instruction, nil
}

// SettlementResponse is the settlement with its instructions rendered.
type SettlementResponse struct {
	Venue          domain.Venue            `json:"venue"`
	Instructions   []Instruction           `json:"instructions"`
	MinimumReceive string                  `json:"minimum_receive"`
	Contents       []domain.ConfirmContent `json:"contents"`
	Warning        string                  `json:"warning"`
}

// NewSettlementResponse renders every instruction of settlement.
func NewSettlementResponse(settlement domain.Settlement) (SettlementResponse, error) {
	instructions := make([]Instruction, 0, len(settlement.Instructions))
	for _, msg := range settlement.Instructions {
		instruction, err := NewInstruction(msg)
		if err != nil {
			return SettlementResponse{}, err
		}
		instructions = append(instructions, instruction)
	}

	return SettlementResponse{
		Venue:          settlement.Venue,
		Instructions:   instructions,
		MinimumReceive: settlement.MinimumReceive,
		Contents:       settlement.Contents,
		Warning:        settlement.Warning,
	}, nil
}

// SimulateResponse is the outcome of a simulation batch together with the refreshed snapshot.
type SimulateResponse struct {
	Result   domain.SimulationResult `json:"result"`
	Snapshot domain.SwapSnapshot     `json:"snapshot"`
}

// CreateSessionResponse is the response of POST /swap/sessions.
type CreateSessionResponse struct {
	ID       string              `json:"id"`
	Snapshot domain.SwapSnapshot `json:"snapshot"`
}

// SpendableMaxResponse is the response of GET /swap/sessions/:id/max.
type SpendableMaxResponse struct {
	From string `json:"from"`
	// Amount is the raw spendable maximum.
	Amount string `json:"amount"`
	// DisplayAmount is Amount in human units.
	DisplayAmount string `json:"display_amount"`
}
