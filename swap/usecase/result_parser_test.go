package usecase_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/swap/usecase"
)

var ancAsset = domain.Asset{ID: anc, Symbol: "ANC", Decimals: 6}

func swapLogs(attributes ...sdk.Attribute) sdk.ABCIMessageLogs {
	return sdk.ABCIMessageLogs{
		{
			MsgIndex: 0,
			Events: sdk.StringEvents{
				{Type: "message", Attributes: []sdk.Attribute{{Key: "action", Value: "swap"}}},
				{Type: "swap", Attributes: attributes},
			},
		},
	}
}

func TestSplitTokenText(t *testing.T) {
	tests := []struct {
		text           string
		expectedAmount string
		expectedDenom  string
	}{
		{"1000uluna", "1000", "uluna"},
		{"12.5", "12.5", ""},
		{" 42 uusd ", "42", "uusd"},
		{"7" + mir, "7", mir},
		{"abc", "0", ""},
		{"", "0", ""},
	}

	for _, tc := range tests {
		amount, denom := usecase.SplitTokenText(tc.text)
		require.Equal(t, tc.expectedAmount, amount, tc.text)
		require.Equal(t, tc.expectedDenom, denom, tc.text)
	}
}

func TestParseSettlementResult(t *testing.T) {
	directLogs := swapLogs(
		sdk.Attribute{Key: "offer", Value: "1000000uluna"},
		sdk.Attribute{Key: "trader", Value: "terra1trader"},
		sdk.Attribute{Key: "swap_coin", Value: "10000000uusd"},
	)

	contractLogs := swapLogs(
		sdk.Attribute{Key: "action", Value: "swap"},
		sdk.Attribute{Key: "offer_amount", Value: "1000000"},
		sdk.Attribute{Key: "return_amount", Value: "2500000"},
	)

	tests := []struct {
		name           string
		venue          domain.Venue
		from           domain.Asset
		to             domain.Asset
		referencePrice string
		logs           sdk.ABCIMessageLogs

		expected    domain.SettlementReport
		expectedErr error
	}{
		{
			name:  "direct with slippage against the reference price",
			venue: domain.VenueDirect, from: lunaAsset, to: ustAsset,
			referencePrice: "8",
			logs:           directLogs,
			expected: domain.SettlementReport{
				Paid:          "1000000",
				Received:      "10000000",
				ExecutedPrice: "10",
				Slippage:      "25.00%",
				Message:       "Swapped 1.000000 Luna to UST (Slippage: 25.00%)",
			},
		},
		{
			name:  "better than reference reports zero slippage",
			venue: domain.VenueDirect, from: lunaAsset, to: ustAsset,
			referencePrice: "12",
			logs:           directLogs,
			expected: domain.SettlementReport{
				Paid:          "1000000",
				Received:      "10000000",
				ExecutedPrice: "10",
				Slippage:      "0.00%",
				Message:       "Swapped 1.000000 Luna to UST (Slippage: 0.00%)",
			},
		},
		{
			name:  "unknown reference price",
			venue: domain.VenuePool, from: mirAsset, to: ustAsset,
			logs: contractLogs,
			expected: domain.SettlementReport{
				Paid:          "1000000",
				Received:      "2500000",
				ExecutedPrice: "2.5",
				Message:       "Swapped 1.000000 MIR to UST",
			},
		},
		{
			name:  "routed never reports slippage",
			venue: domain.VenueRouted, from: mirAsset, to: ancAsset,
			referencePrice: "1",
			logs:           contractLogs,
			expected: domain.SettlementReport{
				Paid:          "1000000",
				Received:      "2500000",
				ExecutedPrice: "2.5",
				Message:       "Swapped 1.000000 MIR to ANC",
			},
		},
		{
			name:  "empty logs",
			venue: domain.VenueDirect, from: lunaAsset, to: ustAsset,
			logs:        sdk.ABCIMessageLogs{},
			expectedErr: domain.ErrBadParamInput,
		},
		{
			name:  "missing swap event",
			venue: domain.VenueDirect, from: lunaAsset, to: ustAsset,
			logs:        sdk.ABCIMessageLogs{{Events: sdk.StringEvents{{Type: "message"}}}},
			expectedErr: domain.ErrBadParamInput,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			report, err := usecase.ParseSettlementResult(tc.venue, tc.from, tc.to, "1000000", tc.referencePrice, tc.logs)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, report)
		})
	}
}
