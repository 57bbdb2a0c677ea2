package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/sqsutil"
	"github.com/osmosis-labs/swapquery/swap/usecase"
)

var (
	lunaAsset   = domain.Asset{ID: luna, Symbol: "Luna", Decimals: 6, IsNative: true, OracleListed: true}
	ustAsset    = domain.Asset{ID: ust, Symbol: "UST", Decimals: 6, IsNative: true, OracleListed: true}
	mirAsset    = domain.Asset{ID: mir, Symbol: "MIR", Decimals: 6}
	orphanAsset = domain.Asset{ID: orphan, Symbol: "ORP", Decimals: 8}
)

func TestSlippageFraction(t *testing.T) {
	tests := map[string]string{
		"1":    "0.01",
		"0.5":  "0.005",
		"0":    "0",
		"100":  "1",
		"150":  "1",
		"-5":   "0",
		"abc":  "0.01",
		"":     "0.01",
		"2.25": "0.0225",
	}

	for slippage, expected := range tests {
		require.Equal(t, expected, usecase.SlippageFraction(slippage), slippage)
	}
}

func TestMinimumReceive(t *testing.T) {
	tests := []struct {
		output   string
		slippage string
		expected string
	}{
		{"100", "1", "99"},
		{"199", "0.5", "198"},
		{"1000000", "1", "990000"},
		{"100", "abc", "99"},
		{"100", "150", "0"},
		{"100", "-5", "100"},
		{"0", "1", "0"},
		{"-10", "1", "0"},
		{"", "1", "0"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.expected, usecase.MinimumReceive(tc.output, tc.slippage), "output %s slippage %s", tc.output, tc.slippage)
	}
}

// The floor never exceeds the quoted output and is always a whole raw amount.
func TestMinimumReceive_NeverExceedsOutput(t *testing.T) {
	outputs := []string{"0", "1", "7", "99", "100", "12345", "999999999", "1000000000000000000000"}
	slippages := []string{"0", "0.01", "0.1", "0.5", "1", "3", "49.99", "99.99", "100"}

	for _, output := range outputs {
		for _, slippage := range slippages {
			minimumReceive := usecase.MinimumReceive(output, slippage)

			require.True(t, sqsutil.Lte(minimumReceive, output), "output %s slippage %s", output, slippage)
			require.True(t, sqsutil.Gte(minimumReceive, "0"), "output %s slippage %s", output, slippage)
			require.True(t, sqsutil.IsInteger(minimumReceive), "output %s slippage %s", output, slippage)
		}
	}
}

func TestBeliefPrice(t *testing.T) {
	require.Equal(t, "0.105263157894736842", usecase.BeliefPrice("10", "95"))
	require.Equal(t, "2", usecase.BeliefPrice("200", "100"))
}

func TestExpectedUnitPrice(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		output string
		from   domain.Asset
		to     domain.Asset

		expectedToPerFrom string
		expectedFromPerTo string
		expectedText      string
	}{
		{
			name:   "cheap source asset is quoted per source unit",
			amount: "10", output: "100",
			from: lunaAsset, to: ustAsset,
			expectedToPerFrom: "10",
			expectedFromPerTo: "0.1",
			expectedText:      "1 Luna = 10.000000 UST",
		},
		{
			name:   "expensive source asset is quoted per destination unit",
			amount: "1000000", output: "50000",
			from: ustAsset, to: lunaAsset,
			expectedToPerFrom: "0.05",
			expectedFromPerTo: "20",
			expectedText:      "1 Luna = 20.000000 UST",
		},
		{
			name:   "decimals differ",
			amount: "1000000", output: "200000000",
			from: mirAsset, to: orphanAsset,
			expectedToPerFrom: "2",
			expectedFromPerTo: "0.5",
			expectedText:      "1 MIR = 2.000000 ORP",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			price := usecase.ExpectedUnitPrice(tc.amount, tc.output, tc.from, tc.to)
			require.NotNil(t, price)

			require.Equal(t, tc.expectedToPerFrom, price.ToPerFrom)
			require.Equal(t, tc.expectedFromPerTo, price.FromPerTo)
			require.Equal(t, tc.expectedText, price.Text)
		})
	}

	require.Nil(t, usecase.ExpectedUnitPrice("10", "0", lunaAsset, ustAsset))
	require.Nil(t, usecase.ExpectedUnitPrice("0", "10", lunaAsset, ustAsset))
}

func TestSpread(t *testing.T) {
	params := &domain.SwapParameters{
		MinSpread:  "0.02",
		TobinTaxes: map[string]string{ust: "0.0035"},
	}

	quote := domain.Quote{Venue: domain.VenueDirect, OutputAmount: "98", Principal: "100"}

	spread := usecase.Spread(quote, ustAsset, params)
	require.Equal(t, &domain.SpreadInfo{
		Value:     "0.000002",
		Unit:      "UST",
		MinSpread: "2.00%",
		TobinTax:  "0.35%",
	}, spread)

	// Output above principal has no spread cost.
	quote.OutputAmount = "101"
	spread = usecase.Spread(quote, ustAsset, nil)
	require.Equal(t, &domain.SpreadInfo{Value: "0.000000", Unit: "UST"}, spread)
}

func TestFormatRoutePath(t *testing.T) {
	require.Equal(t, "Luna > UST > MIR", usecase.FormatRoutePath([]string{"Luna", "UST", "MIR"}))
	require.Equal(t, "", usecase.FormatRoutePath(nil))
}
