package money

import (
	"testing"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "integer", input: "100", want: "100"},
		{name: "dot decimal", input: "12.5", want: "12.5"},
		{name: "comma decimal", input: "12,5", want: "12.5"},
		{name: "surrounding spaces", input: "  7.25 \t", want: "7.25"},
		{name: "negative", input: "-3", want: "-3"},
		{name: "zero", input: "0", want: "0"},
		{name: "exponent", input: "1e3", want: "1000"},
		{name: "largest integer part", input: "1e29", want: "100000000000000000000000000000"},
		{name: "smallest fraction", input: "1e-30", want: "0.000000000000000000000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "1.2.3", "1,2,3", "12,5.0", "R$ 10",
		"1e999999999", "-1e999999999", "1e-999999999", "1e30", "1e-31",
		"1234567890123456789012345678901"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.ErrorIs(t, err, common.ErrInvalidAmount)
		})
	}
}

func TestParse_LargestAccepted(t *testing.T) {
	d, err := Parse("999999999999999999999999999999.99")
	require.NoError(t, err)
	assert.Equal(t, "R$ 999999999999999999999999999999.99", Format(DefaultSymbol, d))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "R$ 150.00", Format(DefaultSymbol, decimal.NewFromInt(150)))
	assert.Equal(t, "R$ 0.00", Format(DefaultSymbol, decimal.Zero))
	assert.Equal(t, "$ 10.13", Format("$", decimal.RequireFromString("10.125")))
	assert.Equal(t, "R$ 0.10", Format(DefaultSymbol, decimal.RequireFromString("0.1")))
}
