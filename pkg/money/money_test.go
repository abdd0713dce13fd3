package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1,000"},
		{16000, "16,000"},
		{1234567.89, "1,234,568"},
		{-1234567.89, "-1,234,568"},
		{1000000000, "1,000,000,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.value).Format(), "value %v", tt.value)
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "1,234.57", New(1234.567).FormatCents())
	assert.Equal(t, "0.50", New(0.5).FormatCents())
	assert.Equal(t, "-0.50", New(-0.5).FormatCents())
	assert.Equal(t, "-1,234.57", New(-1234.567).FormatCents())
}

func TestRound(t *testing.T) {
	assert.Equal(t, "1.23", New(1.2349).Round().String())
}

func TestFromString(t *testing.T) {
	m, err := FromString("1234.56")
	require.NoError(t, err)
	assert.Equal(t, "1,234.56", m.FormatCents())

	_, err = FromString("not money")
	require.Error(t, err)
}

func TestFromDecimal(t *testing.T) {
	m := FromDecimal(decimal.NewFromInt(42))
	assert.Equal(t, "42", m.Format())
}
