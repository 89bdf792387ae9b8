package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoneyRoundTrip(t *testing.T) {
	cases := []struct {
		in      string
		storage string
	}{
		{"19.99", "19.99"},
		{" 19.99 ", "19.99"},
		{"5", "5.00"},
		{"0.1", "0.10"},
		{"0", "0.00"},
		{"199.999", "200.00"},
	}
	for _, c := range cases {
		m, err := ParseMoney(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.storage, m.Storage(), c.in)
	}
}

func TestParseMoneyRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "abc", "19,99", "-1.00"} {
		_, err := ParseMoney(in)
		assert.Error(t, err, in)
	}
}

func TestMoneyArithmeticIsExact(t *testing.T) {
	a, err := ParseMoney("0.1")
	require.NoError(t, err)
	b, err := ParseMoney("0.2")
	require.NoError(t, err)

	assert.Equal(t, "0.30", a.Add(b).Storage())

	price, err := ParseMoney("19.99")
	require.NoError(t, err)
	assert.Equal(t, "59.97", price.Mul(3).Storage())
	assert.Equal(t, "59.97 EUR", price.Mul(3).EUR())
}

func TestMoneyComparisons(t *testing.T) {
	low, _ := ParseMoney("5.00")
	high, _ := ParseMoney("24.50")

	assert.True(t, high.GreaterThan(low))
	assert.True(t, low.LessThan(high))
	assert.False(t, low.GreaterThan(low))
	assert.True(t, low.IsPositive())

	zero, _ := ParseMoney("0")
	assert.False(t, zero.IsPositive())
}

func TestCustomerDisplayName(t *testing.T) {
	assert.Equal(t, "Ana Lopez", Customer{FirstName: "Ana", LastName: "Lopez"}.DisplayName())
	assert.Equal(t, "Ana", Customer{FirstName: "Ana"}.DisplayName())
}

func TestProductPriceEUR(t *testing.T) {
	assert.Equal(t, "19.99 EUR", Product{Price: "19.99"}.PriceEUR())
	assert.Equal(t, "5.00 EUR", Product{Price: "5"}.PriceEUR())
	// unparseable legacy data falls back to the raw column text
	assert.Equal(t, "n/a EUR", Product{Price: "n/a"}.PriceEUR())
}
