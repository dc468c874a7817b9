package pos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omgcarlo/RetailSavvy/internal/model"
)

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("19.99")
	require.NoError(t, err)
	assert.Equal(t, "19.99", FormatAmount(d))

	d, err = ParseAmount("  5 ")
	require.NoError(t, err)
	assert.Equal(t, "5.00", FormatAmount(d))

	_, err = ParseAmount("-1")
	assert.Error(t, err)

	_, err = ParseAmount("abc")
	assert.Error(t, err)

	_, err = ParseAmount("")
	assert.Error(t, err)
}

func TestParseAmountRoundsHalfUp(t *testing.T) {
	d, err := ParseAmount("2.345")
	require.NoError(t, err)
	assert.Equal(t, "2.35", FormatAmount(d))

	d, err = ParseAmount("2.344")
	require.NoError(t, err)
	assert.Equal(t, "2.34", FormatAmount(d))
}

func TestFormatAmountFixedTwoPlaces(t *testing.T) {
	assert.Equal(t, "3.00", FormatAmount(model.NewMoney(decimal.NewFromInt(3))))
	assert.Equal(t, "0.00", FormatAmount(model.Money{}))
}

func TestParseQuantity(t *testing.T) {
	n, ok := ParseQuantity("3")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	for _, bad := range []string{"0", "-1", "abc", "1.5", ""} {
		_, ok := ParseQuantity(bad)
		assert.False(t, ok, "input %q should be rejected", bad)
	}
}

func TestParseCount(t *testing.T) {
	n, err := ParseCount("0")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = ParseCount("-2")
	assert.Error(t, err)

	_, err = ParseCount("3.5")
	assert.Error(t, err)
}
