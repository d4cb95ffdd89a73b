package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/vendor-portal/pkg/money"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(245000), "Rs. 245,000"},
		{decimal.NewFromInt(10), "Rs. 10"},
		{decimal.RequireFromString("1234.5"), "Rs. 1,234.50"},
		{decimal.Zero, "Rs. 0"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, money.Format(tc.in))
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12.5%", money.Percent(decimal.RequireFromString("12.50")))
}
