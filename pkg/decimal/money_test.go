package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	assert.Equal(t, "12.35", m.String(), "rounded for display")

	m2 := NewMoney(10.125)
	assert.True(t, m2.Decimal.Equal(stddec.RequireFromString("10.125")))
	assert.Equal(t, "0.00", NewMoney(0).String())
}

func TestRounding(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{2.344, "2.34"},
		{2.345, "2.35"},
		{2.355, "2.36"},
		{2.365, "2.37"},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, NewMoney(c.in).Round().String(), "round(%v)", c.in)
	}
}

func TestWholeTruncatesTowardZero(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{1734334.811028025, 1734334},
		{1628048.7715877085, 1628048},
		{0.99, 0},
		{-10.9, -10},
		{7056, 7056},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NewMoney(c.in).Whole(), "Whole(%v)", c.in)
	}
}

func TestArithmeticAndComparisons(t *testing.T) {
	a := NewMoney(10.10)
	b := NewMoney(5.05)
	assert.Equal(t, "5.05", a.Sub(b).String())
	assert.Equal(t, "-5.05", b.Sub(a).String())

	assert.True(t, a.GreaterThan(b))
	assert.False(t, b.GreaterThan(a))
	assert.False(t, a.GreaterThan(NewMoney(10.10)))
	assert.True(t, a.Sub(NewMoney(10.10)).IsZero())
	assert.False(t, a.IsZero())
}

func TestGroupedFormatting(t *testing.T) {
	assert.Equal(t, "1,234,567", GroupInt(1234567))
	assert.Equal(t, "-1,234", GroupInt(-1234))
	assert.Equal(t, "999", GroupInt(999))

	m := NewMoney(1734334.811028025)
	assert.Equal(t, "1,734,334", m.GroupedWhole())
	assert.Equal(t, "1,734,334.81", m.Grouped())
	assert.Equal(t, "CHF 1,734,334.81", m.Format("CHF"))
	assert.Equal(t, "1,234.50", NewMoney(1234.5).Format("  "))
}
