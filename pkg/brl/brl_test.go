package brl_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bmaciel/vendas-api/pkg/brl"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{30, "R$ 30,00"},
		{1234.56, "R$ 1.234,56"},
		{1234567.891, "R$ 1.234.567,89"},
		{-2.7, "R$ -2,70"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, brl.Format(decimal.NewFromFloat(tc.in)), "entrada %v", tc.in)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1.234,56", brl.FormatNumber(decimal.NewFromFloat(1234.56)))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "janeiro", brl.MonthName(1))
	assert.Equal(t, "março", brl.MonthName(3))
	assert.Equal(t, "dezembro", brl.MonthName(12))
	assert.Empty(t, brl.MonthName(0))
	assert.Empty(t, brl.MonthName(13))
}
