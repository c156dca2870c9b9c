package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waserda/kasir/internal/money"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "Rp 0"},
		{800, "Rp 800"},
		{5400, "Rp 5.400"},
		{12345, "Rp 12.345"},
		{7500000, "Rp 7.500.000"},
		{-1500, "Rp -1.500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, money.Format(tt.in))
	}
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, int64(3), money.FloorDiv(7, 2))
	assert.Equal(t, int64(-4), money.FloorDiv(-7, 2))
	assert.Equal(t, int64(-3), money.FloorDiv(-6, 2))
	assert.Equal(t, int64(0), money.FloorDiv(0, 5))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, int64(570), money.Percent(1900, 30))
	assert.Equal(t, int64(665), money.Percent(1900, 35))
	assert.Equal(t, int64(35), money.Percent(101, 35))
	assert.Equal(t, int64(-31), money.Percent(-101, 30))
}
