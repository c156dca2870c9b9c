package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waserda/kasir/internal/investor"
)

func TestNextYear(t *testing.T) {
	years := []investor.YearTotal{{Year: 2023}, {Year: 2024}}

	y := nextYear(years, nil)
	require.NotNil(t, y)
	assert.Equal(t, 2023, *y)

	y = nextYear(years, y)
	require.NotNil(t, y)
	assert.Equal(t, 2024, *y)

	assert.Nil(t, nextYear(years, y))
	assert.Nil(t, nextYear(nil, nil))
}

func TestInvestorFields_Params(t *testing.T) {
	f := &investorFields{name: " Pak Harto ", year: "2024", amount: "5.000.000", note: "modal awal"}

	p, err := f.params()
	require.NoError(t, err)
	assert.Equal(t, investor.CreateParams{Name: "Pak Harto", Year: 2024, Amount: 5000000, Note: "modal awal"}, p)

	_, err = (&investorFields{name: "x", year: "next", amount: "1"}).params()
	assert.Error(t, err)

	_, err = (&investorFields{name: "x", year: "2024", amount: ""}).params()
	assert.Error(t, err)
}
