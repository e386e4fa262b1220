package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareAverage(t *testing.T) {
	got := ShareAverage([]PurchaseEntry{
		{Quantity: 10, Price: 100},
		{Quantity: 20, Price: 85},
	})

	assert.Equal(t, 30.0, got.TotalShares)
	assert.Equal(t, 2700.0, got.TotalInvestment)
	assert.Equal(t, 90.0, got.AveragePrice)

	require.Len(t, got.Breakdown, 2)
	assert.Equal(t, 1, got.Breakdown[0].Purchase)
	assert.Equal(t, 2, got.Breakdown[1].Purchase)
	assert.Equal(t, 1000.0, got.Breakdown[0].Investment)
	assert.Equal(t, 1700.0, got.Breakdown[1].Investment)
}

func TestShareAverageSingleLot(t *testing.T) {
	got := ShareAverage([]PurchaseEntry{{Quantity: 3, Price: 33.333}})
	assert.Equal(t, 33.33, got.AveragePrice)
	assert.Equal(t, 100.0, got.TotalInvestment)
}
