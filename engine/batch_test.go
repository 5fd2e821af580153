package engine

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func TestBatchLedger_ConsumeFIFO(t *testing.T) {
	t.Run("consumes oldest batch first", func(t *testing.T) {
		var ledger batchLedger
		ledger.add(3, decimal.RequireFromString("1.00"))
		ledger.add(2, decimal.RequireFromString("2.00"))

		portions, ok := ledger.consume(2)
		assert.True(t, ok)
		assert.Equal(t, 1, len(portions))
		assert.Equal(t, int64(2), portions[0].qty)
		assert.True(t, portions[0].cost.Equal(decimal.NewFromInt(1)))
		assert.Equal(t, int64(3), ledger.available())
	})

	t.Run("splits the last batch touched", func(t *testing.T) {
		var ledger batchLedger
		ledger.add(3, decimal.RequireFromString("1.00"))
		ledger.add(2, decimal.RequireFromString("2.00"))
		ledger.add(4, decimal.RequireFromString("1.50"))

		portions, ok := ledger.consume(6)
		assert.True(t, ok)
		assert.Equal(t, 3, len(portions))
		assert.Equal(t, int64(3), portions[0].qty)
		assert.Equal(t, int64(2), portions[1].qty)
		assert.Equal(t, int64(1), portions[2].qty)
		assert.Equal(t, int64(3), ledger.available())

		// The split batch keeps its original unit cost.
		remaining, ok := ledger.consume(3)
		assert.True(t, ok)
		assert.True(t, remaining[0].cost.Equal(decimal.RequireFromString("1.5")))
	})

	t.Run("weighted cost basis", func(t *testing.T) {
		var ledger batchLedger
		ledger.add(3, decimal.RequireFromString("1.00"))
		ledger.add(2, decimal.RequireFromString("3.00"))

		portions, ok := ledger.consume(4)
		assert.True(t, ok)
		// 3 x 1.00 + 1 x 3.00
		assert.True(t, costBasis(portions).Equal(decimal.NewFromInt(6)))
	})

	t.Run("insufficient stock leaves ledger untouched", func(t *testing.T) {
		var ledger batchLedger
		ledger.add(5, decimal.RequireFromString("2.00"))

		portions, ok := ledger.consume(6)
		assert.False(t, ok)
		assert.Equal(t, 0, len(portions))
		assert.Equal(t, int64(5), ledger.available())
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		var ledger batchLedger
		ledger.add(5, decimal.RequireFromString("2.00"))

		_, ok := ledger.consume(-1)
		assert.False(t, ok)
		assert.Equal(t, int64(5), ledger.available())
	})

	t.Run("zero consumption is a no-op", func(t *testing.T) {
		var ledger batchLedger
		ledger.add(5, decimal.RequireFromString("2.00"))

		portions, ok := ledger.consume(0)
		assert.True(t, ok)
		assert.Equal(t, 0, len(portions))
		assert.Equal(t, int64(5), ledger.available())
	})

	t.Run("remaining total equals stocked minus consumed", func(t *testing.T) {
		var ledger batchLedger
		ledger.add(10, decimal.RequireFromString("0.50"))
		ledger.add(7, decimal.RequireFromString("0.75"))

		_, ok := ledger.consume(4)
		assert.True(t, ok)
		_, ok = ledger.consume(9)
		assert.True(t, ok)
		assert.Equal(t, int64(4), ledger.available())
	})
}
