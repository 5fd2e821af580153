package engine

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func TestDiscountStack(t *testing.T) {
	var stack discountStack

	_, active := stack.effective()
	assert.False(t, active)

	stack.push(decimal.NewFromInt(10))
	stack.push(decimal.NewFromInt(20))
	assert.Equal(t, 2, stack.depth())

	pct, active := stack.effective()
	assert.True(t, active)
	assert.True(t, pct.Equal(decimal.NewFromInt(20)))

	stack.pop()
	pct, active = stack.effective()
	assert.True(t, active)
	assert.True(t, pct.Equal(decimal.NewFromInt(10)))

	// Popping past empty is a no-op, not an error.
	stack.pop()
	stack.pop()
	stack.pop()
	assert.Equal(t, 0, stack.depth())

	_, active = stack.effective()
	assert.False(t, active)
}
