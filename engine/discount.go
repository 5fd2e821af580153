package engine

import "github.com/shopspring/decimal"

// discountStack is an item's stack of active discount percentages. The
// most recently pushed entry is the effective discount.
type discountStack struct {
	entries []decimal.Decimal
}

func (s *discountStack) push(pct decimal.Decimal) {
	s.entries = append(s.entries, pct)
}

// pop removes the top entry. Popping an empty stack is a no-op, not an
// error.
func (s *discountStack) pop() {
	if len(s.entries) > 0 {
		s.entries = s.entries[:len(s.entries)-1]
	}
}

// effective returns the top entry, or false when no discount is active.
func (s *discountStack) effective() (decimal.Decimal, bool) {
	if len(s.entries) == 0 {
		return decimal.Zero, false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *discountStack) depth() int {
	return len(s.entries)
}
