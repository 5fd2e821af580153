// Package command defines the typed command records produced by the parser
// and consumed by the engine. Each grocery input line maps to exactly one
// command value; lines that cannot be parsed map to Invalid so the engine
// can latch its error state without the parser surfacing a Go error.
package command

import "github.com/shopspring/decimal"

// Command is implemented by all grocery commands.
type Command interface {
	// Keyword returns the command keyword as it appears in the input.
	Keyword() string
}

// Stock adds a batch of inventory for an item at a unit cost.
type Stock struct {
	Line int
	Item string
	Qty  int64
	Cost decimal.Decimal
}

var _ Command = &Stock{}

func (s *Stock) Keyword() string { return "STOCK" }

// Order sells a quantity of an item at a unit sell price, consuming
// inventory batches oldest first.
type Order struct {
	Line int
	Item string
	Qty  int64
	Sell decimal.Decimal
}

var _ Command = &Order{}

func (o *Order) Keyword() string { return "ORDER" }

// Expire discards a quantity of an item from inventory, oldest batches first.
type Expire struct {
	Line int
	Item string
	Qty  int64
}

var _ Command = &Expire{}

func (e *Expire) Keyword() string { return "EXPIRE" }

// Return takes back a quantity of an item previously sold at exactly Sell.
type Return struct {
	Line int
	Item string
	Qty  int64
	Sell decimal.Decimal
}

var _ Command = &Return{}

func (r *Return) Keyword() string { return "RETURN" }

// Discount pushes a percentage onto the item's discount stack.
type Discount struct {
	Line int
	Item string
	Pct  decimal.Decimal
}

var _ Command = &Discount{}

func (d *Discount) Keyword() string { return "DISCOUNT" }

// DiscountEnd pops the most recent discount for the item. Popping an empty
// stack is a no-op.
type DiscountEnd struct {
	Line int
	Item string
}

var _ Command = &DiscountEnd{}

func (d *DiscountEnd) Keyword() string { return "DISCOUNT_END" }

// Check requests a per-item inventory snapshot.
type Check struct {
	Line int
}

var _ Command = &Check{}

func (c *Check) Keyword() string { return "CHECK" }

// Profit requests the cumulative profit/loss figure.
type Profit struct {
	Line int
}

var _ Command = &Profit{}

func (p *Profit) Keyword() string { return "PROFIT" }

// Invalid signals a line that could not be parsed: unknown keyword, wrong
// argument count, or a malformed numeric field. The engine treats it as a
// semantic violation.
type Invalid struct {
	Line   int
	Reason string
}

var _ Command = &Invalid{}

func (i *Invalid) Keyword() string { return "INVALID" }
