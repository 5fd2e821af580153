// Package engine replays grocery store commands against per-item inventory
// state and accumulates a cumulative profit/loss figure.
//
// Each item owns three collections: stock batches consumed FIFO (oldest
// delivery first), sale lots matched LIFO for returns (most recent ORDER
// first, restricted to lots at the exact sell price), and a stack of
// discount percentages where the top entry is the effective discount.
//
// The engine is a two-state machine: VALID and INVALID, where INVALID is
// absorbing. Any semantic violation — negative quantity, non-positive
// cost, insufficient stock, unmatched return, malformed input — latches
// the invalid flag. Commands keep being applied to the data structures
// afterwards, but CHECK output is suppressed and PROFIT reports the NA
// sentinel for the remainder of the run.
//
// Example usage:
//
//	eng := engine.New()
//	for _, cmd := range parser.ParseBytes(src) {
//	    eng.Apply(cmd)
//	}
//	if profit, ok := eng.Profit(); ok {
//	    fmt.Println(profit.StringFixed(2))
//	}
package engine

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/grocer/command"
)

var hundred = decimal.NewFromInt(100)

// itemState bundles the three per-item collections. One itemState exists
// per distinct item name, created lazily on first reference.
type itemState struct {
	batches   batchLedger
	sales     saleRegistry
	discounts discountStack
}

// Engine holds the replay state for a single input source. It is not safe
// for concurrent use; commands are applied strictly in input order.
type Engine struct {
	items   map[string]*itemState
	profit  decimal.Decimal
	invalid bool
}

// New creates an empty engine in the VALID state.
func New() *Engine {
	return &Engine{
		items:  make(map[string]*itemState),
		profit: decimal.Zero,
	}
}

// Apply applies a single command to the engine state. CHECK and PROFIT are
// pure reads and leave the state untouched; use Check and Profit to
// observe their output.
func (e *Engine) Apply(cmd command.Command) {
	switch c := cmd.(type) {
	case *command.Stock:
		e.applyStock(c)
	case *command.Order:
		e.applyOrder(c)
	case *command.Expire:
		e.applyExpire(c)
	case *command.Return:
		e.applyReturn(c)
	case *command.Discount:
		e.item(c.Item).discounts.push(c.Pct)
	case *command.DiscountEnd:
		e.item(c.Item).discounts.pop()
	case *command.Check, *command.Profit:
		// Reads only.
	default:
		// command.Invalid and anything unrecognized.
		e.invalid = true
	}
}

// Invalid reports whether a semantic violation has occurred. The flag is
// monotonic: once set it is never cleared.
func (e *Engine) Invalid() bool {
	return e.invalid
}

// Profit returns the cumulative profit/loss. ok is false once the engine
// is invalid, in which case the caller must render the NA sentinel.
func (e *Engine) Profit() (decimal.Decimal, bool) {
	if e.invalid {
		return decimal.Zero, false
	}
	return e.profit, true
}

// Count is one row of a CHECK snapshot.
type Count struct {
	Item     string
	Quantity int64
}

// Check returns the current inventory totals for every known item,
// alphabetical by name. ok is false once the engine is invalid; the
// snapshot is then suppressed entirely.
func (e *Engine) Check() ([]Count, bool) {
	if e.invalid {
		return nil, false
	}

	names := make([]string, 0, len(e.items))
	for name := range e.items {
		names = append(names, name)
	}
	slices.Sort(names)

	counts := make([]Count, len(names))
	for i, name := range names {
		counts[i] = Count{Item: name, Quantity: e.items[name].batches.available()}
	}
	return counts, true
}

// item returns the state for name, creating it on first reference.
func (e *Engine) item(name string) *itemState {
	it, ok := e.items[name]
	if !ok {
		it = &itemState{}
		e.items[name] = it
	}
	return it
}

func (e *Engine) applyStock(c *command.Stock) {
	if c.Qty < 0 || !c.Cost.IsPositive() {
		e.invalid = true
		return
	}

	it := e.item(c.Item)
	if c.Qty > 0 {
		it.batches.add(c.Qty, c.Cost)
	}
}

func (e *Engine) applyOrder(c *command.Order) {
	if c.Qty < 0 || c.Sell.IsNegative() {
		e.invalid = true
		return
	}

	it := e.item(c.Item)

	// A zero-quantity ORDER is a valid no-op that still records an empty,
	// never-returnable sale lot.
	if c.Qty == 0 {
		it.sales.record(c.Sell, nil)
		return
	}

	portions, ok := it.batches.consume(c.Qty)
	if !ok {
		e.invalid = true
		return
	}

	// The effective discount scales the sell price, but the lot stays
	// keyed by the original price for return matching.
	unitSell := c.Sell
	if pct, active := it.discounts.effective(); active {
		unitSell = c.Sell.Mul(hundred.Sub(pct)).Div(hundred)
	}

	components := make([]saleComponent, len(portions))
	for i, p := range portions {
		e.profit = e.profit.Add(unitSell.Sub(p.cost).Mul(decimal.NewFromInt(p.qty)))
		components[i] = saleComponent{qty: p.qty, unitCost: p.cost, unitSell: unitSell}
	}
	it.sales.record(c.Sell, components)
}

func (e *Engine) applyExpire(c *command.Expire) {
	if c.Qty < 0 {
		e.invalid = true
		return
	}

	it := e.item(c.Item)
	if c.Qty == 0 {
		return
	}

	portions, ok := it.batches.consume(c.Qty)
	if !ok {
		e.invalid = true
		return
	}

	// Expired stock is sunk cost: the cost basis comes straight out of
	// profit with no offsetting revenue.
	e.profit = e.profit.Sub(costBasis(portions))
}

func (e *Engine) applyReturn(c *command.Return) {
	if c.Qty < 0 {
		e.invalid = true
		return
	}

	it := e.item(c.Item)

	// A zero-quantity RETURN is valid even at a price that was never sold.
	if c.Qty == 0 {
		return
	}

	margin, ok := it.sales.release(c.Qty, c.Sell)
	if !ok {
		e.invalid = true
		return
	}
	e.profit = e.profit.Sub(margin)
}
