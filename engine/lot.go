package engine

import "github.com/shopspring/decimal"

// saleComponent is the slice of a sale that was filled from a single stock
// batch. It pins the batch's unit cost and the discounted unit sell price
// so a later return can reverse the exact margin that was booked.
type saleComponent struct {
	qty      int64
	unitCost decimal.Decimal
	unitSell decimal.Decimal
}

// saleLot is the record created by one ORDER command. Lots are keyed by the
// original, pre-discount sell price; returns must match it exactly. A fully
// returned lot stays in the registry so the reverse-chronological scan
// order is preserved, but it is no longer eligible for returns.
type saleLot struct {
	price      decimal.Decimal
	remaining  int64
	components []saleComponent
}

// take consumes qty units from the lot, components oldest first, and
// returns the margin that was originally booked for those units. The
// caller guarantees qty <= lot.remaining.
func (lot *saleLot) take(qty int64) decimal.Decimal {
	margin := decimal.Zero
	remaining := qty

	for remaining > 0 {
		comp := &lot.components[0]
		take := remaining
		if comp.qty < take {
			take = comp.qty
		}

		margin = margin.Add(comp.unitSell.Sub(comp.unitCost).Mul(decimal.NewFromInt(take)))

		comp.qty -= take
		if comp.qty == 0 {
			lot.components = lot.components[1:]
		}
		remaining -= take
	}

	lot.remaining -= qty
	return margin
}

// saleRegistry holds an item's sale lots in chronological order.
type saleRegistry struct {
	lots []*saleLot
}

// record appends a new sale lot at the given original sell price. A
// zero-quantity ORDER records an empty lot: the item becomes known, but
// nothing is ever returnable against it.
func (r *saleRegistry) record(price decimal.Decimal, components []saleComponent) {
	var remaining int64
	for _, c := range components {
		remaining += c.qty
	}
	r.lots = append(r.lots, &saleLot{price: price, remaining: remaining, components: components})
}

// availableAt returns the quantity still returnable at exactly price.
func (r *saleRegistry) availableAt(price decimal.Decimal) int64 {
	var total int64
	for _, lot := range r.lots {
		if lot.price.Equal(price) {
			total += lot.remaining
		}
	}
	return total
}

// release matches a return of qty units sold at exactly price, scanning
// lots most recent first and draining components oldest first within each
// lot. It returns the aggregate margin to reverse. If qty is negative or
// the returnable quantity at that price is insufficient, no mutation
// happens and ok is false.
func (r *saleRegistry) release(qty int64, price decimal.Decimal) (margin decimal.Decimal, ok bool) {
	if qty < 0 || r.availableAt(price) < qty {
		return decimal.Zero, false
	}

	margin = decimal.Zero
	remaining := qty
	for i := len(r.lots) - 1; i >= 0 && remaining > 0; i-- {
		lot := r.lots[i]
		if lot.remaining == 0 || !lot.price.Equal(price) {
			continue
		}

		take := remaining
		if lot.remaining < take {
			take = lot.remaining
		}
		margin = margin.Add(lot.take(take))
		remaining -= take
	}

	return margin, true
}
