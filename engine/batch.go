package engine

import "github.com/shopspring/decimal"

// stockBatch is a single delivery of inventory at a unit cost. Batches are
// never mutated after creation except for the quantity decrement during
// FIFO consumption.
type stockBatch struct {
	qty  int64
	cost decimal.Decimal
}

// batchLedger holds an item's stock batches in arrival order. Consumption
// always drains the oldest batch first.
type batchLedger struct {
	batches []*stockBatch
}

// add appends a batch. Validation of qty and cost is the engine's concern;
// the ledger assumes qty > 0 and cost > 0.
func (l *batchLedger) add(qty int64, cost decimal.Decimal) {
	l.batches = append(l.batches, &stockBatch{qty: qty, cost: cost})
}

// available returns the total quantity across all remaining batches.
func (l *batchLedger) available() int64 {
	var total int64
	for _, b := range l.batches {
		total += b.qty
	}
	return total
}

// portion records a quantity consumed from a single batch together with
// that batch's unit cost.
type portion struct {
	qty  int64
	cost decimal.Decimal
}

// consume removes qty units from the front of the ledger, splitting the
// last batch touched when it only partially covers the request. It reports
// the consumed portions in FIFO order. If qty is negative or exceeds the
// available total, no mutation happens and ok is false.
func (l *batchLedger) consume(qty int64) (portions []portion, ok bool) {
	if qty < 0 || l.available() < qty {
		return nil, false
	}

	remaining := qty
	for remaining > 0 {
		batch := l.batches[0]
		take := remaining
		if batch.qty < take {
			take = batch.qty
		}

		portions = append(portions, portion{qty: take, cost: batch.cost})

		batch.qty -= take
		if batch.qty == 0 {
			l.batches = l.batches[1:]
		}
		remaining -= take
	}

	return portions, true
}

// costBasis returns the weighted cost of a set of consumed portions.
func costBasis(portions []portion) decimal.Decimal {
	total := decimal.Zero
	for _, p := range portions {
		total = total.Add(p.cost.Mul(decimal.NewFromInt(p.qty)))
	}
	return total
}
