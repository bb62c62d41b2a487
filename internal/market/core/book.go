package core

import "sort"

// Book is one side of a market's resting orders, kept sorted by
// construction: bids descending by price, asks ascending by price.
// Equal prices keep arrival order.
//
// Book has value semantics. Mutating methods operate on the receiver's
// slice, so callers that need snapshot isolation clone first.
type Book struct {
	side    Side
	entries []OrderEntry
}

// NewBook creates an empty book side.
func NewBook(side Side) Book {
	return Book{side: side}
}

// Side returns which side this book holds.
func (b Book) Side() Side { return b.side }

// Len returns the number of resting orders.
func (b Book) Len() int { return len(b.entries) }

// Top returns the best entry: highest bid or lowest ask.
func (b Book) Top() (OrderEntry, bool) {
	if len(b.entries) == 0 {
		return OrderEntry{}, false
	}
	return b.entries[0], true
}

// Entries returns a copy of the resting orders, best first.
func (b Book) Entries() []OrderEntry {
	out := make([]OrderEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Depth returns the total resting quantity on this side.
func (b Book) Depth() Qty {
	var total Qty
	for _, e := range b.entries {
		total += e.Qty
	}
	return total
}

// clone returns a book whose entry slice is independent of the receiver's.
func (b Book) clone() Book {
	out := Book{side: b.side, entries: make([]OrderEntry, len(b.entries))}
	copy(out.entries, b.entries)
	return out
}

// insert places e at its sorted position. The position is found once by
// binary search; the slice is never re-sorted.
func (b *Book) insert(e OrderEntry) {
	i := sort.Search(len(b.entries), func(i int) bool {
		if b.side == SideBid {
			return b.entries[i].Price < e.Price
		}
		return b.entries[i].Price > e.Price
	})
	b.entries = append(b.entries, OrderEntry{})
	copy(b.entries[i+1:], b.entries[i:])
	b.entries[i] = e
}

// evictOverflow drops the lowest-priority tail entry if the book exceeds
// max entries. Returns the evicted entry, if any.
func (b *Book) evictOverflow(max int) (OrderEntry, bool) {
	if len(b.entries) <= max {
		return OrderEntry{}, false
	}
	last := b.entries[len(b.entries)-1]
	b.entries = b.entries[:len(b.entries)-1]
	return last, true
}

// removeTop removes and returns the best entry. Caller must ensure the
// book is non-empty.
func (b *Book) removeTop() OrderEntry {
	top := b.entries[0]
	b.entries = append(b.entries[:0:0], b.entries[1:]...)
	return top
}

// reduceTop decrements the best entry's quantity in place.
func (b *Book) reduceTop(q Qty) {
	b.entries[0].Qty -= q
}
