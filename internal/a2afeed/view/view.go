package view

import (
	"sync"

	"github.com/agentfair/agorasim/internal/a2afeed"
)

// QueryEvent wraps a published query record.
type QueryEvent struct {
	Record a2afeed.QueryRecord
}

// FeedView keeps a bounded ring of the most recent query records.
type FeedView struct {
	mu    sync.RWMutex
	buf   []a2afeed.QueryRecord
	size  int
	start int
	count int
	total int64
}

// NewFeedView creates a view retaining up to capacity records.
func NewFeedView(capacity int) *FeedView {
	if capacity <= 0 {
		capacity = 1
	}
	return &FeedView{
		buf:  make([]a2afeed.QueryRecord, capacity),
		size: capacity,
	}
}

// Apply appends a record, overwriting the oldest when full.
func (v *FeedView) Apply(ev QueryEvent) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.total++
	if v.count < v.size {
		v.buf[(v.start+v.count)%v.size] = ev.Record
		v.count++
		return
	}
	v.buf[v.start] = ev.Record
	v.start = (v.start + 1) % v.size
}

// Latest returns the last n records in chronological order.
func (v *FeedView) Latest(n int) []a2afeed.QueryRecord {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if n <= 0 || v.count == 0 {
		return nil
	}
	if n > v.count {
		n = v.count
	}
	out := make([]a2afeed.QueryRecord, n)
	first := (v.start + (v.count - n)) % v.size
	for i := 0; i < n; i++ {
		out[i] = v.buf[(first+i)%v.size]
	}
	return out
}

// Total returns the number of records ever published.
func (v *FeedView) Total() int64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.total
}
