package compiler

// Counter is a monotonic sequence for one synthetic-name category.
//
// Counters are owned by a single Context and mutated only by the goroutine
// running the conversion, so no synchronization is needed.
type Counter struct {
	seq int64
}

// Next increments the counter and returns the new value. The first call
// returns 1.
func (c *Counter) Next() int64 {
	c.seq++
	return c.seq
}

// Current returns the last value handed out without incrementing.
func (c *Counter) Current() int64 {
	return c.seq
}

// counters groups the per-category sequences of a Context. It is copied by
// value into checkpoints.
type counters struct {
	set  Counter
	oset Counter
	arc  Counter
	link Counter
}
