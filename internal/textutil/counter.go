package textutil

import "sort"

// Counter counts string keys while remembering first-occurrence order.
//
// Design decision: MostCommon must produce a deterministic order for the
// report tables, but the contract only fixes "count descending". For equal
// counts we keep insertion order, i.e. the order in which keys first
// appeared in the corpus scan. This is an accepted tie-break inherited from
// the counting structure, not a lexical guarantee.
type Counter struct {
	counts map[string]int
	order  []string
}

// Entry is a key with its count, as returned by MostCommon.
type Entry struct {
	Key   string
	Count int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add increments the count of key by one.
func (c *Counter) Add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// AddAll increments the count of every key in keys.
func (c *Counter) AddAll(keys []string) {
	for _, k := range keys {
		c.Add(k)
	}
}

// Count returns the count of key, 0 if never added.
func (c *Counter) Count(key string) int {
	return c.counts[key]
}

// Len returns the number of distinct keys.
func (c *Counter) Len() int {
	return len(c.order)
}

// Total returns the sum of all counts.
func (c *Counter) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// MostCommon returns up to k entries sorted by count descending,
// insertion order for equal counts. k < 0 returns all entries.
func (c *Counter) MostCommon(k int) []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, Entry{Key: key, Count: c.counts[key]})
	}

	// Stable sort preserves the insertion-order tie-break.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if k >= 0 && k < len(entries) {
		entries = entries[:k]
	}
	return entries
}
