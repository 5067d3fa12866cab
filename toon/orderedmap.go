package toon

import "sort"

// Pair represents a single key/value entry of an OrderedMap.
type Pair struct {
	key   string
	value Value
}

// Key returns the pair's key.
func (p *Pair) Key() string { return p.key }

// Value returns the pair's value.
func (p *Pair) Value() Value { return p.value }

// byPair implements sort.Interface for reordering Pairs with a custom
// comparison, kept from the teacher's OrderedMap.Sort for callers that
// want a canonical key order (e.g. deterministic test fixtures).
type byPair struct {
	pairs    []*Pair
	lessFunc func(a, b *Pair) bool
}

func (a byPair) Len() int           { return len(a.pairs) }
func (a byPair) Swap(i, j int)      { a.pairs[i], a.pairs[j] = a.pairs[j], a.pairs[i] }
func (a byPair) Less(i, j int) bool { return a.lessFunc(a.pairs[i], a.pairs[j]) }

// OrderedMap is the concrete backing store for a Map Value (spec §3):
// distinct string keys in insertion order. It is the one mutable
// builder type in the package — once wrapped in a Value via Map(om),
// callers are expected to stop mutating it.
type OrderedMap struct {
	keys   []string
	values map[string]Value
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{
		keys:   []string{},
		values: map[string]Value{},
	}
}

// Get retrieves a value by key.
func (o *OrderedMap) Get(key string) (Value, bool) {
	val, exists := o.values[key]
	return val, exists
}

// Set adds or updates a key-value pair, appending key to the
// insertion order only the first time it is seen.
func (o *OrderedMap) Set(key string, value Value) *OrderedMap {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Delete removes a key-value pair, if present.
func (o *OrderedMap) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	delete(o.values, key)
}

// Keys returns the insertion-ordered key slice. Callers must not
// mutate the returned slice.
func (o *OrderedMap) Keys() []string {
	return o.keys
}

// Len returns the number of key-value pairs.
func (o *OrderedMap) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// SortKeys reorders the map's keys in place using the provided
// comparison, without touching the stored values.
func (o *OrderedMap) SortKeys(sortFunc func(keys []string)) {
	sortFunc(o.keys)
}

// Sort reorders the map's keys in place according to a pair
// comparison (kept from the teacher for callers that want to
// canonicalize key order by both key and value).
func (o *OrderedMap) Sort(lessFunc func(a, b *Pair) bool) {
	pairs := make([]*Pair, len(o.keys))
	for i, key := range o.keys {
		pairs[i] = &Pair{key, o.values[key]}
	}
	sort.Sort(byPair{pairs, lessFunc})
	for i, pair := range pairs {
		o.keys[i] = pair.key
	}
}

// sameKeySet reports whether two OrderedMaps have identical key sets,
// order-independent (spec §4.4 tabular-detection uniformity check).
func sameKeySet(a, b *OrderedMap) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, k := range a.Keys() {
		if _, ok := b.Get(k); !ok {
			return false
		}
	}
	return true
}
