package types

// DefaultMap is a map that materializes a value for a missing key on first
// access, like Python's defaultdict. Used to group batch failures by recipient.
//
//	m := NewDefaultMap[string, []error](func() []error { return nil })
//	m.Update("recipient", func(errs []error) []error { return append(errs, err) })
//
// A DefaultMap is not safe for concurrent use.
type DefaultMap[K comparable, V any] struct {
	data        map[K]V
	defaultFunc func() V
}

// NewDefaultMap returns an empty DefaultMap producing missing values with defaultFunc.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get returns the value stored under key, storing a default one first if absent.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.data[key] = val
	return val
}

// Set stores val under key.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	d.data[key] = val
}

// Update replaces the value under key with fn applied to the current (or default) value.
func (d *DefaultMap[K, V]) Update(key K, fn func(V) V) {
	d.data[key] = fn(d.Get(key))
}

// Len returns the number of keys present.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.data)
}

// ToMap returns the underlying map. Mutations through it are visible to d.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}
