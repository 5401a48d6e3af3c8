package keypath

// Flat is an ordered mapping from key path to leaf value. Order is
// first-seen: flattening preserves the depth-first traversal order of
// the source tree, and the reconciliation engine iterates it to keep
// new translation units in the source JSON's ordering.
type Flat struct {
	keys []string
	vals map[string]Value
}

// NewFlat returns an empty flat mapping.
func NewFlat() *Flat {
	return &Flat{vals: make(map[string]Value)}
}

// Set stores a leaf under a key path, appending the key on first use.
func (f *Flat) Set(key string, v Value) {
	if _, ok := f.vals[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.vals[key] = v
}

// Get retrieves the leaf stored under a key path.
func (f *Flat) Get(key string) (Value, bool) {
	v, ok := f.vals[key]
	return v, ok
}

// Has reports whether a key path is present.
func (f *Flat) Has(key string) bool {
	_, ok := f.vals[key]
	return ok
}

// Keys returns the key paths in first-seen order.
// The returned slice is owned by the mapping and must not be modified.
func (f *Flat) Keys() []string {
	return f.keys
}

// Len returns the number of entries.
func (f *Flat) Len() int {
	return len(f.keys)
}

// Object returns the mapping as a JSON object with the escaped key
// paths kept literal. Used for flat (non-nested) export output.
func (f *Flat) Object() *Object {
	obj := NewObject()
	for _, key := range f.keys {
		obj.Set(key, f.vals[key])
	}
	return obj
}
