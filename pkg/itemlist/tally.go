package itemlist

// Tally counts quantities per item name and remembers the order in which
// names were first added. The zero value is ready to use.
type Tally struct {
	names  []string
	counts map[string]int
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add adds qty to name.
func (t *Tally) Add(name string, qty int) {
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	if _, seen := t.counts[name]; !seen {
		t.names = append(t.names, name)
	}
	t.counts[name] += qty
}

// Merge adds every count of other into t, in other's order.
func (t *Tally) Merge(other *Tally) {
	if other == nil {
		return
	}
	for _, name := range other.names {
		t.Add(name, other.counts[name])
	}
}

// Get returns the quantity recorded for name.
func (t *Tally) Get(name string) int {
	return t.counts[name]
}

// Len returns the number of distinct names.
func (t *Tally) Len() int {
	return len(t.names)
}

// Names returns the names in first-added order.
func (t *Tally) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Map returns a copy of the counts.
func (t *Tally) Map() map[string]int {
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

// Top returns the name with the highest quantity. On a tie the name that was
// added first wins. ok is false when the tally is empty.
func (t *Tally) Top() (name string, qty int, ok bool) {
	for _, n := range t.names {
		if !ok || t.counts[n] > qty {
			name, qty, ok = n, t.counts[n], true
		}
	}
	return name, qty, ok
}
