package generator

// VisitedSet marks macro-cells that belong to the maze, indexed by macro-cell id.
type VisitedSet []bool

// NewVisitedSet returns an empty set for n macro-cells.
func NewVisitedSet(n int) VisitedSet {
	return make(VisitedSet, n)
}

// Has reports whether m is in the set
func (v VisitedSet) Has(m int) bool {
	return m >= 0 && m < len(v) && v[m]
}

// Add puts m in the set
func (v VisitedSet) Add(m int) {
	v[m] = true
}

// Remove takes m out of the set
func (v VisitedSet) Remove(m int) {
	v[m] = false
}

// Len returns the number of macro-cells in the set
func (v VisitedSet) Len() int {
	n := 0
	for _, in := range v {
		if in {
			n++
		}
	}
	return n
}

// Frontier holds visited macro-cells that may still have unvisited
// neighbours. Order is not meaningful: removal swaps in the last entry.
type Frontier struct {
	items []int
}

// Push adds m to the frontier
func (f *Frontier) Push(m int) {
	f.items = append(f.items, m)
}

// Len returns the number of entries
func (f *Frontier) Len() int {
	return len(f.items)
}

// Empty reports whether the frontier has no entries
func (f *Frontier) Empty() bool {
	return len(f.items) == 0
}

// At returns entry i
func (f *Frontier) At(i int) int {
	return f.items[i]
}

// RemoveAt drops entry i
func (f *Frontier) RemoveAt(i int) {
	last := len(f.items) - 1
	f.items[i] = f.items[last]
	f.items = f.items[:last]
}
