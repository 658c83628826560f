package pairtable

type Stats struct {
	// Occupied slots. For a Table, the number of distinct primary keys.
	Size       int
	Capacity   int
	LoadFactor float32
	Grows      int
	// The capacity schedule ran out and the table stopped growing.
	Exhausted bool

	// Number of (k1, k2) pairs. Set by Table only.
	Pairs int
}
