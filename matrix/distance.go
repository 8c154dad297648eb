// SPDX-License-Identifier: MIT

package matrix

// Distance is an immutable symmetric n×n table of pairwise city costs.
//
// A Distance is only obtainable through NewDistance/NewDistanceFrom, so every
// instance satisfies the ValidateDistance contract. Reads are unchecked: the
// hot path of the annealing loop indexes the flat buffer directly.
//
// Concurrency: safe for concurrent readers; there are no writers.
type Distance struct {
	n    int
	data []float64 // row-major, len n*n
}

// NewDistance validates m and copies it into a new Distance.
// The caller may keep mutating m afterwards; the Distance is unaffected.
//
// Complexity: O(n²) time and memory.
func NewDistance(m Matrix) (*Distance, error) {
	n, err := ValidateDistance(m)
	if err != nil {
		return nil, err
	}
	d := &Distance{n: n, data: make([]float64, n*n)}

	var (
		i, j int
		v    float64
	)
	if dense, ok := m.(*Dense); ok {
		copy(d.data, dense.data)

		return d, nil
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			d.data[i*n+j] = v
		}
	}

	return d, nil
}

// NewDistanceFrom is a convenience wrapper over NewDenseFrom + NewDistance.
func NewDistanceFrom(rows [][]float64) (*Distance, error) {
	m, err := NewDenseFrom(rows)
	if err != nil {
		return nil, err
	}

	return NewDistance(m)
}

// N returns the number of cities.
func (d *Distance) N() int { return d.n }

// At returns the cost between cities i and j without bounds checking beyond
// the runtime's own slice checks. Callers hold indices from a validated Route.
func (d *Distance) At(i, j int) float64 { return d.data[i*d.n+j] }

// Row returns a copy of row i.
func (d *Distance) Row(i int) []float64 {
	out := make([]float64, d.n)
	copy(out, d.data[i*d.n:(i+1)*d.n])

	return out
}

// Dense returns a mutable copy of the table.
func (d *Distance) Dense() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Dense{r: d.n, c: d.n, data: cp}
}
