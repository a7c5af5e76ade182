// Package sparse holds the explicit matrix form of band operators. DOK is a
// dictionary-of-keys matrix that satisfies gonum's mat.Matrix, so it can be
// handed to any gonum routine that accepts a generic matrix.
package sparse

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShape is returned when matrix dimensions do not agree.
	ErrShape = errors.New("sparse: dimension mismatch")
	// ErrSingular is returned when a linear system has no unique solution.
	ErrSingular = errors.New("sparse: matrix is singular")
)

// DOK is a dictionary-of-keys sparse matrix.
type DOK struct {
	rows, cols int

	data map[key]float64
}

type key struct {
	row, col int
}

// Entry is one stored element.
type Entry struct {
	Row, Col int
	Value    float64
}

var _ mat.Matrix = (*DOK)(nil)

// New returns an empty r×c matrix.
func New(r, c int) *DOK {
	if r <= 0 || c <= 0 {
		panic(mat.ErrZeroLength)
	}
	return &DOK{
		rows: r,
		cols: c,
		data: make(map[key]float64),
	}
}

// Dims returns the number of rows and columns.
func (m *DOK) Dims() (r, c int) {
	return m.rows, m.cols
}

// At returns element (i, j).
func (m *DOK) At(i, j int) float64 {
	m.check(i, j)
	return m.data[key{i, j}]
}

// T returns the implicit transpose.
func (m *DOK) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// Set stores v at (i, j). Storing zero removes the element.
func (m *DOK) Set(i, j int, v float64) {
	m.check(i, j)
	if v == 0 {
		delete(m.data, key{i, j})
		return
	}
	m.data[key{i, j}] = v
}

// Add adds v to element (i, j).
func (m *DOK) Add(i, j int, v float64) {
	m.Set(i, j, m.At(i, j)+v)
}

// NNZ returns the number of stored non-zero elements.
func (m *DOK) NNZ() int {
	return len(m.data)
}

// Entries returns the stored elements in row-major order.
func (m *DOK) Entries() []Entry {
	out := make([]Entry, 0, len(m.data))
	for k, v := range m.data {
		out = append(out, Entry{Row: k.row, Col: k.col, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// MulVec returns m*x.
func (m *DOK) MulVec(x []float64) []float64 {
	if m.cols != len(x) {
		panic(ErrShape)
	}
	dst := make([]float64, m.rows)
	for _, e := range m.Entries() {
		dst[e.Row] += e.Value * x[e.Col]
	}
	return dst
}

// Dense returns a dense copy.
func (m *DOK) Dense() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for k, v := range m.data {
		d.Set(k.row, k.col, v)
	}
	return d
}

func (m *DOK) check(i, j int) {
	if i < 0 || m.rows <= i {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || m.cols <= j {
		panic(mat.ErrColAccess)
	}
}

// Sum returns the element-wise sum of ms.
func Sum(ms ...*DOK) (*DOK, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("%w: no matrices", ErrShape)
	}

	r, c := ms[0].Dims()
	out := New(r, c)
	for _, m := range ms {
		if mr, mc := m.Dims(); mr != r || mc != c {
			return nil, fmt.Errorf("%w: %d×%d and %d×%d", ErrShape, r, c, mr, mc)
		}
		for k, v := range m.data {
			out.Add(k.row, k.col, v)
		}
	}
	return out, nil
}

// Solve solves m*x = b with a dense LU factorisation. It is the generic
// fallback for operators that cannot be split along one axis.
func Solve(m mat.Matrix, b []float64) ([]float64, error) {
	r, c := m.Dims()
	if r != c || r != len(b) {
		return nil, fmt.Errorf("%w: %d×%d system with %d right-hand side entries", ErrShape, r, c, len(b))
	}

	var lu mat.LU
	lu.Factorize(m)
	if lu.Det() == 0 {
		return nil, ErrSingular
	}

	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, mat.NewVecDense(len(b), append([]float64(nil), b...))); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("sparse: solve: %w", err)
		}
	}
	return mat.Col(nil, 0, &x), nil
}
