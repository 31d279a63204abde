package poly

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Roots returns all complex roots of p, computed as the eigenvalues of the
// monic companion matrix. Constant and zero polynomials have no roots.
func (p Poly) Roots() []complex128 {
	n := p.Degree()
	if n < 1 {
		return nil
	}
	lead := p.Leading()
	comp := mat.NewDense(n, n, nil)
	for i := 0; i < n-1; i++ {
		comp.Set(i+1, i, 1)
	}
	for i := 0; i < n; i++ {
		comp.Set(i, n-1, -p.c[i]/lead)
	}
	var eig mat.Eigen
	if ok := eig.Factorize(comp, mat.EigenNone); !ok {
		return nil
	}
	return eig.Values(nil)
}

// SortRoots orders roots by real part, then imaginary part. It sorts a copy
// and leaves the argument untouched.
func SortRoots(roots []complex128) []complex128 {
	out := make([]complex128, len(roots))
	copy(out, roots)
	sort.Slice(out, func(i, j int) bool {
		if real(out[i]) != real(out[j]) {
			return real(out[i]) < real(out[j])
		}
		return imag(out[i]) < imag(out[j])
	})
	return out
}
