package poly

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Poly is a dense real-coefficient polynomial. Coefficients are stored in
// ascending power order with trailing zeros trimmed, so the zero polynomial
// has an empty coefficient slice and degree -1.
type Poly struct {
	c []float64
}

// New builds a polynomial from coefficients in ascending power order:
// New(1, 4, 5) is 5s^2 + 4s + 1.
func New(coeffs ...float64) Poly {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return Poly{c: trim(c)}
}

// FromDescending builds a polynomial from coefficients listed highest power
// first, the convention used for transfer function construction:
// FromDescending([]float64{5, 1}) is 5s + 1.
func FromDescending(coeffs []float64) Poly {
	c := make([]float64, len(coeffs))
	for i, v := range coeffs {
		c[len(coeffs)-1-i] = v
	}
	return Poly{c: trim(c)}
}

// Zero returns the zero polynomial.
func Zero() Poly { return Poly{} }

// One returns the constant polynomial 1.
func One() Poly { return Poly{c: []float64{1}} }

func trim(c []float64) []float64 {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}
	return c[:n]
}

// Degree returns the polynomial degree, or -1 for the zero polynomial.
func (p Poly) Degree() int { return len(p.c) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.c) == 0 }

// Coeff returns the coefficient of x^i, zero when i exceeds the degree.
func (p Poly) Coeff(i int) float64 {
	if i < 0 || i >= len(p.c) {
		return 0
	}
	return p.c[i]
}

// Coeffs returns a copy of the coefficients in ascending power order.
func (p Poly) Coeffs() []float64 {
	c := make([]float64, len(p.c))
	copy(c, p.c)
	return c
}

// Descending returns a copy of the coefficients highest power first. The
// zero polynomial yields [0].
func (p Poly) Descending() []float64 {
	if p.IsZero() {
		return []float64{0}
	}
	c := make([]float64, len(p.c))
	for i, v := range p.c {
		c[len(p.c)-1-i] = v
	}
	return c
}

// Leading returns the highest-order coefficient, zero for the zero polynomial.
func (p Poly) Leading() float64 {
	if p.IsZero() {
		return 0
	}
	return p.c[len(p.c)-1]
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	n := len(p.c)
	if len(q.c) > n {
		n = len(q.c)
	}
	c := make([]float64, n)
	for i := range c {
		c[i] = p.Coeff(i) + q.Coeff(i)
	}
	return Poly{c: trim(c)}
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	return p.Add(q.Scale(-1))
}

// Mul returns the product p*q by coefficient convolution.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	c := make([]float64, len(p.c)+len(q.c)-1)
	for i, a := range p.c {
		for j, b := range q.c {
			c[i+j] += a * b
		}
	}
	return Poly{c: trim(c)}
}

// Scale returns a*p.
func (p Poly) Scale(a float64) Poly {
	c := make([]float64, len(p.c))
	for i, v := range p.c {
		c[i] = a * v
	}
	return Poly{c: trim(c)}
}

// Eval evaluates p at the complex point z using Horner's scheme.
func (p Poly) Eval(z complex128) complex128 {
	var acc complex128
	for i := len(p.c) - 1; i >= 0; i-- {
		acc = acc*z + complex(p.c[i], 0)
	}
	return acc
}

// EvalReal evaluates p at a real point.
func (p Poly) EvalReal(x float64) float64 {
	var acc float64
	for i := len(p.c) - 1; i >= 0; i-- {
		acc = acc*x + p.c[i]
	}
	return acc
}

// Equal reports exact coefficient equality.
func (p Poly) Equal(q Poly) bool {
	if len(p.c) != len(q.c) {
		return false
	}
	for i := range p.c {
		if p.c[i] != q.c[i] {
			return false
		}
	}
	return true
}

// ApproxEqual reports coefficient-wise equality within tol.
func (p Poly) ApproxEqual(q Poly, tol float64) bool {
	n := len(p.c)
	if len(q.c) > n {
		n = len(q.c)
	}
	for i := 0; i < n; i++ {
		if math.Abs(p.Coeff(i)-q.Coeff(i)) > tol {
			return false
		}
	}
	return true
}

// FromRoots builds the monic polynomial whose roots are the given points.
// Complex roots are expected in conjugate pairs; the vanishing imaginary
// parts of the expanded product are discarded.
func FromRoots(roots []complex128) Poly {
	c := []complex128{1}
	for _, r := range roots {
		next := make([]complex128, len(c)+1)
		for i, v := range c {
			next[i+1] += v
			next[i] -= v * r
		}
		c = next
	}
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = real(v)
	}
	return Poly{c: trim(out)}
}

// ConjugatePaired reports whether every root with a nonzero imaginary part
// has a matching conjugate in the set, within tol.
func ConjugatePaired(roots []complex128, tol float64) bool {
	used := make([]bool, len(roots))
	for i, r := range roots {
		if used[i] || math.Abs(imag(r)) <= tol {
			continue
		}
		found := false
		for j := i + 1; j < len(roots); j++ {
			if !used[j] && cmplx.Abs(roots[j]-cmplx.Conj(r)) <= tol {
				used[i], used[j] = true, true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// String renders the polynomial in descending powers of s.
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := len(p.c) - 1; i >= 0; i-- {
		v := p.c[i]
		if v == 0 {
			continue
		}
		if !first {
			if v > 0 {
				b.WriteString(" + ")
			} else {
				b.WriteString(" - ")
				v = -v
			}
		}
		switch {
		case i == 0:
			fmt.Fprintf(&b, "%g", v)
		case i == 1:
			fmt.Fprintf(&b, "%g*s", v)
		default:
			fmt.Fprintf(&b, "%g*s^%d", v, i)
		}
		first = false
	}
	return b.String()
}
