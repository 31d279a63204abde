// Package tf implements transfer functions of linear time-invariant
// systems: rational functions of the complex frequency variable s with an
// optional pure time delay.
//
// A transfer function g(s) = num(s)/den(s) * e^(-delay*s) is an immutable
// value built by construction or by the algebra in this package:
//
//	g, _ := tf.New([]float64{4}, []float64{3, 1}, 0) // 4/(3s+1)
//	gc := tf.S.Scale(2).Mul(g)                       // 8s/(3s+1)
//
// Feedback loops whose forward path and loop both carry dead time cannot be
// reduced to a single rational function; [ClosedLoop] keeps the two factors
// apart so the simulator can treat the loop as a delay differential
// equation.
package tf
