package integrators

// RK4 is the classic fixed-step fourth-order Runge-Kutta method.
type RK4 struct{}

func NewRK4() *RK4 { return &RK4{} }

func (r *RK4) Step(sys System, x []float64, t, dt float64) []float64 {
	n := len(x)

	k1 := sys.Derivative(x, t)

	x2 := make([]float64, n)
	for i := 0; i < n; i++ {
		x2[i] = x[i] + dt/2*k1[i]
	}
	k2 := sys.Derivative(x2, t+dt/2)

	x3 := make([]float64, n)
	for i := 0; i < n; i++ {
		x3[i] = x[i] + dt/2*k2[i]
	}
	k3 := sys.Derivative(x3, t+dt/2)

	x4 := make([]float64, n)
	for i := 0; i < n; i++ {
		x4[i] = x[i] + dt*k3[i]
	}
	k4 := sys.Derivative(x4, t+dt)

	newX := make([]float64, n)
	for i := 0; i < n; i++ {
		newX[i] = x[i] + dt/6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return newX
}
