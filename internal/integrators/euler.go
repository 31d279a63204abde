package integrators

type Euler struct{}

func NewEuler() *Euler { return &Euler{} }

func (e *Euler) Step(sys System, x []float64, t, dt float64) []float64 {
	dx := sys.Derivative(x, t)
	newX := make([]float64, len(x))
	for i := range x {
		newX[i] = x[i] + dt*dx[i]
	}
	return newX
}
