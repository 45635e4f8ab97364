package distance

import (
	"cmp"
	"errors"

	"github.com/hupe1980/clusters"
)

// ErrUnbound is the panic value of Distance on a Point not created by Bind.
var ErrUnbound = errors.New("distance: point has no distance function, use Bind")

// Func is a function type for distance calculation from a to b.
// It need not be symmetric.
type Func[A, B any, D cmp.Ordered] func(a A, b B) D

// Policy decides nearness from a measured distance and a threshold.
type Policy[D cmp.Ordered] func(d, epsilon D) bool

// Point binds a value to a distance function. It implements
// clusters.Proximity[B, D] with the default nearness policy.
//
// Construct Points with Bind or Points. The zero Point has no distance
// function and panics with ErrUnbound when measured.
type Point[A, B any, D cmp.Ordered] struct {
	Value A
	fn    Func[A, B, D]
}

// Bind returns a Point measuring from a with f.
func Bind[A, B any, D cmp.Ordered](f Func[A, B, D], a A) Point[A, B, D] {
	return Point[A, B, D]{Value: a, fn: f}
}

// Points binds every value in values to f. values is not modified.
func Points[A, B any, D cmp.Ordered](f Func[A, B, D], values []A) []Point[A, B, D] {
	out := make([]Point[A, B, D], len(values))
	for i, v := range values {
		out[i] = Bind(f, v)
	}
	return out
}

// Distance implements clusters.Proximity.
func (p Point[A, B, D]) Distance(other B) D {
	if p.fn == nil {
		panic(ErrUnbound)
	}
	return p.fn(p.Value, other)
}

// Reverse returns f with its arguments swapped.
func Reverse[A, B any, D cmp.Ordered](f Func[A, B, D]) Func[B, A, D] {
	return func(b B, a A) D {
		return f(a, b)
	}
}

// Strict returns p with nearness redefined as distance < epsilon.
func Strict[O any, D cmp.Ordered](p clusters.Proximity[O, D]) clusters.Proximity[O, D] {
	return Within(p, func(d, epsilon D) bool { return d < epsilon })
}

// Within returns p with nearness decided by policy.
//
// Example, squared distances against a plain radius:
//
//	p := distance.Within(sq, func(d, eps float64) bool { return d <= eps*eps })
func Within[O any, D cmp.Ordered](p clusters.Proximity[O, D], policy Policy[D]) clusters.Proximity[O, D] {
	return &policed[O, D]{Proximity: p, policy: policy}
}

type policed[O any, D cmp.Ordered] struct {
	clusters.Proximity[O, D]
	policy Policy[D]
}

// IsNear implements clusters.Nearness.
func (p *policed[O, D]) IsNear(other O, epsilon D) bool {
	return p.policy(p.Distance(other), epsilon)
}
