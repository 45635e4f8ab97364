package clusters

import "cmp"

// Proximity measures how far a value is from another value of type O.
//
// The result need not be a distance in the geometric sense. It may be a time
// difference, an edit count or any other ordered quantity; smaller means
// closer. No metric axioms are assumed: Distance may be asymmetric, negative
// or violate the triangle inequality.
//
// The receiver and O may be different types, e.g. a point measured against a
// centroid with a different representation.
type Proximity[O any, D cmp.Ordered] interface {
	// Distance returns the distance from the receiver to other.
	// It must be deterministic and free of side effects.
	Distance(other O) D
}

// Nearness is implemented by a Proximity that replaces the default nearness
// policy, e.g. to skip a square root or to use strict less-than.
//
// An override should keep the meaning "near implies within epsilon under
// Distance"; this is not checked.
type Nearness[O any, D cmp.Ordered] interface {
	IsNear(other O, epsilon D) bool
}

// IsNear reports whether p is near other under epsilon.
//
// If p implements Nearness its IsNear method decides. Otherwise IsNear
// returns p.Distance(other) <= epsilon.
func IsNear[O any, D cmp.Ordered](p Proximity[O, D], other O, epsilon D) bool {
	if n, ok := p.(Nearness[O, D]); ok {
		return n.IsNear(other, epsilon)
	}
	return DefaultIsNear(p, other, epsilon)
}

// DefaultIsNear applies the default nearness policy regardless of overrides.
// For floating point D a NaN distance is never near.
func DefaultIsNear[O any, D cmp.Ordered](p Proximity[O, D], other O, epsilon D) bool {
	return p.Distance(other) <= epsilon
}
