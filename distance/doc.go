// Package distance adapts plain distance functions to clusters.Proximity.
//
// It ships no metrics of its own. Callers bring the function and choose the
// nearness policy:
//
//	p := distance.Bind(func(a, b int) int { return max(a-b, b-a) }, 3)
//	clusters.IsNear[int, int](p, 5, 2) // true: |3-5| <= 2
//
//	strict := distance.Strict[int, int](p)
//	clusters.IsNear[int, int](strict, 5, 2) // false: |3-5| < 2 does not hold
//
// The zero Point has no distance function; always construct with Bind or
// Points.
//
// # Nearness Policies
//
//   - default: distance <= epsilon (clusters.DefaultIsNear)
//   - Strict: distance < epsilon
//   - Within: any caller policy, e.g. comparing squared distances
package distance
