package clusterstest

// Num is a one-dimensional integer point. Its distance is the absolute
// difference.
type Num int

// Distance implements clusters.Proximity.
func (n Num) Distance(other Num) int {
	if n > other {
		return int(n - other)
	}
	return int(other - n)
}

// Skewed is a point whose distance depends on direction: measuring from a
// adds a's Bias, so a.Distance(b) and b.Distance(a) differ when the biases do.
type Skewed struct {
	Pos  int
	Bias int
}

// Distance implements clusters.Proximity.
func (s Skewed) Distance(other Skewed) int {
	return Num(s.Pos).Distance(Num(other.Pos)) + s.Bias
}
