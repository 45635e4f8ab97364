package clusters

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// VerifyPartition checks that r partitions input: every input point appears
// exactly once across the clusters and the noise, and nothing else does.
//
// Points are matched as a multiset, so equal points submitted twice must be
// reported twice. The first violation found is returned as *ErrUnexpectedPoint
// or *ErrMissingPoint, both matching ErrPartition.
func VerifyPartition[T comparable](input []T, r Clustered[T]) error {
	pending := make(map[T][]uint32, len(input))
	for i, p := range input {
		pending[p] = append(pending[p], uint32(i))
	}

	seen := roaring.New()
	pos := 0
	consume := func(p T) error {
		idx := pending[p]
		if len(idx) == 0 {
			return &ErrUnexpectedPoint{Position: pos}
		}
		seen.Add(idx[0])
		pending[p] = idx[1:]
		pos++
		return nil
	}

	if err := walk(r, consume); err != nil {
		return err
	}
	return missing(seen, len(input))
}

// VerifyPartitionFunc is VerifyPartition for points that are not comparable,
// using equal to match result points against the input.
func VerifyPartitionFunc[T any](input []T, r Clustered[T], equal func(a, b T) bool) error {
	seen := roaring.New()
	pos := 0
	consume := func(p T) error {
		for i := range input {
			if seen.Contains(uint32(i)) || !equal(input[i], p) {
				continue
			}
			seen.Add(uint32(i))
			pos++
			return nil
		}
		return &ErrUnexpectedPoint{Position: pos}
	}

	if err := walk(r, consume); err != nil {
		return err
	}
	return missing(seen, len(input))
}

func walk[T any](r Clustered[T], fn func(T) error) error {
	for _, g := range r.Clusters() {
		for _, p := range g {
			if err := fn(p); err != nil {
				return err
			}
		}
	}
	for _, p := range r.Noise() {
		if err := fn(p); err != nil {
			return err
		}
	}
	return nil
}

func missing(seen *roaring.Bitmap, n int) error {
	if seen.GetCardinality() == uint64(n) {
		return nil
	}
	all := roaring.New()
	all.AddRange(0, uint64(n))
	all.AndNot(seen)
	return &ErrMissingPoint{Index: int(all.Minimum())}
}
