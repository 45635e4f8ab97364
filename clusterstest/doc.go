// Package clusterstest provides conformance helpers for implementations of
// the clusters interfaces.
//
// This package is intended for use in tests only. It provides simple point
// types, a reference algorithm and assertions for the partition contract.
//
// # Reference Algorithm
//
//	alg := clusterstest.Linkage[clusterstest.Num, int]{Epsilon: 2}
//	res, _ := alg.Cluster([]clusterstest.Num{0, 1, 10})
//	res.Clusters() // [[0 1]]
//	res.Noise()    // [10]
//
// # Conformance
//
//	clusterstest.CheckAlgorithm(t, myAlgorithm, inputs...)
package clusterstest
