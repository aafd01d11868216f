// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (white-box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED helpers to matrix_test ONLY; the _test.go suffix keeps
//     them out of production builds.

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Eps float64
}

// GatherOptionsSnapshot_TestOnly resolves opts the way constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps}
}

// FactorizeSnapshot_TestOnly runs elimination on m and reports the row
// permutation, swap sign and singularity flag.
func FactorizeSnapshot_TestOnly[T Scalar](m *Square[T]) (perm []int, sign int, singular bool) {
	f := factorize(m.data, m.size, m.eps)

	return f.perm, f.sign, f.singular
}

// DataLen_TestOnly exposes len(m.data) to check the storage invariant directly.
func DataLen_TestOnly[T Scalar](m *Square[T]) int { return len(m.data) }
