// Package simd contains the 4-lane float kernels backing the vectorized
// fast paths of the root package.
//
// The optimized paths are selected by build tags:
//
//   - amd64: SSE2 assembly kernels
//   - purego tag: pure Go scalar implementation
//   - other architectures: pure Go fallback
//
// Every kernel processes exactly four lanes. Vec3 callers keep a zeroed
// padding lane, so the fourth lane is arithmetically inert for them except
// under division, which the caller re-zeroes.
//
// The assembly and fallback implementations are required to be numerically
// identical; ops_test.go checks every kernel against the scalar reference
// on whichever backend the build selects.
package simd
