// Package selector picks the minimum-time path among enumerated candidates.
//
// Ties go to the earliest candidate in input order: the running minimum is only
// replaced on a strictly smaller total. The running minimum starts unset rather
// than at a guessed index, so candidate 0 competes on equal terms and an
// all-infinite candidate set still resolves to index 0.
//
// Complexity: O(Σ len(path)) per call.
package selector
