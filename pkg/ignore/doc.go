// Package ignore implements gitignore-style path exclusion.
//
// A Set is an ordered, immutable sequence of compiled patterns. Evaluation
// is order-dependent: the last pattern matching a path decides whether it
// is excluded, with a leading "!" reversing the effect. A pattern ending
// in "/" matches directories only; once a directory is excluded, nothing
// beneath it can be re-included by a negation.
//
// Sets are built once via Parse, ParseLines or Load and never mutated, so
// Match and Evaluate are safe for concurrent use without locking.
package ignore
