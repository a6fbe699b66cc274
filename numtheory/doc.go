// Package numtheory collects the small number-theoretic helpers shared by
// the puzzle solutions: GCD/LCM, the Euclid remainder sequence, Bézout
// coefficients, and the Chinese remainder theorem for combining cyclic
// constraints.
//
// All functions are pure and operate on int (64-bit on the supported
// platforms); callers are responsible for staying clear of overflow when
// combining very large moduli.
package numtheory
