package numtheory

import "errors"

// ErrNoSolution indicates an inconsistent system of congruences: two
// constraints disagree modulo the GCD of their moduli.
var ErrNoSolution = errors.New("numtheory: system of congruences has no solution")

// GCD returns the greatest common divisor of a and b (always non-negative).
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of the given values.
// LCM() == 1, matching the empty product.
func LCM(values ...int) int {
	result := 1
	for _, v := range values {
		result = result / GCD(result, v) * v
	}

	return result
}

// RQ is one step of Euclid's algorithm: the remainder and quotient of a
// single division.
type RQ struct {
	Remainder int
	Quotient  int
}

// EuclidSequence returns the successive (remainder, quotient) pairs of
// Euclid's algorithm applied to m and n, largest first. The final pair has
// Remainder 0; its predecessor's remainder is GCD(m, n).
func EuclidSequence(m, n int) []RQ {
	hi, lo := m, n
	if lo > hi {
		hi, lo = lo, hi
	}

	var seq []RQ
	for lo != 0 {
		rq := RQ{Remainder: hi % lo, Quotient: hi / lo}
		seq = append(seq, rq)
		hi, lo = lo, rq.Remainder
	}

	return seq
}

// BezoutCoefficients returns u, v satisfying u*m + v*n == GCD(m, n).
func BezoutCoefficients(m, n int) (int, int) {
	// Iterative extended Euclid: maintain coefficients expressing the
	// current remainders as combinations of m and n.
	r0, r1 := m, n
	u0, u1 := 1, 0
	v0, v1 := 0, 1
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		u0, u1 = u1, u0-q*u1
		v0, v1 = v1, v0-q*v1
	}
	if r0 < 0 {
		u0, v0 = -u0, -v0
	}

	return u0, v0
}

// ChineseRemainder solves the system x ≡ residues[i] (mod moduli[i]) for
// all i, combining congruences pairwise. Moduli need not be pairwise
// coprime; an inconsistent system returns ErrNoSolution.
//
// Returns the smallest non-negative solution and the combined modulus
// (the LCM of all moduli).
func ChineseRemainder(residues, moduli []int) (int, int, error) {
	x, m := 0, 1
	for i := range moduli {
		r2, m2 := residues[i], moduli[i]
		g := GCD(m, m2)
		if (r2-x)%g != 0 {
			return 0, 0, ErrNoSolution
		}

		lcm := m / g * m2
		// Shift x by a multiple of m chosen so the new congruence holds:
		// x + m*t ≡ r2 (mod m2)  ⇒  t ≡ (r2-x)/g * inv(m/g) (mod m2/g).
		u, _ := BezoutCoefficients(m/g, m2/g)
		t := (r2 - x) / g % (m2 / g) * u % (m2 / g)
		x += m * t
		m = lcm
		x %= m
		if x < 0 {
			x += m
		}
	}

	return x, m, nil
}
