package bigint

import "fmt"

// Bezout returns coefficients (s, t) with a*s + b*t = gcd(a, b). Bezout(0, b) is (0, 1).
// The coefficients follow the remainder sequence of b mod a, a, ... and are computed
// iteratively on the signed double-width type.
func Bezout(a, b Uint) (Int, Int) {
	oldR, r := NewInt(b), NewInt(a)
	// oldR = oldS*a + oldT*b, r = s*a + t*b
	oldS, s := NewInt(Zero(a.width)), NewInt(FromUint64(a.width, 1))
	oldT, t := NewInt(FromUint64(a.width, 1)), NewInt(Zero(a.width))

	for r.Sign() != 0 {
		q := oldR.Quo(r)
		oldR, r = r, oldR.Sub(q.Mul(r))
		oldS, s = s, oldS.Sub(q.Mul(s))
		oldT, t = t, oldT.Sub(q.Mul(t))
	}
	return oldS, oldT
}

// ModInverse returns d in [0, m) with e*d = 1 (mod m).
func ModInverse(e, m Uint) (Uint, error) {
	if m.IsZero() {
		return Uint{}, fmt.Errorf("%w: zero modulus", ErrNotInvertible)
	}
	if g := e.Gcd(m); g.Cmp(FromUint64(g.width, 1)) != 0 {
		return Uint{}, fmt.Errorf("%w: gcd is %s", ErrNotInvertible, g)
	}
	s, _ := Bezout(e, m)
	return s.Mod(m), nil
}
