package bigint

// Int is a signed integer whose magnitude is a Uint of twice the width of the unsigned
// values it was derived from.
type Int struct {
	neg bool
	abs Uint
}

// NewInt widens x to a signed value of width 2*x.Width().
func NewInt(x Uint) Int {
	return Int{abs: x.Resize(2 * x.width)}
}

func makeInt(neg bool, abs Uint) Int {
	return Int{neg: neg && !abs.IsZero(), abs: abs}
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case x.abs.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Abs returns the magnitude of x.
func (x Int) Abs() Uint { return x.abs }

// Neg returns -x.
func (x Int) Neg() Int { return makeInt(!x.neg, x.abs) }

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return makeInt(x.neg, x.abs.Add(y.abs))
	}
	if x.abs.Cmp(y.abs) >= 0 {
		return makeInt(x.neg, x.abs.Sub(y.abs))
	}
	return makeInt(y.neg, y.abs.Sub(x.abs))
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int { return x.Add(y.Neg()) }

// Mul returns x * y.
func (x Int) Mul(y Int) Int { return makeInt(x.neg != y.neg, x.abs.Mul(y.abs)) }

// Quo returns x / y truncated toward zero. It panics if y is zero.
func (x Int) Quo(y Int) Int { return makeInt(x.neg != y.neg, x.abs.Div(y.abs)) }

// Rem returns the remainder of Quo, carrying the sign of x. It panics if y is zero.
func (x Int) Rem(y Int) Int { return makeInt(x.neg, x.abs.Mod(y.abs)) }

// Mod returns x reduced into [0, m) with the width of m. It panics if m is zero.
func (x Int) Mod(m Uint) Uint {
	r := x.abs.Mod(m).Resize(m.width)
	if x.neg && !r.IsZero() {
		return m.Sub(r)
	}
	return r
}

// String returns the decimal representation of x.
func (x Int) String() string {
	if x.Sign() < 0 {
		return "-" + x.abs.String()
	}
	return x.abs.String()
}
