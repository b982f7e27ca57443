package bigint

import (
	"fmt"
	"strings"
)

// Uint is an unsigned integer bounded by 2^Width()-1.
//
// Binary operations produce a result as wide as the wider operand. The zero value is a
// zero of width 0 and widens on first use.
type Uint struct {
	width uint
	abs   nat
}

// Zero returns 0 with the given bit width.
func Zero(width uint) Uint {
	return Uint{width: width}
}

// FromUint64 returns v reduced to the given bit width.
func FromUint64(width uint, v uint64) Uint {
	return Uint{width: width, abs: natFromUint64(v).truncate(width)}
}

// FromBytes interprets b as a big-endian magnitude. Inputs shorter than width/8 bytes are
// treated as left-zero-padded; longer inputs are rejected.
func FromBytes(width uint, b []byte) (Uint, error) {
	if uint(len(b)) > ByteLen(width) {
		return Uint{}, fmt.Errorf("%w: %d bytes for width %d", ErrOverflow, len(b), width)
	}
	return Uint{width: width, abs: natFromBytes(b).truncate(width)}, nil
}

// FromString parses a decimal string, or a hexadecimal one prefixed with 0x.
func FromString(width uint, s string) (Uint, error) {
	s = strings.TrimSpace(s)
	base := uint32(10)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base, s = 16, s[2:]
	}
	if s == "" {
		return Uint{}, ErrInvalidString
	}

	var z nat
	for _, c := range s {
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return Uint{}, fmt.Errorf("%w: unexpected %q", ErrInvalidString, c)
		}
		if d >= base {
			return Uint{}, fmt.Errorf("%w: unexpected %q", ErrInvalidString, c)
		}
		z = mulAddWord(z, base, d)
		if uint(z.bitLen()) > width {
			return Uint{}, fmt.Errorf("%w: %s for width %d", ErrOverflow, s, width)
		}
	}
	return Uint{width: width, abs: z}, nil
}

// ByteLen returns the number of bytes needed to hold width bits.
func ByteLen(width uint) uint {
	return (width + 7) / 8
}

func maxWidth(x, y Uint) uint {
	if x.width > y.width {
		return x.width
	}
	return y.width
}

func (x Uint) with(width uint, abs nat) Uint {
	return Uint{width: width, abs: abs.truncate(width)}
}

// Width returns the bit width of x.
func (x Uint) Width() uint { return x.width }

// Resize returns x with a new width, truncating when narrowing.
func (x Uint) Resize(width uint) Uint {
	return x.with(width, x.abs)
}

// Bytes returns the big-endian encoding of x in exactly ByteLen(Width()) bytes.
func (x Uint) Bytes() []byte {
	return x.abs.fillBytes(int(ByteLen(x.width)))
}

// Uint64 returns the low 64 bits of x.
func (x Uint) Uint64() uint64 {
	var v uint64
	if len(x.abs) > 0 {
		v = uint64(x.abs[0])
	}
	if len(x.abs) > 1 {
		v |= uint64(x.abs[1]) << 32
	}
	return v
}

// IsZero reports whether x == 0.
func (x Uint) IsZero() bool { return len(x.abs) == 0 }

// IsOdd reports whether the lowest bit of x is set.
func (x Uint) IsOdd() bool { return x.abs.bit(0) == 1 }

// Bit returns the value of the i'th bit.
func (x Uint) Bit(i int) uint { return x.abs.bit(i) }

// BitLen returns the length of the absolute value of x in bits.
func (x Uint) BitLen() int { return x.abs.bitLen() }

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Uint) Cmp(y Uint) int { return cmpNat(x.abs, y.abs) }

// Equal reports whether x and y hold the same value regardless of width.
func (x Uint) Equal(y Uint) bool { return x.Cmp(y) == 0 }

// Add returns x + y.
func (x Uint) Add(y Uint) Uint {
	return x.with(maxWidth(x, y), addNat(x.abs, y.abs))
}

// Sub returns x - y, wrapping modulo 2^width when y > x.
func (x Uint) Sub(y Uint) Uint {
	w := maxWidth(x, y)
	if cmpNat(x.abs, y.abs) >= 0 {
		return x.with(w, subNat(x.abs, y.abs))
	}
	modulus := shlNat(nat{1}, w)
	return x.with(w, subNat(modulus, subNat(y.abs, x.abs)))
}

// Mul returns x * y.
func (x Uint) Mul(y Uint) Uint {
	return x.with(maxWidth(x, y), mulNat(x.abs, y.abs))
}

// DivMod returns the Euclidean quotient and remainder of x / y. It panics if y is zero.
func (x Uint) DivMod(y Uint) (Uint, Uint) {
	w := maxWidth(x, y)
	q, r := divModNat(x.abs, y.abs)
	return x.with(w, q), x.with(w, r)
}

// Div returns x / y. It panics if y is zero.
func (x Uint) Div(y Uint) Uint {
	q, _ := x.DivMod(y)
	return q
}

// Mod returns x mod y. It panics if y is zero.
func (x Uint) Mod(y Uint) Uint {
	return x.with(maxWidth(x, y), modNat(x.abs, y.abs))
}

// ModWord returns x mod d for a single-word divisor.
func (x Uint) ModWord(d uint32) uint32 {
	_, r := divWord(x.abs, d)
	return r
}

// Lsh returns x << n.
func (x Uint) Lsh(n uint) Uint {
	return x.with(x.width, shlNat(x.abs, n))
}

// Rsh returns x >> n.
func (x Uint) Rsh(n uint) Uint {
	return x.with(x.width, shrNat(x.abs, n))
}

// Gcd returns the greatest common divisor of x and y.
func (x Uint) Gcd(y Uint) Uint {
	a, b := x.abs, y.abs
	for len(b) != 0 {
		a, b = b, modNat(a, b)
	}
	return x.with(maxWidth(x, y), a)
}

// PowMod returns base^exp mod m by left-to-right square-and-multiply, reducing after every
// step. The result has the width of m. It panics if m is zero.
func PowMod(base, exp, m Uint) Uint {
	if len(m.abs) == 0 {
		panic("bigint: zero modulus")
	}
	b := modNat(base.abs, m.abs)
	r := modNat(nat{1}, m.abs)
	for i := exp.abs.bitLen() - 1; i >= 0; i-- {
		r = modNat(mulNat(r, r), m.abs)
		if exp.abs.bit(i) == 1 {
			r = modNat(mulNat(r, b), m.abs)
		}
	}
	return m.with(m.width, r)
}

// Text returns x in base 10 or 16.
func (x Uint) Text(base int) string {
	if len(x.abs) == 0 {
		return "0"
	}
	switch base {
	case 16:
		var sb strings.Builder
		for i := len(x.abs) - 1; i >= 0; i-- {
			if i == len(x.abs)-1 {
				fmt.Fprintf(&sb, "%x", x.abs[i])
			} else {
				fmt.Fprintf(&sb, "%08x", x.abs[i])
			}
		}
		return sb.String()
	case 10:
		const chunk = 1000000000
		var parts []uint32
		z := x.abs
		for len(z) > 0 {
			var r uint32
			z, r = divWord(z, chunk)
			parts = append(parts, r)
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d", parts[len(parts)-1])
		for i := len(parts) - 2; i >= 0; i-- {
			fmt.Fprintf(&sb, "%09d", parts[i])
		}
		return sb.String()
	default:
		panic(fmt.Sprintf("bigint: unsupported base %d", base))
	}
}

// String returns the decimal representation of x.
func (x Uint) String() string { return x.Text(10) }
