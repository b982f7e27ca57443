package bigint

import "math/bits"

// nat is a little-endian magnitude of 32-bit limbs with no leading zero limbs.
type nat []uint32

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

func (z nat) clone() nat {
	if len(z) == 0 {
		return nil
	}
	c := make(nat, len(z))
	copy(c, z)
	return c
}

func natFromUint64(v uint64) nat {
	return nat{uint32(v), uint32(v >> 32)}.norm()
}

func natFromBytes(b []byte) nat {
	z := make(nat, (len(b)+3)/4)
	for i := 0; i < len(b); i++ {
		z[i/4] |= uint32(b[len(b)-1-i]) << (8 * uint(i%4))
	}
	return z.norm()
}

// fillBytes writes x big-endian into exactly size bytes, dropping higher bytes.
func (x nat) fillBytes(size int) []byte {
	out := make([]byte, size)
	for i := 0; i < size; i++ {
		limb := i / 4
		if limb >= len(x) {
			break
		}
		out[size-1-i] = byte(x[limb] >> (8 * uint(i%4)))
	}
	return out
}

func (x nat) bitLen() int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*32 + bits.Len32(x[len(x)-1])
}

func (x nat) bit(i int) uint {
	limb := i / 32
	if i < 0 || limb >= len(x) {
		return 0
	}
	return uint(x[limb]>>(uint(i)%32)) & 1
}

// truncate returns a copy of x reduced modulo 2^width.
func (x nat) truncate(width uint) nat {
	limbs := int((width + 31) / 32)
	if len(x) < limbs {
		return x.clone()
	}
	z := make(nat, limbs)
	copy(z, x[:limbs])
	if r := width % 32; r != 0 && limbs > 0 {
		z[limbs-1] &= 1<<r - 1
	}
	return z.norm()
}

func cmpNat(x, y nat) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func addNat(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)
	var carry uint32
	for i := range x {
		var yi uint32
		if i < len(y) {
			yi = y[i]
		}
		z[i], carry = bits.Add32(x[i], yi, carry)
	}
	z[len(x)] = carry
	return z.norm()
}

// subNat returns x - y and requires x >= y.
func subNat(x, y nat) nat {
	z := make(nat, len(x))
	var borrow uint32
	for i := range x {
		var yi uint32
		if i < len(y) {
			yi = y[i]
		}
		z[i], borrow = bits.Sub32(x[i], yi, borrow)
	}
	if borrow != 0 {
		panic("bigint: negative magnitude")
	}
	return z.norm()
}

// mulNat is schoolbook multiplication.
func mulNat(x, y nat) nat {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make(nat, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y {
			t := uint64(xi)*uint64(yj) + uint64(z[i+j]) + carry
			z[i+j] = uint32(t)
			carry = t >> 32
		}
		z[i+len(y)] = uint32(carry)
	}
	return z.norm()
}

func mulAddWord(x nat, m, a uint32) nat {
	z := make(nat, len(x)+1)
	carry := uint64(a)
	for i, xi := range x {
		t := uint64(xi)*uint64(m) + carry
		z[i] = uint32(t)
		carry = t >> 32
	}
	z[len(x)] = uint32(carry)
	return z.norm()
}

func divWord(x nat, d uint32) (nat, uint32) {
	if d == 0 {
		panic("bigint: division by zero")
	}
	q := make(nat, len(x))
	var r uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := r<<32 | uint64(x[i])
		q[i] = uint32(cur / uint64(d))
		r = cur % uint64(d)
	}
	return q.norm(), uint32(r)
}

// divModNat implements Knuth's algorithm D on 32-bit digits.
func divModNat(u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic("bigint: division by zero")
	}
	if cmpNat(u, v) < 0 {
		return nil, u.clone()
	}
	if len(v) == 1 {
		qw, rw := divWord(u, v[0])
		return qw, natFromUint64(uint64(rw))
	}

	m, n := len(u), len(v)
	s := uint(bits.LeadingZeros32(v[n-1]))

	vn := make(nat, n)
	for i := n - 1; i > 0; i-- {
		vn[i] = v[i]<<s | v[i-1]>>(32-s)
	}
	vn[0] = v[0] << s

	un := make(nat, m+1)
	un[m] = u[m-1] >> (32 - s)
	for i := m - 1; i > 0; i-- {
		un[i] = u[i]<<s | u[i-1]>>(32-s)
	}
	un[0] = u[0] << s

	const b = uint64(1) << 32
	q = make(nat, m-n+1)
	for j := m - n; j >= 0; j-- {
		num := uint64(un[j+n])<<32 | uint64(un[j+n-1])
		qhat := num / uint64(vn[n-1])
		rhat := num % uint64(vn[n-1])
		for qhat >= b || qhat*uint64(vn[n-2]) > (rhat<<32|uint64(un[j+n-2])) {
			qhat--
			rhat += uint64(vn[n-1])
			if rhat >= b {
				break
			}
		}

		var k int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t := int64(un[i+j]) - k - int64(p&0xffffffff)
			un[i+j] = uint32(t)
			k = int64(p>>32) - (t >> 32)
		}
		t := int64(un[j+n]) - k
		un[j+n] = uint32(t)

		q[j] = uint32(qhat)
		if t < 0 {
			q[j]--
			var c uint64
			for i := 0; i < n; i++ {
				t2 := uint64(un[i+j]) + uint64(vn[i]) + c
				un[i+j] = uint32(t2)
				c = t2 >> 32
			}
			un[j+n] += uint32(c)
		}
	}

	r = make(nat, n)
	for i := 0; i < n; i++ {
		r[i] = un[i]>>s | un[i+1]<<(32-s)
	}
	return q.norm(), r.norm()
}

func shlNat(x nat, s uint) nat {
	if len(x) == 0 {
		return nil
	}
	limbs, sh := int(s/32), s%32
	z := make(nat, len(x)+limbs+1)
	for i := len(x) - 1; i >= 0; i-- {
		z[i+limbs+1] |= x[i] >> (32 - sh)
		z[i+limbs] = x[i] << sh
	}
	return z.norm()
}

func shrNat(x nat, s uint) nat {
	limbs, sh := int(s/32), s%32
	if limbs >= len(x) {
		return nil
	}
	z := make(nat, len(x)-limbs)
	for i := range z {
		z[i] = x[i+limbs] >> sh
		if i+limbs+1 < len(x) {
			z[i] |= x[i+limbs+1] << (32 - sh)
		}
	}
	return z.norm()
}

func modNat(x, m nat) nat {
	_, r := divModNat(x, m)
	return r
}
