package minimize

import (
	"math/bits"
	"strings"
)

// Implicant is a product term over n variables. Bits set in mask are
// cared about and must match value; cleared mask bits are don't-cares and
// are always zero in value. Variable j of n is bit n-j-1.
type Implicant struct {
	n      int
	value  uint
	mask   uint
	covers []uint // sorted minterm patterns
}

func newMinterm(n int, m uint) Implicant {
	return Implicant{n: n, value: m, mask: 1<<n - 1, covers: []uint{m}}
}

// Covers reports whether pattern m satisfies the implicant.
func (im Implicant) Covers(m uint) bool {
	return m&im.mask == im.value
}

// Minterms returns the patterns the implicant covers, ascending.
func (im Implicant) Minterms() []uint {
	return im.covers
}

// DontCares returns the number of don't-care positions.
func (im Implicant) DontCares() int {
	return im.n - bits.OnesCount(im.mask)
}

func (im Implicant) ones() int {
	return bits.OnesCount(im.value)
}

// String renders the classical notation, most significant variable
// first: "1-0" means first true, second don't-care, third false.
func (im Implicant) String() string {
	var b strings.Builder
	for j := 0; j < im.n; j++ {
		bit := uint(1) << (im.n - j - 1)
		switch {
		case im.mask&bit == 0:
			b.WriteByte('-')
		case im.value&bit != 0:
			b.WriteByte('1')
		default:
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Literals renders the implicant as a product over vars using the
// canonical AND and NOT tokens. It returns the number of literals too.
func (im Implicant) Literals(vars []string) (string, int) {
	var lits []string
	for j, name := range vars {
		bit := uint(1) << (len(vars) - j - 1)
		if im.mask&bit == 0 {
			continue
		}
		if im.value&bit != 0 {
			lits = append(lits, name)
		} else {
			lits = append(lits, "NOT "+name)
		}
	}
	return strings.Join(lits, " AND "), len(lits)
}

// merge combines two implicants that share a mask and differ in exactly
// one cared bit.
func merge(a, b Implicant) (Implicant, bool) {
	if a.mask != b.mask {
		return Implicant{}, false
	}
	diff := a.value ^ b.value
	if bits.OnesCount(diff) != 1 {
		return Implicant{}, false
	}
	return Implicant{
		n:      a.n,
		value:  a.value &^ diff,
		mask:   a.mask &^ diff,
		covers: union(a.covers, b.covers),
	}, true
}

// union merges two sorted, duplicate-free slices.
func union(a, b []uint) []uint {
	out := make([]uint, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
