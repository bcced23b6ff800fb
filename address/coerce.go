package address

import (
	"math"

	"github.com/benpop/lua-addrbit/internalerror"
	"github.com/benpop/lua-addrbit/util"
	"github.com/pkg/errors"
)

const (
	twoTo64 = float64(1 << 63) * 2
	twoTo63 = float64(1 << 63)
)

/*
FromNumber narrows a host number to an Address. The fractional part is
truncated. Out of range inputs are lossy:
  NaN          -> 0
  >= 2^64      -> ALLONES
  [-2^63, 0)   -> two's complement of the truncated value
  < -2^63      -> 1 << 63
*/
func FromNumber(f float64) Address {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= twoTo64:
		return ALLONES
	case f >= 0:
		return Trim(Address(uint64(f)))
	case f >= -twoTo63:
		return Trim(Address(uint64(int64(f))))
	default:
		return Trim(SIGNBIT)
	}
}

func FromInt(n int64) Address {
	return Trim(Address(uint64(n)))
}

func FromUint(n uint64) Address {
	return Trim(Address(n))
}

//FromString parses s like C's strtoull: the longest valid prefix is used,
//an overflow saturates to ALLONES and text without digits yields 0.
func FromString(s string, radix int) Address {
	r := scan(s, radix)
	if !r.ok {
		return 0
	}
	return r.value()
}

//ParseString is the strict form of FromString: s must be a complete literal,
//surrounding whitespace aside, that fits in NBITS bits.
func ParseString(s string, radix int) (Address, error) {
	r := scan(s, radix)
	if !r.ok {
		return 0, errors.Wrapf(internalerror.InvalidInput, "parse %q in radix %d: no digits", s, radix)
	}
	if r.overflow {
		return 0, errors.Wrapf(internalerror.InvalidInput, "parse %q in radix %d: out of range", s, radix)
	}
	end := r.end
	for end < len(s) && isSpace(s[end]) {
		end++
	}
	if end != len(s) {
		return 0, errors.Wrapf(internalerror.InvalidInput, "parse %q in radix %d: trailing characters", s, radix)
	}
	return r.value(), nil
}

//FromBytes reads a big-endian value of at most 8 bytes
func FromBytes(vec []byte) (Address, error) {
	if len(vec) > NBITS/8 {
		return 0, errors.Wrapf(internalerror.InvalidInput, "%d bytes do not fit in an Address", len(vec))
	}
	return Trim(Address(util.GetUINT64Short(vec))), nil
}

func (a Address) AsBytes() (buf [NBITS / 8]byte) {
	util.PutUINT64(buf[:], uint64(a))
	return
}

type scanResult struct {
	n        uint64
	negative bool
	overflow bool
	ok       bool
	end      int
}

func (r scanResult) value() Address {
	if r.overflow {
		return ALLONES
	}
	if r.negative {
		return Trim(Address(-r.n))
	}
	return Trim(Address(r.n))
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

func scan(s string, radix int) (r scanResult) {
	if radix != 0 && (radix < 2 || radix > 36) {
		return
	}
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		r.negative = s[i] == '-'
		i++
	}
	//"0x" only counts as a prefix when a hex digit follows
	if (radix == 0 || radix == 16) && i+2 < len(s) && s[i] == '0' &&
		(s[i+1] == 'x' || s[i+1] == 'X') && digitValue(s[i+2]) < 16 {
		i += 2
		radix = 16
	} else if radix == 0 {
		if i < len(s) && s[i] == '0' {
			radix = 8
		} else {
			radix = 10
		}
	}

	base := uint64(radix)
	cutoff := math.MaxUint64 / base
	digits := 0
	for ; i < len(s); i++ {
		d := digitValue(s[i])
		if d >= radix {
			break
		}
		digits++
		if r.overflow {
			continue
		}
		if r.n > cutoff || r.n*base > math.MaxUint64-uint64(d) {
			r.overflow = true
			continue
		}
		r.n = r.n*base + uint64(d)
	}
	if digits == 0 {
		return scanResult{}
	}
	r.ok = true
	r.end = i
	return
}
