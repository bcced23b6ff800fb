package bitwise

import (
	"github.com/benpop/lua-addrbit/address"
)

/*
Shift amounts are plain ints, widened to int64 before negation. Negating
math.MinInt64 gives itself back, which shift treats as out of range.

Sign conventions:
  Shift, LShift, Rotate, LRotate: positive amount moves bits left
  ARShift:                        positive amount moves bits right
*/

func shift(v address.Address, i int64) address.Address {
	if i < 0 {
		//shift right
		i = -i
		v = address.Trim(v)
		if i < 0 || i >= address.NBITS {
			return 0
		}
		return v >> uint(i)
	}
	if i >= address.NBITS {
		return 0
	}
	return address.Trim(v << uint(i))
}

//Shift moves v left by i, or right by -i when i is negative
func Shift(v address.Address, i int) address.Address {
	return shift(v, int64(i))
}

func LShift(v address.Address, n int) address.Address {
	return shift(v, int64(n))
}

func RShift(v address.Address, n int) address.Address {
	return shift(v, -int64(n))
}

//ARShift shifts right by i filling with copies of the sign bit,
//a negative i shifts left.
func ARShift(v address.Address, i int) address.Address {
	if i < 0 || !v.Negative() {
		return shift(v, -int64(i))
	}
	if i >= address.NBITS {
		return address.ALLONES
	}
	fill := ^(address.ALLONES >> uint(i))
	return address.Trim((v >> uint(i)) | fill)
}

func rotate(v address.Address, i int64) address.Address {
	//NBITS is a power of two, so masking is i mod NBITS even for negative i
	k := uint(i & (address.NBITS - 1))
	v = address.Trim(v)
	if k == 0 {
		return v
	}
	return address.Trim((v << k) | (v >> (address.NBITS - k)))
}

func Rotate(v address.Address, i int) address.Address {
	return rotate(v, int64(i))
}

func LRotate(v address.Address, i int) address.Address {
	return rotate(v, int64(i))
}

func RRotate(v address.Address, i int) address.Address {
	return rotate(v, -int64(i))
}
