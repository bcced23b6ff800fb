package address

import (
	"fmt"
)

//the width of an Address is fixed at build time

const (
	NBITS = 64

	ALLONES = Address(1<<NBITS - 1)

	SIGNBIT = Address(1 << (NBITS - 1))
)

type Address uint64

func AddressFromU64(val uint64) Address {
	return Trim(Address(val))
}

func AddressFromU32(val uint32) Address {
	return Address(uint64(val))
}

func (a Address) AsU64() uint64 {
	return uint64(a)
}

func (a Address) String() string {
	return fmt.Sprintf("0x%x", uint64(a))
}

//Trim clears every bit at or above NBITS
func Trim(a Address) Address {
	return a & ALLONES
}

//panic
//Mask builds an Address with the low n bits set, 1 <= n <= NBITS
func Mask(n int) Address {
	if n < 1 || n > NBITS {
		panic(fmt.Sprintf("Address: mask of %d bits", n))
	}
	return ALLONES >> uint(NBITS-n)
}

func (a Address) Negative() bool {
	return a&SIGNBIT != 0
}
