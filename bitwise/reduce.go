package bitwise

import (
	"github.com/benpop/lua-addrbit/address"
)

//And needs at least one operand
func And(first address.Address, rest ...address.Address) address.Address {
	r := address.ALLONES & first
	for _, a := range rest {
		r &= a
	}
	return address.Trim(r)
}

func Or(operands ...address.Address) address.Address {
	var r address.Address
	for _, a := range operands {
		r |= a
	}
	return address.Trim(r)
}

func Xor(operands ...address.Address) address.Address {
	var r address.Address
	for _, a := range operands {
		r ^= a
	}
	return address.Trim(r)
}

func Not(a address.Address) address.Address {
	return address.Trim(^a)
}

//Test reports whether the AND of all operands has any bit set
func Test(first address.Address, rest ...address.Address) bool {
	return And(first, rest...) != 0
}
