package field

import (
	"fmt"

	"github.com/benpop/lua-addrbit/address"
	"github.com/benpop/lua-addrbit/internalerror"
	"github.com/pkg/errors"
)

const DefaultWidth = 1

/*
Field is a contiguous run of Width bits starting at bit Offset.
A 24 bit length stored above a 40 bit start is

	Field{Offset: 40, Width: 24}  Field{Offset: 0, Width: 40}
*/
type Field struct {
	Offset int
	Width  int
}

func New(offset, width int) (Field, error) {
	if err := Check(offset, width); err != nil {
		return Field{}, err
	}
	return Field{Offset: offset, Width: width}, nil
}

//Check validates a field. The error text is exactly the message of the
//matching internalerror sentinel.
func Check(offset, width int) error {
	if offset < 0 {
		return errors.WithStack(internalerror.FieldNegative)
	}
	if width <= 0 {
		return errors.WithStack(internalerror.WidthNotPositive)
	}
	if width > address.NBITS || offset > address.NBITS-width {
		return errors.WithStack(internalerror.NonExistentBits)
	}
	return nil
}

func (f Field) Mask() address.Address {
	return address.Mask(f.Width) << uint(f.Offset)
}

func (f Field) String() string {
	return fmt.Sprintf("Field: offset %d, width %d", f.Offset, f.Width)
}

func (f Field) Extract(v address.Address) (address.Address, error) {
	return Extract(v, f.Offset, f.Width)
}

func (f Field) Replace(v, x address.Address) (address.Address, error) {
	return Replace(v, x, f.Offset, f.Width)
}

func Extract(v address.Address, offset, width int) (address.Address, error) {
	if err := Check(offset, width); err != nil {
		return 0, err
	}
	return (address.Trim(v) >> uint(offset)) & address.Mask(width), nil
}

//Replace returns v with the field overwritten by the low width bits of x,
//higher bits of x are dropped.
func Replace(v, x address.Address, offset, width int) (address.Address, error) {
	if err := Check(offset, width); err != nil {
		return 0, err
	}
	m := address.Mask(width)
	x &= m
	r := (v &^ (m << uint(offset))) | (x << uint(offset))
	return address.Trim(r), nil
}
