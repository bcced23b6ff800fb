package addrbit

import (
	"github.com/benpop/lua-addrbit/address"
	"github.com/benpop/lua-addrbit/bitwise"
	"github.com/benpop/lua-addrbit/field"
	"github.com/benpop/lua-addrbit/internalerror"
	"github.com/pkg/errors"
)

type operation func(c *call) (Result, error)

var operations = map[string]operation{
	"band":    opAnd,
	"bor":     opFold(bitwise.Or),
	"bxor":    opFold(bitwise.Xor),
	"bnot":    opNot,
	"btest":   opTest,
	"lshift":  opShift(bitwise.LShift),
	"rshift":  opShift(bitwise.RShift),
	"arshift": opShift(bitwise.ARShift),
	"lrotate": opShift(bitwise.LRotate),
	"rrotate": opShift(bitwise.RRotate),
	"extract": opExtract,
	"replace": opReplace,
}

//call holds the arguments of one invocation, argument positions start at 1
type call struct {
	module   *Module
	op       string
	args     []interface{}
	operands int64
	degraded int64
}

func (c *call) argError(pos int, err error) error {
	return errors.Wrapf(err, "argument #%d to '%s'", pos, c.op)
}

func (c *call) addr(pos int) (address.Address, error) {
	if pos > len(c.args) {
		return 0, c.argError(pos, errors.Wrap(internalerror.BadArgument, "value expected"))
	}
	a, degraded, err := c.module.coerce(c.args[pos-1])
	if err != nil {
		return 0, c.argError(pos, err)
	}
	c.operands++
	if degraded {
		c.degraded++
	}
	return a, nil
}

func (c *call) addrsFrom(pos int) ([]address.Address, error) {
	list := make([]address.Address, 0, len(c.args))
	for i := pos; i <= len(c.args); i++ {
		a, err := c.addr(i)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, nil
}

func (c *call) integer(pos int) (int, error) {
	if pos > len(c.args) {
		return 0, c.argError(pos, errors.Wrap(internalerror.BadArgument, "number expected, got no value"))
	}
	n, err := CheckInt(c.args[pos-1])
	if err != nil {
		return 0, c.argError(pos, err)
	}
	return n, nil
}

func (c *call) optInteger(pos int, def int) (int, error) {
	if pos > len(c.args) || c.args[pos-1] == nil {
		return def, nil
	}
	return c.integer(pos)
}

func addressResult(a address.Address) (Result, error) {
	return Result{Address: a}, nil
}

func opAnd(c *call) (Result, error) {
	list, err := c.addrsFrom(1)
	if err != nil {
		return Result{}, err
	}
	if len(list) == 0 {
		return Result{}, errors.Wrapf(internalerror.EmptyOperands, "'%s'", c.op)
	}
	return addressResult(bitwise.And(list[0], list[1:]...))
}

func opTest(c *call) (Result, error) {
	list, err := c.addrsFrom(1)
	if err != nil {
		return Result{}, err
	}
	if len(list) == 0 {
		return Result{}, errors.Wrapf(internalerror.EmptyOperands, "'%s'", c.op)
	}
	return Result{Bool: bitwise.Test(list[0], list[1:]...), IsBool: true}, nil
}

func opFold(fold func(...address.Address) address.Address) operation {
	return func(c *call) (Result, error) {
		list, err := c.addrsFrom(1)
		if err != nil {
			return Result{}, err
		}
		return addressResult(fold(list...))
	}
}

func opNot(c *call) (Result, error) {
	v, err := c.addr(1)
	if err != nil {
		return Result{}, err
	}
	return addressResult(bitwise.Not(v))
}

func opShift(shift func(address.Address, int) address.Address) operation {
	return func(c *call) (Result, error) {
		v, err := c.addr(1)
		if err != nil {
			return Result{}, err
		}
		n, err := c.integer(2)
		if err != nil {
			return Result{}, err
		}
		return addressResult(shift(v, n))
	}
}

//fieldArgs reads offset and the optional width starting at pos
func (c *call) fieldArgs(pos int) (offset, width int, err error) {
	if offset, err = c.integer(pos); err != nil {
		return
	}
	width, err = c.optInteger(pos+1, field.DefaultWidth)
	return
}

func opExtract(c *call) (Result, error) {
	v, err := c.addr(1)
	if err != nil {
		return Result{}, err
	}
	offset, width, err := c.fieldArgs(2)
	if err != nil {
		return Result{}, err
	}
	r, err := field.Extract(v, offset, width)
	if err != nil {
		return Result{}, err
	}
	return addressResult(r)
}

func opReplace(c *call) (Result, error) {
	v, err := c.addr(1)
	if err != nil {
		return Result{}, err
	}
	x, err := c.addr(2)
	if err != nil {
		return Result{}, err
	}
	offset, width, err := c.fieldArgs(3)
	if err != nil {
		return Result{}, err
	}
	r, err := field.Replace(v, x, offset, width)
	if err != nil {
		return Result{}, err
	}
	return addressResult(r)
}
