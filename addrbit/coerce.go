package addrbit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/benpop/lua-addrbit/address"
	"github.com/benpop/lua-addrbit/internalerror"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//Coerce turns one host value into an Address. Numbers are narrowed, text is
//parsed with m.Radix, byte slices are big-endian, everything else is an
//opaque value that gets a handle from the registry.
func (m *Module) Coerce(v interface{}) (address.Address, error) {
	a, _, err := m.coerce(v)
	return a, err
}

func (m *Module) coerce(v interface{}) (a address.Address, degraded bool, err error) {
	switch x := v.(type) {
	case nil:
		return 0, false, nil
	case address.Address:
		return x, false, nil
	case address.Identity:
		return address.FromIdentity(x), false, nil
	case int:
		return address.FromInt(int64(x)), false, nil
	case int8:
		return address.FromInt(int64(x)), false, nil
	case int16:
		return address.FromInt(int64(x)), false, nil
	case int32:
		return address.FromInt(int64(x)), false, nil
	case int64:
		return address.FromInt(x), false, nil
	case uint:
		return address.FromUint(uint64(x)), false, nil
	case uint8:
		return address.FromUint(uint64(x)), false, nil
	case uint16:
		return address.FromUint(uint64(x)), false, nil
	case uint32:
		return address.FromUint(uint64(x)), false, nil
	case uint64:
		return address.FromUint(x), false, nil
	case uintptr:
		return address.FromUint(uint64(x)), false, nil
	case float32:
		return address.FromNumber(float64(x)), false, nil
	case float64:
		return address.FromNumber(x), false, nil
	case string:
		return m.coerceString(x)
	case []byte:
		a, err = address.FromBytes(x)
		return a, false, err
	}
	a, err = m.registry().Intern(v)
	return a, false, err
}

func (m *Module) coerceString(s string) (address.Address, bool, error) {
	a, err := address.ParseString(s, m.Radix)
	if err == nil {
		return a, false, nil
	}
	if m.Strict {
		return 0, false, err
	}
	m.logger().Debug("lenient parse", zap.String("text", s), zap.Int("radix", m.Radix), zap.Error(err))
	return address.FromString(s, m.Radix), true, nil
}

//CheckInt reads a plain integer amount. Fractions are truncated toward
//zero, text must be an integer literal.
func CheckInt(v interface{}) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		return fromInt64(x)
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint:
		return fromUint64(uint64(x))
	case uint32:
		return fromUint64(uint64(x))
	case uint64:
		return fromUint64(x)
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 0, 64)
		if err != nil {
			return 0, errors.Wrapf(internalerror.BadArgument, "number expected, got %q", x)
		}
		return fromInt64(n)
	}
	return 0, errors.Wrapf(internalerror.BadArgument, "number expected, got %s", typeName(v))
}

func fromInt64(n int64) (int, error) {
	if int64(int(n)) != n {
		return 0, errors.Wrapf(internalerror.BadArgument, "%d does not fit in an int", n)
	}
	return int(n), nil
}

func fromUint64(n uint64) (int, error) {
	if n > math.MaxInt64 {
		return 0, errors.Wrapf(internalerror.BadArgument, "%d does not fit in an int", n)
	}
	return fromInt64(int64(n))
}

func fromFloat(f float64) (int, error) {
	if math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, errors.Wrapf(internalerror.BadArgument, "%v does not fit in an int", f)
	}
	return fromInt64(int64(f))
}

func typeName(v interface{}) string {
	if v == nil {
		return "no value"
	}
	return fmt.Sprintf("%T", v)
}
