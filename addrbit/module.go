package addrbit

import (
	"sort"

	"github.com/benpop/lua-addrbit/address"
	"github.com/benpop/lua-addrbit/internalerror"
	"github.com/benpop/lua-addrbit/metrics"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//Module is the entry point for a host environment. The engine is stateless,
//only Registry is shared, and it locks on its own, so a Module can serve
//concurrent calls.
type Module struct {
	//radix for textual operands, 0 infers it from the prefix
	Radix int
	//reject malformed text instead of reading it as zero
	Strict   bool
	Registry *address.Registry
	Logger   *zap.Logger
}

func New() *Module {
	return &Module{
		Registry: address.NewRegistry(),
		Logger:   zap.NewNop(),
	}
}

//WithRadix returns a copy of m sharing its registry
func (m *Module) WithRadix(radix int) *Module {
	c := *m
	c.Radix = radix
	return &c
}

func (m *Module) logger() *zap.Logger {
	if m.Logger == nil {
		return zap.NewNop()
	}
	return m.Logger
}

type Result struct {
	Address address.Address
	Bool    bool
	IsBool  bool
}

func (r Result) Value() interface{} {
	if r.IsBool {
		return r.Bool
	}
	return r.Address
}

func (r Result) String() string {
	if r.IsBool {
		if r.Bool {
			return "true"
		}
		return "false"
	}
	return r.Address.String()
}

func Names() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Module) Call(op string, args ...interface{}) (Result, error) {
	fn, ok := operations[op]
	if !ok {
		return Result{}, errors.Wrapf(internalerror.UnknownOperation, "%q", op)
	}
	c := &call{module: m, op: op, args: args}
	r, err := fn(c)

	metric := metrics.OperationMetric
	metrics.Record(op,
		metric.Calls.M(1),
		metric.Operands.M(c.operands),
		metric.ParseDegradations.M(c.degraded),
		metric.RegistrySize.M(int64(m.registry().Len())))
	if err != nil {
		metrics.Record(op, metric.Failures.M(1))
		m.logger().Debug("call failed", zap.String("op", op), zap.Error(err))
		return Result{}, err
	}
	return r, nil
}

//Resolve maps an Address back to the host value it was interned for
func (m *Module) Resolve(a address.Address) (interface{}, bool) {
	return m.registry().Lookup(a)
}

func (m *Module) registry() *address.Registry {
	if m.Registry == nil {
		panic("addrbit: Module without Registry, use New")
	}
	return m.Registry
}
