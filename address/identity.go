package address

import (
	"reflect"
	"sync"

	"github.com/benpop/lua-addrbit/internalerror"
	"github.com/google/btree"
	"github.com/pkg/errors"
)

//Identity is implemented by host values that carry their own stable,
//reversible bit encoding.
type Identity interface {
	AddressBits() Address
}

func FromIdentity(id Identity) Address {
	return Trim(id.AddressBits())
}

type freeHandle Address

func (h freeHandle) Less(than btree.Item) bool {
	return h < than.(freeHandle)
}

/*
Registry hands out Addresses for opaque host values. The same value always
maps to the same Address until it is released, and the Address maps back to
the value. Address 0 stands for nil.
Released handles are reused, smallest first.
*/
type Registry struct {
	mu      sync.Mutex
	handles map[interface{}]Address
	values  map[Address]interface{}
	free    *btree.BTree
	next    Address
}

func NewRegistry() *Registry {
	return &Registry{
		handles: make(map[interface{}]Address),
		values:  make(map[Address]interface{}),
		free:    btree.New(8),
		next:    1,
	}
}

func (r *Registry) Intern(v interface{}) (Address, error) {
	if v == nil {
		return 0, nil
	}
	if !reflect.TypeOf(v).Comparable() {
		return 0, errors.Wrapf(internalerror.InvalidInput, "value of type %T has no identity", v)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.handles[v]; ok {
		return h, nil
	}

	var h Address
	if r.free.Len() > 0 {
		h = Address(r.free.DeleteMin().(freeHandle))
	} else {
		if r.next == 0 {
			return 0, errors.Wrap(internalerror.InvalidInput, "registry is exhausted")
		}
		h = r.next
		r.next = Trim(r.next + 1)
	}
	r.handles[v] = h
	r.values[h] = v
	return h, nil
}

func (r *Registry) Lookup(a Address) (interface{}, bool) {
	if a == 0 {
		return nil, true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[a]
	return v, ok
}

//Release forgets the value behind a, returns false if a was not in use
func (r *Registry) Release(a Address) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[a]
	if !ok {
		return false
	}
	delete(r.values, a)
	delete(r.handles, v)
	r.free.ReplaceOrInsert(freeHandle(a))
	return true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}
