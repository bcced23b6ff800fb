package address

import (
	"sync"
	"testing"

	"github.com/benpop/lua-addrbit/internalerror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIdentity uint64

func (f fixedIdentity) AddressBits() Address {
	return Address(f)
}

type object struct {
	name string
}

func TestFromIdentity(t *testing.T) {
	assert.Equal(t, Address(0xdead), FromIdentity(fixedIdentity(0xdead)))
}

func TestRegistryIntern(t *testing.T) {
	r := NewRegistry()
	a, b := &object{"a"}, &object{"b"}

	ha, err := r.Intern(a)
	require.NoError(t, err)
	hb, err := r.Intern(b)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)

	again, err := r.Intern(a)
	require.NoError(t, err)
	assert.Equal(t, ha, again)

	v, ok := r.Lookup(hb)
	assert.True(t, ok)
	assert.True(t, v == b)

	nilHandle, err := r.Intern(nil)
	require.NoError(t, err)
	assert.Equal(t, Address(0), nilHandle)
	v, ok = r.Lookup(0)
	assert.True(t, ok)
	assert.Nil(t, v)

	_, err = r.Intern([]int{1})
	assert.Equal(t, internalerror.InvalidInput, errors.Cause(err))
	assert.Equal(t, 2, r.Len())
}

func TestRegistryRelease(t *testing.T) {
	r := NewRegistry()
	handles := make([]Address, 0)
	for i := 0; i < 5; i++ {
		h, err := r.Intern(&object{})
		require.NoError(t, err)
		handles = append(handles, h)
	}

	assert.True(t, r.Release(handles[3]))
	assert.True(t, r.Release(handles[1]))
	assert.False(t, r.Release(handles[1]))
	_, ok := r.Lookup(handles[1])
	assert.False(t, ok)

	//smallest released handle first
	h, err := r.Intern(&object{})
	require.NoError(t, err)
	assert.Equal(t, handles[1], h)
	h, err = r.Intern(&object{})
	require.NoError(t, err)
	assert.Equal(t, handles[3], h)
	h, err = r.Intern(&object{})
	require.NoError(t, err)
	assert.Equal(t, handles[4]+1, h)
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()
	shared := &object{"shared"}
	var wg sync.WaitGroup
	results := make([]Address, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h, err := r.Intern(shared)
			assert.NoError(t, err)
			results[i] = h
		}(i)
	}
	wg.Wait()
	for _, h := range results {
		assert.Equal(t, results[0], h)
	}
	assert.Equal(t, 1, r.Len())
}
