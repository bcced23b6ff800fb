package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_putUint64(t *testing.T) {
	var buf [8]byte
	PutUINT64(buf[:], 0x1234567890abcdef)
	assert.Equal(t, byte(0x12), buf[0])
	assert.Equal(t, byte(0xef), buf[7])

	r := GetUINT64(buf[:])
	assert.Equal(t, uint64(0x1234567890abcdef), r)

	assert.Panics(t, func() { PutUINT64(buf[:4], 1) })
	assert.Panics(t, func() { GetUINT64(buf[:7]) })
}

func Test_getUint64Short(t *testing.T) {
	assert.Equal(t, uint64(0), GetUINT64Short(nil))
	assert.Equal(t, uint64(0x0a), GetUINT64Short([]byte{0x0a}))
	assert.Equal(t, uint64(0x1234), GetUINT64Short([]byte{0x12, 0x34}))

	var buf [9]byte
	assert.Panics(t, func() { GetUINT64Short(buf[:]) })
}
