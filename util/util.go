package util

func PutUINT64(buf []byte, n uint64) {
	if len(buf) != 8 {
		panic("in PutUINT64")
	}
	buf[0] = byte(n>>56) & 0xff
	buf[1] = byte(n>>48) & 0xff
	buf[2] = byte(n>>40) & 0xff
	buf[3] = byte(n>>32) & 0xff
	buf[4] = byte(n>>24) & 0xff
	buf[5] = byte(n>>16) & 0xff
	buf[6] = byte(n>>8) & 0xff
	buf[7] = byte(n & 0xff)
}

func GetUINT64(buf []byte) (n uint64) {
	if len(buf) != 8 {
		panic("in GetUINT64")
	}
	n = 0
	n |= uint64(buf[0]) << 56
	n |= uint64(buf[1]) << 48
	n |= uint64(buf[2]) << 40
	n |= uint64(buf[3]) << 32
	n |= uint64(buf[4]) << 24
	n |= uint64(buf[5]) << 16
	n |= uint64(buf[6]) << 8
	n |= uint64(buf[7])
	return
}

//GetUINT64Short reads a big-endian number of at most 8 bytes,
//missing high bytes are zero
func GetUINT64Short(buf []byte) uint64 {
	if len(buf) > 8 {
		panic("in GetUINT64Short")
	}
	var full [8]byte
	copy(full[8-len(buf):], buf)
	return GetUINT64(full[:])
}
