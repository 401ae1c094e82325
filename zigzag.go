package varint

// Zigzag transforms between signed values and the unsigned bit patterns the
// wire format carries. Small magnitudes of either sign map to small unsigned
// values, so they encode in few bytes. The decoder itself is sign-agnostic;
// apply Unzigzag to its result when the field is zigzag-encoded.

// Zigzag64 maps a signed value to its zigzag bit pattern.
func Zigzag64(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

// Unzigzag64 recovers a signed value from its zigzag bit pattern.
func Unzigzag64(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}

// Zigzag32 maps a signed value to its zigzag bit pattern.
func Zigzag32(v int32) uint32 {
	return uint32(v<<1) ^ uint32(v>>31)
}

// Unzigzag32 recovers a signed value from its zigzag bit pattern.
func Unzigzag32(v uint32) int32 {
	return int32(v>>1) ^ -int32(v&1)
}
