package varint

import "errors"

// Decoding errors returned by Decode32, Decode64 and their Limit variants.
var (
	// ErrOverflow is returned when no terminating byte is found within
	// MaxLen bytes. The encoding is malformed; the value result is zero.
	ErrOverflow = errors.New("varint: no terminator within 10 bytes")

	// ErrLimit is returned when no terminating byte is found within the
	// caller's byte limit. The input may still be a well-formed varint
	// that simply needs more bytes than the caller allowed. The value
	// result carries the speculative mix described in the package
	// documentation and must not be treated as a decoded value.
	ErrLimit = errors.New("varint: byte limit exceeded")
)

// MaxLen is the maximum number of bytes in an encoded varint. Ten 7-bit
// groups are enough to cover 64 bits, so a well-formed encoding always
// terminates by the tenth byte.
const MaxLen = 10

// maxLen32 is the number of leading bytes whose payload contributes to a
// 32-bit value. Later bytes are scanned for the terminator only.
const maxLen32 = 5

// Decode64 decodes a base-128 varint from the start of p into a 64-bit
// value, returning the value and the number of bytes consumed.
//
// p must hold the complete encoding: either a terminating byte (high bit
// clear) within its first MaxLen bytes, or at least MaxLen readable bytes.
// Decode64 fails with ErrOverflow if the tenth byte still carries a
// continuation bit; it never reads past the tenth byte.
func Decode64(p []byte) (uint64, int, error) {
	// One-byte values dominate real streams.
	if b := p[0]; b < 0x80 {
		return uint64(b), 1, nil
	}
	return decode64(p, MaxLen)
}

// Decode64Limit is Decode64 restricted to a caller-supplied byte limit in
// the range 1..MaxLen (out-of-range limits are clamped). If the encoding
// terminates within limit bytes the result is identical to Decode64;
// otherwise it fails with ErrLimit after reading exactly limit bytes.
//
// p must hold min(limit, MaxLen) readable bytes, or the complete encoding
// if it is shorter. The limit bounds this call only; it does not make the
// encoding invalid, and a caller that obtains more bytes may retry with a
// larger limit.
func Decode64Limit(p []byte, limit int) (uint64, int, error) {
	if limit >= MaxLen {
		if b := p[0]; b < 0x80 {
			return uint64(b), 1, nil
		}
		return decode64(p, MaxLen)
	}
	if limit < 1 {
		limit = 1
	}
	return decode64(p, limit)
}

func decode64(p []byte, limit int) (uint64, int, error) {
	var res uint64
	for i := 0; i < limit; i++ {
		b := uint64(p[i])
		res |= b << (uint(i) * 7)
		if b < 0x80 {
			return res, i + 1, nil
		}
		// Cancel the continuation bit so the next byte's payload
		// lands on clear bits. At i == 9 the shift wraps modulo 2^64,
		// which is exactly the arithmetic the wire format pins.
		res -= 0x80 << (uint(i) * 7)
	}
	if limit < MaxLen {
		// Speculative output: the mix so far with every bit at or
		// above position 7*limit forced on. Bit-exact compatibility
		// artifact, meaningless to callers.
		return res | ^uint64(0)<<(uint(limit)*7), 0, ErrLimit
	}
	return 0, 0, ErrOverflow
}

// Decode32 decodes a base-128 varint from the start of p into a 32-bit
// value, returning the value and the number of bytes consumed.
//
// Termination, the MaxLen hard cap and the caller contract on p are the
// same as Decode64. Only the first five bytes contribute payload, with
// wrapping 32-bit arithmetic; any further bytes before the terminator
// advance the cursor without touching the value. A canonically encoded
// 32-bit value never exceeds five bytes, but 64-bit-shaped encodings of
// small values remain decodable.
func Decode32(p []byte) (uint32, int, error) {
	if b := p[0]; b < 0x80 {
		return uint32(b), 1, nil
	}
	return decode32(p, MaxLen)
}

// Decode32Limit is Decode32 restricted to a caller-supplied byte limit,
// with the same limit semantics as Decode64Limit. The speculative value on
// ErrLimit uses 32-bit shifts, so limits of five or more leave the partial
// mix unmasked.
func Decode32Limit(p []byte, limit int) (uint32, int, error) {
	if limit >= MaxLen {
		if b := p[0]; b < 0x80 {
			return uint32(b), 1, nil
		}
		return decode32(p, MaxLen)
	}
	if limit < 1 {
		limit = 1
	}
	return decode32(p, limit)
}

func decode32(p []byte, limit int) (uint32, int, error) {
	var res uint32
	for i := 0; i < maxLen32 && i < limit; i++ {
		b := uint32(p[i])
		res |= b << (uint(i) * 7)
		if b < 0x80 {
			return res, i + 1, nil
		}
		res -= 0x80 << (uint(i) * 7)
	}
	// Payload width is exhausted; keep scanning for the terminator.
	for i := maxLen32; i < limit; i++ {
		if p[i] < 0x80 {
			return res, i + 1, nil
		}
	}
	if limit < MaxLen {
		return res | ^uint32(0)<<(uint(limit)*7), 0, ErrLimit
	}
	return 0, 0, ErrOverflow
}
