// Package varint decodes base-128 variable-length integers from binary
// wire data.
//
// A varint stores an integer in little-endian 7-bit groups, one group per
// byte, using each byte's high bit as a continuation marker. The decoders
// here sit on the hot path of message deserialization: they run in
// straight-line arithmetic over at most ten bytes, allocate nothing, hold
// no state, and are safe to call concurrently on shared read-only buffers.
//
// # Decoding
//
// Decode a value from the front of a buffer and advance a cursor:
//
//	v, n, err := varint.Decode64(buf[pos:])
//	if err != nil {
//	    return err
//	}
//	pos += n
//
// Decode32 applies the same scan with 32-bit accumulation: only the first
// five bytes contribute payload, and any further bytes before the
// terminator are skipped without touching the value.
//
// # Caller contract
//
// The decoders take no buffer length and perform no end-of-input check of
// their own. The caller guarantees that the encoding's bytes, up to MaxLen
// (or up to the limit passed to the Limit variants), are readable at the
// start of the slice. Wire formats that frame their messages get this
// guarantee from the framing layer.
//
// # Byte limits
//
// Decode64Limit and Decode32Limit bound a single call to a caller-chosen
// number of bytes, independent of the format's own ten-byte cap:
//
//	v, n, err := varint.Decode64Limit(buf[pos:], remaining)
//	if errors.Is(err, varint.ErrLimit) {
//	    // well-formed so far, but needs more than `remaining` bytes
//	}
//
// A limit failure is a local constraint, not a format violation: the caller
// decides whether to retry with more bytes or reject the message. On
// ErrLimit the value result is still written, with every bit at or above
// position 7*limit forced on. That output reproduces the internal
// arithmetic of the branchless mix for bit-exact compatibility and carries
// no meaning; callers must not use it.
//
// # Failure
//
// An encoding whose tenth byte still carries a continuation bit cannot
// represent a 64-bit value and fails with ErrOverflow regardless of any
// limit. On any failure the returned byte count is zero and the cursor
// must not be advanced.
//
// # Signed values
//
// Decoded values are opaque bit patterns; signedness is the caller's
// concern. For fields that zigzag-encode signed integers, Unzigzag32 and
// Unzigzag64 recover the signed value:
//
//	v, n, err := varint.Decode64(buf[pos:])
//	delta := varint.Unzigzag64(v)
package varint
