package varint

// Branch-per-byte reference decoders, kept deliberately simple so they can
// be verified by eye against the wire format definition. The production
// decoders must agree with them byte-for-byte on every input, valid or
// not, including the speculative output of the Limit variants.

// naiveOverflow is the reference decoder's consumed-length signal for a
// missing terminator: one past the hard cap.
const naiveOverflow = MaxLen + 1

// naiveDecode64 accumulates one byte per iteration. Adding (b-1) at group
// n cancels the continuation bit carried in at group n-1, so the running
// sum needs no masking; all arithmetic wraps modulo 2^64.
func naiveDecode64(p []byte) (uint64, int) {
	res := uint64(p[0])
	n := 0
	for p[n]&0x80 != 0 {
		n++
		if n == MaxLen {
			return res, naiveOverflow
		}
		res += (uint64(p[n]) - 1) << (uint(n) * 7)
	}
	return res, n + 1
}

// naiveDecode32 is naiveDecode64 with 32-bit wrapping accumulation and the
// five-byte payload cutoff: later bytes move the cursor, not the value.
func naiveDecode32(p []byte) (uint32, int) {
	res := uint32(p[0])
	n := 0
	for p[n]&0x80 != 0 {
		n++
		if n == MaxLen {
			return res, naiveOverflow
		}
		if n < maxLen32 {
			res += (uint32(p[n]) - 1) << (uint(n) * 7)
		}
	}
	return res, n + 1
}

// naiveDecode64Limit reproduces the limit contract, speculative output
// included. limit must be in 1..MaxLen.
func naiveDecode64Limit(p []byte, limit int) (uint64, int, error) {
	res := uint64(p[0])
	for n := 0; n < limit; n++ {
		if p[n]&0x80 == 0 {
			return res, n + 1, nil
		}
		if n+1 == MaxLen {
			return 0, 0, ErrOverflow
		}
		if n+1 < limit {
			res += (uint64(p[n+1]) - 1) << (uint(n+1) * 7)
		}
	}
	return res | ^uint64(0)<<(uint(limit)*7), 0, ErrLimit
}

func naiveDecode32Limit(p []byte, limit int) (uint32, int, error) {
	res := uint32(p[0])
	for n := 0; n < limit; n++ {
		if p[n]&0x80 == 0 {
			return res, n + 1, nil
		}
		if n+1 == MaxLen {
			return 0, 0, ErrOverflow
		}
		if n+1 < limit && n+1 < maxLen32 {
			res += (uint32(p[n+1]) - 1) << (uint(n+1) * 7)
		}
	}
	return res | ^uint32(0)<<(uint(limit)*7), 0, ErrLimit
}

// naiveAppend appends the canonical encoding of v. Test-side only; the
// production library has no encoder.
func naiveAppend(p []byte, v uint64) []byte {
	for v > 0x7f {
		p = append(p, byte(v)|0x80)
		v >>= 7
	}
	return append(p, byte(v))
}
