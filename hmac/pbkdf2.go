package hmac

import (
	"encoding/binary"
	"hash"
)

// PBKDF2 stretches password/salt into outLen bytes using iters rounds of
// HMAC: for block index i the engine computes U1 = HMAC(salt ||
// be32(i)), then XORs in U2..Uiters, and concatenates T1||T2||... until
// outLen bytes are produced.
//
// iters == 0 is a fatal misuse — it panics rather than silently
// returning zero-strength output, since a caller requesting zero
// iterations almost certainly has a broken configuration and an
// offline signing environment has no way to log a warning and continue
// safely.
func PBKDF2(newHash func() hash.Hash, password, salt []byte, iters, outLen int) []byte {
	if iters == 0 {
		panic("hmac: PBKDF2 called with iters == 0")
	}

	mac := New(newHash, password)
	hashSize := mac.Size()

	numBlocks := (outLen + hashSize - 1) / hashSize
	out := make([]byte, 0, numBlocks*hashSize)

	block := make([]byte, len(salt)+4)
	copy(block, salt)

	for i := 1; i <= numBlocks; i++ {
		binary.BigEndian.PutUint32(block[len(salt):], uint32(i))

		u := mac.Sum(block)
		t := make([]byte, len(u))
		copy(t, u)

		for j := 2; j <= iters; j++ {
			u = mac.Sum(u)
			for k := range t {
				t[k] ^= u[k]
			}
		}

		out = append(out, t...)
	}

	mac.Zero()
	return out[:outLen]
}
