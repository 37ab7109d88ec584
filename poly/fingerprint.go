package poly

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a stable blake3 digest of the canonical encoding of an
// analysis input (polynomial and optional modulus). It identifies a report
// independently of how the polynomial was constructed.
func Fingerprint(p *Poly, q *Modulus) (digest [32]byte) {

	h := blake3.New()

	var buf [8]byte

	writeUint := func(x uint64) {
		binary.LittleEndian.PutUint64(buf[:], x)
		h.Write(buf[:])
	}

	if p != nil {
		writeUint(uint64(p.Degree()))
		for _, c := range p.coeffs {
			if c.Sign() < 0 {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
			b := c.Bytes()
			writeUint(uint64(len(b)))
			h.Write(b)
		}
	}

	if q != nil {
		h.Write([]byte{1})
		writeUint(q.Value)
	} else {
		h.Write([]byte{0})
	}

	copy(digest[:], h.Sum(nil))

	return
}
