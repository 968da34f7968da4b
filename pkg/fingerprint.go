package pkg

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Fingerprint hashes the values of s in order. Equal fingerprints before and
// after a measurement mean the caller's sequence was left untouched.
func Fingerprint(s []int) uint64 {
	buf := make([]byte, 0, 8*len(s))
	for _, v := range s {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
	}
	return xxh3.Hash(buf)
}
