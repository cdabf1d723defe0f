package pipeline

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// Dependency-free ULID generator for job IDs: 48-bit millisecond
// timestamp plus 80 bits of randomness, Crockford Base32 encoded.

var (
	ulidMu  sync.Mutex
	lastTS  uint64
	lastSeq uint16
)

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

func generateULID() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()

	ts := uint64(time.Now().UnixMilli())
	if ts == lastTS {
		lastSeq++
	} else {
		lastTS = ts
		lastSeq = 0
	}

	var b [16]byte
	b[0] = byte(ts >> 40)
	b[1] = byte(ts >> 32)
	b[2] = byte(ts >> 24)
	b[3] = byte(ts >> 16)
	b[4] = byte(ts >> 8)
	b[5] = byte(ts)
	rand.Read(b[6:])
	// Sequence in bytes 6-7 keeps IDs unique within one millisecond.
	binary.BigEndian.PutUint16(b[6:8], lastSeq)

	var out [26]byte
	// Timestamp: 48 bits into 10 characters, zero-padded at the top.
	t := ts
	for i := 9; i >= 0; i-- {
		out[i] = crockford[t&31]
		t >>= 5
	}
	// Randomness: 80 bits into 16 characters.
	rb := b[6:16]
	for i := 0; i < 16; i++ {
		bit := i * 5
		idx := bit / 8
		v := uint16(rb[idx]) << 8
		if idx+1 < len(rb) {
			v |= uint16(rb[idx+1])
		}
		out[10+i] = crockford[(v>>(11-bit%8))&31]
	}
	return string(out[:])
}
