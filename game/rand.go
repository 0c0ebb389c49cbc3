package game

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"
	"time"
)

// Rand is the only source of randomness the core uses. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source and the seed it used. A zero seed picks one
// from the clock, so callers should log the returned seed.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// LookaheadRand is a throwaway source derived from the state, for hypothetical
// steps that must not consume the real generator.
func LookaheadRand(s *State) *rand.Rand {
	h := fnv.New64a()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(uint32(s.Grid.Width))|(uint64(uint32(s.Grid.Height))<<32))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(s.Turn))
	_, _ = h.Write(buf[:])
	if len(s.Snake.Body) > 0 {
		head := s.Snake.Body[0]
		binary.LittleEndian.PutUint64(buf[:], (uint64(uint32(head.X))<<32)|uint64(uint32(head.Y)))
		_, _ = h.Write(buf[:])
	}

	seed := int64(h.Sum64())
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}
