// Package sampling implements the sampling of random floating point values,
// either from crypto/rand or from a deterministic keyed PRNG.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// RandFloat64 returns a random float between min and max, read from crypto/rand.
func RandFloat64(min, max float64) float64 {
	return readFloat64(rand.Reader, min, max)
}

// RandFloat64s returns n random floats between min and max, read from prng.
// Panics if reading from prng fails.
func RandFloat64s(prng PRNG, n int, min, max float64) (r []float64) {
	r = make([]float64, n)
	for i := range r {
		r[i] = readFloat64(prng, min, max)
	}
	return
}

func readFloat64(prng PRNG, min, max float64) float64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(fmt.Errorf("cannot read random float64: %w", err))
	}
	// 53 random bits give a uniform value in [0, 1)
	f := float64(binary.LittleEndian.Uint64(b)>>11) / (1 << 53)
	return min + f*(max-min)
}
