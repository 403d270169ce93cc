package utils

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

const (
	BikeIDLength = 8
	bikeIDChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	rngOnce sync.Once
	rng     *rand.Rand
)

// The package-level x/exp/rand source starts from a fixed seed, so every
// process would hand out the same id sequence without this.
func generator() *rand.Rand {
	rngOnce.Do(func() {
		src := &rand.LockedSource{}
		src.Seed(uint64(time.Now().UnixNano()))
		rng = rand.New(src)
	})
	return rng
}

// GenerateBikeID returns a random alphanumeric bike identifier.
func GenerateBikeID() string {
	return RandomString(BikeIDLength)
}

func RandomString(length int) string {
	r := generator()
	b := make([]byte, length)
	for i := range b {
		b[i] = bikeIDChars[r.Intn(len(bikeIDChars))]
	}
	return string(b)
}
