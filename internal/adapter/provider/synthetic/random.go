package synthetic

import (
	"crypto/rand"
	"math"
	"math/big"
)

// Rand is the randomness the generator draws from.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int

	// Float64 returns a value in [0, 1).
	Float64() float64
}

// SafeRand draws from crypto/rand. It needs no seeding and is safe for
// concurrent use.
type SafeRand struct{}

// NewSafeRand creates a SafeRand.
func NewSafeRand() *SafeRand {
	return &SafeRand{}
}

// Intn implements Rand. It returns 0 for n <= 0.
func (s *SafeRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	value, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(value.Int64())
}

// Float64 implements Rand.
func (s *SafeRand) Float64() float64 {
	max := new(big.Int).Lsh(big.NewInt(1), 53)
	value, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 0
	}
	return float64(value.Int64()) / math.Pow(2, 53)
}
