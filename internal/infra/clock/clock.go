// Package clock provides the system implementations of the time and
// randomness services.
package clock

import (
	"math/rand"
	"time"

	"agroalerta/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a Clock backed by the wall clock.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type systemRand struct {
	rng *rand.Rand
}

// NewSystemRand returns a Rand seeded from the current time.
func NewSystemRand() service.Rand {
	return &systemRand{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *systemRand) Float64() float64 {
	return r.rng.Float64()
}
