// Package service defines domain service contracts implemented by the
// infrastructure layer.
package service

import "time"

// Clock abstracts wall-clock time so rule evaluation and id stamping can be
// tested against a fixed instant.
type Clock interface {
	Now() time.Time
}

// Rand abstracts the random source behind the weather perturbation and the
// synthesized report series.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}
