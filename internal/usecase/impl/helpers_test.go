package impl

import (
	"io"
	"log/slog"
	"time"
)

// fixedClock pins Now to a single instant so rule evaluation and id stamping
// are deterministic.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

// fixedRand always returns the same value.
type fixedRand struct {
	v float64
}

func (r fixedRand) Float64() float64 {
	return r.v
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testNow() time.Time {
	return time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)
}
