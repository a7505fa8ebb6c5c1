package weather

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"agroalerta/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClock struct{ now time.Time }

func (c *stubClock) Now() time.Time { return c.now }

type stubRand struct{ v float64 }

func (r stubRand) Float64() float64 { return r.v }

func testProvider(t *testing.T, cfg config.WeatherConfig, clk *stubClock, rnd stubRand) *Provider {
	t.Helper()

	return NewManualProvider(cfg, clk, rnd, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func andeanConfig() config.WeatherConfig {
	return config.WeatherConfig{
		Location:    "Huancavelica Centro",
		Temperature: 18.5,
		Humidity:    65,
		WindSpeed:   12,
		Rainfall:    3.2,
	}
}

func TestProvider_LoadsConfiguredSnapshot(t *testing.T) {
	clk := &stubClock{now: time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)}
	provider := testProvider(t, andeanConfig(), clk, stubRand{v: 0.5})

	snapshot := provider.Current()
	require.NotNil(t, snapshot)
	assert.Equal(t, "Huancavelica Centro", snapshot.Location)
	assert.InDelta(t, 18.5, snapshot.Temperature, 1e-9)
	assert.Equal(t, clk.now, snapshot.LastUpdated)
}

func TestProvider_CurrentReturnsCopy(t *testing.T) {
	clk := &stubClock{now: time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)}
	provider := testProvider(t, andeanConfig(), clk, stubRand{v: 0.5})

	snapshot := provider.Current()
	snapshot.Temperature = -100

	assert.InDelta(t, 18.5, provider.Current().Temperature, 1e-9)
}

func TestProvider_RefreshDriftsAndStamps(t *testing.T) {
	clk := &stubClock{now: time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)}
	provider := testProvider(t, andeanConfig(), clk, stubRand{v: 0})

	clk.now = clk.now.Add(30 * time.Minute)
	provider.Refresh()

	snapshot := provider.Current()
	assert.InDelta(t, 17.5, snapshot.Temperature, 1e-9)
	assert.InDelta(t, 60, snapshot.Humidity, 1e-9)
	assert.InDelta(t, 9.5, snapshot.WindSpeed, 1e-9)
	assert.InDelta(t, 2.7, snapshot.Rainfall, 1e-9)
	assert.Equal(t, clk.now, snapshot.LastUpdated)
}

func TestProvider_RefreshClampsHumidity(t *testing.T) {
	cfg := andeanConfig()
	cfg.Humidity = 98
	clk := &stubClock{now: time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)}
	provider := testProvider(t, cfg, clk, stubRand{v: 1})

	provider.Refresh()

	assert.InDelta(t, 100, provider.Current().Humidity, 1e-9)
}

func TestProvider_RefreshNeverGoesNegative(t *testing.T) {
	cfg := andeanConfig()
	cfg.WindSpeed = 1
	cfg.Rainfall = 0.1
	clk := &stubClock{now: time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)}
	provider := testProvider(t, cfg, clk, stubRand{v: 0})

	provider.Refresh()

	snapshot := provider.Current()
	assert.InDelta(t, 0, snapshot.WindSpeed, 1e-9)
	assert.InDelta(t, 0, snapshot.Rainfall, 1e-9)
}

func TestProvider_RefreshWithoutSnapshotIsNoop(t *testing.T) {
	provider := &Provider{}

	provider.Refresh()

	assert.Nil(t, provider.Current())
}
