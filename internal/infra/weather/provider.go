// Package weather provides the mocked single-location weather reading with a
// bounded random drift on each refresh.
package weather

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"agroalerta/config"
	"agroalerta/internal/domain/entity"
	"agroalerta/internal/domain/service"

	"go.uber.org/fx"
)

// Provider holds the current snapshot and drives the periodic refresh.
// All access is serialized; Refresh is a no-op while another refresh holds
// the in-flight flag.
type Provider struct {
	mu         sync.Mutex
	snapshot   *entity.WeatherSnapshot
	refreshing bool

	cfg    config.WeatherConfig
	clock  service.Clock
	rand   service.Rand
	logger *slog.Logger

	stop chan struct{}
	done chan struct{}
}

// ProviderParams holds dependencies for the Provider, injected by Fx.
type ProviderParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Clock  service.Clock
	Rand   service.Rand
	Logger *slog.Logger
}

// NewProvider constructs the provider and registers its lifecycle hooks: the
// initial load plus the refresh ticker on start, ticker teardown on stop.
// A pending tick must never fire into a stopped application.
func NewProvider(params ProviderParams) *Provider {
	p := &Provider{
		cfg:    params.Config.Weather,
		clock:  params.Clock,
		rand:   params.Rand,
		logger: params.Logger,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			p.load()
			go p.run()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(p.stop)
			select {
			case <-p.done:
			case <-ctx.Done():
			}

			return nil
		},
	})

	return p
}

// NewManualProvider constructs a provider without the background ticker, for
// callers that drive refreshes themselves.
func NewManualProvider(cfg config.WeatherConfig, clk service.Clock, rnd service.Rand, logger *slog.Logger) *Provider {
	p := &Provider{
		cfg:    cfg,
		clock:  clk,
		rand:   rnd,
		logger: logger,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	p.load()

	return p
}

// Current returns the latest snapshot, or nil while nothing has loaded yet.
func (p *Provider) Current() *entity.WeatherSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.snapshot == nil {
		return nil
	}

	snap := *p.snapshot

	return &snap
}

// Refresh perturbs each reading by a bounded random delta and stamps the
// update time. It is a no-op when a refresh is already in flight.
func (p *Provider) Refresh() {
	p.mu.Lock()
	if p.refreshing || p.snapshot == nil {
		p.mu.Unlock()

		return
	}
	p.refreshing = true

	next := *p.snapshot
	next.Temperature += (p.rand.Float64() - 0.5) * 2
	next.Humidity = clamp(next.Humidity+(p.rand.Float64()-0.5)*10, 0, 100)
	next.WindSpeed = max(0, next.WindSpeed+(p.rand.Float64()-0.5)*5)
	next.Rainfall = max(0, next.Rainfall+(p.rand.Float64()-0.5)*1)
	next.LastUpdated = p.clock.Now()

	p.snapshot = &next
	p.refreshing = false
	p.mu.Unlock()

	p.logger.Debug("Weather refreshed",
		slog.Float64("temperature", next.Temperature),
		slog.Float64("humidity", next.Humidity))
}

func (p *Provider) load() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.snapshot = &entity.WeatherSnapshot{
		Temperature: p.cfg.Temperature,
		Humidity:    p.cfg.Humidity,
		WindSpeed:   p.cfg.WindSpeed,
		Rainfall:    p.cfg.Rainfall,
		Location:    p.cfg.Location,
		LastUpdated: p.clock.Now(),
	}
}

func (p *Provider) run() {
	defer close(p.done)

	ticker := time.NewTicker(p.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.Refresh()
		case <-p.stop:
			return
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
