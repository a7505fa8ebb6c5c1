// Package alertfeed provides the climate alert source. The upstream alert
// API is modeled as a synchronous, always-succeeding collaborator serving a
// canned regional feed.
package alertfeed

import (
	"context"
	"time"

	"agroalerta/internal/domain/entity"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/domain/service"
)

// staticFeed serves a fixed set of alerts stamped relative to startup time.
type staticFeed struct {
	alerts []*entity.Alert
}

// NewStaticFeed is the constructor for the canned alert feed.
func NewStaticFeed(clock service.Clock) repository.AlertRepository {
	return &staticFeed{alerts: regionalAlerts(clock.Now())}
}

// List retrieves every known alert.
func (f *staticFeed) List(_ context.Context) ([]*entity.Alert, error) {
	out := make([]*entity.Alert, len(f.alerts))
	copy(out, f.alerts)

	return out, nil
}

// FindByID retrieves a single alert.
func (f *staticFeed) FindByID(_ context.Context, id string) (*entity.Alert, error) {
	for _, alert := range f.alerts {
		if alert.ID == id {
			return alert, nil
		}
	}

	return nil, repository.ErrAlertNotFound
}

func regionalAlerts(now time.Time) []*entity.Alert {
	frostTemp := -2.0
	rainAmount := 30.0

	return []*entity.Alert{
		{
			ID:          "1",
			Type:        entity.AlertFrost,
			Severity:    entity.SeverityHigh,
			Title:       "Helada intensa",
			Description: "Se espera una helada severa esta noche.",
			Recommendations: []string{
				"Cubra sus cultivos",
				"Riegue temprano",
			},
			IsActive:      true,
			CreatedAt:     now,
			ValidUntil:    now.Add(24 * time.Hour),
			AffectedAreas: []string{"Huancavelica"},
			WeatherData:   entity.AlertWeather{Temperature: &frostTemp},
		},
		{
			ID:          "2",
			Type:        entity.AlertHeavyRain,
			Severity:    entity.SeverityMedium,
			Title:       "Lluvias fuertes",
			Description: "Lluvias intensas durante la tarde.",
			Recommendations: []string{
				"Revisar drenajes",
				"Evitar zonas bajas",
			},
			IsActive:      false,
			CreatedAt:     now.Add(-time.Hour),
			ValidUntil:    now.Add(48 * time.Hour),
			AffectedAreas: []string{"Acobamba"},
			WeatherData:   entity.AlertWeather{Rainfall: &rainAmount},
		},
	}
}
