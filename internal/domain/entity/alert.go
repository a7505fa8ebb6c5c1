// Package entity contains the core business objects of the project.
package entity

import "time"

// AlertWeather carries the readings that triggered an alert, when known.
type AlertWeather struct {
	Temperature *float64 `json:"temperature,omitempty"`
	WindSpeed   *float64 `json:"windSpeed,omitempty"`
	Rainfall    *float64 `json:"rainfall,omitempty"`
}

// Alert is a climate hazard warning for the region. Alerts are immutable
// once published; the feed only ever adds or expires them.
type Alert struct {
	ID              string        `json:"id"`
	Type            AlertType     `json:"type"`
	Severity        SeverityLevel `json:"severity"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Recommendations []string      `json:"recommendations"`
	IsActive        bool          `json:"isActive"`
	CreatedAt       time.Time     `json:"createdAt"`
	ValidUntil      time.Time     `json:"validUntil"`
	AffectedAreas   []string      `json:"affectedAreas"`
	WeatherData     AlertWeather  `json:"weatherData"`
}
