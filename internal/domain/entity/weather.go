// Package entity contains the core business objects of the project.
package entity

import "time"

// WeatherSnapshot is the single current reading for the farmer's location.
// No history is kept; each refresh overwrites the previous value.
type WeatherSnapshot struct {
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"windSpeed"`
	Rainfall    float64   `json:"rainfall"`
	Location    string    `json:"location"`
	LastUpdated time.Time `json:"lastUpdated"`
}
