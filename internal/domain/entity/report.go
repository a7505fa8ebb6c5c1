// Package entity contains the core business objects of the project.
package entity

import "time"

// TemperaturePoint is a single day in a temperature report series.
type TemperaturePoint struct {
	Date        time.Time `json:"date"`
	Temperature float64   `json:"temperature"`
	HasAlert    bool      `json:"hasAlert"`
}

// AlertsCount tallies alerts within a report range by severity.
type AlertsCount struct {
	High   int `json:"alto"`
	Medium int `json:"medio"`
	Low    int `json:"bajo"`
}

// Report summarizes temperatures and alert activity for one crop type over a
// date range. It is generated on demand and never persisted.
type Report struct {
	ID              string             `json:"id"`
	CropType        CropType           `json:"cropType"`
	RangeStart      time.Time          `json:"rangeStart"`
	RangeEnd        time.Time          `json:"rangeEnd"`
	TemperatureData []TemperaturePoint `json:"temperatureData"`
	AlertsCount     AlertsCount        `json:"alertsCount"`
}
