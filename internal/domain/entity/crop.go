// Package entity contains the core business objects of the project.
package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Hectares is a cultivated area. Historical snapshots sometimes stored the
// value as a quoted string, so decoding accepts both forms; encoding always
// writes a number.
type Hectares float64

// UnmarshalJSON accepts both a JSON number and a numeric string.
func (h *Hectares) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "failed to decode area string")
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid area %q", s)
		}
		*h = Hectares(v)

		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "failed to decode area")
	}
	*h = Hectares(v)

	return nil
}

// Crop is a registered plot under cultivation.
type Crop struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Type         CropType   `json:"type"`
	Area         Hectares   `json:"area"`
	Location     string     `json:"location"`
	PlantingDate *time.Time `json:"plantingDate,omitempty"`
	HarvestDate  *time.Time `json:"harvestDate,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// IsActive reports whether the crop is currently growing: planted on or
// before now and not yet past its harvest date (an unset harvest date keeps
// the crop active indefinitely).
func (c *Crop) IsActive(now time.Time) bool {
	if c.PlantingDate == nil || c.PlantingDate.After(now) {
		return false
	}
	if c.HarvestDate != nil && !c.HarvestDate.After(now) {
		return false
	}

	return true
}

// DaysSincePlanting returns whole days elapsed since the planting date.
// The boolean is false when no planting date is set.
func (c *Crop) DaysSincePlanting(now time.Time) (int, bool) {
	if c.PlantingDate == nil {
		return 0, false
	}

	return int(now.Sub(*c.PlantingDate).Hours() / 24), true
}

// CropStats are the derived aggregates shown on the dashboard summary.
type CropStats struct {
	Total     int              `json:"total"`
	Active    int              `json:"active"`
	TotalArea Hectares         `json:"totalArea"`
	ByType    map[CropType]int `json:"byType"`
}
