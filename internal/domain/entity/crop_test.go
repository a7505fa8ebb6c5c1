package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHectares_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Hectares
	}{
		{name: "number", raw: `2.5`, want: 2.5},
		{name: "quoted string", raw: `"2.5"`, want: 2.5},
		{name: "integer string", raw: `"3"`, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h Hectares
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &h))
			assert.InDelta(t, float64(tt.want), float64(h), 1e-9)
		})
	}
}

func TestHectares_UnmarshalJSON_RejectsGarbage(t *testing.T) {
	var h Hectares
	assert.Error(t, json.Unmarshal([]byte(`"dos"`), &h))
}

func TestHectares_MarshalsAsNumber(t *testing.T) {
	raw, err := json.Marshal(Hectares(2.5))
	require.NoError(t, err)
	assert.Equal(t, "2.5", string(raw))
}

func TestCrop_IsActive(t *testing.T) {
	now := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -30)
	future := now.AddDate(0, 0, 30)

	tests := []struct {
		name string
		crop Crop
		want bool
	}{
		{name: "no planting date", crop: Crop{}, want: false},
		{name: "planted and growing", crop: Crop{PlantingDate: &past}, want: true},
		{name: "planted with future harvest", crop: Crop{PlantingDate: &past, HarvestDate: &future}, want: true},
		{name: "already harvested", crop: Crop{PlantingDate: &past, HarvestDate: &past}, want: false},
		{name: "not yet planted", crop: Crop{PlantingDate: &future}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.crop.IsActive(now))
		})
	}
}

func TestCrop_DaysSincePlanting(t *testing.T) {
	now := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)
	planted := now.AddDate(0, 0, -50)
	crop := Crop{PlantingDate: &planted}

	days, ok := crop.DaysSincePlanting(now)
	require.True(t, ok)
	assert.Equal(t, 50, days)

	_, ok = (&Crop{}).DaysSincePlanting(now)
	assert.False(t, ok)
}
