package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityLevel_Rank(t *testing.T) {
	assert.Greater(t, SeverityHigh.Rank(), SeverityMedium.Rank())
	assert.Greater(t, SeverityMedium.Rank(), SeverityLow.Rank())
	assert.Equal(t, 0, SeverityLevel("urgente").Rank())
}

func TestSeverityLevel_IsValid(t *testing.T) {
	assert.True(t, SeverityHigh.IsValid())
	assert.False(t, SeverityLevel("urgente").IsValid())
	assert.False(t, SeverityLevel("").IsValid())
}

func TestAlertType_Label(t *testing.T) {
	assert.Equal(t, "Helada", AlertFrost.Label())
	assert.Equal(t, "Lluvia Intensa", AlertHeavyRain.Label())
	assert.Equal(t, "Sequía", AlertDrought.Label())

	// Unknown types fall back to the raw value rather than an empty label.
	assert.Equal(t, "nevada", AlertType("nevada").Label())
}

func TestCropType_IsValid(t *testing.T) {
	for _, ct := range CropTypes() {
		assert.True(t, ct.IsValid(), ct.String())
	}
	assert.False(t, CropType("arroz").IsValid())
}

func TestLanguage_IsValid(t *testing.T) {
	assert.True(t, LanguageSpanish.IsValid())
	assert.True(t, LanguageQuechua.IsValid())
	assert.True(t, LanguageEnglish.IsValid())
	assert.False(t, Language("fr").IsValid())
}
