// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// SeverityLevel grades climate alerts and recommendations.
// The wire values are the Spanish labels the platform has always persisted.
type SeverityLevel string

const (
	// SeverityHigh marks an alert that demands immediate action.
	SeverityHigh SeverityLevel = "alto"
	// SeverityMedium marks an alert that should be monitored.
	SeverityMedium SeverityLevel = "medio"
	// SeverityLow marks an informational alert.
	SeverityLow SeverityLevel = "bajo"
)

// String returns the string representation of the SeverityLevel.
func (s SeverityLevel) String() string {
	return string(s)
}

// IsValid checks if the SeverityLevel is a valid value.
func (s SeverityLevel) IsValid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

// Rank maps severities onto a total order for sorting, highest first.
func (s SeverityLevel) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// AlertType enumerates the five climate hazards the platform reports on.
type AlertType string

const (
	AlertHeavyRain  AlertType = "lluvia_intensa"
	AlertFrost      AlertType = "helada"
	AlertDrought    AlertType = "sequia"
	AlertHail       AlertType = "granizo"
	AlertStrongWind AlertType = "viento_fuerte"
)

// String returns the string representation of the AlertType.
func (t AlertType) String() string {
	return string(t)
}

// IsValid checks if the AlertType is a valid value.
func (t AlertType) IsValid() bool {
	switch t {
	case AlertHeavyRain, AlertFrost, AlertDrought, AlertHail, AlertStrongWind:
		return true
	default:
		return false
	}
}

// Label returns the human-readable Spanish name of the hazard.
func (t AlertType) Label() string {
	switch t {
	case AlertHeavyRain:
		return "Lluvia Intensa"
	case AlertFrost:
		return "Helada"
	case AlertDrought:
		return "Sequía"
	case AlertHail:
		return "Granizo"
	case AlertStrongWind:
		return "Viento Fuerte"
	default:
		return string(t)
	}
}

// CropType enumerates the crops grown in the region.
type CropType string

const (
	CropPotato CropType = "papa"
	CropMaize  CropType = "maiz"
	CropQuinoa CropType = "quinua"
	CropBarley CropType = "cebada"
	CropBeans  CropType = "habas"
	CropOther  CropType = "otro"
)

// String returns the string representation of the CropType.
func (t CropType) String() string {
	return string(t)
}

// IsValid checks if the CropType is a valid value.
func (t CropType) IsValid() bool {
	switch t {
	case CropPotato, CropMaize, CropQuinoa, CropBarley, CropBeans, CropOther:
		return true
	default:
		return false
	}
}

// Label returns the human-readable Spanish name of the crop.
func (t CropType) Label() string {
	switch t {
	case CropPotato:
		return "Papa"
	case CropMaize:
		return "Maíz"
	case CropQuinoa:
		return "Quinua"
	case CropBarley:
		return "Cebada"
	case CropBeans:
		return "Habas"
	case CropOther:
		return "Otro"
	default:
		return string(t)
	}
}

// CropTypes lists every valid crop type, in histogram order.
func CropTypes() []CropType {
	return []CropType{CropPotato, CropMaize, CropQuinoa, CropBarley, CropBeans, CropOther}
}

// RecommendationCategory classifies the origin of a recommendation.
type RecommendationCategory string

const (
	CategoryAlert      RecommendationCategory = "alerta"
	CategoryWeather    RecommendationCategory = "clima"
	CategoryCrop       RecommendationCategory = "cultivo"
	CategoryIrrigation RecommendationCategory = "riego"
	CategoryGeneral    RecommendationCategory = "general"
)

// String returns the string representation of the RecommendationCategory.
func (c RecommendationCategory) String() string {
	return string(c)
}

// IsValid checks if the RecommendationCategory is a valid value.
func (c RecommendationCategory) IsValid() bool {
	switch c {
	case CategoryAlert, CategoryWeather, CategoryCrop, CategoryIrrigation, CategoryGeneral:
		return true
	default:
		return false
	}
}

// AlertChannel is a delivery channel a farmer may subscribe to.
type AlertChannel string

const (
	ChannelSMS      AlertChannel = "sms"
	ChannelTelegram AlertChannel = "Telegram"
	ChannelEmail    AlertChannel = "email"
	ChannelApp      AlertChannel = "app"
)

// IsValid checks if the AlertChannel is a valid value.
func (c AlertChannel) IsValid() bool {
	switch c {
	case ChannelSMS, ChannelTelegram, ChannelEmail, ChannelApp:
		return true
	default:
		return false
	}
}

// Language is one of the UI languages offered to farmers.
type Language string

const (
	LanguageSpanish Language = "es"
	LanguageQuechua Language = "qu"
	LanguageEnglish Language = "en"
)

// IsValid checks if the Language is a valid value.
func (l Language) IsValid() bool {
	switch l {
	case LanguageSpanish, LanguageQuechua, LanguageEnglish:
		return true
	default:
		return false
	}
}
