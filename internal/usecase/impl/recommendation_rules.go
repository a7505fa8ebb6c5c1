package impl

import (
	"fmt"
	"time"

	"agroalerta/config"
	"agroalerta/internal/domain/entity"

	"github.com/google/uuid"
)

// hazardActions maps each climate hazard onto the field actions recommended
// to farmers. Wording is kept stable: farmers recognize advice they have
// seen before.
var hazardActions = map[entity.AlertType][]string{
	entity.AlertFrost: {
		"Aplicar riego por aspersión durante la madrugada",
		"Cubrir cultivos jóvenes con mantas térmicas",
		"Revisar sistemas de calefacción si están disponibles",
		"Monitorear temperaturas durante la noche",
	},
	entity.AlertHeavyRain: {
		"Verificar y limpiar sistemas de drenaje",
		"Evitar aplicaciones de fertilizantes o pesticidas",
		"Proteger plantas jóvenes con coberturas",
		"Revisar estructuras de soporte de cultivos",
	},
	entity.AlertDrought: {
		"Implementar riego eficiente (goteo o microaspersión)",
		"Aplicar mulch para conservar humedad",
		"Revisar y optimizar programación de riego",
		"Considerar cultivos resistentes a sequía",
	},
	entity.AlertHail: {
		"Instalar mallas antigranizo si es posible",
		"Refugiar cultivos en invernaderos móviles",
		"Preparar seguros agrícolas",
		"Monitorear pronósticos cada 2 horas",
	},
	entity.AlertStrongWind: {
		"Reforzar tutores y estructuras de soporte",
		"Podar ramas que puedan quebrar",
		"Proteger cultivos con barreras cortaviento",
		"Asegurar elementos sueltos en el campo",
	},
}

// ruleInput bundles everything the rule table evaluates over.
type ruleInput struct {
	crops   []*entity.Crop
	alerts  []*entity.Alert
	weather *entity.WeatherSnapshot
	now     time.Time
	cfg     config.RecommendationConfig
}

// generateAdvice runs the full rule table and returns the fresh advice, not
// yet deduplicated against the persisted list.
func generateAdvice(in ruleInput) []*entity.Recommendation {
	recs := []*entity.Recommendation{}
	recs = append(recs, alertCropAdvice(in)...)
	recs = append(recs, weatherAdvice(in)...)
	recs = append(recs, cropStageAdvice(in)...)
	recs = append(recs, seasonAdvice(in)...)

	return recs
}

// alertCropAdvice crosses every active alert with every crop. Priority
// mirrors the alert severity and the advice expires with the alert.
func alertCropAdvice(in ruleInput) []*entity.Recommendation {
	recs := []*entity.Recommendation{}
	for _, alert := range in.alerts {
		if !alert.IsActive {
			continue
		}
		actions, ok := hazardActions[alert.Type]
		if !ok {
			continue
		}
		for _, crop := range in.crops {
			validUntil := alert.ValidUntil
			recs = append(recs, &entity.Recommendation{
				ID:    uuid.New().String(),
				Title: fmt.Sprintf("🚨 Protección para %s - %s", crop.Name, alert.Title),
				Description: fmt.Sprintf(
					"Tu cultivo de %s en %s está en riesgo por %s. Toma medidas preventivas inmediatas.",
					crop.Name, crop.Location, alert.Description),
				Category:     entity.CategoryAlert,
				Priority:     alert.Severity,
				Actions:      actions,
				RelatedCrop:  crop.Name,
				RelatedAlert: alert.ID,
				CreatedAt:    in.now,
				ValidUntil:   &validUntil,
			})
		}
	}

	return recs
}

// weatherAdvice reads the current snapshot. No snapshot, no advice.
func weatherAdvice(in ruleInput) []*entity.Recommendation {
	if in.weather == nil {
		return nil
	}

	recs := []*entity.Recommendation{}
	if in.weather.Humidity > in.cfg.HumidityThreshold {
		recs = append(recs, &entity.Recommendation{
			ID:    uuid.New().String(),
			Title: "💧 Alta Humedad Detectada",
			Description: fmt.Sprintf(
				"La humedad actual es del %.0f%%. Esto puede favorecer el desarrollo de enfermedades fúngicas en tus cultivos.",
				in.weather.Humidity),
			Category: entity.CategoryWeather,
			Priority: entity.SeverityMedium,
			Actions: []string{
				"Mejorar ventilación en cultivos bajo cubierta",
				"Aplicar fungicidas preventivos si es necesario",
				"Evitar riego en las próximas horas",
				"Monitorear signos de enfermedades fúngicas",
			},
			CreatedAt: in.now,
		})
	}

	if in.weather.WindSpeed > in.cfg.WindSpeedThreshold {
		recs = append(recs, &entity.Recommendation{
			ID:    uuid.New().String(),
			Title: "💨 Vientos Fuertes",
			Description: fmt.Sprintf(
				"Se detectan vientos de %.0f km/h. Esto puede afectar tus cultivos y estructuras.",
				in.weather.WindSpeed),
			Category: entity.CategoryWeather,
			Priority: entity.SeverityMedium,
			Actions: []string{
				"Revisar y reforzar estructuras de soporte",
				"Postponer aplicaciones de pesticidas",
				"Asegurar herramientas y equipos",
				"Monitorear daños en cultivos altos",
			},
			CreatedAt: in.now,
		})
	}

	return recs
}

// cropStageAdvice keys off days since planting: the early-care window for
// every crop and the hilling window for potatoes.
func cropStageAdvice(in ruleInput) []*entity.Recommendation {
	recs := []*entity.Recommendation{}
	for _, crop := range in.crops {
		days, ok := crop.DaysSincePlanting(in.now)
		if !ok {
			continue
		}

		if days >= 0 && days <= in.cfg.EarlyStageMaxDays {
			recs = append(recs, &entity.Recommendation{
				ID:    uuid.New().String(),
				Title: fmt.Sprintf("🌱 Cuidados Iniciales - %s", crop.Name),
				Description: fmt.Sprintf(
					"Tu cultivo de %s está en etapa inicial (%d días desde siembra). Es crucial mantener condiciones óptimas.",
					crop.Name, days),
				Category: entity.CategoryCrop,
				Priority: entity.SeverityMedium,
				Actions: []string{
					"Mantener humedad constante del suelo",
					"Proteger de vientos fuertes",
					"Aplicar fertilizante de arranque si no se hizo",
					"Monitorear plagas iniciales",
				},
				RelatedCrop: crop.Name,
				CreatedAt:   in.now,
			})
		}

		if crop.Type == entity.CropPotato && days >= in.cfg.PotatoHillingMinDays && days <= in.cfg.PotatoHillingMaxDays {
			recs = append(recs, &entity.Recommendation{
				ID:    uuid.New().String(),
				Title: fmt.Sprintf("🥔 Tiempo de Aporque - %s", crop.Name),
				Description: "Tu cultivo de papa está listo para el aporque. " +
					"Esta práctica es esencial para un buen desarrollo.",
				Category: entity.CategoryCrop,
				Priority: entity.SeverityHigh,
				Actions: []string{
					"Realizar aporque cuando las plantas tengan 15-20 cm",
					"Aplicar fertilizante antes del aporque",
					"Revisar presencia de gusano blanco",
					"Mantener suelo húmedo pero no encharcado",
				},
				RelatedCrop: crop.Name,
				CreatedAt:   in.now,
			})
		}
	}

	return recs
}

// seasonAdvice fires once inside the configured planting months.
func seasonAdvice(in ruleInput) []*entity.Recommendation {
	month := int(in.now.Month())
	if month < in.cfg.PlantingSeasonStart || month > in.cfg.PlantingSeasonEnd {
		return nil
	}

	return []*entity.Recommendation{{
		ID:          uuid.New().String(),
		Title:       "🌾 Temporada de Siembra",
		Description: "Estamos en época óptima de siembra para muchos cultivos. Asegúrate de estar preparado.",
		Category:    entity.CategoryGeneral,
		Priority:    entity.SeverityLow,
		Actions: []string{
			"Verificar calidad de semillas",
			"Preparar terrenos para siembra",
			"Revisar sistemas de riego",
			"Planificar calendario de cultivos",
		},
		CreatedAt: in.now,
	}}
}
