package metrics

import (
	"github.com/vfg2006/rental-insights-api/internal/domain"
)

// PricingActionFor classifica o mês no quadrante ocupação x preço médio.
// As regras são avaliadas na ordem: subir preço, baixar preço, equilibrado; o resto fica em observação.
func PricingActionFor(occupancy, revPAN, averagePrice float64) domain.PricingAction {
	switch {
	case occupancy >= 90 && revPAN < 0.70*averagePrice:
		return domain.PricingRaise
	case occupancy < 50 && revPAN < 0.50*averagePrice:
		return domain.PricingLower
	case occupancy >= 75 && revPAN >= 0.75*averagePrice:
		return domain.PricingBalanced
	default:
		return domain.PricingMonitor
	}
}

// Pricing gera a recomendação de cada mês com noites vendidas
func Pricing(points []domain.RevPanPoint) []domain.PricingRecommendation {
	recommendations := make([]domain.PricingRecommendation, 0, len(points))
	for _, point := range points {
		if point.OccupiedNights == 0 {
			continue
		}
		recommendations = append(recommendations, domain.PricingRecommendation{
			Year:         point.Year,
			Month:        point.Month,
			Occupancy:    point.Occupancy,
			AveragePrice: point.AveragePrice,
			RevPAN:       point.RevPAN,
			Action:       PricingActionFor(point.Occupancy, point.RevPAN, point.AveragePrice),
		})
	}
	return recommendations
}
