package metrics

import (
	"github.com/vfg2006/rental-insights-api/internal/domain"
	"github.com/vfg2006/rental-insights-api/pkg/utils"
)

// Occupancy calcula a ocupação mensal e anual. O percentual é limitado a 100 porque a origem
// pode conter reservas sobrepostas.
func Occupancy(buckets []domain.MonthlyPerformanceBucket) domain.OccupancyReport {
	report := domain.OccupancyReport{
		Monthly: make([]domain.OccupancyPoint, 0, len(buckets)),
	}

	yearIndex := make(map[int]int)
	for _, bucket := range buckets {
		report.Monthly = append(report.Monthly, domain.OccupancyPoint{
			Year:            bucket.Year,
			Month:           bucket.Month,
			OccupiedNights:  bucket.OccupiedNights,
			AvailableNights: bucket.AvailableNights,
			Occupancy:       utils.RoundWithTwoDecimalPlace(utils.Percent(bucket.OccupiedNights, bucket.AvailableNights)),
		})

		idx, ok := yearIndex[bucket.Year]
		if !ok {
			idx = len(report.Yearly)
			yearIndex[bucket.Year] = idx
			report.Yearly = append(report.Yearly, domain.YearlyOccupancy{Year: bucket.Year})
		}
		yearly := &report.Yearly[idx]
		yearly.OccupiedNights += bucket.OccupiedNights
		yearly.AvailableNights += bucket.AvailableNights
		yearly.Revenue += bucket.Revenue
	}

	for i := range report.Yearly {
		yearly := &report.Yearly[i]
		yearly.Occupancy = utils.RoundWithTwoDecimalPlace(utils.Percent(yearly.OccupiedNights, yearly.AvailableNights))
		yearly.Revenue = utils.RoundWithTwoDecimalPlace(yearly.Revenue)
	}

	return report
}
