package metrics

import (
	"github.com/vfg2006/rental-insights-api/internal/domain"
	"github.com/vfg2006/rental-insights-api/pkg/utils"
)

// TargetOccupancyFactor é a ocupação de referência usada na meta de RevPAN
const TargetOccupancyFactor = 0.75

// RevPAN calcula a receita por noite disponível de cada mês, a meta e o acumulado do ano.
// cutoffMonth <= 0 usa o último mês observado do ano mais recente.
func RevPAN(buckets []domain.MonthlyPerformanceBucket, setSize, cutoffMonth int) domain.RevPanReport {
	report := domain.RevPanReport{
		Monthly: make([]domain.RevPanPoint, 0, len(buckets)),
	}

	totalRevenue, totalOccupied := 0.0, 0
	for _, bucket := range buckets {
		report.Monthly = append(report.Monthly, domain.RevPanPoint{
			Year:            bucket.Year,
			Month:           bucket.Month,
			Revenue:         utils.RoundWithTwoDecimalPlace(bucket.Revenue),
			OccupiedNights:  bucket.OccupiedNights,
			AvailableNights: bucket.AvailableNights,
			RevPAN:          utils.RoundWithTwoDecimalPlace(utils.Divide(bucket.Revenue, float64(bucket.AvailableNights))),
			AveragePrice:    utils.RoundWithTwoDecimalPlace(utils.Divide(bucket.Revenue, float64(bucket.OccupiedNights))),
			Occupancy:       utils.RoundWithTwoDecimalPlace(utils.Percent(bucket.OccupiedNights, bucket.AvailableNights)),
		})
		totalRevenue += bucket.Revenue
		totalOccupied += bucket.OccupiedNights
	}

	averagePrice := utils.Divide(totalRevenue, float64(totalOccupied))
	report.AveragePrice = utils.RoundWithTwoDecimalPlace(averagePrice)
	report.TargetRevPAN = utils.RoundWithTwoDecimalPlace(averagePrice * TargetOccupancyFactor)
	report.YearToDate = yearToDate(buckets, setSize, cutoffMonth)

	return report
}

// yearToDate compara jan..corte do ano mais recente com o mesmo intervalo do ano anterior.
// As noites disponíveis seguem o calendário, vendidas ou não.
func yearToDate(buckets []domain.MonthlyPerformanceBucket, setSize, cutoffMonth int) *domain.YearToDateRevPAN {
	if len(buckets) == 0 || setSize <= 0 {
		return nil
	}

	latestYear, latestMonth := 0, 0
	revenue := make(map[monthKey]float64)
	for _, bucket := range buckets {
		revenue[monthKey{year: bucket.Year, month: bucket.Month}] += bucket.Revenue
		if bucket.Revenue == 0 && bucket.OccupiedNights == 0 {
			continue
		}
		if bucket.Year > latestYear || (bucket.Year == latestYear && bucket.Month > latestMonth) {
			latestYear, latestMonth = bucket.Year, bucket.Month
		}
	}
	if latestYear == 0 {
		return nil
	}

	if cutoffMonth < 1 || cutoffMonth > 12 {
		cutoffMonth = latestMonth
	}

	ytd := func(year int) (float64, float64) {
		sum, available := 0.0, 0
		for month := 1; month <= cutoffMonth; month++ {
			sum += revenue[monthKey{year: year, month: month}]
			available += utils.DaysInMonth(year, month) * setSize
		}
		return sum, utils.Divide(sum, float64(available))
	}

	_, current := ytd(latestYear)
	previousRevenue, previous := ytd(latestYear - 1)

	result := &domain.YearToDateRevPAN{
		Year:           latestYear,
		CutoffMonth:    cutoffMonth,
		RevPAN:         utils.RoundWithTwoDecimalPlace(current),
		PreviousYear:   latestYear - 1,
		PreviousRevPAN: utils.RoundWithTwoDecimalPlace(previous),
	}
	if previousRevenue > 0 {
		result.Change = percentChange(current, previous)
	}

	return result
}
