package metrics

import (
	"github.com/vfg2006/rental-insights-api/internal/domain"
	"github.com/vfg2006/rental-insights-api/pkg/utils"
)

// AggregateMonthly agrupa as noites por mês. Só aparecem meses com ao menos uma noite.
// Noites disponíveis = dias do mês x quantidade de apartamentos do conjunto.
func AggregateMonthly(entries []domain.NightlyLedgerEntry, setSize int) []domain.MonthlyPerformanceBucket {
	buckets := make(map[monthKey]*domain.MonthlyPerformanceBucket)

	for _, entry := range entries {
		key := monthKey{year: entry.Year, month: entry.Month}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.MonthlyPerformanceBucket{
				Year:            entry.Year,
				Month:           entry.Month,
				AvailableNights: utils.DaysInMonth(entry.Year, entry.Month) * setSize,
			}
			buckets[key] = bucket
		}
		bucket.Revenue += entry.Revenue
		bucket.OccupiedNights++
	}

	result := make([]domain.MonthlyPerformanceBucket, 0, len(buckets))
	for _, key := range sortedMonthKeys(buckets) {
		result = append(result, *buckets[key])
	}

	return result
}

// Timeline preenche com zeros todos os meses entre baseYear e o maior entre currentYear e o último ano observado
func Timeline(entries []domain.NightlyLedgerEntry, setSize, baseYear, currentYear int) []domain.MonthlyPerformanceBucket {
	observed := make(map[monthKey]domain.MonthlyPerformanceBucket)
	lastYear := currentYear
	for _, bucket := range AggregateMonthly(entries, setSize) {
		observed[monthKey{year: bucket.Year, month: bucket.Month}] = bucket
		lastYear = max(lastYear, bucket.Year)
	}

	if lastYear < baseYear {
		return nil
	}

	timeline := make([]domain.MonthlyPerformanceBucket, 0, (lastYear-baseYear+1)*12)
	for year := baseYear; year <= lastYear; year++ {
		for month := 1; month <= 12; month++ {
			if bucket, ok := observed[monthKey{year: year, month: month}]; ok {
				timeline = append(timeline, bucket)
				continue
			}
			timeline = append(timeline, domain.MonthlyPerformanceBucket{
				Year:            year,
				Month:           month,
				AvailableNights: utils.DaysInMonth(year, month) * setSize,
			})
		}
	}

	return timeline
}
