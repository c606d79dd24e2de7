package metrics

import (
	"time"

	"github.com/vfg2006/rental-insights-api/internal/domain"
	"github.com/vfg2006/rental-insights-api/pkg/utils"
)

func isWeekendDay(wd time.Weekday) bool {
	return wd == time.Friday || wd == time.Saturday
}

// Weekpart compara fins de semana (sexta e sábado) com os demais dias usando noites com data exata.
// As noites disponíveis contam apenas os meses observados nas entradas.
func Weekpart(entries []domain.NightlyLedgerEntry, setSize int) domain.WeekpartMetrics {
	var weekend, weekday domain.WeekpartClass
	observed := make(map[monthKey]struct{})

	for _, entry := range entries {
		if !entry.Precise || entry.Weekday == nil {
			continue
		}

		observed[monthKey{year: entry.Year, month: entry.Month}] = struct{}{}
		if entry.IsWeekend() {
			weekend.OccupiedNights++
			weekend.Revenue += entry.Revenue
		} else {
			weekday.OccupiedNights++
			weekday.Revenue += entry.Revenue
		}
	}

	for key := range observed {
		weekendDays := utils.CountDays(key.year, key.month, isWeekendDay)
		weekend.AvailableNights += weekendDays * setSize
		weekday.AvailableNights += (utils.DaysInMonth(key.year, key.month) - weekendDays) * setSize
	}

	finishClass(&weekend)
	finishClass(&weekday)

	premium := 0.0
	if weekday.AveragePrice > 0 {
		premium = (weekend.AveragePrice - weekday.AveragePrice) / weekday.AveragePrice * 100
	}

	return domain.WeekpartMetrics{
		Weekend:        weekend,
		Weekday:        weekday,
		WeekendPremium: utils.RoundWithTwoDecimalPlace(premium),
	}
}

func finishClass(class *domain.WeekpartClass) {
	class.AveragePrice = utils.RoundWithTwoDecimalPlace(utils.Divide(class.Revenue, float64(class.OccupiedNights)))
	class.Occupancy = utils.RoundWithTwoDecimalPlace(utils.Percent(class.OccupiedNights, class.AvailableNights))
	class.Revenue = utils.RoundWithTwoDecimalPlace(class.Revenue)
}
