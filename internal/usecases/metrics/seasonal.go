package metrics

import (
	"sort"

	"github.com/samber/lo"
	"github.com/vfg2006/rental-insights-api/internal/domain"
	"github.com/vfg2006/rental-insights-api/pkg/utils"
)

// SeasonOf mapeia o mês para a estação meteorológica
func SeasonOf(month int) domain.Season {
	switch month {
	case 12, 1, 2:
		return domain.SeasonWinter
	case 3, 4, 5:
		return domain.SeasonSpring
	case 6, 7, 8:
		return domain.SeasonSummer
	default:
		return domain.SeasonFall
	}
}

// SeasonYear atribui dezembro ao inverno do ano seguinte (dez/2024 pertence ao inverno 2025)
func SeasonYear(year, month int) int {
	if month == 12 {
		return year + 1
	}
	return year
}

type seasonTotals struct {
	revenue   float64
	occupied  int
	available int
}

// Seasonal resume cada estação no seu ano mais recente, comparando com a média dos anos
// anteriores e com o ano imediatamente anterior. O resultado vem ordenado pelo ranking de receita.
// Meses sem venda entre o primeiro e o último mês observado contam as noites disponíveis do calendário.
func Seasonal(buckets []domain.MonthlyPerformanceBucket, setSize int) []domain.SeasonalSummary {
	bySeason := make(map[domain.Season]map[int]*seasonTotals)

	for _, bucket := range fillCalendar(buckets, setSize) {
		season := SeasonOf(bucket.Month)
		seasonYear := SeasonYear(bucket.Year, bucket.Month)

		if bySeason[season] == nil {
			bySeason[season] = make(map[int]*seasonTotals)
		}
		totals, ok := bySeason[season][seasonYear]
		if !ok {
			totals = &seasonTotals{}
			bySeason[season][seasonYear] = totals
		}
		totals.revenue += bucket.Revenue
		totals.occupied += bucket.OccupiedNights
		totals.available += bucket.AvailableNights
	}

	summaries := make([]domain.SeasonalSummary, 0, len(bySeason))
	for _, season := range domain.Seasons {
		years, ok := bySeason[season]
		if !ok {
			continue
		}
		summaries = append(summaries, summarizeSeason(season, years))
	}

	order := lo.Associate(domain.Seasons, func(s domain.Season) (domain.Season, int) {
		return s, lo.IndexOf(domain.Seasons, s)
	})
	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].Revenue != summaries[j].Revenue {
			return summaries[i].Revenue > summaries[j].Revenue
		}
		return order[summaries[i].Season] < order[summaries[j].Season]
	})
	for i := range summaries {
		summaries[i].Rank = i + 1
	}

	return summaries
}

func summarizeSeason(season domain.Season, years map[int]*seasonTotals) domain.SeasonalSummary {
	current := lo.Max(lo.Keys(years))
	totals := years[current]

	summary := domain.SeasonalSummary{
		Season:          season,
		SeasonYear:      current,
		Revenue:         utils.RoundWithTwoDecimalPlace(totals.revenue),
		OccupiedNights:  totals.occupied,
		AvailableNights: totals.available,
		RevPAN:          utils.RoundWithTwoDecimalPlace(utils.Divide(totals.revenue, float64(totals.available))),
		Occupancy:       utils.RoundWithTwoDecimalPlace(utils.Percent(totals.occupied, totals.available)),
	}

	earlier := lo.Filter(lo.Keys(years), func(year int, _ int) bool { return year < current })
	if len(earlier) > 0 {
		baseline := lo.SumBy(earlier, func(year int) float64 { return years[year].revenue }) / float64(len(earlier))
		summary.BaselineRevenue = floatPtr(utils.RoundWithTwoDecimalPlace(baseline))
		summary.BaselineChange = percentChange(totals.revenue, baseline)
	}

	if previous, ok := years[current-1]; ok {
		summary.PreviousYearRevenue = floatPtr(utils.RoundWithTwoDecimalPlace(previous.revenue))
		summary.YoYChange = percentChange(totals.revenue, previous.revenue)
	}

	return summary
}

// fillCalendar completa com zeros os meses ausentes entre o primeiro e o último bucket
func fillCalendar(buckets []domain.MonthlyPerformanceBucket, setSize int) []domain.MonthlyPerformanceBucket {
	if len(buckets) == 0 {
		return nil
	}

	observed := make(map[monthKey]domain.MonthlyPerformanceBucket, len(buckets))
	for _, bucket := range buckets {
		observed[monthKey{year: bucket.Year, month: bucket.Month}] = bucket
	}
	keys := sortedMonthKeys(observed)
	first, last := keys[0], keys[len(keys)-1]

	filled := make([]domain.MonthlyPerformanceBucket, 0, len(buckets))
	for year, month := first.year, first.month; year < last.year || (year == last.year && month <= last.month); {
		if bucket, ok := observed[monthKey{year: year, month: month}]; ok {
			filled = append(filled, bucket)
		} else {
			filled = append(filled, domain.MonthlyPerformanceBucket{
				Year:            year,
				Month:           month,
				AvailableNights: utils.DaysInMonth(year, month) * setSize,
			})
		}

		month++
		if month > 12 {
			month = 1
			year++
		}
	}

	return filled
}

// percentChange retorna nil quando a base é zero
func percentChange(current, base float64) *float64 {
	if base == 0 {
		return nil
	}
	return floatPtr(utils.RoundWithTwoDecimalPlace((current - base) / base * 100))
}

func floatPtr(f float64) *float64 { return &f }
