// Package metrics contém os motores de métricas calculados sobre o livro de noites.
// Todas as funções são puras: recebem o livro já materializado e não alteram a entrada.
package metrics

import (
	"sort"

	"github.com/samber/lo"
	"github.com/vfg2006/rental-insights-api/internal/domain"
	"github.com/vfg2006/rental-insights-api/pkg/utils"
)

// EntryFilter seleciona as noites usadas por uma métrica
type EntryFilter struct {
	Set         domain.ApartmentSet
	MinYear     int
	PreciseOnly bool
}

// FilterEntries aplica conjunto de apartamentos, ano mínimo e precisão
func FilterEntries(entries []domain.NightlyLedgerEntry, filter EntryFilter) []domain.NightlyLedgerEntry {
	return lo.Filter(entries, func(entry domain.NightlyLedgerEntry, _ int) bool {
		if !filter.Set.Contains(entry.ApartmentID) {
			return false
		}
		if entry.SourceYear < filter.MinYear {
			return false
		}
		return !filter.PreciseOnly || entry.Precise
	})
}

// FilterBookings seleciona as reservas do conjunto a partir do ano mínimo
func FilterBookings(bookings []domain.Booking, set domain.ApartmentSet, minYear int) []domain.Booking {
	return lo.Filter(bookings, func(booking domain.Booking, _ int) bool {
		return set.Contains(booking.ApartmentID) && booking.SourceYear() >= minYear
	})
}

// Periods lista os meses, anos e meses do ano presentes nas noites, em ordem crescente
func Periods(entries []domain.NightlyLedgerEntry) domain.AvailablePeriods {
	type period struct{ year, month int }

	periods := lo.Uniq(lo.Map(entries, func(entry domain.NightlyLedgerEntry, _ int) period {
		return period{year: entry.Year, month: entry.Month}
	}))
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].year != periods[j].year {
			return periods[i].year < periods[j].year
		}
		return periods[i].month < periods[j].month
	})

	years := lo.Uniq(lo.Map(periods, func(p period, _ int) int { return p.year }))
	months := lo.Uniq(lo.Map(periods, func(p period, _ int) int { return p.month }))
	sort.Ints(months)

	return domain.AvailablePeriods{
		Periods: lo.Map(periods, func(p period, _ int) string { return utils.FormatPeriod(p.year, p.month) }),
		Years:   years,
		Months:  months,
	}
}

type monthKey struct {
	year  int
	month int
}

func sortedMonthKeys[V any](m map[monthKey]V) []monthKey {
	keys := lo.Keys(m)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})
	return keys
}
