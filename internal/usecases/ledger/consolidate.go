package ledger

import (
	"sort"

	"github.com/samber/lo"
	"github.com/vfg2006/rental-insights-api/internal/domain"
)

// Consolidate remove registros manuais de períodos que já têm registros detalhados.
// Dentro de cada (apartamento, ano, mês): havendo qualquer registro detalhado, todos os manuais
// são descartados; sem detalhados, os manuais ficam como estão. Retorna também quantos foram descartados.
func Consolidate(bookings []domain.Booking) ([]domain.Booking, int) {
	groups := lo.GroupBy(bookings, func(b domain.Booking) domain.PeriodKey {
		return b.Key()
	})

	consolidated := make([]domain.Booking, 0, len(bookings))
	discarded := 0

	for _, group := range groups {
		hasDetailed := lo.SomeBy(group, func(b domain.Booking) bool { return b.Detailed })
		if !hasDetailed {
			consolidated = append(consolidated, group...)
			continue
		}

		detailed := lo.Filter(group, func(b domain.Booking, _ int) bool { return b.Detailed })
		discarded += len(group) - len(detailed)
		consolidated = append(consolidated, detailed...)
	}

	sortBookings(consolidated)

	return consolidated, discarded
}

// sortBookings garante uma saída determinística independente da ordem do mapa
func sortBookings(bookings []domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if a.ApartmentID != b.ApartmentID {
			return a.ApartmentID < b.ApartmentID
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		if !a.CheckIn.Equal(b.CheckIn) {
			return a.CheckIn.Before(b.CheckIn)
		}
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}
