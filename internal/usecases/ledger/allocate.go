package ledger

import (
	"github.com/vfg2006/rental-insights-api/internal/domain"
	"github.com/vfg2006/rental-insights-api/pkg/utils"
)

// Allocate explode a reserva em uma entrada por noite, cada uma com valor total / noites.
// Com data de entrada as noites seguem o calendário a partir dela (precise = true) e podem
// atravessar meses e anos. Sem data, as noites ocupam os dias 1..min(diasDoMês, noites)
// do mês informado; noites além do fim do mês são descartadas.
func Allocate(booking domain.Booking) []domain.NightlyLedgerEntry {
	entries, _ := allocate(booking)
	return entries
}

// allocate retorna as entradas e quantas noites aproximadas ficaram fora do mês
func allocate(booking domain.Booking) ([]domain.NightlyLedgerEntry, int) {
	if booking.Nights <= 0 {
		return nil, 0
	}

	share := booking.TotalValue / float64(booking.Nights)
	sourceYear := booking.SourceYear()

	if booking.HasCheckIn() {
		entries := make([]domain.NightlyLedgerEntry, 0, booking.Nights)
		for i := 0; i < booking.Nights; i++ {
			night := booking.CheckIn.AddDate(0, 0, i)
			weekday := int(night.Weekday())

			entries = append(entries, domain.NightlyLedgerEntry{
				ApartmentID: booking.ApartmentID,
				BookingID:   booking.ID,
				Year:        night.Year(),
				Month:       int(night.Month()),
				Day:         night.Day(),
				Weekday:     &weekday,
				Revenue:     share,
				Precise:     true,
				SourceYear:  sourceYear,
			})
		}
		return entries, 0
	}

	daysInMonth := utils.DaysInMonth(booking.Year, booking.Month)
	if daysInMonth == 0 {
		return nil, booking.Nights
	}

	nights := min(daysInMonth, booking.Nights)
	entries := make([]domain.NightlyLedgerEntry, 0, nights)
	for day := 1; day <= nights; day++ {
		entries = append(entries, domain.NightlyLedgerEntry{
			ApartmentID: booking.ApartmentID,
			BookingID:   booking.ID,
			Year:        booking.Year,
			Month:       booking.Month,
			Day:         day,
			Revenue:     share,
			Precise:     false,
			SourceYear:  sourceYear,
		})
	}

	return entries, booking.Nights - nights
}
