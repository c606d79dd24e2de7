package ledger

import (
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/vfg2006/rental-insights-api/internal/domain"
)

// Build executa o fluxo completo: normalização, consolidação e alocação por noite.
// Reservas com ano de origem anterior a minYear ficam fora das entradas.
func Build(raws []domain.RawBooking, minYear int) *domain.Ledger {
	normalized := NormalizeAll(raws)
	bookings, discarded := Consolidate(normalized)

	stats := domain.LedgerStats{
		RawRecords:           len(raws),
		ConsolidatedBookings: len(bookings),
		DiscardedManual:      discarded,
	}

	entries := make([]domain.NightlyLedgerEntry, 0, len(bookings))
	for _, booking := range bookings {
		if hasIssue(booking, domain.IssueMalformedCheckIn) {
			stats.MalformedCheckIn++
		}
		if hasIssue(booking, domain.IssueMalformedBookingDate) {
			stats.MalformedBookingDate++
		}
		if booking.Nights <= 0 {
			stats.SkippedNonPositive++
			continue
		}
		if booking.SourceYear() < minYear {
			continue
		}

		allocated, dropped := allocate(booking)
		if !booking.HasCheckIn() {
			stats.ApproximatedBookings++
			stats.DroppedApproximateNights += dropped
		}
		entries = append(entries, allocated...)
	}
	stats.Entries = len(entries)

	apartments := lo.Uniq(lo.Map(bookings, func(b domain.Booking, _ int) string { return b.ApartmentID }))
	apartments = lo.Filter(apartments, func(id string, _ int) bool { return id != "" })
	sort.Strings(apartments)

	return &domain.Ledger{
		Bookings:   bookings,
		Entries:    entries,
		Apartments: apartments,
		Stats:      stats,
		BuiltAt:    time.Now(),
	}
}
