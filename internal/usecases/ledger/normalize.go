// Package ledger transforma registros brutos de faturas no livro de noites
package ledger

import (
	"strings"

	"github.com/vfg2006/rental-insights-api/internal/domain"
	"github.com/vfg2006/rental-insights-api/pkg/utils"
)

// Normalize converte um registro bruto num Booking com todos os campos resolvidos.
// Nenhum erro é retornado: problemas ficam registrados em Issues e o registro segue no fluxo.
func Normalize(raw domain.RawBooking) domain.Booking {
	booking := domain.Booking{
		ID:          strings.TrimSpace(raw.ID),
		ApartmentID: strings.TrimSpace(raw.ApartmentID),
		Year:        raw.Year,
		Month:       raw.Month,
		Nights:      utils.IntValue(raw.Nights),
		Adults:      utils.IntValue(raw.Adults),
		Children:    utils.IntValue(raw.Children),
		CreatedAt:   raw.CreatedAt,
	}

	hasISOCheckIn := false
	if raw.CheckIn != nil && strings.TrimSpace(*raw.CheckIn) != "" {
		hasISOCheckIn = utils.IsISODate(*raw.CheckIn)
		if checkIn, ok := utils.ParseISODate(*raw.CheckIn); ok {
			booking.CheckIn = checkIn
		} else {
			booking.Issues = append(booking.Issues, domain.IssueMalformedCheckIn)
		}
	}

	// Sem ano/mês informados o período vem da própria data de entrada
	if (booking.Year == 0 || booking.Month < 1 || booking.Month > 12) && booking.HasCheckIn() {
		booking.Year = booking.CheckIn.Year()
		booking.Month = int(booking.CheckIn.Month())
	}

	if day := utils.IntValue(raw.Day); day >= 1 && day <= utils.DaysInMonth(booking.Year, booking.Month) {
		booking.Day = day
	}
	if booking.HasCheckIn() && booking.Day == 0 {
		booking.Day = booking.CheckIn.Day()
	}

	if raw.BookingDate != nil && strings.TrimSpace(*raw.BookingDate) != "" {
		if bookingDate, ok := utils.ParseFlexibleDate(*raw.BookingDate); ok {
			booking.BookingDate = bookingDate
		} else {
			booking.Issues = append(booking.Issues, domain.IssueMalformedBookingDate)
		}
	}

	booking.TotalValue = totalValue(raw, &booking)

	if booking.Nights <= 0 {
		booking.Issues = append(booking.Issues, domain.IssueNonPositiveNights)
	}

	booking.Detailed = hasISOCheckIn || booking.Nights > 0 || isReservation(raw.Type)

	return booking
}

// NormalizeAll normaliza todos os registros preservando a ordem de entrada
func NormalizeAll(raws []domain.RawBooking) []domain.Booking {
	bookings := make([]domain.Booking, 0, len(raws))
	for _, raw := range raws {
		bookings = append(bookings, Normalize(raw))
	}
	return bookings
}

// totalValue usa o valor já distribuído quando presente; senão soma repasse e taxa
func totalValue(raw domain.RawBooking, booking *domain.Booking) float64 {
	if value, ok := utils.ParseAmount(raw.Value); ok {
		return value
	}

	_, hasTransfer := utils.ParseAmount(raw.TransferAmount)
	_, hasFee := utils.ParseAmount(raw.Fee)
	if !hasTransfer && !hasFee {
		booking.Issues = append(booking.Issues, domain.IssueMissingAmount)
		return 0
	}

	return utils.SumAmounts(raw.TransferAmount, raw.Fee)
}

func isReservation(kind *string) bool {
	if kind == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(*kind), domain.ReservationType)
}

// hasIssue indica se a reserva carrega o problema informado
func hasIssue(booking domain.Booking, issue domain.BookingIssue) bool {
	for _, current := range booking.Issues {
		if current == issue {
			return true
		}
	}
	return false
}
