package metrics

import (
	"math"

	"github.com/vfg2006/rental-insights-api/internal/domain"
	"github.com/vfg2006/rental-insights-api/pkg/utils"
)

type leadTimeRange struct {
	label   string
	minDays int
	maxDays int // -1 na faixa aberta
}

// Faixas fechadas nos dois extremos
var leadTimeRanges = []leadTimeRange{
	{label: "0-7", minDays: 0, maxDays: 7},
	{label: "8-30", minDays: 8, maxDays: 30},
	{label: "31-60", minDays: 31, maxDays: 60},
	{label: "61-90", minDays: 61, maxDays: 90},
	{label: "90+", minDays: 91, maxDays: -1},
}

// LeadDays retorna a antecedência em dias entre a reserva e a entrada.
// Retorna false quando falta alguma das datas ou a antecedência é negativa.
func LeadDays(booking domain.Booking) (int, bool) {
	if !booking.HasCheckIn() || !booking.HasBookingDate() {
		return 0, false
	}

	days := int(math.Round(booking.CheckIn.Sub(booking.BookingDate).Hours() / 24))
	if days < 0 {
		return 0, false
	}
	return days, true
}

func leadTimeBucket(days int) int {
	for i, r := range leadTimeRanges {
		if days >= r.minDays && (r.maxDays < 0 || days <= r.maxDays) {
			return i
		}
	}
	return len(leadTimeRanges) - 1
}

// LeadTime distribui as reservas com as duas datas válidas pelas faixas de antecedência
func LeadTime(bookings []domain.Booking) []domain.LeadTimeBucketRow {
	counts := make([]int, len(leadTimeRanges))
	priceSum := make([]float64, len(leadTimeRanges))
	priced := make([]int, len(leadTimeRanges))
	total := 0

	for _, booking := range bookings {
		days, ok := LeadDays(booking)
		if !ok {
			continue
		}

		idx := leadTimeBucket(days)
		counts[idx]++
		total++

		if price, ok := booking.NightlyPrice(); ok {
			priceSum[idx] += price
			priced[idx]++
		}
	}

	rows := make([]domain.LeadTimeBucketRow, 0, len(leadTimeRanges))
	for i, r := range leadTimeRanges {
		row := domain.LeadTimeBucketRow{
			Label:        r.label,
			MinDays:      r.minDays,
			Count:        counts[i],
			AveragePrice: utils.RoundWithTwoDecimalPlace(utils.Divide(priceSum[i], float64(priced[i]))),
			Percentage:   utils.RoundWithTwoDecimalPlace(utils.Percent(counts[i], total)),
		}
		if r.maxDays >= 0 {
			maxDays := r.maxDays
			row.MaxDays = &maxDays
		}
		rows = append(rows, row)
	}

	return rows
}
