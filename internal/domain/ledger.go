package domain

import "time"

// NightlyLedgerEntry representa uma noite ocupada com a receita alocada
type NightlyLedgerEntry struct {
	ApartmentID string  `json:"apartment_id"`
	BookingID   string  `json:"booking_id"`
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Day         int     `json:"day"`
	Weekday     *int    `json:"weekday"` // 0 = domingo; nil quando o dia não é exato
	Revenue     float64 `json:"revenue"`
	Precise     bool    `json:"precise"`
	SourceYear  int     `json:"source_year"`
}

// IsWeekend indica se a noite cai numa sexta ou num sábado
func (e NightlyLedgerEntry) IsWeekend() bool {
	if e.Weekday == nil {
		return false
	}
	wd := time.Weekday(*e.Weekday)
	return wd == time.Friday || wd == time.Saturday
}

// LedgerStats resume o que foi descartado ou aproximado ao montar o livro de noites
type LedgerStats struct {
	RawRecords               int `json:"raw_records"`
	ConsolidatedBookings     int `json:"consolidated_bookings"`
	DiscardedManual          int `json:"discarded_manual"`
	SkippedNonPositive       int `json:"skipped_non_positive_nights"`
	MalformedCheckIn         int `json:"malformed_check_in"`
	MalformedBookingDate     int `json:"malformed_booking_date"`
	ApproximatedBookings     int `json:"approximated_bookings"`
	DroppedApproximateNights int `json:"dropped_approximate_nights"`
	Entries                  int `json:"entries"`
}

// Ledger é o resultado completo de uma reconstrução a partir dos registros brutos
type Ledger struct {
	ID          string               `json:"id"`
	Fingerprint string               `json:"fingerprint"`
	Bookings    []Booking            `json:"bookings"`
	Entries     []NightlyLedgerEntry `json:"entries"`
	Apartments  []string             `json:"apartments"`
	Stats       LedgerStats          `json:"stats"`
	BuiltAt     time.Time            `json:"built_at"`
}

// MonthlyPerformanceBucket acumula receita e noites de um conjunto de apartamentos num mês
type MonthlyPerformanceBucket struct {
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	Revenue         float64 `json:"revenue"`
	OccupiedNights  int     `json:"occupied_nights"`
	AvailableNights int     `json:"available_nights"`
}

// AvailablePeriods lista os anos e meses presentes no livro de noites
type AvailablePeriods struct {
	Periods []string `json:"periods"` // formato mm-yyyy
	Years   []int    `json:"years"`
	Months  []int    `json:"months"`
}
