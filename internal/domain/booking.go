// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"
)

// ReservationType é a marcação explícita de uma reserva detalhada
const ReservationType = "reservation"

// RawBooking representa um registro de fatura exatamente como vem do banco.
// Campos numéricos de valor chegam como texto (NUMERIC) e podem estar ausentes.
type RawBooking struct {
	ID             string    `json:"id"`
	ApartmentID    string    `json:"apartment_id"`
	Year           int       `json:"year"`
	Month          int       `json:"month"`
	Day            *int      `json:"day,omitempty"`
	CheckIn        *string   `json:"check_in,omitempty"`
	Nights         *int      `json:"nights,omitempty"`
	Adults         *int      `json:"adults,omitempty"`
	Children       *int      `json:"children,omitempty"`
	Value          *string   `json:"value,omitempty"` // valor já distribuído, quando informado
	TransferAmount *string   `json:"transfer_amount,omitempty"`
	Fee            *string   `json:"fee,omitempty"`
	BookingDate    *string   `json:"booking_date,omitempty"`
	Type           *string   `json:"type,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// BookingIssue identifica um problema encontrado durante a normalização
type BookingIssue string

const (
	IssueMalformedCheckIn     BookingIssue = "malformed_check_in"
	IssueMalformedBookingDate BookingIssue = "malformed_booking_date"
	IssueNonPositiveNights    BookingIssue = "non_positive_nights"
	IssueMissingAmount        BookingIssue = "missing_amount"
)

// Booking é o registro normalizado: todos os campos têm valor padrão e foram validados.
// Depois da consolidação é o registro autoritativo do seu período.
type Booking struct {
	ID          string         `json:"id"`
	ApartmentID string         `json:"apartment_id"`
	Year        int            `json:"year"`
	Month       int            `json:"month"`
	Day         int            `json:"day"` // 0 quando desconhecido
	CheckIn     time.Time      `json:"check_in"`
	Nights      int            `json:"nights"`
	Adults      int            `json:"adults"`
	Children    int            `json:"children"`
	TotalValue  float64        `json:"total_value"`
	BookingDate time.Time      `json:"booking_date"`
	Detailed    bool           `json:"detailed"`
	CreatedAt   time.Time      `json:"created_at"`
	Issues      []BookingIssue `json:"issues,omitempty"`
}

// HasCheckIn indica se a reserva tem uma data de entrada válida
func (b Booking) HasCheckIn() bool {
	return !b.CheckIn.IsZero()
}

// HasBookingDate indica se a reserva tem uma data de reserva válida
func (b Booking) HasBookingDate() bool {
	return !b.BookingDate.IsZero()
}

// SourceYear é o ano usado nos cortes de ano mínimo das métricas
func (b Booking) SourceYear() int {
	if b.HasCheckIn() {
		return b.CheckIn.Year()
	}
	return b.Year
}

// NightlyPrice retorna o valor médio por noite, ou false quando a reserva não tem noites
func (b Booking) NightlyPrice() (float64, bool) {
	if b.Nights <= 0 {
		return 0, false
	}
	return b.TotalValue / float64(b.Nights), true
}

// PeriodKey identifica o grupo (apartamento, ano, mês) usado na consolidação
type PeriodKey struct {
	ApartmentID string
	Year        int
	Month       int
}

// Key retorna a chave de período da reserva
func (b Booking) Key() PeriodKey {
	return PeriodKey{ApartmentID: b.ApartmentID, Year: b.Year, Month: b.Month}
}

// BookingFilter restringe a leitura de registros brutos. Campos vazios não filtram.
type BookingFilter struct {
	ApartmentIDs []string
	FromYear     int
}
