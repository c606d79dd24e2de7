package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/rental-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/rental-insights-api/internal/domain"
)

const (
	invoicesTable = "invoices i"
)

var invoiceColumns = []string{
	"i.id",
	"i.apartment_id",
	"COALESCE(i.year, 0)",
	"COALESCE(i.month, 0)",
	"i.day",
	"i.check_in",
	"i.nights",
	"i.adults",
	"i.children",
	"i.value::text",
	"i.transfer_amount::text",
	"i.fee::text",
	"i.booking_date",
	"i.type",
	"i.created_at",
}

type BookingRepository interface {
	ListRawBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.RawBooking, error)
}

type bookingRepository struct {
	conn postgres.Queryer
}

func NewBookingRepository(conn postgres.Queryer) BookingRepository {
	return &bookingRepository{
		conn: conn,
	}
}

// buildListQuery monta a consulta das faturas em ordem de criação
func buildListQuery(filter domain.BookingFilter) (string, []interface{}, error) {
	builder := squirrel.
		Select(invoiceColumns...).
		From(invoicesTable).
		OrderBy("i.created_at ASC", "i.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(filter.ApartmentIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"i.apartment_id": filter.ApartmentIDs})
	}

	if filter.FromYear > 0 {
		builder = builder.Where(squirrel.Or{
			squirrel.GtOrEq{"i.year": filter.FromYear},
			squirrel.GtOrEq{"i.check_in": fmt.Sprintf("%04d-01-01", filter.FromYear)},
		})
	}

	return builder.ToSql()
}

func (r *bookingRepository) ListRawBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.RawBooking, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de faturas")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de faturas")
	}
	defer rows.Close()

	bookings := make([]domain.RawBooking, 0)
	for rows.Next() {
		booking, err := scanRawBooking(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear fatura")
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return bookings, nil
}

func scanRawBooking(rows *sql.Rows) (domain.RawBooking, error) {
	var (
		booking                       domain.RawBooking
		day, nights, adults, children sql.NullInt64
		checkIn, bookingDate, kind    sql.NullString
		value, transferAmount, fee    sql.NullString
	)

	err := rows.Scan(
		&booking.ID,
		&booking.ApartmentID,
		&booking.Year,
		&booking.Month,
		&day,
		&checkIn,
		&nights,
		&adults,
		&children,
		&value,
		&transferAmount,
		&fee,
		&bookingDate,
		&kind,
		&booking.CreatedAt,
	)
	if err != nil {
		return domain.RawBooking{}, err
	}

	booking.Day = nullInt(day)
	booking.Nights = nullInt(nights)
	booking.Adults = nullInt(adults)
	booking.Children = nullInt(children)
	booking.CheckIn = nullString(checkIn)
	booking.Value = nullString(value)
	booking.TransferAmount = nullString(transferAmount)
	booking.Fee = nullString(fee)
	booking.BookingDate = nullString(bookingDate)
	booking.Type = nullString(kind)

	return booking, nil
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
