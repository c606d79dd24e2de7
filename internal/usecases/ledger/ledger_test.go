package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/rental-insights-api/internal/domain"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }

func sumRevenue(entries []domain.NightlyLedgerEntry) float64 {
	total := 0.0
	for _, entry := range entries {
		total += entry.Revenue
	}
	return total
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      domain.RawBooking
		validate func(t *testing.T, booking domain.Booking)
	}{
		{
			name: "Valor distribuído tem prioridade sobre repasse e taxa",
			raw: domain.RawBooking{
				ID:             " INV1 ",
				ApartmentID:    "123",
				Year:           2025,
				Month:          6,
				CheckIn:        stringPtr("2025-06-10"),
				Nights:         intPtr(2),
				Value:          stringPtr("250.00"),
				TransferAmount: stringPtr("100"),
				Fee:            stringPtr("20"),
			},
			validate: func(t *testing.T, booking domain.Booking) {
				assert.Equal(t, "INV1", booking.ID)
				assert.Equal(t, 250.0, booking.TotalValue)
				assert.True(t, booking.Detailed)
				assert.Equal(t, 10, booking.Day)
				assert.Empty(t, booking.Issues)
			},
		},
		{
			name: "Sem valor distribuído soma repasse e taxa, componente ausente vale zero",
			raw: domain.RawBooking{
				ApartmentID:    "123",
				Year:           2025,
				Month:          6,
				TransferAmount: stringPtr("180,50"),
			},
			validate: func(t *testing.T, booking domain.Booking) {
				assert.InDelta(t, 180.5, booking.TotalValue, 1e-9)
				assert.False(t, booking.Detailed)
				assert.Contains(t, booking.Issues, domain.IssueNonPositiveNights)
			},
		},
		{
			name: "Todos os valores ausentes viram zero",
			raw: domain.RawBooking{
				ApartmentID: "123",
				Year:        2025,
				Month:       6,
				Nights:      intPtr(3),
			},
			validate: func(t *testing.T, booking domain.Booking) {
				assert.Equal(t, 0.0, booking.TotalValue)
				assert.Contains(t, booking.Issues, domain.IssueMissingAmount)
				assert.True(t, booking.Detailed)
			},
		},
		{
			name: "Data de entrada inválida é registrada e a reserva segue sem data",
			raw: domain.RawBooking{
				ApartmentID: "123",
				Year:        2025,
				Month:       2,
				CheckIn:     stringPtr("2025-02-30"),
				Nights:      intPtr(2),
				Value:       stringPtr("100"),
			},
			validate: func(t *testing.T, booking domain.Booking) {
				assert.False(t, booking.HasCheckIn())
				assert.Contains(t, booking.Issues, domain.IssueMalformedCheckIn)
				assert.True(t, booking.Detailed)
			},
		},
		{
			name: "Marcação de reserva classifica como detalhado mesmo sem noites",
			raw: domain.RawBooking{
				ApartmentID: "123",
				Year:        2025,
				Month:       6,
				Type:        stringPtr("Reservation"),
			},
			validate: func(t *testing.T, booking domain.Booking) {
				assert.True(t, booking.Detailed)
			},
		},
		{
			name: "Ano e mês ausentes vêm da data de entrada",
			raw: domain.RawBooking{
				ApartmentID: "123",
				CheckIn:     stringPtr("2024-12-30"),
				Nights:      intPtr(4),
				Value:       stringPtr("400"),
				BookingDate: stringPtr("2024-11-01T10:30:00Z"),
			},
			validate: func(t *testing.T, booking domain.Booking) {
				assert.Equal(t, 2024, booking.Year)
				assert.Equal(t, 12, booking.Month)
				assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), booking.BookingDate)
			},
		},
		{
			name: "Data de reserva ilegível é registrada",
			raw: domain.RawBooking{
				ApartmentID: "123",
				Year:        2025,
				Month:       6,
				CheckIn:     stringPtr("2025-06-10"),
				Nights:      intPtr(1),
				BookingDate: stringPtr("ontem"),
			},
			validate: func(t *testing.T, booking domain.Booking) {
				assert.False(t, booking.HasBookingDate())
				assert.Contains(t, booking.Issues, domain.IssueMalformedBookingDate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Normalize(tt.raw))
		})
	}
}

func TestConsolidate(t *testing.T) {
	t.Run("Registro manual é descartado quando o período tem registro detalhado", func(t *testing.T) {
		bookings := NormalizeAll([]domain.RawBooking{
			{ID: "manual", ApartmentID: "123", Year: 2025, Month: 6, Value: stringPtr("3000")},
			{ID: "detail", ApartmentID: "123", Year: 2025, Month: 6, CheckIn: stringPtr("2025-06-10"), Nights: intPtr(2), Value: stringPtr("200")},
		})

		result, discarded := Consolidate(bookings)

		require.Len(t, result, 1)
		assert.Equal(t, "detail", result[0].ID)
		assert.Equal(t, 1, discarded)
	})

	t.Run("Sem registro detalhado os manuais permanecem", func(t *testing.T) {
		bookings := NormalizeAll([]domain.RawBooking{
			{ID: "m1", ApartmentID: "123", Year: 2025, Month: 5, Value: stringPtr("1000")},
			{ID: "m2", ApartmentID: "123", Year: 2025, Month: 5, Value: stringPtr("500")},
			{ID: "d1", ApartmentID: "1248", Year: 2025, Month: 5, CheckIn: stringPtr("2025-05-02"), Nights: intPtr(1), Value: stringPtr("90")},
		})

		result, discarded := Consolidate(bookings)

		assert.Len(t, result, 3)
		assert.Equal(t, 0, discarded)
		assert.Equal(t, "123", result[0].ApartmentID)
		assert.Equal(t, "1248", result[2].ApartmentID)
	})
}

func TestAllocate(t *testing.T) {
	t.Run("Reserva com data atravessa o mês com valor igual por noite", func(t *testing.T) {
		booking := Normalize(domain.RawBooking{
			ID: "A1", ApartmentID: "A", Year: 2025, Month: 6,
			CheckIn: stringPtr("2025-06-28"), Nights: intPtr(4), Value: stringPtr("400"),
		})

		entries := Allocate(booking)

		require.Len(t, entries, 4)
		expected := []struct{ month, day int }{{6, 28}, {6, 29}, {6, 30}, {7, 1}}
		for i, entry := range entries {
			assert.Equal(t, 2025, entry.Year)
			assert.Equal(t, expected[i].month, entry.Month)
			assert.Equal(t, expected[i].day, entry.Day)
			assert.Equal(t, 100.0, entry.Revenue)
			assert.True(t, entry.Precise)
			require.NotNil(t, entry.Weekday)
		}
		// 2025-06-28 é sábado
		assert.Equal(t, int(time.Saturday), *entries[0].Weekday)
	})

	t.Run("Reserva sem data ocupa os primeiros dias do mês sem dia da semana", func(t *testing.T) {
		booking := Normalize(domain.RawBooking{
			ApartmentID: "A", Year: 2025, Month: 3, Nights: intPtr(5), Value: stringPtr("500"),
		})

		entries := Allocate(booking)

		require.Len(t, entries, 5)
		for i, entry := range entries {
			assert.Equal(t, i+1, entry.Day)
			assert.False(t, entry.Precise)
			assert.Nil(t, entry.Weekday)
		}
	})

	t.Run("Noites além do fim do mês são descartadas na alocação aproximada", func(t *testing.T) {
		booking := Normalize(domain.RawBooking{
			ApartmentID: "A", Year: 2025, Month: 2, Nights: intPtr(31), Value: stringPtr("3100"),
		})

		entries, dropped := allocate(booking)

		assert.Len(t, entries, 28)
		assert.Equal(t, 3, dropped)
		assert.InDelta(t, 2800.0, sumRevenue(entries), 1e-6)
	})

	t.Run("Noites não positivas não geram entradas", func(t *testing.T) {
		booking := Normalize(domain.RawBooking{ApartmentID: "A", Year: 2025, Month: 2, Nights: intPtr(0), Value: stringPtr("100")})
		assert.Empty(t, Allocate(booking))
	})

	t.Run("A soma das noites é igual ao valor da reserva", func(t *testing.T) {
		cases := []domain.RawBooking{
			{ApartmentID: "A", Year: 2024, Month: 12, CheckIn: stringPtr("2024-12-30"), Nights: intPtr(3), Value: stringPtr("333.33")},
			{ApartmentID: "A", Year: 2025, Month: 4, Nights: intPtr(7), Value: stringPtr("1000")},
			{ApartmentID: "A", Year: 2025, Month: 1, CheckIn: stringPtr("2025-01-15"), Nights: intPtr(45), TransferAmount: stringPtr("4000"), Fee: stringPtr("123.45")},
			{ApartmentID: "A", Year: 2025, Month: 2, Nights: intPtr(28), Value: stringPtr("2222.22")},
		}

		for _, raw := range cases {
			booking := Normalize(raw)
			assert.InDelta(t, booking.TotalValue, sumRevenue(Allocate(booking)), 1e-6)
		}
	})
}

func TestBuild(t *testing.T) {
	raws := []domain.RawBooking{
		{ID: "1", ApartmentID: "123", Year: 2025, Month: 6, CheckIn: stringPtr("2025-06-28"), Nights: intPtr(4), Value: stringPtr("400")},
		{ID: "2", ApartmentID: "123", Year: 2025, Month: 6, Value: stringPtr("9999")},
		{ID: "3", ApartmentID: "1248", Year: 2025, Month: 5, Nights: intPtr(2), Value: stringPtr("200")},
		{ID: "4", ApartmentID: "1248", Year: 2025, Month: 4, CheckIn: stringPtr("bad"), Nights: intPtr(0), Value: stringPtr("10")},
		{ID: "5", ApartmentID: "1248", Year: 2022, Month: 3, CheckIn: stringPtr("2022-03-01"), Nights: intPtr(2), Value: stringPtr("150")},
	}

	ledger := Build(raws, 2023)

	assert.Equal(t, []string{"123", "1248"}, ledger.Apartments)
	assert.Equal(t, 5, ledger.Stats.RawRecords)
	assert.Equal(t, 4, ledger.Stats.ConsolidatedBookings)
	assert.Equal(t, 1, ledger.Stats.DiscardedManual)
	assert.Equal(t, 1, ledger.Stats.SkippedNonPositive)
	assert.Equal(t, 1, ledger.Stats.MalformedCheckIn)
	assert.Equal(t, 1, ledger.Stats.ApproximatedBookings)
	assert.Equal(t, 6, ledger.Stats.Entries)
	assert.Len(t, ledger.Entries, 6)

	// O total manual de 9999 não aparece em nenhuma entrada
	assert.InDelta(t, 600.0, sumRevenue(ledger.Entries), 1e-6)
}

func TestCache(t *testing.T) {
	raws := []domain.RawBooking{
		{ID: "1", ApartmentID: "123", Year: 2025, Month: 6, CheckIn: stringPtr("2025-06-28"), Nights: intPtr(4), Value: stringPtr("400")},
		{ID: "2", ApartmentID: "1248", Year: 2025, Month: 5, Nights: intPtr(2), Value: stringPtr("200")},
	}

	t.Run("Mesmo conjunto em outra ordem devolve o mesmo livro", func(t *testing.T) {
		cache := NewCache(2023)

		first, err := cache.Get(raws)
		require.NoError(t, err)
		second, err := cache.Get([]domain.RawBooking{raws[1], raws[0]})
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.NotEmpty(t, first.ID)
		hits, builds := cache.Stats()
		assert.Equal(t, 1, hits)
		assert.Equal(t, 1, builds)
	})

	t.Run("Conjunto diferente reconstrói", func(t *testing.T) {
		cache := NewCache(2023)

		first, err := cache.Get(raws)
		require.NoError(t, err)
		second, err := cache.Get(raws[:1])
		require.NoError(t, err)

		assert.NotEqual(t, first.Fingerprint, second.Fingerprint)
		assert.Len(t, second.Entries, 4)
	})

	t.Run("Invalidate força reconstrução", func(t *testing.T) {
		cache := NewCache(2023)

		first, err := cache.Get(raws)
		require.NoError(t, err)
		cache.Invalidate()
		second, err := cache.Get(raws)
		require.NoError(t, err)

		assert.NotSame(t, first, second)
		assert.Equal(t, first.Fingerprint, second.Fingerprint)
		assert.Len(t, first.ID, 10)
		assert.Len(t, second.ID, 10)
		assert.NotEqual(t, first.ID, second.ID)
		_, builds := cache.Stats()
		assert.Equal(t, 2, builds)
	})
}
