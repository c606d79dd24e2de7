package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/rental-insights-api/internal/domain"
)

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name     string
		filter   domain.BookingFilter
		validate func(t *testing.T, query string, args []interface{})
	}{
		{
			name:   "Sem filtros lista tudo em ordem de criação",
			filter: domain.BookingFilter{},
			validate: func(t *testing.T, query string, args []interface{}) {
				assert.Contains(t, query, "FROM invoices i")
				assert.Contains(t, query, "ORDER BY i.created_at ASC, i.id ASC")
				assert.NotContains(t, query, "WHERE")
				assert.Empty(t, args)
			},
		},
		{
			name:   "Filtro por apartamentos e ano",
			filter: domain.BookingFilter{ApartmentIDs: []string{"123", "1248"}, FromYear: 2024},
			validate: func(t *testing.T, query string, args []interface{}) {
				assert.Contains(t, query, "i.apartment_id IN ($1,$2)")
				assert.Contains(t, query, "(i.year >= $3 OR i.check_in >= $4)")
				assert.Equal(t, []interface{}{"123", "1248", 2024, "2024-01-01"}, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListQuery(tt.filter)
			require.NoError(t, err)
			tt.validate(t, query, args)
		})
	}
}

func TestBuildApartmentQuery(t *testing.T) {
	query, args, err := buildApartmentQuery()

	require.NoError(t, err)
	assert.Equal(t, "SELECT ap.id FROM apartments ap WHERE ap.active = $1 ORDER BY ap.id ASC", query)
	assert.Equal(t, []interface{}{true}, args)
}
