package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/rental-insights-api/internal/api/handler/router"
	"github.com/vfg2006/rental-insights-api/internal/domain"
	"github.com/vfg2006/rental-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/rental-insights-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/rental-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fakeSyncer struct {
	accept    bool
	triggered int
}

func (f *fakeSyncer) TriggerManualSync() bool {
	f.triggered++
	return f.accept
}

func (f *fakeSyncer) GetStatus() map[string]any {
	return map[string]any{"sync_running": !f.accept}
}

func newTestRouter(service insighting.Insighter, syncer ManualSyncer) http.Handler {
	return router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Analytics(service)...),
		router.WithRoutes(CronJobs(CronJobServices{CronJobTypeLedgerRefresh: syncer})...),
	)
}

func TestAnalyticsHandlers(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		setup    func(service *mocks.MockInsighter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Mensal sem parâmetros usa a visão total",
			method: http.MethodGet,
			target: "/v1/analytics/monthly",
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().
					Monthly(gomock.Any(), domain.TotalView()).
					Return([]domain.Series[[]domain.MonthlyPerformanceBucket]{
						{Label: "total", Apartments: []string{"123"}, Data: []domain.MonthlyPerformanceBucket{
							{Year: 2025, Month: 6, Revenue: 300, OccupiedNights: 3, AvailableNights: 30},
						}},
					}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				var body seriesResponse[[]domain.MonthlyPerformanceBucket]
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, domain.ViewTotal, body.View.Kind)
				require.Len(t, body.Series, 1)
				assert.Equal(t, 300.0, body.Series[0].Data[0].Revenue)
			},
		},
		{
			name:   "Apartamento sozinho vira visão single",
			method: http.MethodGet,
			target: "/v1/analytics/gaps?apartment=1248",
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().
					Gaps(gomock.Any(), domain.SingleView("1248")).
					Return([]domain.Series[domain.GapReport]{{Label: "1248"}}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"label":"1248"`)
			},
		},
		{
			name:   "Visão desconhecida retorna 400",
			method: http.MethodGet,
			target: "/v1/analytics/occupancy?view=mensal",
			setup:  func(service *mocks.MockInsighter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidView)
			},
		},
		{
			name:   "Apartamento fora do livro retorna 404",
			method: http.MethodGet,
			target: "/v1/analytics/seasonal?view=single&apartment=777",
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().
					Seasonal(gomock.Any(), domain.SingleView("777")).
					Return(nil, insighting.NewInsightError(insighting.ErrApartmentNotFound, apiErrors.ErrApartmentNotFound, "777"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrApartmentNotFound)
			},
		},
		{
			name:   "RevPAN repassa o mês de corte",
			method: http.MethodGet,
			target: "/v1/analytics/revpan?view=compare&cutoff_month=6",
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().
					RevPAN(gomock.Any(), domain.CompareView(), 6).
					Return([]domain.Series[domain.RevPanReport]{}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "RevPAN com mês de corte inválido",
			method: http.MethodGet,
			target: "/v1/analytics/revpan?cutoff_month=13",
			setup:  func(service *mocks.MockInsighter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidFormat)
			},
		},
		{
			name:   "Livro filtra apenas noites exatas",
			method: http.MethodGet,
			target: "/v1/analytics/ledger?precise=true",
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().
					Entries(gomock.Any(), domain.TotalView(), true).
					Return([]domain.Series[[]domain.NightlyLedgerEntry]{}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "Falha ao carregar faturas retorna 500",
			method: http.MethodGet,
			target: "/v1/analytics/periods",
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().
					Periods(gomock.Any()).
					Return(nil, insighting.NewInsightError(insighting.ErrLoadBookings, apiErrors.ErrDatabaseOperation, "connection refused"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrDatabaseOperation)
			},
		},
		{
			name:   "Atualização devolve o resumo do livro",
			method: http.MethodPost,
			target: "/v1/analytics/refresh",
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().
					Refresh(gomock.Any()).
					Return(&domain.Ledger{
						ID:         "LEDGER0001",
						Apartments: []string{"123"},
						Entries:    make([]domain.NightlyLedgerEntry, 4),
						Stats:      domain.LedgerStats{Entries: 4},
					}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				var body ledgerSummary
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "LEDGER0001", body.ID)
				assert.Equal(t, 4, body.Stats.Entries)
				assert.NotContains(t, rec.Body.String(), `"entries":[`)
			},
		},
		{
			name:   "Erro sem código vira erro interno",
			method: http.MethodGet,
			target: "/v1/analytics/pricing",
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().Pricing(gomock.Any(), gomock.Any()).Return(nil, errors.New("inesperado"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockInsighter(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			newTestRouter(service, &fakeSyncer{accept: true}).ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			tt.validate(t, rec)
		})
	}
}

func TestCronHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockInsighter(ctrl)

	t.Run("Disparo manual aceito", func(t *testing.T) {
		syncer := &fakeSyncer{accept: true}
		rec := httptest.NewRecorder()
		newTestRouter(service, syncer).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/ledger-refresh/run", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, syncer.triggered)
	})

	t.Run("Processo em andamento retorna 409", func(t *testing.T) {
		syncer := &fakeSyncer{accept: false}
		rec := httptest.NewRecorder()
		newTestRouter(service, syncer).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/ledger-refresh/run", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrJobAlreadyRunning)
	})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestRouter(service, &fakeSyncer{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/desconhecido/run", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), CronJobTypeLedgerRefresh)
	})

	t.Run("Status lista os processos", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestRouter(service, &fakeSyncer{accept: true}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ledger-refresh"`)
	})

	t.Run("Status de um processo", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestRouter(service, &fakeSyncer{accept: false}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/ledger-refresh/status", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"sync_running":true}`, rec.Body.String())
	})

	t.Run("Rota inexistente retorna 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestRouter(service, &fakeSyncer{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/desconhecida", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrRouteNotFound)
	})
}
