package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/rental-insights-api/internal/domain"
	"github.com/vfg2006/rental-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/rental-insights-api/pkg/apiErrors"
	"github.com/vfg2006/rental-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// seriesResponse é o envelope comum das métricas por visão
type seriesResponse[T any] struct {
	View   domain.View        `json:"view"`
	Series []domain.Series[T] `json:"series"`
}

// ledgerSummary descreve o livro instalado sem as entradas
type ledgerSummary struct {
	ID          string             `json:"id"`
	Fingerprint string             `json:"fingerprint"`
	BuiltAt     time.Time          `json:"built_at"`
	Apartments  []string           `json:"apartments"`
	Stats       domain.LedgerStats `json:"stats"`
}

// viewHandler lê a visão da query e responde a série calculada
func viewHandler[T any](metric string, fetch func(ctx context.Context, view domain.View) ([]domain.Series[T], error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("metric", metric)

		view, ok := parseView(w, r)
		if !ok {
			return
		}

		logger = logger.WithFields(log.Fields{
			"view":         view.Kind,
			"apartment_id": view.ApartmentID,
		})
		logger.Info("analytics: calculando métrica")

		series, err := fetch(r.Context(), view)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, seriesResponse[T]{View: view, Series: series})
	})
}

func GetMonthly(service insighting.Insighter) http.Handler {
	return viewHandler("monthly", service.Monthly)
}

func GetOccupancy(service insighting.Insighter) http.Handler {
	return viewHandler("occupancy", service.Occupancy)
}

func GetGaps(service insighting.Insighter) http.Handler {
	return viewHandler("gaps", service.Gaps)
}

func GetLeadTime(service insighting.Insighter) http.Handler {
	return viewHandler("lead_time", service.LeadTime)
}

func GetWeekpart(service insighting.Insighter) http.Handler {
	return viewHandler("weekpart", service.Weekpart)
}

func GetSeasonal(service insighting.Insighter) http.Handler {
	return viewHandler("seasonal", service.Seasonal)
}

func GetPricing(service insighting.Insighter) http.Handler {
	return viewHandler("pricing", service.Pricing)
}

// GetRevPAN aceita cutoff_month (1-12) para o comparativo acumulado no ano
func GetRevPAN(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cutoffMonth := 0
		if raw := r.URL.Query().Get("cutoff_month"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > 12 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "cutoff_month deve ser um mês entre 1 e 12", raw)
				return
			}
			cutoffMonth = parsed
		}

		viewHandler("revpan", func(ctx context.Context, view domain.View) ([]domain.Series[domain.RevPanReport], error) {
			return service.RevPAN(ctx, view, cutoffMonth)
		}).ServeHTTP(w, r)
	})
}

// GetLedgerEntries retorna as noites do livro; precise=true mantém apenas as datas exatas
func GetLedgerEntries(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		preciseOnly := false
		if raw := r.URL.Query().Get("precise"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "precise deve ser true ou false", raw)
				return
			}
			preciseOnly = parsed
		}

		viewHandler("ledger", func(ctx context.Context, view domain.View) ([]domain.Series[[]domain.NightlyLedgerEntry], error) {
			return service.Entries(ctx, view, preciseOnly)
		}).ServeHTTP(w, r)
	})
}

// GetAvailablePeriods retorna os meses e anos presentes no livro de noites
func GetAvailablePeriods(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("analytics-periods: buscando períodos disponíveis")

		periods, err := service.Periods(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, periods)
	})
}

// RefreshLedger reconstrói o livro na hora; se outra atualização mais nova terminar antes, ela prevalece
func RefreshLedger(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("analytics-refresh: reconstruindo livro de noites")

		ledger, err := service.Refresh(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, summarize(ledger))
	})
}

// GetLedgerSummary retorna o resumo do livro instalado
func GetLedgerSummary(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ledger, err := service.Snapshot(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, summarize(ledger))
	})
}

func summarize(ledger *domain.Ledger) ledgerSummary {
	return ledgerSummary{
		ID:          ledger.ID,
		Fingerprint: ledger.Fingerprint,
		BuiltAt:     ledger.BuiltAt,
		Apartments:  ledger.Apartments,
		Stats:       ledger.Stats,
	}
}

func parseView(w http.ResponseWriter, r *http.Request) (domain.View, bool) {
	query := r.URL.Query()

	view, err := domain.ParseView(query.Get("view"), query.Get("apartment"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidView, err.Error(), map[string]string{
			"view":      query.Get("view"),
			"apartment": query.Get("apartment"),
		})
		return domain.View{}, false
	}

	return view, true
}

func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	code := insighting.ErrorCode(err)

	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.WithError(err).Error("analytics: erro ao calcular métrica")
	} else {
		logger.WithError(err).Warn("analytics: requisição rejeitada")
	}

	var details any
	var insightErr *insighting.InsightError
	if errors.As(err, &insightErr) && insightErr.Details != "" {
		details = insightErr.Details
	}

	apiErrors.WriteError(w, code, err.Error(), details)
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	writeJSONStatus(w, logger, http.StatusOK, payload)
}

func writeJSONStatus(w http.ResponseWriter, logger log.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("analytics: erro ao codificar resposta")
	}
}
