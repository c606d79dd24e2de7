package handler

import (
	"net/http"

	"github.com/vfg2006/rental-insights-api/internal/api/handler/router"
	"github.com/vfg2006/rental-insights-api/internal/usecases/insighting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Analytics(service insighting.Insighter) []router.Route {
	return []router.Route{
		{Path: "/v1/analytics/monthly", Method: http.MethodGet, Handler: GetMonthly(service)},
		{Path: "/v1/analytics/occupancy", Method: http.MethodGet, Handler: GetOccupancy(service)},
		{Path: "/v1/analytics/gaps", Method: http.MethodGet, Handler: GetGaps(service)},
		{Path: "/v1/analytics/lead-time", Method: http.MethodGet, Handler: GetLeadTime(service)},
		{Path: "/v1/analytics/weekpart", Method: http.MethodGet, Handler: GetWeekpart(service)},
		{Path: "/v1/analytics/seasonal", Method: http.MethodGet, Handler: GetSeasonal(service)},
		{Path: "/v1/analytics/revpan", Method: http.MethodGet, Handler: GetRevPAN(service)},
		{Path: "/v1/analytics/pricing", Method: http.MethodGet, Handler: GetPricing(service)},
		{Path: "/v1/analytics/periods", Method: http.MethodGet, Handler: GetAvailablePeriods(service)},
		{Path: "/v1/analytics/ledger", Method: http.MethodGet, Handler: GetLedgerEntries(service)},
		{Path: "/v1/analytics/ledger/summary", Method: http.MethodGet, Handler: GetLedgerSummary(service)},
		{Path: "/v1/analytics/refresh", Method: http.MethodPost, Handler: RefreshLedger(service)},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/:type/status",
			Method:  http.MethodGet,
			Handler: GetCronJobStatus(services),
		},
		{
			Path:    "/v1/cron",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
