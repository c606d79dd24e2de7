package insighting

import (
	"context"

	"github.com/vfg2006/rental-insights-api/internal/domain"
)

// SnapshotLoader mantém o livro de noites atualizado
type SnapshotLoader interface {
	// Refresh recarrega os registros brutos e instala o livro resultante, se ainda for o mais recente
	Refresh(ctx context.Context) (*domain.Ledger, error)

	// Snapshot retorna o livro instalado, carregando na primeira chamada
	Snapshot(ctx context.Context) (*domain.Ledger, error)
}

// Insighter expõe as métricas calculadas sobre o livro de noites, uma série por conjunto de apartamentos
type Insighter interface {
	SnapshotLoader

	Monthly(ctx context.Context, view domain.View) ([]domain.Series[[]domain.MonthlyPerformanceBucket], error)
	Occupancy(ctx context.Context, view domain.View) ([]domain.Series[domain.OccupancyReport], error)
	Gaps(ctx context.Context, view domain.View) ([]domain.Series[domain.GapReport], error)
	LeadTime(ctx context.Context, view domain.View) ([]domain.Series[[]domain.LeadTimeBucketRow], error)
	Weekpart(ctx context.Context, view domain.View) ([]domain.Series[domain.WeekpartMetrics], error)
	Seasonal(ctx context.Context, view domain.View) ([]domain.Series[[]domain.SeasonalSummary], error)
	RevPAN(ctx context.Context, view domain.View, cutoffMonth int) ([]domain.Series[domain.RevPanReport], error)
	Pricing(ctx context.Context, view domain.View) ([]domain.Series[[]domain.PricingRecommendation], error)
	Entries(ctx context.Context, view domain.View, preciseOnly bool) ([]domain.Series[[]domain.NightlyLedgerEntry], error)
	Periods(ctx context.Context) (*domain.AvailablePeriods, error)
}
