package insighting

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
	"github.com/vfg2006/rental-insights-api/infrastructure/repository"
	"github.com/vfg2006/rental-insights-api/internal/config"
	"github.com/vfg2006/rental-insights-api/internal/domain"
	"github.com/vfg2006/rental-insights-api/internal/usecases/ledger"
	"github.com/vfg2006/rental-insights-api/internal/usecases/metrics"
	"github.com/vfg2006/rental-insights-api/pkg/apiErrors"
	"github.com/vfg2006/rental-insights-api/pkg/log"
)

// snapshot é o livro instalado junto com o universo de apartamentos da visão total
type snapshot struct {
	generation uint64
	ledger     *domain.Ledger
	apartments []string
}

// Service implementa Insighter. Cada Refresh recebe uma geração crescente e só é instalado
// se nenhuma geração mais nova já tiver sido instalada.
type Service struct {
	cfg           config.Analytics
	bookingRepo   repository.BookingRepository
	apartmentRepo repository.ApartmentRepository
	cache         *ledger.Cache
	now           func() time.Time

	generation atomic.Uint64
	mu         sync.RWMutex
	current    *snapshot
}

var _ Insighter = (*Service)(nil)

// NewService cria uma nova instância do serviço de métricas
func NewService(
	cfg config.Analytics,
	bookingRepo repository.BookingRepository,
	apartmentRepo repository.ApartmentRepository,
) *Service {
	return &Service{
		cfg:           cfg,
		bookingRepo:   bookingRepo,
		apartmentRepo: apartmentRepo,
		cache:         ledger.NewCache(cfg.MinYear()),
		now:           time.Now,
	}
}

// WithClock substitui o relógio usado para o ano corrente da série histórica
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Invalidate descarta o livro memorizado; o próximo Refresh reconstrói mesmo sem mudanças
func (s *Service) Invalidate() {
	s.cache.Invalidate()
}

func (s *Service) Refresh(ctx context.Context) (*domain.Ledger, error) {
	generation := s.generation.Add(1)
	logger := log.ForContext(ctx)

	raws, err := s.bookingRepo.ListRawBookings(ctx, domain.BookingFilter{FromYear: s.cfg.MinYear()})
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar faturas no repositório")
		return nil, NewInsightError(ErrLoadBookings, apiErrors.ErrDatabaseOperation, err.Error())
	}

	registered, err := s.apartmentRepo.ListApartmentIDs(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar apartamentos no repositório")
		return nil, NewInsightError(ErrLoadApartments, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if len(registered) == 0 {
		registered = s.cfg.Apartments
	}

	built, err := s.cache.Get(raws)
	if err != nil {
		logger.WithError(err).Error("Erro ao montar o livro de noites")
		return nil, NewInsightError(ErrBuildLedger, apiErrors.ErrInternalServer, err.Error())
	}

	installed := s.install(ctx, &snapshot{
		generation: generation,
		ledger:     built,
		apartments: domain.NewApartmentSet("total", lo.Union(registered, built.Apartments)...).IDs,
	})

	return installed.ledger, nil
}

// install aplica a regra de última chamada vence; uma geração mais antiga é descartada
func (s *Service) install(ctx context.Context, candidate *snapshot) *snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"ledger_id":         candidate.ledger.ID,
		"ledger_generation": candidate.generation,
	})

	if s.current != nil && s.current.generation > candidate.generation {
		logger.Debug("Resultado superado por uma atualização mais recente, descartando")
		return s.current
	}

	stats := candidate.ledger.Stats
	logger.WithFields(log.Fields{
		"ledger_raw_records":                 stats.RawRecords,
		"ledger_entries":                     stats.Entries,
		"ledger_discarded_manual":            stats.DiscardedManual,
		"ledger_skipped_non_positive_nights": stats.SkippedNonPositive,
		"ledger_malformed_dates":             stats.MalformedCheckIn + stats.MalformedBookingDate,
		"ledger_dropped_approximate_nights":  stats.DroppedApproximateNights,
		"apartment_count":                    len(candidate.apartments),
	}).Info("Livro de noites instalado")

	s.current = candidate
	return candidate
}

func (s *Service) Snapshot(ctx context.Context) (*domain.Ledger, error) {
	current, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return current.ledger, nil
}

func (s *Service) snapshot(ctx context.Context) (*snapshot, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current != nil {
		return current, nil
	}

	if _, err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, nil
}

// resolve converte a visão em conjuntos de apartamentos sobre o livro instalado
func (s *Service) resolve(ctx context.Context, view domain.View) (*snapshot, []domain.ApartmentSet, error) {
	current, err := s.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	sets, err := domain.ResolveView(view, current.apartments)
	if err != nil {
		if errors.Is(err, domain.ErrApartmentNotInLedger) {
			return nil, nil, NewInsightError(ErrApartmentNotFound, apiErrors.ErrApartmentNotFound, view.ApartmentID)
		}
		return nil, nil, NewInsightError(ErrInvalidView, apiErrors.ErrInvalidView, err.Error())
	}

	return current, sets, nil
}

// perSet executa a métrica para cada conjunto da visão
func perSet[T any](
	ctx context.Context,
	s *Service,
	view domain.View,
	compute func(current *snapshot, set domain.ApartmentSet) T,
) ([]domain.Series[T], error) {
	current, sets, err := s.resolve(ctx, view)
	if err != nil {
		return nil, err
	}

	series := make([]domain.Series[T], 0, len(sets))
	for _, set := range sets {
		series = append(series, domain.Series[T]{
			Label:      set.Label,
			Apartments: set.IDs,
			Data:       compute(current, set),
		})
	}
	return series, nil
}

func (s *Service) entries(current *snapshot, set domain.ApartmentSet, minYear int, preciseOnly bool) []domain.NightlyLedgerEntry {
	return metrics.FilterEntries(current.ledger.Entries, metrics.EntryFilter{
		Set:         set,
		MinYear:     minYear,
		PreciseOnly: preciseOnly,
	})
}

func (s *Service) Monthly(ctx context.Context, view domain.View) ([]domain.Series[[]domain.MonthlyPerformanceBucket], error) {
	return perSet(ctx, s, view, func(current *snapshot, set domain.ApartmentSet) []domain.MonthlyPerformanceBucket {
		return metrics.Timeline(s.entries(current, set, s.cfg.BaseYear, false), set.Size(), s.cfg.BaseYear, s.now().Year())
	})
}

func (s *Service) Occupancy(ctx context.Context, view domain.View) ([]domain.Series[domain.OccupancyReport], error) {
	return perSet(ctx, s, view, func(current *snapshot, set domain.ApartmentSet) domain.OccupancyReport {
		timeline := metrics.Timeline(s.entries(current, set, s.cfg.BaseYear, false), set.Size(), s.cfg.BaseYear, s.now().Year())
		return metrics.Occupancy(timeline)
	})
}

func (s *Service) Gaps(ctx context.Context, view domain.View) ([]domain.Series[domain.GapReport], error) {
	return perSet(ctx, s, view, func(current *snapshot, set domain.ApartmentSet) domain.GapReport {
		return metrics.Gaps(s.entries(current, set, s.cfg.GapMinYear, true))
	})
}

func (s *Service) LeadTime(ctx context.Context, view domain.View) ([]domain.Series[[]domain.LeadTimeBucketRow], error) {
	return perSet(ctx, s, view, func(current *snapshot, set domain.ApartmentSet) []domain.LeadTimeBucketRow {
		bookings := metrics.FilterBookings(current.ledger.Bookings, set, s.cfg.LeadTimeMinYear)
		return metrics.LeadTime(bookings)
	})
}

func (s *Service) Weekpart(ctx context.Context, view domain.View) ([]domain.Series[domain.WeekpartMetrics], error) {
	return perSet(ctx, s, view, func(current *snapshot, set domain.ApartmentSet) domain.WeekpartMetrics {
		return metrics.Weekpart(s.entries(current, set, s.cfg.WeekpartMinYear, true), set.Size())
	})
}

func (s *Service) Seasonal(ctx context.Context, view domain.View) ([]domain.Series[[]domain.SeasonalSummary], error) {
	return perSet(ctx, s, view, func(current *snapshot, set domain.ApartmentSet) []domain.SeasonalSummary {
		buckets := metrics.AggregateMonthly(s.entries(current, set, s.cfg.SeasonalMinYear, false), set.Size())
		return metrics.Seasonal(buckets, set.Size())
	})
}

func (s *Service) RevPAN(ctx context.Context, view domain.View, cutoffMonth int) ([]domain.Series[domain.RevPanReport], error) {
	return perSet(ctx, s, view, func(current *snapshot, set domain.ApartmentSet) domain.RevPanReport {
		buckets := metrics.AggregateMonthly(s.entries(current, set, s.cfg.BaseYear, false), set.Size())
		return metrics.RevPAN(buckets, set.Size(), cutoffMonth)
	})
}

func (s *Service) Pricing(ctx context.Context, view domain.View) ([]domain.Series[[]domain.PricingRecommendation], error) {
	return perSet(ctx, s, view, func(current *snapshot, set domain.ApartmentSet) []domain.PricingRecommendation {
		buckets := metrics.AggregateMonthly(s.entries(current, set, s.cfg.BaseYear, false), set.Size())
		return metrics.Pricing(metrics.RevPAN(buckets, set.Size(), 0).Monthly)
	})
}

func (s *Service) Entries(ctx context.Context, view domain.View, preciseOnly bool) ([]domain.Series[[]domain.NightlyLedgerEntry], error) {
	return perSet(ctx, s, view, func(current *snapshot, set domain.ApartmentSet) []domain.NightlyLedgerEntry {
		return s.entries(current, set, 0, preciseOnly)
	})
}

func (s *Service) Periods(ctx context.Context) (*domain.AvailablePeriods, error) {
	current, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	periods := metrics.Periods(current.ledger.Entries)
	return &periods, nil
}
