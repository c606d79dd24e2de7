package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rental-insights-api/internal/config"
	"github.com/vfg2006/rental-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/rental-insights-api/pkg/log"
)

// LedgerRefreshService reconstrói periodicamente o livro de noites a partir das faturas
type LedgerRefreshService struct {
	scheduler           *gocron.Scheduler
	config              config.LedgerRefresh
	loader              insighting.SnapshotLoader
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastLedgerID        string
	lastError           string
}

// NewLedgerRefreshService cria uma nova instância do agendador de atualização do livro
func NewLedgerRefreshService(loader insighting.SnapshotLoader, cfg config.LedgerRefresh) *LedgerRefreshService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"sync_enabled":  cfg.Enabled,
	}).Info("Configuração do agendador de atualização do livro de noites carregada")

	return &LedgerRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		loader:    loader,
	}
}

// Start inicia o agendador
func (s *LedgerRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização periódica do livro de noites desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do livro de noites")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do livro de noites: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do livro de noites")
		s.scheduler.Stop()
	}()

	return nil
}

// refresh executa uma reconstrução; execuções simultâneas são ignoradas
func (s *LedgerRefreshService) refresh() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do livro de noites já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	started := time.Now()
	s.lastSyncStartedAt = started
	s.syncMutex.Unlock()

	ctx, _ := log.WithCorrelationID(context.Background())
	ledger, err := s.loader.Refresh(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastLedgerID = ledger.ID
	}
	s.syncMutex.Unlock()

	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao atualizar o livro de noites")
	} else {
		log.ForContext(ctx).WithFields(log.Fields{
			"ledger_id":      ledger.ID,
			"ledger_entries": len(ledger.Entries),
			"duration_ms":    time.Since(started).Milliseconds(),
		}).Info("Livro de noites atualizado")
	}
}

// TriggerManualSync inicia manualmente uma atualização. Retorna false se já houver uma em andamento.
func (s *LedgerRefreshService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do livro de noites já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do livro de noites")
	go s.refresh()
	return true
}

// GetStatus retorna o status atual da atualização
func (s *LedgerRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_ledger_id":         s.lastLedgerID,
		"last_error":             s.lastError,
	}
}
