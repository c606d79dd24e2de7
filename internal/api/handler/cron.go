package handler

import (
	"net/http"
	"slices"

	"github.com/julienschmidt/httprouter"
	"github.com/samber/lo"
	"github.com/vfg2006/rental-insights-api/pkg/apiErrors"
	"github.com/vfg2006/rental-insights-api/pkg/log"
)

// CronJobTypeLedgerRefresh identifica a reconstrução periódica do livro de noites
const CronJobTypeLedgerRefresh = "ledger-refresh"

// ManualSyncer é um processo agendado que também pode ser disparado manualmente
type ManualSyncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os processos agendados disponíveis por tipo
type CronJobServices map[string]ManualSyncer

// RunCronJob executa manualmente um processo agendado
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType, service, ok := services.lookup(w, r)
		if !ok {
			return
		}
		logger := log.ForContext(r.Context()).WithField("cron_type", cronType)

		if !service.TriggerManualSync() {
			logger.Info("cron: processo já em execução")
			apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, "Processo já está em execução", nil)
			return
		}

		logger.Info("cron: processo iniciado manualmente")
		writeJSONStatus(w, logger, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status de todos os processos agendados
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for cronType, service := range services {
			if service != nil {
				status[cronType] = service.GetStatus()
			}
		}

		writeJSON(w, log.ForContext(r.Context()), status)
	})
}

// GetCronJobStatus retorna o status de um processo agendado
func GetCronJobStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, service, ok := services.lookup(w, r)
		if !ok {
			return
		}

		writeJSON(w, log.ForContext(r.Context()), service.GetStatus())
	})
}

// lookup resolve o tipo da URL; responde VAL_001 quando não existe
func (s CronJobServices) lookup(w http.ResponseWriter, r *http.Request) (string, ManualSyncer, bool) {
	cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

	service, exists := s[cronType]
	if !exists || service == nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
			"accepted": s.types(),
		})
		return cronType, nil, false
	}

	return cronType, service, true
}

func (s CronJobServices) types() []string {
	types := lo.Keys(s)
	slices.Sort(types)
	return types
}
