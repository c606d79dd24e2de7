package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/rental-insights-api/pkg/apiErrors"
	"github.com/vfg2006/rental-insights-api/pkg/log"
)

// acima disso a requisição é registrada como lenta
const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware gera o id de correlação e registra início e fim de cada requisição
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			requestLogger := log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
			})

			if log.IsDevelopment() {
				requestLogger.Info("→ Iniciando requisição")
			} else {
				requestLogger.WithFields(log.Fields{
					"remote_addr": r.RemoteAddr,
					"query":       r.URL.RawQuery,
					"user_agent":  r.UserAgent(),
				}).Info("Requisição iniciada")
			}

			next.ServeHTTP(lrw, r)

			responseTime := time.Since(startTime)
			logger := requestLogger.WithFields(log.Fields{
				"status_code": lrw.statusCode,
				"duration_ms": responseTime.Milliseconds(),
			})

			message := fmt.Sprintf("Requisição finalizada em %s", formatDuration(responseTime))
			switch {
			case lrw.statusCode >= 500:
				logger.Error(message)
			case lrw.statusCode >= 400:
				logger.Warn(message)
			default:
				logger.Info(message)
			}

			if responseTime > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s %s", r.Method, r.URL.Path)
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status code da resposta
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware recupera panics, registra a pilha e responde 500
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackTrace := string(stack[:runtime.Stack(stack, false)])

					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"panic_error": err,
						"method":      r.Method,
						"path":        r.URL.Path,
					})
					logger.Error("Erro não tratado na aplicação")

					if log.IsDevelopment() {
						fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n", stackTrace)
					} else {
						logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
					}

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
