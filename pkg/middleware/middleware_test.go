package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/rental-insights-api/internal/config"
	"github.com/vfg2006/rental-insights-api/pkg/apiErrors"
)

const testSecret = "segredo-de-teste"

func subjectEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(SubjectFromContext(r.Context())))
	})
}

func TestAuthMiddleware(t *testing.T) {
	valid, err := IssueToken(testSecret, "painel", time.Hour)
	require.NoError(t, err)
	expired, err := IssueToken(testSecret, "painel", -time.Hour)
	require.NoError(t, err)
	foreign, err := IssueToken("outro-segredo", "painel", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name     string
		cfg      config.Auth
		path     string
		header   string
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Autenticação desabilitada libera todas as rotas",
			cfg:  config.Auth{Secret: testSecret, Enabled: false},
			path: "/v1/analytics/monthly",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Empty(t, rec.Body.String())
			},
		},
		{
			name: "Healthcheck não exige token",
			cfg:  config.Auth{Secret: testSecret, Enabled: true},
			path: "/healthcheck",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name: "Token ausente",
			cfg:  config.Auth{Secret: testSecret, Enabled: true},
			path: "/v1/analytics/monthly",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrMissingToken)
			},
		},
		{
			name:   "Token válido injeta o sujeito no contexto",
			cfg:    config.Auth{Secret: testSecret, Enabled: true},
			path:   "/v1/analytics/monthly",
			header: "Bearer " + valid,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "painel", rec.Body.String())
			},
		},
		{
			name:   "Token expirado",
			cfg:    config.Auth{Secret: testSecret, Enabled: true},
			path:   "/v1/analytics/monthly",
			header: "Bearer " + expired,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrExpiredToken)
			},
		},
		{
			name:   "Token assinado com outro segredo",
			cfg:    config.Auth{Secret: testSecret, Enabled: true},
			path:   "/v1/analytics/monthly",
			header: "Bearer " + foreign,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.cfg)(subjectEcho()).ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(subjectEcho())

	t.Run("Origem permitida recebe os cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/periods", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight responde sem chamar o handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/analytics/periods", nil)
		req.Header.Set("Origin", "https://desconhecido.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
