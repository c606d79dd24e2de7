package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/rental-insights-api/internal/config"
	"github.com/vfg2006/rental-insights-api/pkg/apiErrors"
	"github.com/vfg2006/rental-insights-api/pkg/log"
)

type contextKey string

const (
	ContextKeySubject contextKey = "subject"
)

// rotas abertas mesmo com autenticação habilitada
var publicPaths = map[string]bool{
	"/healthcheck": true,
}

// AuthMiddleware exige um token HS256 assinado com o segredo compartilhado
func AuthMiddleware(cfg config.Auth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if authHeader == "" || tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Bearer token é obrigatório", nil)
				return
			}

			claims, err := ParseToken(cfg.Secret, tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Token rejeitado")

				if errors.Is(err, jwt.ErrTokenExpired) {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expirado", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySubject, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParseToken valida a assinatura e a expiração do token
func ParseToken(secret, tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// IssueToken gera um token para o sujeito com a validade informada
func IssueToken(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// SubjectFromContext retorna o sujeito do token validado, vazio quando a autenticação está desabilitada
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(ContextKeySubject).(string)
	return subject
}
