package insighting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/rental-insights-api/pkg/apiErrors"
)

// Erros específicos do contexto de métricas
var (
	ErrInvalidView       = errors.New("visão inválida")
	ErrApartmentNotFound = errors.New("apartamento não encontrado")
	ErrLoadBookings      = errors.New("erro ao carregar faturas")
	ErrLoadApartments    = errors.New("erro ao carregar apartamentos")
	ErrBuildLedger       = errors.New("erro ao montar o livro de noites")
)

// InsightError é um erro com contexto adicional para a camada HTTP
type InsightError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError cria um novo InsightError
func NewInsightError(err error, code string, details string) *InsightError {
	return &InsightError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// ErrorCode extrai o código de API do erro, SRV_001 quando não há um
func ErrorCode(err error) string {
	var insightErr *InsightError
	if errors.As(err, &insightErr) && insightErr.Code != "" {
		return insightErr.Code
	}
	return apiErrors.ErrInternalServer
}
