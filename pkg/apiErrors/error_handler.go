package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro retornados pela API
const (
	// Erros de autenticação (1000-1999)
	ErrMissingToken = "AUTH_001" // Token ausente
	ErrInvalidToken = "AUTH_006" // Token inválido
	ErrExpiredToken = "AUTH_007" // Token expirado

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidView         = "VAL_004" // Visão de apartamentos inválida
	ErrApartmentNotFound   = "VAL_005" // Apartamento não encontrado
	ErrRouteNotFound       = "VAL_006" // Rota inexistente

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrJobAlreadyRunning = "SRV_005" // Processo agendado já em execução
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingToken:        http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidView:         http.StatusBadRequest,
	ErrApartmentNotFound:   http.StatusNotFound,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrJobAlreadyRunning:   http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código, 500 quando desconhecido
func StatusFor(code string) int {
	if status, exists := httpStatusMap[code]; exists {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}
