package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro para autenticação
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrUserLocked            = "AUTH_004" // Usuário bloqueado temporariamente
	ErrPasswordExpired       = "AUTH_005" // Senha expirada
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_009" // Usuário já existe

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de loja
	ErrTenantNotFound    = "TEN_001" // Loja não encontrada
	ErrTenantSlugTaken   = "TEN_002" // Slug já utilizado
	ErrTenantCannotSell  = "TEN_003" // Loja sem conta verificada ou assinatura ativa
	ErrTenantInvalidSlug = "TEN_004" // Slug inválido
	ErrTenantNotOwned    = "TEN_005" // Usuário não administra a loja

	// Erros de pedido
	ErrOrderNotFound     = "ORD_001" // Pedido não encontrado
	ErrOrderInvalidItems = "ORD_002" // Itens do pedido inválidos
	ErrOrderOutOfStock   = "ORD_003" // Produto sem estoque suficiente

	// Erros de pagamento
	ErrPaymentInvalidSignature = "PAY_001" // Assinatura do pagamento inválida
	ErrPaymentNotConfigured    = "PAY_002" // Gateway de pagamento não configurado
	ErrPaymentInvalidAmounts   = "PAY_003" // Valores do pagamento inconsistentes

	// Erros de catálogo
	ErrCategoryNotFound = "CAT_001" // Categoria não encontrada
	ErrProductNotFound  = "CAT_002" // Produto não encontrado
	ErrInvalidPrice     = "CAT_003" // Preço inválido
	ErrCatalogSlugTaken = "CAT_004" // Slug de produto ou categoria já utilizado

	// Erros de avaliação
	ErrReviewDuplicate = "REV_001" // Cliente já avaliou o produto

	// Erros de assinatura
	ErrPlanNotFound = "SUB_001" // Plano não encontrado ou inativo

	// Erros de verificação bancária
	ErrBankVerificationFailed = "BNK_001" // Conta bancária não confirmada
	ErrBankNotConfigured      = "BNK_002" // Verificação bancária não configurada

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrUserLocked:            http.StatusForbidden,
	ErrPasswordExpired:       http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrTenantNotFound:        http.StatusNotFound,
	ErrTenantSlugTaken:       http.StatusConflict,
	ErrTenantCannotSell:      http.StatusUnprocessableEntity,
	ErrTenantInvalidSlug:     http.StatusBadRequest,
	ErrTenantNotOwned:        http.StatusForbidden,
	ErrOrderNotFound:         http.StatusNotFound,
	ErrOrderInvalidItems:     http.StatusBadRequest,
	ErrOrderOutOfStock:       http.StatusConflict,

	ErrPaymentInvalidSignature: http.StatusUnauthorized,
	ErrPaymentNotConfigured:    http.StatusInternalServerError,
	ErrPaymentInvalidAmounts:   http.StatusUnprocessableEntity,
	ErrCategoryNotFound:        http.StatusNotFound,
	ErrProductNotFound:         http.StatusNotFound,
	ErrInvalidPrice:            http.StatusBadRequest,
	ErrCatalogSlugTaken:        http.StatusConflict,
	ErrReviewDuplicate:         http.StatusConflict,
	ErrPlanNotFound:            http.StatusNotFound,
	ErrBankVerificationFailed:  http.StatusUnprocessableEntity,
	ErrBankNotConfigured:       http.StatusServiceUnavailable,

	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
	ErrExternalService:   http.StatusBadGateway,
	ErrCommunication:     http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
// HTTPStatus retorna o status HTTP de um código de erro. Códigos desconhecidos respondem 500.
func HTTPStatus(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status := HTTPStatus(code)

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
