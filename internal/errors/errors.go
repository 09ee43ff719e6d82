// errors стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает ошибку сервисного слоя, а на выход даёт:
//   - HTTP-статус по виду доменной ошибки (apperr.Kind);
//   - стабильный машиночитаемый code и безопасное message.
//
// Маппинг тотальный: каждому виду соответствует ровно один статус,
// всё, что не является доменной ошибкой, становится 500/internal без
// деталей (детали остаются только в логе).
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/bank-backoffice/internal/apperr"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError: единый формат для фронта.
// Code: короткий стабильный код (ACCOUNT_ALREADY_CLOSED, VALIDATION_TCKN, ...).
// Message: безопасное человекочитаемое описание.
// RequestID: прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse: корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

var internal = ErrorResponse{Error: APIError{Code: "internal", Message: "internal error"}}

// ToHTTP конвертирует ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil - программная ошибка вызова: 500/internal, чтобы не
//     послать "200 OK" с телом ошибки;
//   - доменная ошибка (*apperr.Error) - статус по Kind, code/message из ошибки;
//   - отмена клиентом - 499, истёкший дедлайн - 504;
//   - прочее - 500/internal.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, internal
	}

	if e, ok := apperr.From(err); ok {
		return StatusFromKind(e.Kind), ErrorResponse{
			Error: APIError{
				Code:    e.Code,
				Message: e.Message,
			},
		}
	}

	switch {
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, ErrorResponse{Error: APIError{Code: "canceled", Message: "canceled"}}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrorResponse{Error: APIError{Code: "deadline_exceeded", Message: "deadline exceeded"}}
	}

	return http.StatusInternalServerError, internal
}

// StatusFromKind: таблица вид -> HTTP-статус:
//   - Validation -> 400
//   - NotFound -> 404
//   - Conflict (уже закрыт, дубликат) -> 409
//   - BusinessRule (валюта, получатель выплаты) -> 400
//   - Unauthenticated -> 401
//   - Unavailable (хранилище сессий) -> 503
//   - Internal -> 500
func StatusFromKind(k apperr.Kind) int {
	switch k {
	case apperr.KindValidation, apperr.KindBusinessRule:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError: хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
