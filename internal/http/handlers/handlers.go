package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/bank-backoffice/internal/apperr"
	"github.com/pribylovaa/bank-backoffice/internal/assistant"
	apierrors "github.com/pribylovaa/bank-backoffice/internal/errors"
	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/pkg/log"
	"github.com/pribylovaa/bank-backoffice/internal/service"
)

// AuthService: сессии сотрудников.
type AuthService interface {
	Signup(ctx context.Context, username, password string) (uuid.UUID, error)
	Login(ctx context.Context, username, password string) (*models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
}

// CustomerService: клиенты.
type CustomerService interface {
	CreateCustomer(ctx context.Context, in models.NewCustomer) (*models.CreatedCustomer, error)
	CustomerSummary(ctx context.Context, nationalID string) (*models.CustomerSummary, error)
	ListCustomersByBranch(ctx context.Context, f models.CustomerFilter) (*models.CustomerPage, error)
}

// AccountService: открытие и закрытие счетов.
type AccountService interface {
	OpenAccount(ctx context.Context, in service.OpenAccountInput) (*models.Account, error)
	CloseAccount(ctx context.Context, req models.CloseRequest) (*models.ClosureReceipt, error)
}

// Assistant: чат-ассистент.
type Assistant interface {
	Chat(ctx context.Context, in assistant.ChatInput, emit func(assistant.Event) error) error
}

// CookieConfig: параметры refresh-cookie.
type CookieConfig struct {
	Name   string
	Path   string
	Secure bool
}

// Handlers агрегирует зависимости хендлеров.
type Handlers struct {
	Auth      AuthService
	Customers CustomerService
	Accounts  AccountService
	Assistant Assistant
	Cookie    CookieConfig

	// ChatTimeout ограничивает весь диалог с ассистентом (0, без ограничения).
	ChatTimeout time.Duration
}

var errInvalidBody = apperr.New(apperr.KindValidation, "INVALID_BODY", "malformed request body")

// writeJSON: единый ответ JSON с нужным Content-Type.
// Ошибки выводим через writeError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// writeError пишет ответ об ошибке; детали 5xx остаются только в логе.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if status, _ := apierrors.ToHTTP(err); status >= http.StatusInternalServerError {
		log.From(r.Context()).Error("request_failed",
			slog.Int("status", status),
			slog.String("err", err.Error()),
		)
	}

	apierrors.WriteError(w, r, err)
}

// decodeStrict: строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// decodeOptional: как decodeStrict, но пустое тело допустимо.
func decodeOptional(r *http.Request, value any) error {
	if r.Body == nil {
		return nil
	}

	err := decodeStrict(r, value)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
