package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	apierrors "github.com/pribylovaa/bank-backoffice/internal/errors"
	"github.com/pribylovaa/bank-backoffice/internal/models"
	logctx "github.com/pribylovaa/bank-backoffice/internal/pkg/log"
	"github.com/pribylovaa/bank-backoffice/internal/pkg/redact"
)

// Authenticator проверяет bearer-токен (подпись, срок, чёрный список).
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*models.Principal, error)
}

type principalKey struct{}

// SessionGuard допускает запрос только с действующим access-токеном.
// Отказ пишется через errors.WriteError: 401 для отсутствующего,
// битого, просроченного или отозванного токена, 503 если хранилище
// сессий недоступно.
func SessionGuard(auth Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := auth.Authenticate(r.Context(), BearerToken(r))
			if err != nil {
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey{}, p)
			ctx = logctx.With(ctx, slog.String("subject", redact.NationalID(p.Subject)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFrom возвращает субъекта, допущенного SessionGuard.
func PrincipalFrom(ctx context.Context) (*models.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*models.Principal)
	return p, ok && p != nil
}

// BearerToken извлекает токен из "Authorization: Bearer <token>".
func BearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")

	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
