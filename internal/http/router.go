package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	apierrors "github.com/pribylovaa/bank-backoffice/internal/errors"
	"github.com/pribylovaa/bank-backoffice/internal/http/handlers"
	"github.com/pribylovaa/bank-backoffice/internal/http/middleware"
)

// Options: параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой, роуты регистрируются на корне.

	AllowedOrigins []string
	// LoginRateLimit: попыток входа в минуту с одного IP (<=0, без ограничения).
	LoginRateLimit int
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
// auth проверяет bearer-токены защищённых маршрутов.
func NewRouter(h *handlers.Handlers, auth middleware.Authenticator, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),
		middleware.RequestID(),
		middleware.Logging(opts.Logger),
		middleware.Metrics(),
		cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           int((10 * time.Minute).Seconds()),
		}),
	)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, auth, opts)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, auth, opts)
	return root
}

// registerRoutes: единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, auth middleware.Authenticator, opts Options) {
	guard := middleware.SessionGuard(auth)

	r.Group(func(r chi.Router) {
		// Общий дедлайн; поток ассистента ограничивается отдельно.
		r.Use(middleware.Timeout(opts.Timeout))

		// auth
		r.Post("/auth/signup", h.Signup)
		r.With(loginLimiter(opts.LoginRateLimit)).Post("/auth/login", h.Login)
		r.Post("/auth/refresh", h.Refresh)
		r.Post("/auth/logout", h.Logout)

		r.Group(func(r chi.Router) {
			r.Use(guard)

			r.Get("/auth/me", h.Me)

			// customers
			r.Post("/customers", h.CreateCustomer)
			r.Get("/customers/summary", h.CustomerSummary)
			r.Get("/customers/by-branch", h.ListCustomersByBranch)

			// accounts
			r.Post("/accounts", h.OpenAccount)
			r.Post("/accounts/{id}/close", h.CloseAccount)
		})
	})

	// assistant
	if h.Assistant != nil {
		r.With(guard).Post("/ai/chat", h.Chat)
	}
}

func loginLimiter(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(perMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			resp := apierrors.ErrorResponse{Error: apierrors.APIError{
				Code:      "RATE_LIMITED",
				Message:   "too many login attempts",
				RequestID: r.Header.Get("X-Request-Id"),
			}}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(resp)
		}),
	)
}
