package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/bank-backoffice/internal/metrics"
	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/pkg/log"
	"github.com/pribylovaa/bank-backoffice/internal/pkg/redact"
	"github.com/pribylovaa/bank-backoffice/internal/storage"
	"github.com/pribylovaa/bank-backoffice/internal/token"
)

const minPasswordLen = 6

// Signup регистрирует сотрудника.
func (s *Service) Signup(ctx context.Context, username, password string) (uuid.UUID, error) {
	const op = "service.auth.Signup"

	username = strings.TrimSpace(username)
	if !isNationalID(username) || len(password) < minPasswordLen {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrCredentialsFormat)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrUserExists)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("user_signed_up", slog.String("username", redact.NationalID(username)))

	return user.ID, nil
}

// Login проверяет пароль и открывает сессию: access + refresh, записи
// session/sliding/rtk в хранилище сессий.
func (s *Service) Login(ctx context.Context, username, password string) (*models.TokenPair, error) {
	const op = "service.auth.Login"

	username = strings.TrimSpace(username)
	if !isNationalID(username) || password == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrCredentialsFormat)
	}

	user, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			metrics.AuthEvents.WithLabelValues("login", metrics.ResultError).Inc()
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		metrics.AuthEvents.WithLabelValues("login", metrics.ResultError).Inc()
		log.From(ctx).Warn("login_bad_password", slog.String("username", redact.NationalID(username)))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := s.openSession(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.AuthEvents.WithLabelValues("login", metrics.ResultOK).Inc()

	return pair, nil
}

// Refresh выполняет ротацию: проверяет refresh-токен, атомарно удаляет его
// запись и выпускает новую пару. Повторное предъявление уже использованного
// токена даёт ErrRefreshNotRecognized.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "service.auth.Refresh"

	lg := log.From(ctx)

	if refreshToken == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrRefreshMissing)
	}

	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		metrics.AuthEvents.WithLabelValues("refresh", metrics.ResultError).Inc()
		return nil, fmt.Errorf("%s: %w", op, mapTokenErr(err))
	}

	ok, err := s.sessions.ConsumeRefresh(ctx, claims.JTI, claims.Subject)
	if err != nil {
		lg.Error("session_store_unavailable",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrSessionStoreUnavailable)
	}

	if !ok {
		metrics.AuthEvents.WithLabelValues("refresh", metrics.ResultError).Inc()
		lg.Warn("refresh_not_recognized", slog.String("jti", claims.JTI))
		return nil, fmt.Errorf("%s: %w", op, ErrRefreshNotRecognized)
	}

	pair, err := s.openSession(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.AuthEvents.WithLabelValues("refresh", metrics.ResultOK).Inc()

	return pair, nil
}

// Logout отзывает access-токен (чёрный список на остаток его жизни,
// удаление session/sliding) и удаляет запись refresh-токена.
// Невалидные или просроченные токены пропускаются: отзывать нечего.
func (s *Service) Logout(ctx context.Context, accessToken, refreshToken string) error {
	const op = "service.auth.Logout"

	lg := log.From(ctx)

	if accessToken != "" {
		if claims, err := s.tokens.VerifyAccess(accessToken); err == nil {
			if err := s.sessions.Revoke(ctx, claims.JTI, claims.Remaining(s.now())); err != nil {
				lg.Error("session_store_unavailable",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
				return fmt.Errorf("%s: %w", op, ErrSessionStoreUnavailable)
			}
			lg.Info("access_revoked", slog.String("jti", claims.JTI))
		}
	}

	if refreshToken != "" {
		if claims, err := s.tokens.VerifyRefresh(refreshToken); err == nil {
			if err := s.sessions.DeleteRefresh(ctx, claims.JTI); err != nil {
				lg.Error("session_store_unavailable",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
				return fmt.Errorf("%s: %w", op, ErrSessionStoreUnavailable)
			}
		}
	}

	metrics.AuthEvents.WithLabelValues("logout", metrics.ResultOK).Inc()

	return nil
}

// Authenticate: проверка bearer-токена для Session Guard:
// подпись и срок, затем чёрный список. Недоступность хранилища сессий
// отклоняет запрос: отозванный токен не должен пройти молча.
// При включённой скользящей сессии продлевает sliding-запись.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (*models.Principal, error) {
	const op = "service.auth.Authenticate"

	lg := log.From(ctx)

	if accessToken == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingToken)
	}

	claims, err := s.tokens.VerifyAccess(accessToken)
	if err != nil {
		metrics.AuthEvents.WithLabelValues("guard", metrics.ResultError).Inc()
		return nil, fmt.Errorf("%s: %w", op, mapTokenErr(err))
	}

	revoked, err := s.sessions.IsBlacklisted(ctx, claims.JTI)
	if err != nil {
		lg.Error("session_store_unavailable",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrSessionStoreUnavailable)
	}

	if revoked {
		metrics.AuthEvents.WithLabelValues("guard", metrics.ResultError).Inc()
		lg.Warn("revoked_token_rejected", slog.String("jti", claims.JTI))
		return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	if s.cfg.SlidingEnabled() {
		if err := s.sessions.TouchSliding(ctx, claims.JTI, claims.Subject, s.cfg.SlidingTTL); err != nil {
			lg.Warn("sliding_touch_failed", slog.String("err", err.Error()))
		}
	}

	return &models.Principal{
		Subject:   claims.Subject,
		JTI:       claims.JTI,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// openSession выпускает access+refresh для subject и регистрирует их
// в хранилище сессий.
func (s *Service) openSession(ctx context.Context, subject string) (*models.TokenPair, error) {
	const op = "service.auth.openSession"

	lg := log.From(ctx)

	access, err := s.tokens.IssueAccess(subject)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refresh, err := s.tokens.IssueRefresh(subject)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	storeErr := s.sessions.SaveSession(ctx, access.JTI, subject, access.ExpiresIn)
	if storeErr == nil && s.cfg.SlidingEnabled() {
		storeErr = s.sessions.TouchSliding(ctx, access.JTI, subject, s.cfg.SlidingTTL)
	}
	if storeErr == nil {
		storeErr = s.sessions.SaveRefresh(ctx, refresh.JTI, subject, refresh.ExpiresIn)
	}
	if storeErr != nil {
		lg.Error("session_store_unavailable",
			slog.String("op", op),
			slog.String("err", storeErr.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrSessionStoreUnavailable)
	}

	return &models.TokenPair{
		AccessToken:      access.Token,
		AccessJTI:        access.JTI,
		AccessExpiresIn:  access.ExpiresIn,
		RefreshToken:     refresh.Token,
		RefreshExpiresAt: refresh.ExpiresAt,
	}, nil
}

// mapTokenErr переводит ошибки пакета token в доменные.
func mapTokenErr(err error) error {
	if errors.Is(err, token.ErrExpired) {
		return ErrTokenExpired
	}

	return ErrInvalidToken
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// isNationalID: ровно 11 цифр.
func isNationalID(s string) bool {
	if len(s) != 11 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
