// token выпускает и проверяет подписанные JWT двух видов: короткоживущий
// access и долгоживущий refresh. Виды подписываются разными секретами,
// поэтому утечка одного ключа не позволяет подделать токен другого вида.
//
// Каждый токен несёт уникальный jti (UUID), ключ для учёта сессий,
// чёрного списка и ротации refresh в хранилище сессий. Пакет не хранит
// состояние: учёт jti выполняет вызывающая сторона.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/bank-backoffice/internal/config"
)

var (
	// ErrInvalidToken: формат, подпись, алгоритм, издатель или вид токена не совпадают.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpired: подпись верна, но срок действия истёк.
	ErrExpired = errors.New("token expired")
)

// Kind: вид токена, кладётся в claim "typ".
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Допуск на рассинхрон часов.
const leeway = 5 * time.Second

// Issued: выпущенный токен.
type Issued struct {
	Token     string
	JTI       string
	ExpiresIn time.Duration
	ExpiresAt time.Time
}

// Claims: полезная нагрузка проверенного токена.
type Claims struct {
	Subject   string
	JTI       string
	Kind      Kind
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Remaining: сколько осталось жить токену на момент now.
func (c Claims) Remaining(now time.Time) time.Duration {
	return c.ExpiresAt.Sub(now)
}

type claims struct {
	Type Kind `json:"typ"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет токены. Безопасен для конкурентного использования.
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	now           func() time.Time
}

// New создаёт Manager из конфигурации auth.
func New(cfg config.AuthConfig) *Manager {
	return &Manager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
		issuer:        cfg.Issuer,
		now:           time.Now,
	}
}

// IssueAccess выпускает access-токен для subject.
func (m *Manager) IssueAccess(subject string) (Issued, error) {
	return m.issue(KindAccess, subject)
}

// IssueRefresh выпускает refresh-токен для subject. Сохранение jti с тем же
// TTL: ответственность вызывающего.
func (m *Manager) IssueRefresh(subject string) (Issued, error) {
	return m.issue(KindRefresh, subject)
}

// VerifyAccess проверяет access-токен.
func (m *Manager) VerifyAccess(tok string) (Claims, error) {
	return m.verify(KindAccess, tok)
}

// VerifyRefresh проверяет refresh-токен.
func (m *Manager) VerifyRefresh(tok string) (Claims, error) {
	return m.verify(KindRefresh, tok)
}

// AccessTTL: время жизни access-токена.
func (m *Manager) AccessTTL() time.Duration { return m.accessTTL }

// RefreshTTL: время жизни refresh-токена.
func (m *Manager) RefreshTTL() time.Duration { return m.refreshTTL }

func (m *Manager) params(kind Kind) ([]byte, time.Duration) {
	if kind == KindRefresh {
		return m.refreshSecret, m.refreshTTL
	}

	return m.accessSecret, m.accessTTL
}

func (m *Manager) issue(kind Kind, subject string) (Issued, error) {
	const op = "token.issue"

	if subject == "" {
		return Issued{}, fmt.Errorf("%s: empty subject", op)
	}

	secret, ttl := m.params(kind)
	now := m.now().UTC()
	exp := now.Add(ttl)
	jti := uuid.NewString()

	c := claims{
		Type: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   subject,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
	if err != nil {
		return Issued{}, fmt.Errorf("%s: %w", op, err)
	}

	return Issued{
		Token:     signed,
		JTI:       jti,
		ExpiresIn: ttl,
		ExpiresAt: exp.Truncate(time.Second),
	}, nil
}

func (m *Manager) verify(kind Kind, tok string) (Claims, error) {
	const op = "token.verify"

	secret, _ := m.params(kind)

	parsed, err := jwt.ParseWithClaims(tok, &claims{},
		func(*jwt.Token) (interface{}, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(leeway),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, fmt.Errorf("%s: %w", op, ErrExpired)
		}

		return Claims{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.Type != kind || c.ID == "" || c.Subject == "" {
		return Claims{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	out := Claims{
		Subject: c.Subject,
		JTI:     c.ID,
		Kind:    c.Type,
	}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}

	return out, nil
}
