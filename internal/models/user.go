package models

import (
	"time"

	"github.com/google/uuid"
)

// User: сотрудник бэк-офиса. Username, 11-значный национальный
// идентификатор сотрудника.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// TokenPair: результат входа/обновления: access отдаётся в теле ответа,
// refresh уходит в httpOnly-cookie.
type TokenPair struct {
	AccessToken      string
	AccessJTI        string
	AccessExpiresIn  time.Duration
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// Principal: субъект запроса, допущенный Session Guard.
type Principal struct {
	Subject   string    `json:"subject"`
	JTI       string    `json:"jti"`
	ExpiresAt time.Time `json:"expires_at"`
}
