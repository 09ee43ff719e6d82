package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType: вид счёта.
type AccountType string

const (
	// AccountDemand: до востребования (без процентов), единственный
	// допустимый получатель выплаты при закрытии.
	AccountDemand AccountType = "DEMAND"
	// AccountTerm: срочный (процентный) счёт.
	AccountTerm AccountType = "TERM"
)

// ParseAccountType нормализует вид счёта. Принимаются также исторические
// обозначения VADESIZ (DEMAND) и VADELI (TERM).
func ParseAccountType(s string) (AccountType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEMAND", "VADESIZ":
		return AccountDemand, true
	case "TERM", "VADELI":
		return AccountTerm, true
	default:
		return "", false
	}
}

// AccountStatus: состояние счёта. CLOSED терминально.
type AccountStatus string

const (
	AccountActive AccountStatus = "ACTIVE"
	AccountClosed AccountStatus = "CLOSED"
)

// Account: счёт клиента.
type Account struct {
	ID           int64           `json:"id"`
	CustomerID   int64           `json:"customer_id"`
	AccountNo    string          `json:"account_no"`
	CurrencyCode string          `json:"currency_code"`
	AccountType  AccountType     `json:"account_type"`
	Balance      decimal.Decimal `json:"balance"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	SubNo        int             `json:"sub_no"`
	BranchID     int64           `json:"branch_id"`
	BranchCode   *int            `json:"branch_code,omitempty"`
	Status       AccountStatus   `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// IsActive: счёт ещё не закрыт.
func (a *Account) IsActive() bool { return a.Status == AccountActive }

// NewAccount: входные данные для открытия счёта. Номер счёта, sub_no и
// отделение назначаются хранилищем.
type NewAccount struct {
	CustomerID   int64
	CurrencyCode string
	AccountType  AccountType
	Balance      decimal.Decimal
	InterestRate decimal.Decimal
}

// AccountOverview: счёт вместе с отделением и владельцем.
type AccountOverview struct {
	Account  Account  `json:"account"`
	Branch   *Branch  `json:"branch,omitempty"`
	Customer Customer `json:"customer"`
}
