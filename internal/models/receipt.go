package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayoutMethod: способ выплаты остатка при закрытии счёта.
type PayoutMethod string

const (
	PayoutCash     PayoutMethod = "CASH"
	PayoutTransfer PayoutMethod = "TRANSFER"
)

// CloseRequest: входные данные закрытия счёта.
type CloseRequest struct {
	AccountID       int64
	PayoutMethod    PayoutMethod // пусто: не указан
	TargetAccountID *int64
}

// ClosedAccount: краткие сведения о закрытом счёте.
type ClosedAccount struct {
	ID           int64  `json:"id"`
	AccountNo    string `json:"account_no"`
	CurrencyCode string `json:"currency_code"`
}

// PayoutTarget: счёт, на который переведён остаток.
type PayoutTarget struct {
	ID           int64           `json:"id"`
	AccountNo    string          `json:"account_no"`
	CurrencyCode string          `json:"currency_code"`
	NewBalance   decimal.Decimal `json:"new_balance"`
}

// Payout: чем и сколько выплачено.
type Payout struct {
	Method PayoutMethod    `json:"method"`
	Amount decimal.Decimal `json:"amount"`
	Target *PayoutTarget   `json:"target_account,omitempty"`
}

// ReceiptCustomer: владелец закрытого счёта.
type ReceiptCustomer struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	NationalID string `json:"national_id"`
}

// ClosureReceipt: квитанция о закрытии.
type ClosureReceipt struct {
	ClosedAccount ClosedAccount   `json:"closed_account"`
	Payout        Payout          `json:"payout"`
	Customer      ReceiptCustomer `json:"customer"`
	ClosedAt      time.Time       `json:"closed_at"`
}

// AccountClosedEvent публикуется после фиксации закрытия.
type AccountClosedEvent struct {
	AccountID       int64           `json:"account_id"`
	AccountNo       string          `json:"account_no"`
	CustomerID      int64           `json:"customer_id"`
	CurrencyCode    string          `json:"currency_code"`
	PayoutMethod    PayoutMethod    `json:"payout_method"`
	Amount          decimal.Decimal `json:"amount"`
	TargetAccountID *int64          `json:"target_account_id,omitempty"`
	ClosedAt        time.Time       `json:"closed_at"`
}

// AccountOpenedEvent публикуется после открытия счёта.
type AccountOpenedEvent struct {
	AccountID    int64       `json:"account_id"`
	AccountNo    string      `json:"account_no"`
	CustomerID   int64       `json:"customer_id"`
	CurrencyCode string      `json:"currency_code"`
	AccountType  AccountType `json:"account_type"`
	OpenedAt     time.Time   `json:"opened_at"`
}
