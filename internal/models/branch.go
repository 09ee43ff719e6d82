package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// HeadOfficeBranchID: головное отделение видит клиентов всех отделений.
const HeadOfficeBranchID int64 = 1

// Branch: справочник отделений.
type Branch struct {
	ID        int64     `json:"id"`
	Code      int       `json:"code"`
	Name      string    `json:"name"`
	City      string    `json:"city,omitempty"`
	District  string    `json:"district,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BranchSummary: отделение с количеством счетов и суммарным остатком.
type BranchSummary struct {
	Branch
	AccountCount int64           `json:"account_count"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}
