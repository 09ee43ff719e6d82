package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/pribylovaa/bank-backoffice/internal/apperr"
	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/service"
)

var errInvalidAccountID = apperr.New(apperr.KindValidation, "VALIDATION_ACCOUNT_ID", "account id must be a positive integer")

type openAccountRequest struct {
	NationalID   string          `json:"national_id"`
	AccountType  string          `json:"account_type"`
	CurrencyCode string          `json:"currency_code"`
	Balance      decimal.Decimal `json:"balance"`
	InterestRate decimal.Decimal `json:"interest_rate"`
}

type closeAccountRequest struct {
	PayoutMethod    string `json:"payout_method"`
	TargetAccountID *int64 `json:"target_account_id"`
}

func (h *Handlers) OpenAccount(w http.ResponseWriter, r *http.Request) {
	var in openAccountRequest
	if err := decodeStrict(r, &in); err != nil {
		writeError(w, r, errInvalidBody)
		return
	}

	acc, err := h.Accounts.OpenAccount(r.Context(), service.OpenAccountInput{
		NationalID:   in.NationalID,
		AccountType:  in.AccountType,
		CurrencyCode: in.CurrencyCode,
		Balance:      in.Balance,
		InterestRate: in.InterestRate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, acc)
}

func (h *Handlers) CloseAccount(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, errInvalidAccountID)
		return
	}

	var in closeAccountRequest
	if err := decodeOptional(r, &in); err != nil {
		writeError(w, r, errInvalidBody)
		return
	}

	receipt, err := h.Accounts.CloseAccount(r.Context(), models.CloseRequest{
		AccountID:       id,
		PayoutMethod:    models.PayoutMethod(strings.ToUpper(strings.TrimSpace(in.PayoutMethod))),
		TargetAccountID: in.TargetAccountID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}
