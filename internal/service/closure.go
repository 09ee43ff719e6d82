package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/pribylovaa/bank-backoffice/internal/apperr"
	"github.com/pribylovaa/bank-backoffice/internal/metrics"
	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/pkg/log"
	"github.com/pribylovaa/bank-backoffice/internal/storage"
)

// CloseAccount закрывает счёт и выплачивает остаток наличными или
// переводом на другой активный счёт до востребования того же клиента
// в той же валюте.
//
// Всё выполняется в одной транзакции под блокировкой строки счёта
// (и получателя, если он указан): параллельные закрытия одного счёта
// сериализуются, второй видит CLOSED и получает ErrAccountAlreadyClosed.
// Строки блокируются по возрастанию id, встречные переводы не
// взаимоблокируются. Любая ошибка откатывает транзакцию целиком.
//
// Нулевой остаток закрывается без способа выплаты: {CASH, 0}.
func (s *Service) CloseAccount(ctx context.Context, req models.CloseRequest) (*models.ClosureReceipt, error) {
	const op = "service.closure.CloseAccount"

	ctx = log.With(ctx, slog.Int64("account_id", req.AccountID))
	lg := log.From(ctx)

	switch req.PayoutMethod {
	case "", models.PayoutCash, models.PayoutTransfer:
	default:
		s.closureResult(req.PayoutMethod, ErrInvalidPayoutMethod)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidPayoutMethod)
	}

	var receipt *models.ClosureReceipt

	err := s.storage.WithinTx(ctx, func(tx storage.Tx) error {
		var err error
		receipt, err = s.closeInTx(ctx, tx, req)
		return err
	})

	s.closureResult(req.PayoutMethod, err)

	if err != nil {
		if _, ok := apperr.From(err); ok {
			lg.Info("account_close_rejected", slog.String("err", err.Error()))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("account_closed",
		slog.String("payout", string(receipt.Payout.Method)),
		slog.String("amount", receipt.Payout.Amount.StringFixed(2)),
	)

	ev := models.AccountClosedEvent{
		AccountID:    receipt.ClosedAccount.ID,
		AccountNo:    receipt.ClosedAccount.AccountNo,
		CustomerID:   receipt.Customer.ID,
		CurrencyCode: receipt.ClosedAccount.CurrencyCode,
		PayoutMethod: receipt.Payout.Method,
		Amount:       receipt.Payout.Amount,
		ClosedAt:     receipt.ClosedAt,
	}
	if t := receipt.Payout.Target; t != nil {
		id := t.ID
		ev.TargetAccountID = &id
	}

	if err := s.publisher.PublishAccountClosed(ctx, ev); err != nil {
		lg.Warn("event_publish_failed",
			slog.String("event", "account.closed"),
			slog.String("err", err.Error()),
		)
	}

	return receipt, nil
}

// closeInTx: шаги закрытия внутри транзакции.
func (s *Service) closeInTx(ctx context.Context, tx storage.Tx, req models.CloseRequest) (*models.ClosureReceipt, error) {
	ids := []int64{req.AccountID}
	if req.PayoutMethod == models.PayoutTransfer && req.TargetAccountID != nil && *req.TargetAccountID != req.AccountID {
		ids = append(ids, *req.TargetAccountID)
	}

	locked, err := tx.LockAccounts(ctx, ids...)
	if err != nil {
		return nil, err
	}

	src, ok := locked[req.AccountID]
	if !ok {
		return nil, ErrAccountNotFound
	}
	if !src.IsActive() {
		return nil, ErrAccountAlreadyClosed
	}
	if src.Balance.IsNegative() {
		return nil, ErrNegativeBalance
	}

	amount := src.Balance
	payout := models.Payout{Method: models.PayoutCash, Amount: decimal.Zero}

	switch {
	case amount.IsZero():
		// Выплачивать нечего, способ выплаты не нужен.

	case req.PayoutMethod == "":
		return nil, ErrTransferTargetRequired

	case req.PayoutMethod == models.PayoutCash:
		payout.Amount = amount

	case req.PayoutMethod == models.PayoutTransfer:
		if req.TargetAccountID == nil {
			return nil, ErrTransferTargetRequired
		}
		if *req.TargetAccountID == src.ID {
			return nil, ErrTransferTargetInvalid
		}

		dst, ok := locked[*req.TargetAccountID]
		if !ok {
			return nil, ErrTransferTargetNotFound
		}
		if err := checkTransferTarget(src, dst); err != nil {
			return nil, err
		}

		newBalance, err := tx.AddBalance(ctx, dst.ID, amount)
		if err != nil {
			return nil, err
		}

		payout = models.Payout{
			Method: models.PayoutTransfer,
			Amount: amount,
			Target: &models.PayoutTarget{
				ID:           dst.ID,
				AccountNo:    dst.AccountNo,
				CurrencyCode: dst.CurrencyCode,
				NewBalance:   newBalance,
			},
		}
	}

	if err := tx.CloseAccount(ctx, src.ID); err != nil {
		return nil, err
	}

	c, err := tx.CustomerByID(ctx, src.CustomerID)
	if err != nil {
		return nil, err
	}

	return &models.ClosureReceipt{
		ClosedAccount: models.ClosedAccount{
			ID:           src.ID,
			AccountNo:    src.AccountNo,
			CurrencyCode: src.CurrencyCode,
		},
		Payout: payout,
		Customer: models.ReceiptCustomer{
			ID:         c.ID,
			FirstName:  c.FirstName,
			LastName:   c.LastName,
			NationalID: c.NationalID,
		},
		ClosedAt: s.now().UTC(),
	}, nil
}

// checkTransferTarget: получатель, другой активный счёт до
// востребования того же клиента в той же валюте.
func checkTransferTarget(src, dst *models.Account) error {
	switch {
	case dst.ID == src.ID,
		dst.CustomerID != src.CustomerID,
		!dst.IsActive(),
		dst.AccountType != models.AccountDemand:
		return ErrTransferTargetInvalid
	case dst.CurrencyCode != src.CurrencyCode:
		return ErrCurrencyMismatch
	}

	return nil
}

func (s *Service) closureResult(method models.PayoutMethod, err error) {
	var payout string
	switch method {
	case models.PayoutCash, models.PayoutTransfer:
		payout = string(method)
	case "":
		payout = "none"
	default:
		payout = "invalid"
	}

	result := metrics.ResultOK
	if err != nil {
		result = "internal"
		if e, ok := apperr.From(err); ok {
			result = e.Code
		}
	}

	metrics.AccountClosures.WithLabelValues(payout, result).Inc()
}
