package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pribylovaa/bank-backoffice/internal/metrics"
	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/pkg/log"
	"github.com/pribylovaa/bank-backoffice/internal/storage"
)

var maxInterestRate = decimal.NewFromInt(50)

// OpenAccountInput: параметры открытия счёта.
type OpenAccountInput struct {
	NationalID   string
	AccountType  string
	CurrencyCode string
	Balance      decimal.Decimal
	InterestRate decimal.Decimal
}

// OpenAccount открывает счёт клиенту, найденному по национальному
// идентификатору. Строка клиента блокируется на время вставки, поэтому
// sub_no назначается последовательно даже при параллельных открытиях.
func (s *Service) OpenAccount(ctx context.Context, in OpenAccountInput) (*models.Account, error) {
	const op = "service.accounts.OpenAccount"

	nationalID := strings.TrimSpace(in.NationalID)
	if !isNationalID(nationalID) {
		return nil, fmt.Errorf("%s: %w", op, ErrValidationTCKN)
	}

	accType, ok := models.ParseAccountType(in.AccountType)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrValidationType)
	}

	ccy := strings.ToUpper(strings.TrimSpace(in.CurrencyCode))
	if !reCurrency.MatchString(ccy) {
		return nil, fmt.Errorf("%s: %w", op, ErrValidationCCY)
	}

	if in.Balance.IsNegative() {
		return nil, fmt.Errorf("%s: %w", op, ErrValidationBalance)
	}

	rate := in.InterestRate
	if accType == models.AccountDemand {
		rate = decimal.Zero
	} else if rate.IsNegative() || rate.GreaterThan(maxInterestRate) {
		return nil, fmt.Errorf("%s: %w", op, ErrValidationInterest)
	}

	var acc *models.Account

	err := s.storage.WithinTx(ctx, func(tx storage.Tx) error {
		c, err := tx.CustomerByNationalIDForUpdate(ctx, nationalID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		acc, err = tx.InsertAccount(ctx, models.NewAccount{
			CustomerID:   c.ID,
			CurrencyCode: ccy,
			AccountType:  accType,
			Balance:      in.Balance,
			InterestRate: rate,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.accountOpened(ctx, acc)

	return acc, nil
}

// accountOpened: метрики, лог и событие после фиксации открытия счёта.
func (s *Service) accountOpened(ctx context.Context, acc *models.Account) {
	lg := log.From(ctx)

	metrics.AccountsOpened.WithLabelValues(string(acc.AccountType)).Inc()
	lg.Info("account_opened",
		slog.Int64("account_id", acc.ID),
		slog.String("account_no", acc.AccountNo),
		slog.String("account_type", string(acc.AccountType)),
	)

	err := s.publisher.PublishAccountOpened(ctx, models.AccountOpenedEvent{
		AccountID:    acc.ID,
		AccountNo:    acc.AccountNo,
		CustomerID:   acc.CustomerID,
		CurrencyCode: acc.CurrencyCode,
		AccountType:  acc.AccountType,
		OpenedAt:     acc.CreatedAt,
	})
	if err != nil {
		lg.Warn("event_publish_failed",
			slog.String("event", "account.opened"),
			slog.String("err", err.Error()),
		)
	}
}
