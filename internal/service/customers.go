package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pribylovaa/bank-backoffice/internal/metrics"
	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/pkg/log"
	"github.com/pribylovaa/bank-backoffice/internal/pkg/redact"
	"github.com/pribylovaa/bank-backoffice/internal/storage"
)

const (
	defaultCurrency = "TRY"

	defaultPageLimit = 20
	maxPageLimit     = 100
)

var reCurrency = regexp.MustCompile(`^[A-Z]{3}$`)

// CreateCustomer создаёт клиента в указанном отделении и, по запросу,
// счёт до востребования в TRY с нулевым остатком в той же транзакции.
func (s *Service) CreateCustomer(ctx context.Context, in models.NewCustomer) (*models.CreatedCustomer, error) {
	const op = "service.customers.CreateCustomer"

	in.NationalID = strings.TrimSpace(in.NationalID)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if !isNationalID(in.NationalID) {
		return nil, fmt.Errorf("%s: %w", op, ErrValidationTCKN)
	}
	if in.FirstName == "" || in.LastName == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrValidationName)
	}
	if in.BranchID == nil && in.BranchCode == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrBranchRequired)
	}
	if in.BranchID != nil && *in.BranchID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrValidationBranch)
	}

	lg := log.From(ctx).With(slog.String("national_id", redact.NationalID(in.NationalID)))

	// Быстрая проверка дубликата; окончательную гарантирует уникальный индекс.
	if _, err := s.storage.CustomerByNationalID(ctx, in.NationalID); err == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrDuplicateTCKN)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var out models.CreatedCustomer

	err := s.storage.WithinTx(ctx, func(tx storage.Tx) error {
		branchID, err := tx.ResolveBranch(ctx, in.BranchID, in.BranchCode)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrBranchRequired
			}
			return err
		}

		c, err := tx.InsertCustomer(ctx, &in, branchID)
		if err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				return ErrDuplicateTCKN
			}
			return err
		}
		out.Customer = *c

		if in.OpenDefaultAccount {
			acc, err := tx.InsertAccount(ctx, models.NewAccount{
				CustomerID:   c.ID,
				CurrencyCode: defaultCurrency,
				AccountType:  models.AccountDemand,
				Balance:      decimal.Zero,
				InterestRate: decimal.Zero,
			})
			if err != nil {
				return err
			}
			out.DefaultAccount = acc
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.CustomersCreated.Inc()
	lg.Info("customer_created", slog.Int64("customer_id", out.Customer.ID))

	if out.DefaultAccount != nil {
		s.accountOpened(ctx, out.DefaultAccount)
	}

	return &out, nil
}

// CustomerSummary возвращает клиента и все его счета.
func (s *Service) CustomerSummary(ctx context.Context, nationalID string) (*models.CustomerSummary, error) {
	const op = "service.customers.CustomerSummary"

	nationalID = strings.TrimSpace(nationalID)
	if !isNationalID(nationalID) {
		return nil, fmt.Errorf("%s: %w", op, ErrValidationTCKN)
	}

	c, err := s.storage.CustomerByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrCustomerNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	accounts, err := s.storage.AccountsByCustomer(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if accounts == nil {
		accounts = []models.Account{}
	}

	return &models.CustomerSummary{Customer: *c, Accounts: accounts}, nil
}

// ListCustomersByBranch: постраничный список клиентов отделения.
// Головное отделение видит всех.
func (s *Service) ListCustomersByBranch(ctx context.Context, f models.CustomerFilter) (*models.CustomerPage, error) {
	const op = "service.customers.ListCustomersByBranch"

	if f.BranchID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrValidationBranch)
	}

	if f.AccountType != "" {
		t, ok := models.ParseAccountType(string(f.AccountType))
		if !ok {
			return nil, fmt.Errorf("%s: %w", op, ErrValidationType)
		}
		f.AccountType = t
	}

	if f.CurrencyCode != "" {
		f.CurrencyCode = strings.ToUpper(strings.TrimSpace(f.CurrencyCode))
		if !reCurrency.MatchString(f.CurrencyCode) {
			return nil, fmt.Errorf("%s: %w", op, ErrValidationCCY)
		}
	}

	if f.Limit == 0 {
		f.Limit = defaultPageLimit
	}
	if f.Limit < 1 || f.Limit > maxPageLimit || f.Offset < 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrValidationPaging)
	}

	f.Query = strings.TrimSpace(f.Query)

	page, err := s.storage.ListCustomersByBranch(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if page.Items == nil {
		page.Items = []models.CustomerWithAccounts{}
	}

	return page, nil
}
