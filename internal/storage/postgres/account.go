package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/storage"
)

const accountColumns = `
	a.id, a.customer_id, a.account_no, a.currency_code, a.account_type, a.balance,
	a.interest_rate, a.sub_no, a.branch_id, b.code, a.status, a.created_at
`

const accountFrom = `
	FROM accounts a
	LEFT JOIN branches b ON b.id = a.branch_id
`

func scanAccount(row pgx.Row, extra ...any) (*models.Account, error) {
	var a models.Account
	dest := []any{
		&a.ID,
		&a.CustomerID,
		&a.AccountNo,
		&a.CurrencyCode,
		&a.AccountType,
		&a.Balance,
		&a.InterestRate,
		&a.SubNo,
		&a.BranchID,
		&a.BranchCode,
		&a.Status,
		&a.CreatedAt,
	}

	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	return &a, nil
}

func collectAccounts(rows pgx.Rows) ([]models.Account, error) {
	defer rows.Close()

	out := make([]models.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}

	return out, rows.Err()
}

// AccountsByCustomer возвращает счета клиента, новые первыми.
func (s *Storage) AccountsByCustomer(ctx context.Context, customerID int64) ([]models.Account, error) {
	const op = "storage.postgres.AccountsByCustomer"

	rows, err := s.db.Query(ctx, `
		SELECT `+accountColumns+accountFrom+`
		WHERE a.customer_id = $1
		ORDER BY a.created_at DESC, a.id DESC
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := collectAccounts(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// AccountOverview возвращает счёт с отделением и владельцем.
// Ищет по id, если он задан, иначе по номеру счёта.
func (s *Storage) AccountOverview(ctx context.Context, id *int64, accountNo string) (*models.AccountOverview, error) {
	const op = "storage.postgres.AccountOverview"

	if id == nil && accountNo == "" {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var (
		ov         models.AccountOverview
		branchID   *int64
		branchName *string
		branchCity *string
		branchDist *string
	)

	acc, err := scanAccount(s.db.QueryRow(ctx, `
		SELECT `+accountColumns+`,
			b.id, b.name, b.city, b.district,
			c.id, c.national_id, c.first_name, c.last_name, c.email, c.phone, c.branch_id
		`+accountFrom+`
		JOIN customers c ON c.id = a.customer_id
		WHERE ($1::bigint IS NULL OR a.id = $1)
		  AND ($2::text IS NULL OR a.account_no = $2)
		LIMIT 1
	`, id, nullIfEmpty(accountNo)),
		&branchID, &branchName, &branchCity, &branchDist,
		&ov.Customer.ID,
		&ov.Customer.NationalID,
		&ov.Customer.FirstName,
		&ov.Customer.LastName,
		&ov.Customer.Email,
		&ov.Customer.Phone,
		&ov.Customer.BranchID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ov.Account = *acc
	if branchID != nil {
		ov.Branch = &models.Branch{ID: *branchID, Name: deref(branchName), City: deref(branchCity), District: deref(branchDist)}
		if acc.BranchCode != nil {
			ov.Branch.Code = *acc.BranchCode
		}
	}

	return &ov, nil
}

// BranchSummary возвращает отделение с количеством счетов и суммой остатков.
func (s *Storage) BranchSummary(ctx context.Context, id *int64, code *int) (*models.BranchSummary, error) {
	const op = "storage.postgres.BranchSummary"

	if id == nil && code == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var bs models.BranchSummary
	err := s.db.QueryRow(ctx, `
		SELECT b.id, b.code, b.name, b.city, b.district, b.created_at,
			COUNT(a.id), COALESCE(SUM(a.balance), 0)
		FROM branches b
		LEFT JOIN accounts a ON a.branch_id = b.id
		WHERE ($1::bigint IS NULL OR b.id = $1)
		  AND ($2::int IS NULL OR b.code = $2)
		GROUP BY b.id
		ORDER BY b.id
		LIMIT 1
	`, id, code).Scan(
		&bs.ID,
		&bs.Code,
		&bs.Name,
		&bs.City,
		&bs.District,
		&bs.CreatedAt,
		&bs.AccountCount,
		&bs.TotalBalance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &bs, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
