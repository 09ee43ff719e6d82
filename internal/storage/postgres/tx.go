package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/storage"
)

// txStore: storage.Tx поверх открытой pgx.Tx.
type txStore struct {
	tx pgx.Tx
}

// ResolveBranch возвращает id отделения: по id, если задан, иначе по коду.
func (t *txStore) ResolveBranch(ctx context.Context, id *int64, code *int) (int64, error) {
	const op = "storage.postgres.ResolveBranch"

	if id == nil && code == nil {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var out int64
	err := t.tx.QueryRow(ctx, `
		SELECT id FROM branches
		WHERE ($1::bigint IS NULL OR id = $1)
		  AND ($2::int IS NULL OR code = $2)
		LIMIT 1
	`, id, code).Scan(&out)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (t *txStore) InsertCustomer(ctx context.Context, c *models.NewCustomer, branchID int64) (*models.Customer, error) {
	return insertCustomer(ctx, t.tx, c, branchID)
}

func (t *txStore) CustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	return customerOne(ctx, t.tx, "storage.postgres.Tx.CustomerByID", "WHERE c.id = $1", id)
}

// CustomerByNationalIDForUpdate блокирует строку клиента: параллельные
// открытия счетов одному клиенту выстраиваются в очередь на sub_no.
func (t *txStore) CustomerByNationalIDForUpdate(ctx context.Context, nationalID string) (*models.Customer, error) {
	return customerOne(ctx, t.tx, "storage.postgres.CustomerByNationalIDForUpdate",
		"WHERE c.national_id = $1 FOR UPDATE OF c", nationalID)
}

// InsertAccount создаёт счёт клиента. sub_no = MAX+1 по клиенту,
// номер счёта = код отделения (4) + значение последовательности (10) + sub_no (2).
// Отделение наследуется от клиента.
func (t *txStore) InsertAccount(ctx context.Context, a models.NewAccount) (*models.Account, error) {
	const op = "storage.postgres.InsertAccount"

	var id int64
	err := t.tx.QueryRow(ctx, `
		WITH c AS (
			SELECT c.id, c.branch_id, b.code
			FROM customers c
			JOIN branches b ON b.id = c.branch_id
			WHERE c.id = $1
		), s AS (
			SELECT COALESCE(MAX(sub_no), 0) + 1 AS sub_no
			FROM accounts
			WHERE customer_id = $1
		)
		INSERT INTO accounts(
			customer_id, currency_code, account_type, balance, interest_rate,
			sub_no, branch_id, account_no
		)
		SELECT c.id, $2, $3, $4, $5, s.sub_no, c.branch_id,
			lpad(c.code::text, 4, '0')
				|| lpad(nextval('account_no_seq')::text, 10, '0')
				|| lpad(s.sub_no::text, 2, '0')
		FROM c, s
		RETURNING id
	`,
		a.CustomerID,
		a.CurrencyCode,
		a.AccountType,
		a.Balance,
		a.InterestRate,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	acc, err := scanAccount(t.tx.QueryRow(ctx, "SELECT "+accountColumns+accountFrom+" WHERE a.id = $1", id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return acc, nil
}

// LockAccounts блокирует строки одним запросом в порядке возрастания id,
// так что две транзакции, блокирующие одну и ту же пару счетов, не
// могут взять блокировки крест-накрест.
func (t *txStore) LockAccounts(ctx context.Context, ids ...int64) (map[int64]*models.Account, error) {
	const op = "storage.postgres.LockAccounts"

	out := make(map[int64]*models.Account, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := t.tx.Query(ctx, `
		SELECT `+accountColumns+accountFrom+`
		WHERE a.id = ANY($1)
		ORDER BY a.id
		FOR UPDATE OF a
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	accounts, err := collectAccounts(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range accounts {
		out[accounts[i].ID] = &accounts[i]
	}

	return out, nil
}

// AddBalance прибавляет amount к остатку счёта.
func (t *txStore) AddBalance(ctx context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	const op = "storage.postgres.AddBalance"

	var balance decimal.Decimal
	err := t.tx.QueryRow(ctx, `
		UPDATE accounts
		SET balance = balance + $2
		WHERE id = $1
		RETURNING balance
	`, id, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return decimal.Zero, fmt.Errorf("%s: %w", op, err)
	}

	return balance, nil
}

// CloseAccount закрывает активный счёт и обнуляет остаток одним UPDATE.
func (t *txStore) CloseAccount(ctx context.Context, id int64) error {
	const op = "storage.postgres.CloseAccount"

	tag, err := t.tx.Exec(ctx, `
		UPDATE accounts
		SET status = 'CLOSED', balance = 0
		WHERE id = $1 AND status = 'ACTIVE'
	`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// Проверка на соответствие интерфейсу Tx.
var _ storage.Tx = (*txStore)(nil)
