package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/storage"
)

const (
	defaultFindLimit = 10
	maxFindLimit     = 50
	defaultPageLimit = 20
)

const customerColumns = `
	c.id, c.national_id, c.serial_no, c.first_name, c.last_name, c.phone, c.email,
	c.birth_date, c.gender, c.nationality, c.mother_name, c.father_name, c.address,
	c.branch_id, b.code, COALESCE(b.name, ''), c.created_at
`

const customerFrom = `
	FROM customers c
	LEFT JOIN branches b ON b.id = c.branch_id
`

func scanCustomer(row pgx.Row) (*models.Customer, error) {
	var c models.Customer
	err := row.Scan(
		&c.ID,
		&c.NationalID,
		&c.SerialNo,
		&c.FirstName,
		&c.LastName,
		&c.Phone,
		&c.Email,
		&c.BirthDate,
		&c.Gender,
		&c.Nationality,
		&c.MotherName,
		&c.FatherName,
		&c.Address,
		&c.BranchID,
		&c.BranchCode,
		&c.BranchName,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func collectCustomers(rows pgx.Rows) ([]models.Customer, error) {
	defer rows.Close()

	out := make([]models.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}

	return out, rows.Err()
}

// customerOne выполняет запрос, возвращающий не более одного клиента.
func customerOne(ctx context.Context, q querier, op, where string, args ...any) (*models.Customer, error) {
	query := "SELECT " + customerColumns + customerFrom + where

	c, err := scanCustomer(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

// CustomerByID находит клиента по id.
func (s *Storage) CustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	return customerOne(ctx, s.db, "storage.postgres.CustomerByID", "WHERE c.id = $1", id)
}

// CustomerByNationalID находит клиента по национальному идентификатору.
func (s *Storage) CustomerByNationalID(ctx context.Context, nationalID string) (*models.Customer, error) {
	return customerOne(ctx, s.db, "storage.postgres.CustomerByNationalID", "WHERE c.national_id = $1", nationalID)
}

// FindCustomers ищет клиентов по первому заданному критерию:
// id, national_id, email, телефон, имя.
func (s *Storage) FindCustomers(ctx context.Context, lookup models.CustomerLookup) ([]models.Customer, error) {
	const op = "storage.postgres.FindCustomers"

	limit := lookup.Limit
	if limit <= 0 {
		limit = defaultFindLimit
	}
	if limit > maxFindLimit {
		limit = maxFindLimit
	}

	var (
		where string
		arg   any
	)

	switch {
	case lookup.ID != nil:
		where, arg = "WHERE c.id = $1", *lookup.ID
	case lookup.NationalID != "":
		where, arg = "WHERE c.national_id = $1", lookup.NationalID
	case lookup.Email != "":
		where, arg = "WHERE lower(c.email) = lower($1)", strings.TrimSpace(lookup.Email)
	case lookup.Phone != "":
		where, arg = `WHERE regexp_replace(c.phone, '\D', '', 'g') LIKE '%' || $1 || '%'`, lookup.Phone
	case lookup.Name != "":
		where = `WHERE c.first_name ILIKE $1 OR c.last_name ILIKE $1
			OR (c.first_name || ' ' || c.last_name) ILIKE $1`
		arg = "%" + strings.TrimSpace(lookup.Name) + "%"
	default:
		return []models.Customer{}, nil
	}

	query := "SELECT " + customerColumns + customerFrom + where + " ORDER BY c.id LIMIT $2"

	rows, err := s.db.Query(ctx, query, arg, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := collectCustomers(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// ListCustomersByBranch возвращает страницу клиентов, у которых есть счёт
// (или собственная привязка) в отделении filter.BranchID, вместе со счетами,
// прошедшими фильтр. Головное отделение видит всех.
func (s *Storage) ListCustomersByBranch(ctx context.Context, filter models.CustomerFilter) (*models.CustomerPage, error) {
	const op = "storage.postgres.ListCustomersByBranch"

	var branch any
	if filter.BranchID != 0 && filter.BranchID != models.HeadOfficeBranchID {
		branch = filter.BranchID
	}

	var q any
	if text := strings.TrimSpace(filter.Query); text != "" {
		q = "%" + text + "%"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}

	args := []any{branch, nullIfEmpty(string(filter.AccountType)), nullIfEmpty(filter.CurrencyCode), q}

	matched := `
		SELECT DISTINCT c.id
		FROM customers c
		LEFT JOIN accounts a ON a.customer_id = c.id
		WHERE ($1::bigint IS NULL OR COALESCE(a.branch_id, c.branch_id) = $1)
		  AND ($2::text IS NULL OR a.account_type = $2)
		  AND ($3::text IS NULL OR a.currency_code = $3)
		  AND ($4::text IS NULL OR c.national_id ILIKE $4 OR c.first_name ILIKE $4 OR c.last_name ILIKE $4)
	`

	var total int64
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM ("+matched+") f", args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("%s: count: %w", op, err)
	}

	page := &models.CustomerPage{Items: []models.CustomerWithAccounts{}, Total: total}
	if total == 0 {
		return page, nil
	}

	pageArgs := append(append([]any{}, args...), limit, max(filter.Offset, 0))
	rows, err := s.db.Query(ctx, `
		SELECT `+customerColumns+customerFrom+`
		WHERE c.id IN (`+matched+`)
		ORDER BY c.id DESC
		LIMIT $5 OFFSET $6
	`, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("%s: page: %w", op, err)
	}

	customers, err := collectCustomers(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: page: %w", op, err)
	}
	if len(customers) == 0 {
		return page, nil
	}

	ids := make([]int64, len(customers))
	for i, c := range customers {
		ids[i] = c.ID
	}

	rows, err = s.db.Query(ctx, `
		SELECT `+accountColumns+accountFrom+`
		WHERE a.customer_id = ANY($1)
		  AND ($2::bigint IS NULL OR a.branch_id = $2)
		  AND ($3::text IS NULL OR a.account_type = $3)
		  AND ($4::text IS NULL OR a.currency_code = $4)
		ORDER BY a.created_at DESC, a.id DESC
	`, ids, branch, args[1], args[2])
	if err != nil {
		return nil, fmt.Errorf("%s: accounts: %w", op, err)
	}

	accounts, err := collectAccounts(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: accounts: %w", op, err)
	}

	byCustomer := make(map[int64][]models.Account, len(customers))
	for _, a := range accounts {
		byCustomer[a.CustomerID] = append(byCustomer[a.CustomerID], a)
	}

	for _, c := range customers {
		accs := byCustomer[c.ID]
		if accs == nil {
			accs = []models.Account{}
		}
		page.Items = append(page.Items, models.CustomerWithAccounts{Customer: c, Accounts: accs})
	}

	return page, nil
}

// insertCustomer: общая часть для Tx.InsertCustomer.
func insertCustomer(ctx context.Context, q querier, c *models.NewCustomer, branchID int64) (*models.Customer, error) {
	const op = "storage.postgres.InsertCustomer"

	query := `
		INSERT INTO customers(
			national_id, serial_no, first_name, last_name, phone, email, birth_date,
			gender, nationality, mother_name, father_name, address, branch_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		c.NationalID,
		c.SerialNo,
		c.FirstName,
		c.LastName,
		c.Phone,
		c.Email,
		c.BirthDate,
		c.Gender,
		c.Nationality,
		c.MotherName,
		c.FatherName,
		c.Address,
		branchID,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return customerOne(ctx, q, op, "WHERE c.id = $1", id)
}
