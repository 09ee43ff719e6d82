package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/storage"
)

// Интеграционные тесты пакета postgres:
// - поднимают реальный PostgreSQL через testcontainers-go (postgres:16-alpine);
// - применяют миграцию ./migrations/1_init_bank.up.sql;
// - проверяют чтение/запись клиентов, счетов, сотрудников и транзакционные примитивы.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile: корень репозитория относительно текущего файла тестов.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

func readMigration(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(repoRootFromThisFile(), "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init_bank.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

func seedBranch(t *testing.T, st *Storage, code int, name string) int64 {
	t.Helper()
	var id int64
	err := st.db.QueryRow(context.Background(),
		`INSERT INTO branches(code, name, city) VALUES ($1, $2, 'Ankara') RETURNING id`, code, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedCustomer(t *testing.T, st *Storage, nationalID string, branchCode int) *models.Customer {
	t.Helper()
	var out *models.Customer
	err := st.WithinTx(context.Background(), func(tx storage.Tx) error {
		bid, err := tx.ResolveBranch(context.Background(), nil, &branchCode)
		if err != nil {
			return err
		}
		out, err = tx.InsertCustomer(context.Background(), &models.NewCustomer{
			NationalID: nationalID,
			FirstName:  "Ayşe",
			LastName:   "Yılmaz",
			Phone:      "05321234567",
			Email:      "ayse@example.com",
		}, bid)
		return err
	})
	require.NoError(t, err)
	return out
}

func seedAccount(t *testing.T, st *Storage, customerID int64, ccy string, typ models.AccountType, balance string) *models.Account {
	t.Helper()
	var out *models.Account
	err := st.WithinTx(context.Background(), func(tx storage.Tx) error {
		var err error
		out, err = tx.InsertAccount(context.Background(), models.NewAccount{
			CustomerID:   customerID,
			CurrencyCode: ccy,
			AccountType:  typ,
			Balance:      decimal.RequireFromString(balance),
			InterestRate: decimal.Zero,
		})
		return err
	})
	require.NoError(t, err)
	return out
}
