package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/bank-backoffice/internal/apperr"
	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/storage/postgres"
	"github.com/pribylovaa/bank-backoffice/internal/token"
)

// Сквозные проверки закрытия счёта на реальном PostgreSQL:
//   GO_TEST_INTEGRATION=1 go test ./internal/service -run Integration -v -race -count=1

func startLedger(t *testing.T) *postgres.Storage {
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
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	_, thisFile, _, _ := runtime.Caller(0)
	schema, err := os.ReadFile(filepath.Join(filepath.Dir(thisFile), "..", "..", "migrations", "1_init_bank.up.sql"))
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	pool.Close()
	require.NoError(t, err)

	st, err := postgres.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(st.Close)

	return st
}

func seedLedger(t *testing.T, svc *Service, nationalID string) int64 {
	t.Helper()
	out, err := svc.CreateCustomer(context.Background(), models.NewCustomer{
		NationalID: nationalID,
		FirstName:  "Mehmet",
		LastName:   "Demir",
		BranchID:   int64p(models.HeadOfficeBranchID),
	})
	require.NoError(t, err)
	return out.Customer.ID
}

func open(t *testing.T, svc *Service, nationalID, typ, ccy, balance string) *models.Account {
	t.Helper()
	acc, err := svc.OpenAccount(context.Background(), OpenAccountInput{
		NationalID:   nationalID,
		AccountType:  typ,
		CurrencyCode: ccy,
		Balance:      decimal.RequireFromString(balance),
	})
	require.NoError(t, err)
	return acc
}

func accountsByID(t *testing.T, svc *Service, customerID int64) map[int64]models.Account {
	t.Helper()
	list, err := svc.storage.AccountsByCustomer(context.Background(), customerID)
	require.NoError(t, err)

	out := make(map[int64]models.Account, len(list))
	for _, a := range list {
		// Закрытый счёт всегда с нулевым остатком.
		if a.Status == models.AccountClosed {
			require.True(t, a.Balance.IsZero(), "closed account %d has balance %s", a.ID, a.Balance)
		}
		out[a.ID] = a
	}
	return out
}

func TestIntegration_CloseAccount(t *testing.T) {
	st := startLedger(t)
	svc := New(st, nil, token.New(testCfg()), testCfg())
	ctx := context.Background()

	const owner, stranger = "20000000000", "30000000000"
	ownerID := seedLedger(t, svc, owner)
	seedLedger(t, svc, stranger)

	t.Run("concurrent zero-balance closures serialize", func(t *testing.T) {
		acc := open(t, svc, owner, "DEMAND", "TRY", "0")

		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			errs []error
		)
		start := make(chan struct{})
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				_, err := svc.CloseAccount(ctx, models.CloseRequest{AccountID: acc.ID})
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}()
		}
		close(start)
		wg.Wait()

		var ok, conflict int
		for _, err := range errs {
			switch {
			case err == nil:
				ok++
			case apperr.KindOf(err) == apperr.KindConflict:
				require.ErrorIs(t, err, ErrAccountAlreadyClosed)
				conflict++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		require.Equal(t, 1, ok)
		require.Equal(t, 1, conflict)

		require.Equal(t, models.AccountClosed, accountsByID(t, svc, ownerID)[acc.ID].Status)
	})

	t.Run("closing a closed account does not mutate", func(t *testing.T) {
		acc := open(t, svc, owner, "DEMAND", "TRY", "0")
		_, err := svc.CloseAccount(ctx, models.CloseRequest{AccountID: acc.ID})
		require.NoError(t, err)

		before := accountsByID(t, svc, ownerID)[acc.ID]
		_, err = svc.CloseAccount(ctx, models.CloseRequest{AccountID: acc.ID, PayoutMethod: models.PayoutCash})
		require.ErrorIs(t, err, ErrAccountAlreadyClosed)
		require.Equal(t, before, accountsByID(t, svc, ownerID)[acc.ID])
	})

	t.Run("cash payout", func(t *testing.T) {
		acc := open(t, svc, owner, "TERM", "TRY", "150.00")

		r, err := svc.CloseAccount(ctx, models.CloseRequest{AccountID: acc.ID, PayoutMethod: models.PayoutCash})
		require.NoError(t, err)
		require.Equal(t, "150.00", r.Payout.Amount.StringFixed(2))

		got := accountsByID(t, svc, ownerID)[acc.ID]
		require.Equal(t, models.AccountClosed, got.Status)
	})

	t.Run("transfer payout and currency mismatch", func(t *testing.T) {
		src := open(t, svc, owner, "DEMAND", "USD", "200")
		usd := open(t, svc, owner, "DEMAND", "USD", "50")
		eur := open(t, svc, owner, "DEMAND", "EUR", "50")

		_, err := svc.CloseAccount(ctx, models.CloseRequest{
			AccountID: src.ID, PayoutMethod: models.PayoutTransfer, TargetAccountID: int64p(eur.ID),
		})
		require.ErrorIs(t, err, ErrCurrencyMismatch)

		accs := accountsByID(t, svc, ownerID)
		require.Equal(t, models.AccountActive, accs[src.ID].Status)
		require.Equal(t, "200.00", accs[src.ID].Balance.StringFixed(2))
		require.Equal(t, "50.00", accs[eur.ID].Balance.StringFixed(2))

		r, err := svc.CloseAccount(ctx, models.CloseRequest{
			AccountID: src.ID, PayoutMethod: models.PayoutTransfer, TargetAccountID: int64p(usd.ID),
		})
		require.NoError(t, err)
		require.Equal(t, "250.00", r.Payout.Target.NewBalance.StringFixed(2))

		accs = accountsByID(t, svc, ownerID)
		require.Equal(t, models.AccountClosed, accs[src.ID].Status)
		require.Equal(t, "250.00", accs[usd.ID].Balance.StringFixed(2))
	})

	t.Run("invalid targets leave state unchanged", func(t *testing.T) {
		src := open(t, svc, owner, "DEMAND", "TRY", "10")
		term := open(t, svc, owner, "TERM", "TRY", "0")
		closed := open(t, svc, owner, "DEMAND", "TRY", "0")
		_, err := svc.CloseAccount(ctx, models.CloseRequest{AccountID: closed.ID})
		require.NoError(t, err)
		foreign := open(t, svc, stranger, "DEMAND", "TRY", "0")

		for _, target := range []int64{term.ID, closed.ID, foreign.ID, src.ID} {
			_, err := svc.CloseAccount(ctx, models.CloseRequest{
				AccountID: src.ID, PayoutMethod: models.PayoutTransfer, TargetAccountID: int64p(target),
			})
			require.ErrorIs(t, err, ErrTransferTargetInvalid, "target %d", target)
		}

		accs := accountsByID(t, svc, ownerID)
		require.Equal(t, models.AccountActive, accs[src.ID].Status)
		require.Equal(t, "10.00", accs[src.ID].Balance.StringFixed(2))
		require.True(t, accs[term.ID].Balance.IsZero())
	})

	t.Run("opposite transfers do not deadlock", func(t *testing.T) {
		a := open(t, svc, owner, "DEMAND", "TRY", "5")
		b := open(t, svc, owner, "DEMAND", "TRY", "7")

		var wg sync.WaitGroup
		results := make([]error, 2)
		for i, pair := range [][2]int64{{a.ID, b.ID}, {b.ID, a.ID}} {
			wg.Add(1)
			go func(i int, src, dst int64) {
				defer wg.Done()
				_, results[i] = svc.CloseAccount(ctx, models.CloseRequest{
					AccountID: src, PayoutMethod: models.PayoutTransfer, TargetAccountID: int64p(dst),
				})
			}(i, pair[0], pair[1])
		}
		wg.Wait()

		// Первый закрывается, второй видит закрытый получатель или закрытый счёт.
		var ok int
		for _, err := range results {
			if err == nil {
				ok++
				continue
			}
			kind := apperr.KindOf(err)
			require.Contains(t, []apperr.Kind{apperr.KindConflict, apperr.KindBusinessRule}, kind, "err: %v", err)
		}
		require.Equal(t, 1, ok)

		accs := accountsByID(t, svc, ownerID)
		total := accs[a.ID].Balance.Add(accs[b.ID].Balance)
		require.Equal(t, "12.00", total.StringFixed(2))
	})
}
