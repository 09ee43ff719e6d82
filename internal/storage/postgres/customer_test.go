package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/storage"
)

func TestIntegration_InsertCustomer_And_Lookups(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	bid := seedBranch(t, st, 1042, "Kızılay")
	c := seedCustomer(t, st, "10000000146", 1042)

	require.Equal(t, bid, c.BranchID)
	require.NotNil(t, c.BranchCode)
	require.Equal(t, 1042, *c.BranchCode)
	require.Equal(t, "Kızılay", c.BranchName)

	byID, err := st.CustomerByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "10000000146", byID.NationalID)

	byNID, err := st.CustomerByNationalID(ctx, "10000000146")
	require.NoError(t, err)
	require.Equal(t, c.ID, byNID.ID)

	_, err = st.CustomerByNationalID(ctx, "99999999999")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_InsertCustomer_Duplicate(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	seedBranch(t, st, 7, "Branch 7")
	seedCustomer(t, st, "10000000146", 7)

	code := 7
	err := st.WithinTx(context.Background(), func(tx storage.Tx) error {
		bid, err := tx.ResolveBranch(context.Background(), nil, &code)
		if err != nil {
			return err
		}
		_, err = tx.InsertCustomer(context.Background(), &models.NewCustomer{
			NationalID: "10000000146", FirstName: "X", LastName: "Y",
		}, bid)
		return err
	})
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestIntegration_ResolveBranch_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	code := 9999
	err := st.WithinTx(context.Background(), func(tx storage.Tx) error {
		_, err := tx.ResolveBranch(context.Background(), nil, &code)
		return err
	})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_FindCustomers(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	seedBranch(t, st, 20, "B20")
	c := seedCustomer(t, st, "10000000146", 20)

	got, err := st.FindCustomers(ctx, models.CustomerLookup{Name: "yılmaz"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = st.FindCustomers(ctx, models.CustomerLookup{Email: "AYSE@example.com"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = st.FindCustomers(ctx, models.CustomerLookup{Phone: "1234567"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = st.FindCustomers(ctx, models.CustomerLookup{ID: &c.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = st.FindCustomers(ctx, models.CustomerLookup{})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestIntegration_ListCustomersByBranch(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	b1 := seedBranch(t, st, 30, "B30")
	seedBranch(t, st, 31, "B31")

	c1 := seedCustomer(t, st, "10000000146", 30)
	c2 := seedCustomer(t, st, "10000000210", 31)
	seedAccount(t, st, c1.ID, "TRY", models.AccountDemand, "10")
	seedAccount(t, st, c1.ID, "USD", models.AccountDemand, "5")
	seedAccount(t, st, c2.ID, "TRY", models.AccountTerm, "1")

	page, err := st.ListCustomersByBranch(ctx, models.CustomerFilter{BranchID: b1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	require.Equal(t, c1.ID, page.Items[0].ID)
	require.Len(t, page.Items[0].Accounts, 2)

	page, err = st.ListCustomersByBranch(ctx, models.CustomerFilter{BranchID: b1, CurrencyCode: "USD", Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Len(t, page.Items[0].Accounts, 1)
	require.Equal(t, "USD", page.Items[0].Accounts[0].CurrencyCode)

	// Головное отделение видит всех.
	page, err = st.ListCustomersByBranch(ctx, models.CustomerFilter{BranchID: models.HeadOfficeBranchID, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)

	page, err = st.ListCustomersByBranch(ctx, models.CustomerFilter{BranchID: models.HeadOfficeBranchID, AccountType: models.AccountTerm, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)
	require.Equal(t, c2.ID, page.Items[0].ID)

	// Страница за пределами, total сохраняется.
	page, err = st.ListCustomersByBranch(ctx, models.CustomerFilter{BranchID: models.HeadOfficeBranchID, Limit: 10, Offset: 10})
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)
	require.Empty(t, page.Items)
}
