package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/bank-backoffice/internal/apperr"
	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/storage"
)

const tckn = "10000000146"

func newCustomerInput() models.NewCustomer {
	return models.NewCustomer{
		NationalID: tckn,
		FirstName:  " Ayşe ",
		LastName:   "Yılmaz",
		BranchCode: intp(1001),
	}
}

func TestCreateCustomer_WithDefaultAccount(t *testing.T) {
	t.Parallel()

	svc, d := newSvc(t)
	in := newCustomerInput()
	in.OpenDefaultAccount = true

	d.st.EXPECT().CustomerByNationalID(gomock.Any(), tckn).Return(nil, storage.ErrNotFound)
	d.expectTx()
	d.tx.EXPECT().ResolveBranch(gomock.Any(), nil, in.BranchCode).Return(int64(3), nil)
	d.tx.EXPECT().InsertCustomer(gomock.Any(), gomock.Any(), int64(3)).
		DoAndReturn(func(_ context.Context, c *models.NewCustomer, branchID int64) (*models.Customer, error) {
			require.Equal(t, "Ayşe", c.FirstName)
			return &models.Customer{ID: 5, NationalID: c.NationalID, FirstName: c.FirstName, LastName: c.LastName, BranchID: branchID}, nil
		})
	d.tx.EXPECT().InsertAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a models.NewAccount) (*models.Account, error) {
			require.Equal(t, int64(5), a.CustomerID)
			require.Equal(t, "TRY", a.CurrencyCode)
			require.Equal(t, models.AccountDemand, a.AccountType)
			require.True(t, a.Balance.IsZero())
			return &models.Account{ID: 9, CustomerID: 5, CurrencyCode: "TRY", AccountType: models.AccountDemand, Status: models.AccountActive}, nil
		})
	d.pub.EXPECT().PublishAccountOpened(gomock.Any(), gomock.Any()).Return(nil)

	out, err := svc.CreateCustomer(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, int64(5), out.Customer.ID)
	require.NotNil(t, out.DefaultAccount)
	require.Equal(t, int64(9), out.DefaultAccount.ID)
}

func TestCreateCustomer_WithoutDefaultAccount(t *testing.T) {
	t.Parallel()

	svc, d := newSvc(t)
	in := newCustomerInput()

	d.st.EXPECT().CustomerByNationalID(gomock.Any(), tckn).Return(nil, storage.ErrNotFound)
	d.expectTx()
	d.tx.EXPECT().ResolveBranch(gomock.Any(), nil, in.BranchCode).Return(int64(3), nil)
	d.tx.EXPECT().InsertCustomer(gomock.Any(), gomock.Any(), int64(3)).Return(&models.Customer{ID: 5}, nil)

	out, err := svc.CreateCustomer(context.Background(), in)
	require.NoError(t, err)
	require.Nil(t, out.DefaultAccount)
}

func TestCreateCustomer_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)

	bad := newCustomerInput()
	bad.NationalID = "123"
	_, err := svc.CreateCustomer(context.Background(), bad)
	require.ErrorIs(t, err, ErrValidationTCKN)

	noName := newCustomerInput()
	noName.LastName = "  "
	_, err = svc.CreateCustomer(context.Background(), noName)
	require.ErrorIs(t, err, ErrValidationName)

	noBranch := newCustomerInput()
	noBranch.BranchCode = nil
	_, err = svc.CreateCustomer(context.Background(), noBranch)
	require.ErrorIs(t, err, ErrBranchRequired)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	badBranch := newCustomerInput()
	badBranch.BranchCode = nil
	badBranch.BranchID = int64p(0)
	_, err = svc.CreateCustomer(context.Background(), badBranch)
	require.ErrorIs(t, err, ErrValidationBranch)
}

func TestCreateCustomer_Duplicate(t *testing.T) {
	t.Parallel()

	t.Run("pre-check", func(t *testing.T) {
		svc, d := newSvc(t)
		d.st.EXPECT().CustomerByNationalID(gomock.Any(), tckn).Return(&models.Customer{ID: 1}, nil)

		_, err := svc.CreateCustomer(context.Background(), newCustomerInput())
		require.ErrorIs(t, err, ErrDuplicateTCKN)
		require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("unique index race", func(t *testing.T) {
		svc, d := newSvc(t)
		d.st.EXPECT().CustomerByNationalID(gomock.Any(), tckn).Return(nil, storage.ErrNotFound)
		d.expectTx()
		d.tx.EXPECT().ResolveBranch(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		d.tx.EXPECT().InsertCustomer(gomock.Any(), gomock.Any(), int64(1)).Return(nil, storage.ErrAlreadyExists)

		_, err := svc.CreateCustomer(context.Background(), newCustomerInput())
		require.ErrorIs(t, err, ErrDuplicateTCKN)
	})
}

func TestCreateCustomer_UnknownBranch(t *testing.T) {
	t.Parallel()

	svc, d := newSvc(t)
	d.st.EXPECT().CustomerByNationalID(gomock.Any(), tckn).Return(nil, storage.ErrNotFound)
	d.expectTx()
	d.tx.EXPECT().ResolveBranch(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), storage.ErrNotFound)

	_, err := svc.CreateCustomer(context.Background(), newCustomerInput())
	require.ErrorIs(t, err, ErrBranchRequired)
}

func TestCustomerSummary(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		svc, d := newSvc(t)
		d.st.EXPECT().CustomerByNationalID(gomock.Any(), tckn).Return(&models.Customer{ID: 5, NationalID: tckn}, nil)
		d.st.EXPECT().AccountsByCustomer(gomock.Any(), int64(5)).Return([]models.Account{{ID: 2}, {ID: 1}}, nil)

		sum, err := svc.CustomerSummary(context.Background(), tckn)
		require.NoError(t, err)
		require.Equal(t, int64(5), sum.Customer.ID)
		require.Len(t, sum.Accounts, 2)
	})

	t.Run("no accounts renders empty list", func(t *testing.T) {
		svc, d := newSvc(t)
		d.st.EXPECT().CustomerByNationalID(gomock.Any(), tckn).Return(&models.Customer{ID: 5}, nil)
		d.st.EXPECT().AccountsByCustomer(gomock.Any(), int64(5)).Return(nil, nil)

		sum, err := svc.CustomerSummary(context.Background(), tckn)
		require.NoError(t, err)
		require.NotNil(t, sum.Accounts)
	})

	t.Run("malformed", func(t *testing.T) {
		svc, _ := newSvc(t)
		_, err := svc.CustomerSummary(context.Background(), "abc")
		require.ErrorIs(t, err, ErrValidationTCKN)
	})

	t.Run("not found", func(t *testing.T) {
		svc, d := newSvc(t)
		d.st.EXPECT().CustomerByNationalID(gomock.Any(), tckn).Return(nil, storage.ErrNotFound)

		_, err := svc.CustomerSummary(context.Background(), tckn)
		require.ErrorIs(t, err, ErrCustomerNotFound)
		require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestListCustomersByBranch(t *testing.T) {
	t.Parallel()

	t.Run("defaults and normalization", func(t *testing.T) {
		svc, d := newSvc(t)
		d.st.EXPECT().ListCustomersByBranch(gomock.Any(), models.CustomerFilter{
			BranchID:     2,
			AccountType:  models.AccountTerm,
			CurrencyCode: "USD",
			Query:        "ali",
			Limit:        20,
		}).Return(&models.CustomerPage{Total: 0}, nil)

		page, err := svc.ListCustomersByBranch(context.Background(), models.CustomerFilter{
			BranchID:     2,
			AccountType:  "vadeli",
			CurrencyCode: " usd",
			Query:        " ali ",
		})
		require.NoError(t, err)
		require.NotNil(t, page.Items)
	})

	cases := []struct {
		name string
		f    models.CustomerFilter
		want error
	}{
		{"branch", models.CustomerFilter{BranchID: 0}, ErrValidationBranch},
		{"type", models.CustomerFilter{BranchID: 1, AccountType: "SAVINGS"}, ErrValidationType},
		{"currency", models.CustomerFilter{BranchID: 1, CurrencyCode: "US"}, ErrValidationCCY},
		{"limit", models.CustomerFilter{BranchID: 1, Limit: 101}, ErrValidationPaging},
		{"offset", models.CustomerFilter{BranchID: 1, Offset: -1}, ErrValidationPaging},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newSvc(t)
			_, err := svc.ListCustomersByBranch(context.Background(), tc.f)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOpenAccount(t *testing.T) {
	t.Parallel()

	t.Run("demand forces zero interest", func(t *testing.T) {
		svc, d := newSvc(t)
		d.expectTx()
		d.tx.EXPECT().CustomerByNationalIDForUpdate(gomock.Any(), tckn).Return(&models.Customer{ID: 5}, nil)
		d.tx.EXPECT().InsertAccount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a models.NewAccount) (*models.Account, error) {
				require.Equal(t, "EUR", a.CurrencyCode)
				require.Equal(t, models.AccountDemand, a.AccountType)
				require.True(t, a.InterestRate.IsZero())
				return &models.Account{ID: 1, CustomerID: 5, AccountType: a.AccountType, CurrencyCode: a.CurrencyCode}, nil
			})
		d.pub.EXPECT().PublishAccountOpened(gomock.Any(), gomock.Any()).Return(nil)

		acc, err := svc.OpenAccount(context.Background(), OpenAccountInput{
			NationalID:   tckn,
			AccountType:  "vadesiz",
			CurrencyCode: "eur",
			Balance:      decimal.NewFromInt(100),
			InterestRate: decimal.NewFromInt(12),
		})
		require.NoError(t, err)
		require.Equal(t, int64(1), acc.ID)
	})

	t.Run("term keeps interest", func(t *testing.T) {
		svc, d := newSvc(t)
		d.expectTx()
		d.tx.EXPECT().CustomerByNationalIDForUpdate(gomock.Any(), tckn).Return(&models.Customer{ID: 5}, nil)
		d.tx.EXPECT().InsertAccount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a models.NewAccount) (*models.Account, error) {
				require.True(t, decimal.RequireFromString("42.5").Equal(a.InterestRate))
				return &models.Account{ID: 2, AccountType: a.AccountType}, nil
			})
		d.pub.EXPECT().PublishAccountOpened(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.OpenAccount(context.Background(), OpenAccountInput{
			NationalID:   tckn,
			AccountType:  "TERM",
			CurrencyCode: "TRY",
			InterestRate: decimal.RequireFromString("42.5"),
		})
		require.NoError(t, err)
	})

	t.Run("customer not found", func(t *testing.T) {
		svc, d := newSvc(t)
		d.expectTx()
		d.tx.EXPECT().CustomerByNationalIDForUpdate(gomock.Any(), tckn).Return(nil, storage.ErrNotFound)

		_, err := svc.OpenAccount(context.Background(), OpenAccountInput{
			NationalID: tckn, AccountType: "DEMAND", CurrencyCode: "TRY",
		})
		require.ErrorIs(t, err, ErrCustomerNotFound)
		require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	validation := []struct {
		name string
		in   OpenAccountInput
		want error
	}{
		{"tckn", OpenAccountInput{NationalID: "1", AccountType: "DEMAND", CurrencyCode: "TRY"}, ErrValidationTCKN},
		{"type", OpenAccountInput{NationalID: tckn, AccountType: "GOLD", CurrencyCode: "TRY"}, ErrValidationType},
		{"currency", OpenAccountInput{NationalID: tckn, AccountType: "DEMAND", CurrencyCode: "TL"}, ErrValidationCCY},
		{"balance", OpenAccountInput{NationalID: tckn, AccountType: "DEMAND", CurrencyCode: "TRY", Balance: decimal.NewFromInt(-1)}, ErrValidationBalance},
		{"interest high", OpenAccountInput{NationalID: tckn, AccountType: "TERM", CurrencyCode: "TRY", InterestRate: decimal.NewFromInt(51)}, ErrValidationInterest},
		{"interest negative", OpenAccountInput{NationalID: tckn, AccountType: "TERM", CurrencyCode: "TRY", InterestRate: decimal.NewFromInt(-1)}, ErrValidationInterest},
	}
	for _, tc := range validation {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newSvc(t)
			_, err := svc.OpenAccount(context.Background(), tc.in)
			require.ErrorIs(t, err, tc.want)
			require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}
