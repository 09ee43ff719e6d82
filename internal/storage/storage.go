package storage

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/pribylovaa/bank-backoffice/internal/models"
)

var (
	// ErrNotFound: запись не найдена (клиент/счёт/отделение/сотрудник).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists: нарушение уникальности (national_id/username).
	ErrAlreadyExists = errors.New("already exists")
)

// UserStorage выполняет операции над сотрудниками.
type UserStorage interface {
	// SaveUser создаёт нового сотрудника.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByUsername находит сотрудника по логину.
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

// CustomerStorage: чтение клиентов вне транзакций.
type CustomerStorage interface {
	CustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	CustomerByNationalID(ctx context.Context, nationalID string) (*models.Customer, error)
	// FindCustomers ищет по первому заданному критерию lookup.
	FindCustomers(ctx context.Context, lookup models.CustomerLookup) ([]models.Customer, error)
	// ListCustomersByBranch: постраничный список клиентов со счетами.
	ListCustomersByBranch(ctx context.Context, filter models.CustomerFilter) (*models.CustomerPage, error)
}

// AccountStorage: чтение счетов вне транзакций.
type AccountStorage interface {
	// AccountsByCustomer: счета клиента, новые первыми.
	AccountsByCustomer(ctx context.Context, customerID int64) ([]models.Account, error)
	// AccountOverview ищет счёт по id или номеру.
	AccountOverview(ctx context.Context, id *int64, accountNo string) (*models.AccountOverview, error)
	// BranchSummary: агрегаты отделения по id или коду.
	BranchSummary(ctx context.Context, id *int64, code *int) (*models.BranchSummary, error)
}

// Tx: операции, выполняемые внутри одной транзакции. Блокировки,
// взятые через ...ForUpdate/LockAccounts, держатся до commit/rollback.
type Tx interface {
	// ResolveBranch возвращает id отделения по id или коду.
	ResolveBranch(ctx context.Context, id *int64, code *int) (int64, error)
	// InsertCustomer создаёт клиента в отделении branchID.
	InsertCustomer(ctx context.Context, c *models.NewCustomer, branchID int64) (*models.Customer, error)
	// CustomerByID читает клиента в рамках транзакции.
	CustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	// CustomerByNationalIDForUpdate читает и блокирует строку клиента.
	CustomerByNationalIDForUpdate(ctx context.Context, nationalID string) (*models.Customer, error)
	// InsertAccount создаёт счёт; номер, sub_no и отделение назначает хранилище.
	InsertAccount(ctx context.Context, a models.NewAccount) (*models.Account, error)
	// LockAccounts блокирует строки счетов в порядке возрастания id и
	// возвращает найденные. Отсутствующие id в карте не появляются.
	LockAccounts(ctx context.Context, ids ...int64) (map[int64]*models.Account, error)
	// AddBalance прибавляет amount к остатку и возвращает новый остаток.
	AddBalance(ctx context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error)
	// CloseAccount переводит активный счёт в CLOSED с нулевым остатком.
	CloseAccount(ctx context.Context, id int64) error
}

// Storage задаёт контракт работы с БД.
type Storage interface {
	UserStorage
	CustomerStorage
	AccountStorage
	// WithinTx выполняет fn в транзакции: commit при nil, rollback при
	// ошибке или панике. Соединение возвращается в пул на любом пути.
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
	Ping(ctx context.Context) error
	Close()
}
