package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pribylovaa/bank-backoffice/internal/metrics"
	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/pkg/log"
	"github.com/pribylovaa/bank-backoffice/internal/pkg/redact"
	"github.com/pribylovaa/bank-backoffice/internal/storage"
)

// Имена инструментов.
const (
	ToolFindCustomer            = "find_customer"
	ToolListAccountsByCustomer  = "list_accounts_by_customer"
	ToolAccountOverview         = "account_overview"
	ToolBranchSummary           = "branch_summary"
	ToolFindCustomerAndAccounts = "find_customer_and_accounts"
)

const (
	defaultMaxAccounts = 20
	maxLimit           = 100
)

// Lookup: read-only доступ к данным для инструментов.
type Lookup interface {
	FindCustomers(ctx context.Context, lookup models.CustomerLookup) ([]models.Customer, error)
	AccountsByCustomer(ctx context.Context, customerID int64) ([]models.Account, error)
	AccountOverview(ctx context.Context, id *int64, accountNo string) (*models.AccountOverview, error)
	BranchSummary(ctx context.Context, id *int64, code *int) (*models.BranchSummary, error)
}

// Tools исполняет вызовы инструментов модели. Только чтение;
// национальный идентификатор и телефон в результатах маскируются.
type Tools struct {
	lookup Lookup
}

// NewTools создаёт исполнителя инструментов.
func NewTools(lookup Lookup) *Tools {
	return &Tools{lookup: lookup}
}

// customerView: клиент в результатах инструментов.
type customerView struct {
	ID               int64      `json:"id"`
	FullName         string     `json:"full_name"`
	Email            string     `json:"email,omitempty"`
	PhoneMasked      string     `json:"phone_masked,omitempty"`
	NationalIDMasked string     `json:"national_id_masked"`
	BirthDate        *time.Time `json:"birth_date,omitempty"`
	Gender           string     `json:"gender,omitempty"`
	Nationality      string     `json:"nationality,omitempty"`
	BranchID         int64      `json:"branch_id"`
	CreatedAt        time.Time  `json:"created_at"`
}

func viewCustomer(c *models.Customer) customerView {
	v := customerView{
		ID:               c.ID,
		FullName:         c.FullName(),
		Email:            c.Email,
		NationalIDMasked: redact.NationalID(c.NationalID),
		BirthDate:        c.BirthDate,
		Gender:           c.Gender,
		Nationality:      c.Nationality,
		BranchID:         c.BranchID,
		CreatedAt:        c.CreatedAt,
	}
	if c.Phone != "" {
		v.PhoneMasked = redact.Phone(c.Phone)
	}
	return v
}

type overviewBranch struct {
	ID       int64  `json:"id"`
	Code     int    `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
}

type overviewCustomer struct {
	ID               int64  `json:"id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email,omitempty"`
	PhoneMasked      string `json:"phone_masked,omitempty"`
	NationalIDMasked string `json:"national_id_masked"`
}

// overviewView: сводка по счёту для модели.
type overviewView struct {
	ID           int64                `json:"id"`
	AccountNo    string               `json:"account_no"`
	CurrencyCode string               `json:"currency_code"`
	AccountType  models.AccountType   `json:"account_type"`
	Balance      decimal.Decimal      `json:"balance"`
	InterestRate decimal.Decimal      `json:"interest_rate"`
	SubNo        int                  `json:"sub_no"`
	Status       models.AccountStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	Branch       *overviewBranch      `json:"branch,omitempty"`
	Customer     overviewCustomer     `json:"customer"`
}

type customerAndAccounts struct {
	Customer customerView     `json:"customer"`
	Accounts []models.Account `json:"accounts"`
}

type toolError struct {
	Error string `json:"error"`
}

// Call исполняет инструмент name. Ошибка исполнения не прерывает диалог:
// модель получает {"error":"tool_runtime_error"}, детали остаются в логе.
func (t *Tools) Call(ctx context.Context, name string, args map[string]any) any {
	const op = "assistant.Tools.Call"

	result, err := t.call(ctx, name, args)
	if err != nil {
		metrics.AssistantToolCalls.WithLabelValues(toolLabel(name), metrics.ResultError).Inc()
		log.From(ctx).Error("assistant_tool_failed",
			slog.String("op", op),
			slog.String("tool", name),
			slog.String("err", err.Error()),
		)
		return toolError{Error: "tool_runtime_error"}
	}

	metrics.AssistantToolCalls.WithLabelValues(toolLabel(name), metrics.ResultOK).Inc()

	return result
}

func (t *Tools) call(ctx context.Context, name string, args map[string]any) (any, error) {
	switch name {
	case ToolFindCustomer:
		return t.findCustomer(ctx, args)
	case ToolListAccountsByCustomer:
		return t.listAccounts(ctx, args)
	case ToolAccountOverview:
		return t.accountOverview(ctx, args)
	case ToolBranchSummary:
		return t.branchSummary(ctx, args)
	case ToolFindCustomerAndAccounts:
		return t.findCustomerAndAccounts(ctx, args)
	default:
		return toolError{Error: "unknown_tool"}, nil
	}
}

func (t *Tools) findCustomer(ctx context.Context, args map[string]any) (any, error) {
	lookup := models.CustomerLookup{Limit: clampLimit(argInt(args, "limit"), 0)}

	switch {
	case argInt64(args, "id") != nil:
		lookup.ID = argInt64(args, "id")
	case argString(args, "national_id") != "":
		tckn := digitsOnly(argString(args, "national_id"))
		if len(tckn) != 11 {
			return []customerView{}, nil
		}
		lookup.NationalID = tckn
	case argString(args, "email") != "":
		lookup.Email = strings.ToLower(argString(args, "email"))
	case argString(args, "phone") != "":
		lookup.Phone = digitsOnly(argString(args, "phone"))
		if lookup.Phone == "" {
			return []customerView{}, nil
		}
	case argString(args, "name") != "":
		lookup.Name = argString(args, "name")
	default:
		return []customerView{}, nil
	}

	found, err := t.lookup.FindCustomers(ctx, lookup)
	if err != nil {
		return nil, err
	}

	out := make([]customerView, 0, len(found))
	for i := range found {
		out = append(out, viewCustomer(&found[i]))
	}

	return out, nil
}

func (t *Tools) listAccounts(ctx context.Context, args map[string]any) (any, error) {
	id := argInt64(args, "customer_id")
	if id == nil || *id <= 0 {
		return []models.Account{}, nil
	}

	accounts, err := t.lookup.AccountsByCustomer(ctx, *id)
	if err != nil {
		return nil, err
	}

	return filterStatus(accounts, argString(args, "status")), nil
}

func (t *Tools) accountOverview(ctx context.Context, args map[string]any) (any, error) {
	id := argInt64(args, "account_id")
	no := argString(args, "account_no")
	if id == nil && no == "" {
		return nil, nil
	}

	ov, err := t.lookup.AccountOverview(ctx, id, no)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	a := ov.Account
	v := overviewView{
		ID:           a.ID,
		AccountNo:    a.AccountNo,
		CurrencyCode: a.CurrencyCode,
		AccountType:  a.AccountType,
		Balance:      a.Balance,
		InterestRate: a.InterestRate,
		SubNo:        a.SubNo,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt,
		Customer: overviewCustomer{
			ID:               ov.Customer.ID,
			FullName:         ov.Customer.FullName(),
			Email:            ov.Customer.Email,
			NationalIDMasked: redact.NationalID(ov.Customer.NationalID),
		},
	}
	if ov.Customer.Phone != "" {
		v.Customer.PhoneMasked = redact.Phone(ov.Customer.Phone)
	}
	if b := ov.Branch; b != nil {
		v.Branch = &overviewBranch{ID: b.ID, Code: b.Code, Name: b.Name, City: b.City, District: b.District}
	}

	return v, nil
}

func (t *Tools) branchSummary(ctx context.Context, args map[string]any) (any, error) {
	id := argInt64(args, "branch_id")
	var code *int
	if c := argInt64(args, "branch_code"); c != nil {
		v := int(*c)
		code = &v
	}
	if id == nil && code == nil {
		return nil, nil
	}

	sum, err := t.lookup.BranchSummary(ctx, id, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return sum, nil
}

func (t *Tools) findCustomerAndAccounts(ctx context.Context, args map[string]any) (any, error) {
	lookup := models.CustomerLookup{Limit: 1}

	switch {
	case argInt64(args, "id") != nil:
		lookup.ID = argInt64(args, "id")
	case argString(args, "national_id") != "":
		tckn := digitsOnly(argString(args, "national_id"))
		if len(tckn) != 11 {
			return nil, nil
		}
		lookup.NationalID = tckn
	default:
		return nil, nil
	}

	found, err := t.lookup.FindCustomers(ctx, lookup)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	c := found[0]

	accounts, err := t.lookup.AccountsByCustomer(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	accounts = filterStatus(accounts, argString(args, "status"))
	if n := clampLimit(argInt(args, "max_accounts"), defaultMaxAccounts); len(accounts) > n {
		accounts = accounts[:n]
	}

	return customerAndAccounts{Customer: viewCustomer(&c), Accounts: accounts}, nil
}

func filterStatus(accounts []models.Account, status string) []models.Account {
	status = strings.ToUpper(strings.TrimSpace(status))
	out := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		if status == "" || string(a.Status) == status {
			out = append(out, a)
		}
	}
	return out
}

// clampLimit приводит limit к 1..100; 0, def.
func clampLimit(n, def int) int {
	switch {
	case n <= 0:
		return def
	case n > maxLimit:
		return maxLimit
	default:
		return n
	}
}

// toolLabel ограничивает кардинальность метки tool.
func toolLabel(name string) string {
	switch name {
	case ToolFindCustomer, ToolListAccountsByCustomer, ToolAccountOverview,
		ToolBranchSummary, ToolFindCustomerAndAccounts:
		return name
	default:
		return "unknown"
	}
}

// argInt64 читает целое из числа или строки с цифрами.
func argInt64(args map[string]any, key string) *int64 {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}

	var s string
	switch x := v.(type) {
	case json.Number:
		s = x.String()
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		s = strings.TrimSpace(x)
	default:
		s = fmt.Sprint(x)
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func argInt(args map[string]any, key string) int {
	if v := argInt64(args, key); v != nil {
		return int(*v)
	}
	return 0
}

func argString(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return strings.TrimSpace(s)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
