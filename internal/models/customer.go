package models

import "time"

// Customer: клиент банка. NationalID (11 цифр) уникален и неизменен.
type Customer struct {
	ID          int64      `json:"id"`
	NationalID  string     `json:"national_id"`
	SerialNo    string     `json:"serial_no,omitempty"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	Nationality string     `json:"nationality,omitempty"`
	MotherName  string     `json:"mother_name,omitempty"`
	FatherName  string     `json:"father_name,omitempty"`
	Address     string     `json:"address,omitempty"`
	BranchID    int64      `json:"branch_id"`
	BranchCode  *int       `json:"branch_code,omitempty"`
	BranchName  string     `json:"branch_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FullName: имя и фамилия через пробел.
func (c *Customer) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}

// CustomerSummary: клиент и все его счета (новые первыми).
type CustomerSummary struct {
	Customer Customer  `json:"customer"`
	Accounts []Account `json:"accounts"`
}

// CustomerWithAccounts: элемент постраничного списка клиентов отделения.
type CustomerWithAccounts struct {
	Customer
	Accounts []Account `json:"accounts"`
}

// CustomerPage: страница списка клиентов с общим количеством.
type CustomerPage struct {
	Items []CustomerWithAccounts `json:"items"`
	Total int64                  `json:"total"`
}

// CustomerFilter: фильтр списка клиентов отделения.
// BranchID == HeadOfficeBranchID снимает ограничение по отделению.
type CustomerFilter struct {
	BranchID     int64
	AccountType  AccountType
	CurrencyCode string
	Query        string
	Limit        int
	Offset       int
}

// CustomerLookup: критерии поиска клиентов (первый заданный побеждает).
type CustomerLookup struct {
	ID         *int64
	NationalID string
	Email      string
	Phone      string
	Name       string
	Limit      int
}

// NewCustomer: входные данные для создания клиента. Отделение задаётся
// либо BranchID, либо BranchCode.
type NewCustomer struct {
	NationalID         string
	SerialNo           string
	FirstName          string
	LastName           string
	Phone              string
	Email              string
	BirthDate          *time.Time
	Gender             string
	Nationality        string
	MotherName         string
	FatherName         string
	Address            string
	BranchID           *int64
	BranchCode         *int
	OpenDefaultAccount bool
}

// CreatedCustomer: результат онбординга.
type CreatedCustomer struct {
	Customer       Customer `json:"customer"`
	DefaultAccount *Account `json:"default_account"`
}
