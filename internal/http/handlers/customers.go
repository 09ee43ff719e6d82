package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/bank-backoffice/internal/apperr"
	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/service"
)

const dateLayout = "2006-01-02"

var errInvalidBirthDate = apperr.New(apperr.KindValidation, "VALIDATION_BIRTH_DATE", "birth_date must be YYYY-MM-DD")

type createCustomerRequest struct {
	NationalID         string `json:"national_id"`
	SerialNo           string `json:"serial_no"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	BirthDate          string `json:"birth_date"`
	Gender             string `json:"gender"`
	Nationality        string `json:"nationality"`
	MotherName         string `json:"mother_name"`
	FatherName         string `json:"father_name"`
	Address            string `json:"address"`
	BranchID           *int64 `json:"branch_id"`
	BranchCode         *int   `json:"branch_code"`
	OpenDefaultAccount bool   `json:"open_default_account"`
}

func (in createCustomerRequest) toModel() (models.NewCustomer, error) {
	out := models.NewCustomer{
		NationalID:         in.NationalID,
		SerialNo:           in.SerialNo,
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		Phone:              in.Phone,
		Email:              in.Email,
		Gender:             in.Gender,
		Nationality:        in.Nationality,
		MotherName:         in.MotherName,
		FatherName:         in.FatherName,
		Address:            in.Address,
		BranchID:           in.BranchID,
		BranchCode:         in.BranchCode,
		OpenDefaultAccount: in.OpenDefaultAccount,
	}

	if s := strings.TrimSpace(in.BirthDate); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return out, errInvalidBirthDate
		}
		out.BirthDate = &d
	}

	return out, nil
}

func (h *Handlers) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var in createCustomerRequest
	if err := decodeStrict(r, &in); err != nil {
		writeError(w, r, errInvalidBody)
		return
	}

	nc, err := in.toModel()
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.Customers.CreateCustomer(r.Context(), nc)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) CustomerSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.Customers.CustomerSummary(r.Context(), r.URL.Query().Get("national_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sum)
}

func (h *Handlers) ListCustomersByBranch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	branchID, err := strconv.ParseInt(q.Get("branch_id"), 10, 64)
	if err != nil {
		writeError(w, r, service.ErrValidationBranch)
		return
	}

	limit, ok := queryInt(q.Get("limit"))
	if !ok {
		writeError(w, r, service.ErrValidationPaging)
		return
	}
	offset, ok := queryInt(q.Get("offset"))
	if !ok {
		writeError(w, r, service.ErrValidationPaging)
		return
	}

	page, err := h.Customers.ListCustomersByBranch(r.Context(), models.CustomerFilter{
		BranchID:     branchID,
		AccountType:  models.AccountType(q.Get("account_type")),
		CurrencyCode: q.Get("currency_code"),
		Query:        q.Get("q"),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// queryInt: пустое значение, 0.
func queryInt(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}
