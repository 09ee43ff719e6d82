package service

import "github.com/pribylovaa/bank-backoffice/internal/apperr"

// Ошибки аутентификации и сессий.
var (
	// ErrInvalidCredentials: неверная пара логин/пароль или сотрудник не найден.
	ErrInvalidCredentials = apperr.New(apperr.KindUnauthenticated, "INVALID_CREDENTIALS", "invalid credentials")
	// ErrCredentialsFormat: логин не 11 цифр или пароль короче 6 символов.
	ErrCredentialsFormat = apperr.New(apperr.KindValidation, "VALIDATION_CREDENTIALS", "username must be 11 digits and password at least 6 characters")
	// ErrUserExists: логин занят.
	ErrUserExists = apperr.New(apperr.KindConflict, "USER_EXISTS", "user already exists")
	// ErrMissingToken: нет bearer-токена.
	ErrMissingToken = apperr.New(apperr.KindUnauthenticated, "NO_TOKEN", "authorization token required")
	// ErrInvalidToken: подпись/формат/вид токена не прошли проверку.
	ErrInvalidToken = apperr.New(apperr.KindUnauthenticated, "INVALID_TOKEN", "invalid token")
	// ErrTokenExpired: срок действия токена истёк.
	ErrTokenExpired = apperr.New(apperr.KindUnauthenticated, "TOKEN_EXPIRED", "token expired")
	// ErrTokenRevoked: jti в чёрном списке.
	ErrTokenRevoked = apperr.New(apperr.KindUnauthenticated, "TOKEN_REVOKED", "token revoked")
	// ErrRefreshMissing: нет refresh-cookie.
	ErrRefreshMissing = apperr.New(apperr.KindUnauthenticated, "REFRESH_MISSING", "refresh token required")
	// ErrRefreshNotRecognized: refresh jti отсутствует в хранилище или принадлежит другому субъекту.
	ErrRefreshNotRecognized = apperr.New(apperr.KindUnauthenticated, "REFRESH_NOT_RECOGNIZED", "refresh token not recognized")
	// ErrSessionStoreUnavailable: хранилище сессий недоступно; запрос отклоняется.
	ErrSessionStoreUnavailable = apperr.New(apperr.KindUnavailable, "SESSION_STORE_UNAVAILABLE", "session store unavailable")
)

// Ошибки клиентов и открытия счетов.
var (
	ErrValidationTCKN     = apperr.New(apperr.KindValidation, "VALIDATION_TCKN", "national id must be 11 digits")
	ErrValidationName     = apperr.New(apperr.KindValidation, "VALIDATION_NAME", "first and last name are required")
	ErrValidationType     = apperr.New(apperr.KindValidation, "VALIDATION_TYPE", "account type must be DEMAND or TERM")
	ErrValidationCCY      = apperr.New(apperr.KindValidation, "VALIDATION_CCY", "currency code must be 3 letters")
	ErrValidationBalance  = apperr.New(apperr.KindValidation, "VALIDATION_BALANCE", "balance must not be negative")
	ErrValidationInterest = apperr.New(apperr.KindValidation, "VALIDATION_INTEREST", "interest rate must be between 0 and 50")
	ErrValidationBranch   = apperr.New(apperr.KindValidation, "VALIDATION_BRANCH", "branch id must be positive")
	ErrValidationPaging   = apperr.New(apperr.KindValidation, "VALIDATION_PAGING", "limit must be 1..100 and offset non-negative")
	ErrBranchRequired     = apperr.New(apperr.KindValidation, "BRANCH_REQUIRED", "customer must belong to an existing branch")
	ErrDuplicateTCKN      = apperr.New(apperr.KindConflict, "DUPLICATE_TCKN", "customer with this national id already exists")
	ErrCustomerNotFound   = apperr.New(apperr.KindNotFound, "NOT_FOUND_CUSTOMER", "customer not found")
)

// Ошибки закрытия счёта.
var (
	ErrInvalidPayoutMethod    = apperr.New(apperr.KindValidation, "INVALID_PAYOUT_METHOD", "payout method must be CASH or TRANSFER")
	ErrAccountNotFound        = apperr.New(apperr.KindNotFound, "ACCOUNT_NOT_FOUND", "account not found")
	ErrAccountAlreadyClosed   = apperr.New(apperr.KindConflict, "ACCOUNT_ALREADY_CLOSED", "account already closed")
	ErrNegativeBalance        = apperr.New(apperr.KindBusinessRule, "NEGATIVE_BALANCE", "account balance is negative")
	ErrTransferTargetRequired = apperr.New(apperr.KindBusinessRule, "TRANSFER_TARGET_REQUIRED", "payout method and target account are required for a non-zero balance")
	ErrTransferTargetNotFound = apperr.New(apperr.KindNotFound, "TRANSFER_TARGET_NOT_FOUND", "transfer target account not found")
	ErrTransferTargetInvalid  = apperr.New(apperr.KindBusinessRule, "TRANSFER_TARGET_INVALID", "transfer target must be another active demand account of the same customer")
	ErrCurrencyMismatch       = apperr.New(apperr.KindBusinessRule, "CURRENCY_MISMATCH", "transfer target currency differs")
)
