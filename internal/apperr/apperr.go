// apperr описывает доменные ошибки сервиса: закрытое перечисление видов
// (Kind) и стабильный машиночитаемый код (Code).
//
// Слои ниже HTTP возвращают *Error (обёрнутые через %w), транспорт
// извлекает вид через KindOf и выполняет тотальный маппинг в статус.
// Всё, что не является *Error, считается инфраструктурной ошибкой.
package apperr

import "errors"

// Kind: вид доменной ошибки.
type Kind int

const (
	// KindInternal: непредвиденная/инфраструктурная ошибка.
	KindInternal Kind = iota
	// KindValidation: некорректный ввод, обнаружен до любого I/O.
	KindValidation
	// KindNotFound: связанная сущность отсутствует.
	KindNotFound
	// KindConflict: нарушено предусловие состояния (уже закрыт, дубликат).
	KindConflict
	// KindBusinessRule: нарушено бизнес-правило (валюта, получатель).
	KindBusinessRule
	// KindUnauthenticated: нет/битый/просроченный/отозванный токен.
	KindUnauthenticated
	// KindUnavailable: недоступна зависимость, без которой нельзя
	// безопасно продолжить (хранилище сессий).
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindBusinessRule:
		return "business_rule"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// Error: доменная ошибка.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

// New создаёт доменную ошибку.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}

	return e.Code + ": " + e.Message
}

// Is сравнивает по коду: копия с уточнённым сообщением остаётся
// той же ошибкой для errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Code == e.Code
}

// WithMessage возвращает копию с другим сообщением.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// From извлекает *Error из цепочки.
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}

// KindOf возвращает вид ошибки; для не доменных ошибок, KindInternal.
func KindOf(err error) Kind {
	if e, ok := From(err); ok {
		return e.Kind
	}

	return KindInternal
}
