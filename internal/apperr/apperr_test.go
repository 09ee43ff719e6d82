package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var errSample = New(KindConflict, "ACCOUNT_ALREADY_CLOSED", "account already closed")

func TestIs_MatchesByCode(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("service.CloseAccount: %w", errSample.WithMessage("account 7 already closed"))
	require.ErrorIs(t, wrapped, errSample)
	require.NotErrorIs(t, wrapped, New(KindConflict, "DUPLICATE_TCKN", ""))
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, KindConflict, KindOf(fmt.Errorf("x: %w", errSample)))
	require.Equal(t, KindInternal, KindOf(errors.New("db down")))
	require.Equal(t, KindInternal, KindOf(nil))
}

func TestFrom(t *testing.T) {
	t.Parallel()

	e, ok := From(fmt.Errorf("x: %w", errSample))
	require.True(t, ok)
	require.Equal(t, "ACCOUNT_ALREADY_CLOSED", e.Code)

	_, ok = From(errors.New("plain"))
	require.False(t, ok)
}

func TestError_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ACCOUNT_ALREADY_CLOSED: account already closed", errSample.Error())
	require.Equal(t, "CODE", New(KindValidation, "CODE", "").Error())
	require.Equal(t, "business_rule", KindBusinessRule.String())
}
