package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/storage"
)

func TestIntegration_SaveUser_And_ByUsername(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	u := &models.User{
		ID:           uuid.New(),
		Username:     "12345678901",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, st.SaveUser(ctx, u))

	got, err := st.UserByUsername(ctx, "12345678901")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, "hash", got.PasswordHash)
	require.True(t, u.CreatedAt.Equal(got.CreatedAt))

	dup := *u
	dup.ID = uuid.New()
	require.ErrorIs(t, st.SaveUser(ctx, &dup), storage.ErrAlreadyExists)

	_, err = st.UserByUsername(ctx, "00000000000")
	require.ErrorIs(t, err, storage.ErrNotFound)
}
