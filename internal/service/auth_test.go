package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/bank-backoffice/internal/apperr"
	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/storage"
)

const (
	staffID  = "12345678901"
	staffPW  = "secret-pw"
	staffPW2 = "other-pw"
)

func mustHashPW(t *testing.T, pw string) string {
	t.Helper()
	h, err := hashPassword(pw)
	require.NoError(t, err)
	return h
}

func TestSignup_OK(t *testing.T) {
	t.Parallel()

	svc, d := newSvc(t)

	d.st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			require.Equal(t, staffID, u.Username)
			require.NotEqual(t, staffPW, u.PasswordHash)
			require.True(t, checkPassword(u.PasswordHash, staffPW))
			return nil
		})

	id, err := svc.Signup(context.Background(), " "+staffID+" ", staffPW)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)
}

func TestSignup_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)

	cases := []struct{ user, pw string }{
		{"1234567890", staffPW},
		{"1234567890a", staffPW},
		{staffID, "12345"},
	}
	for _, c := range cases {
		_, err := svc.Signup(context.Background(), c.user, c.pw)
		require.ErrorIs(t, err, ErrCredentialsFormat)
		require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
}

func TestSignup_Duplicate(t *testing.T) {
	t.Parallel()

	svc, d := newSvc(t)
	d.st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	_, err := svc.Signup(context.Background(), staffID, staffPW)
	require.ErrorIs(t, err, ErrUserExists)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func expectOpenSession(d deps, sliding bool) {
	d.sess.EXPECT().SaveSession(gomock.Any(), gomock.Any(), staffID, 2*time.Minute).Return(nil)
	if sliding {
		d.sess.EXPECT().TouchSliding(gomock.Any(), gomock.Any(), staffID, 20*time.Second).Return(nil)
	}
	d.sess.EXPECT().SaveRefresh(gomock.Any(), gomock.Any(), staffID, 24*time.Hour).Return(nil)
}

func TestLogin_OK(t *testing.T) {
	t.Parallel()

	svc, d := newSvc(t)

	d.st.EXPECT().UserByUsername(gomock.Any(), staffID).
		Return(&models.User{Username: staffID, PasswordHash: mustHashPW(t, staffPW)}, nil)
	expectOpenSession(d, true)

	pair, err := svc.Login(context.Background(), staffID, staffPW)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.Equal(t, 2*time.Minute, pair.AccessExpiresIn)

	claims, err := svc.tokens.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, staffID, claims.Subject)
	require.Equal(t, pair.AccessJTI, claims.JTI)
}

func TestLogin_SlidingDisabled(t *testing.T) {
	t.Parallel()

	cfg := testCfg()
	cfg.DisableSliding = true
	svc, d := newSvcWithCfg(t, cfg)

	d.st.EXPECT().UserByUsername(gomock.Any(), staffID).
		Return(&models.User{Username: staffID, PasswordHash: mustHashPW(t, staffPW)}, nil)
	expectOpenSession(d, false)

	_, err := svc.Login(context.Background(), staffID, staffPW)
	require.NoError(t, err)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	t.Run("unknown user", func(t *testing.T) {
		svc, d := newSvc(t)
		d.st.EXPECT().UserByUsername(gomock.Any(), staffID).Return(nil, storage.ErrNotFound)

		_, err := svc.Login(context.Background(), staffID, staffPW)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, d := newSvc(t)
		d.st.EXPECT().UserByUsername(gomock.Any(), staffID).
			Return(&models.User{Username: staffID, PasswordHash: mustHashPW(t, staffPW)}, nil)

		_, err := svc.Login(context.Background(), staffID, staffPW2)
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	})

	t.Run("malformed username", func(t *testing.T) {
		svc, _ := newSvc(t)

		_, err := svc.Login(context.Background(), "admin", staffPW)
		require.ErrorIs(t, err, ErrCredentialsFormat)
	})
}

func TestLogin_SessionStoreDown(t *testing.T) {
	t.Parallel()

	svc, d := newSvc(t)

	d.st.EXPECT().UserByUsername(gomock.Any(), staffID).
		Return(&models.User{Username: staffID, PasswordHash: mustHashPW(t, staffPW)}, nil)
	d.sess.EXPECT().SaveSession(gomock.Any(), gomock.Any(), staffID, gomock.Any()).Return(errors.New("dial tcp: refused"))

	_, err := svc.Login(context.Background(), staffID, staffPW)
	require.ErrorIs(t, err, ErrSessionStoreUnavailable)
	require.Equal(t, apperr.KindUnavailable, apperr.KindOf(err))
}

func TestRefresh_RotatesAndRejectsReuse(t *testing.T) {
	t.Parallel()

	svc, d := newSvc(t)

	old, err := svc.tokens.IssueRefresh(staffID)
	require.NoError(t, err)

	// Первая ротация: запись есть и удаляется.
	d.sess.EXPECT().ConsumeRefresh(gomock.Any(), old.JTI, staffID).Return(true, nil)
	expectOpenSession(d, true)

	pair, err := svc.Refresh(context.Background(), old.Token)
	require.NoError(t, err)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, old.Token, pair.RefreshToken)

	fresh, err := svc.tokens.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, old.JTI, fresh.JTI)

	// Повтор со старым токеном: записи уже нет.
	d.sess.EXPECT().ConsumeRefresh(gomock.Any(), old.JTI, staffID).Return(false, nil)

	_, err = svc.Refresh(context.Background(), old.Token)
	require.ErrorIs(t, err, ErrRefreshNotRecognized)
}

func TestRefresh_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing", func(t *testing.T) {
		svc, _ := newSvc(t)
		_, err := svc.Refresh(context.Background(), "")
		require.ErrorIs(t, err, ErrRefreshMissing)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		svc, _ := newSvc(t)
		access, err := svc.tokens.IssueAccess(staffID)
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), access.Token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("store down", func(t *testing.T) {
		svc, d := newSvc(t)
		rt, err := svc.tokens.IssueRefresh(staffID)
		require.NoError(t, err)
		d.sess.EXPECT().ConsumeRefresh(gomock.Any(), rt.JTI, staffID).Return(false, errors.New("timeout"))

		_, err = svc.Refresh(context.Background(), rt.Token)
		require.ErrorIs(t, err, ErrSessionStoreUnavailable)
	})
}

func TestLogout_RevokesAccessAndRefresh(t *testing.T) {
	t.Parallel()

	svc, d := newSvc(t)

	access, err := svc.tokens.IssueAccess(staffID)
	require.NoError(t, err)
	refresh, err := svc.tokens.IssueRefresh(staffID)
	require.NoError(t, err)

	d.sess.EXPECT().Revoke(gomock.Any(), access.JTI, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
			require.Greater(t, ttl, time.Duration(0))
			require.LessOrEqual(t, ttl, 2*time.Minute)
			return nil
		})
	d.sess.EXPECT().DeleteRefresh(gomock.Any(), refresh.JTI).Return(nil)

	require.NoError(t, svc.Logout(context.Background(), access.Token, refresh.Token))
}

func TestLogout_IgnoresInvalidTokens(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)
	require.NoError(t, svc.Logout(context.Background(), "garbage", "garbage"))
	require.NoError(t, svc.Logout(context.Background(), "", ""))
}

func TestLogout_StoreDown(t *testing.T) {
	t.Parallel()

	svc, d := newSvc(t)
	access, err := svc.tokens.IssueAccess(staffID)
	require.NoError(t, err)

	d.sess.EXPECT().Revoke(gomock.Any(), access.JTI, gomock.Any()).Return(errors.New("down"))

	err = svc.Logout(context.Background(), access.Token, "")
	require.ErrorIs(t, err, ErrSessionStoreUnavailable)
}

func TestAuthenticate_Admitted(t *testing.T) {
	t.Parallel()

	svc, d := newSvc(t)
	access, err := svc.tokens.IssueAccess(staffID)
	require.NoError(t, err)

	d.sess.EXPECT().IsBlacklisted(gomock.Any(), access.JTI).Return(false, nil)
	d.sess.EXPECT().TouchSliding(gomock.Any(), access.JTI, staffID, 20*time.Second).Return(nil)

	p, err := svc.Authenticate(context.Background(), access.Token)
	require.NoError(t, err)
	require.Equal(t, staffID, p.Subject)
	require.Equal(t, access.JTI, p.JTI)
}

func TestAuthenticate_SlidingFailureDoesNotReject(t *testing.T) {
	t.Parallel()

	svc, d := newSvc(t)
	access, err := svc.tokens.IssueAccess(staffID)
	require.NoError(t, err)

	d.sess.EXPECT().IsBlacklisted(gomock.Any(), access.JTI).Return(false, nil)
	d.sess.EXPECT().TouchSliding(gomock.Any(), access.JTI, staffID, gomock.Any()).Return(errors.New("oops"))

	_, err = svc.Authenticate(context.Background(), access.Token)
	require.NoError(t, err)
}

func TestAuthenticate_BlacklistedBeforeExpiry(t *testing.T) {
	t.Parallel()

	svc, d := newSvc(t)
	access, err := svc.tokens.IssueAccess(staffID)
	require.NoError(t, err)

	// Подпись и срок валидны, но jti отозван.
	_, err = svc.tokens.VerifyAccess(access.Token)
	require.NoError(t, err)

	d.sess.EXPECT().IsBlacklisted(gomock.Any(), access.JTI).Return(true, nil)

	_, err = svc.Authenticate(context.Background(), access.Token)
	require.ErrorIs(t, err, ErrTokenRevoked)
	require.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestAuthenticate_FailClosedWhenStoreDown(t *testing.T) {
	t.Parallel()

	svc, d := newSvc(t)
	access, err := svc.tokens.IssueAccess(staffID)
	require.NoError(t, err)

	d.sess.EXPECT().IsBlacklisted(gomock.Any(), access.JTI).Return(false, errors.New("connection refused"))

	_, err = svc.Authenticate(context.Background(), access.Token)
	require.ErrorIs(t, err, ErrSessionStoreUnavailable)
	require.Equal(t, apperr.KindUnavailable, apperr.KindOf(err))
}

func TestAuthenticate_TokenErrors(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)

	_, err := svc.Authenticate(context.Background(), "")
	require.ErrorIs(t, err, ErrMissingToken)

	_, err = svc.Authenticate(context.Background(), "not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)

	refresh, err := svc.tokens.IssueRefresh(staffID)
	require.NoError(t, err)
	_, err = svc.Authenticate(context.Background(), refresh.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticate_Expired(t *testing.T) {
	t.Parallel()

	cfg := testCfg()
	cfg.AccessTokenTTL = -time.Minute
	svc, _ := newSvcWithCfg(t, cfg)

	access, err := svc.tokens.IssueAccess(staffID)
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), access.Token)
	require.ErrorIs(t, err, ErrTokenExpired)
}
