package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pharmasync/pharmasync/internal/platform/memstore"
	"github.com/pharmasync/pharmasync/internal/shared"
)

func newTestService(t *testing.T) (*Service, User) {
	t.Helper()
	svc := NewService(memstore.NewCollection[User]())
	user, err := svc.Register(context.Background(), User{Name: "Maria Santos", Email: "maria@pharmasync.ph", Role: "Pharmacist"}, "demo1234")
	require.NoError(t, err)
	return svc, user
}

func TestAuthenticate(t *testing.T) {
	svc, seeded := newTestService(t)
	ctx := context.Background()

	user, err := svc.Authenticate(ctx, "maria@pharmasync.ph", "demo1234")
	require.NoError(t, err)
	require.Equal(t, seeded.ID, user.ID)

	user, err = svc.Authenticate(ctx, "MARIA@pharmasync.ph", "demo1234")
	require.NoError(t, err)
	require.Equal(t, seeded.ID, user.ID)
}

func TestAuthenticateRejections(t *testing.T) {
	svc, seeded := newTestService(t)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "maria@pharmasync.ph", "wrong")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@pharmasync.ph", "demo1234")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)

	inactive := seeded
	inactive.Active = false
	_, err = svc.store.Update(inactive)
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "maria@pharmasync.ph", "demo1234")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestPasswordHashNeverSerialized(t *testing.T) {
	svc, seeded := newTestService(t)

	user, err := svc.Get(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, "demo1234", user.PasswordHash)
}
