package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

type mockUserRepo struct {
	mock.Mock
	fakeUsers
}

func (m *mockUserRepo) ListAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).([]*entity.User)
	return l, args.Error(1)
}

func (m *mockUserRepo) UpdateClaims(ctx context.Context, userID, storeID, role string) error {
	return m.Called(ctx, userID, storeID, role).Error(0)
}

func TestClaimsBackfill_Run(t *testing.T) {
	ctx := context.Background()
	stores := &fakeStores{byID: map[string]*entity.Store{
		"s1": {ID: "s1", OwnerID: "u-legacy"},
		"s2": {ID: "s2", OwnerID: "u-falla"},
	}}
	users := &mockUserRepo{}
	users.On("ListAll", ctx).Return([]*entity.User{
		{ID: "u-ok", Email: "ok@x.com", StoreID: "s9", Role: entity.RoleStaff},
		{ID: "u-legacy", Email: "legacy@x.com"},
		{ID: "u-sin", Email: "sin@x.com"},
		{ID: "u-falla", Email: "falla@x.com"},
	}, nil)
	users.On("UpdateClaims", ctx, "u-legacy", "s1", entity.RoleOwner).Return(nil)
	users.On("UpdateClaims", ctx, "u-falla", "s2", entity.RoleOwner).Return(errors.New("timeout"))

	var seen []string
	report, err := auth.NewClaimsBackfill(users, stores).Run(ctx, func(r auth.BackfillResult) {
		seen = append(seen, r.UserID)
	})
	require.NoError(t, err)
	users.AssertExpectations(t)

	assert.Equal(t, auth.BackfillStats{Total: 4, Migrated: 1, AlreadyHasClaims: 1, NoStore: 1, Errors: 1}, report.Stats)
	assert.Equal(t, []string{"u-ok", "u-legacy", "u-sin", "u-falla"}, seen)

	byUser := map[string]auth.BackfillResult{}
	for _, r := range report.Results {
		byUser[r.UserID] = r
	}
	assert.Equal(t, auth.BackfillAlreadyHasClaims, byUser["u-ok"].Status)
	assert.Equal(t, entity.RoleStaff, byUser["u-ok"].Role)
	assert.Equal(t, auth.BackfillMigrated, byUser["u-legacy"].Status)
	assert.Equal(t, "s1", byUser["u-legacy"].StoreID)
	assert.Equal(t, auth.BackfillNoStore, byUser["u-sin"].Status)
	assert.Equal(t, auth.BackfillError, byUser["u-falla"].Status)
	assert.Equal(t, "timeout", byUser["u-falla"].Error)
}

func TestClaimsBackfill_ErrorAlListar(t *testing.T) {
	ctx := context.Background()
	users := &mockUserRepo{}
	users.On("ListAll", ctx).Return(nil, errors.New("db caída"))

	_, err := auth.NewClaimsBackfill(users, &fakeStores{byID: map[string]*entity.Store{}}).Run(ctx, nil)
	assert.Error(t, err)
}
