package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appStore "github.com/peemtanapat/retail-backoffice/internal/application/store"
	"github.com/peemtanapat/retail-backoffice/internal/domain/store"
	"github.com/peemtanapat/retail-backoffice/internal/infrastructure/memory"
)

func TestRegisterStore(t *testing.T) {
	svc := appStore.NewService(memory.NewStoreRepository(), nil)
	ctx := context.Background()

	st, err := svc.Register(ctx, "Downtown", "1 Main St")
	require.NoError(t, err)
	assert.NotZero(t, st.ID)

	_, err = svc.Register(ctx, "Downtown", "1 Main St")
	assert.ErrorIs(t, err, store.ErrDuplicate)

	// Same name at a different address is a different store.
	other, err := svc.Register(ctx, "Downtown", "2 Side St")
	require.NoError(t, err)
	assert.NotEqual(t, st.ID, other.ID)
}

func TestStoreExists(t *testing.T) {
	svc := appStore.NewService(memory.NewStoreRepository(), nil)
	ctx := context.Background()

	exists, err := svc.Exists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, exists)

	st, err := svc.Register(ctx, "Downtown", "1 Main St")
	require.NoError(t, err)

	exists, err = svc.Exists(ctx, st.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := svc.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, "Downtown", loaded.Name)

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
