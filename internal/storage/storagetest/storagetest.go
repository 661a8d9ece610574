// Package storagetest поднимает мигрированную SQLite БД в памяти для тестов.
package storagetest

import (
	"context"
	"testing"

	"github.com/employee-manager/internal/storage"
	"github.com/stretchr/testify/require"
)

// New возвращает пустую мигрированную БД, закрываемую по окончании теста
func New(t testing.TB) *storage.Store {
	t.Helper()

	store, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, storage.Migrate(context.Background(), store))
	return store
}

// NewSeeded возвращает БД с демонстрационными данными
func NewSeeded(t testing.TB) *storage.Store {
	t.Helper()

	store := New(t)
	seeded, err := storage.Seed(context.Background(), store)
	require.NoError(t, err)
	require.True(t, seeded)
	return store
}
