package notify

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitm/fintrack/internal/service"
)

// memoryKV is an in-memory key-value store for tests.
type memoryKV struct {
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memoryKV) Put(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memoryKV) Close() error { return nil }

func TestNotifierDefaultsToUndecided(t *testing.T) {
	notifier := NewTerminalNotifier(context.Background(), newMemoryKV(), &strings.Builder{})
	assert.Equal(t, service.PermissionDefault, notifier.Permission())
}

func TestNotifyIsSilentWithoutPermission(t *testing.T) {
	ctx := context.Background()
	var out strings.Builder

	notifier := NewTerminalNotifier(ctx, newMemoryKV(), &out)
	notifier.Notify("Budget Alert!", "You've exceeded your Food & Dining budget.")
	assert.Empty(t, out.String())

	_, err := notifier.Deny(ctx)
	require.NoError(t, err)
	notifier.Notify("Budget Alert!", "still silent")
	assert.Empty(t, out.String())
}

func TestNotifyWritesWhenGranted(t *testing.T) {
	ctx := context.Background()
	var out strings.Builder

	notifier := NewTerminalNotifier(ctx, newMemoryKV(), &out)
	permission, err := notifier.RequestPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.PermissionGranted, permission)

	notifier.Notify("Upcoming Bill", "Rent is due in 2 day(s).")
	assert.Contains(t, out.String(), "Upcoming Bill")
	assert.Contains(t, out.String(), "Rent is due in 2 day(s).")
}

func TestPermissionPersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()

	first := NewTerminalNotifier(ctx, kv, &strings.Builder{})
	_, err := first.RequestPermission(ctx)
	require.NoError(t, err)

	second := NewTerminalNotifier(ctx, kv, &strings.Builder{})
	assert.Equal(t, service.PermissionGranted, second.Permission())

	_, err = second.Deny(ctx)
	require.NoError(t, err)

	third := NewTerminalNotifier(ctx, kv, &strings.Builder{})
	assert.Equal(t, service.PermissionDenied, third.Permission())
}

func TestUnknownPersistedValueFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	require.NoError(t, kv.Put(ctx, "fin-track-notify", "maybe"))

	notifier := NewTerminalNotifier(ctx, kv, &strings.Builder{})
	assert.Equal(t, service.PermissionDefault, notifier.Permission())
}
