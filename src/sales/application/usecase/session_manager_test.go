package usecase

import (
	"testing"
	"time"

	"palengke/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManagerOpenAndGet(t *testing.T) {
	manager := NewSessionManager(time.Minute, "PHP", &mockNotifier{})

	sessionID := manager.Open()
	assert.Equal(t, 1, manager.Count())

	agg, err := manager.Get(sessionID)
	require.NoError(t, err)
	require.NotNil(t, agg)

	// Cada sesión tiene su propio agregador
	otherID := manager.Open()
	other, err := manager.Get(otherID)
	require.NoError(t, err)
	assert.NotSame(t, agg, other)
	assert.Equal(t, 2, manager.Count())
}

func TestSessionManagerGetUnknownSession(t *testing.T) {
	manager := NewSessionManager(time.Minute, "PHP", &mockNotifier{})

	_, err := manager.Get(uuid.New())
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestSessionManagerCloseDisarmsAggregator(t *testing.T) {
	notifier := &mockNotifier{}
	manager := NewSessionManager(30*time.Millisecond, "PHP", notifier)

	sessionID := manager.Open()
	agg, err := manager.Get(sessionID)
	require.NoError(t, err)

	_, err = agg.RecordTap("a", "tempura", dec(t, "10.00"), 1, nil)
	require.NoError(t, err)

	require.NoError(t, manager.Close(sessionID))
	assert.Zero(t, manager.Count())

	// La sesión ya no existe y su commit en vuelo quedó cancelado
	_, err = manager.Get(sessionID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)

	time.Sleep(120 * time.Millisecond)
	assert.Zero(t, notifier.committedCount())
}

func TestSessionManagerCloseUnknownSession(t *testing.T) {
	manager := NewSessionManager(time.Minute, "PHP", &mockNotifier{})
	assert.ErrorIs(t, manager.Close(uuid.New()), entity.ErrSessionNotFound)
}

func TestSessionManagerCloseAll(t *testing.T) {
	notifier := &mockNotifier{}
	manager := NewSessionManager(30*time.Millisecond, "PHP", notifier)

	first := manager.Open()
	manager.Open()

	agg, err := manager.Get(first)
	require.NoError(t, err)
	_, err = agg.RecordTap("a", "tempura", dec(t, "10.00"), 1, nil)
	require.NoError(t, err)

	manager.CloseAll()
	assert.Zero(t, manager.Count())

	time.Sleep(120 * time.Millisecond)
	assert.Zero(t, notifier.committedCount())
}
