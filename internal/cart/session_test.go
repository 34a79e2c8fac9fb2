package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManagerBeginAndGet(t *testing.T) {
	manager := NewSessionManager()

	sessionID, store := manager.Begin()
	require.NotNil(t, store)

	assert.Same(t, store, manager.Get(sessionID))
	assert.Nil(t, manager.Get(uuid.New()))
}

func TestSessionManagerIsolation(t *testing.T) {
	manager := NewSessionManager()

	idA, storeA := manager.Begin()
	idB, storeB := manager.Begin()

	storeA.AddItem(newTestItem("1", "M", 2, "10"))

	assert.Equal(t, 2, manager.Get(idA).TotalItemCount())
	assert.Equal(t, 0, manager.Get(idB).TotalItemCount())
	assert.NotSame(t, storeA, storeB)
}

func TestSessionManagerEnd(t *testing.T) {
	manager := NewSessionManager()

	sessionID, _ := manager.Begin()
	manager.End(sessionID)

	assert.Nil(t, manager.Get(sessionID))
}

func TestSessionManagerAttach(t *testing.T) {
	manager := NewSessionManager()

	sessionID := uuid.New()
	store := NewStoreFromItems(nil)
	manager.Attach(sessionID, store)

	assert.Same(t, store, manager.Get(sessionID))
}
