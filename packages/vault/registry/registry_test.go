package registry

import (
	"crypto/rand"
	"testing"

	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/identity"
	"github.com/iotaledger/hive.go/kvstore/mapdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenvault/tokenvault/packages/vault/asset"
)

func TestRegistry_SetEligible(t *testing.T) {
	admin := identity.GenerateIdentity()
	registry := New(admin.ID())
	a := randomAsset(t)

	t.Run("CASE: Unknown assets are ineligible", func(t *testing.T) {
		assert.False(t, registry.IsEligible(a))
	})

	t.Run("CASE: Unauthorized caller", func(t *testing.T) {
		err := registry.SetEligible(identity.GenerateIdentity().ID(), a, true)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.False(t, registry.IsEligible(a))
	})

	t.Run("CASE: Toggling eligibility", func(t *testing.T) {
		require.NoError(t, registry.SetEligible(admin.ID(), a, true))
		assert.True(t, registry.IsEligible(a))

		require.NoError(t, registry.SetEligible(admin.ID(), a, false))
		assert.False(t, registry.IsEligible(a))
	})
}

func TestRegistry_EventsAlwaysTriggered(t *testing.T) {
	admin := identity.GenerateIdentity()
	registry := New(admin.ID())
	a := randomAsset(t)

	var registered, unregistered int
	registry.Events.AssetRegistered.Attach(event.NewClosure(func(ev *AssetRegisteredEvent) {
		assert.Equal(t, a, ev.Asset)
		registered++
	}))
	registry.Events.AssetUnregistered.Attach(event.NewClosure(func(ev *AssetUnregisteredEvent) {
		assert.Equal(t, a, ev.Asset)
		unregistered++
	}))

	// removal of an asset that was never eligible still emits the event
	require.NoError(t, registry.SetEligible(admin.ID(), a, false))
	event.Loop.WaitUntilAllTasksProcessed()
	assert.Equal(t, 1, unregistered)

	require.NoError(t, registry.SetEligible(admin.ID(), a, true))
	require.NoError(t, registry.SetEligible(admin.ID(), a, true))
	event.Loop.WaitUntilAllTasksProcessed()
	assert.Equal(t, 2, registered)

	require.NoError(t, registry.SetEligible(admin.ID(), a, false))
	event.Loop.WaitUntilAllTasksProcessed()
	assert.Equal(t, 2, unregistered)
}

func TestRegistry_Persistence(t *testing.T) {
	store := mapdb.NewMapDB()
	admin := identity.GenerateIdentity()
	eligibleAsset := randomAsset(t)
	frozenAsset := randomAsset(t)

	originalRegistry := New(admin.ID(), WithStore(store))
	require.NoError(t, originalRegistry.SetEligible(admin.ID(), eligibleAsset, true))
	require.NoError(t, originalRegistry.SetEligible(admin.ID(), frozenAsset, true))
	require.NoError(t, originalRegistry.SetEligible(admin.ID(), frozenAsset, false))

	restoredRegistry := New(admin.ID(), WithStore(store))
	assert.True(t, restoredRegistry.IsEligible(eligibleAsset))
	assert.False(t, restoredRegistry.IsEligible(frozenAsset))
}

func TestRegistry_Admin(t *testing.T) {
	admin := identity.GenerateIdentity()
	registry := New(admin.ID())

	assert.Equal(t, admin.ID(), registry.Admin())
}

func randomAsset(t *testing.T) (a asset.Asset) {
	_, err := rand.Read(a[:])
	require.NoError(t, err)

	return a
}
