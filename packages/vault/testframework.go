package vault

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/tokenvault/tokenvault/packages/vault/asset"
	"github.com/tokenvault/tokenvault/packages/vault/registry"
)

// region TestFramework ////////////////////////////////////////////////////////////////////////////////////////////////

// TestFramework provides common testing functionality for the vault package. It wires a Vault to a fresh Registry and
// a scriptable MockedGateway and keeps track of the triggered events.
type TestFramework struct {
	// Vault contains the Vault instance that the TestFramework is using.
	Vault *Vault

	// Registry contains the Registry instance that the Vault authorizes Assets against.
	Registry *registry.Registry

	// Gateway contains the MockedGateway that the Vault moves funds through.
	Gateway *MockedGateway

	// Admin contains the administrative principal of the Registry.
	Admin *identity.Identity

	t *testing.T

	depositedTriggered atomic.Int32
	withdrawnTriggered atomic.Int32
}

// NewTestFramework creates a new instance of the TestFramework.
func NewTestFramework(t *testing.T, opts ...Option) (new *TestFramework) {
	admin := identity.GenerateIdentity()
	gateway := NewMockedGateway()

	new = &TestFramework{
		Registry: registry.New(admin.ID()),
		Gateway:  gateway,
		Admin:    admin,
		t:        t,
	}
	new.Vault = New(new.Registry, gateway, opts...)

	new.Vault.Events.Deposited.Attach(event.NewClosure(func(_ *DepositedEvent) {
		new.depositedTriggered.Inc()
	}))
	new.Vault.Events.Withdrawn.Attach(event.NewClosure(func(_ *WithdrawnEvent) {
		new.withdrawnTriggered.Inc()
	}))

	return new
}

// RandomOwner returns the identity of a new random owner.
func (t *TestFramework) RandomOwner() identity.ID {
	return identity.GenerateIdentity().ID()
}

// RandomAsset returns a new random Asset identifier.
func (t *TestFramework) RandomAsset() (a asset.Asset) {
	_, err := rand.Read(a[:])
	require.NoError(t.t, err)

	return a
}

// RegisterAsset marks the given Asset as eligible for custody through the administrative principal.
func (t *TestFramework) RegisterAsset(a asset.Asset) {
	require.NoError(t.t, t.Registry.SetEligible(t.Admin.ID(), a, true))
}

// UnregisterAsset marks the given Asset as ineligible for custody through the administrative principal.
func (t *TestFramework) UnregisterAsset(a asset.Asset) {
	require.NoError(t.t, t.Registry.SetEligible(t.Admin.ID(), a, false))
}

// AssertBalance asserts that the recorded balance of the given cell matches the expected value.
func (t *TestFramework) AssertBalance(owner identity.ID, a asset.Asset, expected uint64) {
	assert.Equal(t.t, 0, t.Vault.BalanceOf(owner, a).Cmp(new(big.Int).SetUint64(expected)), "unexpected balance")
}

// AssertTotal asserts that the aggregate total of the given Asset matches the expected value.
func (t *TestFramework) AssertTotal(a asset.Asset, expected uint64) {
	assert.Equal(t.t, 0, t.Vault.TotalDeposited(a).Cmp(new(big.Int).SetUint64(expected)), "unexpected total")
}

// AssertTotalInvariant asserts that the aggregate total of every Asset equals the sum of the individual balance cells.
func (t *TestFramework) AssertTotalInvariant() {
	t.Vault.mutex.RLock()
	defer t.Vault.mutex.RUnlock()

	summedTotals := make(map[asset.Asset]*big.Int)
	for key, balance := range t.Vault.balances {
		if summedTotals[key.Asset] == nil {
			summedTotals[key.Asset] = new(big.Int)
		}
		summedTotals[key.Asset].Add(summedTotals[key.Asset], balance)
	}

	for a, total := range t.Vault.totals {
		summedTotal := summedTotals[a]
		if summedTotal == nil {
			summedTotal = new(big.Int)
		}
		assert.Equal(t.t, 0, total.Cmp(summedTotal), "aggregate total of %s drifted from the sum of its cells", a)
	}
}

// AssertTriggeredEvents asserts the amount of Deposited and Withdrawn events that were triggered.
func (t *TestFramework) AssertTriggeredEvents(deposited, withdrawn int32) {
	// Attach-ed handlers run asynchronously on the shared event loop; drain it before reading the counters.
	event.Loop.WaitUntilAllTasksProcessed()

	assert.Equal(t.t, deposited, t.depositedTriggered.Load(), "unexpected amount of Deposited events")
	assert.Equal(t.t, withdrawn, t.withdrawnTriggered.Load(), "unexpected amount of Withdrawn events")
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region MockedGateway ////////////////////////////////////////////////////////////////////////////////////////////////

// MockedGateway is a scriptable TransferGateway. Unscripted calls succeed unconditionally, which also makes it usable
// as a stand-in gateway for local devnets.
type MockedGateway struct {
	// MoveInFunc allows to script the behavior of the MoveIn method.
	MoveInFunc func(from identity.ID, a asset.Asset, amount *big.Int) error

	// MoveOutFunc allows to script the behavior of the MoveOut method.
	MoveOutFunc func(to identity.ID, a asset.Asset, amount *big.Int) error
}

// NewMockedGateway creates a new MockedGateway that lets every transfer succeed.
func NewMockedGateway() *MockedGateway {
	return &MockedGateway{}
}

// MoveIn implements the TransferGateway interface.
func (m *MockedGateway) MoveIn(from identity.ID, a asset.Asset, amount *big.Int) error {
	if m.MoveInFunc != nil {
		return m.MoveInFunc(from, a, amount)
	}

	return nil
}

// MoveOut implements the TransferGateway interface.
func (m *MockedGateway) MoveOut(to identity.ID, a asset.Asset, amount *big.Int) error {
	if m.MoveOutFunc != nil {
		return m.MoveOutFunc(to, a, amount)
	}

	return nil
}

// code contract (make sure the type implements all required methods).
var _ TransferGateway = &MockedGateway{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
