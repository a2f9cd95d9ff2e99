package vault

import (
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/identity"
	"github.com/iotaledger/hive.go/kvstore/mapdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenvault/tokenvault/packages/vault/asset"
	"github.com/tokenvault/tokenvault/packages/vault/registry"
)

func TestVault_Deposit(t *testing.T) {
	t.Run("CASE: Asset not supported", func(t *testing.T) {
		tf := NewTestFramework(t)
		owner := tf.RandomOwner()
		unsupportedAsset := tf.RandomAsset()

		err := tf.Vault.Deposit(owner, unsupportedAsset, big.NewInt(1000))
		assert.ErrorIs(t, err, ErrAssetNotSupported)
		tf.AssertBalance(owner, unsupportedAsset, 0)
		tf.AssertTriggeredEvents(0, 0)
	})

	t.Run("CASE: Zero amount", func(t *testing.T) {
		tf := NewTestFramework(t)
		owner := tf.RandomOwner()
		a := tf.RandomAsset()
		tf.RegisterAsset(a)

		assert.ErrorIs(t, tf.Vault.Deposit(owner, a, big.NewInt(0)), ErrZeroAmount)
		assert.ErrorIs(t, tf.Vault.Deposit(owner, a, big.NewInt(-1)), ErrZeroAmount)
		assert.ErrorIs(t, tf.Vault.Deposit(owner, a, nil), ErrZeroAmount)
		tf.AssertBalance(owner, a, 0)
		tf.AssertTotal(a, 0)
		tf.AssertTriggeredEvents(0, 0)
	})

	t.Run("CASE: Gateway failure", func(t *testing.T) {
		tf := NewTestFramework(t)
		owner := tf.RandomOwner()
		a := tf.RandomAsset()
		tf.RegisterAsset(a)

		tf.Gateway.MoveInFunc = func(identity.ID, asset.Asset, *big.Int) error {
			return errors.New("funds never landed")
		}

		assert.ErrorIs(t, tf.Vault.Deposit(owner, a, big.NewInt(1000)), ErrTransferFailed)
		tf.AssertBalance(owner, a, 0)
		tf.AssertTotal(a, 0)
		tf.AssertTriggeredEvents(0, 0)
	})

	t.Run("CASE: Successful deposit", func(t *testing.T) {
		tf := NewTestFramework(t)
		owner := tf.RandomOwner()
		a := tf.RandomAsset()
		tf.RegisterAsset(a)

		require.NoError(t, tf.Vault.Deposit(owner, a, big.NewInt(1000)))
		tf.AssertBalance(owner, a, 1000)
		tf.AssertTotal(a, 1000)
		tf.AssertTotalInvariant()
		tf.AssertTriggeredEvents(1, 0)
	})
}

func TestVault_Withdraw(t *testing.T) {
	t.Run("CASE: Asset not supported", func(t *testing.T) {
		tf := NewTestFramework(t)
		owner := tf.RandomOwner()
		unsupportedAsset := tf.RandomAsset()

		err := tf.Vault.Withdraw(owner, unsupportedAsset, big.NewInt(1000))
		assert.ErrorIs(t, err, ErrAssetNotSupported)
		tf.AssertTriggeredEvents(0, 0)
	})

	t.Run("CASE: Zero amount", func(t *testing.T) {
		tf := NewTestFramework(t)
		owner := tf.RandomOwner()
		a := tf.RandomAsset()
		tf.RegisterAsset(a)
		require.NoError(t, tf.Vault.Deposit(owner, a, big.NewInt(1000)))

		assert.ErrorIs(t, tf.Vault.Withdraw(owner, a, big.NewInt(0)), ErrZeroAmount)
		tf.AssertBalance(owner, a, 1000)
		tf.AssertTriggeredEvents(1, 0)
	})

	t.Run("CASE: Insufficient balance", func(t *testing.T) {
		tf := NewTestFramework(t)
		owner := tf.RandomOwner()
		a := tf.RandomAsset()
		tf.RegisterAsset(a)
		require.NoError(t, tf.Vault.Deposit(owner, a, big.NewInt(1000)))
		require.NoError(t, tf.Vault.Withdraw(owner, a, big.NewInt(500)))
		tf.AssertBalance(owner, a, 500)
		tf.AssertTotal(a, 500)

		assert.ErrorIs(t, tf.Vault.Withdraw(owner, a, big.NewInt(501)), ErrInsufficientBalance)
		tf.AssertBalance(owner, a, 500)
		tf.AssertTotal(a, 500)
		tf.AssertTotalInvariant()
		tf.AssertTriggeredEvents(1, 1)
	})

	t.Run("CASE: Frozen after removal", func(t *testing.T) {
		tf := NewTestFramework(t)
		owner := tf.RandomOwner()
		a := tf.RandomAsset()
		tf.RegisterAsset(a)
		require.NoError(t, tf.Vault.Deposit(owner, a, big.NewInt(1000)))

		// balances of Assets that were made ineligible stay frozen until the Asset is re-enabled
		tf.UnregisterAsset(a)
		assert.ErrorIs(t, tf.Vault.Withdraw(owner, a, big.NewInt(1000)), ErrAssetNotSupported)
		tf.AssertBalance(owner, a, 1000)

		tf.RegisterAsset(a)
		require.NoError(t, tf.Vault.Withdraw(owner, a, big.NewInt(1000)))
		tf.AssertBalance(owner, a, 0)
	})
}

func TestVault_WithdrawRollback(t *testing.T) {
	tf := NewTestFramework(t)
	owner := tf.RandomOwner()
	a := tf.RandomAsset()
	tf.RegisterAsset(a)
	require.NoError(t, tf.Vault.Deposit(owner, a, big.NewInt(1000)))

	tf.Gateway.MoveOutFunc = func(identity.ID, asset.Asset, *big.Int) error {
		return errors.New("payout failed")
	}

	assert.ErrorIs(t, tf.Vault.Withdraw(owner, a, big.NewInt(500)), ErrTransferFailed)
	tf.AssertBalance(owner, a, 1000)
	tf.AssertTotal(a, 1000)
	tf.AssertTotalInvariant()
	tf.AssertTriggeredEvents(1, 0)
}

func TestVault_RoundTrip(t *testing.T) {
	tf := NewTestFramework(t)
	owner := tf.RandomOwner()
	a := tf.RandomAsset()
	tf.RegisterAsset(a)

	require.NoError(t, tf.Vault.Deposit(owner, a, big.NewInt(250)))
	balanceBefore := tf.Vault.BalanceOf(owner, a)
	totalBefore := tf.Vault.TotalDeposited(a)

	require.NoError(t, tf.Vault.Deposit(owner, a, big.NewInt(1000)))
	require.NoError(t, tf.Vault.Withdraw(owner, a, big.NewInt(1000)))

	assert.Equal(t, 0, tf.Vault.BalanceOf(owner, a).Cmp(balanceBefore))
	assert.Equal(t, 0, tf.Vault.TotalDeposited(a).Cmp(totalBefore))
	tf.AssertTotalInvariant()
}

func TestVault_BalanceIsolation(t *testing.T) {
	tf := NewTestFramework(t)
	owner1 := tf.RandomOwner()
	owner2 := tf.RandomOwner()
	a := tf.RandomAsset()
	tf.RegisterAsset(a)

	require.NoError(t, tf.Vault.Deposit(owner1, a, big.NewInt(1000)))
	require.NoError(t, tf.Vault.Deposit(owner2, a, big.NewInt(1000)))
	tf.AssertBalance(owner1, a, 1000)
	tf.AssertBalance(owner2, a, 1000)
	tf.AssertTotal(a, 2000)

	require.NoError(t, tf.Vault.Withdraw(owner1, a, big.NewInt(1000)))
	tf.AssertBalance(owner1, a, 0)
	tf.AssertBalance(owner2, a, 1000)
	tf.AssertTotal(a, 1000)
	tf.AssertTotalInvariant()
}

func TestVault_ReentrancyGuard(t *testing.T) {
	t.Run("CASE: Re-entrant withdraw", func(t *testing.T) {
		tf := NewTestFramework(t)
		owner := tf.RandomOwner()
		a := tf.RandomAsset()
		tf.RegisterAsset(a)
		require.NoError(t, tf.Vault.Deposit(owner, a, big.NewInt(1000)))

		var reentrantErr error
		var observedBalance *big.Int
		tf.Gateway.MoveOutFunc = func(to identity.ID, a asset.Asset, amount *big.Int) error {
			// the debit is already committed, so a hostile gateway reads the post-decrement balance ...
			observedBalance = tf.Vault.BalanceOf(to, a)
			// ... and a second withdrawal attempt is rejected by the in-progress guard
			reentrantErr = tf.Vault.Withdraw(to, a, amount)

			return nil
		}

		require.NoError(t, tf.Vault.Withdraw(owner, a, big.NewInt(600)))
		assert.ErrorIs(t, reentrantErr, ErrVaultLocked)
		assert.Equal(t, 0, observedBalance.Cmp(big.NewInt(400)))
		tf.AssertBalance(owner, a, 400)
		tf.AssertTotal(a, 400)
		tf.AssertTriggeredEvents(1, 1)
	})

	t.Run("CASE: Re-entrant deposit", func(t *testing.T) {
		tf := NewTestFramework(t)
		owner := tf.RandomOwner()
		a := tf.RandomAsset()
		tf.RegisterAsset(a)

		var reentrantErr error
		tf.Gateway.MoveInFunc = func(from identity.ID, a asset.Asset, amount *big.Int) error {
			reentrantErr = tf.Vault.Deposit(from, a, amount)

			return nil
		}

		require.NoError(t, tf.Vault.Deposit(owner, a, big.NewInt(1000)))
		assert.ErrorIs(t, reentrantErr, ErrVaultLocked)
		tf.AssertBalance(owner, a, 1000)
		tf.AssertTotal(a, 1000)
		tf.AssertTriggeredEvents(1, 0)
	})

	t.Run("CASE: Guard released after failure", func(t *testing.T) {
		tf := NewTestFramework(t)
		owner := tf.RandomOwner()
		a := tf.RandomAsset()
		tf.RegisterAsset(a)

		tf.Gateway.MoveInFunc = func(identity.ID, asset.Asset, *big.Int) error {
			return errors.New("transient failure")
		}
		assert.ErrorIs(t, tf.Vault.Deposit(owner, a, big.NewInt(1000)), ErrTransferFailed)

		tf.Gateway.MoveInFunc = nil
		require.NoError(t, tf.Vault.Deposit(owner, a, big.NewInt(1000)))
		tf.AssertBalance(owner, a, 1000)
	})
}

func TestVault_LargeAmounts(t *testing.T) {
	tf := NewTestFramework(t)
	owner := tf.RandomOwner()
	a := tf.RandomAsset()
	tf.RegisterAsset(a)

	// 2^128, far beyond any fixed-width integer
	hugeAmount, ok := new(big.Int).SetString("340282366920938463463374607431768211456", 10)
	require.True(t, ok)

	require.NoError(t, tf.Vault.Deposit(owner, a, hugeAmount))
	assert.Equal(t, 0, tf.Vault.BalanceOf(owner, a).Cmp(hugeAmount))
	assert.Equal(t, 0, tf.Vault.TotalDeposited(a).Cmp(hugeAmount))

	require.NoError(t, tf.Vault.Withdraw(owner, a, hugeAmount))
	tf.AssertBalance(owner, a, 0)
	tf.AssertTotal(a, 0)
	tf.AssertTotalInvariant()
}

func TestVault_EventPayload(t *testing.T) {
	tf := NewTestFramework(t)
	owner := tf.RandomOwner()
	a := tf.RandomAsset()
	tf.RegisterAsset(a)

	var depositedEvent *DepositedEvent
	tf.Vault.Events.Deposited.Attach(event.NewClosure(func(ev *DepositedEvent) {
		depositedEvent = ev
	}))

	require.NoError(t, tf.Vault.Deposit(owner, a, big.NewInt(1000)))
	event.Loop.WaitUntilAllTasksProcessed()
	require.NotNil(t, depositedEvent)
	assert.Equal(t, owner, depositedEvent.Owner)
	assert.Equal(t, a, depositedEvent.Asset)
	assert.Equal(t, 0, depositedEvent.Amount.Cmp(big.NewInt(1000)))

	// event payloads are copies and can not be used to alias internal state
	depositedEvent.Amount.SetInt64(0)
	tf.AssertBalance(owner, a, 1000)
}

func TestVault_Persistence(t *testing.T) {
	store := mapdb.NewMapDB()
	admin := identity.GenerateIdentity()
	assetRegistry := registry.New(admin.ID())
	owner := identity.GenerateIdentity().ID()
	a := asset.Asset{42}
	require.NoError(t, assetRegistry.SetEligible(admin.ID(), a, true))

	originalVault := New(assetRegistry, NewMockedGateway(), WithStore(store))
	require.NoError(t, originalVault.Deposit(owner, a, big.NewInt(1000)))
	require.NoError(t, originalVault.Withdraw(owner, a, big.NewInt(250)))

	restoredVault := New(assetRegistry, NewMockedGateway(), WithStore(store))
	assert.Equal(t, 0, restoredVault.BalanceOf(owner, a).Cmp(big.NewInt(750)))
	assert.Equal(t, 0, restoredVault.TotalDeposited(a).Cmp(big.NewInt(750)))
}

func TestVault_IsSupported(t *testing.T) {
	tf := NewTestFramework(t)
	a := tf.RandomAsset()

	assert.False(t, tf.Vault.IsSupported(a))
	tf.RegisterAsset(a)
	assert.True(t, tf.Vault.IsSupported(a))
	tf.UnregisterAsset(a)
	assert.False(t, tf.Vault.IsSupported(a))
}
