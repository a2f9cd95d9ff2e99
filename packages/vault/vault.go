package vault

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/identity"
	"go.uber.org/atomic"

	"github.com/tokenvault/tokenvault/packages/vault/asset"
	"github.com/tokenvault/tokenvault/packages/vault/registry"
)

// region Vault ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Vault is a custodial balance ledger: it records per-owner balances of eligible Assets, accepts deposits through a
// TransferGateway and permits withdrawals up to the recorded balance. Each balance mutation also maintains the
// aggregate total of the affected Asset in lockstep, so the total never drifts from the sum of the individual cells.
type Vault struct {
	// Events is a dictionary for the existing events of the Vault.
	Events *Events

	registry *registry.Registry
	gateway  TransferGateway
	balances map[BalanceKey]*big.Int
	totals   map[asset.Asset]*big.Int
	options  *options

	// inProgress guards against overlapping mutating operations, including re-entrant calls issued by the gateway.
	inProgress atomic.Bool
	mutex      sync.RWMutex
}

// New returns a new Vault that authorizes Assets against the given Registry and moves funds through the given
// TransferGateway.
func New(assetRegistry *registry.Registry, gateway TransferGateway, opts ...Option) (vault *Vault) {
	vault = &Vault{
		Events:   newEvents(),
		registry: assetRegistry,
		gateway:  gateway,
		balances: make(map[BalanceKey]*big.Int),
		totals:   make(map[asset.Asset]*big.Int),
		options:  newOptions(opts...),
	}
	vault.loadState()

	return vault
}

// Deposit moves the given amount of the given Asset from the owner's external custody into the control of the Vault
// and credits it to the owner's balance. The balance is only credited after the gateway confirmed that the funds
// actually landed.
func (v *Vault) Deposit(owner identity.ID, a asset.Asset, amount *big.Int) (err error) {
	if err = v.deposit(owner, a, amount); err != nil {
		return err
	}

	v.Events.Deposited.Trigger(&DepositedEvent{Owner: owner, Asset: a, Amount: new(big.Int).Set(amount)})

	return nil
}

// Withdraw debits the given amount from the owner's balance and moves it from the control of the Vault back to the
// owner. The debit is committed before the gateway is invoked, so a re-entrant call can never observe the
// pre-decrement balance; if the gateway fails the debit is rolled back as a whole.
func (v *Vault) Withdraw(owner identity.ID, a asset.Asset, amount *big.Int) (err error) {
	if err = v.withdraw(owner, a, amount); err != nil {
		return err
	}

	v.Events.Withdrawn.Trigger(&WithdrawnEvent{Owner: owner, Asset: a, Amount: new(big.Int).Set(amount)})

	return nil
}

// BalanceOf returns the recorded balance of the given owner for the given Asset. It never fails and returns 0 for any
// cell without prior activity.
func (v *Vault) BalanceOf(owner identity.ID, a asset.Asset) (balance *big.Int) {
	v.mutex.RLock()
	defer v.mutex.RUnlock()

	return new(big.Int).Set(v.balanceValue(BalanceKey{Owner: owner, Asset: a}))
}

// TotalDeposited returns the aggregate total of the given Asset over all owners. It never fails and returns 0 for any
// Asset without prior activity.
func (v *Vault) TotalDeposited(a asset.Asset) (total *big.Int) {
	v.mutex.RLock()
	defer v.mutex.RUnlock()

	return new(big.Int).Set(v.totalValue(a))
}

// IsSupported returns true if the given Asset is currently eligible for custody.
func (v *Vault) IsSupported(a asset.Asset) (supported bool) {
	return v.registry.IsEligible(a)
}

// deposit contains the guarded state transition of Deposit.
func (v *Vault) deposit(owner identity.ID, a asset.Asset, amount *big.Int) (err error) {
	if !v.inProgress.CAS(false, true) {
		return errors.WithStack(ErrVaultLocked)
	}
	defer v.inProgress.Store(false)

	if !v.registry.IsEligible(a) {
		return errors.WithStack(ErrAssetNotSupported)
	}
	if amount == nil || amount.Sign() <= 0 {
		return errors.WithStack(ErrZeroAmount)
	}

	if gatewayErr := v.gateway.MoveIn(owner, a, amount); gatewayErr != nil {
		return errors.Wrap(ErrTransferFailed, gatewayErr.Error())
	}

	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.applyBalanceChange(BalanceKey{Owner: owner, Asset: a}, amount)

	return nil
}

// withdraw contains the guarded state transition of Withdraw.
func (v *Vault) withdraw(owner identity.ID, a asset.Asset, amount *big.Int) (err error) {
	if !v.inProgress.CAS(false, true) {
		return errors.WithStack(ErrVaultLocked)
	}
	defer v.inProgress.Store(false)

	if !v.registry.IsEligible(a) {
		return errors.WithStack(ErrAssetNotSupported)
	}
	if amount == nil || amount.Sign() <= 0 {
		return errors.WithStack(ErrZeroAmount)
	}

	key := BalanceKey{Owner: owner, Asset: a}

	v.mutex.Lock()
	if v.balanceValue(key).Cmp(amount) < 0 {
		v.mutex.Unlock()
		return errors.WithStack(ErrInsufficientBalance)
	}
	v.applyBalanceChange(key, new(big.Int).Neg(amount))
	v.mutex.Unlock()

	if gatewayErr := v.gateway.MoveOut(owner, a, amount); gatewayErr != nil {
		v.mutex.Lock()
		v.applyBalanceChange(key, amount)
		v.mutex.Unlock()

		return errors.Wrap(ErrTransferFailed, gatewayErr.Error())
	}

	return nil
}

// applyBalanceChange adjusts the balance of the given cell and the aggregate total of its Asset by the given delta and
// persists both. The caller has to hold the write lock. A negative result is unreachable through the public API and
// treated as a broken invariant.
func (v *Vault) applyBalanceChange(key BalanceKey, delta *big.Int) {
	newBalance := new(big.Int).Add(v.balanceValue(key), delta)
	newTotal := new(big.Int).Add(v.totalValue(key.Asset), delta)
	if newBalance.Sign() < 0 || newTotal.Sign() < 0 {
		panic(fmt.Sprintf("balance update of %s turned negative", key))
	}

	v.balances[key] = newBalance
	v.totals[key.Asset] = newTotal
	v.persistBalance(key, newBalance)
	v.persistTotal(key.Asset, newTotal)
}

// balanceValue returns the stored balance of the given cell without copying it. The caller has to hold the lock.
func (v *Vault) balanceValue(key BalanceKey) (balance *big.Int) {
	if balance = v.balances[key]; balance == nil {
		balance = big.NewInt(0)
	}

	return balance
}

// totalValue returns the stored aggregate total of the given Asset without copying it. The caller has to hold the lock.
func (v *Vault) totalValue(a asset.Asset) (total *big.Int) {
	if total = v.totals[a]; total == nil {
		total = big.NewInt(0)
	}

	return total
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
