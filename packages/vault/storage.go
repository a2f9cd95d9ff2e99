package vault

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/byteutils"
	"github.com/iotaledger/hive.go/identity"
	"github.com/iotaledger/hive.go/kvstore"

	"github.com/tokenvault/tokenvault/packages/vault/asset"
)

// region Storage //////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// prefixBalanceStorage defines the key prefix of the balance records in the underlying store.
	prefixBalanceStorage byte = iota

	// prefixTotalStorage defines the key prefix of the aggregate totals in the underlying store.
	prefixTotalStorage
)

// loadState restores the previously committed balance records and aggregate totals from the configured store.
func (v *Vault) loadState() {
	if err := v.options.store.Iterate([]byte{prefixBalanceStorage}, func(key kvstore.Key, value kvstore.Value) bool {
		balanceKey, err := balanceKeyFromStorageKey(key)
		if err != nil {
			panic(errors.Wrap(err, "failed to parse balance record key"))
		}
		v.balances[balanceKey] = new(big.Int).SetBytes(value)

		return true
	}); err != nil {
		panic(errors.Wrap(err, "failed to iterate over balance records"))
	}

	if err := v.options.store.Iterate([]byte{prefixTotalStorage}, func(key kvstore.Key, value kvstore.Value) bool {
		a, _, err := asset.FromBytes(key[1:])
		if err != nil {
			panic(errors.Wrap(err, "failed to parse aggregate total key"))
		}
		v.totals[a] = new(big.Int).SetBytes(value)

		return true
	}); err != nil {
		panic(errors.Wrap(err, "failed to iterate over aggregate totals"))
	}
}

// persistBalance writes the balance record of the given cell to the configured store.
func (v *Vault) persistBalance(key BalanceKey, balance *big.Int) {
	storageKey := byteutils.ConcatBytes([]byte{prefixBalanceStorage}, key.Bytes())
	if err := v.options.store.Set(storageKey, balance.Bytes()); err != nil {
		panic(errors.Wrap(err, "failed to persist balance record"))
	}
}

// persistTotal writes the aggregate total of the given Asset to the configured store.
func (v *Vault) persistTotal(a asset.Asset, total *big.Int) {
	storageKey := byteutils.ConcatBytes([]byte{prefixTotalStorage}, a.Bytes())
	if err := v.options.store.Set(storageKey, total.Bytes()); err != nil {
		panic(errors.Wrap(err, "failed to persist aggregate total"))
	}
}

// balanceKeyFromStorageKey parses a BalanceKey from a prefixed storage key.
func balanceKeyFromStorageKey(key kvstore.Key) (balanceKey BalanceKey, err error) {
	if len(key) != 1+len(balanceKey.Owner)+asset.Length {
		return BalanceKey{}, errors.Errorf("balance record key has invalid length %d", len(key))
	}

	var owner identity.ID
	copy(owner[:], key[1:1+len(owner)])
	a, _, err := asset.FromBytes(key[1+len(owner):])
	if err != nil {
		return BalanceKey{}, errors.Wrap(err, "failed to parse Asset from balance record key")
	}

	return BalanceKey{Owner: owner, Asset: a}, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
