package vault

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/byteutils"
	"github.com/iotaledger/hive.go/identity"
	"github.com/iotaledger/hive.go/stringify"
	"github.com/mr-tron/base58"

	"github.com/tokenvault/tokenvault/packages/vault/asset"
)

// region BalanceKey ///////////////////////////////////////////////////////////////////////////////////////////////////

// BalanceKey identifies the balance cell of a single owner for a single Asset.
type BalanceKey struct {
	// Owner contains the identity whose funds are tracked by the cell.
	Owner identity.ID

	// Asset contains the identifier of the Asset that is tracked by the cell.
	Asset asset.Asset
}

// Bytes marshals the BalanceKey into a sequence of bytes.
func (b BalanceKey) Bytes() []byte {
	return byteutils.ConcatBytes(b.Owner[:], b.Asset.Bytes())
}

// String creates a human readable string of the BalanceKey.
func (b BalanceKey) String() string {
	return stringify.Struct("BalanceKey",
		stringify.StructField("Owner", OwnerBase58(b.Owner)),
		stringify.StructField("Asset", b.Asset),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Owner ////////////////////////////////////////////////////////////////////////////////////////////////////////

// OwnerFromBase58 parses the identity of an owner from a base58 encoded string.
func OwnerFromBase58(base58String string) (owner identity.ID, err error) {
	decodedBytes, err := base58.Decode(base58String)
	if err != nil {
		err = errors.Wrap(err, "failed to decode base58 encoded owner identity")
		return
	}

	if len(decodedBytes) != len(owner) {
		err = errors.Errorf("parsed owner identity has invalid length %d", len(decodedBytes))
		return
	}
	copy(owner[:], decodedBytes)

	return
}

// OwnerBase58 returns a base58 encoded version of the given owner identity.
func OwnerBase58(owner identity.ID) string {
	return base58.Encode(owner[:])
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
