package vault

import (
	"math/big"

	"github.com/iotaledger/hive.go/identity"

	"github.com/tokenvault/tokenvault/packages/vault/asset"
)

// TransferGateway moves value between the external custody of a party and the control of the Vault. The Vault treats
// implementations as untrusted external code: calls have to be atomic (either the full amount moves or nothing does)
// and a reported failure aborts the surrounding ledger operation as a whole.
type TransferGateway interface {
	// MoveIn moves the given amount of the given Asset from the external custody of the given party into the control
	// of the Vault.
	MoveIn(from identity.ID, a asset.Asset, amount *big.Int) error

	// MoveOut moves the given amount of the given Asset from the control of the Vault back to the given party.
	MoveOut(to identity.ID, a asset.Asset, amount *big.Int) error
}
