package vault

import (
	"math/big"

	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/identity"

	"github.com/tokenvault/tokenvault/packages/vault/asset"
)

// region Events ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Events is a container that acts as a dictionary for the existing events of a Vault.
type Events struct {
	// Deposited is an event that gets triggered whenever a deposit was recorded.
	Deposited *event.Event[*DepositedEvent]

	// Withdrawn is an event that gets triggered whenever a withdrawal was recorded.
	Withdrawn *event.Event[*WithdrawnEvent]
}

// newEvents returns a new Events object.
func newEvents() (new *Events) {
	return &Events{
		Deposited: event.New[*DepositedEvent](),
		Withdrawn: event.New[*WithdrawnEvent](),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region DepositedEvent ///////////////////////////////////////////////////////////////////////////////////////////////

// DepositedEvent is a container that acts as a dictionary for the Deposited event related parameters.
type DepositedEvent struct {
	// Owner contains the identity that the deposit was credited to.
	Owner identity.ID

	// Asset contains the identifier of the deposited Asset.
	Asset asset.Asset

	// Amount contains the deposited amount.
	Amount *big.Int
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region WithdrawnEvent ///////////////////////////////////////////////////////////////////////////////////////////////

// WithdrawnEvent is a container that acts as a dictionary for the Withdrawn event related parameters.
type WithdrawnEvent struct {
	// Owner contains the identity that the withdrawal was debited from.
	Owner identity.ID

	// Asset contains the identifier of the withdrawn Asset.
	Asset asset.Asset

	// Amount contains the withdrawn amount.
	Amount *big.Int
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
