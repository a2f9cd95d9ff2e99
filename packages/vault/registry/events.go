package registry

import (
	"github.com/iotaledger/hive.go/generics/event"

	"github.com/tokenvault/tokenvault/packages/vault/asset"
)

// region Events ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Events is a container that acts as a dictionary for the existing events of a Registry.
type Events struct {
	// AssetRegistered is an event that gets triggered whenever an Asset is marked as eligible for custody.
	AssetRegistered *event.Event[*AssetRegisteredEvent]

	// AssetUnregistered is an event that gets triggered whenever an Asset is marked as ineligible for custody.
	AssetUnregistered *event.Event[*AssetUnregisteredEvent]
}

// newEvents returns a new Events object.
func newEvents() (new *Events) {
	return &Events{
		AssetRegistered:   event.New[*AssetRegisteredEvent](),
		AssetUnregistered: event.New[*AssetUnregisteredEvent](),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AssetRegisteredEvent /////////////////////////////////////////////////////////////////////////////////////////

// AssetRegisteredEvent is a container that acts as a dictionary for the AssetRegistered event related parameters.
type AssetRegisteredEvent struct {
	// Asset contains the identifier of the Asset that was marked as eligible.
	Asset asset.Asset
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AssetUnregisteredEvent ///////////////////////////////////////////////////////////////////////////////////////

// AssetUnregisteredEvent is a container that acts as a dictionary for the AssetUnregistered event related parameters.
type AssetUnregisteredEvent struct {
	// Asset contains the identifier of the Asset that was marked as ineligible.
	Asset asset.Asset
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
