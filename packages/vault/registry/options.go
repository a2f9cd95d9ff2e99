package registry

import (
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/kvstore/mapdb"
)

// region Options //////////////////////////////////////////////////////////////////////////////////////////////////////

// options is a container for all configurable parameters of a Registry.
type options struct {
	store kvstore.KVStore
}

// newOptions returns a new options object that corresponds to the handed in Options.
func newOptions(opts ...Option) (new *options) {
	new = &options{
		store: mapdb.NewMapDB(),
	}

	for _, opt := range opts {
		opt(new)
	}

	return new
}

// Option represents the return type of optional parameters that can be handed into the constructor of the Registry.
type Option func(*options)

// WithStore is an Option for the Registry that allows to configure which KVStore is supposed to be used to persist the
// eligibility entries (the default option is to use a MapDB).
func WithStore(store kvstore.KVStore) Option {
	return func(options *options) {
		options.store = store
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
