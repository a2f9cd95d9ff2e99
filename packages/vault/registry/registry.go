package registry

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/identity"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/tokenvault/tokenvault/packages/vault/asset"
)

// region Registry /////////////////////////////////////////////////////////////////////////////////////////////////////

// Registry keeps track of the set of Assets that are currently eligible for custody. Eligibility entries are created
// implicitly as ineligible and are only ever toggled, never removed.
type Registry struct {
	// Events is a dictionary for the existing events of the Registry.
	Events *Events

	admin    identity.ID
	eligible map[asset.Asset]bool
	options  *options
	mutex    sync.RWMutex
}

// New returns a new Registry that only accepts eligibility changes from the given administrative principal.
func New(admin identity.ID, opts ...Option) (registry *Registry) {
	registry = &Registry{
		Events:   newEvents(),
		admin:    admin,
		eligible: make(map[asset.Asset]bool),
		options:  newOptions(opts...),
	}
	registry.loadEligibilityEntries()

	return registry
}

// Admin returns the administrative principal that is allowed to change the eligibility of Assets. It is set when the
// Registry is created and can not be changed afterwards.
func (r *Registry) Admin() identity.ID {
	return r.admin
}

// SetEligible marks the given Asset as eligible or ineligible for custody. It is restricted to the administrative
// principal and triggers a registration event even if the stored value did not change.
func (r *Registry) SetEligible(caller identity.ID, a asset.Asset, eligible bool) (err error) {
	if caller != r.admin {
		return errors.WithStack(ErrUnauthorized)
	}

	r.mutex.Lock()
	r.eligible[a] = eligible
	r.persistEligibilityEntry(a, eligible)
	r.mutex.Unlock()

	if eligible {
		r.Events.AssetRegistered.Trigger(&AssetRegisteredEvent{Asset: a})
	} else {
		r.Events.AssetUnregistered.Trigger(&AssetUnregisteredEvent{Asset: a})
	}

	return nil
}

// IsEligible returns true if the given Asset is currently eligible for custody. It never fails and returns false for
// any unknown Asset.
func (r *Registry) IsEligible(a asset.Asset) (eligible bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.eligible[a]
}

// loadEligibilityEntries restores the previously committed eligibility entries from the configured store.
func (r *Registry) loadEligibilityEntries() {
	if err := r.options.store.Iterate([]byte{}, func(key kvstore.Key, value kvstore.Value) bool {
		a, _, err := asset.FromBytes(key)
		if err != nil {
			panic(errors.Wrap(err, "failed to parse Asset from eligibility entry key"))
		}

		eligible, err := marshalutil.New(value).ReadBool()
		if err != nil {
			panic(errors.Wrap(err, "failed to parse eligibility entry value"))
		}

		r.eligible[a] = eligible

		return true
	}); err != nil {
		panic(errors.Wrap(err, "failed to iterate over eligibility entries"))
	}
}

// persistEligibilityEntry writes the eligibility entry of the given Asset to the configured store.
func (r *Registry) persistEligibilityEntry(a asset.Asset, eligible bool) {
	if err := r.options.store.Set(a.Bytes(), marshalutil.New(marshalutil.BoolSize).WriteBool(eligible).Bytes()); err != nil {
		panic(errors.Wrap(err, "failed to persist eligibility entry"))
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
