package client

import (
	"github.com/iotaledger/hive.go/identity"

	"github.com/tokenvault/tokenvault/packages/jsonmodels"
	"github.com/tokenvault/tokenvault/packages/vault"
	"github.com/tokenvault/tokenvault/packages/vault/asset"
)

// SetEligible marks the given Asset as eligible or ineligible for custody. The caller has to be the administrative
// principal of the registry.
func (api *VaultAPI) SetEligible(caller identity.ID, a asset.Asset, eligible bool) (err error) {
	return api.post("registry/eligible", &jsonmodels.SetEligibleRequest{
		Caller:   vault.OwnerBase58(caller),
		Asset:    a.Base58(),
		Eligible: eligible,
	}, &jsonmodels.SetEligibleResponse{})
}

// IsEligible returns true if the given Asset is currently eligible for custody.
func (api *VaultAPI) IsEligible(a asset.Asset) (eligible bool, err error) {
	response := &jsonmodels.EligibleResponse{}
	if err = api.get("registry/eligible/"+a.Base58(), response); err != nil {
		return false, err
	}

	return response.Eligible, nil
}
