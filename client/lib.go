// Package client implements a simple wrapper for the vault node's web API.
package client

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"
)

// VaultAPI is an API wrapper over the web API of a vault node.
type VaultAPI struct {
	client *resty.Client
}

// NewVaultAPI returns a new *VaultAPI that talks to the node listening on the given base URL.
func NewVaultAPI(baseURL string) *VaultAPI {
	return &VaultAPI{
		client: resty.New().SetHostURL(baseURL),
	}
}

func (api *VaultAPI) post(route string, request, result interface{}) error {
	res, err := api.client.R().SetBody(request).SetResult(result).SetError(result).Post(route)
	if err != nil {
		return errors.Wrapf(err, "failed to call %s", route)
	}
	if !res.IsSuccess() {
		return errors.Errorf("request to %s failed with status %s: %s", route, res.Status(), res.String())
	}

	return nil
}

func (api *VaultAPI) get(route string, result interface{}) error {
	res, err := api.client.R().SetResult(result).SetError(result).Get(route)
	if err != nil {
		return errors.Wrapf(err, "failed to call %s", route)
	}
	if !res.IsSuccess() {
		return errors.Errorf("request to %s failed with status %s: %s", route, res.Status(), res.String())
	}

	return nil
}

func parseAmount(amountString string) (amount *big.Int, err error) {
	amount, ok := new(big.Int).SetString(amountString, 10)
	if !ok {
		return nil, errors.Errorf("failed to parse amount %q as a base 10 integer", amountString)
	}

	return amount, nil
}
