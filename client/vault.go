package client

import (
	"math/big"

	"github.com/iotaledger/hive.go/identity"

	"github.com/tokenvault/tokenvault/packages/jsonmodels"
	"github.com/tokenvault/tokenvault/packages/vault"
	"github.com/tokenvault/tokenvault/packages/vault/asset"
)

// Deposit moves the given amount of the given Asset into the custody of the vault and returns the resulting balance.
func (api *VaultAPI) Deposit(owner identity.ID, a asset.Asset, amount *big.Int) (balance *big.Int, err error) {
	response := &jsonmodels.DepositResponse{}
	if err = api.post("vault/deposit", &jsonmodels.DepositRequest{
		Owner:  vault.OwnerBase58(owner),
		Asset:  a.Base58(),
		Amount: amount.String(),
	}, response); err != nil {
		return nil, err
	}

	return parseAmount(response.Balance)
}

// Withdraw moves the given amount of the given Asset out of the custody of the vault and returns the resulting
// balance.
func (api *VaultAPI) Withdraw(owner identity.ID, a asset.Asset, amount *big.Int) (balance *big.Int, err error) {
	response := &jsonmodels.WithdrawResponse{}
	if err = api.post("vault/withdraw", &jsonmodels.WithdrawRequest{
		Owner:  vault.OwnerBase58(owner),
		Asset:  a.Base58(),
		Amount: amount.String(),
	}, response); err != nil {
		return nil, err
	}

	return parseAmount(response.Balance)
}

// BalanceOf returns the recorded balance of the given owner for the given Asset.
func (api *VaultAPI) BalanceOf(owner identity.ID, a asset.Asset) (balance *big.Int, err error) {
	response := &jsonmodels.BalanceResponse{}
	if err = api.get("vault/balance/"+vault.OwnerBase58(owner)+"/"+a.Base58(), response); err != nil {
		return nil, err
	}

	return parseAmount(response.Balance)
}

// TotalDeposited returns the aggregate total of the given Asset over all owners.
func (api *VaultAPI) TotalDeposited(a asset.Asset) (total *big.Int, err error) {
	response := &jsonmodels.TotalDepositedResponse{}
	if err = api.get("vault/total/"+a.Base58(), response); err != nil {
		return nil, err
	}

	return parseAmount(response.Total)
}

// IsSupported returns true if the given Asset is currently eligible for custody.
func (api *VaultAPI) IsSupported(a asset.Asset) (supported bool, err error) {
	response := &jsonmodels.SupportedResponse{}
	if err = api.get("vault/supported/"+a.Base58(), response); err != nil {
		return false, err
	}

	return response.Supported, nil
}
