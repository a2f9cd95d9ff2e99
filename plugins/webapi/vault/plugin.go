package vault

import (
	"math/big"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/identity"
	"github.com/iotaledger/hive.go/logger"
	"github.com/labstack/echo"

	"github.com/tokenvault/tokenvault/packages/jsonmodels"
	"github.com/tokenvault/tokenvault/packages/vault"
	"github.com/tokenvault/tokenvault/packages/vault/asset"
)

// Endpoint exposes the ledger interface of a Vault over the web API.
type Endpoint struct {
	vault *vault.Vault
	log   *logger.Logger
}

// NewEndpoint creates a new Endpoint for the given Vault.
func NewEndpoint(vaultInstance *vault.Vault, log *logger.Logger) *Endpoint {
	return &Endpoint{
		vault: vaultInstance,
		log:   log,
	}
}

// Configure registers the routes of the Endpoint on the given echo engine.
func (e *Endpoint) Configure(engine *echo.Echo) {
	engine.POST("vault/deposit", e.deposit)
	engine.POST("vault/withdraw", e.withdraw)
	engine.GET("vault/balance/:owner/:asset", e.balance)
	engine.GET("vault/total/:asset", e.total)
	engine.GET("vault/supported/:asset", e.supported)
}

func (e *Endpoint) deposit(c echo.Context) error {
	var request jsonmodels.DepositRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, jsonmodels.DepositResponse{Error: err.Error()})
	}

	owner, a, amount, err := parseTransferParams(request.Owner, request.Asset, request.Amount)
	if err != nil {
		return c.JSON(http.StatusBadRequest, jsonmodels.DepositResponse{Error: err.Error()})
	}

	if err = e.vault.Deposit(owner, a, amount); err != nil {
		e.log.Debugw("deposit rejected", "owner", request.Owner, "asset", request.Asset, "err", err)
		return c.JSON(statusCodeOf(err), jsonmodels.DepositResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, jsonmodels.DepositResponse{Balance: e.vault.BalanceOf(owner, a).String()})
}

func (e *Endpoint) withdraw(c echo.Context) error {
	var request jsonmodels.WithdrawRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, jsonmodels.WithdrawResponse{Error: err.Error()})
	}

	owner, a, amount, err := parseTransferParams(request.Owner, request.Asset, request.Amount)
	if err != nil {
		return c.JSON(http.StatusBadRequest, jsonmodels.WithdrawResponse{Error: err.Error()})
	}

	if err = e.vault.Withdraw(owner, a, amount); err != nil {
		e.log.Debugw("withdrawal rejected", "owner", request.Owner, "asset", request.Asset, "err", err)
		return c.JSON(statusCodeOf(err), jsonmodels.WithdrawResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, jsonmodels.WithdrawResponse{Balance: e.vault.BalanceOf(owner, a).String()})
}

func (e *Endpoint) balance(c echo.Context) error {
	owner, err := vault.OwnerFromBase58(c.Param("owner"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, jsonmodels.BalanceResponse{Error: err.Error()})
	}
	a, err := asset.FromBase58(c.Param("asset"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, jsonmodels.BalanceResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, jsonmodels.BalanceResponse{
		Owner:   c.Param("owner"),
		Asset:   c.Param("asset"),
		Balance: e.vault.BalanceOf(owner, a).String(),
	})
}

func (e *Endpoint) total(c echo.Context) error {
	a, err := asset.FromBase58(c.Param("asset"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, jsonmodels.TotalDepositedResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, jsonmodels.TotalDepositedResponse{
		Asset: c.Param("asset"),
		Total: e.vault.TotalDeposited(a).String(),
	})
}

func (e *Endpoint) supported(c echo.Context) error {
	a, err := asset.FromBase58(c.Param("asset"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, jsonmodels.SupportedResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, jsonmodels.SupportedResponse{
		Asset:     c.Param("asset"),
		Supported: e.vault.IsSupported(a),
	})
}

// parseTransferParams parses the string encoded parameters that deposit and withdrawal requests share.
func parseTransferParams(ownerParam, assetParam, amountParam string) (owner identity.ID, a asset.Asset, amount *big.Int, err error) {
	if owner, err = vault.OwnerFromBase58(ownerParam); err != nil {
		return
	}
	if a, err = asset.FromBase58(assetParam); err != nil {
		return
	}

	amount, ok := new(big.Int).SetString(amountParam, 10)
	if !ok {
		err = errors.Errorf("failed to parse amount %q as a base 10 integer", amountParam)
		return
	}

	return
}

// statusCodeOf maps the error taxonomy of the Vault to HTTP status codes.
func statusCodeOf(err error) int {
	switch {
	case errors.Is(err, vault.ErrAssetNotSupported),
		errors.Is(err, vault.ErrZeroAmount),
		errors.Is(err, vault.ErrInsufficientBalance):
		return http.StatusBadRequest
	case errors.Is(err, vault.ErrVaultLocked):
		return http.StatusConflict
	case errors.Is(err, vault.ErrTransferFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
