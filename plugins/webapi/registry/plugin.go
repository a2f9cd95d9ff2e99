package registry

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"github.com/labstack/echo"

	"github.com/tokenvault/tokenvault/packages/jsonmodels"
	"github.com/tokenvault/tokenvault/packages/vault"
	"github.com/tokenvault/tokenvault/packages/vault/asset"
	"github.com/tokenvault/tokenvault/packages/vault/registry"
)

// Endpoint exposes the administrative interface of a Registry over the web API.
type Endpoint struct {
	registry *registry.Registry
	log      *logger.Logger
}

// NewEndpoint creates a new Endpoint for the given Registry.
func NewEndpoint(assetRegistry *registry.Registry, log *logger.Logger) *Endpoint {
	return &Endpoint{
		registry: assetRegistry,
		log:      log,
	}
}

// Configure registers the routes of the Endpoint on the given echo engine.
func (e *Endpoint) Configure(engine *echo.Echo) {
	engine.POST("registry/eligible", e.setEligible)
	engine.GET("registry/eligible/:asset", e.eligible)
}

func (e *Endpoint) setEligible(c echo.Context) error {
	var request jsonmodels.SetEligibleRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, jsonmodels.SetEligibleResponse{Error: err.Error()})
	}

	caller, err := vault.OwnerFromBase58(request.Caller)
	if err != nil {
		return c.JSON(http.StatusBadRequest, jsonmodels.SetEligibleResponse{Error: err.Error()})
	}
	a, err := asset.FromBase58(request.Asset)
	if err != nil {
		return c.JSON(http.StatusBadRequest, jsonmodels.SetEligibleResponse{Error: err.Error()})
	}

	if err = e.registry.SetEligible(caller, a, request.Eligible); err != nil {
		if errors.Is(err, registry.ErrUnauthorized) {
			return c.JSON(http.StatusUnauthorized, jsonmodels.SetEligibleResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, jsonmodels.SetEligibleResponse{Error: err.Error()})
	}

	e.log.Infow("eligibility changed", "asset", request.Asset, "eligible", request.Eligible)

	return c.JSON(http.StatusOK, jsonmodels.SetEligibleResponse{})
}

func (e *Endpoint) eligible(c echo.Context) error {
	a, err := asset.FromBase58(c.Param("asset"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, jsonmodels.EligibleResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, jsonmodels.EligibleResponse{
		Asset:    c.Param("asset"),
		Eligible: e.registry.IsEligible(a),
	})
}
