package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/identity"
	"github.com/iotaledger/hive.go/kvstore/mapdb"
	"github.com/iotaledger/hive.go/logger"
	flag "github.com/spf13/pflag"

	"github.com/tokenvault/tokenvault/packages/vault"
	"github.com/tokenvault/tokenvault/packages/vault/registry"
	"github.com/tokenvault/tokenvault/plugins/webapi"
	webapiregistry "github.com/tokenvault/tokenvault/plugins/webapi/registry"
	webapivault "github.com/tokenvault/tokenvault/plugins/webapi/vault"
)

const shutdownTimeout = 5 * time.Second

func main() {
	bindAddress := flag.String("webapi.bindAddress", "0.0.0.0:8080", "the bind address of the web API")
	adminParam := flag.String("registry.admin", "", "the base58 encoded identity of the administrative principal (a fresh identity is generated when empty)")
	flag.Parse()

	if err := logger.InitGlobalLogger(configuration.New()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.NewLogger("vaultd")

	admin, err := loadAdmin(*adminParam)
	if err != nil {
		log.Fatalf("Failed to parse the administrative principal: %s", err)
	}
	log.Infof("Administrative principal: %s", vault.OwnerBase58(admin))

	assetRegistry := registry.New(admin, registry.WithStore(mapdb.NewMapDB()))
	tokenVault := vault.New(assetRegistry, vault.NewMockedGateway(), vault.WithStore(mapdb.NewMapDB()))
	log.Warn("Running with an in-memory transfer gateway: all token movements are simulated")

	attachEventLoggers(tokenVault, assetRegistry, log)

	server := webapi.NewServer(logger.NewLogger("webapi"))
	webapivault.NewEndpoint(tokenVault, logger.NewLogger("webapi/vault")).Configure(server.Engine())
	webapiregistry.NewEndpoint(assetRegistry, logger.NewLogger("webapi/registry")).Configure(server.Engine())

	go func() {
		log.Infof("Starting web API on %s", *bindAddress)
		if serverErr := server.Start(*bindAddress); serverErr != nil {
			log.Fatalf("Failed to start the web API: %s", serverErr)
		}
	}()

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownSignal

	log.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := server.Shutdown(ctx); shutdownErr != nil {
		log.Warnf("Failed to shut down the web API cleanly: %s", shutdownErr)
	}
}

func loadAdmin(adminParam string) (identity.ID, error) {
	if adminParam == "" {
		return identity.GenerateIdentity().ID(), nil
	}

	return vault.OwnerFromBase58(adminParam)
}

func attachEventLoggers(tokenVault *vault.Vault, assetRegistry *registry.Registry, log *logger.Logger) {
	tokenVault.Events.Deposited.Attach(event.NewClosure(func(ev *vault.DepositedEvent) {
		log.Infof("Deposited %s of asset %s for owner %s", ev.Amount, ev.Asset.Base58(), vault.OwnerBase58(ev.Owner))
	}))
	tokenVault.Events.Withdrawn.Attach(event.NewClosure(func(ev *vault.WithdrawnEvent) {
		log.Infof("Withdrew %s of asset %s for owner %s", ev.Amount, ev.Asset.Base58(), vault.OwnerBase58(ev.Owner))
	}))
	assetRegistry.Events.AssetRegistered.Attach(event.NewClosure(func(ev *registry.AssetRegisteredEvent) {
		log.Infof("Asset %s marked eligible for custody", ev.Asset.Base58())
	}))
	assetRegistry.Events.AssetUnregistered.Attach(event.NewClosure(func(ev *registry.AssetUnregisteredEvent) {
		log.Infof("Asset %s marked ineligible for custody", ev.Asset.Base58())
	}))
}
