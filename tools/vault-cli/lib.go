package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/iotaledger/hive.go/identity"

	"github.com/tokenvault/tokenvault/client"
	"github.com/tokenvault/tokenvault/packages/vault"
	"github.com/tokenvault/tokenvault/packages/vault/asset"
)

const defaultNode = "http://127.0.0.1:8080"

func loadAPI(command *flag.FlagSet) *client.VaultAPI {
	node := command.Lookup("node").Value.String()

	return client.NewVaultAPI(node)
}

func registerNodeFlag(command *flag.FlagSet) {
	command.String("node", defaultNode, "the web API address of the vault node")
}

func parseOwner(command *flag.FlagSet, ownerParam string) identity.ID {
	if ownerParam == "" {
		printUsage(command, "an owner identity has to be given")
	}

	owner, err := vault.OwnerFromBase58(ownerParam)
	if err != nil {
		printUsage(command, err.Error())
	}

	return owner
}

func parseAsset(command *flag.FlagSet, assetParam string) asset.Asset {
	if assetParam == "" {
		printUsage(command, "an asset identifier has to be given")
	}

	parsedAsset, err := asset.FromBase58(assetParam)
	if err != nil {
		printUsage(command, err.Error())
	}

	return parsedAsset
}

func parseAmount(command *flag.FlagSet, amountParam string) *big.Int {
	if amountParam == "" {
		printUsage(command, "an amount has to be given")
	}

	amount, ok := new(big.Int).SetString(amountParam, 10)
	if !ok {
		printUsage(command, "failed to parse amount \""+amountParam+"\" as a base 10 integer")
	}

	return amount
}

func printUsage(command *flag.FlagSet, optionalErrorMessage ...string) {
	if len(optionalErrorMessage) >= 1 {
		_, _ = fmt.Fprintf(os.Stderr, "\n")
		_, _ = fmt.Fprintf(os.Stderr, "ERROR:\n  "+optionalErrorMessage[0]+"\n")
	}

	if command == nil {
		fmt.Println()
		fmt.Println("USAGE:")
		fmt.Println("  " + filepath.Base(os.Args[0]) + " [COMMAND]")
		fmt.Println()
		fmt.Println("COMMANDS:")
		fmt.Println("  balance")
		fmt.Println("        show the balance of an owner for an asset")
		fmt.Println("  total")
		fmt.Println("        show the aggregate deposits of an asset over all owners")
		fmt.Println("  deposit")
		fmt.Println("        move funds into the custody of the vault")
		fmt.Println("  withdraw")
		fmt.Println("        move funds out of the custody of the vault")
		fmt.Println("  supported")
		fmt.Println("        check whether an asset is eligible for custody")
		fmt.Println("  set-eligible")
		fmt.Println("        mark an asset as eligible or ineligible (admin only)")
		fmt.Println("  help")
		fmt.Println("        display this help screen")

		flag.PrintDefaults()

		if len(optionalErrorMessage) >= 1 {
			os.Exit(1)
		}

		os.Exit(0)
	}

	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  " + filepath.Base(os.Args[0]) + " " + command.Name() + " [OPTIONS]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	command.PrintDefaults()

	if len(optionalErrorMessage) >= 1 {
		os.Exit(1)
	}

	os.Exit(0)
}
