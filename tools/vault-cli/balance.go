package main

import (
	"flag"
	"fmt"
	"os"
)

func execBalanceCommand(command *flag.FlagSet) {
	registerNodeFlag(command)
	ownerParam := command.String("owner", "", "the base58 encoded identity of the owner")
	assetParam := command.String("asset", "", "the base58 encoded identifier of the asset")

	if err := command.Parse(os.Args[2:]); err != nil {
		panic(err)
	}

	owner := parseOwner(command, *ownerParam)
	a := parseAsset(command, *assetParam)

	balance, err := loadAPI(command).BalanceOf(owner, a)
	if err != nil {
		printUsage(command, err.Error())
	}

	fmt.Println()
	fmt.Println("Balance: " + balance.String())
}

func execTotalCommand(command *flag.FlagSet) {
	registerNodeFlag(command)
	assetParam := command.String("asset", "", "the base58 encoded identifier of the asset")

	if err := command.Parse(os.Args[2:]); err != nil {
		panic(err)
	}

	a := parseAsset(command, *assetParam)

	total, err := loadAPI(command).TotalDeposited(a)
	if err != nil {
		printUsage(command, err.Error())
	}

	fmt.Println()
	fmt.Println("Total deposited: " + total.String())
}
