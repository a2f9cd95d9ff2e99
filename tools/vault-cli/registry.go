package main

import (
	"flag"
	"fmt"
	"os"
)

func execSupportedCommand(command *flag.FlagSet) {
	registerNodeFlag(command)
	assetParam := command.String("asset", "", "the base58 encoded identifier of the asset")

	if err := command.Parse(os.Args[2:]); err != nil {
		panic(err)
	}

	a := parseAsset(command, *assetParam)

	supported, err := loadAPI(command).IsSupported(a)
	if err != nil {
		printUsage(command, err.Error())
	}

	fmt.Println()
	if supported {
		fmt.Println("Asset " + a.Base58() + " is eligible for custody")
	} else {
		fmt.Println("Asset " + a.Base58() + " is NOT eligible for custody")
	}
}

func execSetEligibleCommand(command *flag.FlagSet) {
	registerNodeFlag(command)
	callerParam := command.String("caller", "", "the base58 encoded identity of the administrative principal")
	assetParam := command.String("asset", "", "the base58 encoded identifier of the asset")
	eligibleParam := command.Bool("eligible", true, "whether the asset is eligible for custody")

	if err := command.Parse(os.Args[2:]); err != nil {
		panic(err)
	}

	caller := parseOwner(command, *callerParam)
	a := parseAsset(command, *assetParam)

	if err := loadAPI(command).SetEligible(caller, a, *eligibleParam); err != nil {
		printUsage(command, err.Error())
	}

	fmt.Println()
	fmt.Println("Updated eligibility of asset " + a.Base58() + "    [DONE]")
}
