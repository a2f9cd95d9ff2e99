package main

import (
	"flag"
	"fmt"
	"os"
)

func execDepositCommand(command *flag.FlagSet) {
	registerNodeFlag(command)
	ownerParam := command.String("owner", "", "the base58 encoded identity of the owner")
	assetParam := command.String("asset", "", "the base58 encoded identifier of the asset")
	amountParam := command.String("amount", "", "the amount of tokens to deposit")

	if err := command.Parse(os.Args[2:]); err != nil {
		panic(err)
	}

	owner := parseOwner(command, *ownerParam)
	a := parseAsset(command, *assetParam)
	amount := parseAmount(command, *amountParam)

	fmt.Println("Depositing funds...")

	balance, err := loadAPI(command).Deposit(owner, a, amount)
	if err != nil {
		printUsage(command, err.Error())
	}

	fmt.Println()
	fmt.Println("Deposited " + amount.String() + " of asset " + a.Base58() + "    [DONE]")
	fmt.Println("New balance: " + balance.String())
}

func execWithdrawCommand(command *flag.FlagSet) {
	registerNodeFlag(command)
	ownerParam := command.String("owner", "", "the base58 encoded identity of the owner")
	assetParam := command.String("asset", "", "the base58 encoded identifier of the asset")
	amountParam := command.String("amount", "", "the amount of tokens to withdraw")

	if err := command.Parse(os.Args[2:]); err != nil {
		panic(err)
	}

	owner := parseOwner(command, *ownerParam)
	a := parseAsset(command, *assetParam)
	amount := parseAmount(command, *amountParam)

	fmt.Println("Withdrawing funds...")

	balance, err := loadAPI(command).Withdraw(owner, a, amount)
	if err != nil {
		printUsage(command, err.Error())
	}

	fmt.Println()
	fmt.Println("Withdrew " + amount.String() + " of asset " + a.Base58() + "    [DONE]")
	fmt.Println("New balance: " + balance.String())
}
