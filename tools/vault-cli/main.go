package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	// print banner
	fmt.Println("Token Vault CLI 0.1")

	flag.Usage = func() {
		printUsage(nil)
	}

	// check if parameter counts is large enough
	if len(os.Args) < 2 {
		printUsage(nil)
	}

	// define sub commands
	balanceCommand := flag.NewFlagSet("balance", flag.ExitOnError)
	totalCommand := flag.NewFlagSet("total", flag.ExitOnError)
	depositCommand := flag.NewFlagSet("deposit", flag.ExitOnError)
	withdrawCommand := flag.NewFlagSet("withdraw", flag.ExitOnError)
	supportedCommand := flag.NewFlagSet("supported", flag.ExitOnError)
	setEligibleCommand := flag.NewFlagSet("set-eligible", flag.ExitOnError)

	// switch logic according to provided sub command
	switch os.Args[1] {
	case "balance":
		execBalanceCommand(balanceCommand)
	case "total":
		execTotalCommand(totalCommand)
	case "deposit":
		execDepositCommand(depositCommand)
	case "withdraw":
		execWithdrawCommand(withdrawCommand)
	case "supported":
		execSupportedCommand(supportedCommand)
	case "set-eligible":
		execSetEligibleCommand(setEligibleCommand)
	case "help":
		printUsage(nil)
	default:
		printUsage(nil, "unknown [COMMAND]: "+os.Args[1])
	}
}
