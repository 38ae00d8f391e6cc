// This program builds, tampers with and verifies hash-linked ledgers.
package main

import "github.com/ardanlabs/hashledger/app/tooling/ledger/cmd"

func main() {
	cmd.Execute()
}
