// Command ledgerctl runs bookkeeping operations directly against the ledger store.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
