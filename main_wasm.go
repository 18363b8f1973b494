//go:build wasm

////////////////////////////////////////////////////////////////////////////////
// QuestHive: mission rewards, settlements and reputation for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	_ "questhive/contract"
)

// main is left empty on purpose; the runtime calls the exported entrypoints
// in the contract package directly.
func main() {
}
