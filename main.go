//go:build !wasm

////////////////////////////////////////////////////////////////////////////////
// QuestHive: mission rewards, settlements and reputation for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"questhive/sdk"
)

func main() {
	// Local runs get the in-memory host; the wasm build binds to the chain
	// imports in the sdk package instead.
	sdk.UseHost(sdk.NewMockHost())
}
