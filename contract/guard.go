package contract

import "questhive/sdk"

// acquireGuard flags a named custody section as in-flight and returns the
// release func. Callers defer the release so the flag clears on every exit
// path, including reverts unwinding through the harness.
func acquireGuard(name string) func() {
	key := guardKey(name)
	if sdk.StateGetObject(key) != nil {
		fail(ErrReentrantCall, "operation already in flight: "+name)
	}
	sdk.StateSetObject(key, "1")
	return func() {
		sdk.StateDeleteObject(key)
	}
}
