package contract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"questhive/sdk"
)

const (
	operator = "hive:operator"
	alice    = "hive:alice"
	bob      = "hive:bob"
	carol    = "hive:carol"
	dave     = "hive:dave"
	arbiter  = "hive:arbiter"
)

// setupHost installs a fresh mock host and funds the standard cast.
func setupHost(t *testing.T) *sdk.MockHost {
	t.Helper()
	h := sdk.NewMockHost()
	sdk.UseHost(h)
	for _, who := range []string{operator, alice, bob, carol, dave, arbiter} {
		h.Deposit(sdk.Address(who), 10_000_000, sdk.AssetHive)
		h.Deposit(sdk.Address(who), 10_000_000, sdk.AssetHbd)
	}
	return h
}

// call runs one entrypoint as one transaction: fresh tx context, snapshot
// before, rollback on revert. The returned *RevertError is nil on success.
func call(t *testing.T, h *sdk.MockHost, sender string, intents []sdk.Intent, fn func(*string) *string, payload string) (result *string, revert *sdk.RevertError) {
	t.Helper()
	h.BeginTx(sdk.Address(sender), intents)
	cachedEnvLoaded = false
	cachedAllow = nil
	snap := h.Snapshot()
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*sdk.RevertError)
			if !ok {
				panic(r)
			}
			h.Restore(snap)
			revert = re
		}
	}()
	result = fn(&payload)
	return
}

// mustCall fails the test on any revert and returns the response string.
func mustCall(t *testing.T, h *sdk.MockHost, sender string, intents []sdk.Intent, fn func(*string) *string, payload string) string {
	t.Helper()
	result, revert := call(t, h, sender, intents, fn, payload)
	require.Nil(t, revert, "unexpected revert")
	require.NotNil(t, result)
	return *result
}

// expectRevert asserts the call reverted with the given symbol.
func expectRevert(t *testing.T, symbol string, revert *sdk.RevertError) {
	t.Helper()
	require.NotNil(t, revert, "expected revert %s, call succeeded", symbol)
	require.Equal(t, symbol, revert.Symbol, "revert message: %s", revert.Msg)
}

// allow builds the transfer.allow intent the ledger draw path checks.
func allow(limit string, token sdk.Asset) []sdk.Intent {
	return []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": token.String()},
	}}
}

// initDefaults runs contract_init as the operator with the fallback config.
func initDefaults(t *testing.T, h *sdk.MockHost) {
	t.Helper()
	mustCall(t, h, operator, nil, ContractInit, `{}`)
}

// jsonID is the shared {"id":n} payload.
func jsonID(id uint64) string {
	return fmt.Sprintf(`{"id":%d}`, id)
}
