package contract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questhive/sdk"
)

func createEscrow(t *testing.T, h *sdk.MockHost, payer, payee, arb string, amount float64, deadline int64) uint64 {
	t.Helper()
	payload := fmt.Sprintf(
		`{"payee":%q,"arbiter":%q,"amount":%.3f,"deadline":%d,"description":"milestone 1"}`,
		payee, arb, amount, deadline)
	mustCall(t, h, payer, allow(fmt.Sprintf("%.3f", amount), sdk.AssetHbd), EscrowCreate, payload)
	return getCount(EscrowsCount)
}

func TestEscrowCreateHoldsFunds(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)

	id := createEscrow(t, h, alice, bob, "", 50.0, 0)
	assert.Equal(t, uint64(1), id)

	assert.Equal(t, int64(50_000), h.BalanceOf(h.ContractAccount, sdk.AssetHbd))
	assert.Equal(t, int64(9_950_000), h.BalanceOf(sdk.Address(alice), sdk.AssetHbd))

	e, ok := loadEscrow(id)
	require.True(t, ok)
	assert.Equal(t, EscrowActive, e.Status)
	assert.Nil(t, e.Arbiter)
}

func TestEscrowCreateValidation(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)

	// Self-escrow rejected.
	_, revert := call(t, h, alice, allow("10.000", sdk.AssetHbd), EscrowCreate,
		fmt.Sprintf(`{"payee":%q,"amount":10.0}`, alice))
	expectRevert(t, ErrValidation, revert)

	// Deadline in the past rejected.
	past := h.Now() - 100
	_, revert = call(t, h, alice, allow("10.000", sdk.AssetHbd), EscrowCreate,
		fmt.Sprintf(`{"payee":%q,"amount":10.0,"deadline":%d}`, bob, past))
	expectRevert(t, ErrValidation, revert)
}

func TestEscrowReleaseByPayer(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createEscrow(t, h, alice, bob, "", 50.0, 0)

	mustCall(t, h, alice, nil, EscrowRelease, jsonID(id))

	assert.Equal(t, int64(10_050_000), h.BalanceOf(sdk.Address(bob), sdk.AssetHbd))
	assert.Equal(t, int64(0), h.BalanceOf(h.ContractAccount, sdk.AssetHbd))

	e, _ := loadEscrow(id)
	assert.Equal(t, EscrowReleased, e.Status)

	// Terminal: second release bounces.
	_, revert := call(t, h, alice, nil, EscrowRelease, jsonID(id))
	expectRevert(t, ErrBadState, revert)
}

func TestEscrowReleaseAuth(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createEscrow(t, h, alice, bob, "", 50.0, 0)

	// Payee cannot release to themselves, nor can a bystander.
	_, revert := call(t, h, bob, nil, EscrowRelease, jsonID(id))
	expectRevert(t, ErrUnauthorized, revert)
	_, revert = call(t, h, dave, nil, EscrowRelease, jsonID(id))
	expectRevert(t, ErrUnauthorized, revert)
}

func TestEscrowReleaseAfterDeadlineByAnyone(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	deadline := h.Now() + 3600
	id := createEscrow(t, h, alice, bob, "", 50.0, deadline)

	_, revert := call(t, h, dave, nil, EscrowRelease, jsonID(id))
	expectRevert(t, ErrUnauthorized, revert)

	h.SetNow(deadline)
	mustCall(t, h, dave, nil, EscrowRelease, jsonID(id))
	assert.Equal(t, int64(10_050_000), h.BalanceOf(sdk.Address(bob), sdk.AssetHbd))
}

func TestEscrowRefundByPayee(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createEscrow(t, h, alice, bob, "", 50.0, 0)

	mustCall(t, h, bob, nil, EscrowRefund, jsonID(id))
	assert.Equal(t, int64(10_000_000), h.BalanceOf(sdk.Address(alice), sdk.AssetHbd))

	e, _ := loadEscrow(id)
	assert.Equal(t, EscrowRefunded, e.Status)
}

func TestEscrowRefundAuth(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createEscrow(t, h, alice, bob, "", 50.0, 0)

	// The payer cannot pull funds back unilaterally.
	_, revert := call(t, h, alice, nil, EscrowRefund, jsonID(id))
	expectRevert(t, ErrUnauthorized, revert)
}

func TestEscrowDisputeRequiresArbiter(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createEscrow(t, h, alice, bob, "", 50.0, 0)

	_, revert := call(t, h, bob, nil, EscrowDispute, jsonID(id))
	expectRevert(t, ErrBadState, revert)
}

func TestEscrowDisputeResolveToPayee(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createEscrow(t, h, alice, bob, arbiter, 50.0, 0)

	mustCall(t, h, bob, nil, EscrowDispute, jsonID(id))

	e, _ := loadEscrow(id)
	assert.Equal(t, EscrowDisputed, e.Status)

	// Disputed escrows are frozen for the parties.
	_, revert := call(t, h, alice, nil, EscrowRelease, jsonID(id))
	expectRevert(t, ErrBadState, revert)

	// Only the arbiter resolves.
	_, revert = call(t, h, alice, nil, EscrowResolve, fmt.Sprintf(`{"id":%d,"release_to_payee":true}`, id))
	expectRevert(t, ErrUnauthorized, revert)

	mustCall(t, h, arbiter, nil, EscrowResolve, fmt.Sprintf(`{"id":%d,"release_to_payee":true}`, id))
	assert.Equal(t, int64(10_050_000), h.BalanceOf(sdk.Address(bob), sdk.AssetHbd))
}

func TestEscrowDisputeResolveToPayer(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createEscrow(t, h, alice, bob, arbiter, 50.0, 0)

	mustCall(t, h, alice, nil, EscrowDispute, jsonID(id))
	mustCall(t, h, arbiter, nil, EscrowResolve, fmt.Sprintf(`{"id":%d,"release_to_payee":false}`, id))

	assert.Equal(t, int64(10_000_000), h.BalanceOf(sdk.Address(alice), sdk.AssetHbd))
	e, _ := loadEscrow(id)
	assert.Equal(t, EscrowRefunded, e.Status)
}

func TestEscrowArbiterCanReleaseDirectly(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createEscrow(t, h, alice, bob, arbiter, 50.0, 0)

	mustCall(t, h, arbiter, nil, EscrowRelease, jsonID(id))
	assert.Equal(t, int64(10_050_000), h.BalanceOf(sdk.Address(bob), sdk.AssetHbd))
}
