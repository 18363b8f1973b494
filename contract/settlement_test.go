package contract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questhive/sdk"
)

func createSettlementPayload(recipients []string, amounts []float64) string {
	rec := ""
	amt := ""
	for i := range recipients {
		if i > 0 {
			rec += ","
			amt += ","
		}
		rec += fmt.Sprintf("%q", recipients[i])
		amt += fmt.Sprintf("%.3f", amounts[i])
	}
	return fmt.Sprintf(`{"recipients":[%s],"amounts":[%s],"type_tag":"payroll"}`, rec, amt)
}

func TestSettlementCreateValidation(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)

	_, revert := call(t, h, alice, nil, SettlementCreate,
		`{"recipients":["hive:bob"],"amounts":[1.0,2.0]}`)
	expectRevert(t, ErrArrayLengthMismatch, revert)

	_, revert = call(t, h, alice, nil, SettlementCreate,
		`{"recipients":[],"amounts":[]}`)
	expectRevert(t, ErrEmptyRecipients, revert)

	_, revert = call(t, h, alice, nil, SettlementCreate,
		`{"recipients":["nonsense"],"amounts":[1.0]}`)
	expectRevert(t, ErrInvalidRecipient, revert)

	_, revert = call(t, h, alice, nil, SettlementCreate,
		`{"recipients":["hive:bob"],"amounts":[0.0]}`)
	expectRevert(t, ErrAmountBelowMinimum, revert)
}

func TestSettlementTooManyRecipients(t *testing.T) {
	h := setupHost(t)
	mustCall(t, h, operator, nil, ContractInit, `{"max_recipients":2}`)

	payload := createSettlementPayload(
		[]string{bob, carol, dave},
		[]float64{1.0, 1.0, 1.0})
	_, revert := call(t, h, alice, nil, SettlementCreate, payload)
	expectRevert(t, ErrTooManyRecipients, revert)
}

func TestSettlementExecuteFeeMath(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h) // 1% fee

	payload := createSettlementPayload([]string{bob, carol}, []float64{100.0, 200.0})
	id := mustCall(t, h, alice, nil, SettlementCreate, payload)
	require.Equal(t, "1", id)

	bobBefore := h.BalanceOf(sdk.Address(bob), sdk.AssetHbd)
	carolBefore := h.BalanceOf(sdk.Address(carol), sdk.AssetHbd)
	opBefore := h.BalanceOf(sdk.Address(operator), sdk.AssetHbd)
	aliceBefore := h.BalanceOf(sdk.Address(alice), sdk.AssetHbd)

	mustCall(t, h, alice, allow("300.000", sdk.AssetHbd), SettlementExecute, jsonID(1))

	// 1% off each payout goes to the operator; recipient keeps the rest.
	assert.Equal(t, bobBefore+99_000, h.BalanceOf(sdk.Address(bob), sdk.AssetHbd))
	assert.Equal(t, carolBefore+198_000, h.BalanceOf(sdk.Address(carol), sdk.AssetHbd))
	assert.Equal(t, opBefore+3_000, h.BalanceOf(sdk.Address(operator), sdk.AssetHbd))
	assert.Equal(t, aliceBefore-300_000, h.BalanceOf(sdk.Address(alice), sdk.AssetHbd))

	// Nothing stranded in custody: drawn total fully disbursed.
	assert.Equal(t, int64(0), h.BalanceOf(h.ContractAccount, sdk.AssetHbd))

	s, ok := loadSettlement(1)
	require.True(t, ok)
	assert.Equal(t, SettlementExecuted, s.Status)
	assert.Equal(t, Amount(3_000), s.Fee)
}

func TestSettlementExecuteAtomicRollback(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)

	// Drain alice down to 250 so the 300 draw fails mid-flight.
	payer := sdk.Address(alice)
	h.Deposit(payer, 250_000-h.BalanceOf(payer, sdk.AssetHbd), sdk.AssetHbd)

	payload := createSettlementPayload([]string{bob, carol}, []float64{100.0, 200.0})
	mustCall(t, h, alice, nil, SettlementCreate, payload)

	_, revert := call(t, h, alice, allow("300.000", sdk.AssetHbd), SettlementExecute, jsonID(1))
	expectRevert(t, ErrInsufficientBalance, revert)

	// Whole transaction rolled back: still pending, balances untouched.
	s, ok := loadSettlement(1)
	require.True(t, ok)
	assert.Equal(t, SettlementPending, s.Status)
	assert.Equal(t, int64(250_000), h.BalanceOf(payer, sdk.AssetHbd))
	assert.Equal(t, int64(10_000_000), h.BalanceOf(sdk.Address(bob), sdk.AssetHbd))
}

func TestSettlementExecuteRequiresAllowance(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)

	payload := createSettlementPayload([]string{bob}, []float64{10.0})
	mustCall(t, h, alice, nil, SettlementCreate, payload)

	_, revert := call(t, h, alice, nil, SettlementExecute, jsonID(1))
	expectRevert(t, ErrInsufficientAllowance, revert)

	_, revert = call(t, h, alice, allow("5.000", sdk.AssetHbd), SettlementExecute, jsonID(1))
	expectRevert(t, ErrInsufficientAllowance, revert)
}

func TestSettlementExecuteInitiatorOnly(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)

	payload := createSettlementPayload([]string{bob}, []float64{10.0})
	mustCall(t, h, alice, nil, SettlementCreate, payload)

	_, revert := call(t, h, carol, allow("10.000", sdk.AssetHbd), SettlementExecute, jsonID(1))
	expectRevert(t, ErrUnauthorized, revert)
}

func TestSettlementCancel(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)

	payload := createSettlementPayload([]string{bob}, []float64{10.0})
	mustCall(t, h, alice, nil, SettlementCreate, payload)
	mustCall(t, h, alice, nil, SettlementCancel, jsonID(1))

	s, ok := loadSettlement(1)
	require.True(t, ok)
	assert.Equal(t, SettlementCancelled, s.Status)

	// Cancelled settlements stay dead.
	_, revert := call(t, h, alice, allow("10.000", sdk.AssetHbd), SettlementExecute, jsonID(1))
	expectRevert(t, ErrBadState, revert)
	_, revert = call(t, h, alice, nil, SettlementCancel, jsonID(1))
	expectRevert(t, ErrBadState, revert)
}

func TestSettlementStats(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)

	payload := createSettlementPayload([]string{bob}, []float64{100.0})
	mustCall(t, h, alice, nil, SettlementCreate, payload)
	mustCall(t, h, alice, allow("100.000", sdk.AssetHbd), SettlementExecute, jsonID(1))

	out := mustCall(t, h, alice, nil, SettlementStats, `{}`)
	assert.Contains(t, out, `"settlements":1`)
	assert.Contains(t, out, `"total_settled":100`)
	assert.Contains(t, out, `"total_fees":1`)
}
