package contract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questhive/sdk"
)

func TestContractInitDefaults(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)

	cfg := requireConfig()
	assert.Equal(t, operator, cfg.Owner.String())
	assert.Equal(t, uint64(FallbackFeeBps), cfg.FeeBps)
	assert.Equal(t, uint64(FallbackMaxRecipients), cfg.MaxRecipients)
	assert.Equal(t, int64(FallbackStakeLockHours*3600), cfg.StakeLockSeconds)
	assert.Equal(t, sdk.AssetHive, cfg.StakeAsset)
	assert.Equal(t, sdk.AssetHbd, cfg.PayoutAsset)
}

func TestContractInitExplicitConfig(t *testing.T) {
	h := setupHost(t)
	mustCall(t, h, operator, nil, ContractInit,
		fmt.Sprintf(`{"owner":%q,"fee_bps":250,"min_settlement_amount":5.0,"max_recipients":10,"stake_lock_hours":48}`, alice))

	cfg := requireConfig()
	assert.Equal(t, alice, cfg.Owner.String())
	assert.Equal(t, uint64(250), cfg.FeeBps)
	assert.Equal(t, Amount(5_000), cfg.MinSettlementAmount)
	assert.Equal(t, uint64(10), cfg.MaxRecipients)
	assert.Equal(t, int64(48*3600), cfg.StakeLockSeconds)
}

func TestContractInitOnlyOnce(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)

	_, revert := call(t, h, operator, nil, ContractInit, `{}`)
	require.NotNil(t, revert)
	assert.Equal(t, "abort", revert.Symbol)
}

func TestContractInitFeeCap(t *testing.T) {
	h := setupHost(t)
	_, revert := call(t, h, operator, nil, ContractInit, `{"fee_bps":2000}`)
	expectRevert(t, ErrValidation, revert)
}

func TestEntrypointsRequireInit(t *testing.T) {
	h := setupHost(t)
	_, revert := call(t, h, alice, nil, SettlementCreate,
		`{"recipients":["hive:bob"],"amounts":[1.0]}`)
	require.NotNil(t, revert)
	assert.Equal(t, "abort", revert.Symbol)
}

func TestEmergencyRecover(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)

	// Stray funds sitting in custody with no owning record.
	h.Deposit(h.ContractAccount, 75_000, sdk.AssetHbd)

	_, revert := call(t, h, alice, nil, EmergencyRecover, `{}`)
	expectRevert(t, ErrUnauthorized, revert)

	before := h.BalanceOf(sdk.Address(operator), sdk.AssetHbd)
	mustCall(t, h, operator, nil, EmergencyRecover, `{}`)
	assert.Equal(t, before+75_000, h.BalanceOf(sdk.Address(operator), sdk.AssetHbd))

	_, revert = call(t, h, operator, nil, EmergencyRecover, `{}`)
	expectRevert(t, ErrBadState, revert)
}

func TestEmergencyRecoverExplicitTarget(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	h.Deposit(h.ContractAccount, 10_000, sdk.AssetHive)

	mustCall(t, h, operator, nil, EmergencyRecover,
		fmt.Sprintf(`{"asset":"hive","to":%q}`, bob))
	assert.Equal(t, int64(10_010_000), h.BalanceOf(sdk.Address(bob), sdk.AssetHive))
}
