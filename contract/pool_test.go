package contract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questhive/sdk"
)

// createPool opens a 1000.000 hbd pool paying 100 millionths per staked unit
// per second, window one million seconds wide.
func createPool(t *testing.T, h *sdk.MockHost) uint64 {
	t.Helper()
	now := h.Now()
	payload := fmt.Sprintf(
		`{"name":"season 1","total_rewards":1000.0,"start":%d,"end":%d,"rate_per_second":100}`,
		now, now+1_000_000)
	mustCall(t, h, operator, allow("1000.000", sdk.AssetHbd), PoolCreate, payload)
	return getCount(PoolsCount)
}

func stakeFor(t *testing.T, h *sdk.MockHost, who string, amount string) {
	t.Helper()
	mustCall(t, h, who, allow(amount, sdk.AssetHive), PoolStake,
		fmt.Sprintf(`{"amount":%s}`, amount))
}

func TestPoolCreateDrawsAllocation(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)

	id := createPool(t, h)
	assert.Equal(t, uint64(1), id)
	assert.Equal(t, int64(1_000_000), h.BalanceOf(h.ContractAccount, sdk.AssetHbd))

	p, ok := loadPool(id)
	require.True(t, ok)
	assert.Equal(t, Amount(1_000_000), p.Allocated)
	assert.True(t, p.Active)
}

func TestPoolCreateValidation(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	now := h.Now()

	// Operator only.
	_, revert := call(t, h, alice, allow("10.000", sdk.AssetHbd), PoolCreate,
		fmt.Sprintf(`{"name":"x","total_rewards":10.0,"start":%d,"end":%d,"rate_per_second":1}`, now, now+100))
	expectRevert(t, ErrUnauthorized, revert)

	// Inverted window.
	_, revert = call(t, h, operator, allow("10.000", sdk.AssetHbd), PoolCreate,
		fmt.Sprintf(`{"name":"x","total_rewards":10.0,"start":%d,"end":%d,"rate_per_second":1}`, now+100, now+50))
	expectRevert(t, ErrValidation, revert)

	// Window already over.
	_, revert = call(t, h, operator, allow("10.000", sdk.AssetHbd), PoolCreate,
		fmt.Sprintf(`{"name":"x","total_rewards":10.0,"start":%d,"end":%d,"rate_per_second":1}`, now-200, now-100))
	expectRevert(t, ErrValidation, revert)
}

func TestPoolFund(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createPool(t, h)

	mustCall(t, h, bob, allow("50.000", sdk.AssetHbd), PoolFund,
		fmt.Sprintf(`{"pool_id":%d,"amount":50.0}`, id))

	p, _ := loadPool(id)
	assert.Equal(t, Amount(1_050_000), p.Allocated)
}

func TestPoolStakeAndAccrual(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createPool(t, h)

	stakeFor(t, h, alice, "10.000")
	assert.Equal(t, int64(10_000), h.BalanceOf(h.ContractAccount, sdk.AssetHive))

	// stake 10000 * rate 100 * 100s / 1e6 = 100 milli-units = 0.1.
	h.AdvanceTime(100)
	out := mustCall(t, h, alice, nil, PoolPending,
		fmt.Sprintf(`{"pool_id":%d,"staker":%q}`, id, alice))
	assert.Contains(t, out, `"pending":0.1`)

	before := h.BalanceOf(sdk.Address(alice), sdk.AssetHbd)
	mustCall(t, h, alice, nil, PoolClaim, fmt.Sprintf(`{"pool_id":%d,"amount":0}`, id))
	assert.Equal(t, before+100, h.BalanceOf(sdk.Address(alice), sdk.AssetHbd))

	p, _ := loadPool(id)
	assert.Equal(t, Amount(100), p.Distributed)

	// Accrual restarts from the claim.
	_, revert := call(t, h, alice, nil, PoolClaim, fmt.Sprintf(`{"pool_id":%d,"amount":0}`, id))
	expectRevert(t, ErrBadState, revert)

	h.AdvanceTime(50)
	before = h.BalanceOf(sdk.Address(alice), sdk.AssetHbd)
	mustCall(t, h, alice, nil, PoolClaim, fmt.Sprintf(`{"pool_id":%d,"amount":0}`, id))
	assert.Equal(t, before+50, h.BalanceOf(sdk.Address(alice), sdk.AssetHbd))
}

func TestPoolClaimRequestedAmountCapped(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createPool(t, h)
	stakeFor(t, h, alice, "10.000")
	h.AdvanceTime(100)

	// Asking for more than accrued falls back to the full entitlement.
	before := h.BalanceOf(sdk.Address(alice), sdk.AssetHbd)
	mustCall(t, h, alice, nil, PoolClaim, fmt.Sprintf(`{"pool_id":%d,"amount":999.0}`, id))
	assert.Equal(t, before+100, h.BalanceOf(sdk.Address(alice), sdk.AssetHbd))
}

func TestPoolClaimRequiresStake(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createPool(t, h)

	_, revert := call(t, h, bob, nil, PoolClaim, fmt.Sprintf(`{"pool_id":%d,"amount":0}`, id))
	expectRevert(t, ErrBadState, revert)
}

func TestPoolAccrualStopsAtWindowEnd(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createPool(t, h)
	stakeFor(t, h, alice, "10.000")

	// Far past the end: elapsed clamps to the window, 1e6 seconds.
	h.AdvanceTime(2_000_000)
	out := mustCall(t, h, alice, nil, PoolPending,
		fmt.Sprintf(`{"pool_id":%d,"staker":%q}`, id, alice))
	// 10000 * 100 * 1e6 / 1e6 = 1_000_000 milli = the whole allocation.
	assert.Contains(t, out, `"pending":1000`)
}

func TestPoolEntitlementClampedToAllocation(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	now := h.Now()

	// Tiny pool, huge rate: accrual outruns the allocation fast.
	mustCall(t, h, operator, allow("1.000", sdk.AssetHbd), PoolCreate,
		fmt.Sprintf(`{"name":"tiny","total_rewards":1.0,"start":%d,"end":%d,"rate_per_second":1000000}`, now, now+1_000_000))
	id := getCount(PoolsCount)
	stakeFor(t, h, alice, "10.000")

	h.AdvanceTime(10_000)
	before := h.BalanceOf(sdk.Address(alice), sdk.AssetHbd)
	mustCall(t, h, alice, nil, PoolClaim, fmt.Sprintf(`{"pool_id":%d,"amount":0}`, id))
	assert.Equal(t, before+1_000, h.BalanceOf(sdk.Address(alice), sdk.AssetHbd))

	p, _ := loadPool(id)
	assert.Equal(t, p.Allocated, p.Distributed)
}

func TestPoolUnstakeLock(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h) // 168h lock
	createPool(t, h)
	stakeFor(t, h, alice, "10.000")
	stakedAt := h.Now()

	_, revert := call(t, h, alice, nil, PoolUnstake, `{"amount":5.0}`)
	expectRevert(t, ErrBadState, revert)

	// Top-up halfway through must not restart the clock.
	h.AdvanceTime(100_000)
	stakeFor(t, h, alice, "5.000")

	h.SetNow(stakedAt + 168*3600)
	before := h.BalanceOf(sdk.Address(alice), sdk.AssetHive)
	mustCall(t, h, alice, nil, PoolUnstake, `{"amount":5.0}`)
	assert.Equal(t, before+5_000, h.BalanceOf(sdk.Address(alice), sdk.AssetHive))

	s, ok := loadStake(sdk.Address(alice))
	require.True(t, ok)
	assert.Equal(t, Amount(10_000), s.Amount)

	// Full withdrawal clears the record.
	mustCall(t, h, alice, nil, PoolUnstake, `{"amount":10.0}`)
	_, ok = loadStake(sdk.Address(alice))
	assert.False(t, ok)
}

func TestPoolUnstakeValidation(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	createPool(t, h)

	_, revert := call(t, h, bob, nil, PoolUnstake, `{"amount":1.0}`)
	expectRevert(t, ErrNotFound, revert)

	stakeFor(t, h, bob, "2.000")
	_, revert = call(t, h, bob, nil, PoolUnstake, `{"amount":5.0}`)
	expectRevert(t, ErrValidation, revert)
}

func TestPoolDistribute(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createPool(t, h)

	_, revert := call(t, h, alice, nil, PoolDistribute,
		fmt.Sprintf(`{"pool_id":%d,"recipients":[%q],"amounts":[10.0]}`, id, bob))
	expectRevert(t, ErrUnauthorized, revert)

	before := h.BalanceOf(sdk.Address(bob), sdk.AssetHbd)
	mustCall(t, h, operator, nil, PoolDistribute,
		fmt.Sprintf(`{"pool_id":%d,"recipients":[%q,%q],"amounts":[10.0,20.0]}`, id, bob, carol))
	assert.Equal(t, before+10_000, h.BalanceOf(sdk.Address(bob), sdk.AssetHbd))

	p, _ := loadPool(id)
	assert.Equal(t, Amount(30_000), p.Distributed)

	// A batch beyond the remaining allocation is rejected whole.
	_, revert = call(t, h, operator, nil, PoolDistribute,
		fmt.Sprintf(`{"pool_id":%d,"recipients":[%q],"amounts":[980.0]}`, id, bob))
	expectRevert(t, ErrInsufficientBalance, revert)
}
