package contract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questhive/sdk"
)

func registerIdentity(t *testing.T, h *sdk.MockHost, sender, id string) {
	t.Helper()
	mustCall(t, h, sender, nil, IdentityRegister,
		fmt.Sprintf(`{"id":%q,"metadata_uri":"ipfs://meta"}`, id))
}

func TestIdentityRegister(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)

	registerIdentity(t, h, alice, "alice-id")

	identity, ok := loadIdentity("alice-id")
	require.True(t, ok)
	assert.True(t, identity.Active)
	assert.Equal(t, alice, identity.Owner.String())

	m, ok := loadMetrics("alice-id")
	require.True(t, ok)
	assert.Equal(t, uint64(ScoreMidpoint), m.Score)
}

func TestIdentityRegisterDuplicates(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	registerIdentity(t, h, alice, "alice-id")

	// Same id from a different address.
	_, revert := call(t, h, bob, nil, IdentityRegister, `{"id":"alice-id"}`)
	expectRevert(t, ErrBadState, revert)

	// Same address under a new id: first registration wins.
	_, revert = call(t, h, alice, nil, IdentityRegister, `{"id":"alice-two"}`)
	expectRevert(t, ErrBadState, revert)
}

func TestComputeScoreFreshMetrics(t *testing.T) {
	m := &ReputationMetrics{}
	assert.Equal(t, uint64(0), computeScore(m, 1_000_000))
}

func TestComputeScoreComponents(t *testing.T) {
	now := int64(1_000_000_000)
	m := &ReputationMetrics{
		TxCount:         1000, // clamps to 100 -> 1000
		SuccessCount:    1000, // perfect rate -> 3000
		Volume:          Amount(2_000_000_000), // clamps to 2000
		LastActivityAt:  now, // zero days -> 1500
		OnboardingCount: 100, // clamps to 50 -> 1500
		StreakDays:      40,  // clamps to 30 -> 990
	}
	want := uint64((1000*WeightTransactions +
		2000*WeightVolume +
		3000*WeightSuccessRate +
		1500*WeightActivity +
		1500*WeightOnboarding +
		990*WeightStreak) / 10000)
	assert.Equal(t, want, computeScore(m, now))
}

func TestComputeScoreActivityDecay(t *testing.T) {
	now := int64(1_000_000_000)
	m := &ReputationMetrics{LastActivityAt: now - 3*SecondsPerDay}
	// Only the activity component is live: (1500 - 200*3) * 1500 / 10000.
	assert.Equal(t, uint64(900*WeightActivity/10000), computeScore(m, now))

	// Beyond a week the component drops to zero.
	m.LastActivityAt = now - 8*SecondsPerDay
	assert.Equal(t, uint64(0), computeScore(m, now))
}

func TestReputationRecordTxScore(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	registerIdentity(t, h, alice, "alice-id")

	mustCall(t, h, operator, nil, ReputationRecordTx,
		fmt.Sprintf(`{"account":%q,"amount":100.0,"success":true}`, alice))

	m, ok := loadMetrics("alice-id")
	require.True(t, ok)
	assert.Equal(t, uint64(1), m.TxCount)
	assert.Equal(t, uint64(1), m.SuccessCount)
	assert.Equal(t, Amount(100_000), m.Volume)
	assert.Equal(t, uint64(1), m.StreakDays)

	// tx 10*1000, success 3000*3000, activity 1500*1500, streak 33*1000.
	assert.Equal(t, uint64(1129), m.Score)

	out := mustCall(t, h, operator, nil, ReputationGet, fmt.Sprintf(`{"account":%q}`, alice))
	assert.Contains(t, out, `"score":1129`)
	assert.Contains(t, out, `"identity":"alice-id"`)
}

func TestReputationStreakRule(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	registerIdentity(t, h, alice, "alice-id")

	record := func() {
		mustCall(t, h, operator, nil, ReputationRecordTx,
			fmt.Sprintf(`{"account":%q,"amount":1.0,"success":true}`, alice))
	}

	record()
	m, _ := loadMetrics("alice-id")
	assert.Equal(t, uint64(1), m.StreakDays)

	// Next-day activity extends the streak.
	h.AdvanceTime(SecondsPerDay)
	record()
	m, _ = loadMetrics("alice-id")
	assert.Equal(t, uint64(2), m.StreakDays)

	// A multi-day gap resets it to one.
	h.AdvanceTime(3 * SecondsPerDay)
	record()
	m, _ = loadMetrics("alice-id")
	assert.Equal(t, uint64(1), m.StreakDays)
}

func TestReputationFailedTx(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	registerIdentity(t, h, alice, "alice-id")

	mustCall(t, h, operator, nil, ReputationRecordTx,
		fmt.Sprintf(`{"account":%q,"amount":100.0,"success":false}`, alice))

	m, _ := loadMetrics("alice-id")
	assert.Equal(t, uint64(1), m.TxCount)
	assert.Equal(t, uint64(1), m.FailureCount)
	assert.Equal(t, Amount(0), m.Volume)
}

func TestReputationUpdaterAllowList(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	registerIdentity(t, h, bob, "bob-id")

	payload := fmt.Sprintf(`{"account":%q,"amount":1.0,"success":true}`, bob)

	_, revert := call(t, h, alice, nil, ReputationRecordTx, payload)
	expectRevert(t, ErrUnauthorized, revert)

	mustCall(t, h, operator, nil, UpdaterAdd, fmt.Sprintf(`{"account":%q}`, alice))
	mustCall(t, h, alice, nil, ReputationRecordTx, payload)

	mustCall(t, h, operator, nil, UpdaterRemove, fmt.Sprintf(`{"account":%q}`, alice))
	_, revert = call(t, h, alice, nil, ReputationRecordTx, payload)
	expectRevert(t, ErrUnauthorized, revert)
}

func TestReputationUnknownAccountNoOp(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)

	// No identity bound: recording succeeds and changes nothing.
	out := mustCall(t, h, operator, nil, ReputationRecordTx,
		fmt.Sprintf(`{"account":%q,"amount":1.0,"success":true}`, dave))
	assert.Equal(t, "recorded", out)
}

func TestReputationCounters(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	registerIdentity(t, h, alice, "alice-id")

	mustCall(t, h, operator, nil, ReputationAddOnboarding,
		fmt.Sprintf(`{"account":%q,"delta":3}`, alice))
	mustCall(t, h, operator, nil, ReputationAddContribution,
		fmt.Sprintf(`{"account":%q,"delta":2}`, alice))
	mustCall(t, h, operator, nil, ReputationAddRewards,
		fmt.Sprintf(`{"account":%q,"delta":25.0}`, alice))

	m, _ := loadMetrics("alice-id")
	assert.Equal(t, uint64(3), m.OnboardingCount)
	assert.Equal(t, uint64(2), m.ContributionCount)
	assert.Equal(t, Amount(25_000), m.RewardsEarned)

	_, revert := call(t, h, operator, nil, ReputationAddOnboarding,
		fmt.Sprintf(`{"account":%q,"delta":0}`, alice))
	expectRevert(t, ErrValidation, revert)
}

func TestCredentialLifecycle(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	registerIdentity(t, h, alice, "alice-id")
	registerIdentity(t, h, bob, "bob-id")

	id := mustCall(t, h, alice, nil, CredentialIssue,
		`{"subject":"bob-id","type_tag":"kyc","data_hash":"deadbeef"}`)
	assert.Equal(t, "1", id)

	out := mustCall(t, h, dave, nil, CredentialVerify, jsonID(1))
	assert.Contains(t, out, `"valid":true`)

	// Only the issuer revokes.
	_, revert := call(t, h, bob, nil, CredentialRevoke, jsonID(1))
	expectRevert(t, ErrUnauthorized, revert)

	mustCall(t, h, alice, nil, CredentialRevoke, jsonID(1))
	out = mustCall(t, h, dave, nil, CredentialVerify, jsonID(1))
	assert.Contains(t, out, `"reason":"revoked"`)

	_, revert = call(t, h, alice, nil, CredentialRevoke, jsonID(1))
	expectRevert(t, ErrBadState, revert)
}

func TestCredentialExpiry(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	registerIdentity(t, h, alice, "alice-id")
	registerIdentity(t, h, bob, "bob-id")

	expires := h.Now() + 3600
	mustCall(t, h, alice, nil, CredentialIssue,
		fmt.Sprintf(`{"subject":"bob-id","expires_at":%d}`, expires))

	out := mustCall(t, h, dave, nil, CredentialVerify, jsonID(1))
	assert.Contains(t, out, `"valid":true`)

	h.SetNow(expires)
	out = mustCall(t, h, dave, nil, CredentialVerify, jsonID(1))
	assert.Contains(t, out, `"reason":"expired"`)

	// Issuing an already-expired credential is rejected outright.
	_, revert := call(t, h, alice, nil, CredentialIssue,
		fmt.Sprintf(`{"subject":"bob-id","expires_at":%d}`, h.Now()-10))
	expectRevert(t, ErrValidation, revert)
}

func TestCredentialRequiresIdentities(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	registerIdentity(t, h, bob, "bob-id")

	// Issuer without an identity.
	_, revert := call(t, h, dave, nil, CredentialIssue, `{"subject":"bob-id"}`)
	expectRevert(t, ErrUnauthorized, revert)

	// Unknown subject.
	registerIdentity(t, h, alice, "alice-id")
	_, revert = call(t, h, alice, nil, CredentialIssue, `{"subject":"ghost"}`)
	expectRevert(t, ErrNotFound, revert)

	out := mustCall(t, h, dave, nil, CredentialVerify, jsonID(99))
	assert.Contains(t, out, `"reason":"not found"`)
}
