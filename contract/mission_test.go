package contract

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questhive/sdk"
)

func createStablecoinMission(t *testing.T, h *sdk.MockHost) uint64 {
	t.Helper()
	mustCall(t, h, operator, nil, MissionCreate,
		`{"name":"launch week","description":"onboarding push","reward_mode":"stablecoin"}`)
	return getCount(MissionsCount)
}

func depositMission(t *testing.T, h *sdk.MockHost, id uint64, amount string) {
	t.Helper()
	mustCall(t, h, operator, allow(amount, sdk.AssetHbd), MissionDeposit,
		fmt.Sprintf(`{"mission_id":%d,"amount":%s}`, id, amount))
}

func publishRoot(t *testing.T, h *sdk.MockHost, id uint64, root []byte) {
	t.Helper()
	mustCall(t, h, operator, nil, MissionUpdateRoot,
		fmt.Sprintf(`{"mission_id":%d,"root":%q}`, id, hex.EncodeToString(root)))
}

func proofJSON(proof [][]byte) string {
	out := ""
	for i, elem := range proof {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%q", hex.EncodeToString(elem))
	}
	return "[" + out + "]"
}

func claimPayload(missionID, executionID uint64, amount float64, proof [][]byte) string {
	return fmt.Sprintf(`{"mission_id":%d,"execution_id":%d,"amount":%.3f,"proof":%s}`,
		missionID, executionID, amount, proofJSON(proof))
}

func TestMissionCreateOperatorOnly(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)

	_, revert := call(t, h, alice, nil, MissionCreate, `{"name":"nope"}`)
	expectRevert(t, ErrUnauthorized, revert)

	id := createStablecoinMission(t, h)
	m, ok := loadMission(id)
	require.True(t, ok)
	assert.Equal(t, RewardModeStablecoin, m.RewardMode)
	assert.True(t, m.Active)
	assert.Equal(t, operator, m.Owner.String())
}

func TestApplicationAndInteractionLifecycle(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createStablecoinMission(t, h)

	appID := mustCall(t, h, operator, nil, ApplicationAdd,
		fmt.Sprintf(`{"mission_id":%d,"name":"mobile app","url":"https://example.org"}`, id))
	assert.Equal(t, "1", appID)

	intID := mustCall(t, h, operator, nil, InteractionAdd,
		fmt.Sprintf(`{"mission_id":%d,"application_id":1,"title":"first swap","reward":2.5}`, id))
	assert.Equal(t, "1", intID)

	// Unknown application rejected.
	_, revert := call(t, h, operator, nil, InteractionAdd,
		fmt.Sprintf(`{"mission_id":%d,"application_id":9,"title":"x","reward":1.0}`, id))
	expectRevert(t, ErrNotFound, revert)

	// Deactivation keeps the record around.
	mustCall(t, h, operator, nil, InteractionDeactivate,
		fmt.Sprintf(`{"mission_id":%d,"id":1}`, id))
	i, ok := loadInteraction(id, 1)
	require.True(t, ok)
	assert.False(t, i.Active)

	mustCall(t, h, operator, nil, ApplicationDeactivate,
		fmt.Sprintf(`{"mission_id":%d,"id":1}`, id))
	a, ok := loadApplication(id, 1)
	require.True(t, ok)
	assert.False(t, a.Active)

	_, revert = call(t, h, operator, nil, ApplicationDeactivate,
		fmt.Sprintf(`{"mission_id":%d,"id":1}`, id))
	expectRevert(t, ErrBadState, revert)
}

func TestMissionRootValidation(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createStablecoinMission(t, h)

	_, revert := call(t, h, operator, nil, MissionUpdateRoot,
		fmt.Sprintf(`{"mission_id":%d,"root":%q}`, id, hex.EncodeToString(make([]byte, 32))))
	expectRevert(t, ErrValidation, revert)

	_, revert = call(t, h, operator, nil, MissionUpdateRoot,
		fmt.Sprintf(`{"mission_id":%d,"root":"abcd"}`, id))
	expectRevert(t, ErrValidation, revert)

	// Non-admins cannot publish.
	root := keccak256([]byte("some root"))
	_, revert = call(t, h, alice, nil, MissionUpdateRoot,
		fmt.Sprintf(`{"mission_id":%d,"root":%q}`, id, hex.EncodeToString(root)))
	expectRevert(t, ErrUnauthorized, revert)
}

func TestMissionClaimFullScenario(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createStablecoinMission(t, h)
	depositMission(t, h, id, "1000.000")
	assert.Equal(t, int64(1_000_000), h.BalanceOf(h.ContractAccount, sdk.AssetHbd))

	l1 := participantLeaf(sdk.Address(alice), 1)
	l2 := participantLeaf(sdk.Address(bob), 2)
	l3 := participantLeaf(sdk.Address(carol), 3)
	root, proofs := buildThreeLeafTree(l1, l2, l3)
	publishRoot(t, h, id, root)

	// Claims closed until distribution opens the window.
	_, revert := call(t, h, alice, nil, MissionClaim, claimPayload(id, 1, 500.0, proofs[0]))
	expectRevert(t, ErrBadState, revert)

	mustCall(t, h, operator, nil, MissionDistribute, jsonID(id))

	// Preflight says yes for a real participant, no for an outsider.
	out := mustCall(t, h, dave, nil, MissionVerify,
		fmt.Sprintf(`{"mission_id":%d,"address":%q,"execution_id":1,"proof":%s}`, id, alice, proofJSON(proofs[0])))
	assert.Contains(t, out, `"valid":true`)
	out = mustCall(t, h, dave, nil, MissionVerify,
		fmt.Sprintf(`{"mission_id":%d,"address":%q,"execution_id":1,"proof":%s}`, id, dave, proofJSON(proofs[0])))
	assert.Contains(t, out, `"valid":false`)

	mustCall(t, h, alice, nil, MissionClaim, claimPayload(id, 1, 500.0, proofs[0]))
	mustCall(t, h, bob, nil, MissionClaim, claimPayload(id, 2, 300.0, proofs[1]))
	mustCall(t, h, carol, nil, MissionClaim, claimPayload(id, 3, 200.0, proofs[2]))

	assert.Equal(t, int64(10_500_000), h.BalanceOf(sdk.Address(alice), sdk.AssetHbd))
	assert.Equal(t, int64(10_300_000), h.BalanceOf(sdk.Address(bob), sdk.AssetHbd))
	assert.Equal(t, int64(10_200_000), h.BalanceOf(sdk.Address(carol), sdk.AssetHbd))
	assert.Equal(t, int64(0), h.BalanceOf(h.ContractAccount, sdk.AssetHbd))

	m, _ := loadMission(id)
	assert.Equal(t, Amount(1_000_000), m.Distributed)
	assert.Equal(t, uint64(3), m.ClaimCount)
}

func TestMissionClaimRejections(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createStablecoinMission(t, h)
	depositMission(t, h, id, "1000.000")

	l1 := participantLeaf(sdk.Address(alice), 1)
	l2 := participantLeaf(sdk.Address(bob), 2)
	l3 := participantLeaf(sdk.Address(carol), 3)
	root, proofs := buildThreeLeafTree(l1, l2, l3)
	publishRoot(t, h, id, root)
	mustCall(t, h, operator, nil, MissionDistribute, jsonID(id))

	// An outsider with somebody else's proof.
	_, revert := call(t, h, dave, nil, MissionClaim, claimPayload(id, 1, 500.0, proofs[0]))
	expectRevert(t, ErrInvalidMerkleProof, revert)

	// Right address, wrong execution id.
	_, revert = call(t, h, alice, nil, MissionClaim, claimPayload(id, 2, 500.0, proofs[0]))
	expectRevert(t, ErrInvalidMerkleProof, revert)

	// Zero amount.
	_, revert = call(t, h, alice, nil, MissionClaim, claimPayload(id, 1, 0, proofs[0]))
	expectRevert(t, ErrValidation, revert)

	// Over the remaining pool.
	_, revert = call(t, h, alice, nil, MissionClaim, claimPayload(id, 1, 2000.0, proofs[0]))
	expectRevert(t, ErrInsufficientBalance, revert)

	// Double claim.
	mustCall(t, h, alice, nil, MissionClaim, claimPayload(id, 1, 500.0, proofs[0]))
	_, revert = call(t, h, alice, nil, MissionClaim, claimPayload(id, 1, 500.0, proofs[0]))
	expectRevert(t, ErrAlreadyClaimed, revert)
}

func TestMissionRootRotationKeepsClaims(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createStablecoinMission(t, h)
	depositMission(t, h, id, "1000.000")

	l1 := participantLeaf(sdk.Address(alice), 1)
	l2 := participantLeaf(sdk.Address(bob), 2)
	root1 := hashPair(l1, l2)
	publishRoot(t, h, id, root1)
	mustCall(t, h, operator, nil, MissionDistribute, jsonID(id))
	mustCall(t, h, alice, nil, MissionClaim, claimPayload(id, 1, 100.0, [][]byte{l2}))

	// Rotate to a fresh root that still includes alice.
	l3 := participantLeaf(sdk.Address(carol), 3)
	n12 := hashPair(l1, l2)
	root2 := hashPair(n12, l3)
	publishRoot(t, h, id, root2)

	// Alice's flag survives the rotation.
	_, revert := call(t, h, alice, nil, MissionClaim, claimPayload(id, 1, 100.0, [][]byte{l2, l3}))
	expectRevert(t, ErrAlreadyClaimed, revert)

	// Carol can claim against the new root.
	mustCall(t, h, carol, nil, MissionClaim, claimPayload(id, 3, 100.0, [][]byte{n12}))
}

func TestMissionDistributeChecks(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createStablecoinMission(t, h)

	// No root yet.
	_, revert := call(t, h, operator, nil, MissionDistribute, jsonID(id))
	expectRevert(t, ErrBadState, revert)

	publishRoot(t, h, id, keccak256([]byte("root")))

	// Root but nothing deposited.
	_, revert = call(t, h, operator, nil, MissionDistribute, jsonID(id))
	expectRevert(t, ErrBadState, revert)

	depositMission(t, h, id, "100.000")
	mustCall(t, h, operator, nil, MissionDistribute, jsonID(id))

	// One shot.
	_, revert = call(t, h, operator, nil, MissionDistribute, jsonID(id))
	expectRevert(t, ErrBadState, revert)
}

func TestMissionBatchDistribute(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createStablecoinMission(t, h)
	depositMission(t, h, id, "600.000")

	// Batch larger than the deposit bounces whole.
	_, revert := call(t, h, operator, nil, MissionBatchDistribute,
		fmt.Sprintf(`{"mission_id":%d,"recipients":[%q],"amounts":[700.0]}`, id, alice))
	expectRevert(t, ErrInsufficientBalance, revert)

	mustCall(t, h, operator, nil, MissionBatchDistribute,
		fmt.Sprintf(`{"mission_id":%d,"recipients":[%q,%q],"amounts":[400.0,200.0]}`, id, alice, bob))

	// Fee-free from mission custody, unlike the settlement path.
	assert.Equal(t, int64(10_400_000), h.BalanceOf(sdk.Address(alice), sdk.AssetHbd))
	assert.Equal(t, int64(10_200_000), h.BalanceOf(sdk.Address(bob), sdk.AssetHbd))
	assert.Equal(t, int64(0), h.BalanceOf(h.ContractAccount, sdk.AssetHbd))

	// The batch is recorded as an executed settlement with no fee.
	s, ok := loadSettlement(1)
	require.True(t, ok)
	assert.Equal(t, SettlementExecuted, s.Status)
	assert.Equal(t, Amount(0), s.Fee)
	assert.Equal(t, "mission", s.TypeTag)

	// One shot.
	_, revert = call(t, h, operator, nil, MissionBatchDistribute,
		fmt.Sprintf(`{"mission_id":%d,"recipients":[%q],"amounts":[1.0]}`, id, alice))
	expectRevert(t, ErrBadState, revert)
}

func TestMissionPointModeClaimPaysFromPool(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	poolID := createPool(t, h)

	mustCall(t, h, operator, nil, MissionCreate, `{"name":"points run"}`)
	id := getCount(MissionsCount)

	mustCall(t, h, operator, nil, MissionSetPool,
		fmt.Sprintf(`{"mission_id":%d,"pool_id":%d}`, id, poolID))

	l1 := participantLeaf(sdk.Address(alice), 1)
	l2 := participantLeaf(sdk.Address(bob), 2)
	publishRoot(t, h, id, hashPair(l1, l2))
	mustCall(t, h, operator, nil, MissionDistribute, jsonID(id))

	before := h.BalanceOf(sdk.Address(alice), sdk.AssetHbd)
	mustCall(t, h, alice, nil, MissionClaim, claimPayload(id, 1, 50.0, [][]byte{l2}))
	assert.Equal(t, before+50_000, h.BalanceOf(sdk.Address(alice), sdk.AssetHbd))

	p, _ := loadPool(poolID)
	assert.Equal(t, Amount(50_000), p.Distributed)
}

func TestMissionPointModeRequiresPool(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	mustCall(t, h, operator, nil, MissionCreate, `{"name":"points run"}`)
	id := getCount(MissionsCount)
	publishRoot(t, h, id, keccak256([]byte("root")))

	_, revert := call(t, h, operator, nil, MissionDistribute, jsonID(id))
	expectRevert(t, ErrBadState, revert)
}

func TestMissionSetRewardModeBeforeDistribution(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createStablecoinMission(t, h)
	depositMission(t, h, id, "10.000")
	publishRoot(t, h, id, keccak256([]byte("root")))

	mustCall(t, h, operator, nil, MissionSetRewardMode,
		fmt.Sprintf(`{"mission_id":%d,"mode":"points"}`, id))
	mustCall(t, h, operator, nil, MissionSetRewardMode,
		fmt.Sprintf(`{"mission_id":%d,"mode":"stablecoin"}`, id))

	mustCall(t, h, operator, nil, MissionDistribute, jsonID(id))
	_, revert := call(t, h, operator, nil, MissionSetRewardMode,
		fmt.Sprintf(`{"mission_id":%d,"mode":"points"}`, id))
	expectRevert(t, ErrBadState, revert)
}

func TestMissionDeactivateBlocksClaims(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createStablecoinMission(t, h)
	depositMission(t, h, id, "100.000")

	l1 := participantLeaf(sdk.Address(alice), 1)
	l2 := participantLeaf(sdk.Address(bob), 2)
	publishRoot(t, h, id, hashPair(l1, l2))
	mustCall(t, h, operator, nil, MissionDistribute, jsonID(id))
	mustCall(t, h, operator, nil, MissionDeactivate, jsonID(id))

	_, revert := call(t, h, alice, nil, MissionClaim, claimPayload(id, 1, 50.0, [][]byte{l2}))
	expectRevert(t, ErrBadState, revert)
}

func TestMissionRecoverSweepsRemainder(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)
	id := createStablecoinMission(t, h)
	depositMission(t, h, id, "100.000")

	l1 := participantLeaf(sdk.Address(alice), 1)
	l2 := participantLeaf(sdk.Address(bob), 2)
	publishRoot(t, h, id, hashPair(l1, l2))
	mustCall(t, h, operator, nil, MissionDistribute, jsonID(id))
	mustCall(t, h, alice, nil, MissionClaim, claimPayload(id, 1, 40.0, [][]byte{l2}))

	before := h.BalanceOf(sdk.Address(operator), sdk.AssetHbd)
	mustCall(t, h, operator, nil, MissionRecover, jsonID(id))
	assert.Equal(t, before+60_000, h.BalanceOf(sdk.Address(operator), sdk.AssetHbd))

	m, _ := loadMission(id)
	assert.False(t, m.Claimable)
	assert.Equal(t, m.Deposited, m.Distributed)

	_, revert := call(t, h, operator, nil, MissionRecover, jsonID(id))
	expectRevert(t, ErrBadState, revert)
}

func TestRegistryViews(t *testing.T) {
	h := setupHost(t)
	initDefaults(t, h)

	id1 := createStablecoinMission(t, h)
	mustCall(t, h, operator, nil, MissionCreate, `{"name":"second run"}`)
	id2 := getCount(MissionsCount)
	require.NotEqual(t, id1, id2)

	depositMission(t, h, id1, "100.000")
	mustCall(t, h, operator, nil, MissionDeactivate, jsonID(id2))

	out := mustCall(t, h, dave, nil, RegistryList, `{}`)
	assert.Contains(t, out, `"name":"launch week"`)
	assert.NotContains(t, out, `"name":"second run"`)

	out = mustCall(t, h, dave, nil, RegistryStats, `{}`)
	assert.Contains(t, out, `"missions":2`)
	assert.Contains(t, out, `"active_missions":1`)
	assert.Contains(t, out, `"total_deposited":100`)
}
