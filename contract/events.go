package contract

import (
	"fmt"

	"questhive/sdk"
)

// Event lines are deliberately tiny: two-letter tag plus pipe separated fields
// so explorers can watch activity without diffing full storage.

// emitInitEvent announces the operator config written at contract_init.
func emitInitEvent(owner string, feeBps uint64) {
	sdk.Log(fmt.Sprintf("in|by:%s|fee:%d", owner, feeBps))
}

// emitSettlementCreatedEvent fires when a batch is recorded as pending.
func emitSettlementCreatedEvent(id uint64, initiator string, total Amount) {
	sdk.Log(fmt.Sprintf("sc|id:%d|by:%s|amt:%.3f", id, initiator, AmountToFloat(total)))
}

// emitSettlementExecutedEvent fires once funds have fully disbursed.
func emitSettlementExecutedEvent(id uint64, total Amount, fee Amount) {
	sdk.Log(fmt.Sprintf("sx|id:%d|amt:%.3f|fee:%.3f", id, AmountToFloat(total), AmountToFloat(fee)))
}

// emitSettlementCancelledEvent fires on a pure pending-to-cancelled flip.
func emitSettlementCancelledEvent(id uint64, by string) {
	sdk.Log(fmt.Sprintf("sn|id:%d|by:%s", id, by))
}

// emitEscrowCreatedEvent fires when funds enter escrow custody.
func emitEscrowCreatedEvent(id uint64, payer string, payee string, amount Amount) {
	sdk.Log(fmt.Sprintf("ec|id:%d|by:%s|to:%s|amt:%.3f", id, payer, payee, AmountToFloat(amount)))
}

// emitEscrowClosedEvent covers release and refund with a direction tag.
func emitEscrowClosedEvent(id uint64, outcome string, to string) {
	sdk.Log(fmt.Sprintf("ex|id:%d|res:%s|to:%s", id, outcome, to))
}

// emitEscrowDisputedEvent fires when either party escalates to the arbiter.
func emitEscrowDisputedEvent(id uint64, by string) {
	sdk.Log(fmt.Sprintf("ed|id:%d|by:%s", id, by))
}

// emitIdentityRegisteredEvent fires for every fresh identity.
func emitIdentityRegisteredEvent(id string, owner string) {
	sdk.Log(fmt.Sprintf("ir|id:%s|by:%s", id, owner))
}

// emitScoreUpdatedEvent lets indexers track score movement cheaply.
func emitScoreUpdatedEvent(identityID string, score uint64) {
	sdk.Log(fmt.Sprintf("ru|id:%s|sc:%d", identityID, score))
}

// emitCredentialEvent covers issue ("ci") and revoke ("cr").
func emitCredentialEvent(tag string, id uint64, issuer string) {
	sdk.Log(fmt.Sprintf("%s|id:%d|by:%s", tag, id, issuer))
}

// emitPoolCreatedEvent fires on pool creation.
func emitPoolCreatedEvent(id uint64, by string, allocated Amount) {
	sdk.Log(fmt.Sprintf("pc|id:%d|by:%s|amt:%.3f", id, by, AmountToFloat(allocated)))
}

// emitPoolFundedEvent fires for every allocation top-up.
func emitPoolFundedEvent(id uint64, by string, amount Amount) {
	sdk.Log(fmt.Sprintf("pf|id:%d|by:%s|amt:%.3f", id, by, AmountToFloat(amount)))
}

// emitStakeEvent covers stake ("st") and unstake ("su").
func emitStakeEvent(tag string, staker string, amount Amount) {
	sdk.Log(fmt.Sprintf("%s|by:%s|amt:%.3f", tag, staker, AmountToFloat(amount)))
}

// emitPoolClaimEvent fires when a staker pulls accrued rewards.
func emitPoolClaimEvent(poolID uint64, staker string, amount Amount) {
	sdk.Log(fmt.Sprintf("pl|id:%d|by:%s|amt:%.3f", poolID, staker, AmountToFloat(amount)))
}

// emitMissionCreatedEvent fires for every fresh campaign.
func emitMissionCreatedEvent(id uint64, by string) {
	sdk.Log(fmt.Sprintf("mc|id:%d|by:%s", id, by))
}

// emitRootUpdatedEvent fires on every root publication or rotation.
func emitRootUpdatedEvent(missionID uint64, by string) {
	sdk.Log(fmt.Sprintf("mr|id:%d|by:%s", missionID, by))
}

// emitMissionDepositEvent fires when rewards enter mission custody.
func emitMissionDepositEvent(missionID uint64, by string, amount Amount) {
	sdk.Log(fmt.Sprintf("md|id:%d|by:%s|amt:%.3f", missionID, by, AmountToFloat(amount)))
}

// emitMissionDistributedEvent fires when claims open or a batch fans out.
func emitMissionDistributedEvent(missionID uint64, mode string) {
	sdk.Log(fmt.Sprintf("mx|id:%d|md:%s", missionID, mode))
}

// emitClaimEvent fires per successful participant claim.
func emitClaimEvent(missionID uint64, claimer string, amount Amount) {
	sdk.Log(fmt.Sprintf("cl|id:%d|by:%s|amt:%.3f", missionID, claimer, AmountToFloat(amount)))
}

// emitRecoverEvent fires for the operator sweep safety valve.
func emitRecoverEvent(asset string, to string, amount Amount) {
	sdk.Log(fmt.Sprintf("rv|as:%s|to:%s|amt:%.3f", asset, to, AmountToFloat(amount)))
}
