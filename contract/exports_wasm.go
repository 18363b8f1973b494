//go:build wasm

package contract

// The runtime resolves entrypoints by export name. The wrappers live behind
// the wasm build tag so host-side tooling and tests compile the package with
// a plain toolchain.

//go:wasmexport contract_init
func contractInit(payload *string) *string { return ContractInit(payload) }

//go:wasmexport updater_add
func updaterAdd(payload *string) *string { return UpdaterAdd(payload) }

//go:wasmexport updater_remove
func updaterRemove(payload *string) *string { return UpdaterRemove(payload) }

//go:wasmexport emergency_recover
func emergencyRecover(payload *string) *string { return EmergencyRecover(payload) }

//go:wasmexport settlement_create
func settlementCreate(payload *string) *string { return SettlementCreate(payload) }

//go:wasmexport settlement_execute
func settlementExecute(payload *string) *string { return SettlementExecute(payload) }

//go:wasmexport settlement_cancel
func settlementCancel(payload *string) *string { return SettlementCancel(payload) }

//go:wasmexport settlement_stats
func settlementStats(payload *string) *string { return SettlementStats(payload) }

//go:wasmexport escrow_create
func escrowCreate(payload *string) *string { return EscrowCreate(payload) }

//go:wasmexport escrow_release
func escrowRelease(payload *string) *string { return EscrowRelease(payload) }

//go:wasmexport escrow_refund
func escrowRefund(payload *string) *string { return EscrowRefund(payload) }

//go:wasmexport escrow_dispute
func escrowDispute(payload *string) *string { return EscrowDispute(payload) }

//go:wasmexport escrow_resolve
func escrowResolve(payload *string) *string { return EscrowResolve(payload) }

//go:wasmexport identity_register
func identityRegister(payload *string) *string { return IdentityRegister(payload) }

//go:wasmexport reputation_record_tx
func reputationRecordTx(payload *string) *string { return ReputationRecordTx(payload) }

//go:wasmexport reputation_add_onboarding
func reputationAddOnboarding(payload *string) *string { return ReputationAddOnboarding(payload) }

//go:wasmexport reputation_add_contribution
func reputationAddContribution(payload *string) *string { return ReputationAddContribution(payload) }

//go:wasmexport reputation_add_rewards
func reputationAddRewards(payload *string) *string { return ReputationAddRewards(payload) }

//go:wasmexport reputation_get
func reputationGet(payload *string) *string { return ReputationGet(payload) }

//go:wasmexport credential_issue
func credentialIssue(payload *string) *string { return CredentialIssue(payload) }

//go:wasmexport credential_revoke
func credentialRevoke(payload *string) *string { return CredentialRevoke(payload) }

//go:wasmexport credential_verify
func credentialVerify(payload *string) *string { return CredentialVerify(payload) }

//go:wasmexport pool_create
func poolCreate(payload *string) *string { return PoolCreate(payload) }

//go:wasmexport pool_fund
func poolFund(payload *string) *string { return PoolFund(payload) }

//go:wasmexport pool_stake
func poolStake(payload *string) *string { return PoolStake(payload) }

//go:wasmexport pool_unstake
func poolUnstake(payload *string) *string { return PoolUnstake(payload) }

//go:wasmexport pool_distribute
func poolDistribute(payload *string) *string { return PoolDistribute(payload) }

//go:wasmexport pool_claim
func poolClaim(payload *string) *string { return PoolClaim(payload) }

//go:wasmexport pool_pending
func poolPending(payload *string) *string { return PoolPending(payload) }

//go:wasmexport mission_create
func missionCreate(payload *string) *string { return MissionCreate(payload) }

//go:wasmexport application_add
func applicationAdd(payload *string) *string { return ApplicationAdd(payload) }

//go:wasmexport application_deactivate
func applicationDeactivate(payload *string) *string { return ApplicationDeactivate(payload) }

//go:wasmexport interaction_add
func interactionAdd(payload *string) *string { return InteractionAdd(payload) }

//go:wasmexport interaction_deactivate
func interactionDeactivate(payload *string) *string { return InteractionDeactivate(payload) }

//go:wasmexport mission_set_reward_mode
func missionSetRewardMode(payload *string) *string { return MissionSetRewardMode(payload) }

//go:wasmexport mission_set_pool
func missionSetPool(payload *string) *string { return MissionSetPool(payload) }

//go:wasmexport mission_update_root
func missionUpdateRoot(payload *string) *string { return MissionUpdateRoot(payload) }

//go:wasmexport mission_deposit
func missionDeposit(payload *string) *string { return MissionDeposit(payload) }

//go:wasmexport mission_distribute
func missionDistribute(payload *string) *string { return MissionDistribute(payload) }

//go:wasmexport mission_batch_distribute
func missionBatchDistribute(payload *string) *string { return MissionBatchDistribute(payload) }

//go:wasmexport mission_claim
func missionClaim(payload *string) *string { return MissionClaim(payload) }

//go:wasmexport mission_verify
func missionVerify(payload *string) *string { return MissionVerify(payload) }

//go:wasmexport mission_deactivate
func missionDeactivate(payload *string) *string { return MissionDeactivate(payload) }

//go:wasmexport mission_recover
func missionRecover(payload *string) *string { return MissionRecover(payload) }

//go:wasmexport registry_list
func registryList(payload *string) *string { return RegistryList(payload) }

//go:wasmexport registry_stats
func registryStats(payload *string) *string { return RegistryStats(payload) }
