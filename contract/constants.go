package contract

import "questhive/sdk"

// -----------------------------------------------------------------------------
// Supported Assets
// -----------------------------------------------------------------------------

// validAssets lists the supported asset types for custody and transfers.
var validAssets = []string{
	sdk.AssetHbd.String(),
	sdk.AssetHive.String(),
}

// -----------------------------------------------------------------------------
// Amount Scaling
// -----------------------------------------------------------------------------

// AmountScale defines the precision multiplier for converting floats to int64.
const AmountScale = 1000

// RateScale divides pool accrual math: ratePerSecond is expressed in
// millionths of an Amount unit per staked unit per second.
const RateScale = 1_000_000

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxNameLength limits mission/application/pool names.
	MaxNameLength = 200
	// MaxURLLength limits the size of URLs.
	MaxURLLength = 500
	// MaxFeeBps caps the settlement fee at 10%.
	MaxFeeBps = 1000
	// SecondsPerDay is the streak/activity bucket size.
	SecondsPerDay = 86400
)

// -----------------------------------------------------------------------------
// Default/Fallback Values
// -----------------------------------------------------------------------------

const (
	FallbackFeeBps              = 100 // 1%
	FallbackMinSettlementAmount = Amount(1)
	FallbackMaxRecipients       = 100
	FallbackStakeLockHours      = 24 * 7
)

// -----------------------------------------------------------------------------
// Reputation Scoring
// -----------------------------------------------------------------------------

// Score weights in basis points out of 10000; the weighted sum is divided by
// 10000 and clamped to [0, ScoreCeiling].
const (
	ScoreCeiling  = 10000
	ScoreMidpoint = 5000

	WeightTransactions = 1000
	WeightVolume       = 2000
	WeightSuccessRate  = 3000
	WeightActivity     = 1500
	WeightOnboarding   = 1500
	WeightStreak       = 1000
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// MissionsCount holds an integer counter for missions (used for generating IDs).
	MissionsCount = "count:mission"
	// SettlementsCount holds an integer counter for settlements.
	SettlementsCount = "count:stl"
	// EscrowsCount holds an integer counter for escrows.
	EscrowsCount = "count:esc"
	// PoolsCount holds an integer counter for reward pools.
	PoolsCount = "count:pool"
	// CredentialsCount holds an integer counter for credentials.
	CredentialsCount = "count:cred"
)

// -----------------------------------------------------------------------------
// Running Totals
// -----------------------------------------------------------------------------

const (
	// TotalSettledKey accumulates the gross volume of executed settlements.
	TotalSettledKey = "total:settled"
	// TotalFeesKey accumulates settlement fees paid to the operator.
	TotalFeesKey = "total:fees"
	// TotalEscrowedKey accumulates the gross volume of escrows that left custody.
	TotalEscrowedKey = "total:escrowed"
)

// ContractConfigKey stores the operator config blob written at contract_init.
const ContractConfigKey = "contract:cfg"

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kMissionMeta stores serialized Mission blobs.
	kMissionMeta byte = 0x01
	// kApplication houses Application records (mission scoped, sequential).
	kApplication byte = 0x02
	// kInteraction houses Interaction records (mission scoped, sequential).
	kInteraction byte = 0x03
	// kClaimFlag marks an address as having claimed for a mission.
	kClaimFlag byte = 0x04
	// kSettlement contains encoded Settlement records.
	kSettlement byte = 0x10
	// kEscrow contains encoded Escrow records.
	kEscrow byte = 0x11
	// kRewardPool contains encoded RewardPool records.
	kRewardPool byte = 0x20
	// kStake houses the single StakeRecord per staker.
	kStake byte = 0x21
	// kPoolClaim records individual pool claim entries per pool+staker.
	kPoolClaim byte = 0x22
	// kIdentity stores Identity records keyed by identity id.
	kIdentity byte = 0x30
	// kAddrIdentity binds an address to its identity id (first registration wins).
	kAddrIdentity byte = 0x31
	// kMetrics stores ReputationMetrics keyed by identity id.
	kMetrics byte = 0x32
	// kCredential contains encoded Credential records.
	kCredential byte = 0x33
	// kUpdater flags addresses on the reputation authorized-updater list.
	kUpdater byte = 0x34
	// kGuard marks an in-flight custody operation for reentrancy rejection.
	kGuard byte = 0x40
)
