package contract

import (
	"math"

	"questhive/sdk"
)

type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for ledger transfer functions.
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// RewardMode selects how a mission pays its participants.
type RewardMode uint8

const (
	RewardModePoints     RewardMode = 0
	RewardModeStablecoin RewardMode = 1
)

// String prints the reward mode as lower-case text for events and logs.
func (rm RewardMode) String() string {
	switch rm {
	case RewardModeStablecoin:
		return "stablecoin"
	default:
		return "points"
	}
}

// SettlementStatus captures a settlement's lifecycle.
type SettlementStatus uint8

const (
	SettlementStatusUnspecified SettlementStatus = 0
	SettlementPending           SettlementStatus = 1
	SettlementExecuted          SettlementStatus = 2
	SettlementCancelled         SettlementStatus = 3
	SettlementFailed            SettlementStatus = 4
)

// String prints the settlement status as lower-case text for events and logs.
func (ss SettlementStatus) String() string {
	switch ss {
	case SettlementPending:
		return "pending"
	case SettlementExecuted:
		return "executed"
	case SettlementCancelled:
		return "cancelled"
	case SettlementFailed:
		return "failed"
	default:
		return "unspecified"
	}
}

// EscrowStatus captures an escrow's lifecycle. Released/Refunded are terminal.
type EscrowStatus uint8

const (
	EscrowStatusUnspecified EscrowStatus = 0
	EscrowActive            EscrowStatus = 1
	EscrowReleased          EscrowStatus = 2
	EscrowRefunded          EscrowStatus = 3
	EscrowDisputed          EscrowStatus = 4
)

// String prints the escrow status as lower-case text for events and logs.
func (es EscrowStatus) String() string {
	switch es {
	case EscrowActive:
		return "active"
	case EscrowReleased:
		return "released"
	case EscrowRefunded:
		return "refunded"
	case EscrowDisputed:
		return "disputed"
	default:
		return "unspecified"
	}
}

// ContractConfig holds the operator-level knobs written at contract_init.
type ContractConfig struct {
	Owner               sdk.Address
	FeeBps              uint64
	MinSettlementAmount Amount
	MaxRecipients       uint64
	StakeLockSeconds    int64
	StakeAsset          sdk.Asset
	PayoutAsset         sdk.Asset
}

// Mission is one reward campaign: applications, interactions, a committed
// participant-set root and the funds deposited against it.
type Mission struct {
	ID               uint64
	Owner            sdk.Address
	Name             string
	Description      string
	URL              string
	RewardMode       RewardMode
	PoolID           uint64
	Asset            sdk.Asset
	Deposited        Amount
	Distributed      Amount
	ClaimCount       uint64
	Claimable        bool
	DistributionDone bool
	Root             []byte
	RootUpdatedAt    int64
	Active           bool
	CreatedAt        int64
	Tx               string
	AppCount         uint64
	InteractionCount uint64
}

// Application is a sub-unit of a mission, deactivated but never deleted.
type Application struct {
	ID          uint64
	MissionID   uint64
	Name        string
	Description string
	URL         string
	Active      bool
	Creator     sdk.Address
	CreatedAt   int64
}

// Interaction is a task inside an application carrying a fixed reward amount.
type Interaction struct {
	ID            uint64
	MissionID     uint64
	ApplicationID uint64
	Title         string
	Description   string
	Action        string
	Reward        Amount
	Active        bool
	CreatedAt     int64
}

// Payout is one (recipient, amount) pair inside a settlement. Keeping pairs in
// a single slice makes recipient/amount length mismatch unrepresentable after
// decode time.
type Payout struct {
	Recipient sdk.Address
	Amount    Amount
}

// Settlement is a batch payout recorded at creation and funded at execution.
type Settlement struct {
	ID           uint64
	Initiator    sdk.Address
	Payouts      []Payout
	TypeTag      string
	Total        Amount
	Fee          Amount
	MetadataHash string
	CreatedAt    int64
	ExecutedAt   int64
	Status       SettlementStatus
}

// Escrow is a conditional hold: funds enter custody at creation and leave
// exactly once, either to the payee or back to the payer.
type Escrow struct {
	ID          uint64
	Payer       sdk.Address
	Payee       sdk.Address
	Arbiter     *sdk.Address
	Amount      Amount
	CreatedAt   int64
	Deadline    int64
	Status      EscrowStatus
	Description string
}

// RewardPool is a point-based reward campaign with a time window and a
// per-second accrual rate for stakers.
type RewardPool struct {
	ID            uint64
	Name          string
	Allocated     Amount
	Distributed   Amount
	StartTime     int64
	EndTime       int64
	RatePerSecond int64
	Active        bool
	CreatedAt     int64
}

// StakeRecord is the single stake a staker holds. Top-ups keep StakedAt, so
// the unlock anchor is the first deposit.
type StakeRecord struct {
	Staker       sdk.Address
	Amount       Amount
	StakedAt     int64
	LastClaimAt  int64
	TotalClaimed Amount
}

// Identity is a DID record bound to exactly one address.
type Identity struct {
	ID          string
	Owner       sdk.Address
	MetadataURI string
	Active      bool
	CreatedAt   int64
	UpdatedAt   int64
}

// ReputationMetrics aggregates an identity's observed activity into a bounded
// score, recomputed on every mutating event.
type ReputationMetrics struct {
	Score             uint64
	TxCount           uint64
	SuccessCount      uint64
	FailureCount      uint64
	Volume            Amount
	AvgTxValue        Amount
	LastActivityAt    int64
	AccountAge        int64
	OnboardingCount   uint64
	ContributionCount uint64
	RewardsEarned     Amount
	StreakDays        uint64
	LastStreakUpdate  int64
}

// Credential is an attestation one identity issues about another.
type Credential struct {
	ID        uint64
	Issuer    string
	Subject   string
	TypeTag   string
	DataHash  string
	IssuedAt  int64
	ExpiresAt int64
	Revoked   bool
}

// AddressFromString converts a human string to the platform address wrapper.
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
func AddressToString(a sdk.Address) string { return a.String() }

// AssetFromString wraps a ticker string so type checking keeps us honest.
func AssetFromString(s string) sdk.Asset { return sdk.Asset(s) }

// AssetToString unwraps the ticker string for logs or SDK calls.
func AssetToString(a sdk.Asset) string { return a.String() }
