package contract

// Read-only response shapes. These render through renderView so indexers get
// stable JSON instead of the raw event lines.

// CheckView answers yes/no queries like credential_verify and mission_verify.
//
//tinyjson:json
type CheckView struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

//tinyjson:json
type PendingView struct {
	PoolID  uint64  `json:"pool_id"`
	Staker  string  `json:"staker"`
	Pending float64 `json:"pending"`
}

// StatsView aggregates the settlement engine's running totals.
//
//tinyjson:json
type StatsView struct {
	Settlements   uint64  `json:"settlements"`
	Escrows       uint64  `json:"escrows"`
	TotalSettled  float64 `json:"total_settled"`
	TotalFees     float64 `json:"total_fees"`
	TotalEscrowed float64 `json:"total_escrowed"`
}

//tinyjson:json
type ReputationView struct {
	Identity          string  `json:"identity"`
	Score             uint64  `json:"score"`
	TxCount           uint64  `json:"tx_count"`
	SuccessCount      uint64  `json:"success_count"`
	FailureCount      uint64  `json:"failure_count"`
	Volume            float64 `json:"volume"`
	AvgTxValue        float64 `json:"avg_tx_value"`
	OnboardingCount   uint64  `json:"onboarding_count"`
	ContributionCount uint64  `json:"contribution_count"`
	RewardsEarned     float64 `json:"rewards_earned"`
	StreakDays        uint64  `json:"streak_days"`
	LastActivityAt    int64   `json:"last_activity_at"`
	AccountAge        int64   `json:"account_age"`
}

//tinyjson:json
type MissionSummary struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	RewardMode  string  `json:"reward_mode"`
	Active      bool    `json:"active"`
	Claimable   bool    `json:"claimable"`
	Deposited   float64 `json:"deposited"`
	Distributed float64 `json:"distributed"`
	ClaimCount  uint64  `json:"claim_count"`
}

//tinyjson:json
type RegistryListView struct {
	Missions []MissionSummary `json:"missions"`
}

//tinyjson:json
type RegistryStatsView struct {
	Missions         uint64  `json:"missions"`
	ActiveMissions   uint64  `json:"active_missions"`
	TotalDeposited   float64 `json:"total_deposited"`
	TotalDistributed float64 `json:"total_distributed"`
	TotalClaims      uint64  `json:"total_claims"`
}
