package contract

import (
	"strconv"

	"questhive/sdk"
)

// savePool persists the encoded reward pool blob.
func savePool(p *RewardPool) {
	sdk.StateSetObject(poolKey(p.ID), string(EncodeRewardPool(p)))
}

// loadPool decodes the stored pool, second return tells existence.
func loadPool(id uint64) (*RewardPool, bool) {
	ptr := sdk.StateGetObject(poolKey(id))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	p, err := DecodeRewardPool([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode reward pool")
	}
	return p, true
}

// requirePool reverts with NotFound when the id is unknown.
func requirePool(id uint64) *RewardPool {
	p, ok := loadPool(id)
	if !ok {
		fail(ErrNotFound, "reward pool not found: "+UInt64ToString(id))
	}
	return p
}

// saveStake persists the single per-address stake record.
func saveStake(s *StakeRecord) {
	sdk.StateSetObject(stakeKey(s.Staker), string(EncodeStakeRecord(s)))
}

// loadStake decodes the staker's record, second return tells existence.
func loadStake(addr sdk.Address) (*StakeRecord, bool) {
	ptr := sdk.StateGetObject(stakeKey(addr))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	s, err := DecodeStakeRecord([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode stake record")
	}
	return s, true
}

// deleteStake clears a fully withdrawn stake.
func deleteStake(addr sdk.Address) {
	sdk.StateDeleteObject(stakeKey(addr))
}

// bumpPoolClaimCount counts claim entries per pool and staker for indexers.
func bumpPoolClaimCount(poolID uint64, addr sdk.Address) {
	key := poolClaimKey(poolID, addr)
	n := uint64(0)
	if ptr := sdk.StateGetObject(key); ptr != nil && *ptr != "" {
		n, _ = strconv.ParseUint(*ptr, 10, 64)
	}
	sdk.StateSetObject(key, strconv.FormatUint(n+1, 10))
}
