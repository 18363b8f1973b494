package contract

import "questhive/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// prefixedU64Key builds the common 1-byte-prefix + id layout.
func prefixedU64Key(prefix byte, id uint64) string {
	var buf [9]byte
	buf[0] = prefix
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// prefixedU64AddrKey mixes an id plus address bytes to avoid nested maps in host storage.
func prefixedU64AddrKey(prefix byte, id uint64, addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, prefix)
	buf = packU64LE(id, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// missionKey builds a storage key string for a mission by ID.
func missionKey(id uint64) string {
	return prefixedU64Key(kMissionMeta, id)
}

// applicationKey stores applications sequentially under the mission id.
func applicationKey(missionID, appID uint64) string {
	var buf [17]byte
	buf[0] = kApplication
	packU64LEInline(missionID, buf[1:])
	packU64LEInline(appID, buf[9:])
	return string(buf[:])
}

// interactionKey mirrors applicationKey under its own prefix.
func interactionKey(missionID, interactionID uint64) string {
	var buf [17]byte
	buf[0] = kInteraction
	packU64LEInline(missionID, buf[1:])
	packU64LEInline(interactionID, buf[9:])
	return string(buf[:])
}

// claimFlagKey is address-keyed on purpose: one claim per address per mission.
func claimFlagKey(missionID uint64, addr sdk.Address) string {
	return prefixedU64AddrKey(kClaimFlag, missionID, addr)
}

// settlementKey builds a storage key string for a settlement by ID.
func settlementKey(id uint64) string {
	return prefixedU64Key(kSettlement, id)
}

// escrowKey builds a storage key string for an escrow by ID.
func escrowKey(id uint64) string {
	return prefixedU64Key(kEscrow, id)
}

// poolKey builds a storage key string for a reward pool by ID.
func poolKey(id uint64) string {
	return prefixedU64Key(kRewardPool, id)
}

// stakeKey holds the single stake record per address.
func stakeKey(addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kStake)
	buf = append(buf, addrStr...)
	return string(buf)
}

// poolClaimKey counts claim entries per pool+staker.
func poolClaimKey(poolID uint64, addr sdk.Address) string {
	return prefixedU64AddrKey(kPoolClaim, poolID, addr)
}

// identityKey stores identity records under their string id.
func identityKey(id string) string {
	buf := make([]byte, 0, 1+len(id))
	buf = append(buf, kIdentity)
	buf = append(buf, id...)
	return string(buf)
}

// addrIdentityKey binds one address to at most one identity id.
func addrIdentityKey(addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kAddrIdentity)
	buf = append(buf, addrStr...)
	return string(buf)
}

// metricsKey stores the reputation metrics blob per identity id.
func metricsKey(identityID string) string {
	buf := make([]byte, 0, 1+len(identityID))
	buf = append(buf, kMetrics)
	buf = append(buf, identityID...)
	return string(buf)
}

// credentialKey builds a storage key string for a credential by ID.
func credentialKey(id uint64) string {
	return prefixedU64Key(kCredential, id)
}

// updaterKey flags an address as an authorized reputation updater.
func updaterKey(addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kUpdater)
	buf = append(buf, addrStr...)
	return string(buf)
}

// guardKey marks an in-flight custody section by name.
func guardKey(name string) string {
	buf := make([]byte, 0, 1+len(name))
	buf = append(buf, kGuard)
	buf = append(buf, name...)
	return string(buf)
}
