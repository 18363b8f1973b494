package contract

import "questhive/sdk"

// saveIdentity persists the encoded identity blob.
func saveIdentity(i *Identity) {
	sdk.StateSetObject(identityKey(i.ID), string(EncodeIdentity(i)))
}

// loadIdentity decodes the stored identity, second return tells existence.
func loadIdentity(id string) (*Identity, bool) {
	ptr := sdk.StateGetObject(identityKey(id))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	i, err := DecodeIdentity([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode identity")
	}
	return i, true
}

// bindAddressIdentity links an address to its identity id, first one wins.
func bindAddressIdentity(addr sdk.Address, identityID string) {
	sdk.StateSetObject(addrIdentityKey(addr), identityID)
}

// identityIDForAddress resolves the address binding, second return tells existence.
func identityIDForAddress(addr sdk.Address) (string, bool) {
	ptr := sdk.StateGetObject(addrIdentityKey(addr))
	if ptr == nil || *ptr == "" {
		return "", false
	}
	return *ptr, true
}

// identityForAddress follows the binding to the full record.
func identityForAddress(addr sdk.Address) (*Identity, bool) {
	id, ok := identityIDForAddress(addr)
	if !ok {
		return nil, false
	}
	return loadIdentity(id)
}

// saveMetrics persists the reputation metrics blob for an identity.
func saveMetrics(identityID string, m *ReputationMetrics) {
	sdk.StateSetObject(metricsKey(identityID), string(EncodeReputationMetrics(m)))
}

// loadMetrics decodes the metrics blob, second return tells existence.
func loadMetrics(identityID string) (*ReputationMetrics, bool) {
	ptr := sdk.StateGetObject(metricsKey(identityID))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	m, err := DecodeReputationMetrics([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode reputation metrics")
	}
	return m, true
}

// saveCredential persists the encoded credential blob.
func saveCredential(c *Credential) {
	sdk.StateSetObject(credentialKey(c.ID), string(EncodeCredential(c)))
}

// loadCredential decodes the stored credential, second return tells existence.
func loadCredential(id uint64) (*Credential, bool) {
	ptr := sdk.StateGetObject(credentialKey(id))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	c, err := DecodeCredential([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode credential")
	}
	return c, true
}

// requireCredential reverts with NotFound when the id is unknown.
func requireCredential(id uint64) *Credential {
	c, ok := loadCredential(id)
	if !ok {
		fail(ErrNotFound, "credential not found: "+UInt64ToString(id))
	}
	return c
}

// isAuthorizedUpdater checks the reputation allow-list; the operator is always
// authorized.
func isAuthorizedUpdater(addr sdk.Address) bool {
	if isContractOwner(addr) {
		return true
	}
	ptr := sdk.StateGetObject(updaterKey(addr))
	return ptr != nil && *ptr != ""
}

// setUpdater flips an address on or off the allow-list.
func setUpdater(addr sdk.Address, allowed bool) {
	if allowed {
		sdk.StateSetObject(updaterKey(addr), "1")
		return
	}
	sdk.StateDeleteObject(updaterKey(addr))
}

// requireUpdater reverts unless the sender may feed reputation data.
func requireUpdater() sdk.Address {
	sender := getSenderAddress()
	if !isAuthorizedUpdater(sender) {
		fail(ErrUnauthorized, "reputation updater only")
	}
	return sender
}
