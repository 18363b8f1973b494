package contract

import "questhive/sdk"

// -----------------------------------------------------------------------------
// Identity Lifecycle
// -----------------------------------------------------------------------------

// IdentityRegister binds the sender's address to a fresh identity and seeds
// the score at the midpoint. One identity per address, first registration wins.
func IdentityRegister(payload *string) *string {
	requireInitialized()

	var args RegisterIdentityArgs
	decodePayload(payload, &args, "identity")

	id := requireName(args.ID, "identity")
	if _, exists := loadIdentity(id); exists {
		fail(ErrBadState, "identity id already registered: "+id)
	}
	sender := getSenderAddress()
	if bound, exists := identityIDForAddress(sender); exists {
		fail(ErrBadState, "address already bound to identity: "+bound)
	}

	now := nowUnix()
	identity := Identity{
		ID:          id,
		Owner:       sender,
		MetadataURI: requireURL(args.MetadataURI),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	saveIdentity(&identity)
	bindAddressIdentity(sender, id)

	metrics := ReputationMetrics{
		Score:            ScoreMidpoint,
		LastActivityAt:   now,
		LastStreakUpdate: now,
	}
	saveMetrics(id, &metrics)

	emitIdentityRegisteredEvent(id, sender.String())
	return strptr(id)
}

// -----------------------------------------------------------------------------
// Score Maintenance
// -----------------------------------------------------------------------------

// computeScore is the weighted-sum scoring formula. Integer division order
// matters for parity with off-chain mirrors, so every step stays integral.
func computeScore(m *ReputationMetrics, now int64) uint64 {
	txComponent := minU(m.TxCount, 100) * 10

	volume := uint64(0)
	if m.Volume > 0 {
		volume = uint64(m.Volume)
	}
	volumeComponent := minU(volume/500000, 2000)

	successComponent := uint64(0)
	if m.TxCount > 0 {
		successComponent = m.SuccessCount * 3000 / m.TxCount
	}

	activityComponent := uint64(0)
	if m.LastActivityAt > 0 {
		daysSince := uint64(0)
		if now > m.LastActivityAt {
			daysSince = uint64(now-m.LastActivityAt) / SecondsPerDay
		}
		if daysSince <= 7 && 200*daysSince < 1500 {
			activityComponent = 1500 - 200*daysSince
		}
	}

	onboardingComponent := minU(m.OnboardingCount, 50) * 30
	streakComponent := minU(m.StreakDays, 30) * 33

	score := (txComponent*WeightTransactions +
		volumeComponent*WeightVolume +
		successComponent*WeightSuccessRate +
		activityComponent*WeightActivity +
		onboardingComponent*WeightOnboarding +
		streakComponent*WeightStreak) / 10000
	if score > ScoreCeiling {
		score = ScoreCeiling
	}
	return score
}

// refreshMetrics applies the streak rule, restamps activity timestamps and
// recomputes the score. A gap of zero or one full day extends the streak,
// anything longer resets it to one.
func refreshMetrics(identity *Identity, m *ReputationMetrics) {
	now := nowUnix()
	gap := int64(0)
	if m.LastStreakUpdate > 0 && now > m.LastStreakUpdate {
		gap = (now - m.LastStreakUpdate) / SecondsPerDay
	}
	if gap <= 1 {
		m.StreakDays++
	} else {
		m.StreakDays = 1
	}
	m.LastStreakUpdate = now
	m.LastActivityAt = now
	m.AccountAge = now - identity.CreatedAt
	m.Score = computeScore(m, now)
	saveMetrics(identity.ID, m)
	emitScoreUpdatedEvent(identity.ID, m.Score)
}

// touchTransaction records one observed transaction for the account. Silently
// a no-op when the address carries no identity, so engines can call it
// unconditionally.
func touchTransaction(account sdk.Address, amount Amount, success bool) {
	identity, ok := identityForAddress(account)
	if !ok || !identity.Active {
		return
	}
	m, ok := loadMetrics(identity.ID)
	if !ok {
		return
	}
	m.TxCount++
	if success {
		m.SuccessCount++
		m.Volume += amount
		m.AvgTxValue = m.Volume / Amount(m.TxCount)
	} else {
		m.FailureCount++
	}
	refreshMetrics(identity, m)
}

// touchCounter adds a delta to one of the integration counters, same no-op
// rule as touchTransaction.
func touchCounter(account sdk.Address, apply func(*ReputationMetrics)) {
	identity, ok := identityForAddress(account)
	if !ok || !identity.Active {
		return
	}
	m, ok := loadMetrics(identity.ID)
	if !ok {
		return
	}
	apply(m)
	refreshMetrics(identity, m)
}

// touchRewards is the payout hook the mission and pool engines call.
func touchRewards(account sdk.Address, amount Amount) {
	touchCounter(account, func(m *ReputationMetrics) {
		m.RewardsEarned += amount
	})
}

// -----------------------------------------------------------------------------
// Updater Surface
// -----------------------------------------------------------------------------

// ReputationRecordTx feeds one transaction observation. Allow-listed updaters
// only; unknown accounts are a silent no-op per the integration contract.
func ReputationRecordTx(payload *string) *string {
	requireInitialized()
	requireUpdater()

	var args RecordTransactionArgs
	decodePayload(payload, &args, "reputation")
	account := parseAddressField(args.Account, "account")
	touchTransaction(account, FloatToAmount(args.Amount), args.Success)
	return strptr("recorded")
}

// ReputationAddOnboarding bumps the onboarding counter for an account.
func ReputationAddOnboarding(payload *string) *string {
	return reputationAddCounter(payload, func(m *ReputationMetrics, delta uint64) {
		m.OnboardingCount += delta
	})
}

// ReputationAddContribution bumps the contribution counter for an account.
func ReputationAddContribution(payload *string) *string {
	return reputationAddCounter(payload, func(m *ReputationMetrics, delta uint64) {
		m.ContributionCount += delta
	})
}

// ReputationAddRewards adds earned rewards for an account.
func ReputationAddRewards(payload *string) *string {
	requireInitialized()
	requireUpdater()

	var args ReputationDeltaArgs
	decodePayload(payload, &args, "reputation")
	account := parseAddressField(args.Account, "account")
	touchRewards(account, parsePositiveAmount(args.Delta, "delta"))
	return strptr("recorded")
}

// reputationAddCounter shares decode and auth for the two count deltas.
func reputationAddCounter(payload *string, apply func(*ReputationMetrics, uint64)) *string {
	requireInitialized()
	requireUpdater()

	var args ReputationDeltaArgs
	decodePayload(payload, &args, "reputation")
	account := parseAddressField(args.Account, "account")
	if args.Delta <= 0 {
		fail(ErrValidation, "delta must be positive")
	}
	touchCounter(account, func(m *ReputationMetrics) {
		apply(m, uint64(args.Delta))
	})
	return strptr("recorded")
}

// ReputationGet returns the metrics view for an account's identity.
func ReputationGet(payload *string) *string {
	requireInitialized()

	var args AccountArgs
	decodePayload(payload, &args, "reputation")
	account := parseAddressField(args.Account, "account")

	identity, ok := identityForAddress(account)
	if !ok {
		fail(ErrNotFound, "no identity bound to address")
	}
	m, ok := loadMetrics(identity.ID)
	if !ok {
		fail(ErrNotFound, "no metrics for identity")
	}

	view := ReputationView{
		Identity:          identity.ID,
		Score:             m.Score,
		TxCount:           m.TxCount,
		SuccessCount:      m.SuccessCount,
		FailureCount:      m.FailureCount,
		Volume:            AmountToFloat(m.Volume),
		AvgTxValue:        AmountToFloat(m.AvgTxValue),
		OnboardingCount:   m.OnboardingCount,
		ContributionCount: m.ContributionCount,
		RewardsEarned:     AmountToFloat(m.RewardsEarned),
		StreakDays:        m.StreakDays,
		LastActivityAt:    m.LastActivityAt,
		AccountAge:        m.AccountAge,
	}
	return renderView(view)
}

// -----------------------------------------------------------------------------
// Credentials
// -----------------------------------------------------------------------------

// CredentialIssue creates an attestation from the sender's identity about a
// subject identity.
func CredentialIssue(payload *string) *string {
	requireInitialized()

	var args IssueCredentialArgs
	decodePayload(payload, &args, "credential")

	issuer, ok := identityForAddress(getSenderAddress())
	if !ok || !issuer.Active {
		fail(ErrUnauthorized, "sender has no active identity")
	}
	subject, ok := loadIdentity(requireName(args.Subject, "subject"))
	if !ok {
		fail(ErrNotFound, "subject identity not found")
	}
	now := nowUnix()
	if args.ExpiresAt != 0 && args.ExpiresAt <= now {
		fail(ErrValidation, "expiry must be in the future")
	}

	c := Credential{
		ID:        nextID(CredentialsCount),
		Issuer:    issuer.ID,
		Subject:   subject.ID,
		TypeTag:   normalizeOptionalField(args.TypeTag),
		DataHash:  normalizeOptionalField(args.DataHash),
		IssuedAt:  now,
		ExpiresAt: args.ExpiresAt,
	}
	saveCredential(&c)

	emitCredentialEvent("ci", c.ID, issuer.ID)
	return strptr(UInt64ToString(c.ID))
}

// CredentialRevoke flips the revoked flag, issuer only, idempotent is an
// error: revoking twice is rejected.
func CredentialRevoke(payload *string) *string {
	requireInitialized()

	var args IDArgs
	decodePayload(payload, &args, "credential")
	c := requireCredential(args.ID)

	issuer, ok := identityForAddress(getSenderAddress())
	if !ok || issuer.ID != c.Issuer {
		fail(ErrUnauthorized, "issuer only")
	}
	if c.Revoked {
		fail(ErrBadState, "credential already revoked")
	}

	c.Revoked = true
	saveCredential(c)

	emitCredentialEvent("cr", c.ID, issuer.ID)
	return strptr("revoked")
}

// CredentialVerify is a pure read: not revoked, not expired, and both parties
// still active.
func CredentialVerify(payload *string) *string {
	requireInitialized()

	var args IDArgs
	decodePayload(payload, &args, "credential")

	c, ok := loadCredential(args.ID)
	if !ok {
		return renderView(CheckView{Valid: false, Reason: "not found"})
	}
	if c.Revoked {
		return renderView(CheckView{Valid: false, Reason: "revoked"})
	}
	if c.ExpiresAt != 0 && nowUnix() >= c.ExpiresAt {
		return renderView(CheckView{Valid: false, Reason: "expired"})
	}
	issuer, ok := loadIdentity(c.Issuer)
	if !ok || !issuer.Active {
		return renderView(CheckView{Valid: false, Reason: "issuer inactive"})
	}
	subject, ok := loadIdentity(c.Subject)
	if !ok || !subject.Active {
		return renderView(CheckView{Valid: false, Reason: "subject inactive"})
	}
	return renderView(CheckView{Valid: true})
}
