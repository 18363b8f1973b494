package contract

import "questhive/sdk"

// MissionCreate opens a reward campaign. Operator only; the creator becomes
// the mission admin.
func MissionCreate(payload *string) *string {
	requireInitialized()
	cfg := requireConfig()
	requireContractOwner()

	var args CreateMissionArgs
	decodePayload(payload, &args, "mission")

	m := Mission{
		ID:          nextID(MissionsCount),
		Owner:       getSenderAddress(),
		Name:        requireName(args.Name, "mission"),
		Description: normalizeOptionalField(args.Description),
		URL:         requireURL(args.URL),
		RewardMode:  parseRewardModeField(args.RewardMode),
		Asset:       parseAssetField(args.Asset, cfg.PayoutAsset),
		Active:      true,
		CreatedAt:   nowUnix(),
		Tx:          getTxID(),
	}
	saveMission(&m)

	emitMissionCreatedEvent(m.ID, m.Owner.String())
	return strptr(UInt64ToString(m.ID))
}

// ApplicationAdd registers a sub-unit under a mission.
func ApplicationAdd(payload *string) *string {
	requireInitialized()

	var args AddApplicationArgs
	decodePayload(payload, &args, "application")
	m, sender := requireMissionOwner(args.MissionID)

	m.AppCount++
	a := Application{
		ID:          m.AppCount,
		MissionID:   m.ID,
		Name:        requireName(args.Name, "application"),
		Description: normalizeOptionalField(args.Description),
		URL:         requireURL(args.URL),
		Active:      true,
		Creator:     sender,
		CreatedAt:   nowUnix(),
	}
	saveApplication(&a)
	saveMission(m)
	return strptr(UInt64ToString(a.ID))
}

// ApplicationDeactivate flips the active flag, records are never deleted.
func ApplicationDeactivate(payload *string) *string {
	requireInitialized()

	var args MissionChildArgs
	decodePayload(payload, &args, "application")
	requireMissionOwner(args.MissionID)

	a, ok := loadApplication(args.MissionID, args.ID)
	if !ok {
		fail(ErrNotFound, "application not found: "+UInt64ToString(args.ID))
	}
	if !a.Active {
		fail(ErrBadState, "application already deactivated")
	}
	a.Active = false
	saveApplication(a)
	return strptr("deactivated")
}

// InteractionAdd registers a task with a fixed reward inside an application.
func InteractionAdd(payload *string) *string {
	requireInitialized()

	var args AddInteractionArgs
	decodePayload(payload, &args, "interaction")
	m, _ := requireMissionOwner(args.MissionID)

	if _, ok := loadApplication(m.ID, args.ApplicationID); !ok {
		fail(ErrNotFound, "application not found: "+UInt64ToString(args.ApplicationID))
	}

	m.InteractionCount++
	i := Interaction{
		ID:            m.InteractionCount,
		MissionID:     m.ID,
		ApplicationID: args.ApplicationID,
		Title:         requireName(args.Title, "interaction"),
		Description:   normalizeOptionalField(args.Description),
		Action:        normalizeOptionalField(args.Action),
		Reward:        parsePositiveAmount(args.Reward, "reward"),
		Active:        true,
		CreatedAt:     nowUnix(),
	}
	saveInteraction(&i)
	saveMission(m)
	return strptr(UInt64ToString(i.ID))
}

// InteractionDeactivate flips the active flag, records are never deleted.
func InteractionDeactivate(payload *string) *string {
	requireInitialized()

	var args MissionChildArgs
	decodePayload(payload, &args, "interaction")
	requireMissionOwner(args.MissionID)

	i, ok := loadInteraction(args.MissionID, args.ID)
	if !ok {
		fail(ErrNotFound, "interaction not found: "+UInt64ToString(args.ID))
	}
	if !i.Active {
		fail(ErrBadState, "interaction already deactivated")
	}
	i.Active = false
	saveInteraction(i)
	return strptr("deactivated")
}

// MissionSetRewardMode switches between stablecoin and point payout before
// distribution has happened.
func MissionSetRewardMode(payload *string) *string {
	requireInitialized()

	var args SetRewardModeArgs
	decodePayload(payload, &args, "mission")
	m, _ := requireMissionOwner(args.MissionID)

	if m.DistributionDone {
		fail(ErrBadState, "distribution already done")
	}
	m.RewardMode = parseRewardModeField(args.Mode)
	saveMission(m)
	return strptr("mode set")
}

// MissionSetPool binds a reward pool for point-mode payouts.
func MissionSetPool(payload *string) *string {
	requireInitialized()

	var args SetPoolArgs
	decodePayload(payload, &args, "mission")
	m, _ := requireMissionOwner(args.MissionID)

	if m.DistributionDone {
		fail(ErrBadState, "distribution already done")
	}
	requirePool(args.PoolID)
	m.PoolID = args.PoolID
	saveMission(m)
	return strptr("pool set")
}

// MissionUpdateRoot publishes or rotates the participant root. A zero root is
// rejected; claimed flags survive rotation, so an address that claimed under
// any earlier root stays claimed.
func MissionUpdateRoot(payload *string) *string {
	requireInitialized()

	var args UpdateRootArgs
	decodePayload(payload, &args, "mission")
	m, sender := requireMissionOwner(args.MissionID)

	root := parseHexField(args.Root, merkleHashSize, "root")
	if isZeroRoot(root) {
		fail(ErrValidation, "zero root rejected")
	}

	m.Root = root
	m.RootUpdatedAt = nowUnix()
	saveMission(m)

	emitRootUpdatedEvent(m.ID, sender.String())
	return strptr("root updated")
}

// MissionDeposit pulls reward funds into the campaign's custody.
func MissionDeposit(payload *string) *string {
	requireInitialized()

	var args MissionAmountArgs
	decodePayload(payload, &args, "mission")
	m, sender := requireMissionOwner(args.MissionID)
	amount := parsePositiveAmount(args.Amount, "amount")

	release := acquireGuard("mission")
	defer release()

	drawFunds(amount, m.Asset)
	m.Deposited += amount
	saveMission(m)

	emitMissionDepositEvent(m.ID, sender.String(), amount)
	return strptr("deposited")
}

// MissionDistribute opens the claim window. One shot: stablecoin mode checks
// custody covers the pool and flips the claimable flag, point mode requires a
// bound reward pool. Per-user amounts come from the proofs at claim time.
func MissionDistribute(payload *string) *string {
	requireInitialized()

	var args IDArgs
	decodePayload(payload, &args, "mission")
	m, _ := requireMissionOwner(args.ID)

	if m.DistributionDone {
		fail(ErrBadState, "distribution already done")
	}
	if isZeroRoot(m.Root) {
		fail(ErrBadState, "no participant root published")
	}
	switch m.RewardMode {
	case RewardModeStablecoin:
		if m.Deposited <= 0 {
			fail(ErrBadState, "no rewards deposited")
		}
		if custodyBalance(m.Asset) < m.Deposited-m.Distributed {
			fail(ErrInsufficientBalance, "contract custody below reward pool")
		}
	default:
		if m.PoolID == 0 {
			fail(ErrBadState, "no reward pool bound")
		}
		p := requirePool(m.PoolID)
		if p.Allocated-p.Distributed <= 0 {
			fail(ErrBadState, "bound pool is exhausted")
		}
	}

	m.DistributionDone = true
	m.Claimable = true
	saveMission(m)

	emitMissionDistributedEvent(m.ID, m.RewardMode.String())
	return strptr("distributed")
}

// MissionBatchDistribute pushes a fixed, pre-computed payout set through the
// settlement path (stablecoin mode, fee-free from mission custody) or the
// bound reward pool (point mode). Also one shot.
func MissionBatchDistribute(payload *string) *string {
	requireInitialized()
	cfg := requireConfig()

	var args BatchDistributeArgs
	decodePayload(payload, &args, "mission")
	m, sender := requireMissionOwner(args.MissionID)

	if m.DistributionDone {
		fail(ErrBadState, "distribution already done")
	}
	if len(args.Recipients) != len(args.Amounts) {
		fail(ErrArrayLengthMismatch, "recipients and amounts differ in length")
	}
	if len(args.Recipients) == 0 {
		fail(ErrEmptyRecipients, "at least one recipient required")
	}
	if uint64(len(args.Recipients)) > cfg.MaxRecipients {
		fail(ErrTooManyRecipients, "recipient count exceeds limit")
	}

	payouts := make([]Payout, 0, len(args.Recipients))
	total := Amount(0)
	for i, recipient := range args.Recipients {
		addr := sdk.Address(recipient)
		if !addr.IsValid() {
			fail(ErrInvalidRecipient, "invalid recipient: "+recipient)
		}
		amt := parsePositiveAmount(args.Amounts[i], "amount")
		payouts = append(payouts, Payout{Recipient: addr, Amount: amt})
		total += amt
	}
	if m.RewardMode == RewardModeStablecoin && total > m.Deposited-m.Distributed {
		fail(ErrInsufficientBalance, "batch exceeds deposited pool")
	}

	release := acquireGuard("mission")
	defer release()

	if m.RewardMode == RewardModeStablecoin {
		s := Settlement{
			ID:        nextID(SettlementsCount),
			Initiator: sender,
			Payouts:   payouts,
			TypeTag:   "mission",
			Total:     total,
			CreatedAt: nowUnix(),
			Status:    SettlementPending,
		}
		executeSettlementPayouts(&s, cfg, m.Asset, false)
		s.Status = SettlementExecuted
		s.ExecutedAt = nowUnix()
		saveSettlement(&s)
		addTotal(TotalSettledKey, total)
		for _, payout := range payouts {
			touchRewards(payout.Recipient, payout.Amount)
		}
	} else {
		p := requirePool(m.PoolID)
		for _, payout := range payouts {
			payFromPool(p, payout.Recipient, payout.Amount, cfg)
		}
		savePool(p)
	}

	m.Distributed += total
	m.DistributionDone = true
	saveMission(m)

	emitMissionDistributedEvent(m.ID, "batch")
	return strptr("distributed")
}

// MissionClaim is the participant path: proof-checked, at most one claim per
// address per mission regardless of execution id. The claimed flag is written
// before funds move so a reentrant claim bounces off the already-claimed
// check.
func MissionClaim(payload *string) *string {
	requireInitialized()
	cfg := requireConfig()

	var args ClaimArgs
	decodePayload(payload, &args, "mission")
	m := requireActiveMission(args.MissionID)

	if !m.Claimable {
		fail(ErrBadState, "rewards not distributed yet")
	}
	claimer := getSenderAddress()
	if hasClaimed(m.ID, claimer) {
		fail(ErrAlreadyClaimed, "address already claimed")
	}
	amount := FloatToAmount(args.Amount)
	if amount <= 0 {
		fail(ErrValidation, "claim amount must be positive")
	}
	if m.RewardMode == RewardModeStablecoin && amount > m.Deposited-m.Distributed {
		fail(ErrInsufficientBalance, "claim exceeds remaining pool")
	}

	leaf := participantLeaf(claimer, args.ExecutionID)
	if !verifyMerkleProof(parseProofField(args.Proof), m.Root, leaf) {
		fail(ErrInvalidMerkleProof, "proof rejected")
	}

	release := acquireGuard("claim")
	defer release()

	markClaimed(m.ID, claimer)
	m.Distributed += amount
	m.ClaimCount++
	saveMission(m)

	if m.RewardMode == RewardModeStablecoin {
		payFunds(claimer, amount, m.Asset, ErrRecipientTransferFailed)
		touchRewards(claimer, amount)
	} else {
		p := requirePool(m.PoolID)
		payFromPool(p, claimer, amount, cfg)
		savePool(p)
	}

	emitClaimEvent(m.ID, claimer.String(), amount)
	return strptr("claimed")
}

// MissionVerify is the read-only preflight for would-be claimants. It rejects
// outright while no root is published, that case is not a proof failure.
func MissionVerify(payload *string) *string {
	requireInitialized()

	var args VerifyArgs
	decodePayload(payload, &args, "mission")
	m := requireMission(args.MissionID)

	if isZeroRoot(m.Root) {
		fail(ErrBadState, "no participant root published")
	}
	addr := parseAddressField(args.Address, "participant")

	leaf := participantLeaf(addr, args.ExecutionID)
	valid := verifyMerkleProof(parseProofField(args.Proof), m.Root, leaf)
	return renderView(CheckView{Valid: valid})
}

// MissionDeactivate retires a campaign; records stay readable but claims and
// admin mutations stop.
func MissionDeactivate(payload *string) *string {
	requireInitialized()

	var args IDArgs
	decodePayload(payload, &args, "mission")
	m, _ := requireMissionOwner(args.ID)

	m.Active = false
	m.Claimable = false
	saveMission(m)
	return strptr("deactivated")
}

// MissionRecover sweeps the undistributed remainder of a campaign back to its
// admin and closes the claim window.
func MissionRecover(payload *string) *string {
	requireInitialized()

	var args IDArgs
	decodePayload(payload, &args, "mission")
	m, sender := requireMissionOwner(args.ID)

	remaining := m.Deposited - m.Distributed
	if remaining <= 0 {
		fail(ErrBadState, "nothing to recover")
	}

	release := acquireGuard("mission")
	defer release()

	m.Distributed = m.Deposited
	m.Claimable = false
	saveMission(m)

	payFunds(sender, remaining, m.Asset, ErrRecipientTransferFailed)
	emitRecoverEvent(m.Asset.String(), sender.String(), remaining)
	return strptr("recovered")
}
