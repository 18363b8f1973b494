package contract

import "questhive/sdk"

// PoolCreate opens a point-reward pool with a time window and accrual rate.
// Operator only; the allocation is pulled into custody right away.
func PoolCreate(payload *string) *string {
	requireInitialized()
	cfg := requireConfig()
	requireContractOwner()

	var args CreatePoolArgs
	decodePayload(payload, &args, "pool")

	name := requireName(args.Name, "pool")
	allocated := parsePositiveAmount(args.TotalRewards, "total rewards")
	now := nowUnix()
	if args.Start >= args.End {
		fail(ErrValidation, "start must precede end")
	}
	if args.End <= now {
		fail(ErrValidation, "end must be in the future")
	}
	if args.RatePerSecond <= 0 {
		fail(ErrValidation, "rate must be positive")
	}

	release := acquireGuard("pool")
	defer release()

	drawFunds(allocated, cfg.PayoutAsset)

	p := RewardPool{
		ID:            nextID(PoolsCount),
		Name:          name,
		Allocated:     allocated,
		StartTime:     args.Start,
		EndTime:       args.End,
		RatePerSecond: args.RatePerSecond,
		Active:        true,
		CreatedAt:     now,
	}
	savePool(&p)

	emitPoolCreatedEvent(p.ID, getSenderAddress().String(), allocated)
	return strptr(UInt64ToString(p.ID))
}

// PoolFund tops up the allocation, custody pulled from the funder. Open to
// anyone.
func PoolFund(payload *string) *string {
	requireInitialized()
	cfg := requireConfig()

	var args PoolAmountArgs
	decodePayload(payload, &args, "pool")
	p := requirePool(args.PoolID)
	if !p.Active {
		fail(ErrBadState, "pool is closed")
	}
	amount := parsePositiveAmount(args.Amount, "amount")

	release := acquireGuard("pool")
	defer release()

	drawFunds(amount, cfg.PayoutAsset)
	p.Allocated += amount
	savePool(p)

	emitPoolFundedEvent(p.ID, getSenderAddress().String(), amount)
	return strptr("funded")
}

// PoolStake opens or tops up the sender's stake. Top-ups keep the original
// StakedAt, so the unlock clock never restarts.
func PoolStake(payload *string) *string {
	requireInitialized()
	cfg := requireConfig()

	var args StakeArgs
	decodePayload(payload, &args, "stake")
	amount := parsePositiveAmount(args.Amount, "amount")

	sender := getSenderAddress()

	release := acquireGuard("stake")
	defer release()

	drawFunds(amount, cfg.StakeAsset)

	now := nowUnix()
	s, ok := loadStake(sender)
	if !ok {
		s = &StakeRecord{Staker: sender, StakedAt: now, LastClaimAt: now}
	}
	s.Amount += amount
	saveStake(s)

	emitStakeEvent("st", sender.String(), amount)
	return strptr("staked")
}

// PoolUnstake withdraws part or all of the stake once the lock period since
// the original StakedAt has elapsed. A full withdrawal clears the record.
func PoolUnstake(payload *string) *string {
	requireInitialized()
	cfg := requireConfig()

	var args StakeArgs
	decodePayload(payload, &args, "stake")
	amount := parsePositiveAmount(args.Amount, "amount")

	sender := getSenderAddress()
	s, ok := loadStake(sender)
	if !ok {
		fail(ErrNotFound, "no stake for sender")
	}
	if amount > s.Amount {
		fail(ErrValidation, "unstake exceeds staked amount")
	}
	if nowUnix() < s.StakedAt+cfg.StakeLockSeconds {
		fail(ErrBadState, "stake still locked")
	}

	release := acquireGuard("stake")
	defer release()

	s.Amount -= amount
	if s.Amount == 0 {
		deleteStake(sender)
	} else {
		saveStake(s)
	}

	payFunds(sender, amount, cfg.StakeAsset, ErrRecipientTransferFailed)
	emitStakeEvent("su", sender.String(), amount)
	return strptr("unstaked")
}

// PoolDistribute is the admin push path: validated against the remaining
// allocation, then transferred directly per recipient.
func PoolDistribute(payload *string) *string {
	requireInitialized()
	cfg := requireConfig()
	requireContractOwner()

	var args PoolDistributeArgs
	decodePayload(payload, &args, "pool")
	p := requirePool(args.PoolID)
	if !p.Active {
		fail(ErrBadState, "pool is closed")
	}
	if len(args.Recipients) != len(args.Amounts) {
		fail(ErrArrayLengthMismatch, "recipients and amounts differ in length")
	}
	if len(args.Recipients) == 0 {
		fail(ErrEmptyRecipients, "at least one recipient required")
	}

	total := Amount(0)
	payouts := make([]Payout, 0, len(args.Recipients))
	for i, recipient := range args.Recipients {
		addr := sdk.Address(recipient)
		if !addr.IsValid() {
			fail(ErrInvalidRecipient, "invalid recipient: "+recipient)
		}
		amt := parsePositiveAmount(args.Amounts[i], "amount")
		payouts = append(payouts, Payout{Recipient: addr, Amount: amt})
		total += amt
	}
	if p.Distributed+total > p.Allocated {
		fail(ErrInsufficientBalance, "distribution exceeds pool allocation")
	}
	if custodyBalance(cfg.PayoutAsset) < total {
		fail(ErrInsufficientBalance, "contract custody below distribution total")
	}

	release := acquireGuard("pool")
	defer release()

	for _, payout := range payouts {
		payFromPool(p, payout.Recipient, payout.Amount, cfg)
	}
	savePool(p)
	return strptr("distributed")
}

// PoolClaim is staker self-service: the requested amount is capped by the
// stake-weighted accrual since the last claim.
func PoolClaim(payload *string) *string {
	requireInitialized()
	cfg := requireConfig()

	var args PoolAmountArgs
	decodePayload(payload, &args, "pool")
	p := requirePool(args.PoolID)
	if !p.Active {
		fail(ErrBadState, "pool is closed")
	}

	sender := getSenderAddress()
	s, ok := loadStake(sender)
	if !ok || s.Amount <= 0 {
		fail(ErrBadState, "no active stake")
	}

	now := nowUnix()
	entitled := accruedEntitlement(p, s, now)
	amount := FloatToAmount(args.Amount)
	if amount <= 0 || amount > entitled {
		amount = entitled
	}
	if amount <= 0 {
		fail(ErrBadState, "nothing accrued")
	}

	release := acquireGuard("pool")
	defer release()

	s.LastClaimAt = now
	s.TotalClaimed += amount
	saveStake(s)

	payFromPool(p, sender, amount, cfg)
	savePool(p)

	bumpPoolClaimCount(p.ID, sender)
	emitPoolClaimEvent(p.ID, sender.String(), amount)
	return strptr("claimed")
}

// PoolPending mirrors the claim formula without touching state.
func PoolPending(payload *string) *string {
	requireInitialized()

	var args PoolPendingArgs
	decodePayload(payload, &args, "pool")
	p := requirePool(args.PoolID)
	staker := parseAddressField(args.Staker, "staker")

	pending := Amount(0)
	if s, ok := loadStake(staker); ok && s.Amount > 0 {
		pending = accruedEntitlement(p, s, nowUnix())
	}

	view := PendingView{
		PoolID:  p.ID,
		Staker:  staker.String(),
		Pending: AmountToFloat(pending),
	}
	return renderView(view)
}

// accruedEntitlement is stake * rate * elapsed / RateScale, with elapsed
// clamped to the pool window and the result clamped to what is left in the
// allocation.
func accruedEntitlement(p *RewardPool, s *StakeRecord, now int64) Amount {
	from := s.LastClaimAt
	if from < p.StartTime {
		from = p.StartTime
	}
	to := now
	if to > p.EndTime {
		to = p.EndTime
	}
	if to <= from {
		return 0
	}
	elapsed := to - from
	entitled := Amount(int64(s.Amount) * p.RatePerSecond * elapsed / RateScale)
	remaining := p.Allocated - p.Distributed
	if entitled > remaining {
		entitled = remaining
	}
	return entitled
}

// payFromPool debits the pool ledger and moves custody funds in one place.
// Callers persist the pool afterwards; reputation credit rides along.
func payFromPool(p *RewardPool, to sdk.Address, amount Amount, cfg *ContractConfig) {
	remaining := p.Allocated - p.Distributed
	if amount > remaining {
		fail(ErrInsufficientBalance, "pool allocation exhausted")
	}
	p.Distributed += amount
	payFunds(to, amount, cfg.PayoutAsset, ErrRecipientTransferFailed)
	touchRewards(to, amount)
}
