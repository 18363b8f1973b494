package contract

import "questhive/sdk"

// SettlementCreate records a validated batch payout as Pending. No funds move
// until execution.
func SettlementCreate(payload *string) *string {
	requireInitialized()
	cfg := requireConfig()

	var args CreateSettlementArgs
	decodePayload(payload, &args, "settlement")

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
		amt := FloatToAmount(args.Amounts[i])
		if amt < cfg.MinSettlementAmount {
			fail(ErrAmountBelowMinimum, "amount below configured minimum")
		}
		payouts = append(payouts, Payout{Recipient: addr, Amount: amt})
		total += amt
	}

	initiator := getSenderAddress()
	s := Settlement{
		ID:           nextID(SettlementsCount),
		Initiator:    initiator,
		Payouts:      payouts,
		TypeTag:      normalizeOptionalField(args.TypeTag),
		Total:        total,
		MetadataHash: normalizeOptionalField(args.MetadataHash),
		CreatedAt:    nowUnix(),
		Status:       SettlementPending,
	}
	saveSettlement(&s)

	emitSettlementCreatedEvent(s.ID, initiator.String(), total)
	return strptr(UInt64ToString(s.ID))
}

// SettlementExecute pulls the batch total from the initiator, takes the
// operator fee and disburses the payouts in order. The host rolls the whole
// transaction back on any transfer failure, so execution is all-or-nothing.
func SettlementExecute(payload *string) *string {
	requireInitialized()
	cfg := requireConfig()

	var args IDArgs
	decodePayload(payload, &args, "settlement")
	s := requireSettlement(args.ID)

	sender := getSenderAddress()
	if s.Initiator != sender {
		fail(ErrUnauthorized, "initiator only")
	}
	if s.Status != SettlementPending {
		fail(ErrBadState, "settlement not pending")
	}

	release := acquireGuard("settle")
	defer release()

	drawFunds(s.Total, cfg.PayoutAsset)
	executeSettlementPayouts(s, cfg, cfg.PayoutAsset, true)

	s.ExecutedAt = nowUnix()
	s.Status = SettlementExecuted
	saveSettlement(s)

	addTotal(TotalSettledKey, s.Total)
	addTotal(TotalFeesKey, s.Fee)
	touchTransaction(sender, s.Total, true)

	emitSettlementExecutedEvent(s.ID, s.Total, s.Fee)
	return strptr("executed")
}

// executeSettlementPayouts moves custody funds out to the recipients. With
// charge set, the per-payout fee goes to the operator; the mission engine
// executes fee-free from its own custody. Fees use integer bps math per payout
// so disbursed plus fee always equals the drawn total.
func executeSettlementPayouts(s *Settlement, cfg *ContractConfig, asset sdk.Asset, charge bool) {
	fee := Amount(0)
	for _, p := range s.Payouts {
		cut := Amount(0)
		if charge {
			cut = p.Amount * Amount(cfg.FeeBps) / 10000
		}
		payFunds(p.Recipient, p.Amount-cut, asset, ErrRecipientTransferFailed)
		fee += cut
	}
	if fee > 0 {
		payFunds(cfg.Owner, fee, asset, ErrRecipientTransferFailed)
	}
	s.Fee = fee
}

// SettlementCancel flips a pending settlement to Cancelled. Funds never moved,
// so this is a pure state transition.
func SettlementCancel(payload *string) *string {
	requireInitialized()

	var args IDArgs
	decodePayload(payload, &args, "settlement")
	s := requireSettlement(args.ID)

	sender := getSenderAddress()
	if s.Initiator != sender {
		fail(ErrUnauthorized, "initiator only")
	}
	if s.Status != SettlementPending {
		fail(ErrBadState, "settlement not pending")
	}

	s.Status = SettlementCancelled
	saveSettlement(s)

	emitSettlementCancelledEvent(s.ID, sender.String())
	return strptr("cancelled")
}

// SettlementStats reports the engine's running counters.
func SettlementStats(payload *string) *string {
	requireInitialized()

	view := StatsView{
		Settlements:   getCount(SettlementsCount),
		Escrows:       getCount(EscrowsCount),
		TotalSettled:  AmountToFloat(getTotal(TotalSettledKey)),
		TotalFees:     AmountToFloat(getTotal(TotalFeesKey)),
		TotalEscrowed: AmountToFloat(getTotal(TotalEscrowedKey)),
	}
	return renderView(view)
}
