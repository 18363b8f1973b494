package contract

import "questhive/sdk"

// EscrowCreate pulls the amount into custody immediately, unlike settlements.
func EscrowCreate(payload *string) *string {
	requireInitialized()
	cfg := requireConfig()

	var args CreateEscrowArgs
	decodePayload(payload, &args, "escrow")

	payee := parseAddressField(args.Payee, "payee")
	var arbiter *sdk.Address
	if args.Arbiter != "" {
		a := parseAddressField(args.Arbiter, "arbiter")
		arbiter = &a
	}
	amount := FloatToAmount(args.Amount)
	if amount < cfg.MinSettlementAmount {
		fail(ErrAmountBelowMinimum, "amount below configured minimum")
	}
	now := nowUnix()
	if args.Deadline != 0 && args.Deadline <= now {
		fail(ErrValidation, "deadline must be in the future")
	}

	payer := getSenderAddress()
	if payee == payer {
		fail(ErrValidation, "payee must differ from payer")
	}

	release := acquireGuard("escrow")
	defer release()

	drawFunds(amount, cfg.PayoutAsset)

	e := Escrow{
		ID:          nextID(EscrowsCount),
		Payer:       payer,
		Payee:       payee,
		Arbiter:     arbiter,
		Amount:      amount,
		CreatedAt:   now,
		Deadline:    args.Deadline,
		Status:      EscrowActive,
		Description: normalizeOptionalField(args.Description),
	}
	saveEscrow(&e)

	emitEscrowCreatedEvent(e.ID, payer.String(), payee.String(), amount)
	return strptr(UInt64ToString(e.ID))
}

// EscrowRelease pays the custody balance to the payee. The payer and arbiter
// may release any time; anyone may once the deadline has passed. Terminal.
func EscrowRelease(payload *string) *string {
	requireInitialized()
	cfg := requireConfig()

	var args IDArgs
	decodePayload(payload, &args, "escrow")
	e := requireEscrow(args.ID)

	if e.Status != EscrowActive {
		fail(ErrBadState, "escrow not active")
	}
	sender := getSenderAddress()
	deadlinePassed := e.Deadline != 0 && nowUnix() >= e.Deadline
	if sender != e.Payer && !isArbiter(e, sender) && !deadlinePassed {
		fail(ErrUnauthorized, "payer, arbiter or post-deadline caller only")
	}

	closeEscrow(e, cfg, true)
	return strptr("released")
}

// EscrowRefund pays the custody balance back to the payer. Payee or arbiter
// only. Terminal.
func EscrowRefund(payload *string) *string {
	requireInitialized()
	cfg := requireConfig()

	var args IDArgs
	decodePayload(payload, &args, "escrow")
	e := requireEscrow(args.ID)

	if e.Status != EscrowActive {
		fail(ErrBadState, "escrow not active")
	}
	sender := getSenderAddress()
	if sender != e.Payee && !isArbiter(e, sender) {
		fail(ErrUnauthorized, "payee or arbiter only")
	}

	closeEscrow(e, cfg, false)
	return strptr("refunded")
}

// EscrowDispute escalates an active escrow to the arbiter. Either party may
// dispute, but only when an arbiter was configured at creation.
func EscrowDispute(payload *string) *string {
	requireInitialized()

	var args IDArgs
	decodePayload(payload, &args, "escrow")
	e := requireEscrow(args.ID)

	if e.Status != EscrowActive {
		fail(ErrBadState, "escrow not active")
	}
	if e.Arbiter == nil {
		fail(ErrBadState, "no arbiter configured")
	}
	sender := getSenderAddress()
	if sender != e.Payer && sender != e.Payee {
		fail(ErrUnauthorized, "payer or payee only")
	}

	e.Status = EscrowDisputed
	saveEscrow(e)

	emitEscrowDisputedEvent(e.ID, sender.String())
	return strptr("disputed")
}

// EscrowResolve settles a disputed escrow either way. Arbiter only, terminal.
func EscrowResolve(payload *string) *string {
	requireInitialized()
	cfg := requireConfig()

	var args ResolveEscrowArgs
	decodePayload(payload, &args, "escrow")
	e := requireEscrow(args.ID)

	if e.Status != EscrowDisputed {
		fail(ErrBadState, "escrow not disputed")
	}
	if !isArbiter(e, getSenderAddress()) {
		fail(ErrUnauthorized, "arbiter only")
	}

	closeEscrow(e, cfg, args.ReleaseToPayee)
	if args.ReleaseToPayee {
		return strptr("released")
	}
	return strptr("refunded")
}

// isArbiter handles the optional arbiter slot in one place.
func isArbiter(e *Escrow, addr sdk.Address) bool {
	return e.Arbiter != nil && *e.Arbiter == addr
}

// closeEscrow writes the terminal status before moving funds so a reentrant
// call sees a non-active escrow and bounces off the status check.
func closeEscrow(e *Escrow, cfg *ContractConfig, toPayee bool) {
	to := e.Payer
	outcome := "refund"
	status := EscrowRefunded
	if toPayee {
		to = e.Payee
		outcome = "release"
		status = EscrowReleased
	}

	release := acquireGuard("escrow")
	defer release()

	e.Status = status
	saveEscrow(e)

	payFunds(to, e.Amount, cfg.PayoutAsset, ErrRecipientTransferFailed)
	addTotal(TotalEscrowedKey, e.Amount)
	touchTransaction(e.Payer, e.Amount, toPayee)

	emitEscrowClosedEvent(e.ID, outcome, to.String())
}
