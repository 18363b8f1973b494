package contract

import "questhive/sdk"

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit initializes the contract and stores the operator config.
// Must be called before any other function. Zero-valued knobs fall back to
// the defaults in constants.go.
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}

	var args InitArgs
	decodePayload(payload, &args, "init")

	owner := getSenderAddress()
	if args.Owner != "" {
		owner = parseAddressField(args.Owner, "owner")
	}
	if args.FeeBps > MaxFeeBps {
		fail(ErrValidation, "fee exceeds 10% cap")
	}

	cfg := ContractConfig{
		Owner:               owner,
		FeeBps:              args.FeeBps,
		MinSettlementAmount: FloatToAmount(args.MinSettlementAmount),
		MaxRecipients:       args.MaxRecipients,
		StakeLockSeconds:    int64(args.StakeLockHours) * 3600,
		StakeAsset:          parseAssetField(args.StakeAsset, sdk.AssetHive),
		PayoutAsset:         parseAssetField(args.PayoutAsset, sdk.AssetHbd),
	}
	if cfg.FeeBps == 0 {
		cfg.FeeBps = FallbackFeeBps
	}
	if cfg.MinSettlementAmount <= 0 {
		cfg.MinSettlementAmount = FallbackMinSettlementAmount
	}
	if cfg.MaxRecipients == 0 {
		cfg.MaxRecipients = FallbackMaxRecipients
	}
	if cfg.StakeLockSeconds <= 0 {
		cfg.StakeLockSeconds = FallbackStakeLockHours * 3600
	}
	saveContractConfig(&cfg)

	emitInitEvent(cfg.Owner.String(), cfg.FeeBps)
	return strptr("initialized")
}

// -----------------------------------------------------------------------------
// Updater Allow-List
// -----------------------------------------------------------------------------

// UpdaterAdd puts an address on the reputation updater allow-list.
func UpdaterAdd(payload *string) *string {
	requireInitialized()
	requireContractOwner()

	var args AccountArgs
	decodePayload(payload, &args, "updater")
	addr := parseAddressField(args.Account, "updater")
	setUpdater(addr, true)
	return strptr("updater added")
}

// UpdaterRemove takes an address off the allow-list. Removing an unknown
// address is a no-op, the operator stays authorized regardless.
func UpdaterRemove(payload *string) *string {
	requireInitialized()
	requireContractOwner()

	var args AccountArgs
	decodePayload(payload, &args, "updater")
	addr := parseAddressField(args.Account, "updater")
	setUpdater(addr, false)
	return strptr("updater removed")
}

// -----------------------------------------------------------------------------
// Emergency Recovery
// -----------------------------------------------------------------------------

// EmergencyRecover sweeps the contract's whole on-hand balance for an asset
// back to the operator (or an explicit target). Safety valve for stray funds,
// operator only.
func EmergencyRecover(payload *string) *string {
	requireInitialized()
	owner := requireContractOwner()

	var args RecoverArgs
	decodePayload(payload, &args, "recover")
	asset := parseAssetField(args.Asset, sdk.AssetHbd)
	to := owner
	if args.To != "" {
		to = parseAddressField(args.To, "recipient")
	}

	amount := custodyBalance(asset)
	if amount <= 0 {
		fail(ErrBadState, "nothing to recover for "+asset.String())
	}

	release := acquireGuard("recover")
	defer release()

	payFunds(to, amount, asset, ErrRecipientTransferFailed)
	emitRecoverEvent(asset.String(), to.String(), amount)
	return strptr("recovered")
}
