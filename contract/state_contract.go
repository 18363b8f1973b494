package contract

import "questhive/sdk"

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if the contract has been initialized.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// requireInitialized aborts if the contract has not been initialized.
func requireInitialized() {
	if !isContractInitialized() {
		sdk.Abort("contract not initialized")
	}
}

// loadContractConfig loads the operator configuration from state.
func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	cfg, err := DecodeContractConfig([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode contract config")
	}
	return cfg
}

// saveContractConfig stores the operator configuration to state.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(ContractConfigKey, string(EncodeContractConfig(cfg)))
}

// requireConfig loads the config or aborts; entrypoints call this after
// requireInitialized so a nil return is impossible in practice.
func requireConfig() *ContractConfig {
	cfg := loadContractConfig()
	if cfg == nil {
		sdk.Abort("contract not initialized")
	}
	return cfg
}

// getContractOwner returns the contract owner address, or nil if not initialized.
func getContractOwner() *sdk.Address {
	cfg := loadContractConfig()
	if cfg == nil {
		return nil
	}
	return &cfg.Owner
}

// isContractOwner returns true if the given address is the contract owner.
func isContractOwner(addr sdk.Address) bool {
	owner := getContractOwner()
	return owner != nil && *owner == addr
}

// requireContractOwner reverts unless the sender is the operator.
func requireContractOwner() sdk.Address {
	sender := getSenderAddress()
	if !isContractOwner(sender) {
		fail(ErrUnauthorized, "operator only")
	}
	return sender
}
