package sdk

import "encoding/json"

// Host is the boundary to the chain runtime. The wasm build binds it to the
// real host imports; everywhere else a MockHost is installed via UseHost.
type Host interface {
	Log(msg string)
	StateSet(key, value string)
	StateGet(key string) *string
	StateDelete(key string)
	EnvJSON() string
	EnvKey(key string) *string
	Balance(addr Address, asset Asset) int64
	Draw(amount int64, asset Asset) error
	Transfer(to Address, amount int64, asset Asset) error
	Abort(msg string)
	Revert(msg string, symbol string)
}

var active Host

// UseHost installs the host implementation all sdk wrappers delegate to.
func UseHost(h Host) { active = h }

// CurrentHost exposes the installed host, mostly for test harness access.
func CurrentHost() Host { return active }

// Log writes a message to the host console so we can trace contract steps.
func Log(s string) {
	active.Log(s)
}

// StateSetObject stores a key/value string pair into contract kv storage.
func StateSetObject(key string, value string) {
	active.StateSet(key, value)
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	return active.StateGet(key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
func StateDeleteObject(key string) {
	active.StateDelete(key)
}

// Abort stops execution immediately and surfaces the message to the chain.
func Abort(msg string) {
	active.Abort(msg)
	panic(msg)
}

// Revert throws a named error back to the caller with a short machine-readable symbol.
func Revert(msg string, symbol string) {
	active.Revert(msg, symbol)
	panic(symbol + ": " + msg)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
func GetEnv() Env {
	envStr := active.EnvJSON()
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	requiredAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				requiredAuths = append(requiredAuths, Address(addr))
			}
		}
	}
	requiredPostingAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_posting_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				requiredPostingAuths = append(requiredPostingAuths, Address(addr))
			}
		}
	}

	if sender, ok := envMap["msg.sender"].(string); ok {
		env.Sender = Sender{
			Address:              Address(sender),
			RequiredAuths:        requiredAuths,
			RequiredPostingAuths: requiredPostingAuths,
		}
	}
	if caller, ok := envMap["msg.caller"].(string); ok {
		env.Caller = Caller{Address: Address(caller)}
	}
	return env
}

// GetEnvStr returns the raw JSON environment string without parsing.
func GetEnvStr() string {
	return active.EnvJSON()
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
func GetEnvKey(key string) *string {
	return active.EnvKey(key)
}

// GetBalance queries the ledger balance for the given account+asset combo.
func GetBalance(address Address, asset Asset) int64 {
	return active.Balance(address, asset)
}

// HiveDraw pulls tokens from the caller to the contract within the transfer.allow limit.
// The returned error must be checked: the host can refuse the pull.
func HiveDraw(amount int64, asset Asset) error {
	return active.Draw(amount, asset)
}

// HiveTransfer sends tokens from the contract towards a user address.
// The returned error must be checked: the host can refuse the transfer.
func HiveTransfer(to Address, amount int64, asset Asset) error {
	return active.Transfer(to, amount, asset)
}
