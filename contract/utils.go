package contract

import (
	"strconv"
	"strings"
	"time"

	"questhive/sdk"
)

// -----------------------------------------------------------------------------
// Error Symbols
// -----------------------------------------------------------------------------

// Machine-readable revert symbols; the human message varies, the symbol is the
// contract surface callers can match on.
const (
	ErrUnauthorized            = "Unauthorized"
	ErrNotFound                = "NotFound"
	ErrBadState                = "BadState"
	ErrValidation              = "ValidationError"
	ErrArrayLengthMismatch     = "ArrayLengthMismatch"
	ErrEmptyRecipients         = "EmptyRecipients"
	ErrTooManyRecipients       = "TooManyRecipients"
	ErrAmountBelowMinimum      = "AmountBelowMinimum"
	ErrInvalidRecipient        = "InvalidRecipient"
	ErrInsufficientBalance     = "InsufficientBalance"
	ErrInsufficientAllowance   = "InsufficientAllowance"
	ErrRecipientTransferFailed = "RecipientTransferFailed"
	ErrAlreadyClaimed          = "AlreadyClaimed"
	ErrInvalidMerkleProof      = "InvalidMerkleProof"
	ErrReentrantCall           = "ReentrantCall"
)

// fail reverts the whole transaction with a symbol plus human message.
func fail(symbol string, msg string) {
	sdk.Revert(msg, symbol)
}

// -----------------------------------------------------------------------------
// Ledger Helpers
// -----------------------------------------------------------------------------

// drawFunds pulls amount from the sender into contract custody. The
// transfer.allow intent is checked first so allowance failures are separable
// from balance failures.
func drawFunds(amount Amount, asset sdk.Asset) {
	ta := getFirstTransferAllow()
	if ta == nil || ta.Token != asset || ta.Limit < amount {
		fail(ErrInsufficientAllowance, "transfer.allow intent does not cover the amount")
	}
	if err := sdk.HiveDraw(AmountToInt64(amount), asset); err != nil {
		fail(ErrInsufficientBalance, "ledger refused the draw: "+err.Error())
	}
}

// payFunds moves amount out of contract custody, reverting with the given
// symbol when the ledger refuses.
func payFunds(to sdk.Address, amount Amount, asset sdk.Asset, symbol string) {
	if err := sdk.HiveTransfer(to, AmountToInt64(amount), asset); err != nil {
		fail(symbol, "ledger refused the transfer: "+err.Error())
	}
}

// custodyBalance reads the contract's own on-hand balance for an asset.
func custodyBalance(asset sdk.Asset) Amount {
	return Amount(sdk.GetBalance(contractAddress(), asset))
}

// -----------------------------------------------------------------------------
// State Utilities
// -----------------------------------------------------------------------------

// stateSetIfChanged avoids unnecessary writes so we dont thrash storage fees.
func stateSetIfChanged(key, value string) {
	if existing := sdk.StateGetObject(key); existing != nil && *existing == value {
		return
	}
	sdk.StateSetObject(key, value)
}

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// nextID bumps a counter and returns the fresh 1-based id; 0 never exists.
func nextID(counterKey string) uint64 {
	n := getCount(counterKey) + 1
	setCount(counterKey, n)
	return n
}

// addTotal accumulates a running Amount total under the key.
func addTotal(key string, delta Amount) {
	current := Amount(0)
	if ptr := sdk.StateGetObject(key); ptr != nil && *ptr != "" {
		v, _ := strconv.ParseInt(*ptr, 10, 64)
		current = Amount(v)
	}
	sdk.StateSetObject(key, strconv.FormatInt(int64(current+delta), 10))
}

// getTotal reads a running Amount total, defaulting to zero.
func getTotal(key string) Amount {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	v, _ := strconv.ParseInt(*ptr, 10, 64)
	return Amount(v)
}

// -----------------------------------------------------------------------------
// String Conversion Helpers
// -----------------------------------------------------------------------------

// UInt64ToString turns an id back into decimal text for logs or responses.
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// strptr is a tiny helper so we can take a literal string and hand a pointer to sdk calls quickly.
func strptr(s string) *string { return &s }

// minU keeps the reputation formula terse.
func minU(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// -----------------------------------------------------------------------------
// Timestamp Helpers
// -----------------------------------------------------------------------------

// nowUnix returns the current Unix timestamp.
// It prefers the chain's block timestamp from the environment if available.
func nowUnix() int64 {
	if ts := currentEnv().Timestamp; ts != "" {
		if v, ok := parseTimestamp(ts); ok {
			return v
		}
	}
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := parseTimestamp(*tsPtr); ok {
			return v
		}
	}
	return time.Now().Unix()
}

// parseTimestamp accepts unix seconds or iso-ish strings since the env flips formats sometimes.
func parseTimestamp(val string) (int64, bool) {
	if v, err := strconv.ParseInt(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	return 0, false
}

// normalizeOptionalField trims funky placeholders like "" so metadata stays clean.
func normalizeOptionalField(val string) string {
	val = strings.TrimSpace(val)
	if val == "" || val == "\"\"" || val == "''" {
		return ""
	}
	return val
}
