package contract

import (
	"encoding/hex"
	"strconv"
	"strings"

	tinyjson "github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"

	"questhive/sdk"
)

// All entrypoint payloads are JSON objects. The codecs live in
// payload_tinyjson.go and views_tinyjson.go, generated with
// `tinyjson -all payload.go views.go`.

// InitArgs configures the operator knobs at contract_init time. Zero values
// fall back to the defaults in constants.go.
//
//tinyjson:json
type InitArgs struct {
	Owner               string  `json:"owner"`
	FeeBps              uint64  `json:"fee_bps"`
	MinSettlementAmount float64 `json:"min_settlement_amount"`
	MaxRecipients       uint64  `json:"max_recipients"`
	StakeLockHours      uint64  `json:"stake_lock_hours"`
	StakeAsset          string  `json:"stake_asset"`
	PayoutAsset         string  `json:"payout_asset"`
}

// IDArgs is the shared single-id payload for lookups and lifecycle flips.
//
//tinyjson:json
type IDArgs struct {
	ID uint64 `json:"id"`
}

//tinyjson:json
type CreateSettlementArgs struct {
	Recipients   []string  `json:"recipients"`
	Amounts      []float64 `json:"amounts"`
	TypeTag      string    `json:"type_tag"`
	MetadataHash string    `json:"metadata_hash"`
}

//tinyjson:json
type CreateEscrowArgs struct {
	Payee       string  `json:"payee"`
	Arbiter     string  `json:"arbiter"`
	Amount      float64 `json:"amount"`
	Deadline    int64   `json:"deadline"`
	Description string  `json:"description"`
}

//tinyjson:json
type ResolveEscrowArgs struct {
	ID             uint64 `json:"id"`
	ReleaseToPayee bool   `json:"release_to_payee"`
}

//tinyjson:json
type RegisterIdentityArgs struct {
	ID          string `json:"id"`
	MetadataURI string `json:"metadata_uri"`
}

//tinyjson:json
type RecordTransactionArgs struct {
	Account string  `json:"account"`
	Amount  float64 `json:"amount"`
	Success bool    `json:"success"`
}

// ReputationDeltaArgs feeds the onboarding/contribution/rewards counters.
//
//tinyjson:json
type ReputationDeltaArgs struct {
	Account string  `json:"account"`
	Delta   float64 `json:"delta"`
}

//tinyjson:json
type IssueCredentialArgs struct {
	Subject   string `json:"subject"`
	TypeTag   string `json:"type_tag"`
	DataHash  string `json:"data_hash"`
	ExpiresAt int64  `json:"expires_at"`
}

//tinyjson:json
type AccountArgs struct {
	Account string `json:"account"`
}

//tinyjson:json
type CreatePoolArgs struct {
	Name          string  `json:"name"`
	TotalRewards  float64 `json:"total_rewards"`
	Start         int64   `json:"start"`
	End           int64   `json:"end"`
	RatePerSecond int64   `json:"rate_per_second"`
}

// PoolAmountArgs covers pool_fund and pool_claim.
//
//tinyjson:json
type PoolAmountArgs struct {
	PoolID uint64  `json:"pool_id"`
	Amount float64 `json:"amount"`
}

//tinyjson:json
type StakeArgs struct {
	Amount float64 `json:"amount"`
}

//tinyjson:json
type PoolDistributeArgs struct {
	PoolID     uint64    `json:"pool_id"`
	Recipients []string  `json:"recipients"`
	Amounts    []float64 `json:"amounts"`
}

//tinyjson:json
type PoolPendingArgs struct {
	PoolID uint64 `json:"pool_id"`
	Staker string `json:"staker"`
}

//tinyjson:json
type CreateMissionArgs struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	RewardMode  string `json:"reward_mode"`
	Asset       string `json:"asset"`
}

//tinyjson:json
type AddApplicationArgs struct {
	MissionID   uint64 `json:"mission_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// MissionChildArgs addresses an application or interaction inside a mission.
//
//tinyjson:json
type MissionChildArgs struct {
	MissionID uint64 `json:"mission_id"`
	ID        uint64 `json:"id"`
}

//tinyjson:json
type AddInteractionArgs struct {
	MissionID     uint64  `json:"mission_id"`
	ApplicationID uint64  `json:"application_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Action        string  `json:"action"`
	Reward        float64 `json:"reward"`
}

//tinyjson:json
type SetRewardModeArgs struct {
	MissionID uint64 `json:"mission_id"`
	Mode      string `json:"mode"`
}

//tinyjson:json
type SetPoolArgs struct {
	MissionID uint64 `json:"mission_id"`
	PoolID    uint64 `json:"pool_id"`
}

// UpdateRootArgs carries the hex-encoded 32-byte participant root.
//
//tinyjson:json
type UpdateRootArgs struct {
	MissionID uint64 `json:"mission_id"`
	Root      string `json:"root"`
}

//tinyjson:json
type MissionAmountArgs struct {
	MissionID uint64  `json:"mission_id"`
	Amount    float64 `json:"amount"`
}

//tinyjson:json
type BatchDistributeArgs struct {
	MissionID  uint64    `json:"mission_id"`
	Recipients []string  `json:"recipients"`
	Amounts    []float64 `json:"amounts"`
}

// ClaimArgs is the participant-facing claim payload; proof elements are
// hex-encoded 32-byte hashes.
//
//tinyjson:json
type ClaimArgs struct {
	MissionID   uint64   `json:"mission_id"`
	ExecutionID uint64   `json:"execution_id"`
	Amount      float64  `json:"amount"`
	Proof       []string `json:"proof"`
}

//tinyjson:json
type VerifyArgs struct {
	MissionID   uint64   `json:"mission_id"`
	Address     string   `json:"address"`
	ExecutionID uint64   `json:"execution_id"`
	Proof       []string `json:"proof"`
}

//tinyjson:json
type RecoverArgs struct {
	Asset string `json:"asset"`
	To    string `json:"to"`
}

// -----------------------------------------------------------------------------
// Payload plumbing
// -----------------------------------------------------------------------------

// unwrapPayload strips outer quoting layers some wallets wrap around the raw
// payload string.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'' {
		raw = strings.TrimSpace(raw[1 : len(raw)-1])
		if raw == "" {
			sdk.Abort(errMsg)
		}
	}
	return raw
}

// decodePayload runs the tinyjson codec over the unwrapped payload and reverts
// with ValidationError on any parse failure.
func decodePayload(payload *string, target tinyjson.Unmarshaler, what string) {
	raw := unwrapPayload(payload, what+" payload missing")
	l := jlexer.Lexer{Data: []byte(raw)}
	target.UnmarshalEasyJSON(&l)
	if err := l.Error(); err != nil {
		fail(ErrValidation, "invalid "+what+" payload: "+err.Error())
	}
}

// renderView serializes a response struct back to the caller.
func renderView(v tinyjson.Marshaler) *string {
	w := jwriter.Writer{}
	v.MarshalEasyJSON(&w)
	data, err := w.BuildBytes()
	if err != nil {
		sdk.Abort("response encoding failed: " + err.Error())
	}
	out := string(data)
	return &out
}

// -----------------------------------------------------------------------------
// Field validation
// -----------------------------------------------------------------------------

// requireName enforces the shared non-empty/length rule for display names.
func requireName(name string, what string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		fail(ErrValidation, what+" name required")
	}
	if len(name) > MaxNameLength {
		fail(ErrValidation, what+" name too long (max "+strconv.Itoa(MaxNameLength)+")")
	}
	return name
}

// requireURL allows empty but caps the length.
func requireURL(url string) string {
	url = normalizeOptionalField(url)
	if len(url) > MaxURLLength {
		fail(ErrValidation, "url too long (max "+strconv.Itoa(MaxURLLength)+")")
	}
	return url
}

// parseAddressField validates a required address string.
func parseAddressField(val string, what string) sdk.Address {
	addr := sdk.Address(strings.TrimSpace(val))
	if !addr.IsValid() {
		fail(ErrValidation, "invalid "+what+" address: "+val)
	}
	return addr
}

// parseAssetField validates a supported asset ticker, empty falls back.
func parseAssetField(val string, fallback sdk.Asset) sdk.Asset {
	val = strings.TrimSpace(val)
	if val == "" {
		return fallback
	}
	if !isValidAsset(val) {
		fail(ErrValidation, "unsupported asset: "+val)
	}
	return sdk.Asset(val)
}

// parsePositiveAmount converts and rejects zero/negative values.
func parsePositiveAmount(val float64, what string) Amount {
	amt := FloatToAmount(val)
	if amt <= 0 {
		fail(ErrValidation, what+" must be positive")
	}
	return amt
}

// parseRewardModeField maps the mode string, defaulting empty to points.
func parseRewardModeField(val string) RewardMode {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "", "points", "point":
		return RewardModePoints
	case "stablecoin", "stable":
		return RewardModeStablecoin
	default:
		fail(ErrValidation, "unknown reward mode: "+val)
	}
	return RewardModePoints
}

// parseHexField decodes a hex string of an exact byte length.
func parseHexField(val string, wantLen int, what string) []byte {
	val = strings.TrimPrefix(strings.TrimSpace(val), "0x")
	decoded, err := hex.DecodeString(val)
	if err != nil {
		fail(ErrValidation, "invalid "+what+" hex: "+err.Error())
	}
	if len(decoded) != wantLen {
		fail(ErrValidation, what+" must be "+strconv.Itoa(wantLen)+" bytes")
	}
	return decoded
}

// parseProofField decodes the hex proof elements. Elements of the wrong size
// are passed through as-is so the verifier can answer false instead of us
// conflating a malformed proof with a bad payload.
func parseProofField(proof []string) [][]byte {
	out := make([][]byte, 0, len(proof))
	for _, elem := range proof {
		elem = strings.TrimPrefix(strings.TrimSpace(elem), "0x")
		decoded, err := hex.DecodeString(elem)
		if err != nil {
			decoded = nil
		}
		out = append(out, decoded)
	}
	return out
}
