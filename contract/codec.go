package contract

import (
	"bytes"
	"encoding/binary"
	"errors"

	"questhive/sdk"
)

// ------------------------------------------------------------------
// Encoder helpers
// ------------------------------------------------------------------

type binWriter struct {
	buf bytes.Buffer
}

func newWriter() *binWriter { return &binWriter{} }

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

func (w *binWriter) writeBytes(b []byte) {
	w.writeVarUint(uint64(len(b)))
	w.buf.Write(b)
}

func (w *binWriter) writeOptionalAddress(ptr *sdk.Address) {
	if ptr == nil {
		w.writeBool(false)
		return
	}
	w.writeBool(true)
	w.writeAddress(*ptr)
}

func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(AddressToString(a))
}

func (w *binWriter) writeAsset(a sdk.Asset) {
	w.writeString(AssetToString(a))
}

// EncodeContractConfig packs the operator config into bytes so storage stays lean and no json noise leaks.
// Example payload: EncodeContractConfig(&ContractConfig{Owner: AddressFromString("hive:operator"), FeeBps: 100})
func EncodeContractConfig(cfg *ContractConfig) []byte {
	w := newWriter()
	w.writeAddress(cfg.Owner)
	w.writeUint64(cfg.FeeBps)
	w.writeAmount(cfg.MinSettlementAmount)
	w.writeUint64(cfg.MaxRecipients)
	w.writeInt64(cfg.StakeLockSeconds)
	w.writeAsset(cfg.StakeAsset)
	w.writeAsset(cfg.PayoutAsset)
	return w.bytes()
}

// EncodeMission serializes the entire Mission into deterministic bytes for storage.
// Example payload: EncodeMission(&Mission{ID: 7, Name: "Onboarding Quest", Deposited: FloatToAmount(2.5)})
func EncodeMission(m *Mission) []byte {
	w := newWriter()
	w.writeUint64(m.ID)
	w.writeAddress(m.Owner)
	w.writeString(m.Name)
	w.writeString(m.Description)
	w.writeString(m.URL)
	w.buf.WriteByte(byte(m.RewardMode))
	w.writeUint64(m.PoolID)
	w.writeAsset(m.Asset)
	w.writeAmount(m.Deposited)
	w.writeAmount(m.Distributed)
	w.writeUint64(m.ClaimCount)
	w.writeBool(m.Claimable)
	w.writeBool(m.DistributionDone)
	w.writeBytes(m.Root)
	w.writeInt64(m.RootUpdatedAt)
	w.writeBool(m.Active)
	w.writeInt64(m.CreatedAt)
	w.writeString(m.Tx)
	w.writeUint64(m.AppCount)
	w.writeUint64(m.InteractionCount)
	return w.bytes()
}

// EncodeApplication packs an Application record in field order.
func EncodeApplication(a *Application) []byte {
	w := newWriter()
	w.writeUint64(a.ID)
	w.writeUint64(a.MissionID)
	w.writeString(a.Name)
	w.writeString(a.Description)
	w.writeString(a.URL)
	w.writeBool(a.Active)
	w.writeAddress(a.Creator)
	w.writeInt64(a.CreatedAt)
	return w.bytes()
}

// EncodeInteraction packs an Interaction record in field order.
func EncodeInteraction(i *Interaction) []byte {
	w := newWriter()
	w.writeUint64(i.ID)
	w.writeUint64(i.MissionID)
	w.writeUint64(i.ApplicationID)
	w.writeString(i.Title)
	w.writeString(i.Description)
	w.writeString(i.Action)
	w.writeAmount(i.Reward)
	w.writeBool(i.Active)
	w.writeInt64(i.CreatedAt)
	return w.bytes()
}

// EncodeSettlement turns a Settlement into bytes, payout pairs inline so the
// recipient list and amounts can never drift apart in storage.
// Example payload: EncodeSettlement(&Settlement{ID: 3, Payouts: []Payout{{Recipient: AddressFromString("hive:bob"), Amount: 500}}})
func EncodeSettlement(s *Settlement) []byte {
	w := newWriter()
	w.writeUint64(s.ID)
	w.writeAddress(s.Initiator)
	w.writeVarUint(uint64(len(s.Payouts)))
	for _, p := range s.Payouts {
		w.writeAddress(p.Recipient)
		w.writeAmount(p.Amount)
	}
	w.writeString(s.TypeTag)
	w.writeAmount(s.Total)
	w.writeAmount(s.Fee)
	w.writeString(s.MetadataHash)
	w.writeInt64(s.CreatedAt)
	w.writeInt64(s.ExecutedAt)
	w.buf.WriteByte(byte(s.Status))
	return w.bytes()
}

// EncodeEscrow packs an Escrow with an optional arbiter slot.
func EncodeEscrow(e *Escrow) []byte {
	w := newWriter()
	w.writeUint64(e.ID)
	w.writeAddress(e.Payer)
	w.writeAddress(e.Payee)
	w.writeOptionalAddress(e.Arbiter)
	w.writeAmount(e.Amount)
	w.writeInt64(e.CreatedAt)
	w.writeInt64(e.Deadline)
	w.buf.WriteByte(byte(e.Status))
	w.writeString(e.Description)
	return w.bytes()
}

// EncodeRewardPool packs a RewardPool record in field order.
func EncodeRewardPool(p *RewardPool) []byte {
	w := newWriter()
	w.writeUint64(p.ID)
	w.writeString(p.Name)
	w.writeAmount(p.Allocated)
	w.writeAmount(p.Distributed)
	w.writeInt64(p.StartTime)
	w.writeInt64(p.EndTime)
	w.writeInt64(p.RatePerSecond)
	w.writeBool(p.Active)
	w.writeInt64(p.CreatedAt)
	return w.bytes()
}

// EncodeStakeRecord packs the single per-address stake blob.
func EncodeStakeRecord(s *StakeRecord) []byte {
	w := newWriter()
	w.writeAddress(s.Staker)
	w.writeAmount(s.Amount)
	w.writeInt64(s.StakedAt)
	w.writeInt64(s.LastClaimAt)
	w.writeAmount(s.TotalClaimed)
	return w.bytes()
}

// EncodeIdentity packs an Identity record in field order.
func EncodeIdentity(i *Identity) []byte {
	w := newWriter()
	w.writeString(i.ID)
	w.writeAddress(i.Owner)
	w.writeString(i.MetadataURI)
	w.writeBool(i.Active)
	w.writeInt64(i.CreatedAt)
	w.writeInt64(i.UpdatedAt)
	return w.bytes()
}

// EncodeReputationMetrics packs the full metrics blob, score included so reads
// never have to recompute.
func EncodeReputationMetrics(m *ReputationMetrics) []byte {
	w := newWriter()
	w.writeUint64(m.Score)
	w.writeUint64(m.TxCount)
	w.writeUint64(m.SuccessCount)
	w.writeUint64(m.FailureCount)
	w.writeAmount(m.Volume)
	w.writeAmount(m.AvgTxValue)
	w.writeInt64(m.LastActivityAt)
	w.writeInt64(m.AccountAge)
	w.writeUint64(m.OnboardingCount)
	w.writeUint64(m.ContributionCount)
	w.writeAmount(m.RewardsEarned)
	w.writeUint64(m.StreakDays)
	w.writeInt64(m.LastStreakUpdate)
	return w.bytes()
}

// EncodeCredential packs a Credential record in field order.
func EncodeCredential(c *Credential) []byte {
	w := newWriter()
	w.writeUint64(c.ID)
	w.writeString(c.Issuer)
	w.writeString(c.Subject)
	w.writeString(c.TypeTag)
	w.writeString(c.DataHash)
	w.writeInt64(c.IssuedAt)
	w.writeInt64(c.ExpiresAt)
	w.writeBool(c.Revoked)
	return w.bytes()
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

// readByte grabs the next byte and bumps the cursor, errors on EOF.
func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readBool restores bools stored via writeBool above.
func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// readUint64 decodes big endian integers for ids and totals.
func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// readInt64 simply casts the unsigned read, matching the writer logic.
func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// readVarUint undoes the compact varint encoding for lengths/counts.
func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// readAmount rebuilds an Amount using the int64 path so scaling stays synced.
func (r *binReader) readAmount() (Amount, error) {
	val, err := r.readInt64()
	if err != nil {
		return 0, err
	}
	return Amount(val), nil
}

// readString reads the varint length then slices out the utf8 chunk.
func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

// readBytes copies the chunk out since the backing slice may be reused.
func (r *binReader) readBytes() ([]byte, error) {
	l, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	if l == 0 {
		return nil, nil
	}
	if r.pos+int(l) > len(r.data) {
		return nil, errors.New("unexpected EOF")
	}
	out := make([]byte, l)
	copy(out, r.data[r.pos:r.pos+int(l)])
	r.pos += int(l)
	return out, nil
}

// readAddress rebuilds the wrapped address type.
func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	if err != nil {
		return sdk.Address(""), err
	}
	return AddressFromString(s), nil
}

// readOptionalAddress checks the presence byte, then returns pointer so callers know nil.
func (r *binReader) readOptionalAddress() (*sdk.Address, error) {
	ok, err := r.readBool()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	addr, err := r.readAddress()
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

// readAsset rebuilds the wrapped asset ticker.
func (r *binReader) readAsset() (sdk.Asset, error) {
	s, err := r.readString()
	if err != nil {
		return sdk.Asset(""), err
	}
	return AssetFromString(s), nil
}

// DecodeContractConfig reads back the fields emitted by EncodeContractConfig in exact order.
func DecodeContractConfig(data []byte) (*ContractConfig, error) {
	r := newReader(data)
	var cfg ContractConfig
	var err error
	if cfg.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if cfg.FeeBps, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.MinSettlementAmount, err = r.readAmount(); err != nil {
		return nil, err
	}
	if cfg.MaxRecipients, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.StakeLockSeconds, err = r.readInt64(); err != nil {
		return nil, err
	}
	if cfg.StakeAsset, err = r.readAsset(); err != nil {
		return nil, err
	}
	if cfg.PayoutAsset, err = r.readAsset(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DecodeMission is the inverse of EncodeMission and keeps the same field order.
func DecodeMission(data []byte) (*Mission, error) {
	r := newReader(data)
	var m Mission
	var err error
	if m.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if m.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if m.Name, err = r.readString(); err != nil {
		return nil, err
	}
	if m.Description, err = r.readString(); err != nil {
		return nil, err
	}
	if m.URL, err = r.readString(); err != nil {
		return nil, err
	}
	mode, err := r.readByte()
	if err != nil {
		return nil, err
	}
	m.RewardMode = RewardMode(mode)
	if m.PoolID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if m.Asset, err = r.readAsset(); err != nil {
		return nil, err
	}
	if m.Deposited, err = r.readAmount(); err != nil {
		return nil, err
	}
	if m.Distributed, err = r.readAmount(); err != nil {
		return nil, err
	}
	if m.ClaimCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if m.Claimable, err = r.readBool(); err != nil {
		return nil, err
	}
	if m.DistributionDone, err = r.readBool(); err != nil {
		return nil, err
	}
	if m.Root, err = r.readBytes(); err != nil {
		return nil, err
	}
	if m.RootUpdatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if m.Active, err = r.readBool(); err != nil {
		return nil, err
	}
	if m.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if m.Tx, err = r.readString(); err != nil {
		return nil, err
	}
	if m.AppCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if m.InteractionCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	return &m, nil
}

// DecodeApplication reads back the fields emitted by EncodeApplication.
func DecodeApplication(data []byte) (*Application, error) {
	r := newReader(data)
	var a Application
	var err error
	if a.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if a.MissionID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if a.Name, err = r.readString(); err != nil {
		return nil, err
	}
	if a.Description, err = r.readString(); err != nil {
		return nil, err
	}
	if a.URL, err = r.readString(); err != nil {
		return nil, err
	}
	if a.Active, err = r.readBool(); err != nil {
		return nil, err
	}
	if a.Creator, err = r.readAddress(); err != nil {
		return nil, err
	}
	if a.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return &a, nil
}

// DecodeInteraction reads back the fields emitted by EncodeInteraction.
func DecodeInteraction(data []byte) (*Interaction, error) {
	r := newReader(data)
	var i Interaction
	var err error
	if i.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if i.MissionID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if i.ApplicationID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if i.Title, err = r.readString(); err != nil {
		return nil, err
	}
	if i.Description, err = r.readString(); err != nil {
		return nil, err
	}
	if i.Action, err = r.readString(); err != nil {
		return nil, err
	}
	if i.Reward, err = r.readAmount(); err != nil {
		return nil, err
	}
	if i.Active, err = r.readBool(); err != nil {
		return nil, err
	}
	if i.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return &i, nil
}

// DecodeSettlement rebuilds a Settlement, payout pairs and all.
func DecodeSettlement(data []byte) (*Settlement, error) {
	r := newReader(data)
	var s Settlement
	var err error
	if s.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if s.Initiator, err = r.readAddress(); err != nil {
		return nil, err
	}
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	s.Payouts = make([]Payout, 0, count)
	for i := uint64(0); i < count; i++ {
		var p Payout
		if p.Recipient, err = r.readAddress(); err != nil {
			return nil, err
		}
		if p.Amount, err = r.readAmount(); err != nil {
			return nil, err
		}
		s.Payouts = append(s.Payouts, p)
	}
	if s.TypeTag, err = r.readString(); err != nil {
		return nil, err
	}
	if s.Total, err = r.readAmount(); err != nil {
		return nil, err
	}
	if s.Fee, err = r.readAmount(); err != nil {
		return nil, err
	}
	if s.MetadataHash, err = r.readString(); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if s.ExecutedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	status, err := r.readByte()
	if err != nil {
		return nil, err
	}
	s.Status = SettlementStatus(status)
	return &s, nil
}

// DecodeEscrow rebuilds an Escrow including the optional arbiter.
func DecodeEscrow(data []byte) (*Escrow, error) {
	r := newReader(data)
	var e Escrow
	var err error
	if e.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if e.Payer, err = r.readAddress(); err != nil {
		return nil, err
	}
	if e.Payee, err = r.readAddress(); err != nil {
		return nil, err
	}
	if e.Arbiter, err = r.readOptionalAddress(); err != nil {
		return nil, err
	}
	if e.Amount, err = r.readAmount(); err != nil {
		return nil, err
	}
	if e.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if e.Deadline, err = r.readInt64(); err != nil {
		return nil, err
	}
	status, err := r.readByte()
	if err != nil {
		return nil, err
	}
	e.Status = EscrowStatus(status)
	if e.Description, err = r.readString(); err != nil {
		return nil, err
	}
	return &e, nil
}

// DecodeRewardPool reads back the fields emitted by EncodeRewardPool.
func DecodeRewardPool(data []byte) (*RewardPool, error) {
	r := newReader(data)
	var p RewardPool
	var err error
	if p.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Name, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Allocated, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.Distributed, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.StartTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.EndTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.RatePerSecond, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.Active, err = r.readBool(); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return &p, nil
}

// DecodeStakeRecord reads back the fields emitted by EncodeStakeRecord.
func DecodeStakeRecord(data []byte) (*StakeRecord, error) {
	r := newReader(data)
	var s StakeRecord
	var err error
	if s.Staker, err = r.readAddress(); err != nil {
		return nil, err
	}
	if s.Amount, err = r.readAmount(); err != nil {
		return nil, err
	}
	if s.StakedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if s.LastClaimAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if s.TotalClaimed, err = r.readAmount(); err != nil {
		return nil, err
	}
	return &s, nil
}

// DecodeIdentity reads back the fields emitted by EncodeIdentity.
func DecodeIdentity(data []byte) (*Identity, error) {
	r := newReader(data)
	var i Identity
	var err error
	if i.ID, err = r.readString(); err != nil {
		return nil, err
	}
	if i.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if i.MetadataURI, err = r.readString(); err != nil {
		return nil, err
	}
	if i.Active, err = r.readBool(); err != nil {
		return nil, err
	}
	if i.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if i.UpdatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return &i, nil
}

// DecodeReputationMetrics reads back the fields emitted by EncodeReputationMetrics.
func DecodeReputationMetrics(data []byte) (*ReputationMetrics, error) {
	r := newReader(data)
	var m ReputationMetrics
	var err error
	if m.Score, err = r.readUint64(); err != nil {
		return nil, err
	}
	if m.TxCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if m.SuccessCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if m.FailureCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if m.Volume, err = r.readAmount(); err != nil {
		return nil, err
	}
	if m.AvgTxValue, err = r.readAmount(); err != nil {
		return nil, err
	}
	if m.LastActivityAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if m.AccountAge, err = r.readInt64(); err != nil {
		return nil, err
	}
	if m.OnboardingCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if m.ContributionCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if m.RewardsEarned, err = r.readAmount(); err != nil {
		return nil, err
	}
	if m.StreakDays, err = r.readUint64(); err != nil {
		return nil, err
	}
	if m.LastStreakUpdate, err = r.readInt64(); err != nil {
		return nil, err
	}
	return &m, nil
}

// DecodeCredential reads back the fields emitted by EncodeCredential.
func DecodeCredential(data []byte) (*Credential, error) {
	r := newReader(data)
	var c Credential
	var err error
	if c.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if c.Issuer, err = r.readString(); err != nil {
		return nil, err
	}
	if c.Subject, err = r.readString(); err != nil {
		return nil, err
	}
	if c.TypeTag, err = r.readString(); err != nil {
		return nil, err
	}
	if c.DataHash, err = r.readString(); err != nil {
		return nil, err
	}
	if c.IssuedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if c.ExpiresAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if c.Revoked, err = r.readBool(); err != nil {
		return nil, err
	}
	return &c, nil
}
