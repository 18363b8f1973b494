package sdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ledgerScale is the milli-unit precision of the host ledger (200.000 hive = 200000).
const ledgerScale = 1000

// RevertError is the panic value the mock host raises for abort/revert so test
// harnesses can recover it and inspect the machine-readable symbol.
type RevertError struct {
	Symbol string
	Msg    string
}

func (e *RevertError) Error() string {
	return e.Symbol + ": " + e.Msg
}

// MockHost is an in-memory stand-in for the chain runtime: kv storage, a tiny
// ledger with transfer.allow enforcement, and a settable env. Reverts surface
// as panics carrying *RevertError; callers snapshot/restore around entrypoints
// to mirror the chain's atomic rollback.
type MockHost struct {
	ContractAccount Address

	kv            map[string]string
	balances      map[string]int64
	sender        Address
	intents       []Intent
	txSeq         uint64
	now           int64
	blockHeight   uint64
	allowanceUsed int64
	logs          []string
}

// MockSnapshot captures everything a rolled-back transaction must restore.
type MockSnapshot struct {
	kv            map[string]string
	balances      map[string]int64
	allowanceUsed int64
}

func NewMockHost() *MockHost {
	return &MockHost{
		ContractAccount: Address("contract:questhive"),
		kv:              map[string]string{},
		balances:        map[string]int64{},
		now:             1735689600, // 2025-01-01T00:00:00Z
		blockHeight:     1,
	}
}

// BeginTx starts a fresh transaction context: new tx id, new sender, new
// intents, allowance counter reset.
func (m *MockHost) BeginTx(sender Address, intents []Intent) {
	m.txSeq++
	m.sender = sender
	m.intents = intents
	m.allowanceUsed = 0
	m.blockHeight++
}

// SetNow pins the block timestamp (unix seconds) for expiry/lock tests.
func (m *MockHost) SetNow(unix int64) {
	m.now = unix
}

// Now returns the current mocked block time.
func (m *MockHost) Now() int64 {
	return m.now
}

// AdvanceTime moves the block clock forward by d seconds.
func (m *MockHost) AdvanceTime(d int64) {
	m.now += d
}

// Deposit credits an account out of thin air, like the chain's deposit op.
func (m *MockHost) Deposit(addr Address, amount int64, asset Asset) {
	m.balances[balanceKey(addr, asset)] += amount
}

// BalanceOf reads a ledger balance without going through the Host interface.
func (m *MockHost) BalanceOf(addr Address, asset Asset) int64 {
	return m.balances[balanceKey(addr, asset)]
}

// Snapshot copies kv and ledger state so a failed call can be rolled back.
func (m *MockHost) Snapshot() *MockSnapshot {
	kv := make(map[string]string, len(m.kv))
	for k, v := range m.kv {
		kv[k] = v
	}
	balances := make(map[string]int64, len(m.balances))
	for k, v := range m.balances {
		balances[k] = v
	}
	return &MockSnapshot{kv: kv, balances: balances, allowanceUsed: m.allowanceUsed}
}

// Restore rewinds state to a snapshot taken before a failed call.
func (m *MockHost) Restore(s *MockSnapshot) {
	m.kv = s.kv
	m.balances = s.balances
	m.allowanceUsed = s.allowanceUsed
}

// Logs returns every line emitted via Log since construction.
func (m *MockHost) Logs() []string {
	return m.logs
}

func balanceKey(addr Address, asset Asset) string {
	return addr.String() + "/" + asset.String()
}

// --- Host interface ---

func (m *MockHost) Log(msg string) {
	m.logs = append(m.logs, msg)
}

func (m *MockHost) StateSet(key, value string) {
	m.kv[key] = value
}

func (m *MockHost) StateGet(key string) *string {
	val, ok := m.kv[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockHost) StateDelete(key string) {
	delete(m.kv, key)
}

func (m *MockHost) EnvJSON() string {
	env := map[string]interface{}{
		"contract.id":                m.ContractAccount.String(),
		"tx.id":                      m.txId(),
		"tx.index":                   0,
		"tx.op_index":                0,
		"block.id":                   fmt.Sprintf("block-%d", m.blockHeight),
		"block.height":               m.blockHeight,
		"block.timestamp":            strconv.FormatInt(m.now, 10),
		"payer":                      m.sender.String(),
		"msg.sender":                 m.sender.String(),
		"msg.caller":                 m.sender.String(),
		"msg.required_auths":         []string{m.sender.String()},
		"msg.required_posting_auths": []string{},
		"intents":                    m.intents,
	}
	b, _ := json.Marshal(env)
	return string(b)
}

func (m *MockHost) EnvKey(key string) *string {
	var val string
	switch key {
	case "tx.id":
		val = m.txId()
	case "block.timestamp":
		val = strconv.FormatInt(m.now, 10)
	case "block.height":
		val = strconv.FormatUint(m.blockHeight, 10)
	case "contract.id":
		val = m.ContractAccount.String()
	default:
		return nil
	}
	return &val
}

func (m *MockHost) Balance(addr Address, asset Asset) int64 {
	return m.balances[balanceKey(addr, asset)]
}

// Draw enforces the transfer.allow intent like the real ledger: the caller
// must have granted at least amount of the asset, and must actually hold it.
func (m *MockHost) Draw(amount int64, asset Asset) error {
	allowed := int64(0)
	for _, intent := range m.intents {
		if intent.Type != "transfer.allow" || Asset(intent.Args["token"]) != asset {
			continue
		}
		limit, err := strconv.ParseFloat(intent.Args["limit"], 64)
		if err != nil {
			continue
		}
		allowed = int64(limit * ledgerScale)
		break
	}
	if m.allowanceUsed+amount > allowed {
		return errors.New("draw exceeds transfer.allow limit")
	}
	senderKey := balanceKey(m.sender, asset)
	if m.balances[senderKey] < amount {
		return errors.New("insufficient sender balance")
	}
	m.allowanceUsed += amount
	m.balances[senderKey] -= amount
	m.balances[balanceKey(m.ContractAccount, asset)] += amount
	return nil
}

func (m *MockHost) Transfer(to Address, amount int64, asset Asset) error {
	contractKey := balanceKey(m.ContractAccount, asset)
	if m.balances[contractKey] < amount {
		return errors.New("insufficient contract balance")
	}
	m.balances[contractKey] -= amount
	m.balances[balanceKey(to, asset)] += amount
	return nil
}

func (m *MockHost) Abort(msg string) {
	panic(&RevertError{Symbol: "abort", Msg: msg})
}

func (m *MockHost) Revert(msg string, symbol string) {
	panic(&RevertError{Symbol: symbol, Msg: msg})
}

func (m *MockHost) txId() string {
	return fmt.Sprintf("tx-%d", m.txSeq)
}
