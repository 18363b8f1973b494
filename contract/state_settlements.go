package contract

import "questhive/sdk"

// saveSettlement persists the encoded settlement blob.
func saveSettlement(s *Settlement) {
	sdk.StateSetObject(settlementKey(s.ID), string(EncodeSettlement(s)))
}

// loadSettlement decodes the stored settlement, second return tells existence.
func loadSettlement(id uint64) (*Settlement, bool) {
	ptr := sdk.StateGetObject(settlementKey(id))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	s, err := DecodeSettlement([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode settlement")
	}
	return s, true
}

// requireSettlement reverts with NotFound when the id is unknown.
func requireSettlement(id uint64) *Settlement {
	s, ok := loadSettlement(id)
	if !ok {
		fail(ErrNotFound, "settlement not found: "+UInt64ToString(id))
	}
	return s
}

// saveEscrow persists the encoded escrow blob.
func saveEscrow(e *Escrow) {
	sdk.StateSetObject(escrowKey(e.ID), string(EncodeEscrow(e)))
}

// loadEscrow decodes the stored escrow, second return tells existence.
func loadEscrow(id uint64) (*Escrow, bool) {
	ptr := sdk.StateGetObject(escrowKey(id))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	e, err := DecodeEscrow([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode escrow")
	}
	return e, true
}

// requireEscrow reverts with NotFound when the id is unknown.
func requireEscrow(id uint64) *Escrow {
	e, ok := loadEscrow(id)
	if !ok {
		fail(ErrNotFound, "escrow not found: "+UInt64ToString(id))
	}
	return e
}
