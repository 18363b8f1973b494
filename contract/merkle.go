package contract

import (
	"bytes"

	"golang.org/x/crypto/sha3"

	"questhive/sdk"
)

const merkleHashSize = 32

// keccak256 is the hash every participant tree is built with off-chain, so
// verification has to match it byte for byte.
func keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// participantLeaf binds an address to a campaign execution id. The execution id
// goes in big-endian so off-chain tree builders have one canonical encoding.
func participantLeaf(addr sdk.Address, executionID uint64) []byte {
	var idBuf [8]byte
	idBuf[0] = byte(executionID >> 56)
	idBuf[1] = byte(executionID >> 48)
	idBuf[2] = byte(executionID >> 40)
	idBuf[3] = byte(executionID >> 32)
	idBuf[4] = byte(executionID >> 24)
	idBuf[5] = byte(executionID >> 16)
	idBuf[6] = byte(executionID >> 8)
	idBuf[7] = byte(executionID)
	return keccak256([]byte(AddressToString(addr)), idBuf[:])
}

// hashPair combines two nodes commutatively: the smaller one hashes first, so
// proofs carry no left/right flags.
func hashPair(a, b []byte) []byte {
	if bytes.Compare(a, b) <= 0 {
		return keccak256(a, b)
	}
	return keccak256(b, a)
}

// isZeroRoot treats nil, empty and all-zero roots the same: not published.
func isZeroRoot(root []byte) bool {
	if len(root) != merkleHashSize {
		return true
	}
	for _, b := range root {
		if b != 0 {
			return false
		}
	}
	return true
}

// verifyMerkleProof walks the proof bottom-up and compares against root. It
// returns false for a missing root or malformed proof element instead of
// reverting; callers decide whether that is an error.
func verifyMerkleProof(proof [][]byte, root []byte, leaf []byte) bool {
	if isZeroRoot(root) || len(leaf) != merkleHashSize {
		return false
	}
	computed := leaf
	for _, elem := range proof {
		if len(elem) != merkleHashSize {
			return false
		}
		computed = hashPair(computed, elem)
	}
	return bytes.Equal(computed, root)
}
