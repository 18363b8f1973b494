package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"questhive/sdk"
)

// buildThreeLeafTree mirrors the off-chain builder: pair the first two leaves,
// then fold in the third.
func buildThreeLeafTree(l1, l2, l3 []byte) (root []byte, proofs [3][][]byte) {
	n12 := hashPair(l1, l2)
	root = hashPair(n12, l3)
	proofs[0] = [][]byte{l2, l3}
	proofs[1] = [][]byte{l1, l3}
	proofs[2] = [][]byte{n12}
	return root, proofs
}

func TestMerkleProofRoundTrip(t *testing.T) {
	l1 := participantLeaf(sdk.Address(alice), 1)
	l2 := participantLeaf(sdk.Address(bob), 2)
	l3 := participantLeaf(sdk.Address(carol), 3)
	root, proofs := buildThreeLeafTree(l1, l2, l3)

	assert.True(t, verifyMerkleProof(proofs[0], root, l1))
	assert.True(t, verifyMerkleProof(proofs[1], root, l2))
	assert.True(t, verifyMerkleProof(proofs[2], root, l3))
}

func TestMerkleProofWrongLeaf(t *testing.T) {
	l1 := participantLeaf(sdk.Address(alice), 1)
	l2 := participantLeaf(sdk.Address(bob), 2)
	l3 := participantLeaf(sdk.Address(carol), 3)
	root, proofs := buildThreeLeafTree(l1, l2, l3)

	outsider := participantLeaf(sdk.Address(dave), 1)
	assert.False(t, verifyMerkleProof(proofs[0], root, outsider))

	// Right address, wrong execution id.
	wrongID := participantLeaf(sdk.Address(alice), 2)
	assert.False(t, verifyMerkleProof(proofs[0], root, wrongID))
}

func TestMerkleProofZeroRoot(t *testing.T) {
	l1 := participantLeaf(sdk.Address(alice), 1)
	zero := make([]byte, merkleHashSize)
	assert.False(t, verifyMerkleProof(nil, zero, l1))
	assert.False(t, verifyMerkleProof(nil, nil, l1))
	assert.False(t, verifyMerkleProof(nil, []byte{0x01}, l1))
}

func TestMerkleProofMalformedElement(t *testing.T) {
	l1 := participantLeaf(sdk.Address(alice), 1)
	l2 := participantLeaf(sdk.Address(bob), 2)
	root := hashPair(l1, l2)

	assert.True(t, verifyMerkleProof([][]byte{l2}, root, l1))
	assert.False(t, verifyMerkleProof([][]byte{l2[:16]}, root, l1))
	assert.False(t, verifyMerkleProof([][]byte{nil}, root, l1))
}

func TestHashPairCommutes(t *testing.T) {
	a := keccak256([]byte("a"))
	b := keccak256([]byte("b"))
	assert.Equal(t, hashPair(a, b), hashPair(b, a))
}
