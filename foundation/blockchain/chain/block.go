package chain

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Fingerprint represents the 64 bit digest of a block's fields.
type Fingerprint uint64

// ZeroFingerprint is the back reference stored in the genesis block. It is
// not distinguished from a real fingerprint that happens to be zero.
const ZeroFingerprint Fingerprint = 0

// String returns the fingerprint as a 0x prefixed hex string.
func (f Fingerprint) String() string {
	return hexutil.EncodeUint64(uint64(f))
}

// =============================================================================

// Block represents a single entry in the ledger. The fields are unexported so
// a block can't change once it has been constructed.
type Block struct {
	index   uint64
	payload string
	backRef Fingerprint
}

// NewBlock constructs a block. Any index, payload and back reference is
// accepted.
func NewBlock(index uint64, payload string, backRef Fingerprint) Block {
	return Block{
		index:   index,
		payload: payload,
		backRef: backRef,
	}
}

// Index returns the position of the block in the chain.
func (b Block) Index() uint64 {
	return b.index
}

// Payload returns the opaque data stored in the block.
func (b Block) Payload() string {
	return b.payload
}

// BackReference returns the fingerprint of the previous block.
func (b Block) BackReference() Fingerprint {
	return b.backRef
}

// Fingerprint returns the xxHash64 of the decimal index, the payload and the
// decimal back reference written one after the other.
func (b Block) Fingerprint() Fingerprint {

	// NOTE: There is no separator between the fields. Index 1 with payload
	// "2" and index 12 with an empty payload hash the same bytes when the
	// back references match. This is a known weakness of the format.

	d := xxhash.New()
	d.WriteString(strconv.FormatUint(b.index, 10))
	d.WriteString(b.payload)
	d.WriteString(strconv.FormatUint(uint64(b.backRef), 10))

	return Fingerprint(d.Sum64())
}

// String implements the fmt.Stringer interface for diagnostic output.
func (b Block) String() string {
	return fmt.Sprintf("Block[%d]\n\tPayload: %q\n\tBackRef: %s\n", b.index, b.payload, b.backRef)
}

// =============================================================================

// BlockData represents the exported form of a block.
type BlockData struct {
	Index         uint64 `json:"index"`
	Payload       string `json:"payload"`
	BackReference string `json:"back_reference"`
	Fingerprint   string `json:"fingerprint"`
}

// NewBlockData constructs the value to export.
func NewBlockData(block Block) BlockData {
	bd := BlockData{
		Index:         block.index,
		Payload:       block.payload,
		BackReference: block.backRef.String(),
		Fingerprint:   block.Fingerprint().String(),
	}

	return bd
}

// ToBlock converts a BlockData into a Block. The stored fingerprint must
// match the fingerprint of the decoded fields.
func ToBlock(bd BlockData) (Block, error) {
	backRef, err := hexutil.DecodeUint64(bd.BackReference)
	if err != nil {
		return Block{}, fmt.Errorf("block %d: decoding back reference: %w", bd.Index, err)
	}

	nb := NewBlock(bd.Index, bd.Payload, Fingerprint(backRef))

	if fp := nb.Fingerprint().String(); fp != bd.Fingerprint {
		return Block{}, fmt.Errorf("block %d: fingerprint does not match fields, got %s, exp %s", bd.Index, bd.Fingerprint, fp)
	}

	return nb, nil
}
