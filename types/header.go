package types

import (
	"fmt"
	"time"

	"github.com/tendermint/light-client/crypto"
	"github.com/tendermint/light-client/crypto/merkle"
	tmbytes "github.com/tendermint/light-client/libs/bytes"
	lerr "github.com/tendermint/light-client/libs/errors"
)

// MaxChainIDLen is a maximum length of the chain ID.
const MaxChainIDLen = 50

// Header defines the structure of a block header, reduced to the fields the
// light client needs to identify a header and the validator sets around it.
type Header struct {
	// basic block info
	ChainID string    `json:"chain_id"`
	Height  int64     `json:"height"`
	Time    time.Time `json:"time"`

	// prev block info
	LastBlockID BlockID `json:"last_block_id"`

	// hashes of block data
	LastCommitHash tmbytes.HexBytes `json:"last_commit_hash"` // commit from validators from the last block
	DataHash       tmbytes.HexBytes `json:"data_hash"`        // transactions

	// hashes from the app output from the prev block
	ValidatorsHash     tmbytes.HexBytes `json:"validators_hash"`      // validators for the current block
	NextValidatorsHash tmbytes.HexBytes `json:"next_validators_hash"` // validators for the next block
	AppHash            tmbytes.HexBytes `json:"app_hash"`             // state after txs from the previous block

	ProposerAddress Address `json:"proposer_address"` // original proposer of the block
}

// Hash returns the hash of the header.
// It computes a Merkle tree from the header fields
// ordered as they appear in the Header.
// Returns nil if ValidatorsHash is missing,
// since a Header is not valid unless there is
// a ValidatorsHash (corresponding to the validator set).
func (h *Header) Hash() tmbytes.HexBytes {
	if h == nil || len(h.ValidatorsHash) == 0 {
		return nil
	}
	return merkle.SimpleHashFromByteSlices([][]byte{
		cdcEncode(h.ChainID),
		cdcEncode(h.Height),
		cdcEncode(h.Time),
		cdcEncode(h.LastBlockID),
		cdcEncode(h.LastCommitHash),
		cdcEncode(h.DataHash),
		cdcEncode(h.ValidatorsHash),
		cdcEncode(h.NextValidatorsHash),
		cdcEncode(h.AppHash),
		cdcEncode(h.ProposerAddress),
	})
}

// ValidateBasic performs stateless validation on a Header.
func (h *Header) ValidateBasic() error {
	if h == nil {
		return lerr.New(lerr.Parse, "nil header")
	}
	if len(h.ChainID) > MaxChainIDLen {
		return lerr.Newf(lerr.Length, "chainID is too long; got: %d, max: %d", len(h.ChainID), MaxChainIDLen)
	}
	if h.Height < 0 {
		return lerr.New(lerr.OutOfRange, "negative Height")
	}
	if err := h.LastBlockID.ValidateBasic(); err != nil {
		return fmt.Errorf("wrong LastBlockID: %v", err)
	}
	if err := ValidateHash(h.LastCommitHash); err != nil {
		return fmt.Errorf("wrong LastCommitHash: %v", err)
	}
	if err := ValidateHash(h.DataHash); err != nil {
		return fmt.Errorf("wrong DataHash: %v", err)
	}
	if err := ValidateHash(h.ValidatorsHash); err != nil {
		return fmt.Errorf("wrong ValidatorsHash: %v", err)
	}
	if err := ValidateHash(h.NextValidatorsHash); err != nil {
		return fmt.Errorf("wrong NextValidatorsHash: %v", err)
	}
	if err := ValidateHash(h.AppHash); err != nil {
		return fmt.Errorf("wrong AppHash: %v", err)
	}
	if len(h.ProposerAddress) > 0 && len(h.ProposerAddress) != crypto.AddressSize {
		return lerr.Newf(lerr.Length,
			"invalid ProposerAddress length; got: %d, expected: %d",
			len(h.ProposerAddress), crypto.AddressSize,
		)
	}
	return nil
}

// StringIndented returns a string representation of the header
func (h *Header) StringIndented(indent string) string {
	if h == nil {
		return "nil-Header"
	}
	return fmt.Sprintf(`Header{
%s  ChainID:        %v
%s  Height:         %v
%s  Time:           %v
%s  LastBlockID:    %v
%s  LastCommit:     %v
%s  Data:           %v
%s  Validators:     %v
%s  NextValidators: %v
%s  App:            %v
%s  Proposer:       %v
%s}#%v`,
		indent, h.ChainID,
		indent, h.Height,
		indent, h.Time,
		indent, h.LastBlockID,
		indent, h.LastCommitHash,
		indent, h.DataHash,
		indent, h.ValidatorsHash,
		indent, h.NextValidatorsHash,
		indent, h.AppHash,
		indent, h.ProposerAddress,
		indent, h.Hash())
}
