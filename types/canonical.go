package types

import (
	"time"

	tmbytes "github.com/tendermint/light-client/libs/bytes"
	tmtime "github.com/tendermint/light-client/types/time"
)

// Canonical* wraps the structs in types for amino encoding them for use in
// SignBytes / the Signable interface.

// TimeFormat is used for generating the sigs
const TimeFormat = time.RFC3339Nano

type CanonicalBlockID struct {
	Hash        tmbytes.HexBytes       `json:"hash,omitempty"`
	PartsHeader CanonicalPartSetHeader `json:"parts,omitempty"`
}

type CanonicalPartSetHeader struct {
	Hash  tmbytes.HexBytes `json:"hash,omitempty"`
	Total int              `json:"total,omitempty"`
}

type CanonicalVote struct {
	Type      SignedMsgType    `json:"type"` // type alias for byte
	Height    int64            `json:"height" binary:"fixed64"`
	Round     int64            `json:"round" binary:"fixed64"`
	BlockID   CanonicalBlockID `json:"block_id"`
	Timestamp time.Time        `json:"timestamp"`
	ChainID   string           `json:"@chain_id"`
}

//-----------------------------------
// Canonicalize the structs

func CanonicalizeBlockID(blockID BlockID) CanonicalBlockID {
	return CanonicalBlockID{
		Hash:        blockID.Hash,
		PartsHeader: CanonicalizePartSetHeader(blockID.PartsHeader),
	}
}

func CanonicalizePartSetHeader(psh PartSetHeader) CanonicalPartSetHeader {
	return CanonicalPartSetHeader{
		psh.Hash,
		psh.Total,
	}
}

func CanonicalizeVote(chainID string, vote *Vote) CanonicalVote {
	return CanonicalVote{
		Type:      vote.Type,
		Height:    vote.Height,
		Round:     int64(vote.Round), // cast int->int64 to make amino encode it fixed64 (does not work for int)
		BlockID:   CanonicalizeBlockID(vote.BlockID),
		Timestamp: vote.Timestamp,
		ChainID:   chainID,
	}
}

// CanonicalTime can be used to stringify time in a canonical way.
func CanonicalTime(t time.Time) string {
	// Note that sending time over amino resets it to
	// local time, we need to force UTC here, so the
	// signatures match
	return tmtime.Canonical(t).Format(TimeFormat)
}
