package identifier

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
)

// IsContentID accepts dag-pb CIDs that are either v0 base58btc or v1 base32.
func IsContentID(id string) bool {
	c, enc, ok := decode(id)
	if !ok || c.Type() != cid.DagProtobuf {
		return false
	}

	switch {
	case enc == multibase.Base58BTC && c.Version() == 0:
		return true
	case enc == multibase.Base32 && c.Version() == 1:
		return true
	default:
		return false
	}
}

// IsNameID accepts libp2p-key v1 CIDs encoded in base36 or base32.
func IsNameID(id string) bool {
	c, enc, ok := decode(id)
	if !ok || c.Type() != cid.Libp2pKey || c.Version() != 1 {
		return false
	}

	return enc == multibase.Base36 || enc == multibase.Base32
}

func decode(id string) (cid.Cid, multibase.Encoding, bool) {
	if id == "" {
		return cid.Undef, 0, false
	}

	c, err := cid.Decode(id)
	if err != nil {
		return cid.Undef, 0, false
	}

	enc, err := cid.ExtractEncoding(id)
	if err != nil {
		return cid.Undef, 0, false
	}

	return c, enc, true
}
