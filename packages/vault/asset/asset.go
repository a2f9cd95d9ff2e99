package asset

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/mr-tron/base58"
)

// region Asset ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Length represents the length of an Asset identifier (amount of bytes).
const Length = 32

// Asset represents the globally unique identifier of a fungible token type that can be taken into custody.
type Asset [Length]byte

// FromBytes unmarshals an Asset from a sequence of bytes.
func FromBytes(bytes []byte) (a Asset, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	a, err = FromMarshalUtil(marshalUtil)
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// FromBase58 creates an Asset from a base58 encoded string.
func FromBase58(base58String string) (a Asset, err error) {
	decodedBytes, err := base58.Decode(base58String)
	if err != nil {
		err = errors.Wrap(err, "failed to decode base58 encoded Asset")
		return
	}

	if a, _, err = FromBytes(decodedBytes); err != nil {
		err = errors.Wrap(err, "failed to parse Asset from bytes")
		return
	}

	return
}

// FromMarshalUtil parses an Asset from the given MarshalUtil.
func FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (a Asset, err error) {
	assetBytes, err := marshalUtil.ReadBytes(Length)
	if err != nil {
		err = errors.Wrap(err, "failed to parse Asset")
		return
	}
	copy(a[:], assetBytes)

	return
}

// Bytes marshals the Asset into a sequence of bytes.
func (a Asset) Bytes() []byte {
	return a[:]
}

// Base58 returns a base58 encoded version of the Asset.
func (a Asset) Base58() string {
	return base58.Encode(a.Bytes())
}

// String creates a human readable string of the Asset.
func (a Asset) String() string {
	return a.Base58()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
