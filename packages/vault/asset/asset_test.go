package asset

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsset_FromBytes(t *testing.T) {
	randomAsset := randomAsset(t)

	restoredAsset, consumedBytes, err := FromBytes(randomAsset.Bytes())
	require.NoError(t, err)
	assert.Equal(t, Length, consumedBytes)
	assert.Equal(t, randomAsset, restoredAsset)

	_, _, err = FromBytes(randomAsset.Bytes()[:Length-1])
	assert.Error(t, err)
}

func TestAsset_FromBase58(t *testing.T) {
	randomAsset := randomAsset(t)

	restoredAsset, err := FromBase58(randomAsset.Base58())
	require.NoError(t, err)
	assert.Equal(t, randomAsset, restoredAsset)

	_, err = FromBase58("not-base58!")
	assert.Error(t, err)
}

func TestAsset_String(t *testing.T) {
	randomAsset := randomAsset(t)

	assert.Equal(t, randomAsset.Base58(), randomAsset.String())
}

func randomAsset(t *testing.T) (a Asset) {
	_, err := rand.Read(a[:])
	require.NoError(t, err)

	return a
}
