package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderBytes(t *testing.T) {
	raw := h2b("1603030009010000050102030405")

	chain, err := Parse(raw)
	require.NoError(t, err)

	encoded, err := chain.Header.Bytes()
	require.NoError(t, err)
	assertEqualBytes(t, raw, encoded)
	assert.Equal(t, chain.Header.TotalLength(), len(encoded))
}

func TestBodyDecodeErrorPropagated(t *testing.T) {
	// A 2-byte change_cipher_spec fragment fails in the body decoder,
	// not in the framing layer.
	chain, err := Parse(h2b("14030300020101"))
	assert.Nil(t, chain)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "change_cipher_spec")

	var boundsErr *BoundsError
	assert.NotErrorAs(t, err, &boundsErr)
}

func TestBoundsErrorMessage(t *testing.T) {
	err := &BoundsError{Offset: 12, Need: 5, Have: 3}
	assert.Equal(t, "buffer too short at offset 12: need 5 bytes, have 3", err.Error())
}

func TestUnrecognizedTagErrorMessage(t *testing.T) {
	err := &UnrecognizedTagError{Tag: 0x19, Offset: 6}
	assert.Equal(t, "unrecognized content type 0x19 at offset 6", err.Error())
}
