package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertPlaintext(t *testing.T) {
	body, err := DecodeAlert(h2b("0228"))
	require.NoError(t, err)

	alert := body.(*Alert)
	assert.False(t, alert.Encrypted())
	assert.Equal(t, AlertLevelFatal, alert.Level)
	assert.Equal(t, AlertDescription(40), alert.Description)
	assert.Equal(t, "  Alert: fatal, handshake_failure", alert.String())

	out, err := alert.Marshal()
	require.NoError(t, err)
	assertEqualBytes(t, h2b("0228"), out)
}

func TestAlertEncrypted(t *testing.T) {
	raw := h2b("a1b2c3d4e5")

	body, err := DecodeAlert(raw)
	require.NoError(t, err)

	alert := body.(*Alert)
	assert.True(t, alert.Encrypted())
	assert.Equal(t, "  Alert (encrypted, 5 bytes)", alert.String())

	out, err := alert.Marshal()
	require.NoError(t, err)
	assertEqualBytes(t, raw, out)
}

func TestChangeCipherSpecWrongSize(t *testing.T) {
	_, err := DecodeChangeCipherSpec(h2b("0101"))
	assert.Error(t, err)

	_, err = DecodeChangeCipherSpec(nil)
	assert.Error(t, err)
}

func TestApplicationDataEmpty(t *testing.T) {
	body, err := DecodeApplicationData(nil)
	require.NoError(t, err)

	out, err := body.Marshal()
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "  Application Data (0 bytes)", body.String())
}

func TestHandshakeCoalescedMessages(t *testing.T) {
	// client_hello (2 bytes) followed by finished (1 byte) in one record.
	raw := h2b("01000002aabb" + "14000001cc")

	body, err := DecodeHandshake(raw)
	require.NoError(t, err)

	hs := body.(*Handshake)
	require.Len(t, hs.Messages, 2)
	assert.Equal(t, HandshakeTypeClientHello, hs.Messages[0].Type)
	assertEqualBytes(t, h2b("aabb"), hs.Messages[0].Body)
	assert.Equal(t, HandshakeTypeFinished, hs.Messages[1].Type)
	assert.Equal(t, "  Handshake: client_hello (2 bytes)\n  Handshake: finished (1 bytes)", hs.String())

	out, err := hs.Marshal()
	require.NoError(t, err)
	assertEqualBytes(t, raw, out)
}

func TestHandshakeEmptyFragment(t *testing.T) {
	body, err := DecodeHandshake(nil)
	require.NoError(t, err)

	hs := body.(*Handshake)
	assert.Empty(t, hs.Messages)

	out, err := hs.Marshal()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestHandshakeTruncated(t *testing.T) {
	// Three bytes cannot hold the 4-byte message prefix.
	_, err := DecodeHandshake(h2b("010000"))
	assert.Error(t, err)

	// Prefix declares 4 body bytes, fragment carries 1.
	_, err = DecodeHandshake(h2b("0100000401"))
	assert.Error(t, err)
}

func TestHeartbeatRoundTrip(t *testing.T) {
	raw := h2b("010002aabb" + "ccddee") // request, 2-byte payload, 3-byte padding

	body, err := DecodeHeartbeat(raw)
	require.NoError(t, err)

	hb := body.(*Heartbeat)
	assert.Equal(t, HeartbeatRequest, hb.Type)
	assertEqualBytes(t, h2b("aabb"), hb.Payload)
	assertEqualBytes(t, h2b("ccddee"), hb.Padding)
	assert.Equal(t, "  Heartbeat: heartbeat_request (2 payload bytes, 3 padding)", hb.String())

	out, err := hb.Marshal()
	require.NoError(t, err)
	assertEqualBytes(t, raw, out)
}

func TestHeartbeatOverclaimedPayload(t *testing.T) {
	// Declares 0x4000 payload bytes, carries one. The classic heartbleed
	// shape must be rejected, not read past the fragment.
	_, err := DecodeHeartbeat(h2b("014000aa"))
	assert.Error(t, err)

	_, err = DecodeHeartbeat(h2b("0100"))
	assert.Error(t, err)
}
