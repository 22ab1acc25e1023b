package record

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func h2b(h string) []byte {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic(err)
	}
	return b
}

func assertEqualBytes(t *testing.T, want, got []byte) {
	t.Helper()
	assert.Equal(t, want, got, "Not Equal!\n%x\n%x", want, got)
}

// One frame per content type, back to back in one buffer.
const mixedHex = "1603030009010000050102030405" + // handshake: client_hello, 5-byte stub
	"140303000101" + // change_cipher_spec
	"15030300020100" + // alert: warning, close_notify
	"170303000448692121" + // application data "Hi!!"
	"1803030006010002aabbcc" // heartbeat: request, 2-byte payload, 1-byte padding
