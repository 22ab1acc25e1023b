package record

import "fmt"

// ChangeCipherSpec is the single-byte change_cipher_spec message
// (RFC 5246 section 7.1).
type ChangeCipherSpec struct {
	MessageType uint8 // always 1 on well-formed wires
}

// DecodeChangeCipherSpec decodes a change_cipher_spec fragment, which is
// exactly one byte.
func DecodeChangeCipherSpec(fragment []byte) (Body, error) {
	if len(fragment) != 1 {
		return nil, fmt.Errorf("change_cipher_spec fragment must be 1 byte, got %d", len(fragment))
	}
	return &ChangeCipherSpec{MessageType: fragment[0]}, nil
}

func (c *ChangeCipherSpec) Marshal() ([]byte, error) {
	return []byte{c.MessageType}, nil
}

func (c *ChangeCipherSpec) String() string {
	return fmt.Sprintf("  Change Cipher Spec: %d", c.MessageType)
}
