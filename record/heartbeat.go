package record

import (
	"encoding/binary"
	"fmt"
)

// HeartbeatMessageType is the first byte of a heartbeat message
// (RFC 6520).
type HeartbeatMessageType uint8

const (
	HeartbeatRequest  HeartbeatMessageType = 1
	HeartbeatResponse HeartbeatMessageType = 2
)

func (t HeartbeatMessageType) String() string {
	switch t {
	case HeartbeatRequest:
		return "heartbeat_request"
	case HeartbeatResponse:
		return "heartbeat_response"
	}
	return fmt.Sprintf("unknown (%d)", uint8(t))
}

// Heartbeat is a heartbeat fragment: type(1) + payload_length(2) +
// payload + padding. Padding is kept so re-encoding is byte-exact.
type Heartbeat struct {
	Type    HeartbeatMessageType
	Payload []byte
	Padding []byte
}

// DecodeHeartbeat decodes a heartbeat fragment. A declared payload
// length reaching past the fragment is rejected rather than read.
func DecodeHeartbeat(fragment []byte) (Body, error) {
	if len(fragment) < 3 {
		return nil, fmt.Errorf("heartbeat fragment too short: %d bytes", len(fragment))
	}

	payloadLen := int(binary.BigEndian.Uint16(fragment[1:3]))
	if len(fragment)-3 < payloadLen {
		return nil, fmt.Errorf("heartbeat declares %d payload bytes, %d left in fragment", payloadLen, len(fragment)-3)
	}

	payload := make([]byte, payloadLen)
	copy(payload, fragment[3:3+payloadLen])
	padding := make([]byte, len(fragment)-3-payloadLen)
	copy(padding, fragment[3+payloadLen:])

	return &Heartbeat{
		Type:    HeartbeatMessageType(fragment[0]),
		Payload: payload,
		Padding: padding,
	}, nil
}

func (h *Heartbeat) Marshal() ([]byte, error) {
	if len(h.Payload) > 0xffff {
		return nil, fmt.Errorf("heartbeat payload too large for 16-bit length: %d bytes", len(h.Payload))
	}

	out := make([]byte, 3, 3+len(h.Payload)+len(h.Padding))
	out[0] = uint8(h.Type)
	binary.BigEndian.PutUint16(out[1:3], uint16(len(h.Payload)))
	out = append(out, h.Payload...)
	return append(out, h.Padding...), nil
}

func (h *Heartbeat) String() string {
	return fmt.Sprintf("  Heartbeat: %s (%d payload bytes, %d padding)", h.Type, len(h.Payload), len(h.Padding))
}
