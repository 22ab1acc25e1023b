package record

import (
	"fmt"
	"strings"
)

// HandshakeType is the one-byte message type of a handshake message.
type HandshakeType uint8

const (
	HandshakeTypeHelloRequest       HandshakeType = 0
	HandshakeTypeClientHello        HandshakeType = 1
	HandshakeTypeServerHello        HandshakeType = 2
	HandshakeTypeNewSessionTicket   HandshakeType = 4
	HandshakeTypeEncryptedExts      HandshakeType = 8
	HandshakeTypeCertificate        HandshakeType = 11
	HandshakeTypeServerKeyExchange  HandshakeType = 12
	HandshakeTypeCertificateRequest HandshakeType = 13
	HandshakeTypeServerHelloDone    HandshakeType = 14
	HandshakeTypeCertificateVerify  HandshakeType = 15
	HandshakeTypeClientKeyExchange  HandshakeType = 16
	HandshakeTypeFinished           HandshakeType = 20
)

var handshakeTypeNames = map[HandshakeType]string{
	HandshakeTypeHelloRequest:       "hello_request",
	HandshakeTypeClientHello:        "client_hello",
	HandshakeTypeServerHello:        "server_hello",
	HandshakeTypeNewSessionTicket:   "new_session_ticket",
	HandshakeTypeEncryptedExts:      "encrypted_extensions",
	HandshakeTypeCertificate:        "certificate",
	HandshakeTypeServerKeyExchange:  "server_key_exchange",
	HandshakeTypeCertificateRequest: "certificate_request",
	HandshakeTypeServerHelloDone:    "server_hello_done",
	HandshakeTypeCertificateVerify:  "certificate_verify",
	HandshakeTypeClientKeyExchange:  "client_key_exchange",
	HandshakeTypeFinished:           "finished",
}

func (t HandshakeType) String() string {
	if name, ok := handshakeTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", uint8(t))
}

// HandshakeMessage is one msg_type(1) + length(3) + body unit. The
// length prefix is regenerated from Body at marshal time.
type HandshakeMessage struct {
	Type HandshakeType
	Body []byte
}

// Handshake is a handshake fragment: one or more handshake messages
// coalesced into a single record. An empty fragment is an empty message
// list.
type Handshake struct {
	Messages []HandshakeMessage
}

// DecodeHandshake decodes a handshake fragment. Every byte must belong
// to some complete message.
func DecodeHandshake(fragment []byte) (Body, error) {
	var messages []HandshakeMessage

	for off := 0; off < len(fragment); {
		if len(fragment)-off < 4 {
			return nil, fmt.Errorf("handshake message at offset %d truncated: %d bytes left", off, len(fragment)-off)
		}

		msgType := HandshakeType(fragment[off])
		msgLen := int(fragment[off+1])<<16 | int(fragment[off+2])<<8 | int(fragment[off+3])
		off += 4

		if len(fragment)-off < msgLen {
			return nil, fmt.Errorf("handshake message declares %d bytes, %d left in fragment", msgLen, len(fragment)-off)
		}

		body := make([]byte, msgLen)
		copy(body, fragment[off:off+msgLen])
		messages = append(messages, HandshakeMessage{Type: msgType, Body: body})
		off += msgLen
	}

	return &Handshake{Messages: messages}, nil
}

func (h *Handshake) Marshal() ([]byte, error) {
	size := 0
	for _, msg := range h.Messages {
		size += 4 + len(msg.Body)
	}

	out := make([]byte, 0, size)
	for _, msg := range h.Messages {
		msgLen := len(msg.Body)
		if msgLen > 0xffffff {
			return nil, fmt.Errorf("handshake message body too large for 24-bit length: %d bytes", msgLen)
		}
		out = append(out, uint8(msg.Type), byte(msgLen>>16), byte(msgLen>>8), byte(msgLen))
		out = append(out, msg.Body...)
	}
	return out, nil
}

func (h *Handshake) String() string {
	if len(h.Messages) == 0 {
		return "  Handshake (empty)"
	}
	var sb strings.Builder
	for i, msg := range h.Messages {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "  Handshake: %s (%d bytes)", msg.Type, len(msg.Body))
	}
	return sb.String()
}
