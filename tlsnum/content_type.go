package tlsnum

import "fmt"

// ContentType is the one-byte record discriminator from the TLS record
// header.
// https://datatracker.ietf.org/doc/html/rfc8446#appendix-B.1
type ContentType uint8

const (
	ContentTypeChangeCipherSpec ContentType = 20
	ContentTypeAlert            ContentType = 21
	ContentTypeHandshake        ContentType = 22
	ContentTypeApplicationData  ContentType = 23
	ContentTypeHeartbeat        ContentType = 24 // RFC 6520
)

var contentTypeNames = map[ContentType]string{
	ContentTypeChangeCipherSpec: "Change Cipher Spec",
	ContentTypeAlert:            "Alert",
	ContentTypeHandshake:        "Handshake",
	ContentTypeApplicationData:  "Application Data",
	ContentTypeHeartbeat:        "Heartbeat",
}

func (t ContentType) String() string {
	if name, ok := contentTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown (0x%02x)", uint8(t))
}
