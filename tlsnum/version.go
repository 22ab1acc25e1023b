package tlsnum

import "fmt"

// Version is the two-byte protocol version from the TLS record header,
// major byte high, minor byte low (0x0303 for TLS 1.2).
type Version uint16

const (
	VersionSSL30 Version = 0x0300
	VersionTLS10 Version = 0x0301
	VersionTLS11 Version = 0x0302
	VersionTLS12 Version = 0x0303
	VersionTLS13 Version = 0x0304
)

var versionNames = map[Version]string{
	VersionSSL30: "SSL 3.0",
	VersionTLS10: "TLS 1.0",
	VersionTLS11: "TLS 1.1",
	VersionTLS12: "TLS 1.2",
	VersionTLS13: "TLS 1.3",
}

// Major returns the high byte of the version.
func (v Version) Major() uint8 { return uint8(v >> 8) }

// Minor returns the low byte of the version.
func (v Version) Minor() uint8 { return uint8(v) }

func (v Version) String() string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return fmt.Sprintf("unknown (0x%04x)", uint16(v))
}
