package record

import "fmt"

// AlertLevel is the first byte of a plaintext alert.
type AlertLevel uint8

const (
	AlertLevelWarning AlertLevel = 1
	AlertLevelFatal   AlertLevel = 2
)

func (l AlertLevel) String() string {
	switch l {
	case AlertLevelWarning:
		return "warning"
	case AlertLevelFatal:
		return "fatal"
	}
	return fmt.Sprintf("unknown (%d)", uint8(l))
}

// AlertDescription is the second byte of a plaintext alert.
// https://datatracker.ietf.org/doc/html/rfc8446#section-6
type AlertDescription uint8

var alertDescriptionNames = map[AlertDescription]string{
	0:   "close_notify",
	10:  "unexpected_message",
	20:  "bad_record_mac",
	21:  "decryption_failed",
	22:  "record_overflow",
	30:  "decompression_failure",
	40:  "handshake_failure",
	42:  "bad_certificate",
	43:  "unsupported_certificate",
	44:  "certificate_revoked",
	45:  "certificate_expired",
	46:  "certificate_unknown",
	47:  "illegal_parameter",
	48:  "unknown_ca",
	49:  "access_denied",
	50:  "decode_error",
	51:  "decrypt_error",
	70:  "protocol_version",
	71:  "insufficient_security",
	80:  "internal_error",
	86:  "inappropriate_fallback",
	90:  "user_canceled",
	100: "no_renegotiation",
	109: "missing_extension",
	110: "unsupported_extension",
	112: "unrecognized_name",
	113: "bad_certificate_status_response",
	115: "unknown_psk_identity",
	116: "certificate_required",
	120: "no_application_protocol",
}

func (d AlertDescription) String() string {
	if name, ok := alertDescriptionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", uint8(d))
}

// Alert is an alert fragment. A 2-byte fragment is the plaintext
// level+description pair; any other length is an encrypted alert kept as
// opaque bytes so re-encoding stays byte-exact.
type Alert struct {
	Level       AlertLevel
	Description AlertDescription

	encrypted []byte // non-nil when the fragment was not plaintext
}

// DecodeAlert decodes an alert fragment.
func DecodeAlert(fragment []byte) (Body, error) {
	if len(fragment) != 2 {
		enc := make([]byte, len(fragment))
		copy(enc, fragment)
		return &Alert{encrypted: enc}, nil
	}
	return &Alert{
		Level:       AlertLevel(fragment[0]),
		Description: AlertDescription(fragment[1]),
	}, nil
}

// Encrypted reports whether the alert was carried as ciphertext; Level
// and Description are meaningless in that case.
func (a *Alert) Encrypted() bool {
	return a.encrypted != nil
}

func (a *Alert) Marshal() ([]byte, error) {
	if a.encrypted != nil {
		return a.encrypted, nil
	}
	return []byte{uint8(a.Level), uint8(a.Description)}, nil
}

func (a *Alert) String() string {
	if a.encrypted != nil {
		return fmt.Sprintf("  Alert (encrypted, %d bytes)", len(a.encrypted))
	}
	return fmt.Sprintf("  Alert: %s, %s", a.Level, a.Description)
}
