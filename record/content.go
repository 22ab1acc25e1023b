package record

import "tlswire/tlsnum"

// Body is one decoded record fragment. Marshal must be the exact inverse
// of the decode that produced the body, and String renders the body for
// Chain.String diagnostics, one or more lines indented by two spaces.
type Body interface {
	Marshal() ([]byte, error)
	String() string
}

// DecodeFunc decodes one record fragment. The slice is exactly the
// fragment declared by the header; the decoder must account for every
// byte of it.
type DecodeFunc func(fragment []byte) (Body, error)

// Registry maps content-type tags to fragment decoders. Tags absent from
// the registry fail the parse with UnrecognizedTagError.
type Registry map[tlsnum.ContentType]DecodeFunc

// DefaultRegistry binds the five known content types.
func DefaultRegistry() Registry {
	return Registry{
		tlsnum.ContentTypeChangeCipherSpec: DecodeChangeCipherSpec,
		tlsnum.ContentTypeAlert:            DecodeAlert,
		tlsnum.ContentTypeHandshake:        DecodeHandshake,
		tlsnum.ContentTypeApplicationData:  DecodeApplicationData,
		tlsnum.ContentTypeHeartbeat:        DecodeHeartbeat,
	}
}
