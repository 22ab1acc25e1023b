package record

import (
	"fmt"

	"tlswire/tlsnum"
)

// BoundsError reports a buffer that is too short at some parse step: the
// fixed header, a record fragment, or a subsequent frame in the chain.
// Offset is absolute within the buffer handed to Parse.
type BoundsError struct {
	Offset int
	Need   int
	Have   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("buffer too short at offset %d: need %d bytes, have %d", e.Offset, e.Need, e.Have)
}

// UnrecognizedTagError reports a content-type byte with no registered
// decoder. Malformed or unsupported input, never a transient condition.
type UnrecognizedTagError struct {
	Tag    tlsnum.ContentType
	Offset int
}

func (e *UnrecognizedTagError) Error() string {
	return fmt.Sprintf("unrecognized content type 0x%02x at offset %d", uint8(e.Tag), e.Offset)
}
