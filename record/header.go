package record

import (
	"encoding/binary"
	"fmt"

	"tlswire/tlsnum"
)

// HeaderSize is the fixed record prefix: tag(1) + version(2) + length(2).
const HeaderSize = 5

// Header is one record header together with the decoded fragment it
// frames. Immutable once constructed; edits go through a Builder.
type Header struct {
	ContentType  tlsnum.ContentType
	Version      tlsnum.Version
	RecordLength uint16
	Body         Body
}

// TotalLength is the number of wire bytes this record occupies,
// HeaderSize plus the declared fragment length.
func (h *Header) TotalLength() int {
	return HeaderSize + int(h.RecordLength)
}

// Bytes serializes the fixed prefix followed by the marshalled body.
// RecordLength is written verbatim; it is not recomputed from the body,
// so a builder that sets the two inconsistently gets them back
// inconsistently.
func (h *Header) Bytes() ([]byte, error) {
	body, err := h.Body.Marshal()
	if err != nil {
		return nil, err
	}

	out := make([]byte, HeaderSize, HeaderSize+len(body))
	out[0] = uint8(h.ContentType)
	binary.BigEndian.PutUint16(out[1:3], uint16(h.Version))
	binary.BigEndian.PutUint16(out[3:5], h.RecordLength)
	return append(out, body...), nil
}

func (h *Header) String() string {
	return fmt.Sprintf("[TLS Header (%d bytes)]\n  Version: %s\n  Type: %s\n%s",
		h.TotalLength(), h.Version, h.ContentType, h.Body)
}

// decodeHeader parses one record at data[off:], where avail bytes remain.
// The fragment is handed to the registered decoder for the tag.
func (p *Parser) decodeHeader(data []byte, off, avail int) (*Header, error) {
	if avail < HeaderSize {
		return nil, &BoundsError{Offset: off, Need: HeaderSize, Have: avail}
	}

	contentType := tlsnum.ContentType(data[off])
	version := tlsnum.Version(binary.BigEndian.Uint16(data[off+1 : off+3]))
	recordLength := binary.BigEndian.Uint16(data[off+3 : off+5])

	if avail-HeaderSize < int(recordLength) {
		return nil, &BoundsError{Offset: off + HeaderSize, Need: int(recordLength), Have: avail - HeaderSize}
	}

	decode, ok := p.registry[contentType]
	if !ok {
		return nil, &UnrecognizedTagError{Tag: contentType, Offset: off}
	}

	fragment := data[off+HeaderSize : off+HeaderSize+int(recordLength)]
	body, err := decode(fragment)
	if err != nil {
		// Collaborator failure, propagated unchanged.
		return nil, err
	}

	return &Header{
		ContentType:  contentType,
		Version:      version,
		RecordLength: recordLength,
		Body:         body,
	}, nil
}
