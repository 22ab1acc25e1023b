package record

import (
	"go.uber.org/zap"
)

// Parser decodes raw buffers into record chains. The zero-value-free
// constructor wires a no-op logger and the default registry; both can be
// replaced with options. A Parser is stateless across calls and safe for
// concurrent use.
type Parser struct {
	registry Registry
	log      *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger attaches a logger; each decoded frame is traced at debug
// level. Logging never affects parse results.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithRegistry replaces the content-type registry, letting callers add
// decoders for private tags or drop ones they refuse to accept.
func WithRegistry(registry Registry) Option {
	return func(p *Parser) {
		p.registry = registry
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		registry: DefaultRegistry(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse decodes data as back-to-back records until the buffer is
// exhausted. Any malformed frame anywhere in the buffer fails the whole
// call; no partial chain is ever returned. The buffer is only read,
// never retained.
func (p *Parser) Parse(data []byte) (*Chain, error) {
	var head, tail *Chain

	// Iterative on purpose: a buffer of minimal 5-byte frames would
	// otherwise recurse len(data)/5 deep.
	off := 0
	for off < len(data) {
		header, err := p.decodeHeader(data, off, len(data)-off)
		if err != nil {
			return nil, err
		}

		p.log.Debug("decoded record",
			zap.Int("offset", off),
			zap.Stringer("content_type", header.ContentType),
			zap.Stringer("version", header.Version),
			zap.Uint16("record_length", header.RecordLength))

		node := &Chain{Header: header}
		if head == nil {
			head = node
		} else {
			tail.Next = node
		}
		tail = node
		off += header.TotalLength()
	}

	if head == nil {
		return nil, &BoundsError{Offset: 0, Need: HeaderSize, Have: 0}
	}
	return head, nil
}

// Parse decodes data with a default Parser (default registry, no
// logging).
func Parse(data []byte) (*Chain, error) {
	return NewParser().Parse(data)
}
