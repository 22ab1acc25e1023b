package record

import "tlswire/tlsnum"

// Builder is the mutable staging counterpart of a Chain node. Fields are
// staged with the fluent setters and snapshotted into an immutable chain
// by Build. A Builder is single-owner mutable state: concurrent mutation
// is the caller's problem, not guarded here.
type Builder struct {
	contentType  tlsnum.ContentType
	version      tlsnum.Version
	recordLength uint16
	body         Body
	next         *Builder
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Builder derives a staging builder from an existing chain, snapshotting
// every node. The chain itself is never touched; edit the builder and
// Build a new chain.
func (c *Chain) Builder() *Builder {
	var head, tail *Builder
	for node := c; node != nil; node = node.Next {
		b := &Builder{
			contentType:  node.Header.ContentType,
			version:      node.Header.Version,
			recordLength: node.Header.RecordLength,
			body:         node.Header.Body,
		}
		if head == nil {
			head = b
		} else {
			tail.next = b
		}
		tail = b
	}
	return head
}

func (b *Builder) ContentType(contentType tlsnum.ContentType) *Builder {
	b.contentType = contentType
	return b
}

func (b *Builder) Version(version tlsnum.Version) *Builder {
	b.version = version
	return b
}

// RecordLength stages the declared fragment length verbatim. It is not
// recomputed from the staged body at build time.
func (b *Builder) RecordLength(recordLength uint16) *Builder {
	b.recordLength = recordLength
	return b
}

func (b *Builder) Body(body Body) *Builder {
	b.body = body
	return b
}

// Next stages the builder for the following record, or nil to end the
// chain here.
func (b *Builder) Next(next *Builder) *Builder {
	b.next = next
	return b
}

// Build snapshots the staged values into a new immutable chain. No
// validation happens here; the length/body consistency contract is the
// caller's.
func (b *Builder) Build() *Chain {
	var head, tail *Chain
	for stage := b; stage != nil; stage = stage.next {
		node := &Chain{
			Header: &Header{
				ContentType:  stage.contentType,
				Version:      stage.version,
				RecordLength: stage.recordLength,
				Body:         stage.body,
			},
		}
		if head == nil {
			head = node
		} else {
			tail.Next = node
		}
		tail = node
	}
	return head
}
