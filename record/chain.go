package record

import "strings"

// Chain is one record plus the rest of the buffer it was decoded from,
// linked in wire order. A nil Next marks the end of the buffer. Chains
// are immutable once constructed and safe for concurrent reads.
type Chain struct {
	Header *Header
	Next   *Chain
}

// Bytes re-encodes the whole chain back to wire bytes. For a chain
// produced by Parse over a well-formed buffer the result is
// byte-identical to the input.
func (c *Chain) Bytes() ([]byte, error) {
	out := make([]byte, 0, c.TotalLength())
	for node := c; node != nil; node = node.Next {
		encoded, err := node.Header.Bytes()
		if err != nil {
			return nil, err
		}
		out = append(out, encoded...)
	}
	return out, nil
}

// Len counts the records in the chain.
func (c *Chain) Len() int {
	n := 0
	for node := c; node != nil; node = node.Next {
		n++
	}
	return n
}

// TotalLength sums the wire length of every record in the chain.
func (c *Chain) TotalLength() int {
	total := 0
	for node := c; node != nil; node = node.Next {
		total += node.Header.TotalLength()
	}
	return total
}

// String renders every record in the chain on consecutive lines.
// Diagnostics only, not part of the wire contract.
func (c *Chain) String() string {
	var sb strings.Builder
	for node := c; node != nil; node = node.Next {
		if node != c {
			sb.WriteByte('\n')
		}
		sb.WriteString(node.Header.String())
	}
	return sb.String()
}
