package rope

import "github.com/cordwood/rope/internal/utf8"

// newLeaf builds a leaf node owning a copy of b, computing its cached
// counts once up front. The returned leaf never shares its buffer with b.
func newLeaf(b []byte) *node {
	data := make([]byte, len(b))
	copy(data, b)
	return &node{
		leaf:     true,
		color:    red,
		data:     data,
		byteLen:  len(data),
		charLen:  utf8.CountCodepoints(data),
		newlines: utf8.CountNewlines(data),
	}
}

// splitLeaf partitions a leaf at byte offset p into two new, independently
// owned leaves. Splitting mid-codepoint is permitted and yields malformed
// halves; callers that need codepoint-aligned splits resolve the offset
// first. The original leaf is not reused.
func splitLeaf(l *node, p int) (left, right *node) {
	if p <= 0 {
		return nil, l
	}
	if p >= l.byteLen {
		return l, nil
	}
	left = newLeaf(l.data[:p])
	right = newLeaf(l.data[p:])
	left.color = l.color
	right.color = l.color
	return left, right
}
