package rope

import "github.com/cordwood/rope/internal/utf8"

// Cursor is a stateful, bidirectional codepoint reader over a Rope. It
// borrows the rope it was created from: the rope must not be structurally
// mutated while any Cursor exists against it, and a Cursor must not
// outlive its Rope. Neither rule is enforced; violating it is undefined
// behavior.
type Cursor struct {
	rope *Rope

	bytePos, charPos int

	leaf       *node
	leafOffset int

	// stack records the branches descended during the most recent seek,
	// closest ancestor last, so Next can resume traversal in O(1)
	// amortized without re-descending from the root. Prev re-descends
	// from the root when it crosses into an earlier leaf.
	stack []*node
}

// NewCursor returns a Cursor positioned at the given codepoint offset,
// saturating to the end of the rope if charPos is out of range.
func (r *Rope) NewCursor(charPos int) *Cursor {
	c := &Cursor{rope: r}
	c.seekChar(charPos)
	return c
}

func (c *Cursor) seekChar(charPos int) {
	c.stack = c.stack[:0]
	if c.rope == nil || c.rope.root == nil {
		c.bytePos, c.charPos, c.leaf, c.leafOffset = 0, 0, nil, 0
		return
	}
	m := c.rope.totals
	if charPos > m.chars {
		charPos = m.chars
	}
	if charPos < 0 {
		charPos = 0
	}
	c.charPos = charPos

	n := c.rope.root
	target := charToByte(n, m, charPos)
	byteOffset := 0
	remaining := target
	for n != nil && !n.leaf {
		if remaining < n.byteW {
			c.stack = append(c.stack, n)
			n = n.left
		} else {
			byteOffset += n.byteW
			remaining -= n.byteW
			n = n.right
		}
	}
	c.leaf = n
	c.leafOffset = remaining
	c.bytePos = byteOffset + remaining
}

// Seek repositions the cursor at the given codepoint offset, discarding
// and rebuilding the ancestor stack. Cheap, but not free: it re-descends
// from the root.
func (c *Cursor) Seek(charPos int) {
	c.seekChar(charPos)
}

// SeekByte repositions the cursor at the codepoint that contains byteOff.
func (c *Cursor) SeekByte(byteOff int) {
	if c.rope == nil {
		return
	}
	c.seekChar(byteToChar(c.rope.root, c.rope.totals, byteOff))
}

// BytePos and CharPos report the cursor's current position.
func (c *Cursor) BytePos() int { return c.bytePos }
func (c *Cursor) CharPos() int { return c.charPos }

// nextLeaf advances to the in-order-successor leaf using the ancestor
// stack: pop until a popped ancestor has an unvisited right subtree, then
// descend leftmost into it.
func (c *Cursor) nextLeaf() *node {
	for len(c.stack) > 0 {
		parent := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		if parent.right != nil {
			n := parent.right
			for !n.leaf {
				c.stack = append(c.stack, n)
				n = n.left
			}
			return n
		}
	}
	return nil
}

// prevLeaf moves to the in-order-predecessor leaf. The stack records only
// left descents, so it cannot name that leaf; instead prevLeaf re-descends
// from the root to the byte just before the current leaf's start,
// rebuilding the stack along the way. It returns nil at the first leaf.
func (c *Cursor) prevLeaf() *node {
	target := c.bytePos - c.leafOffset - 1
	if c.rope == nil || target < 0 {
		return nil
	}
	c.stack = c.stack[:0]
	n := c.rope.root
	for n != nil && !n.leaf {
		if target < n.byteW {
			c.stack = append(c.stack, n)
			n = n.left
		} else {
			target -= n.byteW
			n = n.right
		}
	}
	return n
}

// Next decodes the codepoint at the cursor's current position, advances
// past it, and returns it. ok is false only when the cursor was already at
// char_len; the cursor is left unchanged in that case.
func (c *Cursor) Next() (r rune, ok bool) {
	if c.rope == nil || c.charPos >= c.rope.totals.chars {
		return 0, false
	}
	if c.leaf == nil || c.leafOffset >= c.leaf.byteLen {
		next := c.nextLeaf()
		if next == nil {
			return 0, false
		}
		c.leaf, c.leafOffset = next, 0
	}
	r, size := utf8.Decode(c.leaf.data[c.leafOffset:])
	c.leafOffset += size
	c.bytePos += size
	c.charPos++
	return r, true
}

// Prev decodes the codepoint immediately before the cursor's current
// position, moves the cursor back over it, and returns it. ok is false
// only when the cursor was already at position 0.
//
// The encoding is not self-synchronizing backwards via a cheap test, so
// Prev re-scans the current leaf from its start to find the byte offset
// where the previous codepoint begins.
func (c *Cursor) Prev() (r rune, ok bool) {
	if c.charPos == 0 {
		return 0, false
	}
	c.charPos--

	if c.leaf == nil || c.leafOffset == 0 {
		prev := c.prevLeaf()
		if prev == nil {
			// No previous leaf: re-descend from the root and fall through
			// to the scan below using the freshly descended leaf.
			c.seekChar(c.charPos)
		} else {
			c.leaf = prev
			c.leafOffset = prev.byteLen
		}
	}

	scan, prevBoundary := 0, 0
	for scan < c.leafOffset {
		prevBoundary = scan
		scan += utf8.CharLen(c.leaf.data[scan])
	}
	c.leafOffset = prevBoundary
	c.bytePos = charToByte(c.rope.root, c.rope.totals, c.charPos)
	r, _ = utf8.Decode(c.leaf.data[c.leafOffset:])
	return r, true
}
