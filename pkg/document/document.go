// Package document provides a narrow, read-oriented Document abstraction
// over a rope.Rope, for callers that only need length/slice/serialize
// access and should not reach into pkg/rope's full mutation surface.
package document

import "github.com/cordwood/rope/pkg/rope"

// Document is a read-oriented view over a text buffer.
type Document interface {
	// Length returns the number of codepoints in the document.
	Length() int

	// Slice returns the codepoint range [start, end) as a string. Like the
	// rest of this module's API, out-of-range indices saturate rather
	// than panicking.
	Slice(start, end int) string

	// String returns the complete document content.
	String() string

	// Bytes returns the complete document content as bytes.
	Bytes() []byte

	// Clone returns an independent copy of the document.
	Clone() Document
}

// RopeDocument adapts a *rope.Rope to Document.
type RopeDocument struct {
	r *rope.Rope
}

// New wraps r as a Document. r is not consumed or mutated by any Document
// method.
func New(r *rope.Rope) *RopeDocument {
	return &RopeDocument{r: r}
}

func (d *RopeDocument) Length() int {
	return d.r.CharLen()
}

func (d *RopeDocument) Slice(start, end int) string {
	if end < start {
		end = start
	}
	return d.r.SubstringChars(start, end-start).String()
}

func (d *RopeDocument) String() string {
	return d.r.String()
}

func (d *RopeDocument) Bytes() []byte {
	return d.r.Bytes()
}

func (d *RopeDocument) Clone() Document {
	return New(d.r.Clone())
}

var _ Document = (*RopeDocument)(nil)
