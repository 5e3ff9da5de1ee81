package rope

// These interfaces decompose Rope's API into focused capabilities, the
// same way the corpus rope package this is grounded on splits its large
// API into ReadOnlyDocument/MutableDocument/etc. Unlike that package's
// interfaces, none of these methods return an error: every operation here
// is total under index misuse, so the contracts saturate instead of
// failing.

// ReadOnlyRope exposes length and serialization queries.
type ReadOnlyRope interface {
	ByteLen() int
	CharLen() int
	Stats() (bytes, chars, newlines int)
	String() string
	Bytes() []byte
}

// CodepointAccessor exposes codepoint-indexed reads.
type CodepointAccessor interface {
	CharAt(charPos int) rune
	CharToByte(charPos int) int
}

// ByteAccessor exposes byte-indexed reads.
type ByteAccessor interface {
	ByteToChar(bytePos int) int
	CopyBytes(byteStart, length int, buf []byte) int
}

// MutableRope exposes in-place edits.
type MutableRope interface {
	InsertBytes(pos int, s []byte) *Rope
	InsertChars(charPos int, s []byte) *Rope
	DeleteBytes(start, length int) *Rope
	DeleteChars(start, length int) *Rope
}

// SplittableRope exposes the consuming split operations.
type SplittableRope interface {
	SplitBytes(pos int) (left, right *Rope)
	SplitChars(pos int) (left, right *Rope)
}

// Concatenable exposes the consuming join operation as a method, for
// callers that want to depend on this one capability rather than the
// package-level Concat function directly.
type Concatenable interface {
	Concat(other *Rope) *Rope
}

// LineOriented exposes newline-aware position conversions.
type LineOriented interface {
	LineCount() int
	CharToLine(charPos int) int
	LineToChar(line int) int
	ByteToLine(bytePos int) int
	LineToByte(line int) int
}

// Validatable exposes the strict UTF-8 check.
type Validatable interface {
	ValidateUTF8() bool
}

var (
	_ ReadOnlyRope      = (*Rope)(nil)
	_ CodepointAccessor = (*Rope)(nil)
	_ ByteAccessor      = (*Rope)(nil)
	_ MutableRope       = (*Rope)(nil)
	_ SplittableRope    = (*Rope)(nil)
	_ Concatenable      = (*Rope)(nil)
	_ LineOriented      = (*Rope)(nil)
	_ Validatable       = (*Rope)(nil)
)
