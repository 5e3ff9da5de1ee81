package rope

// LineCount returns newlines+1, the number of lines in the rope (an empty
// rope has exactly one, empty, line).
func (r *Rope) LineCount() int {
	if r == nil {
		return 1
	}
	return r.totals.newlines + 1
}

// CharToLine returns the 0-indexed line containing codepoint charPos.
//
// This walks the rope codepoint by codepoint counting '\n', as the source
// this is grounded on does; the per-subtree newline weight cached on every
// branch would make this O(log n), but this preserves the source's O(n)
// scan rather than silently upgrading it.
func (r *Rope) CharToLine(charPos int) int {
	if r == nil {
		return 0
	}
	if charPos > r.totals.chars {
		charPos = r.totals.chars
	}
	line := 0
	for i := 0; i < charPos; i++ {
		if r.CharAt(i) == '\n' {
			line++
		}
	}
	return line
}

// ByteToLine returns the 0-indexed line containing byte offset bytePos.
func (r *Rope) ByteToLine(bytePos int) int {
	if r == nil {
		return 0
	}
	return r.CharToLine(r.ByteToChar(bytePos))
}

// LineToChar returns the codepoint offset of the first character of the
// given 0-indexed line, saturating to char_len if line is beyond the last
// line.
func (r *Rope) LineToChar(line int) int {
	if r == nil {
		return 0
	}
	current := 0
	for i := 0; i < r.totals.chars; i++ {
		if current == line {
			return i
		}
		if r.CharAt(i) == '\n' {
			current++
		}
	}
	return r.totals.chars
}

// LineToByte returns the byte offset of the first character of the given
// 0-indexed line.
func (r *Rope) LineToByte(line int) int {
	if r == nil {
		return 0
	}
	return r.CharToByte(r.LineToChar(line))
}
