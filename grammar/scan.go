package grammar

import "unicode"

// eol is the end-of-input sentinel returned by peek and next.
const eol rune = -1

// cursor is a position within an immutable rune sequence. The evaluator
// advances it strictly left to right; positions never move backwards.
// A cursor has no notion of the grammar and cannot fail.
type cursor struct {
	input []rune
	pos   int
}

func newCursor(input string) *cursor {
	return &cursor{input: []rune(input)}
}

// peek returns the rune at the current position without consuming it,
// or eol if the input is exhausted.
func (cs *cursor) peek() rune {
	if cs.pos >= len(cs.input) {
		return eol
	}
	return cs.input[cs.pos]
}

// next consumes and returns the rune at the current position. At the end
// of the input it returns eol and does not move, i.e. it is idempotent.
func (cs *cursor) next() rune {
	r := cs.peek()
	if r != eol {
		cs.pos++
	}
	return r
}

// skipWhitespace consumes runes up to the next non-whitespace rune or the
// end of the input.
func (cs *cursor) skipWhitespace() {
	for unicode.IsSpace(cs.peek()) {
		cs.next()
	}
}

// rest is a predicate: is there input left to consume?
func (cs *cursor) rest() bool {
	return cs.pos < len(cs.input)
}

// mark returns the current position, e.g. for error reporting or for
// slicing out a literal.
func (cs *cursor) mark() int {
	return cs.pos
}

// slice returns the runes between positions from and to as a string.
func (cs *cursor) slice(from, to int) string {
	return string(cs.input[from:to])
}
