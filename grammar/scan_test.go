package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCursorPeekAndNext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcalc.grammar")
	defer teardown()
	//
	cs := newCursor("ab")
	if cs.peek() != 'a' {
		t.Errorf("expected peek to see 'a', saw %q", cs.peek())
	}
	if cs.peek() != 'a' {
		t.Error("expected peek not to consume, did")
	}
	if cs.next() != 'a' || cs.next() != 'b' {
		t.Error("expected next to consume 'a', then 'b'")
	}
	if cs.rest() {
		t.Error("expected cursor to be exhausted, isn't")
	}
}

func TestCursorIdempotentAtEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcalc.grammar")
	defer teardown()
	//
	cs := newCursor("x")
	cs.next()
	for i := 0; i < 3; i++ {
		if cs.next() != eol {
			t.Error("expected next at end of input to return the eol sentinel")
		}
	}
	if cs.mark() != 1 {
		t.Errorf("expected position to stay at 1, is %d", cs.mark())
	}
}

func TestCursorSkipWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcalc.grammar")
	defer teardown()
	//
	cs := newCursor(" \t\n 7")
	cs.skipWhitespace()
	if cs.peek() != '7' {
		t.Errorf("expected whitespace to be skipped up to '7', at %q", cs.peek())
	}
	cs.next()
	cs.skipWhitespace() // at end of input this is a no-op
	if cs.rest() {
		t.Error("expected cursor to be exhausted, isn't")
	}
}
