package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tcalc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretAssignments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcalc.runtime")
	defer teardown()
	//
	var diag bytes.Buffer
	intp := NewInterpreter(&diag)
	failed := intp.InterpretLine(`a = 2; b = a * 3; s = "hi";`)
	assert.Equal(t, 0, failed)
	assert.Empty(t, diag.String())
	//
	v, ok := intp.Table.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, tcalc.Numeric(2), v)
	v, ok = intp.Table.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, tcalc.Numeric(6), v)
	v, ok = intp.Table.Lookup("s")
	require.True(t, ok)
	assert.Equal(t, tcalc.Text("hi"), v)
}

func TestInterpretReassignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcalc.runtime")
	defer teardown()
	//
	intp := NewInterpreter(&bytes.Buffer{})
	intp.InterpretLine("x = 5;")
	intp.InterpretLine("x = x + 1;")
	v, ok := intp.Table.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, tcalc.Numeric(6), v)
	assert.Equal(t, 1, intp.Table.Len(), "reassignment must overwrite, not add")
}

func TestInterpretMissingSemicolon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcalc.runtime")
	defer teardown()
	//
	var diag bytes.Buffer
	intp := NewInterpreter(&diag)
	failed := intp.InterpretLine("a = 1")
	assert.Equal(t, 1, failed)
	assert.Contains(t, diag.String(), "semicolon")
	assert.Equal(t, 0, intp.Table.Len())
}

func TestInterpretRejectedStatementsAreSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcalc.runtime")
	defer teardown()
	//
	var diag bytes.Buffer
	intp := NewInterpreter(&diag)
	// the middle statements are broken, the others must still execute
	failed := intp.InterpretLine(`a = 1; 1b = 2; b = --3; c = a + 1;`)
	assert.Equal(t, 2, failed)
	//
	_, ok := intp.Table.Lookup("b")
	assert.False(t, ok, "a failed assignment must not touch the table")
	v, ok := intp.Table.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, tcalc.Numeric(2), v)
	// exactly one diagnostic line per rejected statement
	diags := strings.Split(strings.TrimRight(diag.String(), "\n"), "\n")
	assert.Len(t, diags, 2)
	for _, d := range diags {
		assert.True(t, strings.HasPrefix(d, "error: "))
	}
}

func TestInterpretStatementShapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcalc.runtime")
	defer teardown()
	//
	tests := []struct {
		line   string
		failed int
	}{
		{"", 0},
		{"   ", 0},
		{"a = 1;;", 0},         // blank statements are skipped
		{"justaname;", 1},      // no '=' at all
		{"2x = 1;", 1},         // invalid identifier
		{" = 1;", 1},           // empty identifier
		{"a = ;", 1},           // empty expression
		{"a = b = 1;", 1},      // split happens at the first '='
		{"_a1 = 0;", 0},
	}
	for _, tc := range tests {
		var diag bytes.Buffer
		intp := NewInterpreter(&diag)
		assert.Equal(t, tc.failed, intp.InterpretLine(tc.line), "line %q", tc.line)
	}
}

func TestVarTableOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcalc.runtime")
	defer teardown()
	//
	vt := NewVarTable()
	vt.Set("z", tcalc.Numeric(1))
	vt.Set("a", tcalc.Numeric(2))
	vt.Set("m", tcalc.Text("mid"))
	var names []string
	vt.Each(func(name string, _ tcalc.Value) {
		names = append(names, name)
	})
	assert.Equal(t, []string{"a", "m", "z"}, names)
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcalc.runtime")
	defer teardown()
	//
	intp := NewInterpreter(&bytes.Buffer{})
	assert.Nil(t, intp.Dump(), "empty session must dump a nil table")
	//
	intp.InterpretLine(`n = -17; s = "hi";`)
	dump := intp.Dump()
	require.NotNil(t, dump)
	rendered := dump.Render()
	assert.Contains(t, rendered, "-17")     // numerics print bare
	assert.Contains(t, rendered, `"hi"`)    // texts print quoted
}
